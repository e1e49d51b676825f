package csvio

import (
	"fmt"
	"os"
	"path/filepath"

	"class-scheduling/internal/model"

	"github.com/gocarina/gocsv"
)

// File names expected inside a dataset directory.
const (
	RoomsFile          = "rooms.csv"
	LecturersFile      = "lecturers.csv"
	ClassLecturersFile = "class_lecturers.csv"
	DaysFile           = "days.csv"
	SessionsFile       = "sessions.csv"
)

// CSV rows are flat: the subject chain the JSON payload nests is spread over
// columns and reconstituted while loading.

type roomRow struct {
	ID           uint64 `csv:"id"`
	RoomCapacity uint64 `csv:"roomCapacity"`
	RoomType     string `csv:"roomType"`
	IsTheory     bool   `csv:"isTheory"`
	IsResponse   bool   `csv:"isResponse"`
	IsPracticum  bool   `csv:"isPracticum"`
}

type lecturerRow struct {
	ID   uint64 `csv:"id"`
	Name string `csv:"name"`
}

type classLecturerRow struct {
	ID                  uint64 `csv:"id"`
	ClassID             uint64 `csv:"classId"`
	PrimaryLecturerID   uint64 `csv:"primaryLecturerId"`
	SecondaryLecturerID uint64 `csv:"secondaryLecturerId"` // zero means absent
	ClassCapacity       uint64 `csv:"classCapacity"`
	StudyProgramClassID uint64 `csv:"studyProgramClassId"`
	SubSubjectID        uint64 `csv:"subSubjectId"`
	SubjectTypeID       uint64 `csv:"subjectTypeId"`
	SubjectID           uint64 `csv:"subjectId"`
	SubjectCategory     string `csv:"subjectCategory"`
	SemesterID          uint64 `csv:"semesterId"`
}

type dayRow struct {
	ID  uint64 `csv:"id"`
	Day string `csv:"day"`
}

type sessionRow struct {
	ID      uint64 `csv:"id"`
	Session uint64 `csv:"session"`
}

// LoadDataset reads the five dataset files of a directory into the same raw
// form the main service serves over HTTP, so the normalizer treats both
// sources alike.
func LoadDataset(dir string) (model.RawDataset, error) {
	input := model.RawDataset{}

	rooms, err := readRows[roomRow](filepath.Join(dir, RoomsFile))
	if err != nil {
		return input, err
	}
	for _, row := range rooms {
		input.Rooms = append(input.Rooms, model.RawRoom{
			ID:           row.ID,
			RoomCapacity: row.RoomCapacity,
			RoomType:     row.RoomType,
			IsTheory:     row.IsTheory,
			IsResponse:   row.IsResponse,
			IsPracticum:  row.IsPracticum,
		})
	}

	lecturers, err := readRows[lecturerRow](filepath.Join(dir, LecturersFile))
	if err != nil {
		return input, err
	}
	for _, row := range lecturers {
		input.Lecturers = append(input.Lecturers, model.RawLecturer{ID: row.ID, Name: row.Name})
	}

	units, err := readRows[classLecturerRow](filepath.Join(dir, ClassLecturersFile))
	if err != nil {
		return input, err
	}
	for _, row := range units {
		unit := model.RawClassLecturer{
			ID:                row.ID,
			ClassID:           row.ClassID,
			PrimaryLecturerID: row.PrimaryLecturerID,
			Class: &model.RawClass{
				ID:                  row.ClassID,
				ClassCapacity:       row.ClassCapacity,
				StudyProgramClassID: row.StudyProgramClassID,
				SubSubject: &model.RawSubSubject{
					ID:            row.SubSubjectID,
					SubjectTypeID: row.SubjectTypeID,
					Subject: &model.RawSubject{
						ID:              row.SubjectID,
						SubjectCategory: row.SubjectCategory,
						SemesterID:      row.SemesterID,
					},
				},
			},
		}
		if row.SecondaryLecturerID != 0 {
			secondary := row.SecondaryLecturerID
			unit.SecondaryLecturerID = &secondary
		}
		input.ClassLecturers = append(input.ClassLecturers, unit)
	}

	days, err := readRows[dayRow](filepath.Join(dir, DaysFile))
	if err != nil {
		return input, err
	}
	for _, row := range days {
		input.ScheduleDays = append(input.ScheduleDays, model.RawDay{ID: row.ID, Day: row.Day})
	}

	sessions, err := readRows[sessionRow](filepath.Join(dir, SessionsFile))
	if err != nil {
		return input, err
	}
	for _, row := range sessions {
		input.ScheduleSessions = append(input.ScheduleSessions, model.RawSession{ID: row.ID, Session: row.Session})
	}

	return input, nil
}

func readRows[Row any](path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrMalformedInput, err)
	}
	defer file.Close()

	rows := []Row{}
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v: %w", model.ErrMalformedInput, path, err)
	}
	return rows, nil
}
