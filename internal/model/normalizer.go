package model

import "fmt"

// Normalizer converts the raw nested payload into flat typed entities: the
// class -> subSubject -> subject chain is walked exactly once here, so the
// builders downstream never touch a nested nullable field.
type Normalizer interface {
	Normalize(input RawDataset) (Dataset, error)
}

func NewNormalizer() Normalizer {
	return &normalizerImplementation{}
}

type normalizerImplementation struct{}

func (normalizer *normalizerImplementation) Normalize(input RawDataset) (Dataset, error) {
	dataset := Dataset{
		Rooms:          make([]Room, 0, len(input.Rooms)),
		Lecturers:      make([]Lecturer, 0, len(input.Lecturers)),
		ClassLecturers: make([]ClassLecturer, 0, len(input.ClassLecturers)),
		Days:           make([]Day, 0, len(input.ScheduleDays)),
		Sessions:       make([]Session, 0, len(input.ScheduleSessions)),
	}

	for _, raw := range input.Rooms {
		roomType, err := resolveRoomType(raw)
		if err != nil {
			return Dataset{}, err
		}
		dataset.Rooms = append(dataset.Rooms, Room{
			ID:       raw.ID,
			Capacity: raw.RoomCapacity,
			Type:     roomType,
		})
	}

	for _, raw := range input.Lecturers {
		dataset.Lecturers = append(dataset.Lecturers, Lecturer{ID: raw.ID, Name: raw.Name})
	}

	for _, raw := range input.ClassLecturers {
		unit, err := flattenClassLecturer(raw)
		if err != nil {
			return Dataset{}, err
		}
		dataset.ClassLecturers = append(dataset.ClassLecturers, unit)
	}

	for _, raw := range input.ScheduleDays {
		name := raw.Day
		if name == "" {
			name = raw.Name
		}
		dataset.Days = append(dataset.Days, Day{
			ID:     raw.ID,
			Name:   name,
			Friday: name == "Jumat" || name == "Friday",
		})
	}

	for _, raw := range input.ScheduleSessions {
		number := raw.Session
		if number == 0 {
			number = raw.ID
		}
		dataset.Sessions = append(dataset.Sessions, Session{ID: raw.ID, Number: number})
	}

	return dataset, nil
}

func flattenClassLecturer(raw RawClassLecturer) (ClassLecturer, error) {
	if raw.Class == nil {
		return ClassLecturer{}, fmt.Errorf("%w: classLecturer %d has no class", ErrMalformedInput, raw.ID)
	}
	if raw.Class.SubSubject == nil {
		return ClassLecturer{}, fmt.Errorf("%w: classLecturer %d has no subSubject", ErrMalformedInput, raw.ID)
	}
	if raw.Class.SubSubject.Subject == nil {
		return ClassLecturer{}, fmt.Errorf("%w: classLecturer %d has no subject", ErrMalformedInput, raw.ID)
	}

	subjectType := SubjectType(raw.Class.SubSubject.SubjectTypeID)
	switch subjectType {
	case SubjectTheory, SubjectResponse, SubjectPracticum:
	default:
		return ClassLecturer{}, fmt.Errorf("%w: classLecturer %d has unknown subject type %d", ErrMalformedInput, raw.ID, raw.Class.SubSubject.SubjectTypeID)
	}

	unit := ClassLecturer{
		ID:                  raw.ID,
		ClassID:             raw.ClassID,
		StudyProgramClassID: raw.Class.StudyProgramClassID,
		SemesterID:          raw.Class.SubSubject.Subject.SemesterID,
		SubjectType:         subjectType,
		SubjectCategory:     raw.Class.SubSubject.Subject.SubjectCategory,
		Capacity:            raw.Class.ClassCapacity,
		PrimaryLecturerID:   raw.PrimaryLecturerID,
	}
	if raw.SecondaryLecturerID != nil {
		unit.SecondaryLecturerID = *raw.SecondaryLecturerID
	}
	return unit, nil
}

// resolveRoomType maps either room-type signal onto the canonical categorical
// taxonomy. The boolean capability flags are a legacy payload revision:
// all three set means a virtual room, practicum-only means a laboratory,
// theory+response means a regular classroom.
func resolveRoomType(raw RawRoom) (RoomType, error) {
	switch RoomType(raw.RoomType) {
	case RoomKelas, RoomLab, RoomOnline:
		return RoomType(raw.RoomType), nil
	}
	if raw.RoomType != "" {
		return "", fmt.Errorf("%w: room %d has unknown type %q", ErrMalformedInput, raw.ID, raw.RoomType)
	}

	switch {
	case raw.IsTheory && raw.IsResponse && raw.IsPracticum:
		return RoomOnline, nil
	case raw.IsPracticum && !raw.IsTheory && !raw.IsResponse:
		return RoomLab, nil
	case raw.IsTheory && raw.IsResponse:
		return RoomKelas, nil
	}
	return "", fmt.Errorf("%w: room %d has no resolvable type", ErrMalformedInput, raw.ID)
}
