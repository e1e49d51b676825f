package model

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// RawDataset mirrors the JS-style payload served by the main service: five
// named collections with nested subject chains still in place.
type RawDataset struct {
	Rooms            []RawRoom          `mapstructure:"rooms" json:"rooms" validate:"required,min=1,dive"`
	Lecturers        []RawLecturer      `mapstructure:"lecturers" json:"lecturers" validate:"required,min=1,dive"`
	ClassLecturers   []RawClassLecturer `mapstructure:"classLecturers" json:"classLecturers" validate:"required,min=1,dive"`
	ScheduleDays     []RawDay           `mapstructure:"scheduleDays" json:"scheduleDays" validate:"required,min=1,dive"`
	ScheduleSessions []RawSession       `mapstructure:"scheduleSessions" json:"scheduleSessions" validate:"required,min=1,dive"`
}

// RawRoom carries both room-type signals seen across payload revisions: the
// categorical roomType and the older capability flags. The normalizer picks
// the categorical form when present.
type RawRoom struct {
	ID           uint64 `mapstructure:"id" json:"id" validate:"required"`
	RoomCapacity uint64 `mapstructure:"roomCapacity" json:"roomCapacity" validate:"required"`
	RoomType     string `mapstructure:"roomType" json:"roomType,omitempty"`
	IsTheory     bool   `mapstructure:"isTheory" json:"isTheory,omitempty"`
	IsResponse   bool   `mapstructure:"isResponse" json:"isResponse,omitempty"`
	IsPracticum  bool   `mapstructure:"isPracticum" json:"isPracticum,omitempty"`
}

type RawLecturer struct {
	ID   uint64 `mapstructure:"id" json:"id" validate:"required"`
	Name string `mapstructure:"name" json:"name,omitempty"`
}

type RawClassLecturer struct {
	ID                  uint64    `mapstructure:"id" json:"id" validate:"required"`
	ClassID             uint64    `mapstructure:"classId" json:"classId" validate:"required"`
	PrimaryLecturerID   uint64    `mapstructure:"primaryLecturerId" json:"primaryLecturerId" validate:"required"`
	SecondaryLecturerID *uint64   `mapstructure:"secondaryLecturerId" json:"secondaryLecturerId"`
	Class               *RawClass `mapstructure:"class" json:"class"`
}

type RawClass struct {
	ID                  uint64         `mapstructure:"id" json:"id"`
	ClassCapacity       uint64         `mapstructure:"classCapacity" json:"classCapacity"`
	StudyProgramClassID uint64         `mapstructure:"studyProgramClassId" json:"studyProgramClassId"`
	SubSubject          *RawSubSubject `mapstructure:"subSubject" json:"subSubject"`
}

type RawSubSubject struct {
	ID            uint64      `mapstructure:"id" json:"id"`
	SubjectTypeID uint64      `mapstructure:"subjectTypeId" json:"subjectTypeId"`
	Subject       *RawSubject `mapstructure:"subject" json:"subject"`
}

type RawSubject struct {
	ID              uint64 `mapstructure:"id" json:"id"`
	SubjectCategory string `mapstructure:"subjectCategory" json:"subjectCategory"`
	SemesterID      uint64 `mapstructure:"semesterId" json:"semesterId"`
}

type RawDay struct {
	ID   uint64 `mapstructure:"id" json:"id" validate:"required"`
	Day  string `mapstructure:"day" json:"day"`
	Name string `mapstructure:"name" json:"name,omitempty"`
}

type RawSession struct {
	ID      uint64 `mapstructure:"id" json:"id" validate:"required"`
	Session uint64 `mapstructure:"session" json:"session,omitempty"`
}

var validate = validator.New()

// InputFromJSON decodes a raw payload, tolerating the loosely typed JSON the
// main service emits by going through a generic map first.
func InputFromJSON(data []byte) (RawDataset, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return RawDataset{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	var input RawDataset
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &input,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return RawDataset{}, err
	}
	if err := decoder.Decode(payload); err != nil {
		return RawDataset{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	if err := validate.Struct(input); err != nil {
		return RawDataset{}, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return input, nil
}

// InputFromFile reads a raw payload stored as a JSON file.
func InputFromFile(file string) (RawDataset, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return RawDataset{}, err
	}
	return InputFromJSON(bytes)
}
