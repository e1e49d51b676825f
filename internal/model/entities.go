package model

// RoomType is the canonical categorical room classification. Every room has
// exactly one type.
type RoomType string

const (
	RoomKelas  RoomType = "Kelas"  // regular classroom: Theory and Response only
	RoomLab    RoomType = "Lab"    // laboratory: Practicum only
	RoomOnline RoomType = "Online" // virtual room: anything except required-category Theory
)

// SubjectType distinguishes how a class-lecturer unit meets.
type SubjectType uint64

const (
	SubjectTheory    SubjectType = 1
	SubjectResponse  SubjectType = 2
	SubjectPracticum SubjectType = 3
)

// SubjectCategoryRequired marks mandatory (non-elective) subjects, which are
// barred from Online rooms when taught as Theory.
const SubjectCategoryRequired = "W"

type Room struct {
	ID       uint64
	Capacity uint64
	Type     RoomType
}

type Lecturer struct {
	ID   uint64
	Name string
}

type Day struct {
	ID     uint64
	Name   string
	Friday bool
}

type Session struct {
	ID     uint64
	Number uint64
}

// ClassLecturer is the atomic schedulable unit: one weekly meeting of a
// course section taught by one or two lecturers. All subject-chain lookups
// are flattened onto it by the normalizer.
type ClassLecturer struct {
	ID                  uint64
	ClassID             uint64
	StudyProgramClassID uint64
	SemesterID          uint64
	SubjectType         SubjectType
	SubjectCategory     string
	Capacity            uint64
	PrimaryLecturerID   uint64
	SecondaryLecturerID uint64 // zero when the unit has a single lecturer
}

// LedBy reports whether the unit is taught by the given lecturer, as primary
// or secondary instructor.
func (unit ClassLecturer) LedBy(lecturerID uint64) bool {
	return unit.PrimaryLecturerID == lecturerID || unit.SecondaryLecturerID == lecturerID
}

func (unit ClassLecturer) Practicum() bool {
	return unit.SubjectType == SubjectPracticum
}

// RequiredTheory reports whether the unit is a mandatory Theory meeting.
func (unit ClassLecturer) RequiredTheory() bool {
	return unit.SubjectType == SubjectTheory && unit.SubjectCategory == SubjectCategoryRequired
}

// Dataset is a normalized problem instance: the read-only input of one
// scheduling run.
type Dataset struct {
	Rooms          []Room
	Lecturers      []Lecturer
	ClassLecturers []ClassLecturer
	Days           []Day
	Sessions       []Session
}

// Schedule is the single output record kind: one placed class-lecturer unit.
// ID stays nil until the persistence collaborator assigns a real identity.
type Schedule struct {
	ID                *uint64 `json:"id"`
	ScheduleDayID     uint64  `json:"scheduleDayId"`
	ClassLecturerID   uint64  `json:"classLecturerId"`
	ScheduleSessionID uint64  `json:"scheduleSessionId"`
	RoomID            uint64  `json:"roomId"`
}
