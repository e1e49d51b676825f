package model

import "class-scheduling/internal/milp"

// Test datasets are built from normalized entities directly; normalizer
// coverage lives in normalizer_test.go.

func singleUnitDataset() Dataset {
	return Dataset{
		Rooms:          []Room{{ID: 1, Capacity: 30, Type: RoomKelas}},
		Lecturers:      []Lecturer{{ID: 1, Name: "A"}},
		ClassLecturers: []ClassLecturer{theoryUnit(1, 1, 20, 1)},
		Days:           []Day{{ID: 1, Name: "Senin"}},
		Sessions:       []Session{{ID: 1, Number: 1}},
	}
}

func theoryUnit(id, classID, capacity, lecturerID uint64) ClassLecturer {
	return ClassLecturer{
		ID:                  id,
		ClassID:             classID,
		StudyProgramClassID: 1,
		SemesterID:          1,
		SubjectType:         SubjectTheory,
		SubjectCategory:     SubjectCategoryRequired,
		Capacity:            capacity,
		PrimaryLecturerID:   lecturerID,
	}
}

func practicumUnit(id, classID, capacity, lecturerID uint64) ClassLecturer {
	unit := theoryUnit(id, classID, capacity, lecturerID)
	unit.SubjectType = SubjectPracticum
	unit.SubjectCategory = ""
	return unit
}

// placement is a (room, day, session) position triple for one unit position.
type placement struct {
	room    uint64
	day     uint64
	session uint64
}

// solutionFromPlacements renders a full binary solution with the given
// assignment variables set and every load indicator at zero.
func solutionFromPlacements(space *VarSpace, placements map[uint64]placement) milp.Solution {
	solution := make(milp.Solution, space.Columns())
	for unit, p := range placements {
		solution[space.AssignVar(unit, p.room, p.day, p.session)-1] = 1
	}
	return solution
}
