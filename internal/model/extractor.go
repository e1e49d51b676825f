package model

import "class-scheduling/internal/milp"

// ExtractSchedules reads a solved assignment and emits one record per unit
// whose variable is set, in the enumeration order of the variable space.
// Record ids stay nil: identity belongs to the persistence collaborator.
func ExtractSchedules(space *VarSpace, data Dataset, solution milp.Solution) []Schedule {
	schedules := make([]Schedule, 0, len(data.ClassLecturers))

	for u, unit := range data.ClassLecturers {
		for r, room := range data.Rooms {
			for d, day := range data.Days {
				for s, session := range data.Sessions {
					if solution.Value(space.AssignVar(uint64(u), uint64(r), uint64(d), uint64(s))) < 0.5 {
						continue
					}
					schedules = append(schedules, Schedule{
						ID:                nil,
						ScheduleDayID:     day.ID,
						ClassLecturerID:   unit.ID,
						ScheduleSessionID: session.ID,
						RoomID:            room.ID,
					})
				}
			}
		}
	}

	return schedules
}
