package model

import (
	"github.com/samber/lo"
)

// Verify re-checks a produced timetable against the full rule catalog's
// semantics, independently of the solver: coverage, room exclusivity,
// capacity, lecturer load, the Friday blackout, practicum pairing and
// room-type legality.
func (scheduler *milpScheduler) Verify(schedules []Schedule, data Dataset) bool {
	rooms := lo.KeyBy(data.Rooms, func(room Room) uint64 { return room.ID })
	units := lo.KeyBy(data.ClassLecturers, func(unit ClassLecturer) uint64 { return unit.ID })
	days := lo.KeyBy(data.Days, func(day Day) uint64 { return day.ID })
	sessions := lo.KeyBy(data.Sessions, func(session Session) uint64 { return session.ID })

	placements := map[uint64]Schedule{}
	occupied := map[[3]uint64]bool{}
	theoryLoad := map[[2]uint64]int{}
	theorySlot := map[[3]uint64]int{}

	for _, schedule := range schedules {
		unit, known := units[schedule.ClassLecturerID]
		if !known {
			return false
		}
		room, known := rooms[schedule.RoomID]
		if !known {
			return false
		}
		day, known := days[schedule.ScheduleDayID]
		if !known {
			return false
		}
		session, known := sessions[schedule.ScheduleSessionID]
		if !known {
			return false
		}

		// Coverage upper bound and output identity contract
		if _, placed := placements[unit.ID]; placed || schedule.ID != nil {
			return false
		}
		placements[unit.ID] = schedule

		// Room exclusivity
		triple := [3]uint64{room.ID, day.ID, session.ID}
		if occupied[triple] {
			return false
		}
		occupied[triple] = true

		// Capacity for Theory and Response
		if (unit.SubjectType == SubjectTheory || unit.SubjectType == SubjectResponse) && room.Capacity < unit.Capacity {
			return false
		}

		// Friday blackout
		if day.Friday && session.Number == fridayBlackedOutSession {
			return false
		}

		// Room-type legality
		switch room.Type {
		case RoomOnline:
			if unit.RequiredTheory() {
				return false
			}
		case RoomLab:
			if !unit.Practicum() {
				return false
			}
		case RoomKelas:
			if unit.SubjectType != SubjectTheory && unit.SubjectType != SubjectResponse {
				return false
			}
		}

		// Lecturer Theory load
		if unit.SubjectType == SubjectTheory {
			for _, lecturer := range data.Lecturers {
				if !unit.LedBy(lecturer.ID) {
					continue
				}
				theoryLoad[[2]uint64{lecturer.ID, day.ID}]++
				theorySlot[[3]uint64{lecturer.ID, day.ID, session.ID}]++
				if theoryLoad[[2]uint64{lecturer.ID, day.ID}] > maxDailyTheorySessions {
					return false
				}
				if theorySlot[[3]uint64{lecturer.ID, day.ID, session.ID}] > 1 {
					return false
				}
			}
		}
	}

	// Coverage: every unit placed exactly once
	if len(placements) != len(data.ClassLecturers) {
		return false
	}

	// Class-group co-scheduling and practicum pairing
	builder := &constraintBuilder{data: data}
	for _, pair := range builder.groupPairs(func(ClassLecturer, ClassLecturer) bool { return true }) {
		first := placements[data.ClassLecturers[pair[0]].ID]
		second := placements[data.ClassLecturers[pair[1]].ID]

		if first.ScheduleDayID != second.ScheduleDayID || first.ScheduleSessionID != second.ScheduleSessionID {
			return false
		}

		if !bothPracticum(data.ClassLecturers[pair[0]], data.ClassLecturers[pair[1]]) {
			continue
		}
		if first.RoomID == second.RoomID {
			return false
		}
		firstRoom, secondRoom := rooms[first.RoomID], rooms[second.RoomID]
		if (firstRoom.Type == RoomOnline) != (secondRoom.Type == RoomOnline) {
			return false
		}
		if (firstRoom.Type == RoomLab) != (secondRoom.Type == RoomLab) {
			return false
		}
	}

	return true
}
