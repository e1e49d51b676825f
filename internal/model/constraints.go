package model

import (
	"fmt"

	"class-scheduling/internal/milp"
)

// ConstraintBuilder produces the full set of linear constraints encoding
// scheduling legality over a variable space. It never drops a rule to force
// feasibility; an over-constrained instance surfaces as an infeasible solve.
type ConstraintBuilder interface {
	Build() []milp.Constr
}

func NewConstraintBuilder(space *VarSpace, data Dataset, rules []Rule) ConstraintBuilder {
	return &constraintBuilder{
		space: space,
		data:  data,
		rules: rules,
	}
}

type constraintBuilder struct {
	space *VarSpace
	data  Dataset
	rules []Rule
}

func (b *constraintBuilder) Build() []milp.Constr {
	constrs := []milp.Constr{}
	for _, rule := range b.rules {
		constrs = append(constrs, rule.Build(b)...)
	}
	return constrs
}

// Each class-lecturer unit is scheduled exactly once.
func (b *constraintBuilder) scheduleOnce() []milp.Constr {
	constrs := make([]milp.Constr, 0, len(b.data.ClassLecturers))

	for u, unit := range b.data.ClassLecturers {
		constrs = append(constrs, milp.Constr{
			Name:  fmt.Sprintf("unit_%d_scheduled_once", unit.ID),
			Terms: b.unitTerms(uint64(u)),
			Kind:  milp.EQ,
			RHS:   1,
		})
	}

	return constrs
}

// No room holds more than one unit in the same day and session.
func (b *constraintBuilder) roomExclusivity() []milp.Constr {
	constrs := make([]milp.Constr, 0, len(b.data.Rooms)*len(b.data.Days)*len(b.data.Sessions))

	for r, room := range b.data.Rooms {
		for d, day := range b.data.Days {
			for s, session := range b.data.Sessions {
				terms := make([]milp.Term, 0, len(b.data.ClassLecturers))
				for u := range b.data.ClassLecturers {
					terms = append(terms, b.assignTerm(uint64(u), uint64(r), uint64(d), uint64(s), 1))
				}
				constrs = append(constrs, milp.Constr{
					Name:  fmt.Sprintf("room_%d_single_unit_%d_%d", room.ID, day.ID, session.ID),
					Terms: terms,
					Kind:  milp.LE,
					RHS:   1,
				})
			}
		}
	}

	return constrs
}

// Theory and Response units only fit rooms with enough seats. Practicum
// bypasses the capacity check.
func (b *constraintBuilder) capacityFit() []milp.Constr {
	constrs := []milp.Constr{}

	for u, unit := range b.data.ClassLecturers {
		if unit.SubjectType != SubjectTheory && unit.SubjectType != SubjectResponse {
			continue
		}
		for r, room := range b.data.Rooms {
			for d, day := range b.data.Days {
				for s, session := range b.data.Sessions {
					constrs = append(constrs, milp.Constr{
						Name:  fmt.Sprintf("room_capacity_%d_%d_%d_%d", unit.ID, room.ID, day.ID, session.ID),
						Terms: []milp.Term{b.assignTerm(uint64(u), uint64(r), uint64(d), uint64(s), float64(unit.Capacity))},
						Kind:  milp.LE,
						RHS:   float64(room.Capacity),
					})
				}
			}
		}
	}

	return constrs
}

// A lecturer teaches at most maxDailyTheorySessions Theory sessions per day,
// counting both primary and secondary assignments.
func (b *constraintBuilder) dailyTheoryLoadCap() []milp.Constr {
	constrs := []milp.Constr{}

	for _, lecturer := range b.data.Lecturers {
		for d, day := range b.data.Days {
			terms := []milp.Term{}
			for u, unit := range b.data.ClassLecturers {
				if unit.SubjectType != SubjectTheory || !unit.LedBy(lecturer.ID) {
					continue
				}
				for r := range b.data.Rooms {
					for s := range b.data.Sessions {
						terms = append(terms, b.assignTerm(uint64(u), uint64(r), uint64(d), uint64(s), 1))
					}
				}
			}
			if len(terms) == 0 {
				continue
			}
			constrs = append(constrs, milp.Constr{
				Name:  fmt.Sprintf("lecturer_%d_daily_theory_cap_%d", lecturer.ID, day.ID),
				Terms: terms,
				Kind:  milp.LE,
				RHS:   maxDailyTheorySessions,
			})
		}
	}

	return constrs
}

// Friday's third session hosts nothing.
func (b *constraintBuilder) fridayBlackout() []milp.Constr {
	constrs := []milp.Constr{}

	for d, day := range b.data.Days {
		if !day.Friday {
			continue
		}
		for s, session := range b.data.Sessions {
			if session.Number != fridayBlackedOutSession {
				continue
			}
			for u, unit := range b.data.ClassLecturers {
				for r, room := range b.data.Rooms {
					constrs = append(constrs, milp.Constr{
						Name:  fmt.Sprintf("no_third_session_friday_%d_%d_%d_%d", unit.ID, room.ID, day.ID, session.ID),
						Terms: []milp.Term{b.assignTerm(uint64(u), uint64(r), uint64(d), uint64(s), 1)},
						Kind:  milp.EQ,
						RHS:   0,
					})
				}
			}
		}
	}

	return constrs
}

// Units of the same class group meet in the same day and session. This
// variant covers the pairs that are not practicum twins.
func (b *constraintBuilder) classGroupCoSchedule() []milp.Constr {
	return b.coScheduleConstrs("group_sync", func(first, second ClassLecturer) bool {
		return !first.Practicum() || !second.Practicum()
	})
}

// Practicum twins of the same class group meet in the same day and session.
func (b *constraintBuilder) practicumCoSchedule() []milp.Constr {
	return b.coScheduleConstrs("practicum_sync", func(first, second ClassLecturer) bool {
		return first.Practicum() && second.Practicum()
	})
}

// coScheduleConstrs equates the room-marginal sums of every admissible unit
// pair of a class group, for every day and session.
func (b *constraintBuilder) coScheduleConstrs(name string, admissible func(first, second ClassLecturer) bool) []milp.Constr {
	constrs := []milp.Constr{}

	for _, pair := range b.groupPairs(admissible) {
		first, second := b.data.ClassLecturers[pair[0]], b.data.ClassLecturers[pair[1]]
		for d, day := range b.data.Days {
			for s, session := range b.data.Sessions {
				terms := make([]milp.Term, 0, 2*len(b.data.Rooms))
				for r := range b.data.Rooms {
					terms = append(terms, b.assignTerm(pair[0], uint64(r), uint64(d), uint64(s), 1))
				}
				for r := range b.data.Rooms {
					terms = append(terms, b.assignTerm(pair[1], uint64(r), uint64(d), uint64(s), -1))
				}
				constrs = append(constrs, milp.Constr{
					Name:  fmt.Sprintf("%v_%d_%d_%d_%d", name, first.ID, second.ID, day.ID, session.ID),
					Terms: terms,
					Kind:  milp.EQ,
					RHS:   0,
				})
			}
		}
	}

	return constrs
}

// Practicum twins never share a room.
func (b *constraintBuilder) practicumDistinctRoom() []milp.Constr {
	constrs := []milp.Constr{}

	for _, pair := range b.groupPairs(bothPracticum) {
		first, second := b.data.ClassLecturers[pair[0]], b.data.ClassLecturers[pair[1]]
		for d, day := range b.data.Days {
			for s, session := range b.data.Sessions {
				for r, room := range b.data.Rooms {
					constrs = append(constrs, milp.Constr{
						Name: fmt.Sprintf("practicum_distinct_room_%d_%d_%d_%d_%d", first.ID, second.ID, room.ID, day.ID, session.ID),
						Terms: []milp.Term{
							b.assignTerm(pair[0], uint64(r), uint64(d), uint64(s), 1),
							b.assignTerm(pair[1], uint64(r), uint64(d), uint64(s), 1),
						},
						Kind: milp.LE,
						RHS:  1,
					})
				}
			}
		}
	}

	return constrs
}

// Practicum twins sit in rooms of the same type: Online pairs with Online,
// Lab pairs with Lab, never mixed.
func (b *constraintBuilder) practicumRoomCohesion() []milp.Constr {
	constrs := []milp.Constr{}

	for _, pair := range b.groupPairs(bothPracticum) {
		first, second := b.data.ClassLecturers[pair[0]], b.data.ClassLecturers[pair[1]]
		for d, day := range b.data.Days {
			for s, session := range b.data.Sessions {
				for r1, room1 := range b.data.Rooms {
					for r2, room2 := range b.data.Rooms {
						onlineMixed := (room1.Type == RoomOnline) != (room2.Type == RoomOnline)
						labMixed := (room1.Type == RoomLab) != (room2.Type == RoomLab)
						if !onlineMixed && !labMixed {
							continue
						}
						constrs = append(constrs, milp.Constr{
							Name: fmt.Sprintf("practicum_room_cohesion_%d_%d_%d_%d_%d_%d", first.ID, second.ID, room1.ID, room2.ID, day.ID, session.ID),
							Terms: []milp.Term{
								b.assignTerm(pair[0], uint64(r1), uint64(d), uint64(s), 1),
								b.assignTerm(pair[1], uint64(r2), uint64(d), uint64(s), 1),
							},
							Kind: milp.LE,
							RHS:  1,
						})
					}
				}
			}
		}
	}

	return constrs
}

// A lecturer teaches at most one Theory unit per day and session.
func (b *constraintBuilder) lecturerNoDoubleBooking() []milp.Constr {
	constrs := []milp.Constr{}

	for _, lecturer := range b.data.Lecturers {
		for d, day := range b.data.Days {
			for s, session := range b.data.Sessions {
				terms := []milp.Term{}
				for u, unit := range b.data.ClassLecturers {
					if unit.SubjectType != SubjectTheory || !unit.LedBy(lecturer.ID) {
						continue
					}
					for r := range b.data.Rooms {
						terms = append(terms, b.assignTerm(uint64(u), uint64(r), uint64(d), uint64(s), 1))
					}
				}
				if len(terms) == 0 {
					continue
				}
				constrs = append(constrs, milp.Constr{
					Name:  fmt.Sprintf("lecturer_%d_no_double_booking_%d_%d", lecturer.ID, day.ID, session.ID),
					Terms: terms,
					Kind:  milp.LE,
					RHS:   1,
				})
			}
		}
	}

	return constrs
}

// roomTypeDispatch encodes room-type compatibility as one mutually exclusive
// branch per room type: Online rejects required-category Theory, Lab accepts
// only Practicum, Kelas accepts only Theory and Response. Exactly one branch
// applies per room; the branches are never OR'd together.
func (b *constraintBuilder) roomTypeDispatch() []milp.Constr {
	constrs := []milp.Constr{}

	for u, unit := range b.data.ClassLecturers {
		for r, room := range b.data.Rooms {
			var name string
			switch {
			case room.Type == RoomOnline:
				if !unit.RequiredTheory() {
					continue
				}
				name = "online_required_theory_block"
			case room.Type == RoomLab:
				if unit.Practicum() {
					continue
				}
				name = "lab_practicum_only_block"
			default: // RoomKelas
				if unit.SubjectType == SubjectTheory || unit.SubjectType == SubjectResponse {
					continue
				}
				name = "kelas_theory_response_only_block"
			}

			for d, day := range b.data.Days {
				for s, session := range b.data.Sessions {
					constrs = append(constrs, milp.Constr{
						Name:  fmt.Sprintf("%v_%d_%d_%d_%d", name, unit.ID, room.ID, day.ID, session.ID),
						Terms: []milp.Term{b.assignTerm(uint64(u), uint64(r), uint64(d), uint64(s), 1)},
						Kind:  milp.EQ,
						RHS:   0,
					})
				}
			}
		}
	}

	return constrs
}

// Explicit upper bound on placements per unit. Redundant with the
// schedule-once equality, kept as a safeguard when rule catalogs are swapped.
func (b *constraintBuilder) noDuplicatePlacement() []milp.Constr {
	constrs := make([]milp.Constr, 0, len(b.data.ClassLecturers))

	for u, unit := range b.data.ClassLecturers {
		constrs = append(constrs, milp.Constr{
			Name:  fmt.Sprintf("unit_%d_no_duplicate", unit.ID),
			Terms: b.unitTerms(uint64(u)),
			Kind:  milp.LE,
			RHS:   1,
		})
	}

	return constrs
}

func (b *constraintBuilder) assignTerm(unit, room, day, session uint64, coef float64) milp.Term {
	return milp.Term{Col: b.space.AssignVar(unit, room, day, session), Coef: coef}
}

// unitTerms collects one unit's assignment variables across the whole
// room/day/session cross-product.
func (b *constraintBuilder) unitTerms(unit uint64) []milp.Term {
	terms := make([]milp.Term, 0, len(b.data.Rooms)*len(b.data.Days)*len(b.data.Sessions))
	for r := range b.data.Rooms {
		for d := range b.data.Days {
			for s := range b.data.Sessions {
				terms = append(terms, b.assignTerm(unit, uint64(r), uint64(d), uint64(s), 1))
			}
		}
	}
	return terms
}

type classGroupKey struct {
	studyProgramClassID uint64
	semesterID          uint64
	classID             uint64
}

// groupPairs returns the ordered unit-position pairs of every class group
// with more than one member, filtered by the admissibility predicate.
func (b *constraintBuilder) groupPairs(admissible func(first, second ClassLecturer) bool) [][2]uint64 {
	groups := map[classGroupKey][]uint64{}
	keys := []classGroupKey{}
	for u, unit := range b.data.ClassLecturers {
		key := classGroupKey{unit.StudyProgramClassID, unit.SemesterID, unit.ClassID}
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], uint64(u))
	}

	pairs := [][2]uint64{}
	for _, key := range keys {
		members := groups[key]
		for i := range len(members) - 1 {
			for j := i + 1; j < len(members); j++ {
				first, second := b.data.ClassLecturers[members[i]], b.data.ClassLecturers[members[j]]
				if admissible(first, second) {
					pairs = append(pairs, [2]uint64{members[i], members[j]})
				}
			}
		}
	}
	return pairs
}

func bothPracticum(first, second ClassLecturer) bool {
	return first.Practicum() && second.Practicum()
}
