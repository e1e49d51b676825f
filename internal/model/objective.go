package model

import "class-scheduling/internal/milp"

// BuildObjective constructs the minimized linear cost: capacity waste for
// every strictly oversized unit/room pairing, plus the sum of all
// lecturer-load indicators. Exact and undersized fits contribute nothing.
//
// The load indicators are deliberately not linked to the assignment
// variables; see DESIGN.md.
func BuildObjective(space *VarSpace, data Dataset) []milp.Term {
	terms := make([]milp.Term, 0, space.Columns())

	for u, unit := range data.ClassLecturers {
		for r, room := range data.Rooms {
			if room.Capacity <= unit.Capacity {
				continue
			}
			waste := float64(room.Capacity - unit.Capacity)
			for d := range data.Days {
				for s := range data.Sessions {
					terms = append(terms, milp.Term{
						Col:  space.AssignVar(uint64(u), uint64(r), uint64(d), uint64(s)),
						Coef: waste,
					})
				}
			}
		}
	}

	for l := range data.Lecturers {
		for d := range data.Days {
			for s := range data.Sessions {
				terms = append(terms, milp.Term{
					Col:  space.LoadVar(uint64(l), uint64(d), uint64(s)),
					Coef: 1,
				})
			}
		}
	}

	return terms
}
