package model

import "class-scheduling/internal/milp"

// VarSpace enumerates the two families of binary decision variables over a
// dataset: assignment variables assign[u,r,d,s] first, then lecturer-load
// indicators load[l,d,s]. Every combination owns exactly one column; the
// attribute arguments are positions into the dataset slices, not entity ids.
type VarSpace struct {
	Assign Indexer

	units     uint64
	rooms     uint64
	days      uint64
	sessions  uint64
	lecturers uint64

	loadOffset uint64
}

func NewVarSpace(data Dataset) *VarSpace {
	units := uint64(len(data.ClassLecturers))
	rooms := uint64(len(data.Rooms))
	days := uint64(len(data.Days))
	sessions := uint64(len(data.Sessions))

	return &VarSpace{
		Assign:     NewIndexer(units, rooms, days, sessions),
		units:      units,
		rooms:      rooms,
		days:       days,
		sessions:   sessions,
		lecturers:  uint64(len(data.Lecturers)),
		loadOffset: units * rooms * days * sessions,
	}
}

// AssignVar returns the column of assign[unit, room, day, session].
func (space *VarSpace) AssignVar(unit, room, day, session uint64) int32 {
	return int32(space.Assign.Index(unit, room, day, session))
}

// LoadVar returns the column of load[lecturer, day, session].
func (space *VarSpace) LoadVar(lecturer, day, session uint64) int32 {
	return int32(space.loadOffset + 1 + session + space.sessions*(day) + space.sessions*space.days*(lecturer))
}

// Columns is the total number of binary columns of both families.
func (space *VarSpace) Columns() int32 {
	return int32(space.loadOffset + space.lecturers*space.days*space.sessions)
}

// NewProblem returns an empty 0/1 program sized to the variable space.
func (space *VarSpace) NewProblem() *milp.Problem {
	return &milp.Problem{Cols: space.Columns()}
}
