package milp

import "context"

type Solver interface {
	// Solve returns an assignment of the problem's binary columns if one exists,
	// else returns nil (both are valid outputs where error shall be nil). The
	// context carries the caller's deadline into the underlying solver.
	Solve(ctx context.Context, problem *Problem) (Solution, error)
}
