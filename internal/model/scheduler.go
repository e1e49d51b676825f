package model

import (
	"context"
	"fmt"

	"class-scheduling/internal/milp"
)

// Scheduler turns a normalized dataset into a timetable: it builds the 0/1
// integer program, hands it to the solver and extracts the assignment.
type Scheduler interface {
	// Schedule returns one record per class-lecturer unit. It fails with
	// ErrInfeasibleModel when the solver proves the constraint set empty and
	// wraps any other solver failure in ErrSolver; it never relaxes a
	// constraint on its own.
	Schedule(ctx context.Context, data Dataset) ([]Schedule, error)

	// Verify re-checks a produced timetable against every scheduling rule.
	Verify(schedules []Schedule, data Dataset) bool
}

func NewScheduler(solver milp.Solver) Scheduler {
	return NewSchedulerWithRules(solver, DefaultRules())
}

// NewSchedulerWithRules runs an alternate rule catalog, for experiments with
// rule-set variants.
func NewSchedulerWithRules(solver milp.Solver, rules []Rule) Scheduler {
	return &milpScheduler{solver: solver, rules: rules}
}

type milpScheduler struct {
	solver milp.Solver
	rules  []Rule
}

// BuildProblem assembles the full integer program for a dataset: variable
// space, objective and constraint catalog. Exposed so callers can inspect
// the model (objective value, constraint counts) independently of solving.
func BuildProblem(space *VarSpace, data Dataset, rules []Rule) *milp.Problem {
	problem := space.NewProblem()
	problem.Objective = BuildObjective(space, data)
	problem.Constrs = NewConstraintBuilder(space, data, rules).Build()
	return problem
}

func (scheduler *milpScheduler) Schedule(ctx context.Context, data Dataset) ([]Schedule, error) {
	space := NewVarSpace(data)
	problem := BuildProblem(space, data, scheduler.rules)

	solution, err := scheduler.solver.Solve(ctx, problem)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolver, err)
	}
	if solution == nil {
		return nil, fmt.Errorf("%w: %d units, %d rooms, %d days, %d sessions",
			ErrInfeasibleModel, len(data.ClassLecturers), len(data.Rooms), len(data.Days), len(data.Sessions))
	}

	return ExtractSchedules(space, data, solution), nil
}
