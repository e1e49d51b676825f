package milp

import (
	"context"
	"fmt"
	"math"

	gophersat "github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns a pure-Go Solver that encodes the problem as a
// pseudo-boolean instance for gophersat. It decides feasibility only: the
// objective is ignored and the first model found is returned, so use it where
// portability matters more than assignment quality.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(ctx context.Context, problem *Problem) (Solution, error) {
	constrs, err := pbConstraints(problem)
	if err != nil {
		return nil, err
	}

	type result struct {
		solution Solution
		err      error
	}
	done := make(chan result, 1)
	go func() {
		solution, err := solveGophersat(problem.Cols, constrs)
		done <- result{solution, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.solution, r.err
	}
}

func solveGophersat(cols int32, constrs []gophersat.PBConstr) (Solution, error) {
	pb := gophersat.ParsePBConstrs(constrs)
	s := gophersat.New(pb)

	if s.Solve() != gophersat.Sat {
		return nil, nil
	}
	model := s.Model()

	solution := make(Solution, cols)
	for col := 0; col < int(cols) && col < len(model); col++ {
		if model[col] {
			solution[col] = 1
		}
	}
	return solution, nil
}

// pbConstraints translates the linear constraints into gophersat's
// sum(weight_i * lit_i) >= bound form; equalities become a pair of
// opposite inequalities.
func pbConstraints(problem *Problem) ([]gophersat.PBConstr, error) {
	constrs := make([]gophersat.PBConstr, 0, len(problem.Constrs))
	for _, constr := range problem.Constrs {
		lits := make([]int, len(constr.Terms))
		weights := make([]int, len(constr.Terms))
		for i, term := range constr.Terms {
			lits[i] = int(term.Col)
			weight := math.Round(term.Coef)
			if weight != term.Coef {
				return nil, fmt.Errorf("constraint %v carries a non-integer coefficient %v", constr.Name, term.Coef)
			}
			weights[i] = int(weight)
		}
		rhs := int(constr.RHS)

		switch constr.Kind {
		case GE:
			constrs = append(constrs, gophersat.GtEq(lits, weights, rhs))
		case LE:
			constrs = append(constrs, gophersat.LtEq(lits, weights, rhs))
		case EQ:
			// GtEq and LtEq normalize their slices in place, so each half of an
			// equality needs its own copy.
			constrs = append(constrs, gophersat.GtEq(copyInts(lits), copyInts(weights), rhs))
			constrs = append(constrs, gophersat.LtEq(lits, weights, rhs))
		}
	}
	return constrs, nil
}

func copyInts(values []int) []int {
	duplicate := make([]int, len(values))
	copy(duplicate, values)
	return duplicate
}
