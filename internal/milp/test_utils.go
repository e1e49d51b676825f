package milp

import "math/rand/v2"

// GenerateProblem builds a random 0/1 program with cardinality-style
// constraints. Instances are not guaranteed to be feasible.
func GenerateProblem(cols int32, constrs int) *Problem {
	problem := &Problem{Cols: cols}

	for i := 0; i < constrs; i++ {
		constr := Constr{Kind: ConstrKind(rand.IntN(3))}
		for col := int32(1); col <= cols; col++ {
			if rand.Float32() < 0.5 {
				constr.Terms = append(constr.Terms, Term{Col: col, Coef: float64(1 + rand.IntN(3))})
			}
		}
		if len(constr.Terms) == 0 {
			constr.Terms = append(constr.Terms, Term{Col: 1 + rand.Int32N(cols), Coef: 1})
		}
		constr.RHS = float64(rand.IntN(len(constr.Terms) + 1))
		problem.Constrs = append(problem.Constrs, constr)
	}

	return problem
}

// AssertSolution reports whether a solution is binary and satisfies every
// constraint of the problem.
func AssertSolution(problem *Problem, solution Solution) bool {
	if len(solution) != int(problem.Cols) {
		return false
	}
	for _, value := range solution {
		if value != 0 && value != 1 {
			return false
		}
	}

	for _, constr := range problem.Constrs {
		var sum float64
		for _, term := range constr.Terms {
			sum += term.Coef * solution.Value(term.Col)
		}
		switch constr.Kind {
		case LE:
			if sum > constr.RHS {
				return false
			}
		case GE:
			if sum < constr.RHS {
				return false
			}
		case EQ:
			if sum != constr.RHS {
				return false
			}
		}
	}

	return true
}
