package milp

import (
	"context"
	"fmt"

	"github.com/lukpank/go-glpk/glpk"
)

type glpkSolver struct{}

// NewGlpkSolver returns a Solver backed by GLPK's in-process branch-and-cut.
// It minimizes the problem's objective and proves infeasibility exactly.
func NewGlpkSolver() Solver {
	return &glpkSolver{}
}

func (solver *glpkSolver) Solve(ctx context.Context, problem *Problem) (Solution, error) {
	type result struct {
		solution Solution
		err      error
	}

	// GLPK cannot be interrupted mid-run; the solve is pushed onto a goroutine
	// so the caller's deadline is still honored.
	done := make(chan result, 1)
	go func() {
		solution, err := solveGlpk(problem)
		done <- result{solution, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.solution, r.err
	}
}

func solveGlpk(problem *Problem) (Solution, error) {
	lp := glpk.New()
	defer lp.Delete()

	lp.SetProbName("classroom_scheduling")
	lp.SetObjDir(glpk.ObjDir(glpk.MIN))

	if problem.Cols == 0 {
		return Solution{}, nil
	}

	lp.AddCols(int(problem.Cols))
	for col := 1; col <= int(problem.Cols); col++ {
		lp.SetColName(col, fmt.Sprintf("x%d", col))
		lp.SetColKind(col, glpk.VarType(glpk.BV))
	}
	for _, term := range problem.Objective {
		lp.SetObjCoef(int(term.Col), term.Coef)
	}

	for i, constr := range problem.Constrs {
		lp.AddRows(1)
		row := i + 1
		lp.SetRowName(row, constr.Name)
		switch constr.Kind {
		case LE:
			lp.SetRowBnds(row, glpk.BndsType(glpk.UP), 0, constr.RHS)
		case GE:
			lp.SetRowBnds(row, glpk.BndsType(glpk.LO), constr.RHS, 0)
		case EQ:
			lp.SetRowBnds(row, glpk.BndsType(glpk.FX), constr.RHS, constr.RHS)
		}

		indices := make([]int32, len(constr.Terms))
		coefs := make([]float64, len(constr.Terms))
		for j, term := range constr.Terms {
			indices[j] = term.Col
			coefs[j] = term.Coef
		}
		lp.SetMatRow(row, indices, coefs)
	}

	smcp := glpk.NewSmcp()
	smcp.SetMsgLev(glpk.MsgLev(glpk.MSG_ERR))
	if err := lp.Simplex(smcp); err != nil {
		return nil, fmt.Errorf("an error occurred during the simplex phase: %v", err)
	}
	switch lp.Status() {
	case glpk.OPT:
	case glpk.NOFEAS, glpk.INFEAS:
		return nil, nil // The LP relaxation has no solution, hence neither has the integer program
	default:
		return nil, fmt.Errorf("unexpected relaxation status: %v", lp.Status())
	}

	iocp := glpk.NewIocp()
	iocp.SetPresolve(false) // Branch-and-cut starts from the optimal simplex basis computed above
	iocp.SetMsgLev(glpk.MsgLev(glpk.MSG_ERR))
	if err := lp.Intopt(iocp); err != nil {
		return nil, fmt.Errorf("an error occurred during the branch-and-cut phase: %v", err)
	}

	switch lp.MipStatus() {
	case glpk.OPT, glpk.FEAS:
	case glpk.NOFEAS:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected integer-optimization status: %v", lp.MipStatus())
	}

	solution := make(Solution, problem.Cols)
	for col := 1; col <= int(problem.Cols); col++ {
		solution[col-1] = lp.MipColVal(col)
	}
	return solution, nil
}
