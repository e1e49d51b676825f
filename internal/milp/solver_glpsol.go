package milp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

const glpsolPath = "glpsol"

type glpsolSolver struct{}

// NewGlpsolSolver returns a Solver that shells out to the glpsol binary,
// feeding it a CPLEX-LP rendering of the problem. Cancelling the context
// kills the solver process.
func NewGlpsolSolver() Solver {
	return &glpsolSolver{}
}

func (solver *glpsolSolver) Solve(ctx context.Context, problem *Problem) (Solution, error) {
	dir, err := os.MkdirTemp("", "glpsol")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	modelPath := filepath.Join(dir, "model.lp")
	outputPath := filepath.Join(dir, "solution.txt")
	if err := os.WriteFile(modelPath, []byte(problem.ToLP()), 0644); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, glpsolPath, "--lp", modelPath, "--output", outputPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("an error occurred during glpsol execution: %v : %v", err, stderr.String())
	}

	output, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read glpsol solution file: %v", err)
	}
	return parseGlpsolOutput(string(output), problem.Cols)
}

// parseGlpsolOutput reads glpsol's plain-text solution report: the Status
// line decides feasibility, the column table carries the variable values.
func parseGlpsolOutput(output string, cols int32) (Solution, error) {
	lines := strings.Split(output, "\n")

	feasible := false
	statusSeen := false
	for _, line := range lines {
		if !strings.HasPrefix(line, "Status:") {
			continue
		}
		statusSeen = true
		status := strings.TrimSpace(strings.TrimPrefix(line, "Status:"))
		switch {
		case strings.Contains(status, "OPTIMAL"), strings.Contains(status, "FEASIBLE"):
			feasible = true
		case strings.Contains(status, "EMPTY"), strings.Contains(status, "UNDEFINED"):
			feasible = false
		default:
			return nil, fmt.Errorf("unexpected glpsol status: %v", status)
		}
		break
	}
	if !statusSeen {
		return nil, fmt.Errorf("no status line in glpsol output")
	}
	if !feasible {
		return nil, nil
	}

	solution := make(Solution, cols)
	inColumns := false
	for _, line := range lines {
		if strings.Contains(line, "Column name") {
			inColumns = true
			continue
		}
		if !inColumns {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "---") {
			continue
		}

		// Rows look like: "     1 x1           *              1             0             1"
		// where the "*" marker is only present for integer columns.
		if len(fields) < 3 || !strings.HasPrefix(fields[1], "x") {
			continue
		}
		col, err := strconv.ParseInt(strings.TrimPrefix(fields[1], "x"), 10, 32)
		if err != nil || col < 1 || col > int64(cols) {
			continue
		}
		activityField := fields[2]
		if activityField == "*" {
			if len(fields) < 4 {
				continue
			}
			activityField = fields[3]
		}
		activity, err := strconv.ParseFloat(activityField, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse activity of column x%d: %v", col, err)
		}
		solution[col-1] = activity
	}

	return solution, nil
}
