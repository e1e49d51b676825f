package milp

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstrKind is the relational operator of a linear constraint.
type ConstrKind int

const (
	LE ConstrKind = iota // sum of terms <= RHS
	GE                   // sum of terms >= RHS
	EQ                   // sum of terms == RHS
)

// Term is a single coefficient*column product of a linear expression.
// Columns are 1-based, matching the usual LP-solver convention.
type Term struct {
	Col  int32
	Coef float64
}

// Constr is one linear constraint over binary columns.
type Constr struct {
	Name  string
	Terms []Term
	Kind  ConstrKind
	RHS   float64
}

// Problem is a 0/1 integer linear program: every column is binary, the
// objective is minimized.
type Problem struct {
	Cols      int32 // number of binary columns, indexed 1..Cols
	Objective []Term
	Constrs   []Constr
}

// Solution holds a value for every column of a solved problem.
type Solution []float64

// Value returns the solved value of a 1-based column.
func (s Solution) Value(col int32) float64 {
	return s[col-1]
}

// ObjectiveValue evaluates the problem's objective under a solution.
func (p *Problem) ObjectiveValue(solution Solution) float64 {
	var value float64
	for _, term := range p.Objective {
		value += term.Coef * solution.Value(term.Col)
	}
	return value
}

// ToLP renders the problem in CPLEX-LP text format, the lingua franca of
// file-based MILP solvers (glpsol --lp, cbc, lp_solve).
func (p *Problem) ToLP() string {
	var builder strings.Builder

	builder.WriteString("Minimize\n obj:")
	if len(p.Objective) == 0 {
		builder.WriteString(" 0 x1")
	}
	for i, term := range p.Objective {
		writeTerm(&builder, term, i == 0)
	}
	builder.WriteString("\nSubject To\n")

	for i, constr := range p.Constrs {
		name := constr.Name
		if name == "" {
			name = fmt.Sprintf("c%d", i+1)
		}
		fmt.Fprintf(&builder, " %v:", name)
		for j, term := range constr.Terms {
			writeTerm(&builder, term, j == 0)
		}
		switch constr.Kind {
		case LE:
			builder.WriteString(" <=")
		case GE:
			builder.WriteString(" >=")
		case EQ:
			builder.WriteString(" =")
		}
		fmt.Fprintf(&builder, " %v\n", formatCoef(constr.RHS))
	}

	builder.WriteString("Binary\n")
	for col := int32(1); col <= p.Cols; col++ {
		fmt.Fprintf(&builder, " x%d\n", col)
	}
	builder.WriteString("End\n")

	return builder.String()
}

func writeTerm(builder *strings.Builder, term Term, first bool) {
	coef := term.Coef
	switch {
	case coef < 0:
		builder.WriteString(" -")
		coef = -coef
	case first:
		builder.WriteString(" ")
	default:
		builder.WriteString(" +")
	}
	fmt.Fprintf(builder, " %v x%d", formatCoef(coef), term.Col)
}

func formatCoef(coef float64) string {
	return strconv.FormatFloat(coef, 'g', -1, 64)
}
