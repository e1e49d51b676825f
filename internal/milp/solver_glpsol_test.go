package milp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const glpsolOptimalReport = `Problem:    model
Rows:       3
Columns:    3 (3 integer, 3 binary)
Non-zeros:  5
Status:     INTEGER OPTIMAL
Objective:  obj = 10 (MINimum)

   No.   Row name        Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 pick_one                    1             1             =
     2 capacity                   20                        30

   No. Column name       Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 x1           *              1             0             1
     2 x2           *              0             0             1
     3 x3           *              1             0             1

Integer feasibility conditions:

KKT.PE: max.abs.err = 0.00e+00 on row 0
        max.rel.err = 0.00e+00 on row 0
        High quality

End of output
`

const glpsolInfeasibleReport = `Problem:    model
Rows:       2
Columns:    2 (2 integer, 2 binary)
Non-zeros:  4
Status:     INTEGER EMPTY
Objective:  obj = 0 (MINimum)

   No.   Row name        Activity     Lower bound   Upper bound
------ ------------    ------------- ------------- -------------
     1 both                        0             2             =

End of output
`

func TestParseGlpsolOutputOptimal(t *testing.T) {
	solution, err := parseGlpsolOutput(glpsolOptimalReport, 3)

	assert.Nil(t, err)
	assert.Equal(t, Solution{1, 0, 1}, solution)
}

func TestParseGlpsolOutputInfeasible(t *testing.T) {
	solution, err := parseGlpsolOutput(glpsolInfeasibleReport, 2)

	assert.Nil(t, err)
	assert.Nil(t, solution)
}

func TestParseGlpsolOutputMissingStatus(t *testing.T) {
	_, err := parseGlpsolOutput("garbage\n", 1)

	assert.NotNil(t, err)
}
