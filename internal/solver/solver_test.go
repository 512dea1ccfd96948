package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSimpleLP(t *testing.T) {
	// minimize x + 2y subject to x + y = 10, x <= 4, x,y >= 0
	c := []float64{1, 2}
	ineq := [][]float64{{1, 0}}
	ineqRHS := []float64{4}
	eq := [][]float64{{1, 1}}
	eqRHS := []float64{10}

	sol, err := Solve(c, ineq, ineqRHS, eq, eqRHS)
	require.NoError(t, err)
	require.True(t, sol.Feasible)

	assert.InDelta(t, 4.0, sol.X[0], 1e-9)
	assert.InDelta(t, 6.0, sol.X[1], 1e-9)
	assert.InDelta(t, 16.0, sol.Objective, 1e-9)
}

func TestSolveNoInequalities(t *testing.T) {
	// minimize 3x + y subject to x + y = 5, x,y >= 0
	sol, err := Solve([]float64{3, 1}, nil, nil, [][]float64{{1, 1}}, []float64{5})
	require.NoError(t, err)
	require.True(t, sol.Feasible)

	assert.InDelta(t, 0.0, sol.X[0], 1e-9)
	assert.InDelta(t, 5.0, sol.X[1], 1e-9)
	assert.InDelta(t, 5.0, sol.Objective, 1e-9)
}

func TestSolveInfeasible(t *testing.T) {
	// x <= -1 conflicts with the implicit x >= 0
	sol, err := Solve([]float64{1}, [][]float64{{1}}, []float64{-1}, nil, nil)
	require.NoError(t, err)

	assert.False(t, sol.Feasible)
	assert.NotEmpty(t, sol.Message)
}

func TestSolveUnboundedIsFault(t *testing.T) {
	// y never appears in a constraint row, so the objective is unbounded
	_, err := Solve([]float64{-1, -1}, [][]float64{{1, 0}}, []float64{5}, nil, nil)
	assert.Error(t, err)
}

func TestSolveNoConstraintsIsError(t *testing.T) {
	_, err := Solve([]float64{1}, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestSolveLargeInstance(t *testing.T) {
	// 15 variables with per-variable capacity rows, a fractional band pair
	// whose lower bound lands as a negative right-hand side, and a
	// total-mass equality.
	n := 15
	c := make([]float64, n)
	var ineq [][]float64
	var ineqRHS []float64
	lower := make([]float64, n)
	upper := make([]float64, n)
	for i := 0; i < n; i++ {
		c[i] = float64(11 + i)
		row := make([]float64, n)
		row[i] = 1
		ineq = append(ineq, row)
		ineqRHS = append(ineqRHS, 2000)
		lower[i] = -0.95
		upper[i] = 0.95
	}
	ineq = append(ineq, lower, upper)
	ineqRHS = append(ineqRHS, -9400, 9600)

	eq := make([]float64, n)
	for i := range eq {
		eq[i] = 1
	}

	sol, err := Solve(c, ineq, ineqRHS, [][]float64{eq}, []float64{10000})
	require.NoError(t, err)
	require.True(t, sol.Feasible)

	// The five cheapest variables fill their capacity of 2000 each.
	assert.InDelta(t, 130000.0, sol.Objective, 1e-6)
	total := 0.0
	for _, v := range sol.X {
		total += v
	}
	assert.InDelta(t, 10000.0, total, 1e-6)
}

func TestSolveInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		c       []float64
		ineq    [][]float64
		ineqRHS []float64
		eq      [][]float64
		eqRHS   []float64
	}{
		{
			name: "No decision variables",
		},
		{
			name:    "Inequality row count mismatch",
			c:       []float64{1},
			ineq:    [][]float64{{1}},
			ineqRHS: []float64{1, 2},
		},
		{
			name:  "Equality row count mismatch",
			c:     []float64{1},
			eq:    [][]float64{{1}},
			eqRHS: []float64{1, 2},
		},
		{
			name:    "Ragged inequality row",
			c:       []float64{1, 1},
			ineq:    [][]float64{{1}},
			ineqRHS: []float64{1},
		},
		{
			name:  "Ragged equality row",
			c:     []float64{1, 1},
			eq:    [][]float64{{1}},
			eqRHS: []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.c, tt.ineq, tt.ineqRHS, tt.eq, tt.eqRHS)
			assert.Error(t, err)
		})
	}
}

func TestSolveDeterministic(t *testing.T) {
	c := []float64{15, 18}
	ineq := [][]float64{{1, 0}, {0, 1}}
	ineqRHS := []float64{5000, 5000}
	eq := [][]float64{{1, 1}}
	eqRHS := []float64{1000}

	first, err := Solve(c, ineq, ineqRHS, eq, eqRHS)
	require.NoError(t, err)
	second, err := Solve(c, ineq, ineqRHS, eq, eqRHS)
	require.NoError(t, err)

	require.True(t, first.Feasible)
	require.True(t, second.Feasible)
	assert.Equal(t, first.X, second.X)
	assert.Equal(t, first.Objective, second.Objective)
}
