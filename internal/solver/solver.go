// Package solver wraps a general-purpose linear-programming backend behind a
// value-typed contract: infeasibility is an outcome, backend faults are
// errors, and nothing panics across the package boundary.
package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solution is the outcome of one solve. X and Objective are only meaningful
// when Feasible is true; Message carries the backend's diagnostic otherwise.
type Solution struct {
	Feasible  bool
	X         []float64
	Objective float64
	Message   string
}

// Solve minimizes c·x subject to ineqCoeffs·x <= ineqRHS,
// eqCoeffs·x = eqRHS, and x >= 0.
//
// The variables are already non-negative, so the standard form is built
// directly: each inequality row gains one slack column and the equality rows
// are carried unchanged. The resulting equalities are handed to gonum's
// simplex solver and the original variables are read off the front of its
// solution vector.
func Solve(c []float64, ineqCoeffs [][]float64, ineqRHS []float64, eqCoeffs [][]float64, eqRHS []float64) (sol Solution, err error) {
	n := len(c)
	if n == 0 {
		return Solution{}, fmt.Errorf("no decision variables")
	}
	if len(ineqCoeffs) != len(ineqRHS) {
		return Solution{}, fmt.Errorf("got %d inequality rows for %d bounds", len(ineqCoeffs), len(ineqRHS))
	}
	if len(eqCoeffs) != len(eqRHS) {
		return Solution{}, fmt.Errorf("got %d equality rows for %d bounds", len(eqCoeffs), len(eqRHS))
	}
	nSlack := len(ineqRHS)
	rows := nSlack + len(eqRHS)
	if rows == 0 {
		return Solution{}, fmt.Errorf("no constraint rows")
	}

	// The backend panics on malformed matrices; surface that as a fault.
	defer func() {
		if r := recover(); r != nil {
			sol = Solution{}
			err = fmt.Errorf("lp backend failure: %v", r)
		}
	}()

	cols := n + nSlack
	cStd := make([]float64, cols)
	copy(cStd, c)

	aStd := mat.NewDense(rows, cols, nil)
	bStd := make([]float64, rows)
	for i, row := range ineqCoeffs {
		if len(row) != n {
			return Solution{}, fmt.Errorf("inequality row %d has %d coefficients, want %d", i, len(row), n)
		}
		for j, coeff := range row {
			aStd.Set(i, j, coeff)
		}
		aStd.Set(i, n+i, 1)
		bStd[i] = ineqRHS[i]
	}
	for i, row := range eqCoeffs {
		if len(row) != n {
			return Solution{}, fmt.Errorf("equality row %d has %d coefficients, want %d", i, len(row), n)
		}
		for j, coeff := range row {
			aStd.Set(nSlack+i, j, coeff)
		}
		bStd[nSlack+i] = eqRHS[i]
	}

	opt, xStd, err := lp.Simplex(cStd, aStd, bStd, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return Solution{Message: err.Error()}, nil
		}
		return Solution{}, fmt.Errorf("lp backend failure: %w", err)
	}

	x := make([]float64, n)
	copy(x, xStd)
	return Solution{Feasible: true, X: x, Objective: opt}, nil
}
