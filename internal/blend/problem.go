package blend

import (
	"sort"

	"github.com/avierra/alloy-blend/pkg/constants"
)

// Problem is a canonical LP instance: minimize Objective·x subject to
// IneqCoeffs·x <= IneqRHS, EqCoeffs·x = EqRHS, x >= 0. One decision variable
// per input lot, in input order.
type Problem struct {
	Objective  []float64
	IneqCoeffs [][]float64
	IneqRHS    []float64
	EqCoeffs   [][]float64
	EqRHS      []float64
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int {
	return len(p.Objective)
}

// BuildProblem translates lots and an order into an LP instance. It is a pure
// transformation; an infeasible combination of constraints is a solver
// outcome, not a builder error.
func BuildProblem(lots []MaterialLot, order OrderSpec, elements []string, scarcityCap bool) *Problem {
	n := len(lots)

	prob := &Problem{
		Objective: make([]float64, n),
	}
	for i, lot := range lots {
		prob.Objective[i] = lot.Price
	}

	// Mass balance: the lot weights must sum to the order weight.
	massRow := make([]float64, n)
	for i := range massRow {
		massRow[i] = 1
	}
	prob.EqCoeffs = append(prob.EqCoeffs, massRow)
	prob.EqRHS = append(prob.EqRHS, order.TotalWeight)

	// Composition band: for each element the blend's content must land
	// within target +/- the band, expressed against the order weight so no
	// constraint divides by a variable.
	for _, element := range elements {
		target := order.TargetComposition[element]
		targetMin := (target - constants.CompositionBand) / 100
		targetMax := (target + constants.CompositionBand) / 100

		coeffs := make([]float64, n)
		negated := make([]float64, n)
		for i, lot := range lots {
			coeffs[i] = lot.Content(element) / 100
			negated[i] = -coeffs[i]
		}

		prob.IneqCoeffs = append(prob.IneqCoeffs, negated)
		prob.IneqRHS = append(prob.IneqRHS, -targetMin*order.TotalWeight)
		prob.IneqCoeffs = append(prob.IneqCoeffs, coeffs)
		prob.IneqRHS = append(prob.IneqRHS, targetMax*order.TotalWeight)
	}

	// Stock capacity: no lot may exceed its available mass.
	for i, lot := range lots {
		row := make([]float64, n)
		row[i] = 1
		prob.IneqCoeffs = append(prob.IneqCoeffs, row)
		prob.IneqRHS = append(prob.IneqRHS, lot.Stock)
	}

	// Scarcity cap: bound reliance on the two lowest-stock lots so a thin
	// supply line cannot dominate the blend. With a single lot the cap would
	// conflict with the mass balance, so it only applies to two or more lots.
	if scarcityCap && n >= 2 {
		for _, idx := range scarcestLots(lots, 2) {
			row := make([]float64, n)
			row[idx] = 1
			prob.IneqCoeffs = append(prob.IneqCoeffs, row)
			prob.IneqRHS = append(prob.IneqRHS, order.TotalWeight*constants.ScarcityCapRatio)
		}
	}

	return prob
}

// scarcestLots returns the indices of the count lowest-stock lots, ties
// broken by input order.
func scarcestLots(lots []MaterialLot, count int) []int {
	indices := make([]int, len(lots))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return lots[indices[a]].Stock < lots[indices[b]].Stock
	})
	if count > len(indices) {
		count = len(indices)
	}
	return indices[:count]
}
