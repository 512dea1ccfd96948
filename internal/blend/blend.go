package blend

import (
	"fmt"

	"github.com/avierra/alloy-blend/internal/solver"
	"github.com/avierra/alloy-blend/pkg/mathutil"
	"go.uber.org/zap"
)

// Optimize formulates the blend LP for the given lots and order, solves it,
// and returns the outcome as a value. It never panics: infeasibility, solver
// faults, and degenerate solutions all come back as a failed Result with a
// descriptive message.
//
// The inputs are treated as an immutable snapshot; no state survives the call.
func Optimize(logger *zap.Logger, lots []MaterialLot, order OrderSpec, elements []string, scarcityCap bool) Result {
	if logger == nil {
		logger = zap.NewNop()
	}

	prob := BuildProblem(lots, order, elements, scarcityCap)
	logger.Debug("formulated blend LP",
		zap.String("op", "blend.Optimize"),
		zap.Int("lots", len(lots)),
		zap.Int("inequalityRows", len(prob.IneqRHS)),
		zap.Bool("scarcityCap", scarcityCap),
	)

	sol, err := solver.Solve(prob.Objective, prob.IneqCoeffs, prob.IneqRHS, prob.EqCoeffs, prob.EqRHS)
	if err != nil {
		logger.Error("LP solve failed",
			zap.String("op", "blend.Optimize"),
			zap.Error(err),
		)
		return Result{Message: fmt.Sprintf("error during solve: %v", err)}
	}
	if !sol.Feasible {
		return Result{Message: fmt.Sprintf("no feasible blend found: %s", sol.Message)}
	}

	total := 0.0
	for _, w := range sol.X {
		total += w
	}
	if mathutil.IsZero(total) {
		// The solver claimed success but assigned no mass; that breaks the
		// mass-balance contract and is reported as a fault, not a blend.
		return Result{Message: "solver returned a degenerate solution with zero assigned mass"}
	}

	logger.Debug("blend LP solved",
		zap.String("op", "blend.Optimize"),
		zap.Float64("totalCost", sol.Objective),
		zap.Float64("totalMass", total),
	)

	return Result{
		Success:   true,
		Message:   "optimization succeeded",
		Weights:   sol.X,
		TotalCost: sol.Objective,
	}
}
