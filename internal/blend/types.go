// Package blend formulates the raw-material blending problem as a linear
// program and interprets the solution back into domain figures.
package blend

// MaterialLot is one lot of raw material offered to the optimizer.
type MaterialLot struct {
	Name        string
	Composition map[string]float64 // element symbol -> mass fraction in percent
	Price       float64            // cost per kg
	Stock       float64            // available mass in kg
}

// Content returns the lot's mass fraction for one element in percent.
// Elements absent from the composition count as zero.
func (l MaterialLot) Content(element string) float64 {
	return l.Composition[element]
}

// OrderSpec describes the requested alloy output.
type OrderSpec struct {
	TotalWeight       float64            // required output mass in kg
	TargetComposition map[string]float64 // element symbol -> target percent
}

// Result is the outcome of one optimization call. Weights align with the
// input lot order. On failure only Message is populated.
type Result struct {
	Success   bool
	Message   string
	Weights   []float64
	TotalCost float64
}
