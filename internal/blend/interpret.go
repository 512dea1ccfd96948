package blend

import (
	"fmt"

	"github.com/avierra/alloy-blend/pkg/constants"
	"github.com/avierra/alloy-blend/pkg/mathutil"
)

// UsageLine reports one lot's assignment in the optimal blend.
type UsageLine struct {
	Name      string
	Weight    float64 // kg assigned
	Share     float64 // percent of the order weight
	Cost      float64
	CostShare float64 // percent of the total cost
}

// ElementLine compares the blend's content of one element against its target.
type ElementLine struct {
	Element   string
	Target    float64
	Actual    float64
	Deviation float64
}

// Report aggregates the solved weights into the figures shown to operators.
type Report struct {
	Usage       []UsageLine
	Composition []ElementLine
	TotalCost   float64
	UnitCost    float64 // cost per kg of ordered output
	TotalUsed   float64 // kg of material assigned
	Utilization float64 // percent of the order weight covered
}

// FinalComposition computes the blended alloy's content per element, in
// percent. It fails when the assigned mass is effectively zero, which would
// make the composition undefined.
func FinalComposition(lots []MaterialLot, weights []float64, elements []string) (map[string]float64, error) {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if mathutil.IsZero(total) {
		return nil, fmt.Errorf("total assigned mass is zero; composition is undefined")
	}

	composition := make(map[string]float64, len(elements))
	for _, element := range elements {
		mass := 0.0
		for i, lot := range lots {
			mass += weights[i] * lot.Content(element) / 100
		}
		composition[element] = mass / total * 100
	}
	return composition, nil
}

// BuildReport derives usage, cost, and composition figures from solved lot
// weights. Lots assigned less than the trace threshold are excluded from the
// breakdowns.
func BuildReport(lots []MaterialLot, weights []float64, order OrderSpec, elements []string) (*Report, error) {
	if len(weights) != len(lots) {
		return nil, fmt.Errorf("got %d weights for %d lots", len(weights), len(lots))
	}

	composition, err := FinalComposition(lots, weights, elements)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for i, lot := range lots {
		if weights[i] <= constants.TraceWeightThreshold {
			continue
		}
		cost := weights[i] * lot.Price
		report.TotalUsed += weights[i]
		report.TotalCost += cost
		report.Usage = append(report.Usage, UsageLine{
			Name:   lot.Name,
			Weight: mathutil.Round(weights[i]),
			Share:  mathutil.CalculatePercentage(weights[i], order.TotalWeight),
			Cost:   mathutil.Round(cost),
		})
	}

	for i := range report.Usage {
		report.Usage[i].CostShare = mathutil.CalculatePercentage(report.Usage[i].Cost, report.TotalCost)
	}

	if order.TotalWeight > 0 {
		report.UnitCost = report.TotalCost / order.TotalWeight
	}
	report.Utilization = mathutil.CalculatePercentage(report.TotalUsed, order.TotalWeight)

	for _, element := range elements {
		target := order.TargetComposition[element]
		actual := composition[element]
		report.Composition = append(report.Composition, ElementLine{
			Element:   element,
			Target:    target,
			Actual:    actual,
			Deviation: actual - target,
		})
	}

	return report, nil
}
