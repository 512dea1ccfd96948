// Package output provides utilities for formatting and displaying blend reports.
package output

import (
	"fmt"

	"github.com/avierra/alloy-blend/internal/blend"
	"github.com/avierra/alloy-blend/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(report *blend.Report) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Optimal blend ---\n")
	fmt.Printf("Material             | Weight (kg) | Share (%%) | Cost\n")
	fmt.Printf("________             | ___________ | _________ | ____\n")
	for _, usage := range report.Usage {
		_, _ = p.Printf("%-20s | %11.2f | %9.2f | %s\n",
			usage.Name, usage.Weight, usage.Share, format.Money(usage.Cost))
	}

	fmt.Printf("\n")
	fmt.Printf("Total cost       : %s\n", format.Money(report.TotalCost))
	fmt.Printf("Unit cost        : %s/kg\n", format.Money(report.UnitCost))
	fmt.Printf("Material used    : %s kg\n", format.Mass(report.TotalUsed))
	fmt.Printf("Utilization      : %.1f%%\n", report.Utilization)

	fmt.Printf("\n--- Composition analysis ---\n")
	fmt.Printf("Element | Target %% | Actual %% | Deviation\n")
	fmt.Printf("_______ | ________ | ________ | _________\n")
	for _, line := range report.Composition {
		fmt.Printf("%-7s | %8.2f | %8.2f | %+9.2f\n",
			line.Element, line.Target, line.Actual, line.Deviation)
	}

	fmt.Printf("\n--- Cost breakdown ---\n")
	fmt.Printf("Material             | Cost share %% | Usage share %%\n")
	fmt.Printf("________             | ____________ | _____________\n")
	for _, usage := range report.Usage {
		fmt.Printf("%-20s | %12.1f | %13.1f\n", usage.Name, usage.CostShare, usage.Share)
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(report *blend.Report) {
	fmt.Printf(`"material","weight_kg","share_pct","cost","cost_share_pct"`)
	fmt.Printf("\n")
	for _, usage := range report.Usage {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f","%.1f"`,
			usage.Name, usage.Weight, usage.Share, usage.Cost, usage.CostShare)
		fmt.Printf("\n")
	}

	fmt.Printf(`"element","target_pct","actual_pct","deviation"`)
	fmt.Printf("\n")
	for _, line := range report.Composition {
		fmt.Printf(`"%s","%.2f","%.2f","%.2f"`,
			line.Element, line.Target, line.Actual, line.Deviation)
		fmt.Printf("\n")
	}

	fmt.Printf(`"total_cost","%.2f"`, report.TotalCost)
	fmt.Printf("\n")
	fmt.Printf(`"unit_cost","%.4f"`, report.UnitCost)
	fmt.Printf("\n")
	fmt.Printf(`"total_used_kg","%.2f"`, report.TotalUsed)
	fmt.Printf("\n")
	fmt.Printf(`"utilization_pct","%.1f"`, report.Utilization)
	fmt.Printf("\n")
}
