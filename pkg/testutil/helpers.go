// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/avierra/alloy-blend/internal/blend"
)

// FindUsage finds a usage line by material name in a blend report.
// Returns a pointer to the line if found, nil otherwise.
func FindUsage(report *blend.Report, name string) *blend.UsageLine {
	for i := range report.Usage {
		if report.Usage[i].Name == name {
			return &report.Usage[i]
		}
	}
	return nil
}
