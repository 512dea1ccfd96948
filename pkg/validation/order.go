package validation

import (
	"fmt"
)

// Target bounds in percent. The base element carries the remelt furnace's
// working range; alloying elements stay in the dilute regime.
const (
	BaseElement      = "Al"
	BaseElementMin   = 85.0
	BaseElementMax   = 99.9
	AlloyElementMin  = 0.0
	AlloyElementMax  = 10.0
	MaxTotalContents = 100.0
)

// LotInput carries the lot fields relevant to pre-optimization validation.
type LotInput struct {
	Name        string
	Price       float64
	Stock       float64
	Composition map[string]float64
}

// ValidateOrder checks an order's total weight and per-element targets
// against their domain bounds. It returns a list of problems; an empty list
// means the order is acceptable.
func ValidateOrder(totalWeight float64, targets map[string]float64, elements []string) []string {
	var errors []string

	if totalWeight <= 0 {
		errors = append(errors, "order weight must be greater than 0")
	}

	sum := 0.0
	for _, element := range elements {
		target, ok := targets[element]
		if !ok {
			errors = append(errors, fmt.Sprintf("no target content specified for element %s", element))
			continue
		}
		sum += target

		if element == BaseElement {
			if target < BaseElementMin || target > BaseElementMax {
				errors = append(errors, fmt.Sprintf("%s content must be between %.1f%% and %.1f%%",
					element, BaseElementMin, BaseElementMax))
			}
			continue
		}
		if target < AlloyElementMin || target > AlloyElementMax {
			errors = append(errors, fmt.Sprintf("%s content must be between %.1f%% and %.1f%%",
				element, AlloyElementMin, AlloyElementMax))
		}
	}

	if sum > MaxTotalContents {
		errors = append(errors, fmt.Sprintf("total element content (%.1f%%) cannot exceed %.1f%%",
			sum, MaxTotalContents))
	}

	return errors
}

// ValidateLots checks the material lots offered to the optimizer: at least
// one lot, unique names, and non-negative prices, stocks, and compositions.
func ValidateLots(lots []LotInput) []string {
	var errors []string

	if len(lots) == 0 {
		errors = append(errors, "at least one material lot is required")
		return errors
	}

	seen := make(map[string]bool, len(lots))
	for _, lot := range lots {
		if lot.Name == "" {
			errors = append(errors, "material lot without a name")
		}
		if seen[lot.Name] {
			errors = append(errors, fmt.Sprintf("duplicate material lot %q", lot.Name))
		}
		seen[lot.Name] = true

		if lot.Price < 0 {
			errors = append(errors, fmt.Sprintf("material %q has a negative price", lot.Name))
		}
		if lot.Stock < 0 {
			errors = append(errors, fmt.Sprintf("material %q has a negative stock", lot.Name))
		}
		for element, fraction := range lot.Composition {
			if fraction < 0 || fraction > 100 {
				errors = append(errors, fmt.Sprintf("material %q has an out-of-range %s content (%.2f%%)",
					lot.Name, element, fraction))
			}
		}
	}

	return errors
}
