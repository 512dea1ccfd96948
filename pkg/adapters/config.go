// Package adapters converts blend-plan configuration types into the blend
// engine's domain types so the engine stays independent of the config layer.
package adapters

import (
	"github.com/avierra/alloy-blend/internal/blend"
	"github.com/avierra/alloy-blend/internal/config"
)

// MaterialsToLots converts plan materials into the engine's lot type,
// restricting compositions to the tracked element set. Missing elements
// count as zero content.
func MaterialsToLots(materials []config.Material, elements []string) []blend.MaterialLot {
	lots := make([]blend.MaterialLot, len(materials))
	for i, material := range materials {
		composition := make(map[string]float64, len(elements))
		for _, element := range elements {
			composition[element] = material.Composition[element]
		}
		lots[i] = blend.MaterialLot{
			Name:        material.Name,
			Composition: composition,
			Price:       material.UnitPrice(),
			Stock:       material.Stock,
		}
	}
	return lots
}

// OrderToSpec converts the plan's order into the engine's order type.
func OrderToSpec(order config.OrderSpec) blend.OrderSpec {
	targets := make(map[string]float64, len(order.TargetComposition))
	for element, target := range order.TargetComposition {
		targets[element] = target
	}
	return blend.OrderSpec{
		TotalWeight:       order.TotalWeight,
		TargetComposition: targets,
	}
}
