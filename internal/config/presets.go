package config

import "sort"

// Preset holds the default parameters for a common class of aluminum scrap.
// Compositions are mass fractions in percent; they do not sum to 100 because
// unmodeled trace elements fill the remainder.
type Preset struct {
	Composition map[string]float64 `json:"composition"`
	Price       float64            `json:"price"`   // default cost per kg
	Density     float64            `json:"density"` // g/cm^3, informational
}

// Presets is the built-in catalog of scrap classes. A plan's material may
// name one of these to inherit its composition and default price.
var Presets = map[string]Preset{
	"beverage-cans": {
		Composition: map[string]float64{"Al": 97.5, "Cu": 0.1, "Mg": 1.0, "Zn": 1.0},
		Price:       15.0, Density: 2.7,
	},
	"cable-cores": {
		Composition: map[string]float64{"Al": 99.0, "Cu": 0.3, "Mg": 0.3, "Zn": 0.2},
		Price:       18.0, Density: 2.7,
	},
	"extrusion-profiles": {
		Composition: map[string]float64{"Al": 95.0, "Cu": 0.5, "Mg": 1.2, "Zn": 3.0},
		Price:       16.5, Density: 2.7,
	},
	"aerospace-scrap": {
		Composition: map[string]float64{"Al": 90.0, "Cu": 2.0, "Mg": 5.0, "Zn": 2.5},
		Price:       25.0, Density: 2.8,
	},
	"automotive-sheet": {
		Composition: map[string]float64{"Al": 93.0, "Cu": 0.8, "Mg": 1.5, "Zn": 4.5},
		Price:       17.0, Density: 2.7,
	},
	"alloy-wheels": {
		Composition: map[string]float64{"Al": 92.0, "Cu": 0.5, "Mg": 2.0, "Zn": 5.0},
		Price:       19.0, Density: 2.8,
	},
	"electronics-housings": {
		Composition: map[string]float64{"Al": 96.0, "Cu": 0.2, "Mg": 0.5, "Zn": 3.0},
		Price:       16.0, Density: 2.7,
	},
	"cookware": {
		Composition: map[string]float64{"Al": 98.0, "Cu": 0.1, "Mg": 0.4, "Zn": 1.2},
		Price:       14.5, Density: 2.7,
	},
	"marine-plate": {
		Composition: map[string]float64{"Al": 94.0, "Cu": 0.3, "Mg": 3.0, "Zn": 2.5},
		Price:       20.0, Density: 2.7,
	},
	"rail-extrusions": {
		Composition: map[string]float64{"Al": 91.0, "Cu": 1.0, "Mg": 4.0, "Zn": 3.5},
		Price:       22.0, Density: 2.8,
	},
	"packaging-foil": {
		Composition: map[string]float64{"Al": 99.5, "Cu": 0.05, "Mg": 0.1, "Zn": 0.3},
		Price:       13.0, Density: 2.7,
	},
	"heat-sink-stock": {
		Composition: map[string]float64{"Al": 97.0, "Cu": 0.8, "Mg": 0.5, "Zn": 1.5},
		Price:       15.5, Density: 2.7,
	},
	"military-scrap": {
		Composition: map[string]float64{"Al": 89.0, "Cu": 2.5, "Mg": 6.0, "Zn": 2.0},
		Price:       28.0, Density: 2.8,
	},
	"formwork-panels": {
		Composition: map[string]float64{"Al": 95.5, "Cu": 0.4, "Mg": 1.0, "Zn": 2.8},
		Price:       16.0, Density: 2.7,
	},
	"general-alloy": {
		Composition: map[string]float64{"Al": 93.5, "Cu": 0.6, "Mg": 1.8, "Zn": 3.8},
		Price:       17.5, Density: 2.7,
	},
}

// PresetNames returns the catalog's names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
