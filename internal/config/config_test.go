package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePlan(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blend.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write plan file: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writePlan(t, `
materials:
  - name: beverage-cans
    preset: beverage-cans
    stock: 5000
  - name: custom-scrap
    composition:
      Al: 99.0
      Cu: 0.3
      Mg: 0.3
      Zn: 0.2
    price: 18.0
    stock: 5000
order:
  totalWeight: 1000
  targetComposition:
    Al: 98.0
    Cu: 0.2
    Mg: 0.5
    Zn: 0.5
optimization:
  scarcityCap: false
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if len(conf.Elements) != 4 {
		t.Errorf("expected default element set of 4, got %v", conf.Elements)
	}
	if len(conf.Materials) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(conf.Materials))
	}
	if conf.Order.TotalWeight != 1000 {
		t.Errorf("TotalWeight = %f, expected 1000", conf.Order.TotalWeight)
	}
	// Keys must come back in canonical element casing despite viper
	// lowercasing map keys.
	if conf.Order.TargetComposition["Al"] != 98.0 {
		t.Errorf("target Al = %f, expected 98.0", conf.Order.TargetComposition["Al"])
	}
	if conf.Materials[1].Composition["Zn"] != 0.2 {
		t.Errorf("custom-scrap Zn = %f, expected 0.2", conf.Materials[1].Composition["Zn"])
	}
	if conf.Materials[1].Price == nil || *conf.Materials[1].Price != 18.0 {
		t.Errorf("custom-scrap price not parsed")
	}
	if conf.Optimization.ScarcityCapEnabled() {
		t.Errorf("scarcityCap: false not honored")
	}
	if conf.Logging.Level != "debug" || conf.Logging.Format != "console" {
		t.Errorf("logging config not parsed: %+v", conf.Logging)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("output format = %q, expected csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("LoadConfiguration() expected error for missing file")
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	plan := `
elements: ["Al", "Si"]
materials:
  - name: silicon-bearing
    composition:
      Al: 90.0
      Si: 8.0
    price: 12.0
    stock: 400
order:
  totalWeight: 200
  targetComposition:
    Al: 90.0
    Si: 8.0
`
	conf, err := LoadConfigurationFromReader(strings.NewReader(plan))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}

	if len(conf.Elements) != 2 || conf.Elements[1] != "Si" {
		t.Errorf("custom element set not parsed: %v", conf.Elements)
	}
	if conf.Materials[0].Composition["Si"] != 8.0 {
		t.Errorf("Si content = %f, expected 8.0", conf.Materials[0].Composition["Si"])
	}
}

func TestScarcityCapDefaultsToEnabled(t *testing.T) {
	conf := Configuration{}
	if !conf.Optimization.ScarcityCapEnabled() {
		t.Errorf("scarcity cap should default to enabled")
	}
}

func TestApplyPresets(t *testing.T) {
	override := 16.0
	conf := Configuration{
		Elements: DefaultElements,
		Materials: []Material{
			{Name: "cans", Preset: "beverage-cans", Stock: 1000},
			{Name: "pricier-cans", Preset: "beverage-cans", Price: &override, Stock: 500},
			{
				Name:        "tweaked-foil",
				Preset:      "packaging-foil",
				Composition: map[string]float64{"Zn": 0.5},
				Stock:       200,
			},
		},
	}

	if err := conf.ApplyPresets(); err != nil {
		t.Fatalf("ApplyPresets() error = %v", err)
	}

	if conf.Materials[0].Composition["Al"] != 97.5 {
		t.Errorf("preset composition not applied: Al = %f", conf.Materials[0].Composition["Al"])
	}
	if conf.Materials[0].UnitPrice() != 15.0 {
		t.Errorf("preset price not applied: %f", conf.Materials[0].UnitPrice())
	}
	if conf.Materials[1].UnitPrice() != 16.0 {
		t.Errorf("explicit price not preserved: %f", conf.Materials[1].UnitPrice())
	}
	if conf.Materials[2].Composition["Zn"] != 0.5 {
		t.Errorf("explicit composition override lost: Zn = %f", conf.Materials[2].Composition["Zn"])
	}
	if conf.Materials[2].Composition["Al"] != 99.5 {
		t.Errorf("preset composition fill-in lost: Al = %f", conf.Materials[2].Composition["Al"])
	}
}

func TestApplyPresetsUnknown(t *testing.T) {
	conf := Configuration{
		Elements:  DefaultElements,
		Materials: []Material{{Name: "mystery", Preset: "unobtainium"}},
	}

	if err := conf.ApplyPresets(); err == nil {
		t.Errorf("ApplyPresets() expected error for unknown preset")
	}
}

func TestValidateConfigurationWarnings(t *testing.T) {
	price := 10.0
	conf := Configuration{
		Elements: []string{"Al", "Cu"},
		Materials: []Material{
			{
				Name:        "overfull",
				Composition: map[string]float64{"Al": 95, "Cu": 10},
				Price:       &price,
				Stock:       100,
			},
		},
		Order: OrderSpec{
			TotalWeight:       100,
			TargetComposition: map[string]float64{"Al": 95, "Fe": 1},
		},
	}

	warnings := conf.ValidateConfiguration()

	assertWarning := func(substring string) {
		t.Helper()
		for _, warning := range warnings {
			if strings.Contains(warning, substring) {
				return
			}
		}
		t.Errorf("expected a warning containing %q, got %v", substring, warnings)
	}

	// 95 + 10 = 105
	assertWarning("exceeds 100%")
	// untracked target element
	assertWarning(`element "Fe"`)
	// scarcity cap with a single lot
	assertWarning("fewer than two material")
}

func TestValidateConfigurationClean(t *testing.T) {
	price := 15.0
	disabled := false
	conf := Configuration{
		Elements: []string{"Al"},
		Materials: []Material{
			{Name: "a", Composition: map[string]float64{"Al": 95}, Price: &price, Stock: 100},
			{Name: "b", Composition: map[string]float64{"Al": 96}, Price: &price, Stock: 100},
		},
		Order: OrderSpec{
			TotalWeight:       100,
			TargetComposition: map[string]float64{"Al": 95.5},
		},
		Optimization: OptimizationConfig{ScarcityCap: &disabled},
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}
