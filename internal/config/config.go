// Package config defines the data structures related to a blend plan and
// includes functions for loading and preparing the plan for optimization.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
)

// Configuration holds one complete blend plan: the tracked element set, the
// material lots on hand, the order to fill, and runtime options.
type Configuration struct {
	Elements     []string
	Materials    []Material
	Order        OrderSpec
	Optimization OptimizationConfig `yaml:"optimization,omitempty"`
	Logging      LoggingConfig      `yaml:"logging,omitempty"`
	Output       OutputConfig       `yaml:"output,omitempty"`
}

// Material describes one lot of raw material. Naming a Preset inherits the
// catalog's composition and default price; explicitly set fields win.
type Material struct {
	Name        string
	Preset      string             `yaml:"preset,omitempty"`
	Composition map[string]float64 `yaml:"composition,omitempty"`
	Price       *float64           `yaml:"price,omitempty"` // cost per kg
	Stock       float64            // available mass in kg
}

// UnitPrice returns the lot's resolved cost per kg.
func (m Material) UnitPrice() float64 {
	if m.Price != nil {
		return *m.Price
	}
	return 0
}

// OrderSpec describes the requested alloy output.
type OrderSpec struct {
	TotalWeight       float64            // kg
	TargetComposition map[string]float64 // element symbol -> target percent
}

// OptimizationConfig holds optimizer options.
type OptimizationConfig struct {
	ScarcityCap *bool `yaml:"scarcityCap,omitempty"`
}

// ScarcityCapEnabled reports whether the scarcity cap applies; it defaults
// to enabled when the plan does not say otherwise.
func (o OptimizationConfig) ScarcityCapEnabled() bool {
	if o.ScarcityCap == nil {
		return true
	}
	return *o.ScarcityCap
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DefaultElements is the element set assumed when a plan does not name one.
var DefaultElements = []string{"Al", "Cu", "Mg", "Zn"}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// blend plan there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return unmarshalConfiguration(v)
}

// LoadConfigurationFromReader loads a YAML-formatted blend plan from an
// in-memory source, e.g. an uploaded file.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return unmarshalConfiguration(v)
}

func unmarshalConfiguration(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if len(configuration.Elements) == 0 {
		configuration.Elements = append([]string(nil), DefaultElements...)
	}
	configuration.normalizeElementKeys()

	return &configuration, nil
}

// normalizeElementKeys rewrites composition and target keys to the tracked
// element symbols. Viper lowercases map keys during unmarshaling, so "al"
// must be matched back to "Al".
func (c *Configuration) normalizeElementKeys() {
	c.Order.TargetComposition = canonicalKeys(c.Order.TargetComposition, c.Elements)
	for i := range c.Materials {
		c.Materials[i].Composition = canonicalKeys(c.Materials[i].Composition, c.Elements)
	}
}

func canonicalKeys(m map[string]float64, elements []string) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	for key, value := range m {
		canonical := key
		for _, element := range elements {
			if strings.EqualFold(key, element) {
				canonical = element
				break
			}
		}
		out[canonical] = value
	}
	return out
}

// ApplyPresets resolves preset references on all materials: composition and
// price fall back to the catalog entry unless set explicitly. Materials
// without a preset are left untouched.
func (c *Configuration) ApplyPresets() error {
	for i := range c.Materials {
		material := &c.Materials[i]
		if material.Preset == "" {
			continue
		}
		preset, ok := Presets[material.Preset]
		if !ok {
			return fmt.Errorf("material %q references unknown preset %q", material.Name, material.Preset)
		}

		merged := make(map[string]float64, len(preset.Composition))
		for element, fraction := range preset.Composition {
			merged[element] = fraction
		}
		for element, fraction := range material.Composition {
			merged[element] = fraction
		}
		material.Composition = canonicalKeys(merged, c.Elements)

		if material.Price == nil {
			price := preset.Price
			material.Price = &price
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the plan and returns
// warnings. Hard input errors are the validation package's concern; these
// are conditions worth flagging but not fatal.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	tracked := make(map[string]bool, len(c.Elements))
	for _, element := range c.Elements {
		tracked[element] = true
	}

	for element := range c.Order.TargetComposition {
		if !tracked[element] {
			warnings = append(warnings, fmt.Sprintf("target for element %q is not in the tracked element set and will be ignored", element))
		}
	}

	for _, material := range c.Materials {
		if material.Price == nil {
			warnings = append(warnings, fmt.Sprintf("material %q has no price and no preset; assuming 0", material.Name))
		}
		if material.Stock == 0 {
			warnings = append(warnings, fmt.Sprintf("material %q has zero stock and cannot contribute to the blend", material.Name))
		}
		sum := 0.0
		for element, fraction := range material.Composition {
			if !tracked[element] {
				warnings = append(warnings, fmt.Sprintf("material %q declares untracked element %q", material.Name, element))
			}
			sum += fraction
		}
		if sum > 100 {
			warnings = append(warnings, fmt.Sprintf("material %q composition sums to %.2f%%, which exceeds 100%%", material.Name, sum))
		}
	}

	if c.Optimization.ScarcityCapEnabled() && len(c.Materials) < 2 {
		warnings = append(warnings, "scarcity cap has no effect with fewer than two material lots")
	}

	return warnings
}
