// Package constants provides shared constants for the alloy-blend application.
package constants

// Blend formulation constants
const (
	// CompositionBand is the allowed deviation from each target element
	// percentage, in percentage points.
	CompositionBand = 0.5

	// ScarcityCapRatio limits each of the two lowest-stock lots to this
	// fraction of the order weight when the scarcity cap is enabled.
	ScarcityCapRatio = 0.3

	// TraceWeightThreshold is the mass in kg below which an assigned lot
	// weight is treated as unused and excluded from reports.
	TraceWeightThreshold = 0.001

	// MassTolerance is the tolerance for mass comparisons
	MassTolerance = 1e-3

	// DecimalPrecision is the precision for rounding reported figures (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default blend plan file name
	DefaultConfigFile = "blend.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML plans (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)
