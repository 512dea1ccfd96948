package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/avierra/alloy-blend/internal/config"
	"github.com/avierra/alloy-blend/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config holds the HTTP front-end's runtime settings. The plan upload limit
// is written as a human-friendly size ("256K", "10M") and resolved to bytes
// on load.
type Config struct {
	Address       string               `yaml:"address"`
	MaxUploadSize string               `yaml:"maxUploadSize"`
	Logging       config.LoggingConfig `yaml:"logging"`

	uploadBytes int64
}

// LoadConfig reads the server configuration from a YAML file. An empty path
// or a missing file yields the defaults without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:     constants.DefaultServerAddress,
		uploadBytes: constants.DefaultMaxUploadSizeBytes,
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}
	if cfg.MaxUploadSize != "" {
		size, err := ParseSize(cfg.MaxUploadSize)
		if err != nil {
			return nil, err
		}
		if size > 0 {
			cfg.uploadBytes = size
		}
	}
	return cfg, nil
}

// UploadSizeBytes reports the resolved plan upload limit.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadBytes
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a size such as "1024", "256K" or "10MB" into a byte
// count. An empty string falls back to the default plan upload limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	digits := strings.LastIndexFunc(s, unicode.IsDigit) + 1
	if digits == 0 {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	mult, ok := sizeUnits[strings.TrimSpace(s[digits:])]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", s[digits:])
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s[:digits]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid size %q", value)
	}
	if n > math.MaxInt64/mult {
		return 0, fmt.Errorf("size %q overflows", value)
	}
	return n * mult, nil
}
