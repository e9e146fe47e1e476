package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/layout"
)

// FileName is the optional per-directory configuration file.
const FileName = "flow.yaml"

// SchemaMajor is the only configuration major version this build understands.
const SchemaMajor = "v1"

// Config represents the optional flow.yaml configuration.
type Config struct {
	Version string        `yaml:"version,omitempty"`
	Density float64       `yaml:"density,omitempty"`
	Spacing SpacingConfig `yaml:"spacing"`
	Padding InsetsConfig  `yaml:"padding"`
	Debug   bool          `yaml:"debug,omitempty"`
}

// SpacingConfig holds gaps in dp.
type SpacingConfig struct {
	HorizontalDp *float64 `yaml:"horizontal_dp,omitempty"`
	VerticalDp   *float64 `yaml:"vertical_dp,omitempty"`
	Convention   string   `yaml:"convention,omitempty"`
}

// InsetsConfig holds per-side insets in pixels.
type InsetsConfig struct {
	Left   int `yaml:"left,omitempty"`
	Top    int `yaml:"top,omitempty"`
	Right  int `yaml:"right,omitempty"`
	Bottom int `yaml:"bottom,omitempty"`
}

// EdgeInsets converts the config to layout insets.
func (c InsetsConfig) EdgeInsets() layout.EdgeInsets {
	return layout.EdgeInsetsOnly(c.Left, c.Top, c.Right, c.Bottom)
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root              string
	Version           string
	Density           layout.Density
	HorizontalSpacing int
	VerticalSpacing   int
	Convention        flow.SpacingConvention
	Padding           layout.EdgeInsets
	Debug             bool
}

// LoadOptional reads flow.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads flow.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve(dir)
}

// Resolve fills in defaults and validates the configuration.
func (c *Config) Resolve(root string) (*Resolved, error) {
	version := strings.TrimSpace(c.Version)
	if version == "" {
		version = SchemaMajor
	}
	if err := validateVersion(version); err != nil {
		return nil, err
	}

	density := c.Density
	if density == 0 {
		density = layout.DefaultDensity.Scale
	}
	if density < 0 {
		return nil, fmt.Errorf("density must be positive (got %v)", density)
	}
	d := layout.Density{Scale: density}

	horizontal := float64(flow.DefaultHorizontalSpacingDp)
	if c.Spacing.HorizontalDp != nil {
		horizontal = *c.Spacing.HorizontalDp
	}
	vertical := float64(flow.DefaultVerticalSpacingDp)
	if c.Spacing.VerticalDp != nil {
		vertical = *c.Spacing.VerticalDp
	}
	if horizontal < 0 || vertical < 0 {
		return nil, fmt.Errorf("spacing must be non-negative (got horizontal=%v vertical=%v)", horizontal, vertical)
	}

	convention, err := flow.ParseSpacingConvention(strings.TrimSpace(c.Spacing.Convention))
	if err != nil {
		return nil, err
	}

	padding := c.Padding.EdgeInsets()
	if !padding.IsNonNegative() {
		return nil, fmt.Errorf("padding must be non-negative (got %+v)", c.Padding)
	}

	return &Resolved{
		Root:              root,
		Version:           version,
		Density:           d,
		HorizontalSpacing: d.DpToPx(horizontal),
		VerticalSpacing:   d.DpToPx(vertical),
		Convention:        convention,
		Padding:           padding,
		Debug:             c.Debug,
	}, nil
}

// NewFlow builds a container from the resolved settings.
func (r *Resolved) NewFlow() *flow.Flow {
	return &flow.Flow{
		HorizontalSpacing: r.HorizontalSpacing,
		VerticalSpacing:   r.VerticalSpacing,
		Padding:           r.Padding,
		Convention:        r.Convention,
		Debug:             r.Debug,
	}
}

func validateVersion(version string) error {
	if !semver.IsValid(version) {
		return fmt.Errorf("version must be a semantic version such as %q (got %q)", SchemaMajor, version)
	}
	if major := semver.Major(version); major != SchemaMajor {
		return fmt.Errorf("unsupported config version %s (this build reads %s)", major, SchemaMajor)
	}
	return nil
}
