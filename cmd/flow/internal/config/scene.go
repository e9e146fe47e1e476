package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flow/pkg/flow"
	"github.com/go-drift/flow/pkg/layout"
)

// Scene describes one measure/layout pass: the container's specs and its
// children, in order.
type Scene struct {
	Width    SpecConfig    `yaml:"width"`
	Height   SpecConfig    `yaml:"height"`
	Children []ChildConfig `yaml:"children"`
}

// SpecConfig is a measure spec. Mode is exact, at_most or unspecified.
type SpecConfig struct {
	Size int    `yaml:"size,omitempty"`
	Mode string `yaml:"mode,omitempty"`
}

// ChildConfig is a fixed-size box, or a text label when Label is set.
type ChildConfig struct {
	Width        int          `yaml:"width,omitempty"`
	Height       int          `yaml:"height,omitempty"`
	Label        string       `yaml:"label,omitempty"`
	Padding      InsetsConfig `yaml:"padding,omitempty"`
	LayoutWidth  string       `yaml:"layout_width,omitempty"`
	LayoutHeight string       `yaml:"layout_height,omitempty"`
	Margin       InsetsConfig `yaml:"margin,omitempty"`
	Visibility   string       `yaml:"visibility,omitempty"`
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene parses scene YAML.
func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &scene, nil
}

// Specs returns the container's width and height measure specs.
func (s *Scene) Specs() (width, height layout.MeasureSpec, err error) {
	if width, err = s.Width.MeasureSpec(); err != nil {
		return width, height, fmt.Errorf("width: %w", err)
	}
	if height, err = s.Height.MeasureSpec(); err != nil {
		return width, height, fmt.Errorf("height: %w", err)
	}
	return width, height, nil
}

// MeasureSpec converts the config to a layout spec.
func (c SpecConfig) MeasureSpec() (layout.MeasureSpec, error) {
	mode, err := layout.ParseMeasureMode(strings.TrimSpace(c.Mode))
	if err != nil {
		return layout.MeasureSpec{}, err
	}
	if c.Size < 0 {
		return layout.MeasureSpec{}, fmt.Errorf("size must be non-negative (got %d)", c.Size)
	}
	return layout.MeasureSpec{Size: c.Size, Mode: mode}, nil
}

// BuildChildren converts the configured children to flow children.
func (s *Scene) BuildChildren() ([]flow.Child, error) {
	children := make([]flow.Child, 0, len(s.Children))
	for i, c := range s.Children {
		child, err := c.Build()
		if err != nil {
			return nil, fmt.Errorf("children[%d]: %w", i, err)
		}
		children = append(children, child)
	}
	return children, nil
}

// Build converts one child config.
func (c ChildConfig) Build() (flow.Child, error) {
	params, err := c.params()
	if err != nil {
		return nil, err
	}
	if c.Label != "" {
		padding := c.Padding.EdgeInsets()
		if !padding.IsNonNegative() {
			return nil, fmt.Errorf("padding must be non-negative (got %+v)", c.Padding)
		}
		return flow.Label{Text: c.Label, Padding: padding, Layout: params}, nil
	}
	if c.Width < 0 || c.Height < 0 {
		return nil, fmt.Errorf("size must be non-negative (got %dx%d)", c.Width, c.Height)
	}
	return flow.FixedChild{Width: c.Width, Height: c.Height, Layout: params}, nil
}

func (c ChildConfig) params() (flow.LayoutParams, error) {
	width, err := parseDimension(c.LayoutWidth)
	if err != nil {
		return flow.LayoutParams{}, fmt.Errorf("layout_width: %w", err)
	}
	height, err := parseDimension(c.LayoutHeight)
	if err != nil {
		return flow.LayoutParams{}, fmt.Errorf("layout_height: %w", err)
	}
	visibility, err := layout.ParseVisibility(strings.TrimSpace(c.Visibility))
	if err != nil {
		return flow.LayoutParams{}, err
	}
	margin := c.Margin.EdgeInsets()
	if !margin.IsNonNegative() {
		return flow.LayoutParams{}, fmt.Errorf("margin must be non-negative (got %+v)", c.Margin)
	}
	return flow.LayoutParams{
		Width:      width,
		Height:     height,
		Margin:     margin,
		Visibility: visibility,
	}, nil
}

// parseDimension accepts wrap_content (or empty), match_parent, or a positive
// pixel count with an optional "px" suffix.
func parseDimension(s string) (layout.Dimension, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "wrap_content":
		return layout.WrapContent, nil
	case "match_parent":
		return layout.MatchParent, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(s, "px"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid dimension %q", s)
	}
	return layout.Px(n), nil
}
