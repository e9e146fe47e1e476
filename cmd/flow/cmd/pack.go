package cmd

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/flow/cmd/flow/internal/config"
	"github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/flow"
)

const layoutFlags = `Flags:
  --config DIR       Directory holding flow.yaml (default: current directory)
  -o, --output FMT   Output format: text (default) or yaml
  --debug            Log each measure pass to stderr`

func init() {
	RegisterCommand(&Command{
		Name:  "pack",
		Short: "Print the rows a scene wraps into",
		Long: `Measure the children of a scene and print the resulting rows.

Row members are scene child indices; gone children never appear. Sizes are
in pixels, with spacing converted from dp using the configured density.

` + layoutFlags,
		Usage: "flow pack <scene.yaml> [--config DIR] [-o text|yaml] [--debug]",
		Run:   runPack,
	})
	RegisterCommand(&Command{
		Name:  "place",
		Short: "Print where each child of a scene is placed",
		Long: `Measure and lay out the children of a scene and print each child's
rectangle in the container's coordinate space (padding included).

` + layoutFlags,
		Usage: "flow place <scene.yaml> [--config DIR] [-o text|yaml] [--debug]",
		Run:   runPlace,
	})
}

type layoutOptions struct {
	scene     string
	configDir string
	output    string
	debug     bool
}

func parseLayoutArgs(args []string) (layoutOptions, error) {
	opts := layoutOptions{configDir: ".", output: "text"}
	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			if arg == "--config" {
				opts.configDir = args[i+1]
			} else {
				opts.output = args[i+1]
			}
			i++
		case strings.HasPrefix(arg, "--config="):
			opts.configDir = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "--output="):
			opts.output = strings.TrimPrefix(arg, "--output=")
		case arg == "--debug":
			opts.debug = true
		default:
			positional = append(positional, arg)
		}
	}
	if len(positional) != 1 {
		return opts, fmt.Errorf("exactly one scene file is required")
	}
	if opts.output != "text" && opts.output != "yaml" {
		return opts, fmt.Errorf("unknown output format %q (use text or yaml)", opts.output)
	}
	opts.scene = positional[0]
	return opts, nil
}

// sceneLayout is the outcome of measuring and placing one scene.
type sceneLayout struct {
	measurement flow.Measurement
	placements  []flow.Placement
}

func layoutScene(opts layoutOptions) (out sceneLayout, err error) {
	cfg, err := config.Resolve(opts.configDir)
	if err != nil {
		return out, reportConfigError("config.Resolve", opts.configDir, err)
	}
	scene, err := config.LoadScene(opts.scene)
	if err != nil {
		return out, reportConfigError("config.LoadScene", opts.scene, err)
	}
	width, height, err := scene.Specs()
	if err != nil {
		return out, reportConfigError("config.Scene.Specs", opts.scene, err)
	}
	children, err := scene.BuildChildren()
	if err != nil {
		return out, reportConfigError("config.Scene.BuildChildren", opts.scene, err)
	}

	f := cfg.NewFlow()
	f.Debug = f.Debug || opts.debug

	defer errors.RecoverWithCallback("cmd.layoutScene", func(r any) {
		err = fmt.Errorf("layout failed: %v", r)
	})
	out.measurement = f.Measure(children, width, height)
	out.placements = f.Layout(out.measurement)
	return out, nil
}

func reportConfigError(op, path string, err error) error {
	errors.Report(&errors.FlowError{
		Op:   op,
		Kind: errors.KindConfig,
		Path: path,
		Err:  err,
	})
	return err
}

type sizeReport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type rowReport struct {
	Children []int `yaml:"children,flow"`
	Width    int   `yaml:"width"`
	Height   int   `yaml:"height"`
}

type packReport struct {
	Size    sizeReport  `yaml:"size"`
	Content sizeReport  `yaml:"content"`
	Rows    []rowReport `yaml:"rows"`
}

type placementReport struct {
	Child  int `yaml:"child"`
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

func newPackReport(m flow.Measurement) packReport {
	report := packReport{
		Size:    sizeReport{Width: m.Size.Width, Height: m.Size.Height},
		Content: sizeReport{Width: m.Result.ContentWidth, Height: m.Result.ContentHeight},
		Rows:    make([]rowReport, 0, len(m.Result.Rows)),
	}
	for _, row := range m.Result.Rows {
		children := make([]int, len(row.Children))
		for i, index := range row.Children {
			children[i] = m.Sources[index]
		}
		report.Rows = append(report.Rows, rowReport{Children: children, Width: row.Width, Height: row.Height})
	}
	return report
}

func newPlacementReports(placements []flow.Placement) []placementReport {
	reports := make([]placementReport, 0, len(placements))
	for _, p := range placements {
		reports = append(reports, placementReport{
			Child:  p.Index,
			Left:   p.Rect.Left,
			Top:    p.Rect.Top,
			Right:  p.Rect.Right,
			Bottom: p.Rect.Bottom,
		})
	}
	return reports
}

func writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = stdout.Write(data)
	return err
}

func runPack(args []string) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: flow pack <scene.yaml> [--config DIR] [-o text|yaml]", err)
	}
	result, err := layoutScene(opts)
	if err != nil {
		return err
	}

	report := newPackReport(result.measurement)
	if opts.output == "yaml" {
		return writeYAML(report)
	}

	fmt.Fprintf(stdout, "size: %dx%d\n", report.Size.Width, report.Size.Height)
	fmt.Fprintf(stdout, "content: %dx%d\n", report.Content.Width, report.Content.Height)
	for i, row := range report.Rows {
		fmt.Fprintf(stdout, "row %d: children=%v width=%d height=%d\n", i, row.Children, row.Width, row.Height)
	}
	return nil
}

func runPlace(args []string) error {
	opts, err := parseLayoutArgs(args)
	if err != nil {
		return fmt.Errorf("%w\n\nUsage: flow place <scene.yaml> [--config DIR] [-o text|yaml]", err)
	}
	result, err := layoutScene(opts)
	if err != nil {
		return err
	}

	reports := newPlacementReports(result.placements)
	if opts.output == "yaml" {
		return writeYAML(reports)
	}

	for _, p := range reports {
		fmt.Fprintf(stdout, "child %d: left=%d top=%d right=%d bottom=%d\n", p.Child, p.Left, p.Top, p.Right, p.Bottom)
	}
	return nil
}
