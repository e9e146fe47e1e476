package flow

import (
	"github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/graphics"
	"github.com/go-drift/flow/pkg/layout"
)

// Default gaps, in dp, resolved to pixels by New.
const (
	DefaultHorizontalSpacingDp = 16
	DefaultVerticalSpacingDp   = 8
)

// LayoutParams are the per-child settings a Flow reads before measuring.
// The zero value is a visible, wrap-content child with no margins.
type LayoutParams struct {
	Width      layout.Dimension
	Height     layout.Dimension
	Margin     layout.EdgeInsets
	Visibility layout.Visibility
}

// Child is anything a Flow can measure and place.
type Child interface {
	// Params returns the child's layout params for this pass.
	Params() LayoutParams
	// Measure returns the child's size under the given specs.
	Measure(width, height layout.MeasureSpec) graphics.Size
}

// Flow is a container that wraps its children into rows.
//
// A Flow holds configuration only. Measure returns everything Layout needs,
// so one Flow can serve any number of passes, concurrently if required.
type Flow struct {
	HorizontalSpacing int
	VerticalSpacing   int
	Padding           layout.EdgeInsets
	Convention        SpacingConvention
	// Debug logs the resolved specs and row count of each measure pass.
	Debug bool
}

// New returns a Flow with the default 16dp/8dp spacing converted to pixels
// at density.
func New(density layout.Density) *Flow {
	return &Flow{
		HorizontalSpacing: density.DpToPx(DefaultHorizontalSpacingDp),
		VerticalSpacing:   density.DpToPx(DefaultVerticalSpacingDp),
	}
}

// Spacing returns the flow's spacing settings.
func (f *Flow) Spacing() Spacing {
	return Spacing{
		Horizontal: f.HorizontalSpacing,
		Vertical:   f.VerticalSpacing,
		Convention: f.Convention,
	}
}

// Measurement is the outcome of a measure pass.
type Measurement struct {
	// Size is the container's resolved size, padding included.
	Size graphics.Size
	// Result is the row partition of the children that were not gone.
	Result PackingResult
	// Sources maps each packed box to its index in the measured children.
	Sources []int
	// Origin is where the first row starts: the padding's top-left corner.
	Origin graphics.Offset
	// Spacing is the spacing the children were packed with.
	Spacing Spacing
}

// Measure sizes every child that is not gone, packs them into rows inside the
// padding, and resolves the container size.
//
// Children are measured against specs derived from width and height with the
// padding and their own margins taken out. Rows wrap at width.Size minus the
// horizontal padding unless width is unspecified, in which case all children
// share one row. On each axis an exact spec is used verbatim; any other spec
// yields the content size plus padding.
func (f *Flow) Measure(children []Child, width, height layout.MeasureSpec) Measurement {
	boxes := make([]ChildBox, 0, len(children))
	sources := make([]int, 0, len(children))
	for i, child := range children {
		params := child.Params()
		if params.Visibility == layout.VisibilityGone {
			continue
		}
		childWidth := layout.ChildMeasureSpec(width, f.Padding.Horizontal()+params.Margin.Horizontal(), params.Width)
		childHeight := layout.ChildMeasureSpec(height, f.Padding.Vertical()+params.Margin.Vertical(), params.Height)
		size := child.Measure(childWidth, childHeight)
		boxes = append(boxes, ChildBox{
			MeasuredWidth:  size.Width,
			MeasuredHeight: size.Height,
			Margin:         params.Margin,
		})
		sources = append(sources, i)
	}

	spacing := f.Spacing()
	available := max(0, width.Size-f.Padding.Horizontal())
	result := Pack(boxes, available, spacing, width.IsBounded())

	size := graphics.Size{
		Width:  resolve(width, result.ContentWidth+f.Padding.Horizontal()),
		Height: resolve(height, result.ContentHeight+f.Padding.Vertical()),
	}
	if f.Debug {
		errors.Debugf("measure width=%v height=%v children=%d rows=%d content=%dx%d size=%dx%d",
			width, height, len(boxes), len(result.Rows),
			result.ContentWidth, result.ContentHeight, size.Width, size.Height)
	}

	return Measurement{
		Size:    size,
		Result:  result,
		Sources: sources,
		Origin:  graphics.Offset{X: f.Padding.Left, Y: f.Padding.Top},
		Spacing: spacing,
	}
}

// Layout places the children of a previous Measure. Placement indices refer
// to the children slice given to Measure; gone children get no placement.
// The spacing and origin recorded by Measure are used, so changing the Flow
// between the two calls has no effect on this pass.
func (f *Flow) Layout(m Measurement) []Placement {
	placements := Place(m.Result, m.Origin.X, m.Origin.Y, m.Spacing)
	for i := range placements {
		placements[i].Index = m.Sources[placements[i].Index]
	}
	return placements
}

func resolve(spec layout.MeasureSpec, content int) int {
	if spec.Mode == layout.MeasureExact {
		return spec.Size
	}
	return content
}
