package flow

import (
	"fmt"

	"github.com/go-drift/flow/pkg/errors"
	"github.com/go-drift/flow/pkg/graphics"
	"github.com/go-drift/flow/pkg/layout"
)

// SpacingConvention selects how spacing contributes to row widths and the
// reported content size.
type SpacingConvention int

const (
	// TrailingSpacing adds HorizontalSpacing after every child, including the
	// last one in a row, and VerticalSpacing after every row.
	TrailingSpacing SpacingConvention = iota
	// TightSpacing adds spacing only between adjacent children and rows.
	TightSpacing
)

// String returns a human-readable representation of the spacing convention.
func (c SpacingConvention) String() string {
	switch c {
	case TrailingSpacing:
		return "trailing"
	case TightSpacing:
		return "tight"
	default:
		return fmt.Sprintf("SpacingConvention(%d)", int(c))
	}
}

// ParseSpacingConvention parses the names produced by String. An empty string
// selects TrailingSpacing.
func ParseSpacingConvention(s string) (SpacingConvention, error) {
	switch s {
	case "", "trailing":
		return TrailingSpacing, nil
	case "tight":
		return TightSpacing, nil
	default:
		return TrailingSpacing, fmt.Errorf("unknown spacing convention %q", s)
	}
}

// Spacing holds the gaps between children in a row and between rows.
type Spacing struct {
	Horizontal int
	Vertical   int
	Convention SpacingConvention
}

// advance is how far a row's width grows when a child of outer width w is
// appended.
func (s Spacing) advance(w int, first bool) int {
	if s.Convention == TightSpacing && first {
		return w
	}
	return w + s.Horizontal
}

// ChildBox is one measured child for a single layout pass.
type ChildBox struct {
	MeasuredWidth  int
	MeasuredHeight int
	Margin         layout.EdgeInsets
}

// OuterWidth returns the measured width plus horizontal margins.
func (b ChildBox) OuterWidth() int {
	return b.MeasuredWidth + b.Margin.Horizontal()
}

// OuterHeight returns the measured height plus vertical margins.
func (b ChildBox) OuterHeight() int {
	return b.MeasuredHeight + b.Margin.Vertical()
}

// Row is a maximal run of consecutive children laid out on one line.
type Row struct {
	// Children are indices into PackingResult.Boxes, in input order.
	Children []int
	// Width is the accumulated outer width of the children plus spacing.
	Width int
	// Height is the tallest outer height in the row.
	Height int
}

// PackingResult is the row partition for one pass.
type PackingResult struct {
	Rows []Row
	// Boxes is the packed input. Place reads sizes and margins from it.
	Boxes         []ChildBox
	ContentWidth  int
	ContentHeight int
}

// ContentSize returns the content width and height as a Size.
func (r PackingResult) ContentSize() graphics.Size {
	return graphics.Size{Width: r.ContentWidth, Height: r.ContentHeight}
}

// Pack partitions children into rows no wider than availableWidth.
//
// A child starts a new row when the current row is non-empty, the width is
// bounded, and appending it would overflow availableWidth. A child wider than
// availableWidth on its own still gets a row, so ContentWidth may exceed
// availableWidth. When bounded is false every child lands in a single row.
//
// Negative sizes, margins, spacing or availableWidth are programming errors:
// Pack reports them through errors.Report and panics.
func Pack(children []ChildBox, availableWidth int, spacing Spacing, bounded bool) PackingResult {
	if err := Validate(children, availableWidth, spacing); err != nil {
		errors.Report(&errors.FlowError{
			Op:         "flow.Pack",
			Kind:       errors.KindContract,
			Err:        err,
			StackTrace: errors.CaptureStack(),
		})
		panic(err.Error())
	}

	result := PackingResult{Boxes: children}
	var current Row

	closeRow := func() {
		result.Rows = append(result.Rows, current)
		result.ContentWidth = max(result.ContentWidth, current.Width)
		result.ContentHeight += current.Height
		current = Row{}
	}

	for i, child := range children {
		w := child.OuterWidth()
		h := child.OuterHeight()

		if bounded && len(current.Children) > 0 &&
			current.Width+spacing.advance(w, false) > availableWidth {
			closeRow()
		}

		current.Width += spacing.advance(w, len(current.Children) == 0)
		current.Height = max(current.Height, h)
		current.Children = append(current.Children, i)
	}
	if len(current.Children) > 0 {
		closeRow()
	}

	if n := len(result.Rows); n > 0 {
		gaps := n
		if spacing.Convention == TightSpacing {
			gaps = n - 1
		}
		result.ContentHeight += gaps * spacing.Vertical
	}
	return result
}
