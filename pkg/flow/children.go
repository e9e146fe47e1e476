package flow

import (
	"golang.org/x/image/font"

	"github.com/go-drift/flow/pkg/graphics"
	"github.com/go-drift/flow/pkg/layout"
)

// FixedChild wants a fixed size and accepts whatever its specs allow.
type FixedChild struct {
	Width  int
	Height int
	Layout LayoutParams
}

// Params implements Child.
func (c FixedChild) Params() LayoutParams {
	return c.Layout
}

// Measure implements Child.
func (c FixedChild) Measure(width, height layout.MeasureSpec) graphics.Size {
	return graphics.Size{
		Width:  layout.ResolveSize(c.Width, width),
		Height: layout.ResolveSize(c.Height, height),
	}
}

// Label is a text child sized to its text plus padding, the usual content of
// a tag cloud.
type Label struct {
	Text string
	// Face measures Text. Nil uses graphics.DefaultFace.
	Face    font.Face
	Padding layout.EdgeInsets
	Layout  LayoutParams
}

// Params implements Child.
func (l Label) Params() LayoutParams {
	return l.Layout
}

// Measure implements Child.
func (l Label) Measure(width, height layout.MeasureSpec) graphics.Size {
	text := graphics.LayoutText(l.Text, l.Face)
	return graphics.Size{
		Width:  layout.ResolveSize(text.Size.Width+l.Padding.Horizontal(), width),
		Height: layout.ResolveSize(text.Size.Height+l.Padding.Vertical(), height),
	}
}
