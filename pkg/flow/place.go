package flow

import "github.com/go-drift/flow/pkg/graphics"

// Placement is the final rectangle assigned to one child.
type Placement struct {
	// Index identifies the child. Place reports indices into
	// PackingResult.Boxes; Flow.Layout reports indices into the children
	// passed to Flow.Measure.
	Index int
	Rect  graphics.Rect
}

// Place positions every packed child, starting at (originX, originY).
//
// Each child sits at the cursor offset by its left and top margins and keeps
// its measured size. The cursor advances by the child's outer width plus
// spacing.Horizontal, and at the end of a row returns to originX and moves
// down by the row height plus spacing.Vertical. Placements come back in row
// order, which is input order.
func Place(result PackingResult, originX, originY int, spacing Spacing) []Placement {
	placements := make([]Placement, 0, len(result.Boxes))
	y := originY
	for _, row := range result.Rows {
		x := originX
		for _, index := range row.Children {
			box := result.Boxes[index]
			left := x + box.Margin.Left
			top := y + box.Margin.Top
			placements = append(placements, Placement{
				Index: index,
				Rect:  graphics.RectFromLTWH(left, top, box.MeasuredWidth, box.MeasuredHeight),
			})
			x += box.OuterWidth() + spacing.Horizontal
		}
		y += row.Height + spacing.Vertical
	}
	return placements
}
