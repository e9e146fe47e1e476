// Package flow lays out children left-to-right in rows, wrapping to a new row
// when the next child would not fit in the available width.
//
// Layout happens in two passes:
//
//   - Pack partitions pre-measured ChildBox values into rows and reports the
//     content size implied by the partition.
//   - Place walks the rows and assigns every child a rectangle.
//
// Both are pure functions. The PackingResult produced by Pack is the only
// state shared between the passes and is returned by value, so nothing is
// cached between layout passes.
//
// # Container
//
// Flow is the host-facing container. It skips gone children, measures the rest
// against measure specs derived from its own, packs them inside its padding and
// resolves its own size:
//
//	f := flow.New(layout.Density{Scale: 2})
//	f.Padding = layout.EdgeInsetsAll(8)
//
//	m := f.Measure(children, layout.AtMost(720), layout.Unspecified())
//	for _, p := range f.Layout(m) {
//	    fmt.Println(p.Index, p.Rect)
//	}
//
// # Spacing
//
// Every child is followed by HorizontalSpacing and every row by
// VerticalSpacing, including the last ones, so the reported content size
// carries one trailing gap on each axis (TrailingSpacing). Set Convention to
// TightSpacing to count spacing only between children and between rows. The
// convention changes the reported size and the wrap threshold; positions of
// placed children are the same under both.
//
// All children are top-aligned within their row.
package flow
