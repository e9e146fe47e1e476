package layout

// EdgeInsets represents padding or margins on the four sides of a box, in
// pixels.
type EdgeInsets struct {
	Left, Top, Right, Bottom int
}

// EdgeInsetsAll creates uniform insets on all sides.
func EdgeInsetsAll(value int) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with equal left/right and top/bottom values.
func EdgeInsetsSymmetric(horizontal, vertical int) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with explicit values for each side.
func EdgeInsetsOnly(left, top, right, bottom int) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() int {
	return e.Top + e.Bottom
}

// Add returns the side-by-side sum of e and other.
func (e EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + other.Left,
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
	}
}

// IsNonNegative reports whether every side is >= 0.
func (e EdgeInsets) IsNonNegative() bool {
	return e.Left >= 0 && e.Top >= 0 && e.Right >= 0 && e.Bottom >= 0
}
