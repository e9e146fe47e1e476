// Package layout holds the host-side vocabulary a flow container uses to talk
// to its parent and children: measure specs, layout params, edge insets,
// visibility and density conversion.
package layout

import "fmt"

// MeasureMode says how a MeasureSpec's size constrains the measured view.
type MeasureMode int

const (
	// MeasureUnspecified imposes no constraint; the size is a hint at most.
	MeasureUnspecified MeasureMode = iota
	// MeasureExact requires the view to be exactly Size.
	MeasureExact
	// MeasureAtMost allows the view to be as large as Size.
	MeasureAtMost
)

// String returns a human-readable representation of the measure mode.
func (m MeasureMode) String() string {
	switch m {
	case MeasureUnspecified:
		return "unspecified"
	case MeasureExact:
		return "exact"
	case MeasureAtMost:
		return "at_most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}

// ParseMeasureMode parses the names produced by MeasureMode.String.
func ParseMeasureMode(s string) (MeasureMode, error) {
	switch s {
	case "", "unspecified":
		return MeasureUnspecified, nil
	case "exact", "exactly":
		return MeasureExact, nil
	case "at_most", "at-most":
		return MeasureAtMost, nil
	default:
		return MeasureUnspecified, fmt.Errorf("unknown measure mode %q", s)
	}
}

// MeasureSpec is a (size, mode) constraint handed from parent to child for
// one axis.
type MeasureSpec struct {
	Size int
	Mode MeasureMode
}

// Exactly returns a spec requiring exactly size pixels.
func Exactly(size int) MeasureSpec {
	return MeasureSpec{Size: size, Mode: MeasureExact}
}

// AtMost returns a spec bounding the view to size pixels.
func AtMost(size int) MeasureSpec {
	return MeasureSpec{Size: size, Mode: MeasureAtMost}
}

// Unspecified returns a spec with no bound.
func Unspecified() MeasureSpec {
	return MeasureSpec{Mode: MeasureUnspecified}
}

// IsBounded reports whether the spec imposes an upper bound.
func (s MeasureSpec) IsBounded() bool {
	return s.Mode != MeasureUnspecified
}

func (s MeasureSpec) String() string {
	return fmt.Sprintf("%s(%d)", s.Mode, s.Size)
}

// Dimension is the size a child requests along one axis. Positive values are
// exact pixel sizes; the zero value is WrapContent. A child that must not take
// up any space should be marked VisibilityGone rather than given a zero size.
type Dimension int

const (
	// WrapContent asks to be as large as the content.
	WrapContent Dimension = 0
	// MatchParent asks to fill the parent's available space.
	MatchParent Dimension = -1
)

// Px returns an exact dimension of n pixels.
func Px(n int) Dimension {
	return Dimension(n)
}

// IsExact reports whether d is an explicit pixel size.
func (d Dimension) IsExact() bool {
	return d > 0
}

func (d Dimension) String() string {
	switch {
	case d == WrapContent:
		return "wrap_content"
	case d == MatchParent:
		return "match_parent"
	case d > 0:
		return fmt.Sprintf("%dpx", int(d))
	default:
		return fmt.Sprintf("Dimension(%d)", int(d))
	}
}

// ChildMeasureSpec derives the spec a child is measured with from the
// parent's spec, the space the parent already uses on that axis (its padding
// plus the child's margins) and the child's requested dimension.
//
// Explicit dimensions always win. Otherwise MatchParent inherits the parent's
// mode and WrapContent is bounded by whatever the parent can offer.
func ChildMeasureSpec(parent MeasureSpec, used int, dimension Dimension) MeasureSpec {
	size := max(0, parent.Size-used)

	if dimension.IsExact() {
		return Exactly(int(dimension))
	}

	switch parent.Mode {
	case MeasureExact:
		if dimension == MatchParent {
			return Exactly(size)
		}
		return AtMost(size)
	case MeasureAtMost:
		return AtMost(size)
	default:
		return MeasureSpec{Size: size, Mode: MeasureUnspecified}
	}
}

// ResolveSize reconciles a desired size with a spec: exact specs win, at-most
// specs clamp, unspecified specs accept the desired size.
func ResolveSize(desired int, spec MeasureSpec) int {
	switch spec.Mode {
	case MeasureExact:
		return spec.Size
	case MeasureAtMost:
		return min(desired, spec.Size)
	default:
		return desired
	}
}
