package layout

import "fmt"

// Visibility controls whether a child is drawn and whether it occupies space.
type Visibility int

const (
	// VisibilityVisible children are measured, placed and drawn.
	VisibilityVisible Visibility = iota
	// VisibilityInvisible children keep their space but are not drawn.
	VisibilityInvisible
	// VisibilityGone children are skipped entirely by layout.
	VisibilityGone
)

// String returns a human-readable representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case VisibilityVisible:
		return "visible"
	case VisibilityInvisible:
		return "invisible"
	case VisibilityGone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// ParseVisibility parses the names produced by Visibility.String.
// An empty string means visible.
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "", "visible":
		return VisibilityVisible, nil
	case "invisible":
		return VisibilityInvisible, nil
	case "gone":
		return VisibilityGone, nil
	default:
		return VisibilityVisible, fmt.Errorf("unknown visibility %q", s)
	}
}
