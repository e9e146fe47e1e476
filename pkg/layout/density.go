package layout

// Density converts density-independent units to device pixels.
type Density struct {
	// Scale is the number of pixels per dp (1.0 at mdpi, 2.0 at xhdpi).
	Scale float64
}

// DefaultDensity is the 1:1 baseline density.
var DefaultDensity = Density{Scale: 1}

// DpToPx converts dp to whole pixels, truncating toward zero. A zero Scale
// behaves like DefaultDensity.
func (d Density) DpToPx(dp float64) int {
	scale := d.Scale
	if scale == 0 {
		scale = 1
	}
	return int(dp * scale)
}
