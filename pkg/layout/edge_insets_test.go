package layout

import "testing"

func TestEdgeInsets(t *testing.T) {
	e := EdgeInsetsOnly(1, 2, 3, 4)
	if e.Horizontal() != 4 || e.Vertical() != 6 {
		t.Errorf("expected horizontal 4 vertical 6, got %d/%d", e.Horizontal(), e.Vertical())
	}
	sum := e.Add(EdgeInsetsAll(10))
	if sum != (EdgeInsets{Left: 11, Top: 12, Right: 13, Bottom: 14}) {
		t.Errorf("unexpected sum %+v", sum)
	}
	if EdgeInsetsSymmetric(5, 7) != (EdgeInsets{Left: 5, Top: 7, Right: 5, Bottom: 7}) {
		t.Errorf("unexpected symmetric insets %+v", EdgeInsetsSymmetric(5, 7))
	}
	if !e.IsNonNegative() || (EdgeInsets{Bottom: -1}).IsNonNegative() {
		t.Error("IsNonNegative misreported")
	}
}

func TestDensityDpToPx(t *testing.T) {
	tests := []struct {
		density Density
		dp      float64
		want    int
	}{
		{DefaultDensity, 16, 16},
		{Density{Scale: 2}, 16, 32},
		{Density{Scale: 2.625}, 16, 42},
		{Density{Scale: 2.625}, 8, 21},
		{Density{}, 8, 8},
	}
	for _, tt := range tests {
		if got := tt.density.DpToPx(tt.dp); got != tt.want {
			t.Errorf("Density{%v}.DpToPx(%v) = %d, want %d", tt.density.Scale, tt.dp, got, tt.want)
		}
	}
}

func TestParseVisibility(t *testing.T) {
	for _, v := range []Visibility{VisibilityVisible, VisibilityInvisible, VisibilityGone} {
		got, err := ParseVisibility(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVisibility(%q) = %v, %v; want %v", v.String(), got, err, v)
		}
	}
	if got, _ := ParseVisibility(""); got != VisibilityVisible {
		t.Errorf("empty visibility should be visible, got %v", got)
	}
	if _, err := ParseVisibility("hidden"); err == nil {
		t.Error("expected error for unknown visibility")
	}
}
