package graphics

import "testing"

func TestLayoutText_DefaultFace(t *testing.T) {
	// basicfont.Face7x13 advances 7px per glyph on a 13px line.
	got := LayoutText("Go", nil)
	if got.Size != (Size{Width: 14, Height: 13}) {
		t.Errorf("expected 14x13, got %+v", got.Size)
	}
	if got.Ascent != 11 || got.Descent != 2 {
		t.Errorf("expected ascent 11 descent 2, got %d/%d", got.Ascent, got.Descent)
	}
}

func TestLayoutText_Multiline(t *testing.T) {
	got := LayoutText("flow\nlayout!", DefaultFace())
	if len(got.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(got.Lines))
	}
	if got.Lines[0].Width != 28 || got.Lines[1].Width != 49 {
		t.Errorf("expected line widths 28 and 49, got %d and %d", got.Lines[0].Width, got.Lines[1].Width)
	}
	if got.Size != (Size{Width: 49, Height: 26}) {
		t.Errorf("expected 49x26, got %+v", got.Size)
	}
}

func TestLayoutText_Empty(t *testing.T) {
	got := LayoutText("", nil)
	if got.Size.Width != 0 || got.Size.Height != 13 {
		t.Errorf("expected 0x13 for empty text, got %+v", got.Size)
	}
}
