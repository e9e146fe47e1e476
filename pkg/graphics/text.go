package graphics

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace returns the face used when none is supplied: the fixed 7x13
// bitmap face from x/image.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// TextLine represents a single measured line of text.
type TextLine struct {
	Text  string
	Width int
}

// TextLayout contains measured text metrics.
type TextLayout struct {
	Text    string
	Lines   []TextLine
	Size    Size
	Ascent  int
	Descent int
}

// LayoutText measures text with face, one line per '\n'-separated segment.
// Widths and heights are rounded up to whole pixels. A nil face uses
// DefaultFace.
func LayoutText(text string, face font.Face) TextLayout {
	if face == nil {
		face = DefaultFace()
	}
	metrics := face.Metrics()
	lineHeight := metrics.Height.Ceil()

	parts := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(parts))
	width := 0
	for _, part := range parts {
		w := font.MeasureString(face, part).Ceil()
		lines = append(lines, TextLine{Text: part, Width: w})
		width = max(width, w)
	}

	return TextLayout{
		Text:    text,
		Lines:   lines,
		Size:    Size{Width: width, Height: lineHeight * len(lines)},
		Ascent:  metrics.Ascent.Ceil(),
		Descent: metrics.Descent.Ceil(),
	}
}
