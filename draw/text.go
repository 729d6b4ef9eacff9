package draw

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"image/color"
)

// printTextBlock prints lines of text that have been wrapped beforehand.
// (x, y) is the upper left corner of the block, lines are spaced by the font height plus spacing pixels.
func printTextBlock(dc *gg.Context, face font.Face, x, y float64, lines []string, spacing int, c color.Color) {
	if len(lines) == 0 {
		return
	}

	dc.SetFontFace(face)
	dc.SetColor(c)

	metrics := face.Metrics()
	lineHeight := float64(metrics.Height.Ceil() + spacing)
	baseline := y + float64(metrics.Ascent.Ceil())
	for i, line := range lines {
		dc.DrawString(line, x, baseline+float64(i)*lineHeight)
	}
}
