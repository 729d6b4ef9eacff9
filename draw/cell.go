package draw

import "image"

// Cell is the place of one card on a page.
type Cell struct {
	Card string
	X, Y int
	W, H int
}

// NewCell returns the cell at (line, col) of a grid where every card is w x h pixels
// and separated from its neighbours and the page borders by the gutter.
func NewCell(gutter image.Point, line, col, w, h int, card string) Cell {
	return Cell{
		Card: card,
		X:    gutter.X + col*(w+gutter.X),
		Y:    gutter.Y + line*(h+gutter.Y),
		W:    w,
		H:    h,
	}
}

func (c Cell) Min() image.Point {
	return image.Pt(c.X, c.Y)
}

func (c Cell) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H)
}

// gutters returns the spacing left between cards when lines x cols cards of w x h pixels are laid on a pageW x pageH page.
// Pixels left by the integer division are not used.
func gutters(pageW, pageH, lines, cols, w, h int) image.Point {
	return image.Pt(
		(pageW-cols*w)/(cols+1),
		(pageH-lines*h)/(lines+1),
	)
}
