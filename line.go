package graphics

import "image"

// Line is a single segment between two points. A nil Color draws
// nothing.
type Line struct {
	P0, P1 image.Point
	Color  *Color
	Width  int
}

// NewLine creates a line between two points.
func NewLine(p0, p1 image.Point, color *Color, width int) *Line {
	return &Line{P0: p0, P1: p1, Color: color, Width: width}
}

// Draw strokes the line onto dst.
func (shape *Line) Draw(dst *Pixmap) {
	if shape.Color == nil {
		return
	}
	drawSegment(dst, shape.P0, shape.P1, *shape.Color, shape.Width)
}

// Move shifts both endpoints by the given offset.
func (shape *Line) Move(dx, dy int) {
	offset := image.Pt(dx, dy)
	shape.P0 = shape.P0.Add(offset)
	shape.P1 = shape.P1.Add(offset)
}
