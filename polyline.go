package graphics

import "image"

// PolyLine strokes straight segments through a series of points.
// A nil Color draws nothing.
type PolyLine struct {
	XY    []image.Point
	Color *Color
	Width int
}

// NewPolyLine creates a polyline through the given points.
func NewPolyLine(xy []image.Point, color *Color, width int) *PolyLine {
	return &PolyLine{XY: xy, Color: color, Width: width}
}

// Draw strokes the polyline onto dst.
func (shape *PolyLine) Draw(dst *Pixmap) {
	if shape.Color == nil {
		return
	}
	strokePolyLine(dst, shape.XY, *shape.Color, shape.Width)
}

// Move shifts every point by the given offset.
func (shape *PolyLine) Move(dx, dy int) {
	offset := image.Pt(dx, dy)
	for i := range shape.XY {
		shape.XY[i] = shape.XY[i].Add(offset)
	}
}
