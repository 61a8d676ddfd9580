package graphics

import "image"

// Polygon is a closed shape through three or more points. The outline
// from the last point back to the first is implied. Nil Fill and
// Outline colors are skipped.
type Polygon struct {
	XY      []image.Point
	Fill    *Color
	Outline *Color
}

// NewPolygon creates a polygon through the given points.
func NewPolygon(xy []image.Point, fill, outline *Color) *Polygon {
	return &Polygon{XY: xy, Fill: fill, Outline: outline}
}

// Draw fills and outlines the polygon onto dst. The boundary is always
// painted when a fill is present, so filled polygons include their
// edges.
func (shape *Polygon) Draw(dst *Pixmap) {
	if shape.Fill != nil {
		fillPolygon(dst, shape.XY, *shape.Fill)
		strokePolygon(dst, shape.XY, *shape.Fill, 1)
	}
	if shape.Outline != nil {
		strokePolygon(dst, shape.XY, *shape.Outline, 1)
	}
}

// Move shifts every point by the given offset.
func (shape *Polygon) Move(dx, dy int) {
	offset := image.Pt(dx, dy)
	for i := range shape.XY {
		shape.XY[i] = shape.XY[i].Add(offset)
	}
}
