package graphics

import "image"

// Ellipse draws a full ellipse or, with a partial angle range, a pie
// slice. Angles are in degrees with 0 at the +x axis, increasing toward
// +y (clockwise on screen). Start 0 and End 360 cover the whole
// ellipse. Nil Fill and Outline colors are skipped.
type Ellipse struct {
	Center  image.Point
	Radii   image.Point
	Start   float64
	End     float64
	Fill    *Color
	Outline *Color
	Width   int
}

// NewEllipse creates a full ellipse with the given center and radii.
func NewEllipse(center, radii image.Point) *Ellipse {
	return &Ellipse{Center: center, Radii: radii, Start: 0, End: 360, Width: 1}
}

// NewPieSlice creates an elliptical sector between two angles.
func NewPieSlice(center, radii image.Point, start, end float64) *Ellipse {
	return &Ellipse{Center: center, Radii: radii, Start: start, End: end, Width: 1}
}

// Bounds returns the bounding box of the full ellipse.
func (shape *Ellipse) Bounds() image.Rectangle {
	return image.Rect(
		shape.Center.X-shape.Radii.X, shape.Center.Y-shape.Radii.Y,
		shape.Center.X+shape.Radii.X, shape.Center.Y+shape.Radii.Y,
	)
}

// Draw fills and outlines the sector onto dst.
func (shape *Ellipse) Draw(dst *Pixmap) {
	if shape.Fill != nil {
		fillSector(dst, shape.Center, shape.Radii, shape.Start, shape.End, *shape.Fill)
	}
	if shape.Outline != nil {
		strokeSector(dst, shape.Center, shape.Radii, shape.Start, shape.End, *shape.Outline, shape.Width)
	}
}

// Move shifts the center by the given offset.
func (shape *Ellipse) Move(dx, dy int) {
	shape.Center = shape.Center.Add(image.Pt(dx, dy))
}
