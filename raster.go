package graphics

import (
	"image"
	"math"
	"sort"
)

// Rasterization primitives shared by the shape types. No anti-aliasing;
// writes outside the destination are dropped by Pixmap.Set.

// stampBrush paints a width-sized square centered on (x, y).
// Widths below 2 paint a single pixel.
func stampBrush(dst *Pixmap, x, y int, c Color, width int) {
	if width < 2 {
		dst.Set(x, y, c)
		return
	}
	half := width / 2
	for dy := -half; dy < width-half; dy++ {
		for dx := -half; dx < width-half; dx++ {
			dst.Set(x+dx, y+dy, c)
		}
	}
}

// drawSegment strokes a straight segment with the Bresenham walk.
func drawSegment(dst *Pixmap, p0, p1 image.Point, c Color, width int) {
	x0, y0 := p0.X, p0.Y
	x1, y1 := p1.X, p1.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}

	err := dx + dy
	for {
		stampBrush(dst, x0, y0, c, width)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// strokePolyLine strokes segments between consecutive points.
func strokePolyLine(dst *Pixmap, points []image.Point, c Color, width int) {
	for i := 1; i < len(points); i++ {
		drawSegment(dst, points[i-1], points[i], c, width)
	}
}

// strokePolygon strokes a closed outline through the points.
func strokePolygon(dst *Pixmap, points []image.Point, c Color, width int) {
	if len(points) < 2 {
		return
	}
	strokePolyLine(dst, points, c, width)
	drawSegment(dst, points[len(points)-1], points[0], c, width)
}

// fillPolygon fills a closed polygon with an even-odd scanline walk.
func fillPolygon(dst *Pixmap, points []image.Point, c Color) {
	if len(points) < 3 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	minY = max(minY, 0)
	maxY = min(maxY, dst.Height-1)

	crossings := make([]float64, 0, len(points))
	for y := minY; y <= maxY; y++ {
		crossings = crossings[:0]
		j := len(points) - 1
		for i, a := range points {
			b := points[j]
			j = i
			if (a.Y <= y && b.Y > y) || (b.Y <= y && a.Y > y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				crossings = append(crossings, float64(a.X)+t*float64(b.X-a.X))
			}
		}
		sort.Float64s(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			x0 := int(math.Ceil(crossings[i]))
			x1 := int(math.Floor(crossings[i+1]))
			for x := x0; x <= x1; x++ {
				dst.Set(x, y, c)
			}
		}
	}
}

// normalizeDegrees maps an angle into [0, 360).
func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// angleWithin reports whether the angle lies in the arc from start to
// end, walked clockwise on screen (y grows downward).
func angleWithin(angle, start, end float64) bool {
	angle = normalizeDegrees(angle)
	start = normalizeDegrees(start)
	end = normalizeDegrees(end)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// fillSector fills an elliptical sector with a per-pixel inside test.
// Angles follow the parametric form of the ellipse, 0 degrees at the +x
// axis; a span of 360 or more fills the whole ellipse.
func fillSector(dst *Pixmap, center, radii image.Point, start, end float64, c Color) {
	rx, ry := radii.X, radii.Y
	if rx <= 0 || ry <= 0 {
		return
	}
	full := end-start >= 360

	for y := center.Y - ry; y <= center.Y+ry; y++ {
		ny := float64(y-center.Y) / float64(ry)
		for x := center.X - rx; x <= center.X+rx; x++ {
			nx := float64(x-center.X) / float64(rx)
			if nx*nx+ny*ny > 1 {
				continue
			}
			if !full && !angleWithin(math.Atan2(ny, nx)*180/math.Pi, start, end) {
				continue
			}
			dst.Set(x, y, c)
		}
	}
}

// strokeSector strokes the arc of an elliptical sector and, for partial
// sectors, the two radii bounding it.
func strokeSector(dst *Pixmap, center, radii image.Point, start, end float64, c Color, width int) {
	rx, ry := radii.X, radii.Y
	if rx <= 0 || ry <= 0 {
		return
	}
	if end < start {
		end += 360
	}

	// Step fine enough that consecutive arc points touch.
	step := 180 / (math.Pi * float64(max(rx, ry)))
	arcPoint := func(deg float64) image.Point {
		rad := deg * math.Pi / 180
		return image.Pt(
			center.X+int(math.Round(float64(rx)*math.Cos(rad))),
			center.Y+int(math.Round(float64(ry)*math.Sin(rad))),
		)
	}

	for deg := start; deg < end; deg += step {
		p := arcPoint(deg)
		stampBrush(dst, p.X, p.Y, c, width)
	}
	endPoint := arcPoint(end)
	stampBrush(dst, endPoint.X, endPoint.Y, c, width)

	if end-start < 360 {
		drawSegment(dst, center, arcPoint(start), c, width)
		drawSegment(dst, center, endPoint, c, width)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
