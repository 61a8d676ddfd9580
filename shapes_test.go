package graphics

import (
	"bytes"
	"image"
	"testing"
)

func TestLineDraw(t *testing.T) {
	dst := NewPixmap(20, 20, White)
	NewLine(image.Pt(2, 2), image.Pt(8, 8), RGB(0, 0, 0), 1).Draw(dst)

	for _, p := range []image.Point{{2, 2}, {5, 5}, {8, 8}} {
		if dst.At(p.X, p.Y) != Black {
			t.Errorf("pixel %v = %v, want black", p, dst.At(p.X, p.Y))
		}
	}
	if dst.At(2, 8) != White {
		t.Errorf("pixel off the line = %v, want white", dst.At(2, 8))
	}
}

func TestLineNilColorIsNoOp(t *testing.T) {
	dst := NewPixmap(10, 10, White)
	before := append([]byte(nil), dst.Data...)

	NewLine(image.Pt(0, 0), image.Pt(9, 9), nil, 1).Draw(dst)
	if !bytes.Equal(dst.Data, before) {
		t.Error("a line without a color painted pixels")
	}
}

func TestLineWidth(t *testing.T) {
	dst := NewPixmap(20, 20, White)
	NewLine(image.Pt(2, 10), image.Pt(17, 10), RGB(0, 0, 0), 3).Draw(dst)

	for _, p := range []image.Point{{10, 9}, {10, 10}, {10, 11}} {
		if dst.At(p.X, p.Y) != Black {
			t.Errorf("pixel %v = %v, want black (stroke width 3)", p, dst.At(p.X, p.Y))
		}
	}
	if dst.At(10, 13) != White {
		t.Errorf("pixel outside the stroke = %v, want white", dst.At(10, 13))
	}
}

func TestLineMove(t *testing.T) {
	line := NewLine(image.Pt(1, 2), image.Pt(3, 4), RGB(0, 0, 0), 1)
	line.Move(10, 20)
	if line.P0 != image.Pt(11, 22) || line.P1 != image.Pt(13, 24) {
		t.Errorf("moved line = %v-%v, want (11,22)-(13,24)", line.P0, line.P1)
	}
}

func TestPolyLineDraw(t *testing.T) {
	dst := NewPixmap(20, 20, White)
	points := []image.Point{{0, 5}, {10, 5}, {10, 15}}
	NewPolyLine(points, RGB(0, 0, 0), 1).Draw(dst)

	for _, p := range []image.Point{{0, 5}, {5, 5}, {10, 5}, {10, 10}, {10, 15}} {
		if dst.At(p.X, p.Y) != Black {
			t.Errorf("pixel %v = %v, want black", p, dst.At(p.X, p.Y))
		}
	}
}

func TestPolyLineDegenerateGeometry(t *testing.T) {
	dst := NewPixmap(10, 10, White)
	before := append([]byte(nil), dst.Data...)

	NewPolyLine(nil, RGB(0, 0, 0), 1).Draw(dst)
	if !bytes.Equal(dst.Data, before) {
		t.Error("an empty polyline painted pixels")
	}
}

func TestPolygonFill(t *testing.T) {
	dst := NewPixmap(20, 20, White)
	square := []image.Point{{2, 2}, {12, 2}, {12, 12}, {2, 12}}
	NewPolygon(square, RGB(255, 0, 0), nil).Draw(dst)

	red := Color{R: 255}
	for _, p := range []image.Point{{7, 7}, {2, 2}, {12, 12}, {7, 2}} {
		if dst.At(p.X, p.Y) != red {
			t.Errorf("pixel %v = %v, want red", p, dst.At(p.X, p.Y))
		}
	}
	for _, p := range []image.Point{{0, 0}, {13, 13}, {1, 7}} {
		if dst.At(p.X, p.Y) != White {
			t.Errorf("pixel %v = %v, want white", p, dst.At(p.X, p.Y))
		}
	}
}

func TestPolygonOutlineOnly(t *testing.T) {
	dst := NewPixmap(20, 20, White)
	square := []image.Point{{2, 2}, {12, 2}, {12, 12}, {2, 12}}
	NewPolygon(square, nil, RGB(0, 0, 255)).Draw(dst)

	blue := Color{B: 255}
	if dst.At(7, 2) != blue {
		t.Errorf("edge pixel = %v, want blue", dst.At(7, 2))
	}
	if dst.At(7, 7) != White {
		t.Errorf("interior pixel = %v, want white (no fill)", dst.At(7, 7))
	}
}

func TestEllipseFill(t *testing.T) {
	dst := NewPixmap(60, 60, White)
	ellipse := NewEllipse(image.Pt(30, 30), image.Pt(12, 8))
	ellipse.Fill = RGB(0, 0, 0)
	ellipse.Draw(dst)

	for _, p := range []image.Point{{30, 30}, {40, 30}, {30, 36}} {
		if dst.At(p.X, p.Y) != Black {
			t.Errorf("pixel %v = %v, want black", p, dst.At(p.X, p.Y))
		}
	}
	// Inside the bounding box but outside the ellipse.
	if dst.At(41, 37) != White {
		t.Errorf("corner pixel = %v, want white", dst.At(41, 37))
	}
}

func TestPieSliceAngles(t *testing.T) {
	slice := NewPieSlice(image.Pt(20, 20), image.Pt(10, 10), 0, 90)
	slice.Fill = RGB(0, 0, 0)

	dst := NewPixmap(40, 40, White)
	slice.Draw(dst)

	tests := []struct {
		name   string
		p      image.Point
		inside bool
	}{
		{"45 degrees", image.Pt(25, 25), true},
		{"center", image.Pt(20, 20), true},
		{"180 degrees", image.Pt(13, 20), false},
		{"270 degrees", image.Pt(20, 13), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := White
			if tt.inside {
				want = Black
			}
			if got := dst.At(tt.p.X, tt.p.Y); got != want {
				t.Errorf("pixel %v = %v, want %v", tt.p, got, want)
			}
		})
	}
}

func TestEllipseOutline(t *testing.T) {
	dst := NewPixmap(40, 40, White)
	ellipse := NewEllipse(image.Pt(20, 20), image.Pt(10, 10))
	ellipse.Outline = RGB(0, 0, 0)
	ellipse.Draw(dst)

	for _, p := range []image.Point{{30, 20}, {10, 20}, {20, 30}, {20, 10}} {
		if dst.At(p.X, p.Y) != Black {
			t.Errorf("rim pixel %v = %v, want black", p, dst.At(p.X, p.Y))
		}
	}
	if dst.At(20, 20) != White {
		t.Errorf("center = %v, want white (outline only)", dst.At(20, 20))
	}
}

func TestEllipseMoveAndBounds(t *testing.T) {
	ellipse := NewEllipse(image.Pt(10, 10), image.Pt(4, 6))
	ellipse.Move(5, -2)

	if ellipse.Center != image.Pt(15, 8) {
		t.Errorf("center = %v, want (15,8)", ellipse.Center)
	}
	want := image.Rect(11, 2, 19, 14)
	if ellipse.Bounds() != want {
		t.Errorf("bounds = %v, want %v", ellipse.Bounds(), want)
	}
}

func TestPolygonMove(t *testing.T) {
	polygon := NewPolygon([]image.Point{{0, 0}, {4, 0}, {2, 3}}, nil, nil)
	polygon.Move(1, 1)

	want := []image.Point{{1, 1}, {5, 1}, {3, 4}}
	for i, p := range polygon.XY {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
}
