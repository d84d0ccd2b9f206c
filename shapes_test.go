package vpath

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestShapes(t *testing.T) {
	defer setEpsilon(1e-4)()

	test.String(t, Rectangle(0.0, 10.0).String(), "")
	test.String(t, Rectangle(5.0, 10.0).String(), "M0 0L5 0L5 10L0 10z")
	test.String(t, RoundedRectangle(0.0, 10.0, 0.0).String(), "")
	test.String(t, RoundedRectangle(5.0, 10.0, 0.0).String(), "M0 0L5 0L5 10L0 10z")
	test.String(t, Circle(0.0).String(), "")
	test.String(t, RegularPolygon(2, 2.0, true).String(), "")
	testPath(t, RegularPolygon(4, 2.0, true), "M0 2L-2 0L0 -2L2 0z")
	testPath(t, RegularPolygon(3, 2.0, true), "M0 2L-1.7320508 -1L1.7320508 -1z")
	testPath(t, RegularPolygon(3, 2.0, false), "M-1.7320508 1L0 -2L1.7320508 1z")
	testPath(t, StarPolygon(3, 4.0, 2.0, false), "M-3.4641016 2L-1.7320508 -1L0 -4L1.7320508 -1L3.4641016 2L0 2z")
	test.String(t, StarPolygon(2, 4.0, 2.0, true).String(), "")
	test.String(t, RegularStarPolygon(4, 2, 2.0, true).String(), "")
	test.String(t, Grid(10.0, 10.0, 0, 1, 1.0).String(), "")
}

func TestShapeAreas(t *testing.T) {
	var tts = []struct {
		name string
		p    *Path
		area float64
		tol  float64
	}{
		{"Rectangle", Rectangle(5.0, 10.0), 50.0, 1e-9},
		{"RoundedRectangle", RoundedRectangle(10.0, 10.0, 2.0), 100.0 - (4.0-math.Pi)*4.0, 0.5},
		{"Circle", Circle(10.0), math.Pi * 100.0, 3.0},
		{"Ellipse", Ellipse(10.0, 5.0), math.Pi * 50.0, 3.0},
		{"RegularPolygon", RegularPolygon(4, 1.0, true), 2.0, 1e-9},
		{"StarPolygon", StarPolygon(4, 2.0, 1.0, true), 8.0 * math.Sqrt2 / 2.0, 1e-9},
		{"Grid", Grid(10.0, 10.0, 2, 2, 1.0), 100.0 - 4.0*3.5*3.5, 1e-9},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			testNear(t, filledArea(tt.p), tt.area, tt.tol)
		})
	}
}

func TestShapesAdd(t *testing.T) {
	p := &Path{}
	p.AddRectangle(10, 10, 5, 5)
	p.AddCircle(0, 0, 1)
	p.AddRoundedRectangle(20, 20, 10, 10, 0, 0)
	test.T(t, len(p.SubPaths()), 3)
	test.That(t, p.SubPaths()[1].Closed)
	test.T(t, p.SubPaths()[2].Points, []Point{{20, 20}, {30, 20}, {30, 30}, {20, 30}})

	q := &Path{}
	q.AddRoundedRectangleCorners(0, 0, 10, 10, CornerRadii{BottomLeft: Point{2, 2}})
	test.T(t, len(q.SubPaths()), 1)
	testNear(t, filledArea(q), 100.0-(4.0-math.Pi), 0.2)
	test.That(t, q.Interior(9.9, 9.9))
	test.That(t, !q.Interior(0.1, 9.9))
}

func TestShapesZeroRadius(t *testing.T) {
	var tts = []struct {
		name string
		p    *Path
	}{
		{"StarPolygon", StarPolygon(5, 0.0, 0.0, true)},
		{"RegularStarPolygon", RegularStarPolygon(5, 2, 0.0, true)},
		{"RegularPolygon", RegularPolygon(6, 0.0, false)},
		{"Circle", Circle(0.0)},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			tri := tt.p.Triangulate()
			test.T(t, tri.Len(), 0)
			test.Float(t, tri.Area(), 0.0)
		})
	}
}
