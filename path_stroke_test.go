package vpath

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/test"
)

func TestPathStroke(t *testing.T) {
	var tts = []struct {
		orig   string
		w      float64
		join   Join
		endCap EndCap
		area   float64
	}{
		{"", 2.0, JoinMiter, CapButt, 0.0},
		{"M10 10", 2.0, JoinMiter, CapRound, 0.0},
		{"M0 0L10 0", 2.0, JoinMiter, CapButt, 20.0},
		{"M0 0L10 0", 2.0, JoinMiter, CapSquare, 24.0},
		{"M0 0L10 0", 0.0, JoinMiter, CapButt, 0.0},
		{"M0 0L10 0", -2.0, JoinMiter, CapButt, 0.0},
		{"M0 0L10 0L10 10", 2.0, JoinMiter, CapButt, 40.0},
		{"M0 0L10 0L10 10", 2.0, JoinBevel, CapButt, 39.5},
		{"M0 0L10 0L10 10", 2.0, JoinSquare, CapButt, 40.0},
		{"M0 0L10 0L10 10L0 10z", 2.0, JoinMiter, CapButt, 80.0},
		{"M0 0L10 0L10 10L0 10z", 2.0, JoinSquare, CapRound, 80.0},
		{"M0 0L10 0L10 10L0 10z", 2.0, JoinBevel, CapButt, 78.0},
		{"M0 0L10 0L10 10L0 10zM20 0L30 0", 2.0, JoinMiter, CapButt, 100.0},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p := MustParseSVGPath(tt.orig)
			r := p.Stroke(tt.w, tt.join, tt.endCap, nil, 0.0, 0.0)
			test.T(t, r.FillRule(), NonZero)
			testNear(t, filledArea(r), tt.area, 1e-9)
		})
	}
}

func TestPathStrokeRound(t *testing.T) {
	// round caps add a half disk at both ends
	r := MustParseSVGPath("M0 0L10 0").Stroke(2.0, JoinRound, CapRound, nil, 0.0, 0.0)
	area := filledArea(r)
	test.That(t, area <= 20.0+math.Pi+0.01, area)
	test.That(t, 20.0+math.Pi-0.5 < area, area)
	test.That(t, r.Interior(10.9, 0.0))
	test.That(t, !r.Interior(10.9, 0.9))

	// round joins on the outside of a closed square
	r = MustParseSVGPath("M0 0L10 0L10 10L0 10z").Stroke(2.0, JoinRound, CapButt, nil, 0.0, 0.0)
	area = filledArea(r)
	test.That(t, area <= 76.0+math.Pi+0.01, area)
	test.That(t, 76.0+math.Pi-0.5 < area, area)
}

func TestPathStrokeDot(t *testing.T) {
	p := FromOrb(orb.Point{5, 5})
	testNear(t, filledArea(p.Stroke(2.0, JoinMiter, CapSquare, nil, 0.0, 0.0)), 4.0, 1e-9)
	testNear(t, filledArea(p.Stroke(2.0, JoinMiter, CapButt, nil, 0.0, 0.0)), 0.0, 1e-9)

	area := filledArea(p.Stroke(2.0, JoinMiter, CapRound, nil, 0.0, 0.0))
	test.That(t, area <= math.Pi+0.01, area)
	test.That(t, math.Pi-0.5 < area, area)
}

func TestPathStrokeDashes(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0")
	testNear(t, filledArea(p.Stroke(2.0, JoinMiter, CapButt, []float64{2.0}, 0.0, 0.0)), 12.0, 1e-9)
	testNear(t, filledArea(p.Stroke(2.0, JoinMiter, CapButt, []float64{2.0}, 1.0, 0.0)), 10.0, 1e-9)
	testNear(t, filledArea(p.Stroke(2.0, JoinMiter, CapButt, []float64{}, 0.0, 0.0)), 20.0, 1e-9)
}

func TestPathStrokeMiterLimit(t *testing.T) {
	// sharp corner of about 11 degrees has a miter ratio of about 10
	p := MustParseSVGPath("M0 0L100 0L0 20")
	miter := filledArea(p.Stroke(2.0, JoinMiter, CapButt, nil, 0.0, 20.0))
	bevel := filledArea(p.Stroke(2.0, JoinMiter, CapButt, nil, 0.0, 4.0))
	test.That(t, bevel < miter, bevel, miter)
	testNear(t, bevel, filledArea(p.Stroke(2.0, JoinBevel, CapButt, nil, 0.0, 0.0)), 1e-9)
}

func TestPathOffset(t *testing.T) {
	p := MustParseSVGPath("M0 0L100 0L100 100L0 100z")
	var tts = []struct {
		amount float64
		join   Join
		area   float64
	}{
		{0.0, JoinMiter, 10000.0},
		{-10.0, JoinMiter, 6400.0},
		{-60.0, JoinMiter, 0.0},
		{10.0, JoinMiter, 14400.0},
		{10.0, JoinSquare, 14400.0},
		{10.0, JoinBevel, 14200.0},
	}
	for _, tt := range tts {
		t.Run(tt.join.String(), func(t *testing.T) {
			r := p.Offset(tt.amount, tt.join, 0.0)
			test.T(t, r.FillRule(), NonZero)
			testNear(t, filledArea(r), tt.area, 1e-6)
		})
	}

	area := filledArea(p.Offset(10.0, JoinRound, 0.0))
	test.That(t, area <= 14000.0+100.0*math.Pi+0.1, area)
	test.That(t, 14000.0+100.0*math.Pi-5.0 < area, area)

	// a reversed path has the same filled area and offsets the same way
	testNear(t, filledArea(p.Reverse().Offset(10.0, JoinMiter, 0.0)), 14400.0, 1e-6)

	// holes shrink
	q := MustParseSVGPath("M0 0L100 0L100 100L0 100zM20 20L80 20L80 80L20 80z")
	testNear(t, filledArea(q.Offset(5.0, JoinMiter, 0.0)), 110.0*110.0-50.0*50.0, 1e-6)
}

func TestStrokeStyles(t *testing.T) {
	test.String(t, JoinRound.String(), "Round")
	test.String(t, JoinMiter.String(), "Miter")
	test.String(t, Join(9).String(), "Join(?)")
	test.String(t, CapButt.String(), "Butt")
	test.String(t, EndCap(9).String(), "EndCap(?)")
	test.T(t, JoinMiter.Joiner(0.0), MiterJoiner(DefaultMiterLimit))
}

// testManifold checks that the triangles share their edges pairwise, so that the edges used by a single triangle form closed outlines.
func testManifold(t *testing.T, tri Triangulation) {
	t.Helper()
	edges := map[[2]Point]int{}
	for i := 0; i < tri.Len(); i++ {
		v := tri.Triangle(i)
		for j := 0; j < 3; j++ {
			edges[[2]Point{v[j], v[(j+1)%3]}]++
		}
	}

	balance := map[Point]int{}
	for e, n := range edges {
		test.That(t, n == 1, "edge used twice in the same direction", e)
		if _, ok := edges[[2]Point{e[1], e[0]}]; !ok {
			balance[e[0]]++
			balance[e[1]]--
		}
	}
	for p, n := range balance {
		test.That(t, n == 0, "open outline at", p)
	}
}

func TestPathStrokeClosed(t *testing.T) {
	var tts = []struct {
		orig string
		join Join
	}{
		{"M0 0L10 5L20 0L30 5L40 0", JoinMiter},
		{"M0 0L10 5L20 0L30 5L40 0", JoinRound},
		{"M0 0L10 0L10 10", JoinBevel},
		{"M0 0L20 0L10 10L10 -10", JoinMiter},
		{"M0 0L10 0L10 10L0 10z", JoinSquare},
	}
	for _, tt := range tts {
		t.Run(tt.join.String()+" "+tt.orig, func(t *testing.T) {
			r := MustParseSVGPath(tt.orig).Stroke(2.0, tt.join, CapButt, nil, 0.0, 0.0)
			tri := r.Triangulate()
			test.That(t, 0 < tri.Len())
			testManifold(t, tri)
		})
	}
}

func TestPathStrokeZigzag(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	for i := 1; i < 2000; i++ {
		p.LineTo(float64(i), float64(4*(i%2)))
	}
	r := p.Stroke(1.0, JoinMiter, CapButt, nil, 0.0, 0.0)
	test.That(t, 0 < len(r.SubPaths()))
	for i := 0; i < 2000; i += 37 {
		x, y := float64(i)+0.5, 2.0
		test.That(t, r.Interior(x, y), "segment center not covered", x, y)
	}
	test.That(t, !r.Interior(0.5, 8.0))
	test.That(t, !r.Interior(1.0, -2.0))
}
