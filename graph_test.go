package vpath

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func graphFromSVG(s string) *graph {
	return newGraph(MustParseSVGPath(s).subpaths)
}

// findEdge returns the start vertex of the live edge from a to b, or -1.
func findEdge(g *graph, a, b Point) int {
	for v := range g.points {
		if g.live(v) && g.points[v] == a && g.points[g.next[v]] == b {
			return v
		}
	}
	return -1
}

// graphArea returns the sum of the signed areas of all cycles.
func graphArea(g *graph) float64 {
	area := 0.0
	for _, start := range g.cycles() {
		ids := g.cycle(start)
		for i, v := range ids {
			area += g.points[v].PerpDot(g.points[ids[(i+1)%len(ids)]]) / 2.0
		}
	}
	return area
}

func TestGraph(t *testing.T) {
	g := graphFromSVG("M0 0L10 0L10 10L0 10zM20 0L30 0M40 0L50 0L50 10")
	test.T(t, len(g.points), 7) // open subpath of two points has no area
	test.T(t, len(g.cycles()), 2)
	test.T(t, g.cycle(0), []int{0, 1, 2, 3})
	test.String(t, g.String(), "M0 0L10 0L10 10L0 10zM40 0L50 0L50 10z")
	g.checkValidPolygons()

	h := g.clone()
	h.removeFromCycle(1)
	test.That(t, !h.live(1))
	test.T(t, h.cycle(0), []int{0, 2, 3})
	test.T(t, g.cycle(0), []int{0, 1, 2, 3})
	h.checkValidPolygons()

	v := g.insertPointBetween(0, 1, Point{5, 0})
	test.T(t, g.cycle(0), []int{0, v, 1, 2, 3})
	test.T(t, g.origin[v], v)
	w := g.copyVertex(2)
	test.T(t, g.origin[w], 2)
	test.That(t, !g.live(w))

	g = graphFromSVG("M0 0L10 0L10 10z")
	g.merge(graphFromSVG("M20 0L30 0L30 10z"))
	test.T(t, len(g.cycles()), 2)
	test.T(t, g.cycle(3), []int{3, 4, 5})
	test.T(t, g.origin[5], 5)
	g.reverse()
	test.T(t, g.cycle(3), []int{3, 5, 4})
	testNear(t, graphArea(g), -100.0, 1e-9)
}

func TestGraphInsertValue(t *testing.T) {
	p := &Path{}
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.SetValue(10.0)
	p.LineTo(10, 10)
	p.Close()

	g := newGraph(p.subpaths)
	v := g.insertPointBetween(1, 2, Point{10, 2.5})
	test.Float(t, g.values[v], 2.5)
}

func TestGraphRemoveLinearPoints(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"M0 0L5 0L10 0L10 10L0 10z", "M0 0L10 0L10 10L0 10z"},
		{"M0 0L10 0L10 10L10 5L10 20L0 20z", "M0 0L10 0L10 20L0 20z"},
		{"M0 0L10 0L20 0z", ""},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			g := graphFromSVG(tt.orig)
			g.removeLinearPoints()
			g.checkValidPolygons()
			test.String(t, g.String(), tt.res)
		})
	}
}

func TestGraphPointType(t *testing.T) {
	g := graphFromSVG("M0 0L10 5L20 0L20 10L0 10z")
	test.T(t, g.pointType(0), beginType)
	test.T(t, g.pointType(1), continueType)
	test.T(t, g.pointType(2), continueType)
	test.T(t, g.pointType(3), endType)
	test.T(t, g.pointType(4), continueType)
	test.T(t, g.sortedIndices(), []int{0, 4, 1, 2, 3})
	test.String(t, beginType.String(), "Begin")
}

func TestBreakIntersections(t *testing.T) {
	var tts = []struct {
		orig     string
		vertices int
		points   []Point
	}{
		{"M0 0L10 0L10 10L0 10zM5 5L15 5L15 15L5 15z", 12, []Point{{10, 5}, {5, 10}}},
		{"M0 0L10 10L10 0L0 10z", 6, []Point{{5, 5}}},
		{"M0 0L10 0L10 10L0 10zM10 2L20 2L20 8L10 8z", 10, []Point{{10, 2}, {10, 8}}},
		{"M0 0L10 0L10 10L0 10zM5 10L8 15L2 15z", 4 + 3 + 1, []Point{{5, 10}}},
		{"M0 0L10 0L10 10L0 10zM20 0L30 0L30 10z", 7, nil},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			g := graphFromSVG(tt.orig)
			g.breakIntersections()
			g.checkValidPolygons()
			test.T(t, len(g.points), tt.vertices)
			for _, p := range tt.points {
				n := 0
				for v := range g.points {
					if g.points[v] == p {
						n++
					}
				}
				test.That(t, 2 <= n, "missing intersection", p)
			}

			testPlanar(t, g)
		})
	}
}

// testPlanar checks that no two edges cross and that no two distinct vertex positions are closer than a split point could be rounded.
func testPlanar(t *testing.T, g *graph) {
	t.Helper()
	edges := g.liveEdges()
	for i, e := range edges {
		for _, f := range edges[i+1:] {
			a0, a1 := g.points[e], g.points[g.next[e]]
			b0, b1 := g.points[f], g.points[g.next[f]]
			o1, o2 := orientation(a0, a1, b0), orientation(a0, a1, b1)
			o3, o4 := orientation(b0, b1, a0), orientation(b0, b1, a1)
			test.That(t, !(o1*o2 < 0.0 && o3*o4 < 0.0), "crossing edges", a0, a1, b0, b1)
		}
	}
	for i, p := range g.points {
		for _, q := range g.points[i+1:] {
			if p != q {
				test.That(t, 1e-9 < p.Sub(q).Length(), "nearly coincident vertices", p, q)
			}
		}
	}
}

func TestBreakConcurrentIntersections(t *testing.T) {
	var tts = []string{
		"M2 4L4 2L1 3L2 1L3 1L2 3L4 1L0 4L1 4L2 4L3 0z",
		"M4 4L0 0L4 3L2 2L0 1L0 4L4 0L1 3z",
		"M0 0L3 3L0 3L3 0L0 1L3 2L1 0L2 3z", // four edges through (1.5,1.5)
		"M0 0L7 5L0 5L7 0L3 0L4 5z",
	}
	for _, orig := range tts {
		t.Run("sweep "+orig, func(t *testing.T) {
			g := graphFromSVG(orig)
			g.breakIntersections()
			g.checkValidPolygons()
			testPlanar(t, g)
		})
		t.Run("exhaustive "+orig, func(t *testing.T) {
			g := graphFromSVG(orig)
			for pass := 0; pass < maxIntersectionPasses; pass++ {
				if g.breakIntersectionsExhaustive(g.newSnapper(g.snapDistance())) == 0 {
					break
				}
			}
			g.checkValidPolygons()
			testPlanar(t, g)
		})
	}
}

func TestSnapper(t *testing.T) {
	g := graphFromSVG("M0 0L10 0L10 10z")
	sn := g.newSnapper(1e-6)
	test.T(t, sn.snap(Point{10, 1e-7}), Point{10, 0})
	test.T(t, sn.snap(Point{5, 5}, Point{0, 0}), Point{5, 5})
	test.T(t, sn.snap(Point{5, 5 + 1e-12}), Point{5, 5}) // registered by the previous call
	test.T(t, sn.snap(Point{5, 5 + 1e-12}, Point{5, 5 - 1e-12}), Point{5, 5 - 1e-12})
	test.T(t, sn.snap(Point{3, 3}), Point{3, 3})
}

func TestSweepStatus(t *testing.T) {
	// horizontal edges stacked upwards, inserted in scrambled order
	p := &Path{}
	ys := []float64{5, 1, 8, 3, 9, 0, 7, 2, 6, 4}
	for _, y := range ys {
		p.MoveTo(0, y)
		p.LineTo(10, y)
		p.LineTo(10, y+0.5)
		p.Close()
	}
	g := newGraph(p.subpaths)
	s := newSweepStatus(g)
	for i := range ys {
		s.insert(3 * i)
	}
	order := func() []float64 {
		zs := []float64{}
		for _, e := range s.edges() {
			zs = append(zs, g.points[e].Y)
		}
		return zs
	}
	test.T(t, order(), []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	test.That(t, s.root.height <= 4, "unbalanced", s.root.height)

	n := s.node(3 * 3) // y=3
	test.T(t, g.points[n.prev().edge].Y, 2.0)
	test.T(t, g.points[n.next().edge].Y, 4.0)

	for _, i := range []int{0, 3, 5, 9} {
		s.remove(3 * i)
	}
	test.That(t, !s.has(0))
	test.T(t, order(), []float64{1, 2, 6, 7, 8, 9})
	s.rekey(3, 4)
	test.That(t, s.has(4) && !s.has(3))
	test.T(t, s.node(4).edge, 4)
}

func TestWindings(t *testing.T) {
	g := graphFromSVG("M0 0L10 0L10 10L0 10zM5 5L15 5L15 15L5 15z")
	g.breakIntersections()
	lefts, rights := g.windings()

	var tts = []struct {
		a, b        Point
		left, right int
	}{
		{Point{0, 0}, Point{10, 0}, 1, 0},
		{Point{5, 5}, Point{10, 5}, 2, 1},
		{Point{10, 5}, Point{15, 5}, 1, 0},
		{Point{10, 5}, Point{10, 10}, 2, 1},
		{Point{10, 0}, Point{10, 5}, 1, 0},
		{Point{10, 10}, Point{5, 10}, 2, 1},
		{Point{5, 10}, Point{0, 10}, 1, 0},
		{Point{5, 15}, Point{5, 10}, 1, 0},
		{Point{5, 10}, Point{5, 5}, 2, 1},
	}
	for _, tt := range tts {
		t.Run(tt.a.String()+tt.b.String(), func(t *testing.T) {
			e := findEdge(g, tt.a, tt.b)
			test.That(t, e != -1)
			test.T(t, lefts[e], tt.left)
			test.T(t, rights[e], tt.right)
		})
	}

	// reversed subpath
	g = graphFromSVG("M0 0L0 10L10 10L10 0z")
	lefts, rights = g.windings()
	e := findEdge(g, Point{0, 10}, Point{10, 10})
	test.T(t, lefts[e], 0)
	test.T(t, rights[e], -1)
	e = findEdge(g, Point{10, 10}, Point{10, 0})
	test.T(t, lefts[e], 0)
	test.T(t, rights[e], -1)
}

func TestWindingsZigzag(t *testing.T) {
	// the windings of every edge agree with the fill count just left of its midpoint
	p := &Path{}
	p.MoveTo(0, 0)
	for i := 1; i <= 40; i++ {
		p.LineTo(float64(i), float64(5*(i%2)))
	}
	p.LineTo(40, -3)
	p.Close()
	g := newGraph(p.subpaths)
	g.breakIntersections()
	lefts, rights := g.windings()
	sp := p.SubPaths()[0]
	for _, e := range g.liveEdges() {
		a, b := g.points[e], g.points[g.next[e]]
		m := a.Interpolate(b, 0.5)
		n := b.Sub(a).Rot90CCW().Norm(1e-6)
		test.T(t, lefts[e], sp.FillCount(m.X+n.X, m.Y+n.Y), a, b)
		test.T(t, rights[e], sp.FillCount(m.X-n.X, m.Y-n.Y), a, b)
	}
}

func TestMatchIncidents(t *testing.T) {
	// two cycles touching in a single node
	incs := []incident{
		{0, true, 0.0},
		{1, false, math.Pi / 2.0},
		{2, true, math.Pi},
		{3, false, -math.Pi / 2.0},
	}
	test.T(t, matchIncidents(incs), [][2]int{{1, 0}, {3, 2}})

	incs = []incident{
		{0, false, math.Pi},
		{1, true, 0.0},
	}
	test.T(t, matchIncidents(incs), [][2]int{{0, 1}})

	// unbalanced
	incs = []incident{
		{0, true, 0.0},
	}
	test.T(t, len(matchIncidents(incs)), 0)
}

func TestFixWindings(t *testing.T) {
	var tts = []struct {
		orig     string
		fillRule FillRule
		cycles   int
		area     float64
	}{
		{"M0 0L10 0L10 10L0 10z", EvenOdd, 1, 100.0},
		{"M0 0L0 10L10 10L10 0z", EvenOdd, 1, 100.0},
		{"M0 0L0 10L10 10L10 0z", NonZero, 1, 100.0},
		{"M0 0L0 10L10 10L10 0z", Positive, 0, 0.0},
		{"M0 0L10 0L10 10L0 10zM5 5L15 5L15 15L5 15z", EvenOdd, 2, 150.0},
		{"M0 0L10 0L10 10L0 10zM5 5L15 5L15 15L5 15z", NonZero, 1, 175.0},
		{"M0 0L10 0L10 10L0 10zM2 2L8 2L8 8L2 8z", EvenOdd, 2, 64.0},
		{"M0 0L10 0L10 10L0 10zM2 2L8 2L8 8L2 8z", NonZero, 1, 100.0},
		{"M0 0L10 0L10 10L0 10zM0 0L10 0L10 10L0 10z", EvenOdd, 0, 0.0},
		{"M0 0L10 0L10 10L0 10zM0 0L10 0L10 10L0 10z", NonZero, 1, 100.0},
		{"M0 0L10 0L10 10L0 10zM0 0L0 10L10 10L10 0z", NonZero, 0, 0.0},
		{"M0 0L10 10L10 0L0 10z", EvenOdd, 2, 50.0},
		{"M0 0L10 0L10 10L0 10zM10 0L20 0L20 10L10 10z", NonZero, 1, 200.0},
		{"M0 0L10 0L10 10L0 10zM10 10L20 10L20 20L10 20z", NonZero, 2, 200.0},
	}
	for _, tt := range tts {
		t.Run(tt.fillRule.String()+" "+tt.orig, func(t *testing.T) {
			g := graphFromSVG(tt.orig)
			g.breakIntersections()
			g.fixWindings(tt.fillRule, 1)
			g.removeLinearPoints()
			g.checkValidPolygons()
			test.T(t, len(g.cycles()), tt.cycles)
			testNear(t, graphArea(g), tt.area, 1e-9)
		})
	}
}

func TestBreakIntoSimple(t *testing.T) {
	g := graphFromSVG("M0 0L10 10L10 0L0 10z")
	g.breakIntersections()
	g.breakIntoSimple()
	g.removeLinearPoints()
	test.T(t, len(g.cycles()), 2)
	testNear(t, graphArea(g), 0.0, 1e-9) // one triangle in each direction
}
