package vpath

import (
	"golang.org/x/image/math/f32"
)

// Triangulation is a triangle mesh. Triangles holds three indices into Points per triangle, all triangles are counter clockwise.
type Triangulation struct {
	Points    []Point
	Triangles []uint32
}

// Len returns the number of triangles.
func (t Triangulation) Len() int {
	return len(t.Triangles) / 3
}

// Triangle returns the vertices of the i-th triangle.
func (t Triangulation) Triangle(i int) [3]Point {
	return [3]Point{
		t.Points[t.Triangles[3*i]],
		t.Points[t.Triangles[3*i+1]],
		t.Points[t.Triangles[3*i+2]],
	}
}

// Area returns the total area of all triangles.
func (t Triangulation) Area() float64 {
	area := 0.0
	for i := 0; i < t.Len(); i++ {
		tri := t.Triangle(i)
		area += triangleArea(tri[0], tri[1], tri[2])
	}
	return area
}

// Bounds returns the bounding box of all vertices.
func (t Triangulation) Bounds() Rect {
	if len(t.Points) == 0 {
		return Rect{}
	}
	r := emptyRect()
	for _, p := range t.Points {
		r = r.AddPoint(p)
	}
	return r
}

// Vertices returns the vertices in single precision, ready to be uploaded as a vertex buffer.
func (t Triangulation) Vertices() []f32.Vec2 {
	vs := make([]f32.Vec2, len(t.Points))
	for i, p := range t.Points {
		vs[i] = p.vec2()
	}
	return vs
}

// AntiAliasTriangulation is a triangle mesh with a coverage value per vertex. Vertices on the boundary of the shape have alpha 1, vertices on the outer edge of the anti-aliasing fringe have alpha 0.
type AntiAliasTriangulation struct {
	Triangulation
	Alphas []float64
}

// meshBuilder collects triangles and deduplicates vertices by position and alpha.
type meshBuilder struct {
	t      Triangulation
	alphas []float64
	index  map[meshVertex]uint32
}

type meshVertex struct {
	p     Point
	alpha float64
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{
		t:     Triangulation{Points: []Point{}, Triangles: []uint32{}},
		index: map[meshVertex]uint32{},
	}
}

func (b *meshBuilder) vertex(p Point, alpha float64) uint32 {
	key := meshVertex{p, alpha}
	if i, ok := b.index[key]; ok {
		return i
	}
	i := uint32(len(b.t.Points))
	b.t.Points = append(b.t.Points, p)
	b.alphas = append(b.alphas, alpha)
	b.index[key] = i
	return i
}

func (b *meshBuilder) triangle(a, c, d uint32) {
	b.t.Triangles = append(b.t.Triangles, a, c, d)
}

func (b *meshBuilder) addTriangles(tris [][3]Point, alpha float64) {
	for _, tri := range tris {
		b.triangle(b.vertex(tri[0], alpha), b.vertex(tri[1], alpha), b.vertex(tri[2], alpha))
	}
}

////////////////////////////////////////////////////////////////

// triangulationGraph returns the graph of the path with all intersections broken. It is built on first use and cached until the path changes.
func (p *Path) triangulationGraph() *graph {
	if p.graph == nil {
		g := newGraph(p.subpaths)
		g.breakIntersections()
		p.graph = g
	}
	return p.graph
}

// filledGraph returns a copy of the triangulation graph reduced to the simple cycles that bound the filled area, with their interior on the left.
func (p *Path) filledGraph() *graph {
	g := p.normalizedGraph()
	g.removeLinearPoints()
	return g
}

// fromGraph returns the cycles of g as a path with the same settings as p.
func (p *Path) fromGraph(g *graph, fillRule FillRule) *Path {
	q := g.toPath()
	q.fillRule = fillRule
	q.tolerance = p.tolerance
	q.resolution = p.resolution
	return q
}

// Triangulate returns the triangles that cover the filled area of the path according to its fill rule.
func (p *Path) Triangulate() Triangulation {
	g := p.filledGraph()
	g.breakSimpleIntoMonotonicPolygons()

	b := newMeshBuilder()
	b.addTriangles(g.cutEars(), 1.0)
	return b.t
}

// BreakIntoSimplePolygons returns the path split at all its self-intersections into cycles that do not cross themselves or each other. Directions are kept, so the fill rule gives the same filled area.
func (p *Path) BreakIntoSimplePolygons() *Path {
	g := p.triangulationGraph().clone()
	g.breakIntoSimple()
	return p.fromGraph(g, p.fillRule)
}

// OffsetAntiAlias returns the triangulation of the filled area together with a fringe of width 1/scale around its boundary. The fringe fades from alpha 1 at the boundary to alpha 0 at its outer edge, where scale is typically the number of pixels per unit.
func (p *Path) OffsetAntiAlias(scale float64) AntiAliasTriangulation {
	g := p.filledGraph()
	cycles := g.clone()
	g.breakSimpleIntoMonotonicPolygons()

	b := newMeshBuilder()
	b.addTriangles(g.cutEars(), 1.0)
	if 0.0 < scale {
		width := 1.0 / scale
		for _, start := range cycles.cycles() {
			ids := cycles.cycle(start)
			n := len(ids)
			if n < 3 {
				continue
			}
			pts := make([]Point, n)
			for i, v := range ids {
				pts[i] = cycles.points[v]
			}
			for i := range pts {
				j := (i + 1) % n
				a, c := pts[i], pts[j]
				a2 := a.Add(fringeNormal(pts[(i+n-1)%n], a, c).Mul(width))
				c2 := c.Add(fringeNormal(a, c, pts[(j+1)%n]).Mul(width))
				ia, ic := b.vertex(a, 1.0), b.vertex(c, 1.0)
				ia2, ic2 := b.vertex(a2, 0.0), b.vertex(c2, 0.0)
				b.triangle(ia, ia2, ic2)
				b.triangle(ia, ic2, ic)
			}
		}
	}
	return AntiAliasTriangulation{
		Triangulation: b.t,
		Alphas:        b.alphas,
	}
}

// fringeNormal returns the outward miter direction at cur for a cycle with its interior on the left, scaled so that both adjacent edges move by one unit. The miter length is limited to DefaultMiterLimit.
func fringeNormal(prev, cur, next Point) Point {
	n0 := cur.Sub(prev).Rot90CW().Norm(1.0)
	n1 := next.Sub(cur).Rot90CW().Norm(1.0)
	m := n0.Add(n1)
	if m.SquaredLength() < Epsilon {
		return n0
	}
	m = m.Norm(1.0)
	cos := m.Dot(n0)
	if cos*DefaultMiterLimit < 1.0 {
		return m.Mul(DefaultMiterLimit)
	}
	return m.Mul(1.0 / cos)
}
