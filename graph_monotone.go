package vpath

import (
	"math"
)

// vertexClass is the role of a vertex in the monotone decomposition sweep.
type vertexClass int

const (
	regularVertex vertexClass = iota
	startVertex               // both neighbours later, convex
	splitVertex               // both neighbours later, reflex
	endVertex                 // both neighbours earlier, convex
	mergeVertex               // both neighbours earlier, reflex
)

func (c vertexClass) String() string {
	switch c {
	case startVertex:
		return "Start"
	case splitVertex:
		return "Split"
	case endVertex:
		return "End"
	case mergeVertex:
		return "Merge"
	}
	return "Regular"
}

// classify returns the class of vertex v for a cycle with its interior on the left.
func (g *graph) classify(v int) vertexClass {
	p, q, n := g.points[g.prev[v]], g.points[v], g.points[g.next[v]]
	convex := 0.0 < orientation(p, q, n)
	switch g.pointType(v) {
	case beginType:
		if convex {
			return startVertex
		}
		return splitVertex
	case endType:
		if convex {
			return endVertex
		}
		return mergeVertex
	}
	return regularVertex
}

// interiorDirection returns a unit direction from v into the interior of its cycle.
func (g *graph) interiorDirection(v int) Point {
	q := g.points[v]
	u := g.points[g.next[v]].Sub(q).Norm(1.0)
	w := g.points[g.prev[v]].Sub(q).Norm(1.0)
	d := u.Add(w)
	if d.SquaredLength() < Epsilon {
		return u.Rot90CCW()
	} else if u.PerpDot(w) < 0.0 {
		d = d.Neg() // reflex
	}
	return d.Norm(1.0)
}

// monotoneStatus holds the edges crossing the sweep line that have the interior above them, keyed by their start vertex, together with their helper vertex.
type monotoneStatus struct {
	g      *graph
	edges  []int
	helper map[int]int
}

func (s *monotoneStatus) insert(e, helper int) {
	s.edges = append(s.edges, e)
	s.helper[e] = helper
}

func (s *monotoneStatus) remove(e int) {
	for i, f := range s.edges {
		if f == e {
			s.edges = append(s.edges[:i], s.edges[i+1:]...)
			break
		}
	}
	delete(s.helper, e)
}

// yAt returns the height of edge e at x.
func (s *monotoneStatus) yAt(e int, x, y float64) float64 {
	a, b := s.g.points[e], s.g.points[s.g.next[e]]
	if a.X == b.X {
		return math.Min(b.Y, y)
	}
	t := (x - a.X) / (b.X - a.X)
	t = math.Max(0.0, math.Min(1.0, t))
	return a.Y + t*(b.Y-a.Y)
}

// below returns the edge directly below vertex v, or -1 if there is none.
func (s *monotoneStatus) below(v int) int {
	g := s.g
	q := g.points[v]
	var dir Point
	found, best, bestY, bestSlope := false, -1, 0.0, 0.0
	for _, e := range s.edges {
		a, b := g.points[e], g.points[g.next[e]]
		o := orientation(a, b, q)
		if o == 0.0 {
			if dir.IsZero() {
				dir = g.interiorDirection(v)
			}
			o = b.Sub(a).PerpDot(dir)
		}
		if o <= 0.0 {
			continue
		}

		y := s.yAt(e, q.X, q.Y)
		slope := math.Inf(1)
		if a.X != b.X {
			slope = (b.Y - a.Y) / (b.X - a.X)
		}
		if !found || bestY < y || y == bestY && slope < bestSlope {
			found, best, bestY, bestSlope = true, e, y, slope
		}
	}
	return best
}

// breakSimpleIntoMonotonicPolygons splits every cycle into monotone pieces by sweeping from left to right and adding diagonals at split and merge vertices. Cycles must not cross and must have their interior on the left.
func (g *graph) breakSimpleIntoMonotonicPolygons() {
	order := g.sortedIndices()
	classes := make([]vertexClass, len(g.points))
	for _, v := range order {
		classes[v] = g.classify(v)
	}

	diagonals := [][2]int{}
	status := &monotoneStatus{g: g, helper: map[int]int{}}
	fixup := func(v, e int) {
		if h, ok := status.helper[e]; ok && classes[h] == mergeVertex {
			diagonals = append(diagonals, [2]int{v, h})
		}
	}
	fixupBelow := func(v int) int {
		e := status.below(v)
		if e != -1 {
			fixup(v, e)
			status.helper[e] = v
		}
		return e
	}

	for _, v := range order {
		switch classes[v] {
		case startVertex:
			status.insert(v, v)
		case endVertex:
			fixup(v, g.prev[v])
			status.remove(g.prev[v])
		case splitVertex:
			if e := status.below(v); e != -1 {
				diagonals = append(diagonals, [2]int{v, status.helper[e]})
				status.helper[e] = v
			} else {
				Logger().Debug("vpath: no edge below split vertex", "vertex", g.points[v].String())
			}
			status.insert(v, v)
		case mergeVertex:
			fixup(v, g.prev[v])
			status.remove(g.prev[v])
			fixupBelow(v)
		case regularVertex:
			if lexLess(g.points[g.prev[v]], g.points[v]) {
				// lower chain, interior above
				fixup(v, g.prev[v])
				status.remove(g.prev[v])
				status.insert(v, v)
			} else {
				fixupBelow(v)
			}
		}
	}

	for _, d := range diagonals {
		g.addDiagonal(d[0], d[1])
	}
}

// wedgeContains returns true if direction d from vertex v points into the interior angle at v.
func (g *graph) wedgeContains(v int, d Point) bool {
	q := g.points[v]
	u := g.points[g.next[v]].Sub(q)
	w := g.points[g.prev[v]].Sub(q)
	if 0.0 < u.PerpDot(w) {
		return 0.0 < u.PerpDot(d) && 0.0 < d.PerpDot(w)
	}
	return 0.0 < u.PerpDot(d) || 0.0 < d.PerpDot(w)
}

// diagonalVertex returns the vertex among the copies of v whose interior angle contains direction d.
func (g *graph) diagonalVertex(v int, d Point) int {
	if g.wedgeContains(v, d) {
		return v
	}
	for w := range g.points {
		if w != v && g.origin[w] == g.origin[v] && g.live(w) && g.wedgeContains(w, d) {
			return w
		}
	}
	return v
}

// addDiagonal splits the cycle through a and b by connecting them in both directions. Both endpoints are duplicated so that each resulting cycle has its own vertices.
func (g *graph) addDiagonal(a, b int) {
	pa, pb := g.points[a], g.points[b]
	if pa == pb {
		return
	}
	a = g.diagonalVertex(a, pb.Sub(pa))
	b = g.diagonalVertex(b, pa.Sub(pb))

	na, nb := g.next[a], g.next[b]
	a2, b2 := g.copyVertex(a), g.copyVertex(b)
	g.connect(a, b2)
	g.connect(b2, nb)
	g.connect(b, a2)
	g.connect(a2, na)
}
