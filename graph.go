package vpath

import (
	"fmt"
	"sort"
)

// graph is the triangulation graph: a planar graph of vertices addressed by integer id, where every contour is a cycle expressed by the prev and next arrays. A vertex that is not part of any cycle points to itself. Synthesized vertices keep the id of the vertex they were copied from in origin.
type graph struct {
	points []Point
	values []float64
	prev   []int
	next   []int
	origin []int
}

// newGraph builds one cycle per subpath. Open subpaths are closed implicitly and subpaths enclosing no area are dropped.
func newGraph(subpaths []SubPath) *graph {
	g := &graph{}
	for _, sp := range subpaths {
		g.addCycle(sp)
	}
	return g
}

func (g *graph) addCycle(sp SubPath) {
	sp = sp.dedup(0.0)
	if n := len(sp.Points); 1 < n && sp.Points[0] == sp.Points[n-1] {
		sp.Points = sp.Points[:n-1]
	}
	if len(sp.Points) < 3 {
		return
	}

	first := len(g.points)
	for i, p := range sp.Points {
		value := 0.0
		if i < len(sp.Values) {
			value = sp.Values[i]
		}
		g.addVertex(p, value)
	}
	last := len(g.points) - 1
	for v := first; v <= last; v++ {
		g.next[v] = v + 1
		g.prev[v] = v - 1
	}
	g.next[last] = first
	g.prev[first] = last
}

func (g *graph) clone() *graph {
	return &graph{
		points: append([]Point(nil), g.points...),
		values: append([]float64(nil), g.values...),
		prev:   append([]int(nil), g.prev...),
		next:   append([]int(nil), g.next...),
		origin: append([]int(nil), g.origin...),
	}
}

// addVertex adds an unconnected vertex and returns its id.
func (g *graph) addVertex(p Point, value float64) int {
	v := len(g.points)
	g.points = append(g.points, p)
	g.values = append(g.values, value)
	g.prev = append(g.prev, v)
	g.next = append(g.next, v)
	g.origin = append(g.origin, v)
	return v
}

// copyVertex adds an unconnected vertex at the same position as v, aliasing it.
func (g *graph) copyVertex(v int) int {
	w := g.addVertex(g.points[v], g.values[v])
	g.origin[w] = g.origin[v]
	return w
}

func (g *graph) live(v int) bool {
	return g.next[v] != v
}

func (g *graph) connect(from, to int) {
	g.next[from] = to
	g.prev[to] = from
}

// insertPointBetween inserts a new vertex at p on the edge from start to end and returns its id.
func (g *graph) insertPointBetween(start, end int, p Point) int {
	if g.next[start] != end {
		panic(fmt.Sprintf("bug: insertPointBetween: %d and %d are not connected", start, end))
	}
	value := g.values[start]
	if d := g.points[end].Sub(g.points[start]); !d.IsZero() {
		t := p.Sub(g.points[start]).Dot(d) / d.Dot(d)
		value += t * (g.values[end] - g.values[start])
	}
	v := g.addVertex(p, value)
	g.connect(start, v)
	g.connect(v, end)
	return v
}

// removeFromCycle splices v out of its cycle and turns it into a self-loop.
func (g *graph) removeFromCycle(v int) {
	if !g.live(v) {
		return
	}
	p, n := g.prev[v], g.next[v]
	if p == n {
		// two-vertex cycle collapses entirely
		g.prev[p], g.next[p] = p, p
	} else {
		g.connect(p, n)
	}
	g.prev[v], g.next[v] = v, v
}

// reverse reverses the direction of all cycles.
func (g *graph) reverse() {
	for v := range g.points {
		g.next[v], g.prev[v] = g.prev[v], g.next[v]
	}
}

// merge appends the cycles of h to g, offsetting its vertex ids.
func (g *graph) merge(h *graph) {
	offset := len(g.points)
	g.points = append(g.points, h.points...)
	g.values = append(g.values, h.values...)
	for v := range h.points {
		g.prev = append(g.prev, h.prev[v]+offset)
		g.next = append(g.next, h.next[v]+offset)
		g.origin = append(g.origin, h.origin[v]+offset)
	}
}

// cycles returns one vertex id per live cycle, in order of the lowest id in each cycle.
func (g *graph) cycles() []int {
	visited := make([]bool, len(g.points))
	starts := []int{}
	for v := range g.points {
		if visited[v] || !g.live(v) {
			continue
		}
		starts = append(starts, v)
		for w := v; !visited[w]; w = g.next[w] {
			visited[w] = true
		}
	}
	return starts
}

// cycle returns the vertex ids of the cycle containing v.
func (g *graph) cycle(v int) []int {
	ids := []int{v}
	for w := g.next[v]; w != v; w = g.next[w] {
		ids = append(ids, w)
		if len(ids) > len(g.points) {
			panic("bug: cycle: broken next links")
		}
	}
	return ids
}

// checkValidPolygons panics when the prev and next arrays are inconsistent.
func (g *graph) checkValidPolygons() {
	for v := range g.points {
		if g.prev[g.next[v]] != v || g.next[g.prev[v]] != v {
			panic(fmt.Sprintf("bug: vertex %d has inconsistent prev/next links", v))
		}
	}
}

// removeLinearPoints removes vertices that do not change the shape of their cycle: duplicates, vertices on a straight line between their neighbours and zero-width spikes. Cycles that are left with fewer than three vertices are removed.
func (g *graph) removeLinearPoints() {
	for _, start := range g.cycles() {
		ids := g.cycle(start)
		queue := ids
		for 0 < len(queue) {
			v := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			if !g.live(v) {
				continue
			}
			p, n := g.prev[v], g.next[v]
			if p == n {
				g.removeFromCycle(v)
				continue
			}
			a, b, c := g.points[p], g.points[v], g.points[n]
			if a == b || b == c || orientation(a, b, c) == 0.0 {
				g.removeFromCycle(v)
				queue = append(queue, p, n)
			}
		}
	}
}

// simplify removes redundant vertices and checks the graph's integrity.
func (g *graph) simplify() {
	g.removeLinearPoints()
	g.checkValidPolygons()
}

// toPath converts all live cycles to closed subpaths.
func (g *graph) toPath() *Path {
	g.simplify()
	p := &Path{}
	for _, start := range g.cycles() {
		ids := g.cycle(start)
		sp := SubPath{
			Points: make([]Point, len(ids)),
			Values: make([]float64, len(ids)),
			Closed: true,
		}
		for i, v := range ids {
			sp.Points[i] = g.points[v]
			sp.Values[i] = g.values[v]
		}
		p.subpaths = append(p.subpaths, sp)
	}
	return p
}

////////////////////////////////////////////////////////////////

// pointType classifies a vertex by its neighbours in sweep order.
type pointType int

const (
	noneType     pointType = iota
	beginType              // both neighbours come later in the sweep
	continueType           // one neighbour before and one after
	endType                // both neighbours come earlier
)

func (t pointType) String() string {
	switch t {
	case beginType:
		return "Begin"
	case continueType:
		return "Continue"
	case endType:
		return "End"
	}
	return "None"
}

func (g *graph) pointType(v int) pointType {
	if !g.live(v) {
		return noneType
	}
	p, q, n := g.points[g.prev[v]], g.points[v], g.points[g.next[v]]
	prevLess, nextLess := lexLess(p, q), lexLess(n, q)
	if p == q || n == q {
		return noneType
	} else if !prevLess && !nextLess {
		return beginType
	} else if prevLess && nextLess {
		return endType
	}
	return continueType
}

// sweepRank orders coincident vertices: closing vertices first so that touching contours are not treated as overlapping, opening vertices last.
func (t pointType) sweepRank() int {
	switch t {
	case endType:
		return 0
	case continueType:
		return 1
	case beginType:
		return 2
	}
	return 3
}

// sortedIndices returns the live vertex ids in sweep order: by x, then y, then point type, then id.
func (g *graph) sortedIndices() []int {
	ids := []int{}
	ranks := make([]int, len(g.points))
	for v := range g.points {
		if g.live(v) {
			ids = append(ids, v)
			ranks[v] = g.pointType(v).sweepRank()
		}
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		if pa, pb := g.points[a], g.points[b]; pa != pb {
			return lexLess(pa, pb)
		} else if ranks[a] != ranks[b] {
			return ranks[a] < ranks[b]
		}
		return a < b
	})
	return ids
}

func (g *graph) String() string {
	s := ""
	for _, start := range g.cycles() {
		for i, v := range g.cycle(start) {
			if i == 0 {
				s += "M"
			} else {
				s += "L"
			}
			s += fmt.Sprintf("%v %v", num(g.points[v].X), num(g.points[v].Y))
		}
		s += "z"
	}
	return s
}
