package vpath

import "sort"

// halfEdge is a directed edge between two vertices.
type halfEdge struct {
	from, to int
}

// liveEdges returns the start vertices of all edges with a non-zero length.
func (g *graph) liveEdges() []int {
	edges := []int{}
	for v := range g.points {
		if g.live(v) && g.points[v] != g.points[g.next[v]] {
			edges = append(edges, v)
		}
	}
	return edges
}

// fixWindings keeps only the edges that separate the inside from the outside according to the fill rule, with threshold the minimum winding number for the Positive rule. Kept edges are oriented with the inside on their left, and the cycles are rebuilt from them so that no cycle crosses itself or another.
func (g *graph) fixWindings(fillRule FillRule, threshold int) {
	wls, wrs := g.windings()
	kept := []halfEdge{}
	for _, e := range g.liveEdges() {
		left, right := fillRule.inside(wls[e], threshold), fillRule.inside(wrs[e], threshold)
		if left == right {
			continue
		} else if left {
			kept = append(kept, halfEdge{e, g.next[e]})
		} else {
			kept = append(kept, halfEdge{g.next[e], e})
		}
	}
	g.rebuild(g.cancelOpposite(kept))
}

// breakIntoSimple rebuilds the cycles from all edges in their original direction, so that no cycle crosses itself or another.
func (g *graph) breakIntoSimple() {
	edges := []halfEdge{}
	for _, e := range g.liveEdges() {
		edges = append(edges, halfEdge{e, g.next[e]})
	}
	g.rebuild(g.cancelOpposite(edges))
}

// cancelOpposite removes pairs of coincident edges with opposite directions.
func (g *graph) cancelOpposite(edges []halfEdge) []halfEdge {
	type segment struct {
		from, to Point
	}
	pending := map[segment][]int{}
	removed := make([]bool, len(edges))
	for i, e := range edges {
		a, b := g.points[e.from], g.points[e.to]
		if js := pending[segment{b, a}]; 0 < len(js) {
			j := js[len(js)-1]
			pending[segment{b, a}] = js[:len(js)-1]
			removed[i], removed[j] = true, true
			continue
		}
		pending[segment{a, b}] = append(pending[segment{a, b}], i)
	}

	kept := edges[:0:0]
	for i, e := range edges {
		if !removed[i] {
			kept = append(kept, e)
		}
	}
	return kept
}

// incident is an edge at a node, with angle the direction from the node to the edge's other end.
type incident struct {
	edge  int
	out   bool
	angle float64
}

// rebuild replaces the graph by cycles traced through the given edges. At every node, each incoming edge is paired with the next outgoing edge in clockwise order, so that cycles touch at nodes but never cross.
func (g *graph) rebuild(edges []halfEdge) {
	h := &graph{}
	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = h.addVertex(g.points[e.from], g.values[e.from])
	}

	nodes := map[Point][]incident{}
	keys := []Point{}
	add := func(p Point, inc incident) {
		if _, ok := nodes[p]; !ok {
			keys = append(keys, p)
		}
		nodes[p] = append(nodes[p], inc)
	}
	for i, e := range edges {
		a, b := g.points[e.from], g.points[e.to]
		add(a, incident{i, true, b.Sub(a).Angle()})
		add(b, incident{i, false, a.Sub(b).Angle()})
	}

	for _, key := range keys {
		for _, pair := range matchIncidents(nodes[key]) {
			h.connect(ids[pair[0]], ids[pair[1]])
		}
	}
	h.pruneBroken()
	*g = *h
}

// matchIncidents pairs incoming with outgoing edges at a node. Edges are sorted clockwise and matched like parentheses, starting after the position where the count of incoming minus outgoing edges is lowest.
func matchIncidents(incs []incident) [][2]int {
	sort.SliceStable(incs, func(i, j int) bool {
		if incs[i].angle != incs[j].angle {
			return incs[i].angle > incs[j].angle
		}
		return incs[i].edge < incs[j].edge
	})

	start, sum, minSum := 0, 0, 0
	for i, inc := range incs {
		if sum < minSum {
			start, minSum = i, sum
		}
		if inc.out {
			sum--
		} else {
			sum++
		}
	}

	pairs := [][2]int{}
	stack := []int{}
	for k := 0; k < len(incs); k++ {
		inc := incs[(start+k)%len(incs)]
		if !inc.out {
			stack = append(stack, inc.edge)
		} else if 0 < len(stack) {
			pairs = append(pairs, [2]int{stack[len(stack)-1], inc.edge})
			stack = stack[:len(stack)-1]
		}
	}
	return pairs
}

// pruneBroken removes vertices that are not part of a complete cycle.
func (g *graph) pruneBroken() {
	n := len(g.points)
	dead := make([]bool, n)
	queue := []int{}
	for v := 0; v < n; v++ {
		if g.next[v] == v || g.prev[v] == v || g.prev[g.next[v]] != v || g.next[g.prev[v]] != v {
			dead[v] = true
			queue = append(queue, v)
		}
	}
	if len(queue) == 0 {
		return
	}
	Logger().Debug("vpath: unbalanced node while rebuilding cycles", "vertices", len(queue))

	for 0 < len(queue) {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, w := range [2]int{g.next[v], g.prev[v]} {
			if !dead[w] {
				dead[w] = true
				queue = append(queue, w)
			}
		}
	}
	for v := 0; v < n; v++ {
		if dead[v] {
			g.prev[v], g.next[v] = v, v
		}
	}
}
