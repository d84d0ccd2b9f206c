package vpath

import (
	"container/heap"
	"math"
	"sort"
)

// maxIntersectionPasses bounds the number of sweeps of breakIntersections. A sweep splits edges as soon as a crossing is found, later passes only resolve crossings introduced by rounding the split points.
const maxIntersectionPasses = 8

// sweepEdge is an edge in sweep order, identified by its start vertex.
type sweepEdge struct {
	v              int
	x0, x1, y0, y1 float64
}

// breakIntersections splits edges wherever they cross, touch or overlap other edges, so that afterwards edges only meet at shared vertex positions. Crossings closer together than the snap distance share one bit-identical vertex position.
func (g *graph) breakIntersections() {
	sn := g.newSnapper(g.snapDistance())
	for pass := 0; pass < maxIntersectionPasses; pass++ {
		if g.intersectionSweep(sn) == 0 {
			return
		}
	}

	// every pass widens the snap distance, so that remaining crossings eventually snap onto existing vertices
	Logger().Debug("vpath: intersection sweeps exhausted", "vertices", len(g.points))
	dist := sn.dist
	for pass := 0; pass < maxIntersectionPasses; pass++ {
		dist *= 10.0
		if g.breakIntersectionsExhaustive(g.newSnapper(dist)) == 0 {
			return
		}
	}
	Logger().Warn("vpath: edges still cross after resolving intersections", "vertices", len(g.points))
}

// snapDistance returns the distance under which intersection points are snapped onto nearby vertices.
func (g *graph) snapDistance() float64 {
	scale := 1.0
	for _, p := range g.points {
		scale = math.Max(scale, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return 1e-9 * scale
}

// snapper merges points closer than dist into the first one seen, using a grid with cells of size dist.
type snapper struct {
	dist  float64
	cells map[[2]int64][]Point
}

func (g *graph) newSnapper(dist float64) *snapper {
	sn := &snapper{
		dist:  dist,
		cells: map[[2]int64][]Point{},
	}
	for v, p := range g.points {
		if g.live(v) {
			sn.add(p)
		}
	}
	return sn
}

func (sn *snapper) cell(p Point) [2]int64 {
	return [2]int64{int64(math.Floor(p.X / sn.dist)), int64(math.Floor(p.Y / sn.dist))}
}

func (sn *snapper) add(p Point) {
	c := sn.cell(p)
	for _, q := range sn.cells[c] {
		if q == p {
			return
		}
	}
	sn.cells[c] = append(sn.cells[c], p)
}

// snap returns the first of candidates within the snap distance of p, or else the nearest known point within the snap distance. Otherwise p is registered and returned.
func (sn *snapper) snap(p Point, candidates ...Point) Point {
	for _, q := range candidates {
		if p.Sub(q).Length() <= sn.dist {
			return q
		}
	}

	c := sn.cell(p)
	nearest, dmin := p, sn.dist
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, q := range sn.cells[[2]int64{c[0] + dx, c[1] + dy}] {
				if d := p.Sub(q).Length(); d <= dmin {
					nearest, dmin = q, d
				}
			}
		}
	}
	if nearest == p {
		sn.add(p)
	}
	return nearest
}

// intersectionSweep runs one sweep over all edges, keeping the edges that cross the sweep line ordered in a sweep status. Neighbouring edges are intersected when they become adjacent and are split immediately, the pieces to the right of the sweep line are queued as new events. It returns the number of vertices inserted.
func (g *graph) intersectionSweep(sn *snapper) int {
	q := g.sweepEvents()
	status := newSweepStatus(g)

	n := q.Len() / 2
	limit := 2*n*n + 16
	inserted := 0
	check := func(e, f int) {
		inserted += g.intersectActive(q, status, e, f, sn)
	}
	for 0 < q.Len() {
		if limit < inserted {
			// only reached when rounding keeps producing new crossings, the next pass continues from here
			Logger().Debug("vpath: intersection sweep aborted", "inserted", inserted)
			return inserted
		}

		ev := heap.Pop(q).(sweepEvent)
		e := ev.edge
		l, r := g.endpoints(e)
		if ev.left {
			if !g.live(e) || l != ev.p || status.has(e) {
				continue // stale event of an edge that was split
			}
			node := status.insert(e)
			if prev := node.prev(); prev != nil {
				check(prev.edge, node.edge)
			}
			if next := node.next(); next != nil {
				check(node.edge, next.edge)
			}
		} else {
			if r != ev.p || !status.has(e) {
				continue
			}
			node := status.node(e)
			prev, next := node.prev(), node.next()
			if prev == nil || next == nil {
				status.remove(e)
				continue
			}
			pe, ne := prev.edge, next.edge
			status.remove(e)
			check(pe, ne)
		}
	}
	return inserted
}

// intersectActive intersects two edges in the sweep status and splits both at the points found. It returns the number of vertices inserted.
func (g *graph) intersectActive(q *sweepEvents, status *sweepStatus, e, f int, sn *snapper) int {
	ze, zf := g.intersectEdges(e, f, sn)
	n := 0
	if 0 < len(ze) {
		n += g.splitActive(q, status, e, ze)
	}
	if 0 < len(zf) {
		n += g.splitActive(q, status, f, zf)
	}
	return n
}

// splitActive splits edge e of the sweep status at the given points. The piece at the left endpoint of e takes its place in the status, the other pieces are queued.
func (g *graph) splitActive(q *sweepEvents, status *sweepStatus, e int, zs []Point) int {
	l0, _ := g.endpoints(e)
	w := g.next[e]
	n := g.splitEdge(e, zs)
	if n == 0 {
		return 0
	}
	for a := e; a != w; a = g.next[a] {
		l, r := g.endpoints(a)
		if l == l0 {
			status.rekey(e, a)
		} else {
			heap.Push(q, sweepEvent{l, r, a, true})
		}
		heap.Push(q, sweepEvent{r, l, a, false})
	}
	return n
}

// splitEdge inserts the points in order along edge e, skipping points that coincide with its endpoints. It returns the number of inserted vertices.
func (g *graph) splitEdge(e int, zs []Point) int {
	w := g.next[e]
	a0, a1 := g.points[e], g.points[w]
	d := a1.Sub(a0)
	sort.SliceStable(zs, func(i, j int) bool {
		return zs[i].Sub(a0).Dot(d) < zs[j].Sub(a0).Dot(d)
	})

	n := 0
	cur := e
	for _, z := range zs {
		if z == g.points[cur] || z == a1 {
			continue
		}
		cur = g.insertPointBetween(cur, w, z)
		n++
	}
	return n
}

// intersectEdges returns the points where edges e and f must be split: at their crossing, at the endpoints of one lying on the other, and at the ends of a collinear overlap.
func (g *graph) intersectEdges(e, f int, sn *snapper) ([]Point, []Point) {
	a0, a1 := g.points[e], g.points[g.next[e]]
	b0, b1 := g.points[f], g.points[g.next[f]]

	var ze, zf []Point
	o1 := orientation(a0, a1, b0)
	o2 := orientation(a0, a1, b1)
	o3 := orientation(b0, b1, a0)
	o4 := orientation(b0, b1, a1)
	if o1*o2 < 0.0 && o3*o4 < 0.0 {
		// proper crossing
		z, ok := findIntersection(a0, a1, b0, b1)
		if !ok {
			return nil, nil
		}
		z = sn.snap(z, a0, a1, b0, b1)
		if z != a0 && z != a1 {
			ze = append(ze, z)
		}
		if z != b0 && z != b1 {
			zf = append(zf, z)
		}
		return ze, zf
	}

	// endpoints touching the interior of the other edge, this includes collinear overlaps
	if onSegment(b0, a0, a1, o1, sn.dist) {
		ze = append(ze, b0)
	}
	if onSegment(b1, a0, a1, o2, sn.dist) {
		ze = append(ze, b1)
	}
	if onSegment(a0, b0, b1, o3, sn.dist) {
		zf = append(zf, a0)
	}
	if onSegment(a1, b0, b1, o4, sn.dist) {
		zf = append(zf, a1)
	}
	return ze, zf
}

// onSegment returns true if p lies in the interior of segment ab, with o the orientation of p with respect to ab.
func onSegment(p, a, b Point, o, snap float64) bool {
	if p == a || p == b {
		return false
	}
	d := b.Sub(a)
	t := p.Sub(a).Dot(d) / d.Dot(d)
	if t <= 0.0 || 1.0 <= t {
		return false
	} else if o != 0.0 && snap < deltaFromLine(p, a, b).Length() {
		return false
	}
	return snap < p.Sub(a).Length() && snap < p.Sub(b).Length()
}

// breakIntersectionsExhaustive intersects every pair of edges with overlapping bounding boxes and applies all splits at once. It returns the number of vertices inserted.
func (g *graph) breakIntersectionsExhaustive(sn *snapper) int {
	edges := []sweepEdge{}
	for _, v := range g.liveEdges() {
		a, b := g.points[v], g.points[g.next[v]]
		edges = append(edges, sweepEdge{
			v:  v,
			x0: math.Min(a.X, b.X),
			x1: math.Max(a.X, b.X),
			y0: math.Min(a.Y, b.Y),
			y1: math.Max(a.Y, b.Y),
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].x0 != edges[j].x0 {
			return edges[i].x0 < edges[j].x0
		}
		return edges[i].v < edges[j].v
	})

	splits := map[int][]Point{}
	active := []sweepEdge{}
	for _, e := range edges {
		// drop edges that ended before the sweep position
		n := 0
		for _, f := range active {
			if e.x0 <= f.x1 {
				active[n] = f
				n++
			}
		}
		active = active[:n]

		for _, f := range active {
			if e.y1 < f.y0 || f.y1 < e.y0 {
				continue
			}
			ze, zf := g.intersectEdges(e.v, f.v, sn)
			splits[e.v] = append(splits[e.v], ze...)
			splits[f.v] = append(splits[f.v], zf...)
		}
		active = append(active, e)
	}

	es := make([]int, 0, len(splits))
	for e := range splits {
		es = append(es, e)
	}
	sort.Ints(es)

	inserted := 0
	for _, e := range es {
		inserted += g.splitEdge(e, splits[e])
	}
	return inserted
}
