package vpath

// earMode is the strictness with which ears are searched for. When no ear can be found, the next mode is tried.
type earMode int

const (
	earClosed    earMode = iota // no other vertex in or on the triangle
	earOpen                     // no other vertex strictly inside the triangle
	earCollinear                // remove a vertex between collinear neighbours
	earForced                   // clip any vertex
)

// earClipper cuts ears off a single cycle.
type earClipper struct {
	pts        []Point
	prev, next []int
	remaining  int
}

func newEarClipper(pts []Point) *earClipper {
	n := len(pts)
	c := &earClipper{
		pts:       pts,
		prev:      make([]int, n),
		next:      make([]int, n),
		remaining: n,
	}
	for i := range pts {
		c.prev[i] = (i + n - 1) % n
		c.next[i] = (i + 1) % n
	}
	return c
}

func (c *earClipper) remove(i int) {
	p, n := c.prev[i], c.next[i]
	c.next[p] = n
	c.prev[n] = p
	c.remaining--
}

// isEar returns true if vertex i can be removed in the given mode.
func (c *earClipper) isEar(i int, mode earMode) bool {
	a, b, d := c.pts[c.prev[i]], c.pts[i], c.pts[c.next[i]]
	o := orientation(a, b, d)
	switch mode {
	case earCollinear:
		return o == 0.0
	case earForced:
		return true
	}
	if o <= 0.0 {
		return false
	}

	for j := c.next[c.next[i]]; j != c.prev[i]; j = c.next[j] {
		q := c.pts[j]
		if q == a || q == b || q == d {
			continue
		} else if mode == earClosed && inTriangle(q, a, b, d) {
			return false
		} else if mode == earOpen && inTriangleStrict(q, a, b, d) {
			return false
		}
	}
	return true
}

// triangulate returns the triangles covering the cycle as CCW index triples into the cycle's points. Triangles without area are omitted.
func (c *earClipper) triangulate() [][3]int {
	tris := [][3]int{}
	emit := func(i int) {
		a, b, d := c.prev[i], i, c.next[i]
		if 0.0 < orientation(c.pts[a], c.pts[b], c.pts[d]) {
			tris = append(tris, [3]int{a, b, d})
		}
	}

	i := 0
	for 3 < c.remaining {
		cut := false
		for mode := earClosed; mode <= earForced && !cut; mode++ {
			j := i
			for k := 0; k < c.remaining; k++ {
				if c.isEar(j, mode) {
					if mode == earForced {
						Logger().Debug("vpath: no ear found, clipping vertex", "vertex", c.pts[j].String())
					}
					if mode != earCollinear {
						emit(j)
					}
					i = c.next[j]
					c.remove(j)
					cut = true
					break
				}
				j = c.next[j]
			}
		}
	}
	if c.remaining == 3 {
		emit(i)
	}
	return tris
}

// cutEars triangulates all cycles and returns the triangles as CCW point triples.
func (g *graph) cutEars() [][3]Point {
	tris := [][3]Point{}
	for _, start := range g.cycles() {
		ids := g.cycle(start)
		if len(ids) < 3 {
			continue
		}
		pts := make([]Point, len(ids))
		for i, v := range ids {
			pts[i] = g.points[v]
		}
		for _, t := range newEarClipper(pts).triangulate() {
			tris = append(tris, [3]Point{pts[t[0]], pts[t[1]], pts[t[2]]})
		}
	}
	return tris
}
