package vpath

// SubPath is a flattened subpath: an ordered list of points with a per-point value. A closed subpath connects its last point back to the first, the closing point is not repeated.
type SubPath struct {
	Points []Point
	Values []float64
	Closed bool
}

// Len returns the number of points.
func (sp SubPath) Len() int {
	return len(sp.Points)
}

// Empty returns true if the subpath has no points.
func (sp SubPath) Empty() bool {
	return len(sp.Points) == 0
}

// numSegments returns the number of line segments, including the closing segment.
func (sp SubPath) numSegments() int {
	n := len(sp.Points)
	if n < 2 {
		return 0
	} else if sp.Closed {
		return n
	}
	return n - 1
}

// segment returns the i-th line segment.
func (sp SubPath) segment(i int) (Point, Point) {
	return sp.Points[i], sp.Points[(i+1)%len(sp.Points)]
}

// FillCount returns the number of times the test point is enclosed by the subpath, which is always treated as closed. Counter clockwise enclosures are counted positively and clockwise enclosures negatively.
func (sp SubPath) FillCount(x, y float64) int {
	if len(sp.Points) < 3 {
		return 0
	}
	test := Point{x, y}
	count := 0
	prevCoord := sp.Points[len(sp.Points)-1]
	for _, coord := range sp.Points {
		// see https://wrf.ecse.rpi.edu//Research/Short_Notes/pnpoly.html
		if (test.Y < coord.Y) != (test.Y < prevCoord.Y) &&
			test.X < (prevCoord.X-coord.X)*(test.Y-coord.Y)/(prevCoord.Y-coord.Y)+coord.X {
			if prevCoord.Y < coord.Y {
				count++
			} else {
				count--
			}
		}
		prevCoord = coord
	}
	return count
}

// Interior is true when the point (x,y) is in the interior of the subpath, i.e. gets filled. This depends on the FillRule.
func (sp SubPath) Interior(x, y float64, fillRule FillRule) bool {
	return fillRule.Fills(sp.FillCount(x, y))
}

// Area returns the signed area, positive for counter clockwise subpaths.
func (sp SubPath) Area() float64 {
	n := len(sp.Points)
	a := 0.0
	for i := 0; i < n; i++ {
		a += sp.Points[i].PerpDot(sp.Points[(i+1)%n])
	}
	return a / 2.0
}

// Centroid returns the center point of the polygon.
func (sp SubPath) Centroid() Point {
	n := len(sp.Points)
	if n == 0 {
		return Point{}
	} else if n == 1 {
		return sp.Points[0]
	}

	area := sp.Area()
	if area == 0.0 {
		c := Point{}
		for _, p := range sp.Points {
			c = c.Add(p)
		}
		return c.Div(float64(n))
	}

	c := Point{}
	for i := 0; i < n; i++ {
		f := sp.Points[i].PerpDot(sp.Points[(i+1)%n])
		c = c.Add(sp.Points[i].Add(sp.Points[(i+1)%n]).Mul(f))
	}
	return c.Div(6.0 * area)
}

// Length returns the length of all segments, including the closing segment of a closed subpath.
func (sp SubPath) Length() float64 {
	length := 0.0
	for i := 0; i < sp.numSegments(); i++ {
		a, b := sp.segment(i)
		length += b.Sub(a).Length()
	}
	return length
}

// Bounds returns the bounding box.
func (sp SubPath) Bounds() Rect {
	r := emptyRect()
	for _, p := range sp.Points {
		r = r.AddPoint(p)
	}
	return r
}

func (sp SubPath) copy() SubPath {
	return SubPath{
		Points: append([]Point(nil), sp.Points...),
		Values: append([]float64(nil), sp.Values...),
		Closed: sp.Closed,
	}
}

func (sp SubPath) reverse() SubPath {
	n := len(sp.Points)
	r := SubPath{
		Points: make([]Point, n),
		Values: make([]float64, len(sp.Values)),
		Closed: sp.Closed,
	}
	for i := 0; i < n; i++ {
		r.Points[i] = sp.Points[n-1-i]
	}
	for i := 0; i < len(sp.Values); i++ {
		r.Values[i] = sp.Values[len(sp.Values)-1-i]
	}
	return r
}

// dedup removes consecutive points closer than eps, and a closing point that repeats the first point of a closed subpath.
func (sp SubPath) dedup(eps float64) SubPath {
	r := SubPath{Closed: sp.Closed}
	for i, p := range sp.Points {
		if 0 < len(r.Points) && p.Sub(r.Points[len(r.Points)-1]).Length() <= eps {
			continue
		}
		r.Points = append(r.Points, p)
		if i < len(sp.Values) {
			r.Values = append(r.Values, sp.Values[i])
		}
	}
	if sp.Closed && 1 < len(r.Points) && r.Points[0].Sub(r.Points[len(r.Points)-1]).Length() <= eps {
		r.Points = r.Points[:len(r.Points)-1]
		if len(r.Points) < len(r.Values) {
			r.Values = r.Values[:len(r.Points)]
		}
	}
	return r
}
