package vpath

import (
	"math"
)

// Join is the style of the outer corner between two stroked segments.
type Join int

// see Join
const (
	JoinRound Join = iota
	JoinMiter
	JoinBevel
	JoinSquare
)

func (j Join) String() string {
	switch j {
	case JoinRound:
		return "Round"
	case JoinMiter:
		return "Miter"
	case JoinBevel:
		return "Bevel"
	case JoinSquare:
		return "Square"
	}
	return "Join(?)"
}

// Joiner returns the Joiner for the join style, with miterLimit the limit of the miter join.
func (j Join) Joiner(miterLimit float64) Joiner {
	switch j {
	case JoinMiter:
		return MiterJoiner(miterLimit)
	case JoinBevel:
		return BevelJoiner
	case JoinSquare:
		return SquareJoiner
	}
	return RoundJoiner
}

// EndCap is the style of the ends of open stroked subpaths.
type EndCap int

// see EndCap
const (
	CapRound EndCap = iota
	CapSquare
	CapButt
)

func (c EndCap) String() string {
	switch c {
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	case CapButt:
		return "Butt"
	}
	return "EndCap(?)"
}

// Capper returns the Capper for the cap style.
func (c EndCap) Capper() Capper {
	switch c {
	case CapSquare:
		return SquareCapper
	case CapButt:
		return ButtCapper
	}
	return RoundCapper
}

// DefaultMiterLimit is the miter limit used when a non-positive limit is given.
var DefaultMiterLimit = 4.0

////////////////////////////////////////////////////////////////

// Capper implements Cap, with p the path to append to, halfWidth the half width of the stroke, pivot the end point of the subpath and n0 the normal at the end of the subpath. The length of n0 is equal to the halfWidth. The path's current point is pivot+n0 and the cap ends at pivot-n0.
type Capper interface {
	Cap(*Path, float64, Point, Point)
}

// CapperFunc is an adapter to use a function as a Capper.
type CapperFunc func(*Path, float64, Point, Point)

// Cap calls f.
func (f CapperFunc) Cap(p *Path, halfWidth float64, pivot, n0 Point) {
	f(p, halfWidth, pivot, n0)
}

// RoundCapper caps the start or end of a path by a round cap.
var RoundCapper Capper = CapperFunc(roundCapper)

func roundCapper(p *Path, halfWidth float64, pivot, n0 Point) {
	end := pivot.Sub(n0)
	p.ArcTo(halfWidth, halfWidth, 0.0, false, true, end.X, end.Y)
}

// ButtCapper caps the start or end of a path by a butt cap.
var ButtCapper Capper = CapperFunc(buttCapper)

func buttCapper(p *Path, halfWidth float64, pivot, n0 Point) {
	end := pivot.Sub(n0)
	p.LineTo(end.X, end.Y)
}

// SquareCapper caps the start or end of a path by a square cap.
var SquareCapper Capper = CapperFunc(squareCapper)

func squareCapper(p *Path, halfWidth float64, pivot, n0 Point) {
	e := n0.Rot90CCW()
	corner1 := pivot.Add(e).Add(n0)
	corner2 := pivot.Add(e).Sub(n0)
	end := pivot.Sub(n0)
	p.LineTo(corner1.X, corner1.Y)
	p.LineTo(corner2.X, corner2.Y)
	p.LineTo(end.X, end.Y)
}

////////////////

// Joiner implements Join for the outer side of a corner, with p the path to append to, offset the signed distance of the outline from the original path, pivot the corner point, and n0 and n1 the normals before and after the corner. The lengths of n0 and n1 are equal to the absolute offset. The path's current point is pivot+n0 and the join ends at pivot+n1.
type Joiner interface {
	Join(*Path, float64, Point, Point, Point)
}

// JoinerFunc is an adapter to use a function as a Joiner.
type JoinerFunc func(*Path, float64, Point, Point, Point)

// Join calls f.
func (f JoinerFunc) Join(p *Path, offset float64, pivot, n0, n1 Point) {
	f(p, offset, pivot, n0, n1)
}

// BevelJoiner connects two path elements by a linear join.
var BevelJoiner Joiner = JoinerFunc(bevelJoiner)

func bevelJoiner(p *Path, offset float64, pivot, n0, n1 Point) {
	end := pivot.Add(n1)
	p.LineTo(end.X, end.Y)
}

// RoundJoiner connects two path elements by a round join.
var RoundJoiner Joiner = JoinerFunc(roundJoiner)

func roundJoiner(p *Path, offset float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		bevelJoiner(p, offset, pivot, n0, n1)
		return
	}

	end := pivot.Add(n1)
	ccw := 0.0 < n0.PerpDot(n1)
	if n0.Equals(n1.Neg()) {
		// u-turn, go around the front
		ccw = 0.0 < n0.PerpDot(n0.Rot90CCW().Div(offset))
	}
	r := math.Abs(offset)
	p.ArcTo(r, r, 0.0, false, ccw, end.X, end.Y)
}

// SquareJoiner connects two path elements by extending both outlines by the offset and connecting them.
var SquareJoiner Joiner = JoinerFunc(squareJoiner)

func squareJoiner(p *Path, offset float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) {
		bevelJoiner(p, offset, pivot, n0, n1)
		return
	}

	// unit directions of the segments before and after the corner
	d0 := n0.Rot90CCW().Div(offset)
	d1 := n1.Rot90CCW().Div(offset)
	r := math.Abs(offset)
	corner0 := pivot.Add(n0).Add(d0.Mul(r))
	corner1 := pivot.Add(n1).Sub(d1.Mul(r))
	end := pivot.Add(n1)
	p.LineTo(corner0.X, corner0.Y)
	p.LineTo(corner1.X, corner1.Y)
	p.LineTo(end.X, end.Y)
}

// MiterJoiner returns a Joiner that connects two path elements by extending their outlines until they meet. When the ratio of the miter length to the offset exceeds limit, a bevel join is used instead.
func MiterJoiner(limit float64) Joiner {
	if limit <= 0.0 {
		limit = DefaultMiterLimit
	}
	return miterJoiner{limit}
}

type miterJoiner struct {
	limit float64
}

func (j miterJoiner) Join(p *Path, offset float64, pivot, n0, n1 Point) {
	if n0.Equals(n1) || n0.Equals(n1.Neg()) {
		bevelJoiner(p, offset, pivot, n0, n1)
		return
	}

	r := math.Abs(offset)
	cos := n0.Add(n1).Norm(1.0).Dot(n0) / r // cosine of half the angle between the normals
	if cos <= 0.0 || j.limit < 1.0/cos {
		bevelJoiner(p, offset, pivot, n0, n1)
		return
	}
	mid := pivot.Add(n0.Add(n1).Norm(r / cos))
	end := pivot.Add(n1)
	p.LineTo(mid.X, mid.Y)
	p.LineTo(end.X, end.Y)
}

////////////////////////////////////////////////////////////////

// outliner builds offset outlines of polylines. Outlines are offset to the right of the direction of travel for a positive offset.
type outliner struct {
	p      *Path
	offset float64
	joiner Joiner
	capper Capper
}

func (o *outliner) normal(a, b Point) Point {
	return b.Sub(a).Rot90CW().Norm(1.0).Mul(o.offset)
}

// corner adds the outline around pivot from normal n0 to n1, where d1 is the direction of the segment after the corner. The current point is pivot+n0. Outer corners get a join, inner corners pass through the pivot so that the overlap is resolved by the union.
func (o *outliner) corner(pivot, n0, n1, d0, d1 Point) {
	if n0.Equals(n1) {
		end := pivot.Add(n1)
		o.p.LineTo(end.X, end.Y)
		return
	}

	turn := n0.Dot(d1)
	if turn < 0.0 || n0.Equals(n1.Neg()) && d0.Dot(d1) < 0.0 {
		o.joiner.Join(o.p, o.offset, pivot, n0, n1)
		return
	}
	end := pivot.Add(n1)
	o.p.LineTo(pivot.X, pivot.Y)
	o.p.LineTo(end.X, end.Y)
}

// side adds the outline of one side of an open polyline. The current point must be pts[0]+n where n is the normal of the first segment, the outline ends at the last point plus the normal of the last segment.
func (o *outliner) side(pts []Point) {
	for i := 1; i+1 < len(pts); i++ {
		d0 := pts[i].Sub(pts[i-1]).Norm(1.0)
		d1 := pts[i+1].Sub(pts[i]).Norm(1.0)
		n0, n1 := o.normal(pts[i-1], pts[i]), o.normal(pts[i], pts[i+1])
		start := pts[i].Add(n0)
		o.p.LineTo(start.X, start.Y)
		o.corner(pts[i], n0, n1, d0, d1)
	}
	n := len(pts)
	end := pts[n-1].Add(o.normal(pts[n-2], pts[n-1]))
	o.p.LineTo(end.X, end.Y)
}

// loop adds the closed outline of one side of a closed polyline.
func (o *outliner) loop(pts []Point) {
	n := len(pts)
	n0 := o.normal(pts[0], pts[1])
	start := pts[0].Add(n0)
	o.p.MoveTo(start.X, start.Y)
	for i := 1; i <= n; i++ {
		prev, cur, next := pts[i-1], pts[i%n], pts[(i+1)%n]
		d0, d1 := cur.Sub(prev).Norm(1.0), next.Sub(cur).Norm(1.0)
		n0, n1 := o.normal(prev, cur), o.normal(cur, next)
		p := cur.Add(n0)
		o.p.LineTo(p.X, p.Y)
		o.corner(cur, n0, n1, d0, d1)
	}
	o.p.Close()
}

// stroke adds the outline of an open polyline: the right side, the end cap, the left side backwards and the start cap.
func (o *outliner) stroke(pts []Point) {
	n := len(pts)
	h := math.Abs(o.offset)
	n0 := o.normal(pts[0], pts[1])
	n1 := o.normal(pts[n-2], pts[n-1])
	start := pts[0].Add(n0)
	o.p.MoveTo(start.X, start.Y)
	o.side(pts)
	o.capper.Cap(o.p, h, pts[n-1], n1)

	rev := make([]Point, n)
	for i, pt := range pts {
		rev[n-1-i] = pt
	}
	o.side(rev)
	o.capper.Cap(o.p, h, pts[0], n0.Neg())
	o.p.Close()
}

// dot adds the outline of a single point.
func (o *outliner) dot(pt Point, endCap EndCap) {
	h := math.Abs(o.offset)
	switch endCap {
	case CapRound:
		o.p.AddCircle(pt.X, pt.Y, h)
	case CapSquare:
		o.p.AddRectangle(pt.X-h, pt.Y-h, 2.0*h, 2.0*h)
	}
}

// strokePoints returns the subpath's points without duplicates. For closed subpaths, it returns false when there are too few points to enclose an area, in which case the points are returned as an open polyline that returns to its start.
func strokePoints(sp SubPath) ([]Point, bool) {
	pts := sp.dedup(0.0).Points
	if !sp.Closed {
		return pts, false
	} else if len(pts) < 3 {
		if len(pts) == 2 {
			pts = append(pts, pts[0])
		}
		return pts, false
	}
	return pts, true
}

// positiveUnion resolves the overlaps of the outlines in q, keeping every area with a positive winding number.
func (p *Path) positiveUnion(q *Path) *Path {
	g := q.triangulationGraph().clone()
	g.fixWindings(Positive, 1)
	return p.fromGraph(g, NonZero)
}

// Stroke returns the outline of the path stroked with the given width, join, end cap and miter limit. When dashes is a valid dash array, the path is dashed first with the dash offset. The outline is a path without self-overlap.
func (p *Path) Stroke(width float64, join Join, endCap EndCap, dashes []float64, dashOffset, miterLimit float64) *Path {
	q := p.withSettings()
	q.fillRule = NonZero
	if width <= 0.0 || math.IsNaN(width) || p.Empty() {
		return q
	}

	subpaths := p.subpaths
	if d, ok := dashPattern(dashes); ok {
		subpaths = subpaths[:0:0]
		for _, sp := range p.subpaths {
			subpaths = append(subpaths, sp.dash(dashOffset, d)...)
		}
	}

	o := &outliner{
		p:      q,
		offset: width / 2.0,
		joiner: join.Joiner(miterLimit),
		capper: endCap.Capper(),
	}
	for _, sp := range subpaths {
		pts, closed := strokePoints(sp)
		if len(pts) == 0 {
			continue
		} else if len(pts) == 1 {
			o.dot(pts[0], endCap)
		} else if closed {
			o.loop(pts)
			rev := make([]Point, len(pts))
			for i, pt := range pts {
				rev[len(pts)-1-i] = pt
			}
			o.loop(rev)
		} else {
			o.stroke(pts)
		}
	}
	return p.positiveUnion(q)
}

// Offset returns the filled area of the path grown by amount, or shrunk for a negative amount. Corners that move outward are connected with the join, with miterLimit the limit of the miter join.
func (p *Path) Offset(amount float64, join Join, miterLimit float64) *Path {
	if amount == 0.0 || math.IsNaN(amount) {
		g := p.filledGraph()
		return p.fromGraph(g, NonZero)
	}

	q := p.withSettings()
	o := &outliner{
		p:      q,
		offset: amount,
		joiner: join.Joiner(miterLimit),
	}
	g := p.filledGraph()
	for _, start := range g.cycles() {
		ids := g.cycle(start)
		if len(ids) < 3 {
			continue
		}
		pts := make([]Point, len(ids))
		for i, v := range ids {
			pts[i] = g.points[v]
		}
		o.loop(pts)
	}
	return p.positiveUnion(q)
}
