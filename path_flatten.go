package vpath

import (
	"math"
)

// maxFlattenDepth bounds the recursive subdivision of a single curve.
const maxFlattenDepth = 16

// QuadTo adds a quadratic Bézier curve with control point (cx,cy) to (x,y). It is elevated to a cubic Bézier and flattened.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.beginSegment()
	from, control, end := p.last, Point{cx, cy}, Point{x, y}
	c1 := from.Add(control.Sub(from).Mul(2.0 / 3.0))
	c2 := end.Add(control.Sub(end).Mul(2.0 / 3.0))
	p.flattenCube(from, c1, c2, end)
	p.smooth = end.Add(end.Sub(control))
}

// SmoothQuadTo adds a quadratic Bézier curve to (x,y) whose control point is the reflection of the previous curve's control point, or the current point if the previous segment was not a curve.
func (p *Path) SmoothQuadTo(x, y float64) {
	control := p.smooth
	p.QuadTo(control.X, control.Y, x, y)
}

// CubeTo adds a cubic Bézier curve with control points (cx1,cy1) and (cx2,cy2) to (x,y).
func (p *Path) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	p.beginSegment()
	end := Point{x, y}
	p.flattenCube(p.last, Point{cx1, cy1}, Point{cx2, cy2}, end)
	p.smooth = end.Add(end.Sub(Point{cx2, cy2}))
}

// SmoothCubeTo adds a cubic Bézier curve with end control point (cx2,cy2) to (x,y) whose start control point is the reflection of the previous curve's end control point, or the current point if the previous segment was not a curve.
func (p *Path) SmoothCubeTo(cx2, cy2, x, y float64) {
	control := p.smooth
	p.CubeTo(control.X, control.Y, cx2, cy2, x, y)
}

// ArcTo adds an elliptical arc with radii rx and ry, with rot the counter clockwise rotation with respect to the coordinate system in degrees, large and sweep booleans (see https://developer.mozilla.org/en-US/docs/Web/SVG/Tutorial/Paths#Arcs), and (x,y) the end position of the pen. The arc is converted to cubic Béziers of at most a quarter turn each.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	p.beginSegment()
	start, end := p.last, Point{x, y}
	if start == end {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0.0 || ry == 0.0 {
		p.addPoint(end)
		p.smooth = end
		return
	}

	rx, ry = ellipseRadiiCorrection(start, rx, ry, rot, end)
	cx, cy, theta0, theta1 := arcToCenter(start.X, start.Y, rx, ry, rot, large, sweep, end.X, end.Y)
	center := Point{cx, cy}
	phi := rot * math.Pi / 180.0
	theta0 *= math.Pi / 180.0
	theta1 *= math.Pi / 180.0

	n := int(math.Ceil(math.Abs(theta1-theta0) / (math.Pi / 2.0)))
	n = max(n, 1)
	dtheta := (theta1 - theta0) / float64(n)
	k := 4.0 / 3.0 * math.Tan(dtheta/4.0)
	from := start
	for i := 0; i < n; i++ {
		t0 := theta0 + float64(i)*dtheta
		t1 := t0 + dtheta
		to := ellipsePos(rx, ry, phi, center, t1)
		if i == n-1 {
			to = end
		}
		c1 := from.Add(ellipseDeriv(rx, ry, phi, t0).Mul(k))
		c2 := to.Sub(ellipseDeriv(rx, ry, phi, t1).Mul(k))
		p.flattenCube(from, c1, c2, to)
		from = to
	}
	p.smooth = end
}

// flattenCube adds the flattened cubic Bézier, excluding its start point.
func (p *Path) flattenCube(from, c1, c2, to Point) {
	tolerance := p.ErrorTolerance()
	p.recurseBezierTo(from, c1, c2, to, tolerance*tolerance, p.ResolutionMatrix(), 0)
}

// recurseBezierTo subdivides the curve at its midpoint until both control points are within the tolerance of the chord, measured after applying the resolution matrix.
func (p *Path) recurseBezierTo(from, c1, c2, to Point, toleranceSquared float64, resolution Matrix, depth int) {
	d1 := resolution.linear(deltaFromLine(c1, from, to))
	d2 := resolution.linear(deltaFromLine(c2, from, to))
	if maxFlattenDepth <= depth || d1.SquaredLength() <= toleranceSquared && d2.SquaredLength() <= toleranceSquared {
		p.addPoint(to)
		return
	}

	mid1 := from.Interpolate(c1, 0.5)
	mid2 := c1.Interpolate(c2, 0.5)
	mid3 := c2.Interpolate(to, 0.5)
	midmid1 := mid1.Interpolate(mid2, 0.5)
	midmid2 := mid2.Interpolate(mid3, 0.5)
	split := midmid1.Interpolate(midmid2, 0.5)

	p.recurseBezierTo(from, mid1, midmid1, split, toleranceSquared, resolution, depth+1)
	p.recurseBezierTo(split, midmid2, mid3, to, toleranceSquared, resolution, depth+1)
}

////////////////////////////////////////////////////////////////

func ellipsePos(rx, ry, phi float64, center Point, theta float64) Point {
	sinphi, cosphi := math.Sincos(phi)
	sintheta, costheta := math.Sincos(theta)
	return Point{
		center.X + rx*cosphi*costheta - ry*sinphi*sintheta,
		center.Y + rx*sinphi*costheta + ry*cosphi*sintheta,
	}
}

func ellipseDeriv(rx, ry, phi, theta float64) Point {
	sinphi, cosphi := math.Sincos(phi)
	sintheta, costheta := math.Sincos(theta)
	return Point{
		-rx*cosphi*sintheta - ry*sinphi*costheta,
		-rx*sinphi*sintheta + ry*cosphi*costheta,
	}
}

// ellipseRadiiCorrection scales up the radii when no ellipse with the given radii can connect start and end, see https://www.w3.org/TR/SVG/implnote.html#ArcCorrectionOutOfRangeRadii
func ellipseRadiiCorrection(start Point, rx, ry, rot float64, end Point) (float64, float64) {
	sinphi, cosphi := math.Sincos(rot * math.Pi / 180.0)
	x1p := cosphi*(start.X-end.X)/2.0 + sinphi*(start.Y-end.Y)/2.0
	y1p := -sinphi*(start.X-end.X)/2.0 + cosphi*(start.Y-end.Y)/2.0
	lambda := x1p*x1p/rx/rx + y1p*y1p/ry/ry
	if lambda > 1.0 {
		lambda = math.Sqrt(lambda)
		return rx * lambda, ry * lambda
	}
	return rx, ry
}

// arcToCenter changes between the SVG arc format to the center and angles format, angles are in degrees
// see https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func arcToCenter(x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, 0.0, 0.0
	}

	rot *= math.Pi / 180.0
	sinrot, cosrot := math.Sincos(rot)
	x1p := cosrot*(x1-x2)/2.0 + sinrot*(y1-y2)/2.0
	y1p := -sinrot*(x1-x2)/2.0 + cosrot*(y1-y2)/2.0

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	cx := cosrot*cxp - sinrot*cyp + (x1+x2)/2.0
	cy := sinrot*cxp + cosrot*cyp + (y1+y2)/2.0

	// specify U and V vectors; theta = arccos(U*V / sqrt(U*U + V*V))
	ux := (x1p - cxp) / rx
	uy := (y1p - cyp) / ry
	vx := -(x1p + cxp) / rx
	vy := -(y1p + cyp) / ry

	theta := math.Acos(math.Max(-1.0, math.Min(1.0, ux/math.Sqrt(ux*ux+uy*uy))))
	if uy < 0.0 {
		theta = -theta
	}
	theta *= 180.0 / math.Pi

	delta := math.Acos(math.Max(-1.0, math.Min(1.0, (ux*vx+uy*vy)/math.Sqrt((ux*ux+uy*uy)*(vx*vx+vy*vy)))))
	if ux*vy-uy*vx < 0.0 {
		delta = -delta
	}
	delta *= 180.0 / math.Pi
	if !sweep && delta > 0.0 {
		delta -= 360.0
	} else if sweep && delta < 0.0 {
		delta += 360.0
	}
	return cx, cy, theta, theta + delta
}
