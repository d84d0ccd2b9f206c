package vpath

import "math"

// orientation returns a positive value when target2 lies CCW of target1 as seen from source, a negative value when it lies CW, and zero when the three points are collinear up to the relative precision of the computation.
func orientation(source, target1, target2 Point) float64 {
	d1 := target1.Sub(source)
	d2 := target2.Sub(source)
	l := d2.Y * d1.X
	r := d2.X * d1.Y
	diff := l - r
	if math.Abs(diff) < 1e-10*math.Abs(l+r) {
		return 0.0
	}
	return diff
}

// stableOrientation is orientation evaluated from each of the three points in turn, so that a result of zero is only returned when no choice of origin can resolve the sign.
func stableOrientation(source, target1, target2 Point) float64 {
	if o := orientation(source, target1, target2); o != 0.0 {
		return o
	} else if o = orientation(target2, source, target1); o != 0.0 {
		return o
	}
	return orientation(target1, target2, source)
}

// findIntersection returns the point where the infinite lines through (start1,end1) and (start2,end2) meet.
func findIntersection(start1, end1, start2, end2 Point) (Point, bool) {
	d1 := end1.Sub(start1)
	d2 := end2.Sub(start2)
	det := d1.PerpDot(d2)
	if det == 0.0 {
		return Point{}, false
	}
	t := start2.Sub(start1).PerpDot(d2) / det
	return start1.Add(d1.Mul(t)), true
}

// deltaFromLine returns the vector from the closest point on segment (from,to) to p.
func deltaFromLine(p, from, to Point) Point {
	if from == to {
		return p.Sub(from)
	}
	d := to.Sub(from)
	t := p.Sub(from).Dot(d) / d.Dot(d)
	t = math.Max(0.0, math.Min(1.0, t))
	return p.Sub(from.Add(d.Mul(t)))
}

// lexLess orders points by x and then by y, which is the sweep order.
func lexLess(a, b Point) bool {
	return a.X < b.X || a.X == b.X && a.Y < b.Y
}

// inTriangle returns true if p lies in the closed CCW triangle abc.
func inTriangle(p, a, b, c Point) bool {
	return 0.0 <= orientation(a, b, p) && 0.0 <= orientation(b, c, p) && 0.0 <= orientation(c, a, p)
}

// inTriangleStrict returns true if p lies in the interior of the CCW triangle abc.
func inTriangleStrict(p, a, b, c Point) bool {
	return 0.0 < orientation(a, b, p) && 0.0 < orientation(b, c, p) && 0.0 < orientation(c, a, p)
}

// triangleArea returns the signed area of triangle abc, positive for CCW.
func triangleArea(a, b, c Point) float64 {
	return b.Sub(a).PerpDot(c.Sub(a)) / 2.0
}
