package vpath

import (
	"math"
)

// dashPattern returns the dash array with an odd number of lengths repeated once. It returns false when the array cannot be used for dashing: when it is empty, has a negative or non-finite length, or has a zero total length.
func dashPattern(d []float64) ([]float64, bool) {
	if len(d) == 0 {
		return nil, false
	}
	total := 0.0
	for _, l := range d {
		if l < 0.0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, false
		}
		total += l
	}
	if total == 0.0 {
		return nil, false
	}

	if len(d)%2 == 1 {
		d = append(append(make([]float64, 0, 2*len(d)), d...), d...)
	}
	return d, true
}

// dashStart returns the index into the dash array and the length left of that dash at the given offset. The offset wraps around the pattern, also for negative offsets.
func dashStart(offset float64, d []float64) (int, float64) {
	total := 0.0
	for _, l := range d {
		total += l
	}
	offset = math.Mod(offset, total)
	if offset < 0.0 {
		offset += total
	}

	i := 0
	for d[i] < offset || 0.0 < d[i] && d[i] == offset {
		offset -= d[i]
		i = (i + 1) % len(d)
	}
	return i, d[i] - offset
}

// dashSpan is a dash being built.
type dashSpan struct {
	points []Point
	values []float64
}

func (s *dashSpan) add(p Point, value float64) {
	if n := len(s.points); 0 < n && s.points[n-1] == p {
		return
	}
	s.points = append(s.points, p)
	s.values = append(s.values, value)
}

func (s *dashSpan) subpath() SubPath {
	return SubPath{Points: s.points, Values: s.values}
}

// dash cuts the subpath into open subpaths for the "on" lengths of the dash array, which alternates between on and off lengths. A zero on length gives a single point.
func (sp SubPath) dash(offset float64, d []float64) []SubPath {
	if sp.Empty() {
		return nil
	}
	pts, vals := sp.Points, sp.Values
	if sp.Closed {
		pts = append(append([]Point{}, pts...), pts[0])
		if 0 < len(vals) {
			vals = append(append([]float64{}, vals...), vals[0])
		}
	}
	value := func(j int) float64 {
		if j < len(vals) {
			return vals[j]
		}
		return 0.0
	}

	i, remaining := dashStart(offset, d)
	startOn := i%2 == 0
	on := startOn

	dashes := []SubPath{}
	span := &dashSpan{}
	if on {
		span.add(pts[0], value(0))
	}
	for j := 0; j+1 < len(pts); j++ {
		a, b := pts[j], pts[j+1]
		va, vb := value(j), value(j+1)
		length := b.Sub(a).Length()
		if length == 0.0 {
			continue
		}

		pos := 0.0
		for remaining <= length-pos {
			pos += remaining
			t := pos / length
			z, vz := a.Interpolate(b, t), va+t*(vb-va)
			if on {
				span.add(z, vz)
				dashes = append(dashes, span.subpath())
				span = &dashSpan{}
			} else {
				span.add(z, vz)
			}
			i = (i + 1) % len(d)
			on = !on
			remaining = d[i]
		}
		remaining -= length - pos
		if on {
			span.add(b, vb)
		}
	}
	// a dash starting at the very end of the path has no length
	endOn := on && (1 < len(span.points) || len(pts) == 1)
	if endOn {
		dashes = append(dashes, span.subpath())
	}

	if sp.Closed && startOn && endOn {
		if len(dashes) == 1 {
			// the path is not interrupted by any gap
			return []SubPath{sp.copy()}
		}
		last := dashes[len(dashes)-1]
		first := dashes[0]
		merged := SubPath{
			Points: append(last.Points, first.Points[1:]...),
			Values: append(last.Values, first.Values[1:]...),
		}
		dashes[0] = merged
		dashes = dashes[:len(dashes)-1]
	}
	return dashes
}

// Dash returns a new path that consists of dashes. The dash array alternates between the lengths of dashes and gaps, an odd number of lengths is repeated. The offset shifts the start into the pattern. Closed subpaths have a dash that crosses their start point joined together. A path without a valid dash array is returned unchanged.
func (p *Path) Dash(offset float64, d ...float64) *Path {
	q := p.withSettings()
	d, ok := dashPattern(d)
	if !ok {
		return q.Append(p)
	}

	for _, sp := range p.subpaths {
		for _, dash := range sp.dash(offset, d) {
			q.appendSubPath(dash)
		}
	}
	return q
}
