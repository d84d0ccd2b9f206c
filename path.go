package vpath

import (
	"strings"
)

// FillRule is the algorithm to specify which area is to be filled and which not, in particular when multiple subpaths overlap. The EvenOdd rule is the default.
type FillRule int

// see FillRule
const (
	EvenOdd FillRule = iota
	NonZero
	Positive // only positive windings are filled
)

// Fills returns true if a region with the given winding number is filled.
func (fillRule FillRule) Fills(windings int) bool {
	return fillRule.inside(windings, 1)
}

// inside returns true if the winding number is inside, with threshold the minimum winding number for the Positive rule.
func (fillRule FillRule) inside(windings, threshold int) bool {
	switch fillRule {
	case NonZero:
		return windings != 0
	case Positive:
		return threshold <= windings
	}
	return windings%2 != 0
}

func (fillRule FillRule) String() string {
	switch fillRule {
	case NonZero:
		return "NonZero"
	case Positive:
		return "Positive"
	case EvenOdd:
		return "EvenOdd"
	}
	return "FillRule(?)"
}

// DefaultErrorTolerance is the maximum deviation of a flattened curve from the true curve, in the space of the resolution matrix, for paths that have no tolerance set.
var DefaultErrorTolerance = 0.1

// closeEpsilon is the squared distance under which the end of a closed subpath is merged with its start.
const closeEpsilon = 1e-6

// Path is a collection of flattened subpaths. Curves and arcs are flattened when they are added, with a maximum deviation of the error tolerance measured after applying the resolution matrix. The zero value is an empty path with the EvenOdd fill rule, the default error tolerance and the identity resolution matrix.
//
// A Path lazily builds its triangulation graph and caches it until its points change. A Path is not safe for concurrent use.
type Path struct {
	subpaths   []SubPath
	fillRule   FillRule
	tolerance  float64
	resolution Matrix

	last   Point   // current point
	smooth Point   // mirrored control point of the last curve
	value  float64 // value of subsequent points

	graph *graph
}

// invalidate drops the cached triangulation graph, every point mutation goes through here.
func (p *Path) invalidate() {
	p.graph = nil
}

// startSubPath prepares a new subpath unless the current one is still empty.
func (p *Path) startSubPath() {
	if len(p.subpaths) == 0 || !p.subpaths[len(p.subpaths)-1].Empty() {
		p.subpaths = append(p.subpaths, SubPath{})
	}
	p.value = 0.0
}

func (p *Path) currentSubPath() *SubPath {
	if len(p.subpaths) == 0 || p.subpaths[len(p.subpaths)-1].Closed {
		p.subpaths = append(p.subpaths, SubPath{})
	}
	return &p.subpaths[len(p.subpaths)-1]
}

// addPoint appends a point to the current subpath, skipping exact duplicates of the previous point.
func (p *Path) addPoint(pt Point) {
	sp := p.currentSubPath()
	if n := len(sp.Points); 0 < n && sp.Points[n-1] == pt {
		return
	}
	p.invalidate()
	sp.Points = append(sp.Points, pt)
	sp.Values = append(sp.Values, p.value)
	p.last = pt
}

// beginSegment makes sure the current subpath contains the current point before a segment is added to it.
func (p *Path) beginSegment() {
	if p.currentSubPath().Empty() {
		p.addPoint(p.last)
	}
}

// SetValue sets the value that is stored with subsequently added points. The value is reset to zero by MoveTo.
func (p *Path) SetValue(value float64) {
	p.value = value
}

// Pos returns the current point.
func (p *Path) Pos() Point {
	return p.last
}

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	p.startSubPath()
	p.last = Point{x, y}
	p.smooth = p.last
}

// LineTo adds a linear segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.beginSegment()
	p.addPoint(Point{x, y})
	p.smooth = p.last
}

// HorizontalTo adds a horizontal linear segment to x.
func (p *Path) HorizontalTo(x float64) {
	p.LineTo(x, p.last.Y)
}

// VerticalTo adds a vertical linear segment to y.
func (p *Path) VerticalTo(y float64) {
	p.LineTo(p.last.X, y)
}

// Close closes the current subpath. When its end point is within a small distance of its start point, the end point is merged into the start point.
func (p *Path) Close() {
	if len(p.subpaths) == 0 {
		return
	}
	sp := &p.subpaths[len(p.subpaths)-1]
	if sp.Empty() || sp.Closed {
		return
	}

	p.invalidate()
	if n := len(sp.Points); 1 < n && sp.Points[0].Sub(sp.Points[n-1]).SquaredLength() < closeEpsilon {
		sp.Points = sp.Points[:n-1]
		sp.Values = sp.Values[:n-1]
	}
	sp.Closed = true
	p.last = sp.Points[0]
	p.smooth = p.last
}

// LoadCommands applies the commands to the path.
func (p *Path) LoadCommands(c Commands) {
	for i := 0; i < c.Len(); i++ {
		switch cmd := c.At(i).(type) {
		case MoveTo:
			p.MoveTo(cmd.To.X, cmd.To.Y)
		case LineTo:
			p.LineTo(cmd.To.X, cmd.To.Y)
		case QuadTo:
			p.QuadTo(cmd.Control.X, cmd.Control.Y, cmd.To.X, cmd.To.Y)
		case SmoothQuadTo:
			p.SmoothQuadTo(cmd.To.X, cmd.To.Y)
		case CubeTo:
			p.CubeTo(cmd.Control1.X, cmd.Control1.Y, cmd.Control2.X, cmd.Control2.Y, cmd.To.X, cmd.To.Y)
		case SmoothCubeTo:
			p.SmoothCubeTo(cmd.Control2.X, cmd.Control2.Y, cmd.To.X, cmd.To.Y)
		case ArcTo:
			p.ArcTo(cmd.RX, cmd.RY, cmd.Rot, cmd.Large, cmd.Sweep, cmd.To.X, cmd.To.Y)
		case Close:
			p.Close()
		}
	}
}

// appendSubPath adds a copy of a flattened subpath.
func (p *Path) appendSubPath(sp SubPath) {
	if sp.Empty() {
		return
	}
	p.invalidate()
	sp = sp.copy()
	for len(sp.Values) < len(sp.Points) {
		sp.Values = append(sp.Values, 0.0)
	}
	p.subpaths = append(p.subpaths, sp)
	p.last = sp.Points[len(sp.Points)-1]
	if sp.Closed {
		p.last = sp.Points[0]
	}
	p.smooth = p.last
}

// Append appends the subpaths of q to p.
func (p *Path) Append(q *Path) *Path {
	for _, sp := range q.subpaths {
		p.appendSubPath(sp)
	}
	return p
}

////////////////////////////////////////////////////////////////

// Empty returns true if the path has no points.
func (p *Path) Empty() bool {
	return p.NumPoints() == 0
}

// NumPoints returns the number of points of all subpaths.
func (p *Path) NumPoints() int {
	n := 0
	for _, sp := range p.subpaths {
		n += len(sp.Points)
	}
	return n
}

// SubPaths returns the flattened subpaths, they must not be modified.
func (p *Path) SubPaths() []SubPath {
	subpaths := make([]SubPath, 0, len(p.subpaths))
	for _, sp := range p.subpaths {
		if !sp.Empty() {
			subpaths = append(subpaths, sp)
		}
	}
	return subpaths
}

// Clear removes all subpaths, it keeps the fill rule, error tolerance and resolution matrix.
func (p *Path) Clear() {
	p.invalidate()
	p.subpaths = p.subpaths[:0]
	p.last = Point{}
	p.smooth = Point{}
	p.value = 0.0
}

// Copy returns a deep copy of the path, including its cached triangulation graph.
func (p *Path) Copy() *Path {
	q := *p
	q.subpaths = make([]SubPath, len(p.subpaths))
	for i, sp := range p.subpaths {
		q.subpaths[i] = sp.copy()
	}
	if p.graph != nil {
		q.graph = p.graph.clone()
	}
	return &q
}

// withSettings returns an empty path with the same fill rule, error tolerance and resolution matrix.
func (p *Path) withSettings() *Path {
	return &Path{
		fillRule:   p.fillRule,
		tolerance:  p.tolerance,
		resolution: p.resolution,
	}
}

// FillRule returns the fill rule.
func (p *Path) FillRule() FillRule {
	return p.fillRule
}

// SetFillRule sets the fill rule.
func (p *Path) SetFillRule(fillRule FillRule) {
	p.fillRule = fillRule
}

// ErrorTolerance returns the maximum deviation of flattened curves.
func (p *Path) ErrorTolerance() float64 {
	if p.tolerance <= 0.0 {
		return DefaultErrorTolerance
	}
	return p.tolerance
}

// SetErrorTolerance sets the maximum deviation of curves that are added afterwards. A non-positive tolerance restores DefaultErrorTolerance.
func (p *Path) SetErrorTolerance(tolerance float64) {
	p.tolerance = tolerance
}

// ResolutionMatrix returns the transformation to the space in which the error tolerance is measured.
func (p *Path) ResolutionMatrix() Matrix {
	if p.resolution.Det() == 0.0 {
		return Identity
	}
	return p.resolution
}

// SetResolutionMatrix sets the transformation to the space in which the error tolerance is measured, for example the path-to-pixel transformation. A singular matrix restores the identity.
func (p *Path) SetResolutionMatrix(m Matrix) {
	p.resolution = m
}

// Bounds returns the bounding box of all points.
func (p *Path) Bounds() Rect {
	r := emptyRect()
	for _, sp := range p.subpaths {
		r = r.Add(sp.Bounds())
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Length returns the total length of all subpaths, including the closing segments of closed subpaths.
func (p *Path) Length() float64 {
	length := 0.0
	for s := p.Scanner(); s.Scan(); {
		length += s.End().Sub(s.Start()).Length()
	}
	return length
}

// Transform transforms all points by m.
func (p *Path) Transform(m Matrix) *Path {
	p.invalidate()
	for i := range p.subpaths {
		for j, pt := range p.subpaths[i].Points {
			p.subpaths[i].Points[j] = m.Dot(pt)
		}
	}
	p.last = m.Dot(p.last)
	p.smooth = m.Dot(p.smooth)
	return p
}

// Translate translates all points by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	return p.Transform(Identity.Translate(x, y))
}

// Scale scales all points by (x,y) around the origin.
func (p *Path) Scale(x, y float64) *Path {
	return p.Transform(Identity.Scale(x, y))
}

// Rotate rotates all points by rot degrees counter clockwise around the origin.
func (p *Path) Rotate(rot float64) *Path {
	return p.Transform(Identity.Rotate(rot))
}

// Transformed returns a copy of the path transformed by m, leaving p unchanged.
func (p *Path) Transformed(m Matrix) *Path {
	return p.Copy().Transform(m)
}

// Translated returns a copy of the path translated by (x,y).
func (p *Path) Translated(x, y float64) *Path {
	return p.Copy().Translate(x, y)
}

// Scaled returns a copy of the path scaled by (x,y) around the origin.
func (p *Path) Scaled(x, y float64) *Path {
	return p.Copy().Scale(x, y)
}

// Rotated returns a copy of the path rotated by rot degrees counter clockwise around the origin.
func (p *Path) Rotated(rot float64) *Path {
	return p.Copy().Rotate(rot)
}

// Reverse returns a new path with the direction of all subpaths reversed.
func (p *Path) Reverse() *Path {
	q := p.withSettings()
	for _, sp := range p.subpaths {
		if !sp.Empty() {
			q.subpaths = append(q.subpaths, sp.reverse())
		}
	}
	return q
}

// Interior is true when the point (x,y) is in the interior of the path, i.e. gets filled. This depends on the FillRule.
func (p *Path) Interior(x, y float64) bool {
	n := 0
	for _, sp := range p.subpaths {
		n += sp.FillCount(x, y)
	}
	return p.fillRule.Fills(n)
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	sb := strings.Builder{}
	for _, sp := range p.subpaths {
		for i, pt := range sp.Points {
			if i == 0 {
				sb.WriteString("M")
			} else {
				sb.WriteString("L")
			}
			sb.WriteString(num(pt.X).String())
			sb.WriteString(" ")
			sb.WriteString(num(pt.Y).String())
		}
		if sp.Closed && !sp.Empty() {
			sb.WriteString("z")
		}
	}
	return sb.String()
}
