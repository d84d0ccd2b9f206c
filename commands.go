package vpath

import (
	"math"
	"strings"
)

// Command is a single path drawing command. It is one of MoveTo, LineTo, QuadTo, SmoothQuadTo, CubeTo, SmoothCubeTo, ArcTo or Close. All coordinates are absolute.
type Command interface {
	end() Point
	isCommand()
}

// MoveTo starts a new subpath at To.
type MoveTo struct {
	To Point
}

// LineTo draws a straight line to To.
type LineTo struct {
	To Point
}

// QuadTo draws a quadratic Bézier curve to To.
type QuadTo struct {
	Control, To Point
}

// SmoothQuadTo draws a quadratic Bézier curve to To whose control point mirrors the previous control point.
type SmoothQuadTo struct {
	To Point
}

// CubeTo draws a cubic Bézier curve to To.
type CubeTo struct {
	Control1, Control2, To Point
}

// SmoothCubeTo draws a cubic Bézier curve to To whose first control point mirrors the previous second control point.
type SmoothCubeTo struct {
	Control2, To Point
}

// ArcTo draws an elliptical arc to To with radii RX and RY, Rot the x-axis rotation in degrees, Large the large-arc flag and Sweep the sweep flag, as in SVG.
type ArcTo struct {
	RX, RY, Rot  float64
	Large, Sweep bool
	To           Point
}

// Close closes the current subpath, To is the subpath's start point.
type Close struct {
	To Point
}

func (c MoveTo) end() Point       { return c.To }
func (c LineTo) end() Point       { return c.To }
func (c QuadTo) end() Point       { return c.To }
func (c SmoothQuadTo) end() Point { return c.To }
func (c CubeTo) end() Point       { return c.To }
func (c SmoothCubeTo) end() Point { return c.To }
func (c ArcTo) end() Point        { return c.To }
func (c Close) end() Point        { return c.To }

func (MoveTo) isCommand()       {}
func (LineTo) isCommand()       {}
func (QuadTo) isCommand()       {}
func (SmoothQuadTo) isCommand() {}
func (CubeTo) isCommand()       {}
func (SmoothCubeTo) isCommand() {}
func (ArcTo) isCommand()        {}
func (Close) isCommand()        {}

// controls returns the explicit control points of a command in drawing order.
func controls(cmd Command) []Point {
	switch c := cmd.(type) {
	case QuadTo:
		return []Point{c.Control}
	case CubeTo:
		return []Point{c.Control1, c.Control2}
	case SmoothCubeTo:
		return []Point{c.Control2}
	}
	return nil
}

////////////////////////////////////////////////////////////////

// Commands is a list of path commands that can be serialized and later loaded into a Path. When Relative is set, the coordinates passed to the builder methods are relative to the current point.
type Commands struct {
	Relative bool

	cmds           []Command
	start, current Point
}

func (c *Commands) adjust(x, y float64) Point {
	if c.Relative {
		return Point{c.current.X + x, c.current.Y + y}
	}
	return Point{x, y}
}

func (c *Commands) add(cmd Command) {
	c.cmds = append(c.cmds, cmd)
	c.current = cmd.end()
}

// Len returns the number of commands.
func (c *Commands) Len() int {
	return len(c.cmds)
}

// At returns the i-th command.
func (c *Commands) At(i int) Command {
	return c.cmds[i]
}

// Current returns the current point.
func (c *Commands) Current() Point {
	return c.current
}

// MoveTo starts a new subpath.
func (c *Commands) MoveTo(x, y float64) {
	c.start = c.adjust(x, y)
	c.add(MoveTo{c.start})
}

// LineTo adds a line to (x,y).
func (c *Commands) LineTo(x, y float64) {
	c.add(LineTo{c.adjust(x, y)})
}

// HorizontalTo adds a horizontal line to x.
func (c *Commands) HorizontalTo(x float64) {
	if c.Relative {
		x += c.current.X
	}
	c.add(LineTo{Point{x, c.current.Y}})
}

// VerticalTo adds a vertical line to y.
func (c *Commands) VerticalTo(y float64) {
	if c.Relative {
		y += c.current.Y
	}
	c.add(LineTo{Point{c.current.X, y}})
}

// QuadTo adds a quadratic Bézier curve with control point (cx,cy) to (x,y).
func (c *Commands) QuadTo(cx, cy, x, y float64) {
	c.add(QuadTo{c.adjust(cx, cy), c.adjust(x, y)})
}

// SmoothQuadTo adds a quadratic Bézier curve to (x,y) that continues the previous curve's tangent.
func (c *Commands) SmoothQuadTo(x, y float64) {
	c.add(SmoothQuadTo{c.adjust(x, y)})
}

// CubeTo adds a cubic Bézier curve with control points (cx1,cy1) and (cx2,cy2) to (x,y).
func (c *Commands) CubeTo(cx1, cy1, cx2, cy2, x, y float64) {
	c.add(CubeTo{c.adjust(cx1, cy1), c.adjust(cx2, cy2), c.adjust(x, y)})
}

// SmoothCubeTo adds a cubic Bézier curve with end control point (cx2,cy2) to (x,y) that continues the previous curve's tangent.
func (c *Commands) SmoothCubeTo(cx2, cy2, x, y float64) {
	c.add(SmoothCubeTo{c.adjust(cx2, cy2), c.adjust(x, y)})
}

// ArcTo adds an elliptical arc to (x,y), see ArcTo.
func (c *Commands) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	c.add(ArcTo{rx, ry, rot, large, sweep, c.adjust(x, y)})
}

// Close closes the current subpath.
func (c *Commands) Close() {
	c.add(Close{c.start})
}

// AddRectangle adds a closed rectangle with its corner at (x,y). Coordinates are always absolute.
func (c *Commands) AddRectangle(x, y, w, h float64) {
	relative := c.Relative
	c.Relative = false
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.Close()
	c.Relative = relative
}

// AddRoundedRectangle adds a closed rectangle with its corner at (x,y) and elliptical corners with radii rx and ry. Coordinates are always absolute.
func (c *Commands) AddRoundedRectangle(x, y, w, h, rx, ry float64) {
	rx = math.Min(math.Abs(rx), math.Abs(w)/2.0)
	ry = math.Min(math.Abs(ry), math.Abs(h)/2.0)
	if rx == 0.0 || ry == 0.0 {
		c.AddRectangle(x, y, w, h)
		return
	}

	relative := c.Relative
	c.Relative = false
	c.MoveTo(x+rx, y)
	c.LineTo(x+w-rx, y)
	c.ArcTo(rx, ry, 0.0, false, true, x+w, y+ry)
	c.LineTo(x+w, y+h-ry)
	c.ArcTo(rx, ry, 0.0, false, true, x+w-rx, y+h)
	c.LineTo(x+rx, y+h)
	c.ArcTo(rx, ry, 0.0, false, true, x, y+h-ry)
	c.LineTo(x, y+ry)
	c.ArcTo(rx, ry, 0.0, false, true, x+rx, y)
	c.Close()
	c.Relative = relative
}

// CornerRadii are the elliptical radii of the corners of a rounded rectangle, with X the horizontal and Y the vertical radius. The top left corner is the one at (x,y) as in screen coordinates.
type CornerRadii struct {
	TopLeft, TopRight, BottomRight, BottomLeft Point
}

// UniformCorners returns corner radii of rx and ry at every corner.
func UniformCorners(rx, ry float64) CornerRadii {
	r := Point{rx, ry}
	return CornerRadii{r, r, r, r}
}

// fit returns the radii made positive and scaled down together until adjacent corners no longer overlap on any side of a w by h rectangle. A corner with a zero radius is sharp.
func (r CornerRadii) fit(w, h float64) CornerRadii {
	cs := [4]*Point{&r.TopLeft, &r.TopRight, &r.BottomRight, &r.BottomLeft}
	for _, c := range cs {
		c.X, c.Y = math.Abs(c.X), math.Abs(c.Y)
		if c.X == 0.0 || c.Y == 0.0 {
			*c = Point{}
		}
	}

	f := 1.0
	for _, side := range [4]struct{ sum, length float64 }{
		{r.TopLeft.X + r.TopRight.X, w},
		{r.BottomLeft.X + r.BottomRight.X, w},
		{r.TopLeft.Y + r.BottomLeft.Y, h},
		{r.TopRight.Y + r.BottomRight.Y, h},
	} {
		if side.length < side.sum {
			f = math.Min(f, side.length/side.sum)
		}
	}
	for _, c := range cs {
		*c = c.Mul(f)
	}
	return r
}

// AddRoundedRectangleCorners adds a closed rectangle with its corner at (x,y) and a separate elliptical radius for each corner. Radii that do not fit are scaled down proportionally. Coordinates are always absolute.
func (c *Commands) AddRoundedRectangleCorners(x, y, w, h float64, radii CornerRadii) {
	r := radii.fit(math.Abs(w), math.Abs(h))
	if r == (CornerRadii{}) {
		c.AddRectangle(x, y, w, h)
		return
	}

	corner := func(r Point, x, y float64) {
		if r.X != 0.0 {
			c.ArcTo(r.X, r.Y, 0.0, false, true, x, y)
		}
	}

	relative := c.Relative
	c.Relative = false
	c.MoveTo(x+r.TopLeft.X, y)
	c.LineTo(x+w-r.TopRight.X, y)
	corner(r.TopRight, x+w, y+r.TopRight.Y)
	c.LineTo(x+w, y+h-r.BottomRight.Y)
	corner(r.BottomRight, x+w-r.BottomRight.X, y+h)
	c.LineTo(x+r.BottomLeft.X, y+h)
	corner(r.BottomLeft, x, y+h-r.BottomLeft.Y)
	if r.TopLeft != (Point{}) {
		c.LineTo(x, y+r.TopLeft.Y)
		corner(r.TopLeft, x+r.TopLeft.X, y)
	}
	c.Close()
	c.Relative = relative
}

// AddEllipse adds a closed ellipse centered at (cx,cy). Coordinates are always absolute.
func (c *Commands) AddEllipse(cx, cy, rx, ry float64) {
	relative := c.Relative
	c.Relative = false
	c.MoveTo(cx+rx, cy)
	c.ArcTo(rx, ry, 0.0, false, true, cx-rx, cy)
	c.ArcTo(rx, ry, 0.0, false, true, cx+rx, cy)
	c.Close()
	c.Relative = relative
}

// AddCircle adds a closed circle centered at (cx,cy).
func (c *Commands) AddCircle(cx, cy, r float64) {
	c.AddEllipse(cx, cy, r, r)
}

// Direction returns the unit tangent at the end point of the i-th command, averaged over the incoming and outgoing directions. The index is clamped to the valid range.
func (c *Commands) Direction(i int) Point {
	if len(c.cmds) == 0 {
		return Point{}
	}
	i = max(0, min(i, len(c.cmds)-1))
	current := c.cmds[i].end()

	prev := current
	for j := i; 0 <= j && prev == current; j-- {
		cands := []Point{c.cmds[j].end()}
		if ctrls := controls(c.cmds[j]); 0 < len(ctrls) {
			for k := len(ctrls) - 1; 0 <= k; k-- {
				cands = append(cands, ctrls[k])
			}
		}
		for _, cand := range cands {
			if cand != current {
				prev = cand
				break
			}
		}
	}

	next := current
	for j := i + 1; j < len(c.cmds) && next == current; j++ {
		cands := append(controls(c.cmds[j]), c.cmds[j].end())
		for _, cand := range cands {
			if cand != current {
				next = cand
				break
			}
		}
	}

	prevDir := current.Sub(prev).Normalize()
	nextDir := next.Sub(current).Normalize()
	dir := prevDir.Add(nextDir)
	if dir.IsZero() {
		return prevDir.Rot90CCW()
	}
	return dir.Normalize()
}

// String returns the commands as SVG path data.
func (c *Commands) String() string {
	sb := strings.Builder{}
	for _, cmd := range c.cmds {
		switch cmd := cmd.(type) {
		case MoveTo:
			sb.WriteString("M" + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case LineTo:
			sb.WriteString("L" + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case QuadTo:
			sb.WriteString("Q" + num(cmd.Control.X).String() + " " + num(cmd.Control.Y).String() + " " + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case SmoothQuadTo:
			sb.WriteString("T" + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case CubeTo:
			sb.WriteString("C" + num(cmd.Control1.X).String() + " " + num(cmd.Control1.Y).String() + " " + num(cmd.Control2.X).String() + " " + num(cmd.Control2.Y).String() + " " + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case SmoothCubeTo:
			sb.WriteString("S" + num(cmd.Control2.X).String() + " " + num(cmd.Control2.Y).String() + " " + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case ArcTo:
			large, sweep := "0", "0"
			if cmd.Large {
				large = "1"
			}
			if cmd.Sweep {
				sweep = "1"
			}
			sb.WriteString("A" + num(cmd.RX).String() + " " + num(cmd.RY).String() + " " + num(cmd.Rot).String() + " " + large + " " + sweep + " " + num(cmd.To.X).String() + " " + num(cmd.To.Y).String())
		case Close:
			sb.WriteString("z")
		}
	}
	return sb.String()
}
