package vpath

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FromGeomPath converts a path of the seehuhn.de/go/geom package to a path, flattening its curves with the default error tolerance.
func FromGeomPath(gp path.Path) *Path {
	p := &Path{}
	if gp == nil {
		return p
	}

	for cmd, pts := range gp {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			p.LineTo(pts[0].X, pts[0].Y)
		case path.CmdQuadTo:
			p.QuadTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case path.CmdCubeTo:
			p.CubeTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}

// ToGeomPath returns the path as a path of the seehuhn.de/go/geom package, consisting of straight segments only. The returned iterator reads from a copy of the subpaths and reuses its point buffer between yields.
func (p *Path) ToGeomPath() path.Path {
	sps := p.SubPaths()
	for i := range sps {
		sps[i] = sps[i].copy()
	}
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, sp := range sps {
			if sp.Empty() {
				continue
			}
			for i, pt := range sp.Points {
				cmd := path.CmdLineTo
				if i == 0 {
					cmd = path.CmdMoveTo
				}
				buf[0] = vec.Vec2{X: pt.X, Y: pt.Y}
				if !yield(cmd, buf[:]) {
					return
				}
			}
			if sp.Closed {
				if !yield(path.CmdClose, buf[:0]) {
					return
				}
			}
		}
	}
}
