package vpath

import (
	"testing"

	"github.com/tdewolff/test"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

type geomSegment struct {
	cmd path.Command
	pts []vec.Vec2
}

func geomPath(segs ...geomSegment) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, seg := range segs {
			if !yield(seg.cmd, seg.pts) {
				return
			}
		}
	}
}

func TestFromGeomPath(t *testing.T) {
	test.String(t, FromGeomPath(nil).String(), "")

	gp := geomPath(
		geomSegment{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		geomSegment{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 0}}},
		geomSegment{path.CmdLineTo, []vec.Vec2{{X: 10, Y: 10}}},
		geomSegment{path.CmdClose, nil},
		geomSegment{path.CmdMoveTo, []vec.Vec2{{X: 20, Y: 0}}},
		geomSegment{path.CmdLineTo, []vec.Vec2{{X: 30, Y: 0}}},
	)
	test.String(t, FromGeomPath(gp).String(), "M0 0L10 0L10 10zM20 0L30 0")

	gp = geomPath(
		geomSegment{path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}},
		geomSegment{path.CmdCubeTo, []vec.Vec2{{X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}},
		geomSegment{path.CmdQuadTo, []vec.Vec2{{X: 15, Y: -5}, {X: 20, Y: 0}}},
	)
	p := FromGeomPath(gp)
	test.T(t, p.Pos(), Point{20, 0})
	test.That(t, distanceToPath(p, Point{5, 7.5}) <= DefaultErrorTolerance)
	test.That(t, distanceToPath(p, Point{15, -2.5}) <= DefaultErrorTolerance)
}

func TestToGeomPath(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10zM20 0L30 0")
	gp := p.ToGeomPath()

	cmds := []path.Command{}
	pts := []vec.Vec2{}
	for cmd, cpts := range gp {
		cmds = append(cmds, cmd)
		pts = append(pts, cpts...)
	}
	test.T(t, cmds, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose, path.CmdMoveTo, path.CmdLineTo})
	test.T(t, len(pts), 5)
	test.T(t, pts[4], vec.Vec2{X: 30, Y: 0})
	test.String(t, FromGeomPath(gp).String(), p.String())

	// the iterator does not see later changes
	p.Translate(5, 0)
	test.String(t, FromGeomPath(gp).String(), "M0 0L10 0L10 10zM20 0L30 0")

	// early break
	n := 0
	for range gp {
		n++
		if n == 2 {
			break
		}
	}
	test.T(t, n, 2)
	test.T(t, gp.BBox().URx, 30.0)
}
