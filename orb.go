package vpath

import (
	"fmt"

	"github.com/paulmach/orb"
)

// FromOrb converts a geometry to a path. Rings of polygons become closed subpaths, line strings become open subpaths and points become single-point subpaths. The path uses the EvenOdd fill rule so that polygon holes are cut out regardless of the ring orientation.
func FromOrb(geom orb.Geometry) *Path {
	p := &Path{}
	p.addOrb(geom)
	return p
}

func (p *Path) addOrbPoints(points []orb.Point, closed bool) {
	if len(points) == 0 {
		return
	}
	p.MoveTo(points[0][0], points[0][1])
	if len(points) == 1 {
		p.addPoint(p.last)
	}
	for _, point := range points[1:] {
		p.LineTo(point[0], point[1])
	}
	if closed {
		p.Close()
	}
}

func (p *Path) addOrb(geom orb.Geometry) {
	switch g := geom.(type) {
	case orb.Point:
		p.addOrbPoints([]orb.Point{g}, false)
	case orb.MultiPoint:
		for _, point := range g {
			p.addOrbPoints([]orb.Point{point}, false)
		}
	case orb.LineString:
		p.addOrbPoints(g, false)
	case orb.MultiLineString:
		for _, ls := range g {
			p.addOrbPoints(ls, false)
		}
	case orb.Ring:
		p.addOrbPoints(g, true)
	case orb.Polygon:
		for _, ring := range g {
			p.addOrbPoints(ring, true)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				p.addOrbPoints(ring, true)
			}
		}
	case orb.Bound:
		p.addOrb(g.ToRing())
	case orb.Collection:
		for _, h := range g {
			p.addOrb(h)
		}
	case nil:
	default:
		Logger().Debug("vpath: unsupported geometry", "type", fmt.Sprintf("%T", geom))
	}
}

// ToOrb converts the path to a collection of geometries. Closed subpaths become rings that repeat their first point at the end, open subpaths become line strings and single points become points.
func (p *Path) ToOrb() orb.Collection {
	c := orb.Collection{}
	for _, sp := range p.subpaths {
		if sp.Empty() {
			continue
		} else if len(sp.Points) == 1 {
			c = append(c, orb.Point{sp.Points[0].X, sp.Points[0].Y})
			continue
		}

		points := make([]orb.Point, 0, len(sp.Points)+1)
		for _, pt := range sp.Points {
			points = append(points, orb.Point{pt.X, pt.Y})
		}
		if sp.Closed {
			points = append(points, points[0])
			c = append(c, orb.Ring(points))
		} else {
			c = append(c, orb.LineString(points))
		}
	}
	return c
}
