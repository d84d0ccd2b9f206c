package vpath

import (
	"math"
)

func (p *Path) loadShape(add func(*Commands)) {
	c := Commands{}
	add(&c)
	p.LoadCommands(c)
}

// AddRectangle adds a closed rectangle with its corner at (x,y), width w and height h.
func (p *Path) AddRectangle(x, y, w, h float64) {
	p.loadShape(func(c *Commands) { c.AddRectangle(x, y, w, h) })
}

// AddRoundedRectangle adds a closed rectangle with its corner at (x,y), width w and height h, with elliptical corners of radii rx and ry.
func (p *Path) AddRoundedRectangle(x, y, w, h, rx, ry float64) {
	p.loadShape(func(c *Commands) { c.AddRoundedRectangle(x, y, w, h, rx, ry) })
}

// AddRoundedRectangleCorners adds a closed rectangle with its corner at (x,y), width w and height h, with a separate elliptical radius for each corner.
func (p *Path) AddRoundedRectangleCorners(x, y, w, h float64, radii CornerRadii) {
	p.loadShape(func(c *Commands) { c.AddRoundedRectangleCorners(x, y, w, h, radii) })
}

// AddEllipse adds a closed ellipse centered at (cx,cy) with radii rx and ry.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	p.loadShape(func(c *Commands) { c.AddEllipse(cx, cy, rx, ry) })
}

// AddCircle adds a closed circle centered at (cx,cy) with radius r.
func (p *Path) AddCircle(cx, cy, r float64) {
	p.AddEllipse(cx, cy, r, r)
}

////////////////////////////////////////////////////////////////

// Rectangle returns a rectangle of width w and height h.
func Rectangle(w, h float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.AddRectangle(0.0, 0.0, w, h)
	return p
}

// RoundedRectangle returns a rectangle of width w and height h with rounded corners of radius r.
func RoundedRectangle(w, h, r float64) *Path {
	if equal(w, 0.0) || equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.AddRoundedRectangle(0.0, 0.0, w, h, r, r)
	return p
}

// Circle returns a circle of radius r.
func Circle(r float64) *Path {
	return Ellipse(r, r)
}

// Ellipse returns an ellipse of radii rx and ry.
func Ellipse(rx, ry float64) *Path {
	if equal(rx, 0.0) || equal(ry, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.AddEllipse(0.0, 0.0, rx, ry)
	return p
}

// RegularPolygon returns a regular polygon with radius r. It uses n vertices/edges, so when n approaches infinity this will return a path that approximates a circle. n must be 3 or more. The up boolean defines whether the first point will point north or not.
func RegularPolygon(n int, r float64, up bool) *Path {
	return RegularStarPolygon(n, 1, r, up)
}

// RegularStarPolygon returns a regular star polygon with radius r. It uses n vertices of density d. This will result in a self-intersection star in counter clockwise direction. If n/2 < d the star will be clockwise and if n and d are not coprime a regular polygon will be obtained, possible with multiple windings. n must be 3 or more and d 2 or more. The up boolean defines whether the first point will point north or not.
func RegularStarPolygon(n, d int, r float64, up bool) *Path {
	if n < 3 || d < 1 || n == d*2 {
		return &Path{}
	}

	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta / 2.0
	}

	p := &Path{}
	for i := 0; i == 0 || i%n != 0; i += d {
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		if i == 0 {
			p.MoveTo(r*costheta, r*sintheta)
		} else {
			p.LineTo(r*costheta, r*sintheta)
		}
	}
	p.Close()
	return p
}

// StarPolygon returns a star polygon of n points with alternating radius R and r. The up boolean defines whether the first point (true) or second point (false) will be pointing north.
func StarPolygon(n int, R, r float64, up bool) *Path {
	if n < 3 {
		return &Path{}
	}

	n *= 2
	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta
	}

	p := &Path{}
	for i := 0; i < n; i++ {
		radius := R
		if i%2 == 1 {
			radius = r
		}
		sintheta, costheta := math.Sincos(theta0 + float64(i)*dtheta)
		if i == 0 {
			p.MoveTo(radius*costheta, radius*sintheta)
		} else {
			p.LineTo(radius*costheta, radius*sintheta)
		}
	}
	p.Close()
	return p
}

// Grid returns a grid of width w and height h, with grid line thickness r, and the number of cells horizontally and vertically as nx and ny respectively. The cells are holes of opposite orientation.
func Grid(w, h float64, nx, ny int, r float64) *Path {
	if nx < 1 || ny < 1 || w <= float64(nx+1)*r || h <= float64(ny+1)*r {
		return &Path{}
	}

	p := Rectangle(w, h)
	p.SetFillRule(NonZero)
	dx, dy := (w-float64(nx+1)*r)/float64(nx), (h-float64(ny+1)*r)/float64(ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			x := r + float64(i)*(r+dx)
			y := r + float64(j)*(r+dy)
			cell := Rectangle(dx, dy).Translate(x, y).Reverse()
			p.Append(cell)
		}
	}
	return p
}
