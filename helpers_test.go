package vpath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func setEpsilon(eps float64) func() {
	origEpsilon := Epsilon
	Epsilon = eps
	return func() {
		Epsilon = origEpsilon
	}
}

func testNear(t *testing.T, got, want, tolerance float64) {
	t.Helper()
	test.That(t, math.Abs(got-want) <= tolerance, "got", got, "want", want)
}

// filledArea is the area of the filled region of the path.
func filledArea(p *Path) float64 {
	return p.Triangulate().Area()
}

func RandomPolygon(r *rand.Rand, n int) *Path {
	p := &Path{}
	for i := 0; i < n; i++ {
		x, y := 100.0*r.Float64(), 100.0*r.Float64()
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}

// testPath compares the subpaths of p with the path data s, coordinates are compared with tolerance Epsilon.
func testPath(t *testing.T, p *Path, s string) {
	t.Helper()
	q := MustParseSVGPath(s)
	sps, sqs := p.SubPaths(), q.SubPaths()
	if len(sps) != len(sqs) {
		test.Fail(t, p.String(), "!=", s)
		return
	}
	for i := range sps {
		if sps[i].Closed != sqs[i].Closed || len(sps[i].Points) != len(sqs[i].Points) {
			test.Fail(t, p.String(), "!=", s)
			return
		}
		for j := range sps[i].Points {
			if !sps[i].Points[j].Equals(sqs[i].Points[j]) {
				test.Fail(t, p.String(), "!=", s)
				return
			}
		}
	}
}
