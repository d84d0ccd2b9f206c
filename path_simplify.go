package vpath

import (
	"container/heap"
	"fmt"
	"math"
)

func snap(f, spacing float64) float64 {
	return math.Round(f/spacing) * spacing
}

// Gridsnap snaps all points to a grid with the given spacing and removes points that end up on top of their predecessor. This will significantly reduce numerical issues e.g. for path boolean operations. This operation is in-place.
func (p *Path) Gridsnap(spacing float64) *Path {
	if spacing <= 0.0 || math.IsNaN(spacing) {
		return p
	}

	p.invalidate()
	for i := range p.subpaths {
		sp := &p.subpaths[i]
		for j, pt := range sp.Points {
			sp.Points[j] = Point{snap(pt.X, spacing), snap(pt.Y, spacing)}
		}
		*sp = sp.dedup(0.0)
	}
	p.last = Point{snap(p.last.X, spacing), snap(p.last.Y, spacing)}
	p.smooth = p.last
	return p
}

// SimplifyVisvalingamWhyatt returns a new path where points are removed as long as the triangle they form with their neighbours has an area smaller than tolerance, smallest areas first. The end points of open subpaths are kept, closed subpaths that become smaller than the tolerance are removed.
func (p *Path) SimplifyVisvalingamWhyatt(tolerance float64) *Path {
	q := p.withSettings()
	s := &visvalingamWhyatt{}
	for _, sp := range p.subpaths {
		if r, ok := s.simplify(sp, tolerance); ok {
			q.appendSubPath(r)
		}
	}
	return q
}

type itemVW struct {
	Point
	value      float64
	area       float64
	prev, next int
	heapIdx    int
}

func (item itemVW) String() string {
	return fmt.Sprintf("%v %v (%v→·→%v)", item.Point, item.area, item.prev, item.next)
}

// heapVW is a min-heap of item indices ordered by area.
type heapVW struct {
	items []itemVW
	idx   []int
}

func (q *heapVW) Len() int           { return len(q.idx) }
func (q *heapVW) Less(i, j int) bool { return q.items[q.idx[i]].area < q.items[q.idx[j]].area }

func (q *heapVW) Swap(i, j int) {
	q.idx[i], q.idx[j] = q.idx[j], q.idx[i]
	q.items[q.idx[i]].heapIdx = i
	q.items[q.idx[j]].heapIdx = j
}

func (q *heapVW) Push(x any) {
	i := x.(int)
	q.items[i].heapIdx = len(q.idx)
	q.idx = append(q.idx, i)
}

func (q *heapVW) Pop() any {
	n := len(q.idx) - 1
	i := q.idx[n]
	q.idx = q.idx[:n]
	q.items[i].heapIdx = -1
	return i
}

// visvalingamWhyatt keeps its buffers between subpaths.
type visvalingamWhyatt struct {
	heap heapVW
}

func (s *visvalingamWhyatt) area(i int) float64 {
	items := s.heap.items
	a, b, c := items[items[i].prev].Point, items[i].Point, items[items[i].next].Point
	return math.Abs(triangleArea(a, b, c))
}

func (s *visvalingamWhyatt) simplify(sp SubPath, tolerance float64) (SubPath, bool) {
	sp = sp.dedup(0.0)
	n := len(sp.Points)
	minPoints := 2
	if sp.Closed {
		minPoints = 3
	}
	if n <= minPoints {
		if sp.Closed && math.Abs(sp.Area()) < tolerance {
			return SubPath{}, false
		}
		return sp, 0 < n
	}

	items := s.heap.items[:0]
	for i, pt := range sp.Points {
		value := 0.0
		if i < len(sp.Values) {
			value = sp.Values[i]
		}
		items = append(items, itemVW{Point: pt, value: value, prev: i - 1, next: i + 1, heapIdx: -1})
	}
	if sp.Closed {
		items[0].prev = n - 1
		items[n-1].next = 0
	} else {
		items[n-1].next = -1
	}
	s.heap.items = items
	s.heap.idx = s.heap.idx[:0]
	for i := range items {
		if items[i].prev != -1 && items[i].next != -1 {
			items[i].area = s.area(i)
			s.heap.Push(i)
		}
	}
	heap.Init(&s.heap)

	first, remaining := 0, n
	for 0 < s.heap.Len() {
		i := s.heap.idx[0]
		if tolerance <= items[i].area {
			break
		} else if remaining == minPoints {
			// closed subpath collapses
			return SubPath{}, false
		}
		heap.Pop(&s.heap)
		remaining--

		prev, next := items[i].prev, items[i].next
		items[prev].next = next
		items[next].prev = prev
		if i == first {
			first = next
		}
		for _, j := range [2]int{prev, next} {
			if items[j].heapIdx != -1 {
				items[j].area = s.area(j)
				heap.Fix(&s.heap, items[j].heapIdx)
			}
		}
	}

	r := SubPath{Closed: sp.Closed}
	for i := first; ; {
		r.Points = append(r.Points, items[i].Point)
		r.Values = append(r.Values, items[i].value)
		i = items[i].next
		if i == -1 || i == first {
			break
		}
	}
	return r, true
}
