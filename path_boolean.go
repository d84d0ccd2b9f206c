package vpath

// Operation is a boolean operation between two paths.
type Operation int

// see Operation
const (
	Union Operation = iota
	Intersection
	Difference
	Xor
)

func (op Operation) String() string {
	switch op {
	case Union:
		return "Union"
	case Intersection:
		return "Intersection"
	case Difference:
		return "Difference"
	case Xor:
		return "Xor"
	}
	return "Operation(?)"
}

// windingRule returns the fill rule and threshold that select the result of the operation from the merged graph of both normalized operands.
func (op Operation) windingRule() (FillRule, int) {
	switch op {
	case Intersection:
		return Positive, 2
	case Xor:
		return EvenOdd, 1
	}
	return Positive, 1
}

// normalizedGraph returns a copy of the triangulation graph with only the filled area left, bounded by cycles with winding number 1 inside and 0 outside.
func (p *Path) normalizedGraph() *graph {
	g := p.triangulationGraph().clone()
	g.fixWindings(p.fillRule, 1)
	return g
}

// Combine returns the result of the boolean operation between the filled areas of p and q, each according to its own fill rule. The result has the NonZero fill rule and neither p nor q are changed.
func (p *Path) Combine(q *Path, op Operation) *Path {
	g := p.normalizedGraph()
	h := q.normalizedGraph()
	if op == Difference {
		h.reverse()
	}
	g.merge(h)
	g.breakIntersections()

	fillRule, threshold := op.windingRule()
	g.fixWindings(fillRule, threshold)
	return p.fromGraph(g, NonZero)
}

// Union returns the union of p and q.
func (p *Path) Union(q *Path) *Path {
	return p.Combine(q, Union)
}

// Intersection returns the intersection of p and q.
func (p *Path) Intersection(q *Path) *Path {
	return p.Combine(q, Intersection)
}

// Difference returns p with q cut out.
func (p *Path) Difference(q *Path) *Path {
	return p.Combine(q, Difference)
}

// Xor returns the areas covered by either p or q but not both.
func (p *Path) Xor(q *Path) *Path {
	return p.Combine(q, Xor)
}
