package vpath

import (
	"container/heap"
	"fmt"
	"strings"
	"sync"
)

// sweepEvent is an endpoint of an edge in the sweep queue. Edges are inserted into the sweep status at their left endpoint and removed at their right endpoint, where left and right follow the sweep order of lexLess.
type sweepEvent struct {
	p     Point // position of the event
	other Point // other endpoint of the edge
	edge  int   // start vertex of the edge
	left  bool  // p is the left endpoint
}

func (ev sweepEvent) String() string {
	kind := "remove"
	if ev.left {
		kind = "insert"
	}
	return fmt.Sprintf("%s(%d %v−%v)", kind, ev.edge, ev.p, ev.other)
}

// sweepEvents is a heap priority queue of sweep events. Events at the same position remove edges before inserting new ones, and insert edges from bottom to top, so that touching contours never overlap on the sweep line.
type sweepEvents []sweepEvent

func (q sweepEvents) Len() int {
	return len(q)
}

func (q sweepEvents) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.p != b.p {
		return lexLess(a.p, b.p)
	} else if a.left != b.left {
		return b.left // handle right endpoints before left endpoints
	} else if a.left {
		if o := stableOrientation(a.p, a.other, b.other); o != 0.0 {
			return 0.0 < o // sort upwards
		}
	}
	return a.edge < b.edge
}

func (q sweepEvents) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *sweepEvents) Push(x any) {
	*q = append(*q, x.(sweepEvent))
}

func (q *sweepEvents) Pop() any {
	n := len(*q) - 1
	ev := (*q)[n]
	*q = (*q)[:n]
	return ev
}

func (q sweepEvents) String() string {
	q2 := make(sweepEvents, len(q))
	copy(q2, q)

	sb := strings.Builder{}
	for i := 0; 0 < q2.Len(); i++ {
		if i != 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%d %v", i, heap.Pop(&q2))
	}
	return sb.String()
}

// sweepEvents returns the queue of events of all edges with a non-zero length.
func (g *graph) sweepEvents() *sweepEvents {
	q := sweepEvents{}
	for _, e := range g.liveEdges() {
		l, r := g.endpoints(e)
		q = append(q, sweepEvent{l, r, e, true}, sweepEvent{r, l, e, false})
	}
	heap.Init(&q)
	return &q
}

// endpoints returns the left and right endpoint of edge e in sweep order.
func (g *graph) endpoints(e int) (Point, Point) {
	a, b := g.points[e], g.points[g.next[e]]
	if lexLess(b, a) {
		return b, a
	}
	return a, b
}

// increasing returns true if edge e runs from its left to its right endpoint.
func (g *graph) increasing(e int) bool {
	return lexLess(g.points[e], g.points[g.next[e]])
}

// compareEdges returns -1 if edge e lies below edge f on the sweep line at the left endpoint of e, and 1 if it lies above. Edges leaving the same point are ordered by direction, and coincident edges by id.
func (g *graph) compareEdges(e, f int) int {
	le, re := g.endpoints(e)
	lf, rf := g.endpoints(f)

	var o float64
	switch le {
	case lf:
		o = stableOrientation(le, rf, re)
	case rf:
		o = stableOrientation(lf, rf, re)
	default:
		if o = stableOrientation(lf, rf, le); o == 0.0 {
			// e starts on f
			o = stableOrientation(le, rf, re)
		}
	}

	if o < 0.0 {
		return -1
	} else if 0.0 < o {
		return 1
	} else if e < f {
		return -1
	}
	return 1
}

////////////////////////////////////////////////////////////////

// sweepNode is a node of the sweep status holding an edge by its start vertex.
type sweepNode struct {
	parent, left, right *sweepNode
	height              int
	edge                int
}

func (n *sweepNode) prev() *sweepNode {
	// go left
	if n.left != nil {
		n = n.left
		for n.right != nil {
			n = n.right // find the right-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.left == n {
		n = n.parent // find first parent for which we're right
	}
	return n.parent // can be nil
}

func (n *sweepNode) next() *sweepNode {
	// go right
	if n.right != nil {
		n = n.right
		for n.left != nil {
			n = n.left // find the left-most of current subtree
		}
		return n
	}

	for n.parent != nil && n.parent.right == n {
		n = n.parent // find first parent for which we're left
	}
	return n.parent // can be nil
}

func (n *sweepNode) balance() int {
	r := 0
	if n.left != nil {
		r -= n.left.height
	}
	if n.right != nil {
		r += n.right.height
	}
	return r
}

func (n *sweepNode) updateHeight() {
	n.height = 0
	if n.left != nil {
		n.height = n.left.height
	}
	if n.right != nil && n.height < n.right.height {
		n.height = n.right.height
	}
	n.height++
}

func (n *sweepNode) swapChild(a, b *sweepNode) {
	if n.right == a {
		n.right = b
	} else {
		n.left = b
	}
	if b != nil {
		b.parent = n
	}
}

func (n *sweepNode) rotateLeft() *sweepNode {
	m := n.right
	if n.parent != nil {
		n.parent.swapChild(n, m)
	} else {
		m.parent = nil
	}
	n.parent = m
	if n.right = m.left; n.right != nil {
		n.right.parent = n
	}
	m.left = n
	n.updateHeight()
	m.updateHeight()
	return m
}

func (n *sweepNode) rotateRight() *sweepNode {
	m := n.left
	if n.parent != nil {
		n.parent.swapChild(n, m)
	} else {
		m.parent = nil
	}
	n.parent = m
	if n.left = m.right; n.left != nil {
		n.left.parent = n
	}
	m.right = n
	n.updateHeight()
	m.updateHeight()
	return m
}

// sweepStatus is an AVL tree of the edges crossing the sweep line, ordered from bottom to top.
type sweepStatus struct {
	g     *graph
	root  *sweepNode
	nodes map[int]*sweepNode
	pool  *sync.Pool
}

func newSweepStatus(g *graph) *sweepStatus {
	return &sweepStatus{
		g:     g,
		nodes: map[int]*sweepNode{},
		pool:  &sync.Pool{New: func() any { return &sweepNode{} }},
	}
}

func (s *sweepStatus) newNode(e int) *sweepNode {
	n := s.pool.Get().(*sweepNode)
	n.parent = nil
	n.left = nil
	n.right = nil
	n.height = 1
	n.edge = e
	s.nodes[e] = n
	return n
}

func (s *sweepStatus) returnNode(n *sweepNode) {
	n.parent, n.left, n.right = nil, nil, nil // help the GC
	s.pool.Put(n)
}

func (s *sweepStatus) rebalance(n *sweepNode) {
	for {
		oheight := n.height
		if balance := n.balance(); 1 < balance {
			// right-heavy, rotate left after straightening a left-heavy right subtree
			if n.right.balance() < 0 {
				n.right.rotateRight()
			}
			n = n.rotateLeft()
		} else if balance < -1 {
			// left-heavy, rotate right after straightening a right-heavy left subtree
			if 0 < n.left.balance() {
				n.left.rotateLeft()
			}
			n = n.rotateRight()
		} else {
			n.updateHeight()
		}

		if n.parent == nil {
			s.root = n
			return
		} else if oheight == n.height {
			return
		}
		n = n.parent
	}
}

// has returns true if edge e is in the status.
func (s *sweepStatus) has(e int) bool {
	_, ok := s.nodes[e]
	return ok
}

// node returns the node holding edge e, or nil.
func (s *sweepStatus) node(e int) *sweepNode {
	return s.nodes[e]
}

// insert adds edge e at its position at the left endpoint of e.
func (s *sweepStatus) insert(e int) *sweepNode {
	n := s.newNode(e)
	if s.root == nil {
		s.root = n
		return n
	}

	m := s.root
	for {
		if s.g.compareEdges(e, m.edge) < 0 {
			if m.left == nil {
				m.left = n
				break
			}
			m = m.left
		} else {
			if m.right == nil {
				m.right = n
				break
			}
			m = m.right
		}
	}
	n.parent = m
	s.rebalance(m)
	return n
}

// remove removes edge e, if present.
func (s *sweepStatus) remove(e int) {
	n, ok := s.nodes[e]
	if !ok {
		return
	}
	delete(s.nodes, e)

	if n.left != nil && n.right != nil {
		// move the successor into this node and remove the successor instead
		o := n.right
		for o.left != nil {
			o = o.left
		}
		n.edge = o.edge
		s.nodes[n.edge] = n
		n = o
	}

	child := n.left
	if child == nil {
		child = n.right
	}
	if parent := n.parent; parent == nil {
		s.root = child
		if child != nil {
			child.parent = nil
		}
	} else {
		parent.swapChild(n, child)
		s.rebalance(parent)
	}
	s.returnNode(n)
}

// rekey replaces edge e by edge f at the same position.
func (s *sweepStatus) rekey(e, f int) {
	if e == f {
		return
	} else if n, ok := s.nodes[e]; ok {
		delete(s.nodes, e)
		n.edge = f
		s.nodes[f] = n
	}
}

// edges returns the edges from bottom to top.
func (s *sweepStatus) edges() []int {
	es := []int{}
	if s.root == nil {
		return es
	}
	n := s.root
	for n.left != nil {
		n = n.left
	}
	for ; n != nil; n = n.next() {
		es = append(es, n.edge)
	}
	return es
}

func (s *sweepStatus) String() string {
	sb := strings.Builder{}
	for i, e := range s.edges() {
		if i != 0 {
			sb.WriteString(" ")
		}
		l, r := s.g.endpoints(e)
		fmt.Fprintf(&sb, "%d(%v−%v)", e, l, r)
	}
	return sb.String()
}

////////////////////////////////////////////////////////////////

// windings returns the winding numbers left and right of every edge, indexed by the start vertex of the edge. The graph must be planar. The winding below an edge is the winding above the edge directly below it on the sweep line when it is inserted, so every edge is visited once.
func (g *graph) windings() ([]int, []int) {
	n := len(g.points)
	left, right := make([]int, n), make([]int, n)
	above := make([]int, n)

	q := g.sweepEvents()
	status := newSweepStatus(g)
	for 0 < q.Len() {
		ev := heap.Pop(q).(sweepEvent)
		e := ev.edge
		if !ev.left {
			status.remove(e)
			continue
		}

		below := 0
		if prev := status.insert(e).prev(); prev != nil {
			below = above[prev.edge]
		}
		if g.increasing(e) {
			above[e] = below + 1
			left[e], right[e] = below+1, below
		} else {
			above[e] = below - 1
			left[e], right[e] = below, below-1
		}
	}
	return left, right
}
