package vpath

// PathScanner iterates over the line segments of a path in order, including the closing segments of closed subpaths.
type PathScanner struct {
	subpaths []SubPath
	i, j     int
}

// Scanner returns a scanner over the line segments of the path.
func (p *Path) Scanner() *PathScanner {
	return &PathScanner{
		subpaths: p.subpaths,
		j:        -1,
	}
}

// Scan advances to the next segment and returns false when there are none left.
func (s *PathScanner) Scan() bool {
	s.j++
	for s.i < len(s.subpaths) {
		if s.j < s.subpaths[s.i].numSegments() {
			return true
		}
		s.i++
		s.j = 0
	}
	return false
}

// SubPath returns the index of the current subpath.
func (s *PathScanner) SubPath() int {
	return s.i
}

// Closing returns true if the current segment closes its subpath.
func (s *PathScanner) Closing() bool {
	sp := s.subpaths[s.i]
	return sp.Closed && s.j == len(sp.Points)-1
}

func (s *PathScanner) Start() Point {
	start, _ := s.subpaths[s.i].segment(s.j)
	return start
}

func (s *PathScanner) End() Point {
	_, end := s.subpaths[s.i].segment(s.j)
	return end
}
