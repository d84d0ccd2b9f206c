package vpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t' || path[i] == '\f') {
		i++
	}
	return i
}

// parseNum parses a number after optional comma or whitespace, it returns the number of bytes consumed or zero on failure.
func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// parseFlag parses an arc flag, which is a single 0 or 1 that need not be followed by a separator.
func parseFlag(path []byte) (bool, int) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return path[i] == '1', i + 1
	}
	return false, 0
}

func isCommandLetter(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z'
}

var cmdLens = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

// ParseCommands parses SVG path data into commands, see https://www.w3.org/TR/SVG/paths.html#PathDataBNF.
func ParseCommands(s string) (Commands, error) {
	path := []byte(s)
	c := Commands{}
	i := skipCommaWhitespace(path)
	if i == len(path) {
		return c, nil
	} else if !isCommandLetter(path[i]) {
		return c, fmt.Errorf("bad path: path should start with command")
	}

	var cmd byte
	f := [7]float64{}
	for i < len(path) {
		start := i
		if isCommandLetter(path[i]) {
			cmd = path[i]
			i++
		} else if cmdLens[cmd&^0x20] == 0 {
			return c, fmt.Errorf("bad path: unknown command '%c' at position %d", path[i], start+1)
		} else if cmd == 'M' {
			cmd = 'L' // implicit lineto after moveto
		} else if cmd == 'm' {
			cmd = 'l'
		}

		upper := cmd &^ 0x20
		n, ok := cmdLens[upper]
		if !ok {
			return c, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, start+1)
		}
		for j := 0; j < n; j++ {
			var m int
			if upper == 'A' && (j == 3 || j == 4) {
				var flag bool
				flag, m = parseFlag(path[i:])
				if flag {
					f[j] = 1.0
				} else {
					f[j] = 0.0
				}
			} else {
				f[j], m = parseNum(path[i:])
			}
			if m == 0 {
				return c, fmt.Errorf("bad path: %d numbers should follow command '%c' at position %d", n, cmd, start+1)
			}
			i += m
		}

		c.Relative = cmd != upper
		switch upper {
		case 'M':
			c.MoveTo(f[0], f[1])
		case 'L':
			c.LineTo(f[0], f[1])
		case 'H':
			c.HorizontalTo(f[0])
		case 'V':
			c.VerticalTo(f[0])
		case 'C':
			c.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
		case 'S':
			c.SmoothCubeTo(f[0], f[1], f[2], f[3])
		case 'Q':
			c.QuadTo(f[0], f[1], f[2], f[3])
		case 'T':
			c.SmoothQuadTo(f[0], f[1])
		case 'A':
			c.ArcTo(f[0], f[1], f[2], f[3] == 1.0, f[4] == 1.0, f[5], f[6])
		case 'Z':
			c.Close()
		}
		i += skipCommaWhitespace(path[i:])
	}
	c.Relative = false
	return c, nil
}

// MustParseCommands parses SVG path data and panics on error.
func MustParseCommands(s string) Commands {
	c, err := ParseCommands(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseSVGPath parses SVG path data into a new Path.
func ParseSVGPath(s string) (*Path, error) {
	c, err := ParseCommands(s)
	if err != nil {
		return nil, err
	}
	p := &Path{}
	p.LoadCommands(c)
	return p, nil
}

// MustParseSVGPath parses SVG path data into a new Path and panics on error.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}
