package pathbool

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	return f, i + n
}

// svgPathParser accumulates subpaths while scanning an SVG path string.
type svgPathParser struct {
	paths   []Path
	cur     *PathBuilder
	start   Point
	started bool
}

func (q *svgPathParser) pos() Point {
	if q.cur == nil {
		return Point{}
	}
	return q.cur.last()
}

func (q *svgPathParser) moveTo(p Point) {
	q.flush()
	q.cur = BuildPath(p)
	q.start = p
	q.started = true
}

func (q *svgPathParser) flush() {
	if q.cur != nil && 0 < len(q.cur.p.Points) {
		q.paths = append(q.paths, q.cur.Close().Build())
	}
	q.cur = nil
}

// MustParseSVGPath parses an SVG path data string, panicking on bad input.
func MustParseSVGPath(s string) []Path {
	ps, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return ps
}

// ParseSVGPath parses an SVG path data string into one path per subpath.
// Subpaths are implicitly closed whether or not they end in z. Elliptical arc
// segments (A/a) are not representable in a cubic-only path and are replaced
// by their chord.
func ParseSVGPath(s string) ([]Path, error) {
	path := []byte(s)
	if len(path) == 0 {
		return nil, nil
	}

	i := skipCommaWhitespace(path)
	if len(path) <= i || path[i] != 'M' && path[i] != 'm' {
		return nil, fmt.Errorf("bad path: must start with moveto command")
	}

	num := func() float64 {
		if i < 0 {
			return 0.0
		}
		f, n := parseNum(path[i:])
		if n == 0 {
			i = -1 // signal error, loop terminates
			return 0.0
		}
		i += n
		return f
	}

	q := &svgPathParser{}
	var prevCmd byte
	var cp Point // last control point, for smooth commands
	for 0 <= i && i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] && path[i] <= 'z' {
			cmd = path[i]
			i++
		}
		if !q.started && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("bad path: must start with moveto command")
		}

		pos := q.pos()
		switch cmd {
		case 'M', 'm':
			p := Point{num(), num()}
			if cmd == 'm' {
				p = pos.Add(p)
			}
			q.moveTo(p)
			// subsequent coordinates are implicit linetos
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z', 'z':
			// the current point moves back to the subpath start, further
			// drawing continues from there as a new subpath
			q.flush()
			q.cur = BuildPath(q.start)
		case 'L', 'l':
			p := Point{num(), num()}
			if cmd == 'l' {
				p = pos.Add(p)
			}
			q.cur.LineTo(p)
		case 'H', 'h':
			x := num()
			if cmd == 'h' {
				x += pos.X
			}
			q.cur.LineTo(Point{x, pos.Y})
		case 'V', 'v':
			y := num()
			if cmd == 'v' {
				y += pos.Y
			}
			q.cur.LineTo(Point{pos.X, y})
		case 'C', 'c':
			cp1 := Point{num(), num()}
			cp2 := Point{num(), num()}
			p := Point{num(), num()}
			if cmd == 'c' {
				cp1 = pos.Add(cp1)
				cp2 = pos.Add(cp2)
				p = pos.Add(p)
			}
			q.cur.CurveTo(cp1, cp2, p)
			cp = cp2
		case 'S', 's':
			cp2 := Point{num(), num()}
			p := Point{num(), num()}
			if cmd == 's' {
				cp2 = pos.Add(cp2)
				p = pos.Add(p)
			}
			cp1 := pos
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = pos.Mul(2.0).Sub(cp)
			}
			q.cur.CurveTo(cp1, cp2, p)
			cp = cp2
		case 'Q', 'q':
			qp := Point{num(), num()}
			p := Point{num(), num()}
			if cmd == 'q' {
				qp = pos.Add(qp)
				p = pos.Add(p)
			}
			quadTo(q.cur, pos, qp, p)
			cp = qp
		case 'T', 't':
			p := Point{num(), num()}
			if cmd == 't' {
				p = pos.Add(p)
			}
			qp := pos
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				qp = pos.Mul(2.0).Sub(cp)
			}
			quadTo(q.cur, pos, qp, p)
			cp = qp
		case 'A', 'a':
			num() // rx
			num() // ry
			num() // rotation
			num() // large-arc flag
			num() // sweep flag
			p := Point{num(), num()}
			if cmd == 'a' {
				p = pos.Add(p)
			}
			q.cur.LineTo(p)
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		if i < 0 {
			return nil, fmt.Errorf("bad path: expected number")
		}
		prevCmd = cmd
	}
	q.flush()
	return q.paths, nil
}

// quadTo appends a quadratic segment promoted exactly to a cubic.
func quadTo(b *PathBuilder, start, qp, end Point) {
	cp1 := start.Interpolate(qp, 2.0/3.0)
	cp2 := end.Interpolate(qp, 2.0/3.0)
	b.CurveTo(cp1, cp2, end)
}

// String returns the path as SVG path data with absolute cubic commands.
func (p Path) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "M%g %g", p.Start.X, p.Start.Y)
	for _, pt := range p.Points {
		fmt.Fprintf(&sb, "C%g %g %g %g %g %g", pt.CP1.X, pt.CP1.Y, pt.CP2.X, pt.CP2.Y, pt.End.X, pt.End.Y)
	}
	sb.WriteByte('z')
	return sb.String()
}
