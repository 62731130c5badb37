// internal/browser/geometry/path.go
package geometry

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// DefaultCurveSegments is the number of chords used to flatten one curve or arc.
const DefaultCurveSegments = 64

// Path is flattened SVG path data. Every subpath is a polyline; closed
// subpaths already contain their closing point.
type Path struct {
	Subpaths [][]Point
}

// Length is the total length of all subpaths.
func (p *Path) Length() float64 {
	total := 0.0
	for _, sub := range p.Subpaths {
		total += PolylineLength(sub, false)
	}
	return total
}

var commandArgs = map[byte]int{
	'M': 2, 'Z': 0, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7,
}

// ParsePath parses SVG path data and flattens curves and arcs into
// segments chords each. A non-positive segments value uses DefaultCurveSegments.
func ParsePath(d string, segments int) (*Path, error) {
	if segments <= 0 {
		segments = DefaultCurveSegments
	}
	b := []byte(d)
	i := skipCommaWhitespace(b)
	if i >= len(b) {
		return &Path{}, nil
	}
	if b[i] != 'M' && b[i] != 'm' {
		return nil, fmt.Errorf("path data must start with a moveto command, got %q", b[i])
	}

	fb := &flattener{segments: segments}
	var f [7]float64
	cmd := byte(0)
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}

		repeat := true
		if cmd == 0 || cmd == 'z' || cmd == 'Z' || !isNumberStart(b[i]) {
			cmd = b[i]
			repeat = false
			i++
			i += skipCommaWhitespace(b[i:])
		}

		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		nargs, ok := commandArgs[upper]
		if !ok {
			return nil, fmt.Errorf("unknown path command %q at position %d", cmd, i)
		}
		for j := 0; j < nargs; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				if i < len(b) && (b[i] == '0' || b[i] == '1') {
					f[j] = float64(b[i] - '0')
					i++
				} else {
					return nil, fmt.Errorf("arc flags must be 0 or 1 in command %q at position %d", cmd, i+1)
				}
			} else {
				num, n := strconv.ParseFloat(b[i:])
				if n == 0 {
					if repeat && j == 0 {
						return nil, fmt.Errorf("unexpected character at position %d", i+1)
					}
					return nil, fmt.Errorf("command %q expects %d numbers at position %d", cmd, nargs, i+1)
				}
				f[j] = num
				i += n
			}
			i += skipCommaWhitespace(b[i:])
		}

		cmd = fb.apply(cmd, f)
	}
	return &Path{Subpaths: fb.done()}, nil
}

func isNumberStart(ch byte) bool {
	return (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' || ch == '+'
}

// flattener tracks pen state while path commands are applied.
type flattener struct {
	segments int
	subpaths [][]Point
	current  []Point
	start    Point
	pen      Point
	lastCtrl Point
	lastCmd  byte
}

// apply executes one command and returns the command implied for repeated
// coordinate sets (moveto repeats as lineto).
func (fb *flattener) apply(cmd byte, f [7]float64) byte {
	rel := cmd >= 'a' && cmd <= 'z'
	abs := func(x, y float64) Point {
		if rel {
			return Point{X: fb.pen.X + x, Y: fb.pen.Y + y}
		}
		return Point{X: x, Y: y}
	}

	next := cmd
	switch cmd {
	case 'M', 'm':
		fb.flush()
		fb.pen = abs(f[0], f[1])
		fb.start = fb.pen
		fb.current = []Point{fb.pen}
		next = 'L'
		if rel {
			next = 'l'
		}
	case 'Z', 'z':
		if len(fb.current) > 0 {
			fb.current = append(fb.current, fb.start)
		}
		fb.flush()
		fb.pen = fb.start
	case 'L', 'l':
		fb.lineTo(abs(f[0], f[1]))
	case 'H', 'h':
		x := f[0]
		if rel {
			x += fb.pen.X
		}
		fb.lineTo(Point{X: x, Y: fb.pen.Y})
	case 'V', 'v':
		y := f[0]
		if rel {
			y += fb.pen.Y
		}
		fb.lineTo(Point{X: fb.pen.X, Y: y})
	case 'C', 'c':
		c1, c2, end := abs(f[0], f[1]), abs(f[2], f[3]), abs(f[4], f[5])
		fb.cubicTo(c1, c2, end)
	case 'S', 's':
		c1 := fb.pen
		if isCubic(fb.lastCmd) {
			c1 = fb.pen.Mul(2).Sub(fb.lastCtrl)
		}
		c2, end := abs(f[0], f[1]), abs(f[2], f[3])
		fb.cubicTo(c1, c2, end)
	case 'Q', 'q':
		c, end := abs(f[0], f[1]), abs(f[2], f[3])
		fb.quadTo(c, end)
	case 'T', 't':
		c := fb.pen
		if isQuad(fb.lastCmd) {
			c = fb.pen.Mul(2).Sub(fb.lastCtrl)
		}
		fb.quadTo(c, abs(f[0], f[1]))
	case 'A', 'a':
		fb.arcTo(f[0], f[1], f[2], f[3] == 1, f[4] == 1, abs(f[5], f[6]))
	}
	fb.lastCmd = cmd
	return next
}

func isCubic(cmd byte) bool {
	return cmd == 'C' || cmd == 'c' || cmd == 'S' || cmd == 's'
}

func isQuad(cmd byte) bool {
	return cmd == 'Q' || cmd == 'q' || cmd == 'T' || cmd == 't'
}

func (fb *flattener) lineTo(p Point) {
	if len(fb.current) == 0 {
		// Drawing after a closepath continues from the subpath start.
		fb.current = []Point{fb.pen}
	}
	fb.current = append(fb.current, p)
	fb.pen = p
}

func (fb *flattener) cubicTo(c1, c2, end Point) {
	p0 := fb.pen
	for k := 1; k <= fb.segments; k++ {
		t := float64(k) / float64(fb.segments)
		mt := 1 - t
		x := mt*mt*mt*p0.X + 3*mt*mt*t*c1.X + 3*mt*t*t*c2.X + t*t*t*end.X
		y := mt*mt*mt*p0.Y + 3*mt*mt*t*c1.Y + 3*mt*t*t*c2.Y + t*t*t*end.Y
		fb.lineTo(Point{X: x, Y: y})
	}
	fb.pen = end
	fb.lastCtrl = c2
}

func (fb *flattener) quadTo(c, end Point) {
	p0 := fb.pen
	for k := 1; k <= fb.segments; k++ {
		t := float64(k) / float64(fb.segments)
		mt := 1 - t
		x := mt*mt*p0.X + 2*mt*t*c.X + t*t*end.X
		y := mt*mt*p0.Y + 2*mt*t*c.Y + t*t*end.Y
		fb.lineTo(Point{X: x, Y: y})
	}
	fb.pen = end
	fb.lastCtrl = c
}

// arcTo converts the endpoint parameterization to center form and samples it.
func (fb *flattener) arcTo(rx, ry, phiDeg float64, large, sweep bool, end Point) {
	p0 := fb.pen
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 || (p0.X == end.X && p0.Y == end.Y) {
		fb.lineTo(end)
		return
	}

	phi := phiDeg * math.Pi / 180
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx, dy := (p0.X-end.X)/2, (p0.Y-end.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+end.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+end.Y)/2

	theta1 := vectorAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vectorAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	for k := 1; k <= fb.segments; k++ {
		theta := theta1 + delta*float64(k)/float64(fb.segments)
		ct, st := math.Cos(theta), math.Sin(theta)
		fb.lineTo(Point{
			X: cosPhi*rx*ct - sinPhi*ry*st + cx,
			Y: sinPhi*rx*ct + cosPhi*ry*st + cy,
		})
	}
	fb.pen = end
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

func (fb *flattener) flush() {
	if len(fb.current) > 1 {
		fb.subpaths = append(fb.subpaths, fb.current)
	}
	fb.current = nil
}

func (fb *flattener) done() [][]Point {
	fb.flush()
	return fb.subpaths
}
