// internal/browser/geometry/point.go
package geometry

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// Point is a position in user space.
type Point struct {
	X float64
	Y float64
}

// Add performs vector addition.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub performs vector subtraction.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Mul scales both components.
func (p Point) Mul(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Dist calculates the Euclidean distance between p and o. The horizontal
// delta uses both x coordinates and the vertical delta both y coordinates.
func (p Point) Dist(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// PolylineLength sums the distances between consecutive points. When closed
// is set the edge from the last point back to the first is included.
func PolylineLength(points []Point, closed bool) float64 {
	if len(points) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += points[i].Dist(points[i+1])
	}
	if closed {
		total += points[len(points)-1].Dist(points[0])
	}
	return total
}

// ParsePoints parses the value of a points attribute ("0,0 4,0 4,3").
// Numbers may be separated by commas and/or whitespace. An odd count of
// numbers is an error, matching how browsers reject the attribute.
func ParsePoints(s string) ([]Point, error) {
	nums, err := parseNumberList([]byte(s))
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("points list has an odd number of coordinates (%d)", len(nums))
	}
	points := make([]Point, 0, len(nums)/2)
	for i := 0; i < len(nums); i += 2 {
		points = append(points, Point{X: nums[i], Y: nums[i+1]})
	}
	return points, nil
}

func parseNumberList(b []byte) ([]float64, error) {
	var nums []float64
	i := skipCommaWhitespace(b)
	for i < len(b) {
		num, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return nil, fmt.Errorf("unexpected character %q at position %d", b[i], i+1)
		}
		nums = append(nums, num)
		i += n
		i += skipCommaWhitespace(b[i:])
	}
	return nums, nil
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t' || b[i] == '\f') {
		i++
	}
	return i
}
