// Small, stateless 2D analytic geometry for Go.
//
// This package finds the line through two points, perpendicular lines and the
// foot of a perpendicular, rotates points about an origin, and converts between
// angles, vectors and distances. Every function is pure, so it's all safe to
// call from any number of goroutines.
//
// Nothing here fails. Near-degenerate input (a vertical segment, coincident
// points) is resolved with a fixed Epsilon, and NaN or Inf propagate the way
// floating point always does. If you'd rather be told about bad input, use the
// Strict variants.
package geomath

import "github.com/osuushi/geomath/plane"

type Point = plane.Point
type LineEquation = plane.LineEquation

const Epsilon = plane.Epsilon

var (
	ErrNonFinite        = plane.ErrNonFinite
	ErrCoincidentPoints = plane.ErrCoincidentPoints
)

// The line through p1 and p2. Points sharing an x value give a vertical line.
func LineEquationFrom(p1, p2 Point) LineEquation {
	return plane.LineEquationFrom(p1, p2)
}

// The line through p perpendicular to base.
func PerpendicularLine(base LineEquation, p Point) LineEquation {
	return plane.PerpendicularLine(base, p)
}

// The point on the line through p1 and p2 closest to p3.
func PerpendicularFoot(p1, p2, p3 Point) Point {
	return plane.PerpendicularFoot(p1, p2, p3)
}

// Rotate any number of points counterclockwise about origin, returning new
// points in the same order.
func RotateTriangle(points []Point, origin Point, angleDegrees float64) []Point {
	return plane.RotateTriangle(points, origin, angleDegrees)
}

func DegreesToRadians(degrees float64) float64 {
	return plane.DegreesToRadians(degrees)
}

func RadiansToDegrees(radians float64) float64 {
	return plane.RadiansToDegrees(radians)
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return plane.Distance(x1, y1, x2, y2)
}

// Angle of the vector from (x1, y1) to (x2, y2), in degrees in (-180, 180].
func Angle(x1, y1, x2, y2 float64) float64 {
	return plane.Angle(x1, y1, x2, y2)
}

// Like LineEquationFrom, but fails on coincident or non-finite points instead
// of quietly producing a vertical line.
func LineEquationStrict(p1, p2 Point) (LineEquation, error) {
	if err := checkSegment(p1, p2); err != nil {
		return LineEquation{}, err
	}
	return plane.LineEquationFrom(p1, p2), nil
}

// Like PerpendicularFoot, but fails when p1 and p2 don't define a line, or when
// any coordinate is not finite.
func PerpendicularFootStrict(p1, p2, p3 Point) (Point, error) {
	if err := plane.CheckFinite(p1, p2, p3); err != nil {
		return Point{}, err
	}
	if err := plane.CheckDistinct(p1, p2); err != nil {
		return Point{}, err
	}
	return plane.PerpendicularFoot(p1, p2, p3), nil
}

// Fails if any coordinate is NaN or infinite.
func CheckFinite(points ...Point) error {
	return plane.CheckFinite(points...)
}

func checkSegment(p1, p2 Point) error {
	if err := plane.CheckFinite(p1, p2); err != nil {
		return err
	}
	return plane.CheckDistinct(p1, p2)
}
