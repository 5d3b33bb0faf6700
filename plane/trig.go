package plane

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return r2.Norm(r2.Vec{X: x2 - x1, Y: y2 - y1})
}

// Angle of the vector from (x1, y1) to (x2, y2) in degrees, counterclockwise
// from the positive x axis. The range is (-180, 180].
func Angle(x1, y1, x2, y2 float64) float64 {
	degrees := RadiansToDegrees(math.Atan2(y2-y1, x2-x1))
	// atan2 gives -pi for a negative zero dy pointing left. Fold it onto the
	// other end so the range stays half open.
	if degrees <= -180 {
		return -degrees
	}
	return degrees
}

func PointDistance(a, b Point) float64 {
	return Distance(a.X, a.Y, b.X, b.Y)
}

func PointAngle(a, b Point) float64 {
	return Angle(a.X, a.Y, b.X, b.Y)
}
