package plane

import "gonum.org/v1/gonum/spatial/r2"

// Rotate points counterclockwise about origin. Despite the name, any number of
// points is fine. The input is left alone, and a new slice is returned in the
// same order.
//
// Screen coordinates with Y pointing down will see this as a clockwise
// rotation. That's the caller's problem.
func RotateTriangle(points []Point, origin Point, angleDegrees float64) []Point {
	rotation := r2.NewRotation(DegreesToRadians(angleDegrees), origin.vec())
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = pointFromVec(rotation.Rotate(p.vec()))
	}
	return result
}

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point {
	return Point{v.X, v.Y}
}
