package plane

import (
	"image"
	"math"
)

// Snap a point to the nearest integer pixel, rounding halves away from zero.
func SnapToPixel(p Point) image.Point {
	return image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}
