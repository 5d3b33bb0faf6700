package plane

import "math"

// Anything smaller than this in absolute value is treated as exactly zero when
// classifying a line as vertical or horizontal.
const Epsilon = 1e-9

// Looser tolerance for comparing results that went through a few floating
// point operations, e.g. checking that a point lies on a line.
const Tolerance = 1e-6

func nearZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Tolerance based equality. Use this instead of == on anything computed.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) Equal(other Point) bool {
	return equal(p.X, other.X) && equal(p.Y, other.Y)
}
