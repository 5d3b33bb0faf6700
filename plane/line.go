package plane

import "math"

// The line through two points. If the points share an x value (within
// Epsilon), the result is vertical. Coincident points are accepted and also
// produce a vertical line through them.
func LineEquationFrom(p1, p2 Point) LineEquation {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if nearZero(dx) {
		return LineEquation{Vertical: true, VerticalX: p1.X, M: 0, C: p1.Y}
	}

	m := dy / dx
	return LineEquation{M: m, C: p1.Y - m*p1.X}
}

// The line through p which is perpendicular to base.
func PerpendicularLine(base LineEquation, p Point) LineEquation {
	switch {
	case base.Vertical:
		// Perpendicular to a vertical line is horizontal
		return LineEquation{M: 0, C: p.Y}
	case nearZero(base.M):
		// Perpendicular to a horizontal line is vertical
		return LineEquation{Vertical: true, VerticalX: p.X}
	default:
		m := -1 / base.M
		return LineEquation{M: m, C: p.Y - m*p.X}
	}
}

func (l LineEquation) IsHorizontal() bool {
	return !l.Vertical && nearZero(l.M)
}

// Solve the line for y at the given x. A vertical line has no single y for any
// x, so this gives NaN.
func (l LineEquation) YAt(x float64) float64 {
	if l.Vertical {
		return math.NaN()
	}
	return l.M*x + l.C
}

// Does the point lie on the line, within an absolute tolerance? For sloped
// lines the tolerance applies to the vertical distance, not the perpendicular
// one.
func (l LineEquation) Contains(p Point, tolerance float64) bool {
	if l.Vertical {
		return math.Abs(p.X-l.VerticalX) <= tolerance
	}
	return math.Abs(p.Y-l.YAt(p.X)) <= tolerance
}
