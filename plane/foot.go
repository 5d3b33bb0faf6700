package plane

// The foot of the perpendicular dropped from p3 onto the line through p1 and
// p2, i.e. the point on that line closest to p3.
//
// If p1 and p2 coincide, there is no line. In that case the vertical branch
// wins, since it is checked first, and the result is (p1.X, p3.Y). Callers
// that care should check with CheckDistinct first.
func PerpendicularFoot(p1, p2, p3 Point) Point {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if nearZero(dx) {
		return Point{p1.X, p3.Y}
	}
	if nearZero(dy) {
		return Point{p3.X, p1.Y}
	}

	// Intersect y - y1 = m(x - x1) with y - y3 = -1/m(x - x3) and solve for x
	m := dy / dx
	x := (m*p3.Y + p3.X - m*p1.Y + m*m*p1.X) / (m*m + 1)
	return Point{x, m*(x-p1.X) + p1.Y}
}
