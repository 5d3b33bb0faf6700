package plane

import "fmt"

type Point struct {
	X float64
	Y float64
}

// A line in slope-intercept form, or a vertical line. Only one of the two forms
// is meaningful at a time, selected by Vertical. For a vertical line, M is
// always zero and C should be ignored: it's whatever the producing operation
// happened to leave there.
type LineEquation struct {
	Vertical bool
	// y = M*x + C
	M, C float64
	// x = VerticalX
	VerticalX float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (l LineEquation) String() string {
	if l.Vertical {
		return fmt.Sprintf("x = %g", l.VerticalX)
	}
	if nearZero(l.M) {
		return fmt.Sprintf("y = %g", l.C)
	}
	if l.C < 0 {
		return fmt.Sprintf("y = %gx - %g", l.M, -l.C)
	}
	return fmt.Sprintf("y = %gx + %g", l.M, l.C)
}
