package plane

import (
	"math"

	"github.com/pkg/errors"
)

// None of the geometry in this package fails. Degenerate inputs are resolved
// with Epsilon and NaN just propagates. These checks exist for callers who would
// rather hear about it.

var (
	ErrNonFinite        = errors.New("coordinate is not finite")
	ErrCoincidentPoints = errors.New("points do not define a line")
)

func CheckFinite(points ...Point) error {
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return errors.Wrapf(ErrNonFinite, "point %d %v", i, p)
		}
	}
	return nil
}

// Two points are distinct if they differ by at least Epsilon on either axis.
// This is the same threshold the line operations use, so distinct points never
// hit the coincident tie break in PerpendicularFoot.
func CheckDistinct(p1, p2 Point) error {
	if nearZero(p2.X-p1.X) && nearZero(p2.Y-p1.Y) {
		return errors.Wrapf(ErrCoincidentPoints, "%v and %v", p1, p2)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
