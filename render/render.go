// Package render draws geometry to images for debugging. The output is meant
// for eyeballing results, either as a PNG on disk or printed inline in the
// terminal (iTerm only).
package render

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geomath/plane"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels, so that lines running off to infinity
// are obvious
const Padding = 50

const pointRadius = 3

// Longest side of a drawing, in pixels. Scenes that would come out bigger are
// scaled down to fit.
const MaxSide = 4096

var ErrInvalidScale = errors.New("scale must be positive")

// A perpendicular dropped from a point onto a line
type Foot struct {
	From, To plane.Point
}

// Everything to draw. Lines are infinite and are clipped to the bounds of
// everything else, so a scene with only lines draws them around the origin.
type Scene struct {
	Points []plane.Point
	Lines  []plane.LineEquation
	Feet   []Foot
	Shapes [][]plane.Point
}

func (s *Scene) AddPoints(points ...plane.Point) {
	s.Points = append(s.Points, points...)
}

func (s *Scene) AddLine(line plane.LineEquation) {
	s.Lines = append(s.Lines, line)
}

func (s *Scene) AddFoot(from, to plane.Point) {
	s.Feet = append(s.Feet, Foot{from, to})
}

// Shapes are closed polygons, drawn under everything else
func (s *Scene) AddShape(points []plane.Point) {
	s.Shapes = append(s.Shapes, points)
}

// Bounding box of all the finite geometry. NaN and infinite coordinates are
// skipped. The box is never empty in either dimension.
func (s *Scene) Bounds() (min, max plane.Point) {
	min = plane.Point{X: math.Inf(1), Y: math.Inf(1)}
	max = plane.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	include := func(p plane.Point) {
		if !isFinitePoint(p) {
			return
		}
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, p := range s.Points {
		include(p)
	}
	for _, foot := range s.Feet {
		include(foot.From)
		include(foot.To)
	}
	for _, shape := range s.Shapes {
		for _, p := range shape {
			include(p)
		}
	}

	if math.IsInf(min.X, 1) || !isFinite(max.X-min.X) || !isFinite(max.Y-min.Y) {
		// Nothing finite to draw, or the extent itself overflows
		min = plane.Point{X: -1, Y: -1}
		max = plane.Point{X: 1, Y: 1}
	}
	if max.X-min.X < 1 {
		min.X -= 0.5
		max.X += 0.5
	}
	if max.Y-min.Y < 1 {
		min.Y -= 0.5
		max.Y += 0.5
	}
	return min, max
}

// Render the scene with the given number of pixels per unit. The origin is at
// the bottom left, as it is in the plane.
//
// If the drawing would be more than MaxSide pixels on a side, the scale is
// reduced until it fits. A scale that isn't positive is treated the same way,
// as if it were as large as possible. Anything with a NaN or infinite
// coordinate is left out.
func (s *Scene) Draw(scale float64) image.Image {
	proj := s.project(scale)
	min, max := proj.min, proj.max
	toDevice := proj.toDevice

	c := gg.NewContext(proj.width, proj.height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(proj.width), float64(proj.height))
	c.Fill()

	c.SetLineWidth(2)
	for _, shape := range s.Shapes {
		if len(shape) == 0 || !allFinite(shape) {
			continue
		}
		for i, p := range shape {
			d := toDevice(p)
			if i == 0 {
				c.MoveTo(d.X, d.Y)
			} else {
				c.LineTo(d.X, d.Y)
			}
		}
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Extend lines past the padding so they visibly run off the edge
	reach := float64(Padding) / proj.scale
	lo := plane.Point{X: min.X - reach, Y: min.Y - reach}
	hi := plane.Point{X: max.X + reach, Y: max.Y + reach}
	if !isFinitePoint(lo) || !isFinitePoint(hi) {
		lo, hi = min, max
	}
	c.SetRGB(0.8, 0.8, 0.8)
	for _, line := range s.Lines {
		if !isFiniteLine(line) {
			continue
		}
		a, b, ok := clipLine(line, lo, hi)
		if !ok {
			continue
		}
		da, db := toDevice(a), toDevice(b)
		c.DrawLine(da.X, da.Y, db.X, db.Y)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	c.SetDash(6, 4)
	for _, foot := range s.Feet {
		if !isFinitePoint(foot.From) || !isFinitePoint(foot.To) {
			continue
		}
		from, to := toDevice(foot.From), toDevice(foot.To)
		c.DrawLine(from.X, from.Y, to.X, to.Y)
		c.Stroke()
	}
	c.SetDash()

	// Points last, on whole pixels so they stay crisp
	c.SetRGB(1, 0, 0)
	for _, p := range s.Points {
		if !isFinitePoint(p) {
			continue
		}
		px := plane.SnapToPixel(toDevice(p))
		c.DrawCircle(float64(px.X), float64(px.Y), pointRadius)
		c.Fill()
	}

	return c.Image()
}

// Pixel position of a plane point in the image Draw would produce at this
// scale
func (s *Scene) PixelAt(p plane.Point, scale float64) image.Point {
	return plane.SnapToPixel(s.project(scale).toDevice(p))
}

type projection struct {
	min, max      plane.Point
	scale         float64
	width, height int
}

func (s *Scene) project(scale float64) projection {
	min, max := s.Bounds()
	extent := math.Max(max.X-min.X, max.Y-min.Y)
	// Bounds guarantees extent is finite and at least 1
	fit := float64(MaxSide-Padding*2) / extent
	if !(scale > 0) || scale > fit {
		scale = fit
	}
	return projection{
		min:    min,
		max:    max,
		scale:  scale,
		width:  int(scale*(max.X-min.X)) + Padding*2,
		height: int(scale*(max.Y-min.Y)) + Padding*2,
	}
}

// Map plane coordinates to pixels, flipping Y
func (pr projection) toDevice(p plane.Point) plane.Point {
	return plane.Point{
		X: (p.X-pr.min.X)*pr.scale + Padding,
		Y: float64(pr.height) - ((p.Y-pr.min.Y)*pr.scale + Padding),
	}
}

// Unlike Draw, this refuses a scale that isn't positive.
func (s *Scene) SavePNG(path string, scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return errors.Wrapf(ErrInvalidScale, "scale %g", scale)
	}
	if err := gg.SavePNG(path, s.Draw(scale)); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Print a PNG file inline in the terminal
func Show(path string, w io.Writer) error {
	return errors.Wrapf(imgcat.CatFile(path, w), "showing %s", path)
}

// The part of a line inside the box from lo to hi, if any
func clipLine(line plane.LineEquation, lo, hi plane.Point) (a, b plane.Point, ok bool) {
	if line.Vertical {
		if line.VerticalX < lo.X || line.VerticalX > hi.X {
			return a, b, false
		}
		return plane.Point{X: line.VerticalX, Y: lo.Y}, plane.Point{X: line.VerticalX, Y: hi.Y}, true
	}

	x0, x1 := lo.X, hi.X
	if line.M == 0 {
		if line.C < lo.Y || line.C > hi.Y {
			return a, b, false
		}
	} else {
		// Where the line crosses the bottom and top of the box
		xa := (lo.Y - line.C) / line.M
		xb := (hi.Y - line.C) / line.M
		x0 = math.Max(x0, math.Min(xa, xb))
		x1 = math.Min(x1, math.Max(xa, xb))
	}
	if !(x0 <= x1) {
		return a, b, false
	}
	return plane.Point{X: x0, Y: line.YAt(x0)}, plane.Point{X: x1, Y: line.YAt(x1)}, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFinitePoint(p plane.Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func allFinite(points []plane.Point) bool {
	for _, p := range points {
		if !isFinitePoint(p) {
			return false
		}
	}
	return true
}

func isFiniteLine(line plane.LineEquation) bool {
	if line.Vertical {
		return isFinite(line.VerticalX)
	}
	return isFinite(line.M) && isFinite(line.C)
}
