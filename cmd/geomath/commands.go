package main

import (
	"github.com/osuushi/geomath"
	"github.com/osuushi/geomath/pointio"
	"github.com/osuushi/geomath/render"
	"github.com/pkg/errors"
)

type command struct {
	name string
	help string
	// Exact number of points required, or -1 for any number
	pointCount int
	run        func(opts options, points []geomath.Point, out *output, scene *render.Scene) error
}

var commands = []command{
	{"line", "Line through two points.", 2, runLine},
	{"perp", "Line through the third point, perpendicular to the line through the first two.", 3, runPerp},
	{"foot", "Foot of the perpendicular from the third point onto the line through the first two.", 3, runFoot},
	{"rotate", "Rotate points about an origin.", -1, runRotate},
	{"distance", "Distance between two points.", 2, runDistance},
	{"angle", "Angle in degrees of the vector from the first point to the second.", 2, runAngle},
}

func commandByName(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func lineThrough(opts options, p1, p2 geomath.Point) (geomath.LineEquation, error) {
	if opts.strict {
		return geomath.LineEquationStrict(p1, p2)
	}
	return geomath.LineEquationFrom(p1, p2), nil
}

func runLine(opts options, points []geomath.Point, out *output, scene *render.Scene) error {
	line, err := lineThrough(opts, points[0], points[1])
	if err != nil {
		return err
	}
	out.result("line", line)
	scene.AddLine(line)
	scene.AddPoints(points...)
	return nil
}

func runPerp(opts options, points []geomath.Point, out *output, scene *render.Scene) error {
	base, err := lineThrough(opts, points[0], points[1])
	if err != nil {
		return err
	}
	perp := geomath.PerpendicularLine(base, points[2])
	out.result("base", base)
	out.result("perpendicular", perp)
	scene.AddLine(base)
	scene.AddLine(perp)
	scene.AddPoints(points...)
	return nil
}

func runFoot(opts options, points []geomath.Point, out *output, scene *render.Scene) error {
	p1, p2, p3 := points[0], points[1], points[2]
	var foot geomath.Point
	if opts.strict {
		var err error
		if foot, err = geomath.PerpendicularFootStrict(p1, p2, p3); err != nil {
			return err
		}
	} else {
		foot = geomath.PerpendicularFoot(p1, p2, p3)
	}
	out.result("foot", foot)
	out.result("distance", geomath.Distance(p3.X, p3.Y, foot.X, foot.Y))
	scene.AddLine(geomath.LineEquationFrom(p1, p2))
	scene.AddFoot(p3, foot)
	scene.AddPoints(p1, p2, p3, foot)
	return nil
}

// Prints the rotated points one per line, in the same format as the input, so
// the output can be fed back in.
func runRotate(opts options, points []geomath.Point, out *output, scene *render.Scene) error {
	origin, err := pointio.ParsePoint(opts.origin)
	if err != nil {
		return errors.Wrap(err, "origin")
	}
	if opts.strict {
		if err := geomath.CheckFinite(origin); err != nil {
			return errors.Wrap(err, "origin")
		}
	}

	rotated := geomath.RotateTriangle(points, origin, opts.angle)
	for _, p := range rotated {
		out.point(p)
	}
	scene.AddShape(points)
	scene.AddShape(rotated)
	scene.AddPoints(origin)
	return nil
}

func runDistance(opts options, points []geomath.Point, out *output, scene *render.Scene) error {
	a, b := points[0], points[1]
	out.result("distance", geomath.Distance(a.X, a.Y, b.X, b.Y))
	scene.AddShape(points)
	scene.AddPoints(points...)
	return nil
}

func runAngle(opts options, points []geomath.Point, out *output, scene *render.Scene) error {
	a, b := points[0], points[1]
	degrees := geomath.Angle(a.X, a.Y, b.X, b.Y)
	out.result("angle", degrees)
	out.result("radians", geomath.DegreesToRadians(degrees))
	scene.AddShape(points)
	scene.AddPoints(points...)
	return nil
}
