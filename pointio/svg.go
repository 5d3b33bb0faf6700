package pointio

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/geomath/plane"
	"github.com/pkg/errors"
)

// This is not a full SVG reader. It walks the document and collects points from
// the handful of elements that obviously carry them, in document order:
//
//   - polygon and polyline: every vertex
//   - line: both endpoints
//   - circle: the center
//
// Transforms, paths and units are ignored. Coordinates are taken as written, so
// Y points down, as it does in SVG.
func ReadSVGPoints(r io.Reader) ([]plane.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []plane.Point{}
	if err := collectPoints(root, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func collectPoints(el *svgparser.Element, points *[]plane.Point) error {
	switch el.Name {
	case "polygon", "polyline":
		fields := splitCoordinates(el.Attributes["points"])
		if len(fields)%2 != 0 {
			return errors.Errorf("%s has an odd number of coordinates", el.Name)
		}
		coords, err := parseFloats(fields)
		if err != nil {
			return errors.Wrap(err, el.Name)
		}
		for i := 0; i < len(coords); i += 2 {
			*points = append(*points, plane.Point{X: coords[i], Y: coords[i+1]})
		}
	case "line":
		coords, err := attributeFloats(el, "x1", "y1", "x2", "y2")
		if err != nil {
			return err
		}
		*points = append(*points,
			plane.Point{X: coords[0], Y: coords[1]},
			plane.Point{X: coords[2], Y: coords[3]},
		)
	case "circle":
		coords, err := attributeFloats(el, "cx", "cy")
		if err != nil {
			return err
		}
		*points = append(*points, plane.Point{X: coords[0], Y: coords[1]})
	}

	for _, child := range el.Children {
		if err := collectPoints(child, points); err != nil {
			return err
		}
	}
	return nil
}

// Missing attributes default to zero, like SVG does.
func attributeFloats(el *svgparser.Element, names ...string) ([]float64, error) {
	fields := make([]string, len(names))
	for i, name := range names {
		value, ok := el.Attributes[name]
		if !ok || value == "" {
			value = "0"
		}
		fields[i] = value
	}
	coords, err := parseFloats(fields)
	if err != nil {
		return nil, errors.Wrap(err, el.Name)
	}
	return coords, nil
}
