// Package pointio reads lists of points for the geomath tools, either as plain
// text or pulled out of an SVG drawing.
package pointio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/geomath/plane"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y". A comma may stand in for
// the space. Blank lines and lines starting with # are ignored.
func ReadPoints(r io.Reader) ([]plane.Point, error) {
	points := []plane.Point{}
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Parse a single "x y" or "x,y" point.
func ParsePoint(s string) (plane.Point, error) {
	fields := splitCoordinates(s)
	if len(fields) != 2 {
		return plane.Point{}, errors.Errorf("expected 2 coordinates in %q, got %d", s, len(fields))
	}
	coords, err := parseFloats(fields)
	if err != nil {
		return plane.Point{}, err
	}
	return plane.Point{X: coords[0], Y: coords[1]}, nil
}

// Coordinates may be separated by whitespace, commas, or both, which covers
// both our text format and SVG point lists.
func splitCoordinates(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseFloats(fields []string) ([]float64, error) {
	result := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Errorf("invalid coordinate %q", field)
		}
		result[i] = v
	}
	return result, nil
}
