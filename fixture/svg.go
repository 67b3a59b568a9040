package fixture

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// ParseSVG reads every <polygon> in the document as a ring, in document
// order, so the first polygon is the outer ring and the rest are holes.
// Expected results may be given as data-triangles and data-errors attributes
// on the root element.
//
// This is not a general SVG reader: transforms, paths and units are ignored.
func ParseSVG(r io.Reader) (Case, error) {
	var c Case

	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return c, errors.Wrap(err, "parsing SVG")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return c, errors.New("no polygons found")
	}
	for k, polygonEl := range polygons {
		ring, err := parsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return c, errors.Wrapf(err, "polygon %d", k)
		}
		c.Coordinates = append(c.Coordinates, ring)
	}

	if s, ok := rootEl.Attributes["data-triangles"]; ok {
		c.Triangles, err = strconv.Atoi(s)
		if err != nil {
			return c, errors.Wrap(err, "invalid data-triangles")
		}
	}
	if s, ok := rootEl.Attributes["data-errors"]; ok {
		c.Errors, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return c, errors.Wrap(err, "invalid data-errors")
		}
	}
	return c, nil
}

// Points are "x,y" pairs separated by whitespace, though SVG allows any mix
// of commas and whitespace between the numbers.
func parsePoints(pointString string) ([][]float64, error) {
	fields := strings.FieldsFunc(pointString, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", pointString)
	}

	points := make([][]float64, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, []float64{x, y})
	}
	return points, nil
}
