// Package shape generates the geometry of simple 2D shapes: their outline,
// the line segments that stroke it, and the triangles that fill it.
//
// Shapes with an obvious center are filled with a fan around it. Free-form
// polygons and closed curves go through earcut.
package shape

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/osuushi/earcut"
	"github.com/pkg/errors"
)

type Kind int

const (
	Rectangle Kind = iota
	Triangle
	RegularPolygon
	Ellipse
	Circle
	IrregularPolygon
	PassByCurve
)

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Triangle:
		return "triangle"
	case RegularPolygon:
		return "regular polygon"
	case Ellipse:
		return "ellipse"
	case Circle:
		return "circle"
	case IrregularPolygon:
		return "irregular polygon"
	case PassByCurve:
		return "pass-by curve"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const (
	DefaultEllipseSegments = 64
	DefaultCurveSegments   = 16
	DefaultTension         = 0.5
)

var (
	ErrTooFewSides  = errors.New("too few sides")
	ErrTooFewPoints = errors.New("too few points")
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrOpenCurve    = errors.New("an open curve has no fill")
)

// Shape holds the parameters of every kind; each kind reads only its own.
// The constructors below fill in the right ones.
type Shape struct {
	Kind Kind

	// Rectangle: corner and extent. With y growing downward, as on screen,
	// Origin is the top left corner.
	Origin, Size r2.Point

	// Regular polygons, ellipses and circles. Regular polygons and circles
	// use Radius.X only.
	Center r2.Point
	Radius r2.Point

	// Regular polygon: rotation of the first vertex in degrees, number of
	// sides, and how far the points between vertices are pulled toward the
	// center, from 0 (none, a plain polygon) to 1 (all the way).
	Angle      float64
	Sides      int
	InnerDepth float64

	// Ellipse and circle: number of outline points. Curve: samples per span.
	// Zero means the kind's default.
	Segments int

	// Triangle vertices, irregular polygon outline, or the points a curve
	// passes through
	Points []r2.Point
	Holes  [][]r2.Point

	// Curve only
	Closed  bool
	Tension float64
}

func NewRectangle(origin, size r2.Point) Shape {
	return Shape{Kind: Rectangle, Origin: origin, Size: size}
}

func NewTriangle(a, b, c r2.Point) Shape {
	return Shape{Kind: Triangle, Points: []r2.Point{a, b, c}}
}

func NewRegularPolygon(center r2.Point, radius float64, sides int, angle float64) Shape {
	return Shape{Kind: RegularPolygon, Center: center, Radius: r2.Point{X: radius, Y: radius}, Sides: sides, Angle: angle}
}

// NewStar makes a regular polygon with an inner point between each pair of
// vertices.
func NewStar(center r2.Point, radius float64, sides int, innerDepth, angle float64) Shape {
	s := NewRegularPolygon(center, radius, sides, angle)
	s.InnerDepth = innerDepth
	return s
}

func NewEllipse(center, radius r2.Point) Shape {
	return Shape{Kind: Ellipse, Center: center, Radius: radius}
}

func NewCircle(center r2.Point, radius float64) Shape {
	return Shape{Kind: Circle, Center: center, Radius: r2.Point{X: radius, Y: radius}}
}

func NewIrregularPolygon(outline []r2.Point, holes ...[]r2.Point) Shape {
	return Shape{Kind: IrregularPolygon, Points: outline, Holes: holes}
}

func NewPassByCurve(points []r2.Point, closed bool) Shape {
	return Shape{Kind: PassByCurve, Points: points, Closed: closed, Tension: DefaultTension}
}

func (s *Shape) validate() error {
	switch s.Kind {
	case Rectangle:
	case Triangle:
		if len(s.Points) != 3 {
			return errors.Wrapf(ErrTooFewPoints, "triangle needs 3 points, got %d", len(s.Points))
		}
	case RegularPolygon:
		if s.Sides < 3 {
			return errors.Wrapf(ErrTooFewSides, "regular polygon with %d sides", s.Sides)
		}
	case Ellipse, Circle:
		if s.Segments != 0 && s.Segments < 3 {
			return errors.Wrapf(ErrTooFewSides, "%v with %d segments", s.Kind, s.Segments)
		}
	case IrregularPolygon:
		if len(s.Points) < 3 {
			return errors.Wrapf(ErrTooFewPoints, "irregular polygon with %d points", len(s.Points))
		}
	case PassByCurve:
		if len(s.Points) < 2 {
			return errors.Wrapf(ErrTooFewPoints, "curve through %d points", len(s.Points))
		}
	default:
		return errors.Wrapf(ErrUnknownKind, "%v", s.Kind)
	}
	return nil
}

func (s *Shape) segments(fallback int) int {
	if s.Segments > 0 {
		return s.Segments
	}
	return fallback
}

// Outline returns the shape's boundary as a ring of points, without repeating
// the first point at the end. For an open curve it is the curve itself.
func (s *Shape) Outline() ([]r2.Point, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	switch s.Kind {
	case Rectangle:
		o, size := s.Origin, s.Size
		return []r2.Point{
			o,
			{X: o.X, Y: o.Y + size.Y},
			o.Add(size),
			{X: o.X + size.X, Y: o.Y},
		}, nil
	case Triangle:
		return append([]r2.Point(nil), s.Points...), nil
	case RegularPolygon:
		return s.polygonOutline(), nil
	case Ellipse:
		return ellipseOutline(s.Center, s.Radius, s.segments(DefaultEllipseSegments)), nil
	case Circle:
		return ellipseOutline(s.Center, r2.Point{X: s.Radius.X, Y: s.Radius.X}, s.segments(DefaultEllipseSegments)), nil
	case IrregularPolygon:
		return append([]r2.Point(nil), s.Points...), nil
	case PassByCurve:
		return cardinalSpline(s.Points, s.Closed, s.Tension, s.segments(DefaultCurveSegments)), nil
	}
	panic("unreachable")
}

// Vertices of a regular polygon, with the inner points of a star interleaved
func (s *Shape) polygonOutline() []r2.Point {
	vertices := make([]r2.Point, s.Sides)
	for j := range vertices {
		angle := (s.Angle + float64(j)*360/float64(s.Sides)) * math.Pi / 180
		vertices[j] = r2.Point{
			X: s.Center.X + s.Radius.X*math.Cos(angle),
			Y: s.Center.Y + s.Radius.X*math.Sin(angle),
		}
	}
	if s.InnerDepth <= 0 {
		return vertices
	}

	points := make([]r2.Point, 0, 2*s.Sides)
	for j, v := range vertices {
		next := vertices[(j+1)%len(vertices)]
		points = append(points, v, s.innerPoint(v, next))
	}
	return points
}

func (s *Shape) innerPoint(a, b r2.Point) r2.Point {
	middle := a.Add(b).Mul(0.5)
	return middle.Mul(1 - s.InnerDepth).Add(s.Center.Mul(s.InnerDepth))
}

func ellipseOutline(center, radius r2.Point, segments int) []r2.Point {
	points := make([]r2.Point, segments)
	theta := 2 * math.Pi / float64(segments)
	for j := range points {
		points[j] = r2.Point{
			X: center.X + radius.X*math.Cos(float64(j)*theta),
			Y: center.Y + radius.Y*math.Sin(float64(j)*theta),
		}
	}
	return points
}

// Cardinal spline through the points. Each span between consecutive points is
// a cubic Hermite curve whose tangents are the tension-scaled chords of the
// neighboring points. An open curve uses its end points as their own
// neighbors.
func cardinalSpline(points []r2.Point, closed bool, tension float64, segments int) []r2.Point {
	n := len(points)
	at := func(k int) r2.Point {
		if closed {
			return points[((k%n)+n)%n]
		}
		return points[min(max(k, 0), n-1)]
	}

	spans := n - 1
	if closed {
		spans = n
	}

	curve := make([]r2.Point, 0, spans*segments+1)
	for k := 0; k < spans; k++ {
		p0, p1 := at(k), at(k+1)
		t1 := p1.Sub(at(k - 1)).Mul(tension)
		t2 := at(k + 2).Sub(p0).Mul(tension)

		for i := 0; i < segments; i++ {
			st := float64(i) / float64(segments)
			st2 := st * st
			st3 := st2 * st

			c1 := 2*st3 - 3*st2 + 1
			c2 := -2*st3 + 3*st2
			c3 := st3 - 2*st2 + st
			c4 := st3 - st2

			curve = append(curve, p0.Mul(c1).Add(p1.Mul(c2)).Add(t1.Mul(c3)).Add(t2.Mul(c4)))
		}
	}
	if !closed {
		curve = append(curve, points[n-1])
	}
	return curve
}

// Stroke returns the line segments along the outline, closing the loop except
// for open curves. Holes of irregular polygons are stroked too.
func (s *Shape) Stroke() ([][2]r2.Point, error) {
	outline, err := s.Outline()
	if err != nil {
		return nil, err
	}

	closed := s.Kind != PassByCurve || s.Closed
	lines := ringSegments(outline, closed)
	if s.Kind == IrregularPolygon {
		for _, hole := range s.Holes {
			lines = append(lines, ringSegments(hole, true)...)
		}
	}
	return lines, nil
}

func ringSegments(points []r2.Point, closed bool) [][2]r2.Point {
	if len(points) < 2 {
		return nil
	}
	lines := make([][2]r2.Point, 0, len(points))
	for i := 0; i+1 < len(points); i++ {
		lines = append(lines, [2]r2.Point{points[i], points[i+1]})
	}
	if closed {
		lines = append(lines, [2]r2.Point{points[len(points)-1], points[0]})
	}
	return lines
}

// Fill returns triangles covering the shape.
func (s *Shape) Fill() ([][3]r2.Point, error) {
	outline, err := s.Outline()
	if err != nil {
		return nil, err
	}

	switch s.Kind {
	case Rectangle:
		tl, bl, br, tr := outline[0], outline[1], outline[2], outline[3]
		return [][3]r2.Point{{tl, bl, br}, {br, tr, tl}}, nil
	case Triangle:
		return [][3]r2.Point{{outline[0], outline[1], outline[2]}}, nil
	case RegularPolygon:
		if s.InnerDepth > 0 {
			// Two triangles per side: vertex to inner point, inner point to
			// the next vertex
			triangles := make([][3]r2.Point, 0, len(outline))
			for j := 0; j < len(outline); j += 2 {
				v, inner, next := outline[j], outline[j+1], outline[(j+2)%len(outline)]
				triangles = append(triangles,
					[3]r2.Point{v, inner, s.Center},
					[3]r2.Point{inner, next, s.Center},
				)
			}
			return triangles, nil
		}
		return fan(outline, s.Center), nil
	case Ellipse, Circle:
		return fan(outline, s.Center), nil
	case IrregularPolygon:
		return triangulate(append([][]r2.Point{outline}, s.Holes...))
	case PassByCurve:
		if !s.Closed {
			return nil, ErrOpenCurve
		}
		return triangulate([][]r2.Point{outline})
	}
	panic("unreachable")
}

// One triangle per outline edge, each closed off at the center
func fan(outline []r2.Point, center r2.Point) [][3]r2.Point {
	triangles := make([][3]r2.Point, len(outline))
	for j := range outline {
		triangles[j] = [3]r2.Point{outline[j], outline[(j+1)%len(outline)], center}
	}
	return triangles
}

func triangulate(rings [][]r2.Point) ([][3]r2.Point, error) {
	var (
		coordinates []float64
		holeIndices []int
		vertices    []r2.Point
	)
	for k, ring := range rings {
		if k > 0 {
			holeIndices = append(holeIndices, len(vertices))
		}
		for _, p := range ring {
			coordinates = append(coordinates, p.X, p.Y)
			vertices = append(vertices, p)
		}
	}

	indices, err := earcut.Triangulate(coordinates, holeIndices, 2)
	if err != nil {
		return nil, errors.Wrap(err, "triangulating shape")
	}

	triangles := make([][3]r2.Point, len(indices)/3)
	for k := range triangles {
		triangles[k] = [3]r2.Point{vertices[indices[3*k]], vertices[indices[3*k+1]], vertices[indices[3*k+2]]}
	}
	return triangles, nil
}

// Area of a simple ring, by the shoelace formula
func Area(ring []r2.Point) float64 {
	var sum float64
	for i, p := range ring {
		sum += p.Cross(ring[(i+1)%len(ring)])
	}
	return math.Abs(sum) / 2
}

// Total area of a list of triangles
func TrianglesArea(triangles [][3]r2.Point) float64 {
	var sum float64
	for _, t := range triangles {
		sum += math.Abs(t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))) / 2
	}
	return sum
}
