package catenary

import (
	"fmt"
	"iter"
	"math"
)

// Catenary is the curve y(x) = Y0 + A·cosh((x − Xp) / A).
//
// Xp is the horizontal position of the vertex, A the scale parameter (the
// ratio of horizontal tension to weight per unit length) and Y0 the vertical
// offset. The vertex is at (Xp, Y0 + A).
type Catenary struct {
	Xp float64
	A  float64
	Y0 float64
}

func (c Catenary) String() string {
	return fmt.Sprintf("y = %g + %g·cosh((x − %g) / %g)", c.Y0, c.A, c.Xp, c.A)
}

// Y evaluates the curve at x.
func (c Catenary) Y(x float64) float64 {
	return c.Y0 + c.A*math.Cosh((x-c.Xp)/c.A)
}

// Slope returns dy/dx at x.
func (c Catenary) Slope(x float64) float64 {
	return math.Sinh((x - c.Xp) / c.A)
}

// Vertex returns the lowest point of the unbounded curve.
func (c Catenary) Vertex() Point {
	return Pt(c.Xp, c.Y0+c.A)
}

// Arclen returns the length of the curve between x0 and x1. The result is
// negative if x1 < x0.
func (c Catenary) Arclen(x0, x1 float64) float64 {
	return c.A * (math.Sinh((x1-c.Xp)/c.A) - math.Sinh((x0-c.Xp)/c.A))
}

// Span returns the part of the curve between x0 and x1.
func (c Catenary) Span(x0, x1 float64) Shape {
	return Shape{Catenary: c, X0: x0, X1: x1}
}

// DefaultAccuracy is a default value for methods that take an accuracy
// argument.
const DefaultAccuracy = 1e-6

// Shape is a [Catenary] restricted to the horizontal range [X0, X1]. It is
// parametrized linearly in x, so that t = 0 is at X0 and t = 1 at X1.
type Shape struct {
	Catenary
	X0 float64
	X1 float64
}

func (s Shape) x(t float64) float64 {
	return s.X0 + t*(s.X1-s.X0)
}

// Eval evaluates the shape at parameter t. Generally, t is in the range [0, 1].
func (s Shape) Eval(t float64) Point {
	x := s.x(t)
	return Pt(x, s.Y(x))
}

func (s Shape) Start() Point { return s.Eval(0) }
func (s Shape) End() Point   { return s.Eval(1) }

// Subsegment returns the part of the shape for the given parameter range.
func (s Shape) Subsegment(start, end float64) Shape {
	return Shape{Catenary: s.Catenary, X0: s.x(start), X1: s.x(end)}
}

func (s Shape) Subdivide() (Shape, Shape) {
	return s.Subsegment(0.0, 0.5), s.Subsegment(0.5, 1.0)
}

// Arclen returns the length of the shape. It is computed in closed form, so
// accuracy is ignored.
func (s Shape) Arclen(accuracy float64) float64 {
	return math.Abs(s.Catenary.Arclen(s.X0, s.X1))
}

// SolveForArclen returns the parameter t at which the arc length measured from
// the start of the shape equals arclen. The result is clamped to [0, 1].
func (s Shape) SolveForArclen(arclen float64, accuracy float64) float64 {
	if arclen <= 0.0 {
		return 0.0
	}
	if arclen >= s.Arclen(accuracy) {
		return 1.0
	}
	if s.X1 < s.X0 {
		arclen = -arclen
	}
	x := s.Xp + s.A*math.Asinh(arclen/s.A+math.Sinh((s.X0-s.Xp)/s.A))
	return (x - s.X0) / (s.X1 - s.X0)
}

// Extrema returns the parameter of the vertex, if it lies strictly inside the
// shape.
func (s Shape) Extrema() (float64, bool) {
	if s.X1 == s.X0 {
		return 0, false
	}
	t := (s.Xp - s.X0) / (s.X1 - s.X0)
	if t > 0 && t < 1 {
		return t, true
	}
	return 0, false
}

// Lowest returns the lowest point of the shape. This is the vertex if it lies
// within the shape, otherwise the lower endpoint.
func (s Shape) Lowest() Point {
	if t, ok := s.Extrema(); ok {
		return s.Eval(t)
	}
	p0, p1 := s.Start(), s.End()
	if p1.Y < p0.Y {
		return p1
	}
	return p0
}

// BoundingBox returns the smallest rectangle that encloses the shape.
func (s Shape) BoundingBox() Rect {
	bbox := NewRectFromPoints(s.Start(), s.End())
	if t, ok := s.Extrema(); ok {
		bbox = bbox.UnionPoint(s.Eval(t))
	}
	return bbox
}

// DefaultSamples is the number of points used to plot a curve.
const DefaultSamples = 300

// Points returns an iterator over n points evenly spaced in x, including both
// endpoints. Fewer than two points are never produced.
func (s Shape) Points(n int) iter.Seq[Point] {
	n = max(n, 2)
	return func(yield func(Point) bool) {
		for i := range n {
			// Evaluate the last point at exactly t = 1.
			t := float64(i) / float64(n-1)
			if !yield(s.Eval(t)) {
				return
			}
		}
	}
}

// Markers holds the points of interest of a solved shape.
type Markers struct {
	Left   Point
	Right  Point
	Vertex Point
	// Inside reports whether the vertex lies within the shape. When it
	// doesn't, the lowest point of the shape is one of the endpoints.
	Inside bool
}

// Markers returns the endpoints and the vertex of the shape.
func (s Shape) Markers() Markers {
	_, inside := s.Extrema()
	return Markers{
		Left:   s.Start(),
		Right:  s.End(),
		Vertex: s.Vertex(),
		Inside: inside,
	}
}
