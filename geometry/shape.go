package geometry

import "math"

// ShapeKind tags the closed Shape variant.
type ShapeKind int

const (
	ShapePointKind ShapeKind = iota
	ShapeBoxKind
	ShapePolygonKind
)

// Shape is the closed tagged variant every node's geometry is built from:
// a footprint-less Point, an axis-aligned Box, or an arbitrary Polygon.
// Shape values are immutable except via Translate, which returns a new
// Shape rather than mutating the receiver (nodes are translated wholesale
// by the drag command, never partially).
type Shape struct {
	Kind ShapeKind

	// Point is meaningful when Kind == ShapePointKind.
	Point Point

	// Box corners, meaningful when Kind == ShapeBoxKind. Invariant:
	// X1 < X2 && Y1 < Y2.
	X1, Y1, X2, Y2 float64

	// Vertices is the flat, implicitly-closed vertex list, meaningful when
	// Kind == ShapePolygonKind. Invariant: len(Vertices) >= 3.
	Vertices []Point
}

// NewPointShape builds a footprint-less Point shape.
func NewPointShape(p Point) Shape {
	return Shape{Kind: ShapePointKind, Point: p}
}

// NewBoxShape builds an axis-aligned Box shape. Returns ok=false if the
// box is degenerate (x1>=x2 or y1>=y2), the GeometryDegenerate condition
// from spec.md §7.
func NewBoxShape(x1, y1, x2, y2 float64) (Shape, bool) {
	if x1 >= x2 || y1 >= y2 {
		return Shape{}, false
	}
	return Shape{Kind: ShapeBoxKind, X1: x1, Y1: y1, X2: x2, Y2: y2}, true
}

// NewPolygonShape builds a Polygon shape from a flat vertex sequence.
// Returns ok=false if fewer than 3 unique vertices remain after dropping
// consecutive duplicates (the GeometryDegenerate condition from spec.md §7).
func NewPolygonShape(vertices []Point) (Shape, bool) {
	unique := make([]Point, 0, len(vertices))
	for _, v := range vertices {
		if len(unique) > 0 {
			last := unique[len(unique)-1]
			if v.Sub(last).Norm2() < EpsSquared {
				continue
			}
		}
		unique = append(unique, v)
	}
	if len(unique) >= 2 && unique[0].Sub(unique[len(unique)-1]).Norm2() < EpsSquared {
		unique = unique[:len(unique)-1]
	}
	if len(unique) < 3 {
		return Shape{}, false
	}
	return Shape{Kind: ShapePolygonKind, Vertices: unique}, true
}

// Centroid returns the shape's centroid: the point itself for ShapePoint,
// the geometric center for ShapeBox, the arithmetic mean of vertices for
// ShapePolygon.
func (s Shape) Centroid() Point {
	switch s.Kind {
	case ShapePointKind:
		return s.Point
	case ShapeBoxKind:
		return Point{X: (s.X1 + s.X2) / 2, Y: (s.Y1 + s.Y2) / 2}
	case ShapePolygonKind:
		var sum Point
		for _, v := range s.Vertices {
			sum = sum.Add(v)
		}
		return sum.Mul(1 / float64(len(s.Vertices)))
	default:
		return Point{}
	}
}

// Boundary returns the cyclic edge list of the shape's boundary: empty for
// ShapePoint (no footprint), the four walls for ShapeBox (in the fixed
// order top, right, bottom, left so side indices are deterministic for the
// connect package's tie-break), and the polygon's cyclic edges for
// ShapePolygon, via PolygonEdges.
func (s Shape) Boundary() []Segment {
	switch s.Kind {
	case ShapePointKind:
		return nil
	case ShapeBoxKind:
		tl := Point{X: s.X1, Y: s.Y1}
		tr := Point{X: s.X2, Y: s.Y1}
		br := Point{X: s.X2, Y: s.Y2}
		bl := Point{X: s.X1, Y: s.Y2}
		return []Segment{
			{A: tl, B: tr}, // top
			{A: tr, B: br}, // right
			{A: br, B: bl}, // bottom
			{A: bl, B: tl}, // left
		}
	case ShapePolygonKind:
		return PolygonEdges(s.Vertices)
	default:
		return nil
	}
}

// PolygonEdges returns the cyclic edge list of a flat, implicitly-closed
// vertex sequence: (v0,v1), (v1,v2), ..., (v_{n-1}, v0).
func PolygonEdges(vertices []Point) []Segment {
	n := len(vertices)
	if n < 2 {
		return nil
	}
	edges := make([]Segment, n)
	for i := 0; i < n; i++ {
		edges[i] = Segment{A: vertices[i], B: vertices[(i+1)%n]}
	}
	return edges
}

// BoundaryExtent returns a representative length scale for the shape,
// used to derive a boundary-containment tolerance (BoundaryTolFrac of this
// extent, per spec.md §9).
func (s Shape) BoundaryExtent() float64 {
	switch s.Kind {
	case ShapePointKind:
		return 1
	case ShapeBoxKind:
		return math.Hypot(s.X2-s.X1, s.Y2-s.Y1)
	case ShapePolygonKind:
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, v := range s.Vertices {
			minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
			minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
		}
		return math.Hypot(maxX-minX, maxY-minY)
	default:
		return 1
	}
}

// ContainsBoundaryPoint reports whether p lies within tolerance of the
// shape's boundary (or of the centroid, for ShapePoint, which has no
// footprint of its own). This backs the "Boundary contact" testable
// property from spec.md §8.
func (s Shape) ContainsBoundaryPoint(p Point) bool {
	tol := BoundaryTolFrac * s.BoundaryExtent()
	if tol < EpsLength {
		tol = EpsLength
	}

	if s.Kind == ShapePointKind {
		return p.Sub(s.Point).Norm() <= tol
	}

	for _, seg := range s.Boundary() {
		if _, d := PointToSegment(p, seg.A, seg.B); d <= tol {
			return true
		}
	}
	return false
}

// Translate returns a new Shape translated by delta. For Box and Polygon
// all vertices move by the same vector, preserving shape, per spec.md §3.
func (s Shape) Translate(delta Point) Shape {
	switch s.Kind {
	case ShapePointKind:
		return NewPointShape(s.Point.Add(delta))
	case ShapeBoxKind:
		shape, _ := NewBoxShape(s.X1+delta.X, s.Y1+delta.Y, s.X2+delta.X, s.Y2+delta.Y)
		return shape
	case ShapePolygonKind:
		moved := make([]Point, len(s.Vertices))
		for i, v := range s.Vertices {
			moved[i] = v.Add(delta)
		}
		shape, _ := NewPolygonShape(moved)
		return shape
	default:
		return s
	}
}

// BoxXRange and BoxYRange expose a Box's 1-D extents for the connection
// engine's overlap tests (SegmentsOverlap1D callers).
func (s Shape) BoxXRange() (lo, hi float64) { return s.X1, s.X2 }
func (s Shape) BoxYRange() (lo, hi float64) { return s.Y1, s.Y2 }
