package connect

import (
	"math"

	"github.com/pidforge/pidgraph/geometry"
)

// boundaryCrossingVertical returns the y-coordinates at which shape's
// boundary crosses the vertical line x = at. shape must be ShapeBoxKind or
// ShapePolygonKind. For a Box this is simply [Y1, Y2] when at lies within
// its x-range (the whole top and bottom walls are "crossed" by
// definition); for a Polygon each boundary edge whose x-span contains at
// contributes one interpolated y.
func boundaryCrossingVertical(shape geometry.Shape, at float64) []float64 {
	switch shape.Kind {
	case geometry.ShapeBoxKind:
		lo, hi := shape.BoxXRange()
		if at < lo-geometry.EpsLength || at > hi+geometry.EpsLength {
			return nil
		}
		return []float64{shape.Y1, shape.Y2}
	case geometry.ShapePolygonKind:
		var ys []float64
		for _, seg := range geometry.PolygonEdges(shape.Vertices) {
			lo, hi := seg.A.X, seg.B.X
			if lo > hi {
				lo, hi = hi, lo
			}
			if at < lo-geometry.EpsLength || at > hi+geometry.EpsLength {
				continue
			}
			if math.Abs(seg.B.X-seg.A.X) < geometry.EpsLength {
				ys = append(ys, seg.A.Y, seg.B.Y)
				continue
			}
			t := (at - seg.A.X) / (seg.B.X - seg.A.X)
			ys = append(ys, seg.A.Y+t*(seg.B.Y-seg.A.Y))
		}
		return ys
	default:
		return nil
	}
}

// boundaryCrossingHorizontal is the horizontal-line counterpart of
// boundaryCrossingVertical: crossings of shape's boundary with y = at.
func boundaryCrossingHorizontal(shape geometry.Shape, at float64) []float64 {
	switch shape.Kind {
	case geometry.ShapeBoxKind:
		lo, hi := shape.BoxYRange()
		if at < lo-geometry.EpsLength || at > hi+geometry.EpsLength {
			return nil
		}
		return []float64{shape.X1, shape.X2}
	case geometry.ShapePolygonKind:
		var xs []float64
		for _, seg := range geometry.PolygonEdges(shape.Vertices) {
			lo, hi := seg.A.Y, seg.B.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if at < lo-geometry.EpsLength || at > hi+geometry.EpsLength {
				continue
			}
			if math.Abs(seg.B.Y-seg.A.Y) < geometry.EpsLength {
				xs = append(xs, seg.A.X, seg.B.X)
				continue
			}
			t := (at - seg.A.Y) / (seg.B.Y - seg.A.Y)
			xs = append(xs, seg.A.X+t*(seg.B.X-seg.A.X))
		}
		return xs
	default:
		return nil
	}
}

// yExtent and xExtent give a shape's overall bounding range on one axis,
// used by connectAtVerticalLine/connectAtHorizontalLine to enforce the
// "nodes are separated along the complementary axis" precondition from
// spec.md §4.2's Box-Box worked example, generalized to all boundary-
// having shape pairs.
func yExtent(shape geometry.Shape) (lo, hi float64) {
	switch shape.Kind {
	case geometry.ShapeBoxKind:
		return shape.Y1, shape.Y2
	case geometry.ShapePolygonKind:
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range shape.Vertices {
			lo, hi = math.Min(lo, v.Y), math.Max(hi, v.Y)
		}
		return lo, hi
	default:
		c := shape.Centroid()
		return c.Y, c.Y
	}
}

func xExtent(shape geometry.Shape) (lo, hi float64) {
	switch shape.Kind {
	case geometry.ShapeBoxKind:
		return shape.X1, shape.X2
	case geometry.ShapePolygonKind:
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, v := range shape.Vertices {
			lo, hi = math.Min(lo, v.X), math.Max(hi, v.X)
		}
		return lo, hi
	default:
		c := shape.Centroid()
		return c.X, c.X
	}
}

// connectAtVerticalLine finds the nearest pair of boundary crossings of a
// and b with the vertical line x = at, provided both shapes are actually
// crossed by it and the shapes do not overlap along y (the "separated"
// precondition). ok is false if either condition fails.
func connectAtVerticalLine(a, b geometry.Shape, at float64) (onA, onB Point, ok bool) {
	aYs := boundaryCrossingVertical(a, at)
	bYs := boundaryCrossingVertical(b, at)
	if len(aYs) == 0 || len(bYs) == 0 {
		return Point{}, Point{}, false
	}
	aLo, aHi := yExtent(a)
	bLo, bHi := yExtent(b)
	if overlaps1D(aLo, aHi, bLo, bHi) {
		return Point{}, Point{}, false
	}

	bestDist := math.Inf(1)
	var bestAY, bestBY float64
	for _, ay := range aYs {
		for _, by := range bYs {
			d := math.Abs(ay - by)
			if d < bestDist {
				bestDist, bestAY, bestBY = d, ay, by
			}
		}
	}
	return Point{X: at, Y: bestAY}, Point{X: at, Y: bestBY}, true
}

// connectAtHorizontalLine is the horizontal counterpart of
// connectAtVerticalLine: crossings with y = at, separation required along x.
func connectAtHorizontalLine(a, b geometry.Shape, at float64) (onA, onB Point, ok bool) {
	aXs := boundaryCrossingHorizontal(a, at)
	bXs := boundaryCrossingHorizontal(b, at)
	if len(aXs) == 0 || len(bXs) == 0 {
		return Point{}, Point{}, false
	}
	aLo, aHi := xExtent(a)
	bLo, bHi := xExtent(b)
	if overlaps1D(aLo, aHi, bLo, bHi) {
		return Point{}, Point{}, false
	}

	bestDist := math.Inf(1)
	var bestAX, bestBX float64
	for _, ax := range aXs {
		for _, bx := range bXs {
			d := math.Abs(ax - bx)
			if d < bestDist {
				bestDist, bestAX, bestBX = d, ax, bx
			}
		}
	}
	return Point{X: bestAX, Y: at}, Point{X: bestBX, Y: at}, true
}

func overlaps1D(a1, a2, b1, b2 float64) bool {
	overlaps, _, _ := geometry.SegmentsOverlap1D(a1, a2, b1, b2)
	return overlaps
}
