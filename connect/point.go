package connect

import (
	"github.com/pidforge/pidgraph/geometry"
)

// connectPointToShapeBoundary implements the Point-Shape connectors:
// spec.md §4.2 collapses levels 1-2 to "the vertical/horizontal line
// through the point intersects the other shape's boundary", skips level 3
// entirely, and enumerates the other shape's boundary segments at level 4.
func connectPointToShapeBoundary(p Point, other geometry.Shape, axisLock *geometry.Axis) (onP, onOther Point, info Info) {
	tryVertical := axisLock == nil || *axisLock == geometry.AxisVertical
	tryHorizontal := axisLock == nil || *axisLock == geometry.AxisHorizontal

	var best Point
	var bestDist float64
	var bestAxis geometry.Axis
	found := false

	if tryVertical {
		if ys := boundaryCrossingVertical(other, p.X); len(ys) > 0 {
			cand, dist := nearestY(p, ys)
			if !found || dist < bestDist {
				best, bestDist, bestAxis, found = cand, dist, geometry.AxisVertical, true
			}
		}
	}
	if tryHorizontal {
		if xs := boundaryCrossingHorizontal(other, p.Y); len(xs) > 0 {
			cand, dist := nearestX(p, xs)
			if !found || dist < bestDist {
				best, bestDist, bestAxis, found = cand, dist, geometry.AxisHorizontal, true
			}
		}
	}
	if found {
		return p, best, Info{Axis: bestAxis, Score: 1.0, Kind: "centroid-perp-point"}
	}

	// Level 4: enumerate the other shape's boundary segments.
	cands := pointToBoundary(p, other.Boundary())
	if w, ok := bestCandidate(cands, axisLock); ok {
		axis := downgradeToDiagonal(w.axis, w.score)
		return p, w.onB, Info{Axis: axis, Score: w.score, Kind: "wall-to-wall"}
	}

	// Edge case: no candidate at any level.
	c := other.Centroid()
	score, axis := perpScore(p, c)
	return p, c, Info{Axis: axis, Score: score, Kind: "fallback", Fallback: true}
}

func nearestY(p Point, ys []float64) (Point, float64) {
	best := ys[0]
	for _, y := range ys[1:] {
		if absF(y-p.Y) < absF(best-p.Y) {
			best = y
		}
	}
	return Point{X: p.X, Y: best}, absF(best - p.Y)
}

func nearestX(p Point, xs []float64) (Point, float64) {
	best := xs[0]
	for _, x := range xs[1:] {
		if absF(x-p.X) < absF(best-p.X) {
			best = x
		}
	}
	return Point{X: best, Y: p.Y}, absF(best - p.X)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ConnectPointBox implements the Point-Box connector.
func ConnectPointBox(p Point, box geometry.Shape, axisLock *geometry.Axis) (Point, Point, Info) {
	return connectPointToShapeBoundary(p, box, axisLock)
}

// ConnectPointPolygon implements the Point-Polygon connector.
func ConnectPointPolygon(p Point, poly geometry.Shape, axisLock *geometry.Axis) (Point, Point, Info) {
	return connectPointToShapeBoundary(p, poly, axisLock)
}

// ConnectPointPoint implements the Point-Point connector: points have no
// footprint, so the only meaningful contact pair is the two points
// themselves; axisLock cannot change that, since there is no alternative
// candidate to select among.
func ConnectPointPoint(a, b Point) (Point, Point, Info) {
	score, axis := perpScore(a, b)
	return a, b, Info{Axis: axis, Score: score, Kind: "point-direct"}
}
