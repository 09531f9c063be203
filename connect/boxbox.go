package connect

import (
	"github.com/pidforge/pidgraph/geometry"
)

// connectBoundaryShapes implements the shared priority hierarchy for any
// pair of boundary-having shapes (Box or Polygon): levels 1, 2, 4 always;
// level 3 (1-D overlap) only when allowLevel3 is set, which spec.md §4.2
// restricts to Box-Box.
func connectBoundaryShapes(a, b geometry.Shape, axisLock *geometry.Axis, allowLevel3 bool) (onA, onB Point, info Info) {
	// Level 1: perpendicular from A's centroid.
	if pa, pb, ok := centroidPerp(a, b, axisLock); ok {
		score, axis := perpScore(pa, pb)
		return pa, pb, Info{Axis: axis, Score: score, Kind: "centroid-perp-a"}
	}

	// Level 2: perpendicular from B's centroid (symmetric).
	if pb, pa, ok := centroidPerp(b, a, axisLock); ok {
		score, axis := perpScore(pa, pb)
		return pa, pb, Info{Axis: axis, Score: score, Kind: "centroid-perp-b"}
	}

	// Level 3: perpendicular through the 1-D overlap (Box-Box only).
	if allowLevel3 {
		if onA, onB, info, done := overlapPerp(a, b, axisLock); done {
			return onA, onB, info
		}
	}

	// Level 4: minimum-diagonality wall-to-wall / edge-to-edge.
	cands := wallToWall(a.Boundary(), b.Boundary())
	if best, ok := bestCandidate(cands, axisLock); ok {
		axis := downgradeToDiagonal(best.axis, best.score)
		return best.onA, best.onB, Info{Axis: axis, Score: best.score, Kind: "wall-to-wall"}
	}

	// Edge case: every priority level exhausted.
	ca, cb := a.Centroid(), b.Centroid()
	score, axis := perpScore(ca, cb)
	return ca, cb, Info{Axis: axis, Score: score, Kind: "fallback", Fallback: true}
}

// centroidPerp tries both the vertical and horizontal line through
// driver's centroid (subject to axisLock), returning the contact pair
// (onDriver, onOther) oriented driver-then-other and whether one was found.
func centroidPerp(driver, other geometry.Shape, axisLock *geometry.Axis) (onDriver, onOther Point, ok bool) {
	c := driver.Centroid()

	tryVertical := axisLock == nil || *axisLock == geometry.AxisVertical
	tryHorizontal := axisLock == nil || *axisLock == geometry.AxisHorizontal

	var vOnD, vOnO Point
	vOK := false
	if tryVertical {
		vOnD, vOnO, vOK = connectAtVerticalLine(driver, other, c.X)
	}
	var hOnD, hOnO Point
	hOK := false
	if tryHorizontal {
		hOnD, hOnO, hOK = connectAtHorizontalLine(driver, other, c.Y)
	}

	switch {
	case vOK && hOK:
		_, vDist := distAndAxis(vOnD, vOnO)
		_, hDist := distAndAxis(hOnD, hOnO)
		if vDist <= hDist {
			return vOnD, vOnO, true
		}
		return hOnD, hOnO, true
	case vOK:
		return vOnD, vOnO, true
	case hOK:
		return hOnD, hOnO, true
	default:
		return Point{}, Point{}, false
	}
}

// overlapPerp implements priority level 3 for Box-Box pairs: if the boxes
// overlap along exactly one axis, connect through the overlap midpoint on
// the other axis; if they overlap on both axes, they are "overlapping"
// and the engine stops here with centroid contacts.
func overlapPerp(a, b geometry.Shape, axisLock *geometry.Axis) (onA, onB Point, info Info, done bool) {
	xOverlaps, xs, xe := geometry.SegmentsOverlap1D(a.X1, a.X2, b.X1, b.X2)
	yOverlaps, ys, ye := geometry.SegmentsOverlap1D(a.Y1, a.Y2, b.Y1, b.Y2)

	switch {
	case xOverlaps && yOverlaps:
		ca, cb := a.Centroid(), b.Centroid()
		score, axis := perpScore(ca, cb)
		return ca, cb, Info{Axis: axis, Score: score, Kind: "overlapping"}, true

	case xOverlaps && !yOverlaps:
		if axisLock != nil && *axisLock != geometry.AxisVertical {
			return Point{}, Point{}, Info{}, false
		}
		mid := (xs + xe) / 2
		if onA, onB, ok := connectAtVerticalLine(a, b, mid); ok {
			score, axis := perpScore(onA, onB)
			return onA, onB, Info{Axis: axis, Score: score, Kind: "overlap-perp"}, true
		}
		return Point{}, Point{}, Info{}, false

	case yOverlaps && !xOverlaps:
		if axisLock != nil && *axisLock != geometry.AxisHorizontal {
			return Point{}, Point{}, Info{}, false
		}
		mid := (ys + ye) / 2
		if onA, onB, ok := connectAtHorizontalLine(a, b, mid); ok {
			score, axis := perpScore(onA, onB)
			return onA, onB, Info{Axis: axis, Score: score, Kind: "overlap-perp"}, true
		}
		return Point{}, Point{}, Info{}, false

	default:
		return Point{}, Point{}, Info{}, false
	}
}

func perpScore(a, b Point) (float64, geometry.Axis) {
	d := b.Sub(a)
	return geometry.AxisScore(d.X, d.Y)
}

func distAndAxis(a, b Point) (geometry.Axis, float64) {
	d := b.Sub(a)
	_, axis := geometry.AxisScore(d.X, d.Y)
	return axis, d.Norm()
}

// ConnectBoxBox implements the Box-Box connector.
func ConnectBoxBox(a, b geometry.Shape, axisLock *geometry.Axis) (Point, Point, Info) {
	return connectBoundaryShapes(a, b, axisLock, true)
}

// ConnectBoxPolygon implements the Box-Polygon connector.
func ConnectBoxPolygon(a, b geometry.Shape, axisLock *geometry.Axis) (Point, Point, Info) {
	return connectBoundaryShapes(a, b, axisLock, false)
}

// ConnectPolygonPolygon implements the Polygon-Polygon connector.
func ConnectPolygonPolygon(a, b geometry.Shape, axisLock *geometry.Axis) (Point, Point, Info) {
	return connectBoundaryShapes(a, b, axisLock, false)
}
