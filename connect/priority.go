package connect

import (
	"github.com/pidforge/pidgraph/geometry"
	"github.com/pidforge/pidgraph/perpendicularity"
)

// candidate is an internal level-4 (and fallback) contact pair attempt,
// carrying enough to apply the deterministic tie-break from spec.md §9:
// highest axis score, then smallest distance, then lexicographic
// (sideA, sideB).
type candidate struct {
	onA, onB   Point
	axis       geometry.Axis
	score      float64
	dist       float64
	sideA      int
	sideB      int
}

// Point is re-exported for readability within this package's files.
type Point = geometry.Point

// bestCandidate selects the winning candidate per the Level-4 tie-break:
// max score, then min distance, then lexicographic (sideA, sideB). If
// axisLock is non-nil, candidates whose axis disagrees are discarded
// first. Returns ok=false if no candidate survives.
func bestCandidate(cands []candidate, axisLock *geometry.Axis) (candidate, bool) {
	filtered := cands[:0:0]
	for _, c := range cands {
		if axisLock != nil && c.axis != *axisLock {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return candidate{}, false
	}

	best := filtered[0]
	for _, c := range filtered[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best, true
}

// better reports whether a should replace b as the current winner.
func better(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.sideA != b.sideA {
		return a.sideA < b.sideA
	}
	return a.sideB < b.sideB
}

// wallToWall enumerates every pair of boundary segments from a and b,
// scoring each with geometry.ClosestBetweenSegments + geometry.AxisScore.
// Segment indices come from Shape.Boundary()'s fixed iteration order, so
// results are reproducible across runs (spec.md §9's tie-break open
// question).
func wallToWall(aBoundary, bBoundary []geometry.Segment) []candidate {
	out := make([]candidate, 0, len(aBoundary)*len(bBoundary))
	for i, sa := range aBoundary {
		for j, sb := range bBoundary {
			onA, onB, dist := geometry.ClosestBetweenSegments(sa.A, sa.B, sb.A, sb.B)
			d := onB.Sub(onA)
			score, axis := geometry.AxisScore(d.X, d.Y)
			out = append(out, candidate{onA: onA, onB: onB, axis: axis, score: score, dist: dist, sideA: i, sideB: j})
		}
	}
	return out
}

// pointToBoundary enumerates the closest point on each of other's
// boundary segments to the fixed point p. sideA is always 0 (a point
// contributes no side of its own, per spec.md §4.2's Point-Shape
// connectors).
func pointToBoundary(p Point, boundary []geometry.Segment) []candidate {
	out := make([]candidate, 0, len(boundary))
	for j, seg := range boundary {
		onB, dist := geometry.PointToSegment(p, seg.A, seg.B)
		d := onB.Sub(p)
		score, axis := geometry.AxisScore(d.X, d.Y)
		out = append(out, candidate{onA: p, onB: onB, axis: axis, score: score, dist: dist, sideA: 0, sideB: j})
	}
	return out
}

// downgradeToDiagonal relabels a level-4 winner's axis as AxisDiagonal
// when its score falls short of perpendicularity.GoodThreshold, per
// spec.md §4.2's "info always includes axis (horizontal/vertical/
// diagonal)". Only level-4 winners pass through it; the other levels and
// the fallback keep their AxisScore axis.
func downgradeToDiagonal(axis geometry.Axis, score float64) geometry.Axis {
	if score < perpendicularity.GoodThreshold {
		return geometry.AxisDiagonal
	}
	return axis
}
