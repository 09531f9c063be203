package geometry

import (
	"github.com/golang/geo/r1"
)

// Segment is a straight line between two points, used both as a polygon
// edge and as a box wall.
type Segment struct {
	A, B Point
}

// PointToSegment returns the closest point on segment ab to p, and the
// distance from p to that point. A degenerate segment (|ab|² < EpsSquared)
// collapses to its endpoint a.
func PointToSegment(p, a, b Point) (closest Point, dist float64) {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < EpsSquared {
		return a, p.Sub(a).Norm()
	}

	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	closest = a.Add(ab.Mul(t))

	return closest, p.Sub(closest).Norm()
}

// ClosestBetweenSegments considers the four endpoint-to-segment
// projections (a1->b-segment, a2->b-segment, b1->a-segment, b2->a-segment)
// and returns the pair with the smallest distance. Ties are broken by the
// order the four candidates are considered: a1, a2, b1, b2.
func ClosestBetweenSegments(a1, a2, b1, b2 Point) (onA, onB Point, dist float64) {
	type candidate struct {
		onA, onB Point
		dist     float64
	}

	cp1, d1 := PointToSegment(a1, b1, b2)
	cp2, d2 := PointToSegment(a2, b1, b2)
	cp3, d3 := PointToSegment(b1, a1, a2)
	cp4, d4 := PointToSegment(b2, a1, a2)

	candidates := []candidate{
		{a1, cp1, d1},
		{a2, cp2, d2},
		{cp3, b1, d3},
		{cp4, b2, d4},
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.dist < best.dist {
			best = c
		}
	}

	return best.onA, best.onB, best.dist
}

// SegmentsOverlap1D computes the overlap of two intervals [a1,a2] and
// [b1,b2] on a shared axis (order of a1/a2 and b1/b2 does not matter).
// It returns whether they overlap and, if so, the overlap's [start, end].
func SegmentsOverlap1D(a1, a2, b1, b2 float64) (overlaps bool, start, end float64) {
	ia := r1.Interval{Lo: minF(a1, a2), Hi: maxF(a1, a2)}
	ib := r1.Interval{Lo: minF(b1, b2), Hi: maxF(b1, b2)}

	lo := maxF(ia.Lo, ib.Lo)
	hi := minF(ia.Hi, ib.Hi)
	if lo > hi {
		return false, 0, 0
	}

	return true, lo, hi
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
