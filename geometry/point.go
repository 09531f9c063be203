package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a Cartesian coordinate. It is a type alias for r2.Vector so that
// callers get Add/Sub/Mul/Dot/Norm for free and so the connection engine
// can do ordinary vector arithmetic on contact points without a wrapper.
type Point = r2.Vector

// Axis classifies a direction relative to the image's horizontal/vertical
// axes. AxisPoint is returned for the zero vector (no meaningful direction);
// AxisDiagonal is used by callers that need a non-axis-aligned bucket
// (AxisScore itself only ever returns AxisHorizontal/AxisVertical/
// AxisPoint; the connection engine relabels a low-scoring level-4 contact
// pair as AxisDiagonal).
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
	AxisPoint
	AxisDiagonal
)

// String implements fmt.Stringer for readable test failures and logs.
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	case AxisPoint:
		return "point"
	case AxisDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// AxisScore scores a displacement (dx, dy) by closeness to the nearer of
// the horizontal/vertical axes.
//
// s = 1 - min(|dx|,|dy|) / ||(dx,dy)||, interpreted as 1 - sin(theta) where
// theta is the angle to the nearer axis. s == 1 means exactly axis-aligned.
// The zero vector is defined to score 1 with axis AxisPoint (there is no
// direction to be diagonal in).
func AxisScore(dx, dy float64) (float64, Axis) {
	norm := math.Hypot(dx, dy)
	if norm < EpsLength {
		return 1, AxisPoint
	}

	adx, ady := math.Abs(dx), math.Abs(dy)
	score := 1 - math.Min(adx, ady)/norm

	if adx <= ady {
		// dx is the smaller component: the vector leans toward the
		// vertical axis (small horizontal drift, large vertical drift).
		return score, AxisVertical
	}
	return score, AxisHorizontal
}
