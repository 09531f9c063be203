package perpendicularity

import (
	"math"

	"github.com/pidforge/pidgraph/geometry"
)

// GoodThreshold is the fixed perpendicularity cutoff corresponding to
// roughly 1 degree of deviation from an axis: 1 - sin(1deg).
var GoodThreshold = 1 - math.Sin(1*math.Pi/180)

// ScoreEdge scores the segment from contactA to contactB by closeness to
// the nearer global axis, via geometry.AxisScore.
func ScoreEdge(contactA, contactB geometry.Point) (score float64, axis geometry.Axis) {
	d := contactB.Sub(contactA)
	return geometry.AxisScore(d.X, d.Y)
}

// IsGood reports whether score meets GoodThreshold.
func IsGood(score float64) bool {
	return score >= GoodThreshold
}

// Stats aggregates perpendicularity scores across a set of edges.
type Stats struct {
	Total int
	Good  int
	Bad   int
	Mean  float64
}

// Aggregate computes Stats over scores, classifying each against
// threshold (pass perpendicularity.GoodThreshold for the standard cutoff).
func Aggregate(scores []float64, threshold float64) Stats {
	var s Stats
	var sum float64
	for _, sc := range scores {
		s.Total++
		sum += sc
		if sc >= threshold {
			s.Good++
		} else {
			s.Bad++
		}
	}
	if s.Total > 0 {
		s.Mean = sum / float64(s.Total)
	}
	return s
}
