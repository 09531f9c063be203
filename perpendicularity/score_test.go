package perpendicularity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pidforge/pidgraph/geometry"
	"github.com/pidforge/pidgraph/perpendicularity"
)

func TestScoreEdge(t *testing.T) {
	score, axis := perpendicularity.ScoreEdge(geometry.Point{X: 5, Y: 10}, geometry.Point{X: 5, Y: 40})
	assert.Equal(t, geometry.AxisVertical, axis)
	assert.InDelta(t, 1.0, score, 1e-9)
	assert.True(t, perpendicularity.IsGood(score))
}

func TestAggregate(t *testing.T) {
	stats := perpendicularity.Aggregate([]float64{1.0, 0.5, 0.9999}, perpendicularity.GoodThreshold)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Good)
	assert.Equal(t, 1, stats.Bad)
	assert.InDelta(t, (1.0+0.5+0.9999)/3, stats.Mean, 1e-9)
}

func TestGoodThreshold(t *testing.T) {
	// ~1 degree deviation.
	assert.InDelta(t, 0.9825, perpendicularity.GoodThreshold, 1e-4)
}
