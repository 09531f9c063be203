package connect

import "github.com/pidforge/pidgraph/geometry"

// Info describes how a contact pair was produced.
type Info struct {
	// Axis is the resulting edge's axis classification: the
	// geometry.AxisScore axis of the chosen contact pair. Only a level-4
	// ("wall-to-wall") winner is relabelled AxisDiagonal, when it scores
	// below perpendicularity.GoodThreshold; every other kind keeps the
	// AxisScore axis.
	Axis geometry.Axis

	// Score is the perpendicularity score of the chosen contact pair: 1.0
	// for the axis-aligned contacts of levels 1-2 and "overlap-perp", the
	// winning candidate's score for "wall-to-wall", and the score of the
	// centroid-to-centroid segment for "overlapping", "point-direct" and
	// "fallback".
	Score float64

	// Kind is a human-readable token identifying which rule fired, for
	// tests and diagnostics: "centroid-perp-a", "centroid-perp-b",
	// "centroid-perp-point", "overlap-perp", "overlapping", "wall-to-wall",
	// "point-direct", "fallback", and "loaded" (set by schema.Load for a
	// link whose contact points were stored).
	Kind string

	// Fallback is true only when every priority level failed and Connect
	// resorted to centroid-centroid contacts (spec.md §4.2 edge case).
	Fallback bool
}
