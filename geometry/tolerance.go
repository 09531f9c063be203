package geometry

// Tolerances used throughout geometry, connect and perpendicularity.
// EpsSquared guards degeneracy tests performed on squared lengths
// (cheaper, avoids a sqrt). EpsLength guards tests performed on lengths
// directly. BoundaryTolFrac is a fraction of a shape's bounding extent
// used to decide whether a contact point lies "on" a boundary.
const (
	EpsSquared      = 1e-9
	EpsLength       = 1e-6
	BoundaryTolFrac = 1e-4
)
