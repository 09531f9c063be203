package connect

import "github.com/pidforge/pidgraph/geometry"

// Connect is the connection engine's single public entry point: given two
// shapes and an optional axis lock, it picks the contact pair and axis
// classification per the priority hierarchy appropriate to the pair's
// shape kinds, normalizing argument order so the result always reports
// (contactA, contactB) in the same order as the input (a, b).
func Connect(a, b geometry.Shape, axisLock *geometry.Axis) (contactA, contactB Point, info Info) {
	switch {
	case a.Kind == geometry.ShapePointKind && b.Kind == geometry.ShapePointKind:
		return ConnectPointPoint(a.Centroid(), b.Centroid())

	case a.Kind == geometry.ShapePointKind:
		onP, onOther, info := connectPointToShapeBoundary(a.Centroid(), b, axisLock)
		return onP, onOther, info

	case b.Kind == geometry.ShapePointKind:
		onP, onOther, info := connectPointToShapeBoundary(b.Centroid(), a, axisLock)
		return onOther, onP, info

	case a.Kind == geometry.ShapeBoxKind && b.Kind == geometry.ShapeBoxKind:
		return ConnectBoxBox(a, b, axisLock)

	case a.Kind == geometry.ShapeBoxKind && b.Kind == geometry.ShapePolygonKind:
		return ConnectBoxPolygon(a, b, axisLock)

	case a.Kind == geometry.ShapePolygonKind && b.Kind == geometry.ShapeBoxKind:
		onA, onB, info := ConnectBoxPolygon(b, a, axisLock)
		return onB, onA, info

	case a.Kind == geometry.ShapePolygonKind && b.Kind == geometry.ShapePolygonKind:
		return ConnectPolygonPolygon(a, b, axisLock)

	default:
		ca, cb := a.Centroid(), b.Centroid()
		score, axis := perpScore(ca, cb)
		return ca, cb, Info{Axis: axis, Score: score, Kind: "fallback", Fallback: true}
	}
}
