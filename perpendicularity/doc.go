// Package perpendicularity scores existing edges by closeness to the
// image's horizontal/vertical axes and classifies them good/bad, per
// spec.md §4.3. It is a pure function over edge contact points — it does
// not need node geometry, only the two contact points an edge already
// carries.
package perpendicularity
