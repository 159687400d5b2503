// Package stroke converts a set of foreground pixels into an ordered
// collection of bounded-length strokes: polylines that, replayed as
// continuous pen motions, reproduce every pixel. Strokes preferentially
// follow image contours; leftovers are covered by breadth-first
// pathfinding and a greedy least-visited walk.
package stroke

import "github.com/img2swipes/img2swipes/pkg/geom"

// Set is a membership set of pixels.
type Set map[geom.Point]struct{}

// NewSet builds a set from a point slice, dropping duplicates.
func NewSet(points []geom.Point) Set {
	s := make(Set, len(points))
	for _, p := range points {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is a member.
func (s Set) Has(p geom.Point) bool {
	_, ok := s[p]
	return ok
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for p := range s {
		out[p] = struct{}{}
	}
	return out
}

// Min returns the row-major smallest member (smallest Y, then X).
// The boolean is false for an empty set.
func (s Set) Min() (geom.Point, bool) {
	var best geom.Point
	found := false
	for p := range s {
		if !found || p.Less(best) {
			best = p
			found = true
		}
	}
	return best, found
}
