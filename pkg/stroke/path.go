package stroke

import (
	"errors"
	"fmt"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

// ErrInvalidLength is returned when a caller supplies a non-positive
// length budget. It signals a contract violation, not a runtime condition.
var ErrInvalidLength = errors.New("max length must be positive")

// FindPath searches breadth-first from start through the 8-connected
// neighbors inside points for the nearest point satisfying pred. The
// returned path starts at start, holds at most maxLen points, and visits
// no coordinate twice. Expansion follows the fixed geom.Point.Neighbors
// order, so ties between equal-depth candidates resolve deterministically.
//
// The boolean is false when no qualifying point is reachable within the
// budget. The only error is ErrInvalidLength for maxLen <= 0.
func FindPath(start geom.Point, points Set, maxLen int, pred func(geom.Point) bool) (geom.Polygon, bool, error) {
	if maxLen <= 0 {
		return nil, false, fmt.Errorf("%w: %d", ErrInvalidLength, maxLen)
	}
	if maxLen == 1 {
		if pred(start) {
			return geom.Polygon{start}, true, nil
		}
		return nil, false, nil
	}

	visited := Set{start: {}}
	queue := []geom.Polygon{{start}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		last := path[len(path)-1]

		for _, n := range last.Neighbors() {
			if !points.Has(n) || visited.Has(n) {
				continue
			}
			if pred(n) {
				full := make(geom.Polygon, len(path), len(path)+1)
				copy(full, path)
				return append(full, n), true, nil
			}
			if len(path) == maxLen-1 {
				// Extending would exceed the budget without a hit.
				continue
			}
			next := make(geom.Polygon, len(path), len(path)+1)
			copy(next, path)
			queue = append(queue, append(next, n))
			visited[n] = struct{}{}
		}
	}
	return nil, false, nil
}
