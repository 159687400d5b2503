package stroke

import (
	"fmt"
	"iter"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

// Generator lazily converts a pixel set into strokes of exactly maxLen
// points each. It prefers ready-made chunks cut from contour loops; when
// none are available it builds a stroke by pathfinding toward uncovered
// pixels, falling back to a greedy least-visited walk, and finally
// padding with the last point.
//
// A Generator is single-use: one forward pass over the input, not
// restartable, and not safe for concurrent pulls. Every input pixel
// appears in at least one emitted stroke; each emitted stroke covers at
// least one previously uncovered pixel, so the pass always terminates.
//
// Degenerate inputs of zero or one distinct point yield exactly one
// stroke holding that set verbatim, bypassing the length contract.
type Generator struct {
	maxLen    int
	points    Set // full input, never mutated after construction
	unvisited Set
	pending   []geom.Polygon
	done      bool
}

// NewGenerator validates maxLen and prepares a pass over the deduplicated
// input. The input slice is not retained.
func NewGenerator(points []geom.Point, maxLen int) (*Generator, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, maxLen)
	}
	set := NewSet(points)
	return &Generator{
		maxLen:    maxLen,
		points:    set,
		unvisited: set.Clone(),
	}, nil
}

// Remaining returns the number of input pixels not yet covered by an
// emitted stroke. It reaches zero exactly when the sequence ends.
func (g *Generator) Remaining() int {
	return len(g.unvisited)
}

// Next produces the next stroke. The boolean is false once every input
// pixel has been covered; after that the generator stays exhausted.
func (g *Generator) Next() (geom.Polygon, bool) {
	if g.done {
		return nil, false
	}

	if len(g.points) <= 1 {
		g.done = true
		stroke := make(geom.Polygon, 0, len(g.points))
		for p := range g.points {
			stroke = append(stroke, p)
		}
		clear(g.unvisited)
		return stroke, true
	}

	if len(g.unvisited) == 0 {
		g.done = true
		return nil, false
	}

	stroke := g.nextChunk()
	if stroke == nil {
		stroke = g.buildFallback()
	}
	for _, p := range stroke {
		delete(g.unvisited, p)
	}
	return stroke, true
}

// Strokes returns the remaining strokes as a single-use sequence.
func (g *Generator) Strokes() iter.Seq[geom.Polygon] {
	return func(yield func(geom.Polygon) bool) {
		for {
			s, ok := g.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Generate runs a full pass and collects every stroke.
func Generate(points []geom.Point, maxLen int) ([]geom.Polygon, error) {
	g, err := NewGenerator(points, maxLen)
	if err != nil {
		return nil, err
	}
	var out []geom.Polygon
	for s := range g.Strokes() {
		out = append(out, s)
	}
	return out, nil
}

// nextChunk drains the pending chunk queue, refilling it from a fresh
// contour extraction over the uncovered pixels when it runs dry. Chunks
// are kept only when their length is exactly maxLen; a loop's short tail
// is left for fallback construction. Chunks whose points have all been
// covered by earlier strokes (possible when loops retrace spurs) are
// discarded. Returns nil when contour extraction yields nothing usable.
func (g *Generator) nextChunk() geom.Polygon {
	for {
		for len(g.pending) > 0 {
			chunk := g.pending[0]
			g.pending = g.pending[1:]
			if g.coversNew(chunk) {
				return chunk
			}
		}

		refilled := false
		for _, loop := range FindContours(g.unvisited) {
			for _, chunk := range loop.Split(g.maxLen) {
				if len(chunk) == g.maxLen {
					g.pending = append(g.pending, chunk)
					refilled = true
				}
			}
		}
		if !refilled {
			return nil
		}
	}
}

func (g *Generator) coversNew(chunk geom.Polygon) bool {
	for _, p := range chunk {
		if g.unvisited.Has(p) {
			return true
		}
	}
	return false
}

// buildFallback constructs one stroke of exactly maxLen points starting
// from the row-major smallest uncovered pixel. Growth happens in three
// phases: breadth-first path searches from the tail (then head) toward
// uncovered pixels, bridging across already-covered ones; a greedy
// one-step walk to the least-visited neighbor when no path fits the
// remaining budget; and padding with the final point once neither end can
// grow.
func (g *Generator) buildFallback() geom.Polygon {
	seed, ok := g.unvisited.Min()
	if !ok {
		panic("stroke: fallback requested with no uncovered pixels")
	}

	stroke := geom.Polygon{seed}
	visits := map[geom.Point]int{seed: 1}
	wanted := func(p geom.Point) bool {
		return g.unvisited.Has(p) && visits[p] == 0
	}

	extend := func(from geom.Point, budget int) (geom.Polygon, bool) {
		path, found, err := FindPath(from, g.points, budget, wanted)
		if err != nil {
			panic(fmt.Sprintf("stroke: fallback path search: %v", err))
		}
		return path, found
	}

	for len(stroke) < g.maxLen {
		budget := g.maxLen - len(stroke)

		if tail, ok := extend(stroke[len(stroke)-1], budget); ok {
			for _, p := range tail[1:] {
				visits[p]++
			}
			stroke = append(stroke, tail[1:]...)
			continue
		}

		if head, ok := extend(stroke[0], budget); ok {
			for _, p := range head[1:] {
				visits[p]++
			}
			// Reverse the head path so it flows into the stroke.
			flipped := make(geom.Polygon, 0, len(head)+len(stroke)-1)
			for i := len(head) - 1; i >= 0; i-- {
				flipped = append(flipped, head[i])
			}
			stroke = append(flipped, stroke[1:]...)
			continue
		}
		break
	}

	for len(stroke) < g.maxLen {
		if n, ok := g.leastVisitedNeighbor(stroke[len(stroke)-1], visits); ok {
			visits[n]++
			stroke = append(stroke, n)
			continue
		}
		if n, ok := g.leastVisitedNeighbor(stroke[0], visits); ok {
			visits[n]++
			stroke = append(geom.Polygon{n}, stroke...)
			continue
		}
		break
	}

	for last := stroke[len(stroke)-1]; len(stroke) < g.maxLen; {
		stroke = append(stroke, last)
	}
	return stroke
}

// leastVisitedNeighbor picks the next greedy step from p: an uncovered,
// unused neighbor is taken immediately; otherwise the in-set neighbor
// with the fewest visits this stroke wins, ties broken by the fixed
// neighbor enumeration order.
func (g *Generator) leastVisitedNeighbor(p geom.Point, visits map[geom.Point]int) (geom.Point, bool) {
	var best geom.Point
	found := false
	minVisits := int(^uint(0) >> 1)

	for _, n := range p.Neighbors() {
		if !g.points.Has(n) {
			continue
		}
		if g.unvisited.Has(n) && visits[n] == 0 {
			return n, true
		}
		if c := visits[n]; c < minVisits {
			best, minVisits, found = n, c, true
		}
	}
	return best, found
}
