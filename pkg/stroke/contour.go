package stroke

import "github.com/img2swipes/img2swipes/pkg/geom"

// moore lists the 8 neighborhood offsets clockwise starting west, in image
// coordinates (y grows down). Boundary tracing scans this ring.
var moore = [8]geom.Point{
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
}

// borderProbe is the 4-neighborhood checked to classify border pixels and
// to pick the initial backtrack cell: left, up, right, down.
var borderProbe = [4]geom.Point{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}}

// FindContours extracts the closed boundary loops of a pixel set using
// Moore-neighbor tracing over a binary mask of the set's bounding box.
// Both outer borders and hole borders are traced. Loops are reported in
// the row-major order of their starting pixels, each loop an 8-connected
// sequence lying entirely within the set; thin features may appear twice
// within one loop (the trace walks out and back along spurs).
//
// The result is deterministic for a given set.
func FindContours(points Set) []geom.Polygon {
	if len(points) == 0 {
		return nil
	}

	var all []geom.Point
	for p := range points {
		all = append(all, p)
	}
	bounds := geom.BoundingRect(all)
	size := bounds.Size()

	mask := newGrid(size.Width, size.Height)
	for p := range points {
		mask.set(p.X-bounds.Min.X, p.Y-bounds.Min.Y)
	}

	traced := newGrid(size.Width, size.Height)
	var loops []geom.Polygon

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			if !mask.at(x, y) || traced.at(x, y) {
				continue
			}
			start := geom.Point{X: x, Y: y}
			back, ok := backtrackFor(mask, start)
			if !ok {
				continue // interior pixel, not on any border
			}
			loop := traceLoop(mask, start, back)
			for _, p := range loop {
				traced.set(p.X, p.Y)
			}
			loops = append(loops, loop.Offset(bounds.Min.X, bounds.Min.Y))
		}
	}
	return loops
}

// backtrackFor returns the first background 4-neighbor of p in probe
// order. A pixel with no background 4-neighbor is interior and starts no
// trace.
func backtrackFor(mask *grid, p geom.Point) (geom.Point, bool) {
	for _, d := range borderProbe {
		n := p.Add(d.X, d.Y)
		if !mask.at(n.X, n.Y) {
			return n, true
		}
	}
	return geom.Point{}, false
}

// traceState is a trace position: the current border pixel and the
// background cell the scan backtracked from. Repeating a state means the
// trace has closed its loop.
type traceState struct {
	cur, back geom.Point
}

// traceLoop walks the boundary starting at start with the given backtrack
// cell, collecting border pixels until the (pixel, backtrack) state
// repeats. A trailing revisit of the start pixel is trimmed so each loop
// lists its closing point once.
func traceLoop(mask *grid, start, startBack geom.Point) geom.Polygon {
	loop := geom.Polygon{start}
	seen := map[traceState]struct{}{{start, startBack}: {}}
	cur, back := start, startBack

	maxSteps := 4*mask.w*mask.h + 8
	for step := 0; step < maxSteps; step++ {
		next, nextBack, ok := nextBorder(mask, cur, back)
		if !ok {
			break // isolated pixel
		}
		state := traceState{next, nextBack}
		if _, done := seen[state]; done {
			break
		}
		seen[state] = struct{}{}
		loop = append(loop, next)
		cur, back = next, nextBack
	}

	if len(loop) > 1 && loop[0] == loop[len(loop)-1] {
		loop = loop[:len(loop)-1]
	}
	return loop
}

// nextBorder scans the Moore neighborhood of cur clockwise, starting just
// after the backtrack cell, and returns the first foreground pixel along
// with the background cell checked immediately before it.
func nextBorder(mask *grid, cur, back geom.Point) (next, nextBack geom.Point, ok bool) {
	bi := mooreIndex(back.X-cur.X, back.Y-cur.Y)
	for k := 1; k <= 8; k++ {
		d := moore[(bi+k)%8]
		n := cur.Add(d.X, d.Y)
		if mask.at(n.X, n.Y) {
			prev := moore[(bi+k-1)%8]
			return n, cur.Add(prev.X, prev.Y), true
		}
	}
	return geom.Point{}, geom.Point{}, false
}

func mooreIndex(dx, dy int) int {
	for i, d := range moore {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	panic("stroke: backtrack cell is not a neighbor of the current pixel")
}

// grid is a dense boolean mask. Reads outside the bounds are background.
type grid struct {
	w, h  int
	cells []bool
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make([]bool, w*h)}
}

func (g *grid) at(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h && g.cells[y*g.w+x]
}

func (g *grid) set(x, y int) {
	g.cells[y*g.w+x] = true
}
