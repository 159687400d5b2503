package geom

import (
	"fmt"
	"math"
)

// Polygon is an ordered sequence of points. A stroke is a polygon meant to
// be traced as one continuous motion; nothing in this package requires the
// sequence to be closed or even connected.
type Polygon []Point

// BoundingRect returns the smallest rectangle containing the polygon.
func (pg Polygon) BoundingRect() Rect {
	return BoundingRect(pg)
}

// Offset returns a copy of the polygon translated by (dx, dy).
func (pg Polygon) Offset(dx, dy int) Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// Split cuts the polygon into consecutive chunks of at most maxLen points.
// The final chunk holds the remainder and may be shorter. maxLen must be
// positive; a non-positive value is a programming error.
func (pg Polygon) Split(maxLen int) []Polygon {
	if maxLen <= 0 {
		panic(fmt.Sprintf("geom: split length must be positive, got %d", maxLen))
	}
	chunks := make([]Polygon, 0, (len(pg)+maxLen-1)/maxLen)
	for i := 0; i < len(pg); i += maxLen {
		end := min(i+maxLen, len(pg))
		chunks = append(chunks, pg[i:end:end])
	}
	return chunks
}

// Lerp inserts steps interpolated points between every consecutive pair,
// rounding to integer coordinates and dropping duplicates while keeping
// first-occurrence order. It is used to densify coarse outlines (such as
// rectangle frames) into sequences a touch driver can replay smoothly.
func (pg Polygon) Lerp(steps int) Polygon {
	if steps < 0 {
		panic(fmt.Sprintf("geom: lerp steps must be non-negative, got %d", steps))
	}
	if len(pg) <= 1 || steps == 0 {
		out := make(Polygon, len(pg))
		copy(out, pg)
		return out
	}

	seen := make(map[Point]struct{}, len(pg)*(steps+1))
	out := make(Polygon, 0, len(pg)*(steps+1))
	push := func(p Point) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for i := 0; i < len(pg)-1; i++ {
		a, b := pg[i], pg[i+1]
		// steps+2 samples per segment, endpoints included.
		n := steps + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			push(Point{
				X: int(math.Round(float64(a.X) + t*float64(b.X-a.X))),
				Y: int(math.Round(float64(a.Y) + t*float64(b.Y-a.Y))),
			})
		}
	}
	return out
}

// UniquePoints returns the deduplicated union of all points across the
// given polygons, preserving first-occurrence order.
func UniquePoints(polygons []Polygon) []Point {
	seen := make(map[Point]struct{})
	var out []Point
	for _, pg := range polygons {
		for _, p := range pg {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
