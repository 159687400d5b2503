package stroke

import (
	"errors"
	"testing"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

func pts(ps ...geom.Point) []geom.Point { return ps }

func TestFindPathInvalidLength(t *testing.T) {
	for _, maxLen := range []int{0, -1} {
		_, _, err := FindPath(geom.Point{}, Set{}, maxLen, func(geom.Point) bool { return true })
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("maxLen=%d: err = %v, want ErrInvalidLength", maxLen, err)
		}
	}
}

func TestFindPathLengthOne(t *testing.T) {
	start := geom.Point{X: 2, Y: 2}
	set := NewSet(pts(start))

	path, ok, err := FindPath(start, set, 1, func(p geom.Point) bool { return p == start })
	if err != nil || !ok {
		t.Fatalf("FindPath = %v, %v, %v", path, ok, err)
	}
	if len(path) != 1 || path[0] != start {
		t.Errorf("path = %v, want [start]", path)
	}

	_, ok, err = FindPath(start, set, 1, func(geom.Point) bool { return false })
	if err != nil || ok {
		t.Errorf("expected no path, got ok=%v err=%v", ok, err)
	}
}

func TestFindPathStraightLine(t *testing.T) {
	// 0..4 on a row; target is the far end.
	set := NewSet(pts(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0},
		geom.Point{X: 3, Y: 0}, geom.Point{X: 4, Y: 0},
	))
	target := geom.Point{X: 4, Y: 0}

	path, ok, err := FindPath(geom.Point{X: 0, Y: 0}, set, 10, func(p geom.Point) bool { return p == target })
	if err != nil || !ok {
		t.Fatalf("FindPath failed: ok=%v err=%v", ok, err)
	}
	want := geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, want %v", i, path[i], want[i])
		}
	}
}

func TestFindPathRespectsBudget(t *testing.T) {
	set := NewSet(pts(
		geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0},
		geom.Point{X: 3, Y: 0}, geom.Point{X: 4, Y: 0},
	))
	target := geom.Point{X: 4, Y: 0}
	pred := func(p geom.Point) bool { return p == target }

	// Needs 5 points inclusive; a budget of 4 cannot reach it.
	if _, ok, _ := FindPath(geom.Point{X: 0, Y: 0}, set, 4, pred); ok {
		t.Error("path found despite insufficient budget")
	}
	if _, ok, _ := FindPath(geom.Point{X: 0, Y: 0}, set, 5, pred); !ok {
		t.Error("exact budget should succeed")
	}
}

func TestFindPathUnreachable(t *testing.T) {
	// Two clusters with a gap wider than one pixel.
	set := NewSet(pts(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 5}))
	_, ok, err := FindPath(geom.Point{X: 0, Y: 0}, set, 100, func(p geom.Point) bool { return p == geom.Point{X: 5, Y: 5} })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("found a path across disconnected pixels")
	}
}

func TestFindPathDiagonal(t *testing.T) {
	// Diagonal steps count as single hops.
	set := NewSet(pts(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, geom.Point{X: 2, Y: 2}))
	target := geom.Point{X: 2, Y: 2}
	path, ok, _ := FindPath(geom.Point{X: 0, Y: 0}, set, 3, func(p geom.Point) bool { return p == target })
	if !ok {
		t.Fatal("no diagonal path found")
	}
	if len(path) != 3 {
		t.Errorf("path length = %d, want 3", len(path))
	}
	for i := 1; i < len(path); i++ {
		if path[i-1].Chebyshev(path[i]) != 1 {
			t.Errorf("consecutive points %v -> %v not 8-adjacent", path[i-1], path[i])
		}
	}
}

func TestFindPathSimplePaths(t *testing.T) {
	// A 3x3 block with an unreachable predicate: the search must visit
	// each pixel at most once and terminate.
	var block []geom.Point
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			block = append(block, geom.Point{X: x, Y: y})
		}
	}
	set := NewSet(block)
	_, ok, err := FindPath(geom.Point{X: 1, Y: 1}, set, 9, func(geom.Point) bool { return false })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("predicate never matches, yet a path was returned")
	}
}

func TestFindPathDeterministic(t *testing.T) {
	var block []geom.Point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			block = append(block, geom.Point{X: x, Y: y})
		}
	}
	set := NewSet(block)
	target := geom.Point{X: 3, Y: 3}
	pred := func(p geom.Point) bool { return p == target }

	first, ok, _ := FindPath(geom.Point{X: 0, Y: 0}, set, 16, pred)
	if !ok {
		t.Fatal("no path found")
	}
	for range 10 {
		again, ok, _ := FindPath(geom.Point{X: 0, Y: 0}, set, 16, pred)
		if !ok || len(again) != len(first) {
			t.Fatalf("path changed across runs: %v vs %v", again, first)
		}
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("path changed across runs at %d: %v vs %v", i, again, first)
			}
		}
	}
}
