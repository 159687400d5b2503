package device

import (
	"context"
	"testing"
	"time"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

func TestTouchActions(t *testing.T) {
	stroke := geom.Polygon{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}
	actions := TouchActions(stroke, 20*time.Millisecond)

	if len(actions) != 1 {
		t.Fatalf("got %d input sources, want 1", len(actions))
	}
	a := actions[0]
	if a.Type != "pointer" || a.Parameters["pointerType"] != "touch" {
		t.Errorf("not a touch pointer source: %+v", a)
	}

	// move(0ms) down move move up
	steps := a.Actions
	if len(steps) != 5 {
		t.Fatalf("got %d steps, want 5", len(steps))
	}
	if steps[0].Type != "pointerMove" || *steps[0].Duration != 0 {
		t.Errorf("first step should be an instant move, got %+v", steps[0])
	}
	if *steps[0].X != 1 || *steps[0].Y != 2 {
		t.Errorf("first move to (%d,%d), want (1,2)", *steps[0].X, *steps[0].Y)
	}
	if steps[1].Type != "pointerDown" {
		t.Errorf("second step = %q, want pointerDown", steps[1].Type)
	}
	for i, p := range stroke[1:] {
		step := steps[2+i]
		if step.Type != "pointerMove" || *step.Duration != 20 {
			t.Errorf("step %d = %+v, want 20ms move", 2+i, step)
		}
		if *step.X != p.X || *step.Y != p.Y {
			t.Errorf("step %d moves to (%d,%d), want %v", 2+i, *step.X, *step.Y, p)
		}
	}
	if steps[len(steps)-1].Type != "pointerUp" {
		t.Errorf("last step = %q, want pointerUp", steps[len(steps)-1].Type)
	}
}

func TestSwiperOffsetsIntoCanvas(t *testing.T) {
	ctx := context.Background()
	fs := newFakeServer(t)
	sess, err := NewSession(ctx, fs.URL, Capabilities{})
	if err != nil {
		t.Fatal(err)
	}

	sw := NewSwiper(sess, geom.Point{X: 100, Y: 200}, 20*time.Millisecond)
	if err := sw.Swipe(ctx, geom.Polygon{{X: 0, Y: 0}, {X: 5, Y: 5}}); err != nil {
		t.Fatalf("Swipe: %v", err)
	}

	if len(fs.actions) != 1 {
		t.Fatalf("server saw %d payloads, want 1", len(fs.actions))
	}
	sources := fs.actions[0]["actions"].([]any)
	steps := sources[0].(map[string]any)["actions"].([]any)
	first := steps[0].(map[string]any)
	if first["x"].(float64) != 100 || first["y"].(float64) != 200 {
		t.Errorf("first move at (%v,%v), want canvas origin (100,200)", first["x"], first["y"])
	}
}

func TestSwiperSkipsDegenerateStrokes(t *testing.T) {
	ctx := context.Background()
	fs := newFakeServer(t)
	sess, err := NewSession(ctx, fs.URL, Capabilities{})
	if err != nil {
		t.Fatal(err)
	}

	sw := NewSwiper(sess, geom.Point{}, time.Millisecond)
	if err := sw.Swipe(ctx, geom.Polygon{}); err != nil {
		t.Errorf("empty stroke: %v", err)
	}
	if err := sw.Swipe(ctx, geom.Polygon{{X: 3, Y: 3}}); err != nil {
		t.Errorf("single point stroke: %v", err)
	}
	if len(fs.actions) != 0 {
		t.Errorf("degenerate strokes reached the server: %d payloads", len(fs.actions))
	}
}

func TestSwipeAllReportsProgress(t *testing.T) {
	ctx := context.Background()
	fs := newFakeServer(t)
	sess, err := NewSession(ctx, fs.URL, Capabilities{})
	if err != nil {
		t.Fatal(err)
	}

	strokes := []geom.Polygon{
		{{X: 0, Y: 0}, {X: 1, Y: 1}},
		{{X: 2, Y: 2}},
		{{X: 3, Y: 3}, {X: 4, Y: 4}},
	}
	var reported []int
	sw := NewSwiper(sess, geom.Point{}, time.Millisecond)
	if err := sw.SwipeAll(ctx, strokes, func(done int) { reported = append(reported, done) }); err != nil {
		t.Fatalf("SwipeAll: %v", err)
	}

	if len(reported) != 3 || reported[2] != 3 {
		t.Errorf("progress reports = %v, want [1 2 3]", reported)
	}
	// Only the two real strokes hit the server.
	if len(fs.actions) != 2 {
		t.Errorf("server saw %d payloads, want 2", len(fs.actions))
	}
}
