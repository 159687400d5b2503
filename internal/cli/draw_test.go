package cli

import (
	"testing"

	"github.com/img2swipes/img2swipes/pkg/geom"
	"github.com/img2swipes/img2swipes/pkg/plan"
)

func testPlan() *plan.Plan {
	p := plan.New("x.png",
		geom.Rect{Min: geom.Point{X: 100, Y: 100}, Max: geom.Point{X: 199, Y: 199}},
		10,
		[]geom.Polygon{{{X: 20, Y: 30}, {X: 21, Y: 30}, {X: 22, Y: 31}}})
	p.Image = geom.Rect{Max: geom.Point{X: 49, Y: 49}}
	return p
}

func TestFrameStrokesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	if got := frameStrokes(cfg, testPlan()); len(got) != 0 {
		t.Errorf("no frames requested but got %d strokes", len(got))
	}
}

func TestFrameStrokesCanvas(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas = CanvasConfig{Width: 100, Height: 100}
	cfg.Frame.Canvas = true

	strokes := frameStrokes(cfg, testPlan())
	if len(strokes) == 0 {
		t.Fatal("canvas frame produced no strokes")
	}
	for i, s := range strokes {
		if len(s) > cfg.Strokes.Length {
			t.Errorf("stroke %d has %d points, max %d", i, len(s), cfg.Strokes.Length)
		}
		for _, pt := range s {
			if pt.X < 0 || pt.X > 99 || pt.Y < 0 || pt.Y > 99 {
				t.Fatalf("frame point %v outside canvas-local bounds", pt)
			}
		}
	}
	// The outline starts at the canvas-local origin.
	if strokes[0][0] != (geom.Point{}) {
		t.Errorf("first frame point = %v, want origin", strokes[0][0])
	}
}

func TestFrameStrokesImageAndContent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frame.Image = true
	cfg.Frame.Content = true

	p := testPlan()
	strokes := frameStrokes(cfg, p)
	if len(strokes) == 0 {
		t.Fatal("no frame strokes produced")
	}

	// Content frame points stay on the strokes' bounding box border.
	content := p.BoundingRect()
	var sawContentCorner bool
	for _, s := range strokes {
		for _, pt := range s {
			if pt == content.Min {
				sawContentCorner = true
			}
		}
	}
	if !sawContentCorner {
		t.Errorf("content frame never touches bounding box corner %v", content.Min)
	}
}

func TestFrameStrokesDense(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas = CanvasConfig{Width: 200, Height: 200}
	cfg.Frame.Canvas = true

	// Interpolation keeps consecutive points close enough for a smooth
	// drag even on long rectangle edges.
	for _, s := range frameStrokes(cfg, testPlan()) {
		for i := 1; i < len(s); i++ {
			if d := s[i-1].Chebyshev(s[i]); d > 20 {
				t.Fatalf("gap of %d between %v and %v", d, s[i-1], s[i])
			}
		}
	}
}
