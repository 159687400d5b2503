package device

import (
	"context"
	"time"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

// Action is one step of a W3C input action sequence.
type Action struct {
	Type       string         `json:"type"`
	ID         string         `json:"id,omitempty"`
	Parameters map[string]any `json:"parameters,omitempty"`
	Actions    []pointerStep  `json:"actions,omitempty"`
}

// pointerStep serializes one step of a pointer sequence. Coordinates
// must survive a zero value (a move to the origin is meaningful), so
// they carry no omitempty; Duration and Button use pointers to
// distinguish "absent" from zero.
type pointerStep struct {
	Type     string `json:"type"`
	Duration *int   `json:"duration,omitempty"`
	X        *int   `json:"x,omitempty"`
	Y        *int   `json:"y,omitempty"`
	Button   *int   `json:"button,omitempty"`
}

// TouchActions builds the single-finger action chain for one stroke:
// an instant move to the first point, pointer down, a timed move per
// remaining point, pointer up. Coordinates are absolute viewport
// pixels.
func TouchActions(stroke geom.Polygon, stepDuration time.Duration) []Action {
	ms := int(stepDuration.Milliseconds())
	button := 0

	move := func(p geom.Point, duration int) pointerStep {
		d, x, y := duration, p.X, p.Y
		return pointerStep{Type: "pointerMove", Duration: &d, X: &x, Y: &y}
	}

	steps := make([]pointerStep, 0, len(stroke)+2)
	steps = append(steps, move(stroke[0], 0))
	steps = append(steps, pointerStep{Type: "pointerDown", Button: &button})
	for _, p := range stroke[1:] {
		steps = append(steps, move(p, ms))
	}
	steps = append(steps, pointerStep{Type: "pointerUp", Button: &button})

	return []Action{{
		Type:       "pointer",
		ID:         "finger1",
		Parameters: map[string]any{"pointerType": "touch"},
		Actions:    steps,
	}}
}

// Swiper replays strokes on a device session, offsetting image
// coordinates into the target canvas rectangle.
type Swiper struct {
	session      *Session
	origin       geom.Point
	stepDuration time.Duration
}

// NewSwiper wires a swiper to an open session. origin is the canvas
// top-left in viewport pixels; stepDuration is the time spent moving
// between consecutive stroke points.
func NewSwiper(session *Session, origin geom.Point, stepDuration time.Duration) *Swiper {
	return &Swiper{session: session, origin: origin, stepDuration: stepDuration}
}

// Swipe draws one stroke. Strokes with fewer than two points carry no
// motion and are skipped.
func (s *Swiper) Swipe(ctx context.Context, stroke geom.Polygon) error {
	if len(stroke) < 2 {
		return nil
	}
	return s.session.PerformActions(ctx, TouchActions(stroke.Offset(s.origin.X, s.origin.Y), s.stepDuration))
}

// SwipeAll draws strokes in order, calling progress after each one when
// it is non-nil.
func (s *Swiper) SwipeAll(ctx context.Context, strokes []geom.Polygon, progress func(done int)) error {
	for i, stroke := range strokes {
		if err := s.Swipe(ctx, stroke); err != nil {
			return err
		}
		if progress != nil {
			progress(i + 1)
		}
	}
	return nil
}
