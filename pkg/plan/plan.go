// Package plan defines the stroke plan artifact: everything needed to
// replay a drawing later, serialized as JSON. A plan records the strokes
// produced for one image at one configuration, the canvas they target,
// and enough metadata to tell plans apart in the artifacts directory.
package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/img2swipes/img2swipes/pkg/cache"
	"github.com/img2swipes/img2swipes/pkg/geom"
)

// Plan is a replayable drawing: an ordered list of strokes in image
// coordinates, plus the canvas rectangle they are offset into at replay
// time. Image records the bounds the source occupied after scaling, so
// framing strokes can be derived without re-decoding the source.
type Plan struct {
	ID           string         `json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	Source       string         `json:"source,omitempty"`
	Canvas       geom.Rect      `json:"canvas"`
	Image        geom.Rect      `json:"image"`
	StrokeLength int            `json:"stroke_length"`
	Strokes      []geom.Polygon `json:"strokes"`
}

// New assembles a plan with a fresh ID and timestamp.
func New(source string, canvas geom.Rect, strokeLength int, strokes []geom.Polygon) *Plan {
	return &Plan{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Source:       source,
		Canvas:       canvas,
		StrokeLength: strokeLength,
		Strokes:      strokes,
	}
}

// Points returns the deduplicated union of all stroke points in
// first-occurrence order: the pixel set the plan reproduces.
func (p *Plan) Points() []geom.Point {
	return geom.UniquePoints(p.Strokes)
}

// BoundingRect returns the smallest rectangle containing every stroke.
func (p *Plan) BoundingRect() geom.Rect {
	return geom.BoundingRect(p.Points())
}

// Validate checks the invariants a well-formed plan file must satisfy.
func (p *Plan) Validate() error {
	if p.StrokeLength <= 0 {
		return fmt.Errorf("plan %s: stroke length must be positive, got %d", p.ID, p.StrokeLength)
	}
	s := p.Canvas.Size()
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("plan %s: canvas %v is empty", p.ID, p.Canvas)
	}
	return nil
}

// Write serializes the plan to path as indented JSON.
func (p *Plan) Write(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}
	return nil
}

// Read loads and validates a plan file.
func Read(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan %s: %w", path, err)
	}
	var p Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// CacheKey derives the cache key for a plan computed over the given
// pixel set with the given stroke length. The pixel order does not
// matter at generation time, but identical inputs must produce identical
// keys, so the caller passes the points in a canonical (scan) order.
func CacheKey(points []geom.Point, strokeLength int) string {
	return cache.Key("plan", points, strokeLength)
}
