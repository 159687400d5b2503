package raster

import (
	"fmt"
	"image"
	"math"
	"os"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
)

// loadSVG parses an SVG file and rasterizes it at the resolution that
// makes the result fit within maxWidth x maxHeight pixels. Vector input
// never goes through the Lanczos resize path; it is drawn at target
// size directly.
func loadSVG(path string, maxWidth, maxHeight int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open svg: %w", err)
	}
	defer f.Close()

	c, err := canvas.ParseSVG(f)
	if err != nil {
		return nil, fmt.Errorf("parse svg %s: %w", path, err)
	}
	if c.W <= 0 || c.H <= 0 {
		return nil, fmt.Errorf("svg %s has no drawable area", path)
	}

	// Canvas dimensions are in millimeters; pick the dots-per-millimeter
	// that fills the larger of the two axes.
	dpmm := math.Min(float64(maxWidth)/c.W, float64(maxHeight)/c.H)
	return rasterizer.Draw(c, canvas.DPMM(dpmm), canvas.DefaultColorSpace), nil
}
