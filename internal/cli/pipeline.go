package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/img2swipes/img2swipes/pkg/cache"
	"github.com/img2swipes/img2swipes/pkg/geom"
	"github.com/img2swipes/img2swipes/pkg/plan"
	"github.com/img2swipes/img2swipes/pkg/raster"
	"github.com/img2swipes/img2swipes/pkg/stroke"
)

// buildPlan runs the image-to-strokes pipeline: decode and fit the
// image, threshold it to a pixel set, and generate strokes. Identical
// inputs are served from the plan cache; cached reports which way the
// plan came.
func (c *CLI) buildPlan(ctx context.Context, cfg *Config, store cache.Cache, imagePath string) (p *plan.Plan, cached bool, err error) {
	prog := newProgress(c.Logger)

	img, err := raster.Load(imagePath, cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return nil, false, err
	}
	bounds := img.Bounds()
	c.Logger.Debug("image loaded", "path", imagePath,
		"width", bounds.Dx(), "height", bounds.Dy())

	points := raster.Threshold(img, cfg.Strokes.LuminosityThreshold)
	c.Logger.Debug("thresholded", "pixels", len(points),
		"max_luminosity", cfg.Strokes.LuminosityThreshold)

	key := plan.CacheKey(points, cfg.Strokes.Length)
	if data, hit, cacheErr := store.Get(ctx, key); cacheErr != nil {
		c.Logger.Warn("cache lookup failed", "err", cacheErr)
	} else if hit {
		var cp plan.Plan
		if err := json.Unmarshal(data, &cp); err == nil {
			prog.done(fmt.Sprintf("Loaded %d strokes from cache", len(cp.Strokes)))
			return &cp, true, nil
		}
		c.Logger.Warn("discarding unreadable cache entry", "key", key)
	}

	strokes, err := stroke.Generate(points, cfg.Strokes.Length)
	if err != nil {
		return nil, false, err
	}
	p = plan.New(imagePath, cfg.CanvasRect(), cfg.Strokes.Length, strokes)
	p.Image = geom.Rect{
		Max: geom.Point{X: bounds.Dx() - 1, Y: bounds.Dy() - 1},
	}

	if data, err := json.Marshal(p); err == nil {
		if err := store.Set(ctx, key, data, 0); err != nil {
			c.Logger.Warn("cache store failed", "err", err)
		}
	}

	prog.done(fmt.Sprintf("Generated %d strokes from %d pixels", len(strokes), len(points)))
	return p, false, nil
}

// writeArtifacts saves the plan document and its BMP previews, named by
// plan ID so the serve command can address them.
func (c *CLI) writeArtifacts(cfg *Config, p *plan.Plan) error {
	if err := os.MkdirAll(cfg.ArtifactsDir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}

	planPath := filepath.Join(cfg.ArtifactsDir, p.ID+".json")
	if err := p.Write(planPath); err != nil {
		return err
	}
	printFile(planPath)

	pixelsPath := filepath.Join(cfg.ArtifactsDir, p.ID+".pixels.bmp")
	if err := raster.WriteBMP(pixelsPath, raster.RenderPoints(p.Points())); err != nil {
		return err
	}
	printFile(pixelsPath)

	swipesPath := filepath.Join(cfg.ArtifactsDir, p.ID+".swipes.bmp")
	if err := raster.WriteBMP(swipesPath, raster.RenderStrokes(p.Strokes)); err != nil {
		return err
	}
	printFile(swipesPath)

	return nil
}
