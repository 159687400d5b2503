package cli

import (
	"github.com/spf13/cobra"

	"github.com/img2swipes/img2swipes/pkg/geom"
	"github.com/img2swipes/img2swipes/pkg/plan"
)

// drawCommand creates the draw command: plan an image and immediately
// replay it on the device.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		configPath string
		noCache    bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "draw <image>",
		Short: "Convert an image into strokes and draw them on a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			defer c.fileLogger(cfg.ArtifactsDir)()

			store, err := newCache(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			p, cached, err := c.buildPlan(cmd.Context(), cfg, store, args[0])
			if err != nil {
				return err
			}
			if err := c.writeArtifacts(cfg, p); err != nil {
				return err
			}
			printStats(len(p.Points()), len(p.Strokes), cached)

			strokes := append(frameStrokes(cfg, p), p.Strokes...)
			if err := c.replayStrokes(cmd.Context(), cfg, p.Canvas, strokes, yes); err != nil {
				return err
			}

			printSuccess("Drew %s", args[0])
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the plan cache")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// frameStrokes builds the helper rectangles traced before the image:
// the canvas border, the scaled image border and the content bounding
// box, as configured. Outlines are densified so the device replays them
// as smooth motions, then chunked to the stroke length.
func frameStrokes(cfg *Config, p *plan.Plan) []geom.Polygon {
	var rects []geom.Rect
	if cfg.Frame.Canvas {
		size := p.Canvas.Size()
		rects = append(rects, geom.Rect{
			Max: geom.Point{X: size.Width - 1, Y: size.Height - 1},
		})
	}
	if cfg.Frame.Image {
		rects = append(rects, p.Image)
	}
	if cfg.Frame.Content && len(p.Strokes) > 0 {
		rects = append(rects, p.BoundingRect())
	}

	steps := (cfg.Strokes.Length + 3) / 4
	var strokes []geom.Polygon
	for _, r := range rects {
		outline := r.Outline().Lerp(steps)
		strokes = append(strokes, outline.Split(cfg.Strokes.Length)...)
	}
	return strokes
}
