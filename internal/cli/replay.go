package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/img2swipes/img2swipes/pkg/device"
	"github.com/img2swipes/img2swipes/pkg/geom"
	"github.com/img2swipes/img2swipes/pkg/plan"
)

// replayCommand creates the replay command: saved plan in, touch
// gestures out.
func (c *CLI) replayCommand() *cobra.Command {
	var (
		configPath string
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "replay <plan.json>",
		Short: "Draw a saved stroke plan on a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			p, err := plan.Read(args[0])
			if err != nil {
				return err
			}
			if err := c.replayStrokes(cmd.Context(), cfg, p.Canvas, p.Strokes, yes); err != nil {
				return err
			}
			printSuccess("Replayed plan %s", p.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// replayStrokes opens a device session and performs strokes offset into
// canvas. Unless yes is set, the user confirms first; declining is not
// an error.
func (c *CLI) replayStrokes(ctx context.Context, cfg *Config, canvas geom.Rect, strokes []geom.Polygon, yes bool) error {
	if !yes {
		ok, err := confirm(fmt.Sprintf("Draw %d strokes on the connected %s device?",
			len(strokes), cfg.TargetPlatform))
		if err != nil {
			return err
		}
		if !ok {
			printInfo("Aborted")
			return nil
		}
	}

	caps, err := device.PlatformCapabilities(cfg.TargetPlatform)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	sess, err := device.NewSession(ctx, cfg.ServerURL, caps)
	if err != nil {
		return err
	}
	defer func() {
		if err := sess.Close(context.WithoutCancel(ctx)); err != nil {
			c.Logger.Warn("session cleanup failed", "err", err)
		}
	}()
	c.Logger.Debug("session opened", "id", sess.ID(), "server", cfg.ServerURL)

	swiper := device.NewSwiper(sess, canvas.Min,
		time.Duration(cfg.Strokes.DurationMS)*time.Millisecond)

	bar := newBar("Drawing", len(strokes))
	err = swiper.SwipeAll(ctx, strokes, bar.Set)
	bar.Finish()
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Drew %d strokes", len(strokes)))
	return nil
}
