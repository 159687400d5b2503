package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// planCommand creates the plan command: image in, stroke plan out.
func (c *CLI) planCommand() *cobra.Command {
	var (
		configPath string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "plan <image>",
		Short: "Convert an image into a stroke plan",
		Long: `Plan decodes an image, scales it to the configured canvas, thresholds it
to a foreground pixel set and converts the pixels into an ordered list of
fixed-length strokes. The plan and its BMP previews are written to the
artifacts directory.`,
		Args: cobra.ExactArgs(1),
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

			printSuccess("Planned %s", args[0])
			printStats(len(p.Points()), len(p.Strokes), cached)
			printNextStep("Replay on a device", fmt.Sprintf("%s replay %s/%s.json", appName, cfg.ArtifactsDir, p.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to config.toml")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the plan cache")
	return cmd
}
