package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/img2swipes/img2swipes/pkg/plan"
	"github.com/img2swipes/img2swipes/pkg/raster"
)

// previewCommand creates the preview command: re-render the BMP
// previews of a saved plan.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <plan.json>",
		Short: "Re-render the BMP previews of a saved plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := plan.Read(args[0])
			if err != nil {
				return err
			}

			base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))

			pixelsPath := base + ".pixels.bmp"
			if err := raster.WriteBMP(pixelsPath, raster.RenderPoints(p.Points())); err != nil {
				return err
			}
			printFile(pixelsPath)

			swipesPath := base + ".swipes.bmp"
			if err := raster.WriteBMP(swipesPath, raster.RenderStrokes(p.Strokes)); err != nil {
				return err
			}
			printFile(swipesPath)

			printSuccess("Rendered previews for plan %s", p.ID)
			return nil
		},
	}
}
