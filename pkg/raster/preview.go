package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

// paletteSize is the number of distinct stroke colors before the
// palette cycles.
const paletteSize = 50

// Palette returns n fully saturated colors evenly spaced around the hue
// wheel, so consecutive strokes are easy to tell apart in a preview.
func Palette(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := range colors {
		r, g, b := colorful.Hsv(float64(i)*360/float64(n), 1, 1).RGB255()
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// RenderStrokes draws each stroke in its own palette color on a white
// background. Strokes are translated so the drawing's bounding box
// starts at the origin.
func RenderStrokes(strokes []geom.Polygon) *image.RGBA {
	points := geom.UniquePoints(strokes)
	img, min := blankCanvas(points)
	palette := Palette(paletteSize)
	for i, stroke := range strokes {
		c := palette[i%len(palette)]
		for _, p := range stroke {
			img.SetRGBA(p.X-min.X, p.Y-min.Y, c)
		}
	}
	return img
}

// RenderPoints draws a pixel set in black on a white background,
// translated so its bounding box starts at the origin.
func RenderPoints(points []geom.Point) *image.RGBA {
	img, min := blankCanvas(points)
	black := color.RGBA{A: 255}
	for _, p := range points {
		img.SetRGBA(p.X-min.X, p.Y-min.Y, black)
	}
	return img
}

// blankCanvas allocates a white image sized to the bounding box of
// points and returns it together with the box's top-left corner. An
// empty point set yields a single white pixel.
func blankCanvas(points []geom.Point) (*image.RGBA, geom.Point) {
	if len(points) == 0 {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.SetRGBA(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return img, geom.Point{}
	}
	box := geom.BoundingRect(points)
	size := box.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return img, box.Min
}

// WriteBMP encodes img as a BMP file at path.
func WriteBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		return fmt.Errorf("encode bmp %s: %w", path, err)
	}
	return nil
}
