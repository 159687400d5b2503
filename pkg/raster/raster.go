// Package raster turns image files into the foreground pixel sets the
// stroke generator consumes, and renders pixel/stroke previews back out
// as BMP artifacts.
//
// Raster formats (PNG, JPEG, GIF, BMP, TIFF, WebP) are decoded with the
// standard registry; SVG files are rasterized to fit the canvas. Images
// are scaled with Lanczos resampling, then thresholded: a pixel is
// foreground when it is visible (alpha > 0) and darker than the
// configured luminosity cutoff.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// Raster decoders for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/img2swipes/img2swipes/pkg/geom"
)

// Load decodes the image at path and scales it to fit within
// maxWidth x maxHeight, preserving aspect ratio. SVG files are
// rasterized directly at the fitting resolution.
func Load(path string, maxWidth, maxHeight int) (image.Image, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d is empty", maxWidth, maxHeight)
	}
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return loadSVG(path, maxWidth, maxHeight)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return Fit(img, maxWidth, maxHeight), nil
}

// Fit scales img so it fits within maxWidth x maxHeight, preserving
// aspect ratio. Small images are scaled up; an image already at the
// right size passes through untouched.
func Fit(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return img
	}
	scale := math.Min(float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
	nw := int(math.Round(float64(w) * scale))
	nh := int(math.Round(float64(h) * scale))
	if nw == w && nh == h {
		return img
	}
	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}

// Threshold returns the foreground pixels of img: visible pixels whose
// luminosity falls below maxLuminosity (0-255). Coordinates are relative
// to the image's top-left corner, scanned row-major.
func Threshold(img image.Image, maxLuminosity int) []geom.Point {
	b := img.Bounds()
	var points []geom.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			if luminosity(c) < maxLuminosity {
				points = append(points, geom.Point{X: x - b.Min.X, Y: y - b.Min.Y})
			}
		}
	}
	return points
}

// luminosity is the ITU-R 601-2 luma of a non-premultiplied color.
func luminosity(c color.NRGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
