// Package raster turns rendered SVG markup into pixels. It exists for the
// preview window and PNG export; the layout engine itself never rasterizes.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Render rasterizes SVG markup at its intrinsic size.
func Render(markup string) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("raster: parse svg: %w", err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: svg has no size (%dx%d)", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return img, nil
}

// WritePNG rasterizes markup and writes it to path as a PNG.
func WritePNG(markup, path string) error {
	img, err := Render(markup)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return f.Close()
}
