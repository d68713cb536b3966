// Package text measures text extents for layout. Measurement goes through a
// gg raster context when a font face is available and falls back to a rough
// estimate otherwise, so layout stays usable on systems without fonts.
package text

import (
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// DefaultFontPath is the font used when a caller does not name one. Empty
// means no font is configured and measurement uses the estimate.
var DefaultFontPath = defaultFontPath()

func defaultFontPath() string {
	if p := os.Getenv("PICTOR_FONT"); p != "" {
		return p
	}
	// Try next to the executable, mirroring an installed layout.
	if exe, err := os.Executable(); err == nil {
		p := filepath.Join(filepath.Dir(exe), "..", "fonts", "default.ttf")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Measure returns the width and height of text at fontSize using the font at
// fontPath. If the font cannot be loaded it returns a rough estimate so
// callers never fail on measurement.
func Measure(text string, fontSize float64, fontPath string) (width, height float64) {
	if fontPath != "" {
		dc := gg.NewContext(1, 1)
		if err := dc.LoadFontFace(fontPath, fontSize); err == nil {
			return dc.MeasureString(text)
		}
	}
	return estimate(text, fontSize)
}

// MeasureDefault measures text using the default font.
func MeasureDefault(text string, fontSize float64) (width, height float64) {
	return Measure(text, fontSize, DefaultFontPath)
}

// estimate approximates proportional text extents from the glyph count.
func estimate(text string, fontSize float64) (width, height float64) {
	n := 0
	for range text {
		n++
	}
	return float64(n) * fontSize * 0.6, fontSize * 1.2
}
