package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
)

// ScreenshotName returns a timestamped PNG path inside dir.
func ScreenshotName(dir, prefix string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", prefix, at.Format("2006-01-02_15-04-05.000")))
}

// Screenshot saves raw RGBA framebuffer pixels as a PNG. Rows are flipped
// because OpenGL reads from the bottom-left corner.
func Screenshot(pixels []byte, width, height int, path string) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	// The framebuffer has no meaningful alpha.
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}

	if err := imgio.Save(path, transform.FlipV(img), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
