// ============================================================================
// PNG OUTPUT ENCODER
// ============================================================================
//
// Writes a finished pixel buffer to disk as PNG. Runs strictly after the
// dispatch join point, so it always sees a fully rendered buffer and never
// shares it with a live worker. Encoding failures are their own error
// category, distinct from render faults.

package encode

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WriteGray writes a width×height single-channel raster (one byte per
// pixel, row-major) to path as a grayscale PNG.
//
// The buffer is wrapped, not copied: image.Gray adopts pixels directly.
func WriteGray(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("encode: buffer length %d does not match %dx%d raster",
			len(pixels), width, height)
	}
	img := &image.Gray{
		Pix:    pixels,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
	return writePNG(path, img)
}

// WriteRGBA writes a width×height four-channel raster (RGBA, row-major)
// to path as a color PNG.
func WriteRGBA(path string, pixels []byte, width, height int) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("encode: buffer length %d does not match %dx%d RGBA raster",
			len(pixels), width, height)
	}
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("encode: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("encode: close %s: %w", path, err)
	}
	return nil
}
