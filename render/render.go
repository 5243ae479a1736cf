// ============================================================================
// ESCAPE-TIME RENDERER
// ============================================================================
//
// Fills pixel bands with Mandelbrot membership intensities. Pure CPU-bound
// computation: no allocation, no failure mode, no shared state — each call
// writes only the band it is handed, which is what makes the lock-free
// dispatch above it sound.
//
// Intensity mapping (grayscale):
//   - point escapes after n < limit iterations  →  255 - n
//   - point never escapes within limit          →  0
//
// The smooth RGBA mapping is an alternative output mode using the same
// escape counts; membership (black pixels) agrees with the grayscale fill.

package render

import "mandelbrot/plane"

// EscapeRadiusSq is the squared escape bound for the recurrence z = z² + c.
// A point whose orbit leaves the radius-2 circle never returns.
const EscapeRadiusSq = 4.0

// EscapeTime iterates z = z² + c from z = 0 for at most limit rounds.
//
// Returns (n, true) when the orbit escapes the radius-2 circle after n
// iterations, or (0, false) when c could not be proven outside the set
// within the iteration budget.
//
// The escape test squares magnitudes to avoid the sqrt in abs(z).
//
//go:inline
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for n := 0; n < limit; n++ {
		if real(z)*real(z)+imag(z)*imag(z) > EscapeRadiusSq {
			return n, true
		}
		z = z*z + c
	}
	return 0, false
}

// Fill renders a width×rows grayscale band into pixels (one byte per pixel,
// row-major). upperLeft and lowerRight are the plane coordinates of the
// band's own corners.
//
// len(pixels) must equal width*rows; the band is always filled completely.
func Fill(pixels []byte, width, rows int, upperLeft, lowerRight complex128, limit int) {
	if len(pixels) != width*rows {
		panic("render: band length does not match geometry")
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < width; col++ {
			point := plane.PixelToPoint(width, rows, col, row, upperLeft, lowerRight)
			n, escaped := EscapeTime(point, limit)
			v := byte(0)
			if escaped {
				v = byte(255 - n)
			}
			pixels[row*width+col] = v
		}
	}
}

// FillRGBA renders a width×rows smooth-colored band into pixels (four bytes
// per pixel, row-major RGBA). Interior points are black; escaping points get
// the classic blue→purple→red→yellow polynomial gradient.
func FillRGBA(pixels []byte, width, rows int, upperLeft, lowerRight complex128, limit int) {
	if len(pixels) != width*rows*4 {
		panic("render: band length does not match geometry")
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < width; col++ {
			point := plane.PixelToPoint(width, rows, col, row, upperLeft, lowerRight)
			n, escaped := EscapeTime(point, limit)
			o := (row*width + col) * 4
			if !escaped {
				pixels[o], pixels[o+1], pixels[o+2], pixels[o+3] = 0, 0, 0, 255
				continue
			}
			r, g, b := colorMap(n, limit)
			pixels[o], pixels[o+1], pixels[o+2], pixels[o+3] = r, g, b, 255
		}
	}
}

// colorMap converts an escape count into a smooth RGB gradient.
func colorMap(n, limit int) (r, g, b byte) {
	t := float64(n) / float64(limit)
	r = byte(9.0 * (1 - t) * t * t * t * 255.0)
	g = byte(15.0 * (1 - t) * (1 - t) * t * t * 255.0)
	b = byte(8.5 * (1 - t) * (1 - t) * (1 - t) * t * 255.0)
	return
}
