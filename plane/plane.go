// plane.go — raster-to-complex-plane coordinate mapping.
package plane

// PixelToPoint returns the point on the complex plane corresponding to pixel
// (col, row) of a width×height raster whose corners map to upperLeft and
// lowerRight.
//
// The imaginary component is subtracted because row indices grow downward
// while the imaginary axis grows upward.
//
//go:inline
func PixelToPoint(width, height, col, row int, upperLeft, lowerRight complex128) complex128 {
	planeW := real(lowerRight) - real(upperLeft)
	planeH := imag(upperLeft) - imag(lowerRight)
	return complex(
		real(upperLeft)+float64(col)*planeW/float64(width),
		imag(upperLeft)-float64(row)*planeH/float64(height),
	)
}
