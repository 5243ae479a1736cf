// ============================================================================
// COMMAND ARGUMENT PARSER
// ============================================================================
//
// Parses the textual render geometry handed over on the command line:
//
//   PIXELS      "1200x800"      → raster width and height
//   UPPERLEFT   "-2.2,1.2"      → complex plane corner
//   LOWERRIGHT  "1.0,-1.2"      → complex plane corner
//
// All parsing happens before any worker or buffer exists; malformed input is
// a configuration error surfaced to the caller, never retried.

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// splitPair splits s into the two halves around the first occurrence of sep.
// Both halves must be non-empty.
func splitPair(s string, sep byte) (left, right string, ok bool) {
	i := strings.IndexByte(s, sep)
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// ParseBounds parses a "WIDTHxHEIGHT" raster dimension pair.
// Both dimensions must be positive integers.
func ParseBounds(s string) (width, height int, err error) {
	l, r, ok := splitPair(s, 'x')
	if !ok {
		return 0, 0, fmt.Errorf("parser: bounds %q not in WIDTHxHEIGHT form", s)
	}
	width, err = strconv.Atoi(l)
	if err != nil {
		return 0, 0, fmt.Errorf("parser: bad width in %q: %v", s, err)
	}
	height, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("parser: bad height in %q: %v", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("parser: bounds %q must be positive", s)
	}
	return width, height, nil
}

// ParseComplex parses a "RE,IM" pair into a complex plane coordinate.
func ParseComplex(s string) (complex128, error) {
	l, r, ok := splitPair(s, ',')
	if !ok {
		return 0, fmt.Errorf("parser: coordinate %q not in RE,IM form", s)
	}
	re, err := strconv.ParseFloat(l, 64)
	if err != nil {
		return 0, fmt.Errorf("parser: bad real part in %q: %v", s, err)
	}
	im, err := strconv.ParseFloat(r, 64)
	if err != nil {
		return 0, fmt.Errorf("parser: bad imaginary part in %q: %v", s, err)
	}
	return complex(re, im), nil
}
