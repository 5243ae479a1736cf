// ============================================================================
// SCENE PRESET LOADER
// ============================================================================
//
// Loads named render scenes from JSON files, so interesting views can be
// re-rendered without retyping corner coordinates:
//
//   {
//     "width": 1200,
//     "height": 800,
//     "upper_left": "-2.2,1.2",
//     "lower_right": "1.0,-1.2",
//     "limit": 255,
//     "color": false
//   }
//
// Corners reuse the CLI "RE,IM" syntax so a preset is copy-pasteable to and
// from a command line. limit defaults to constants.IterationLimit; a limit
// above 255 would alias grayscale intensities, so it is capped there.

package preset

import (
	"fmt"
	"os"

	"mandelbrot/constants"
	"mandelbrot/parser"

	"github.com/sugawarayuuta/sonnet"
)

// Scene is a fully resolved render configuration.
type Scene struct {
	Width, Height int
	UpperLeft     complex128
	LowerRight    complex128
	Limit         int
	Color         bool
}

// sceneFile is the on-disk JSON shape before corner parsing.
type sceneFile struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	UpperLeft  string `json:"upper_left"`
	LowerRight string `json:"lower_right"`
	Limit      int    `json:"limit"`
	Color      bool   `json:"color"`
}

// Load reads and validates a scene preset from path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("preset: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode parses a scene preset from raw JSON.
func Decode(data []byte) (Scene, error) {
	var f sceneFile
	if err := sonnet.Unmarshal(data, &f); err != nil {
		return Scene{}, fmt.Errorf("preset: malformed JSON: %w", err)
	}

	if f.Width <= 0 || f.Height <= 0 {
		return Scene{}, fmt.Errorf("preset: bounds %dx%d must be positive", f.Width, f.Height)
	}
	ul, err := parser.ParseComplex(f.UpperLeft)
	if err != nil {
		return Scene{}, fmt.Errorf("preset: upper_left: %w", err)
	}
	lr, err := parser.ParseComplex(f.LowerRight)
	if err != nil {
		return Scene{}, fmt.Errorf("preset: lower_right: %w", err)
	}

	limit := f.Limit
	switch {
	case limit < 0:
		return Scene{}, fmt.Errorf("preset: limit %d must be >= 0", limit)
	case limit == 0:
		limit = constants.IterationLimit
	case limit > constants.IterationLimit:
		limit = constants.IterationLimit // grayscale bytes cannot express more
	}

	return Scene{
		Width:      f.Width,
		Height:     f.Height,
		UpperLeft:  ul,
		LowerRight: lr,
		Limit:      limit,
		Color:      f.Color,
	}, nil
}
