// ════════════════════════════════════════════════════════════════════════════════════════════════
// Parallel Mandelbrot Renderer - Main Entry Point
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Project: Lock-Free Parallel Mandelbrot Renderer
// Component: Main Entry Point & Render Orchestration
//
// Description:
//   Phased orchestration with clean separation of concerns:
//   Configuration → Parallel Render → Encode → History Ledger
//
// Architecture:
//   - Phase 0: Argument/preset parsing and pool shaping (all fatal errors land here)
//   - Phase 1: Lock-free chunked render across the worker pool, joined before continuing
//   - Phase 2: PNG encoding of the fully written buffer
//   - Phase 3: Optional append to the SQLite render-history ledger
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package main

import (
	"os"
	"runtime"
	"time"

	"mandelbrot/constants"
	"mandelbrot/debug"
	"mandelbrot/dispatch"
	"mandelbrot/encode"
	"mandelbrot/ledger"
	"mandelbrot/parser"
	"mandelbrot/preset"
	"mandelbrot/render"
	"mandelbrot/utils"
)

// usage prints the invocation contract to stderr and exits non-zero.
// Called before any queue, buffer, or worker exists.
func usage() {
	utils.PrintWarning("Usage: " + os.Args[0] + " FILE PIXELS UPPERLEFT LOWERRIGHT\n")
	utils.PrintWarning("       " + os.Args[0] + " FILE @SCENE.json\n")
	utils.PrintWarning("Example: " + os.Args[0] + " mandel.png 1000x750 -1.20,0.35 -1,0.20\n")
	os.Exit(1)
}

// sceneFromArgs resolves the render scene from the command line: either the
// four-argument geometry form or the @preset shorthand.
func sceneFromArgs(args []string) (preset.Scene, error) {
	if len(args) == 2 {
		return preset.Load(args[1][1:])
	}

	var s preset.Scene
	var err error
	s.Width, s.Height, err = parser.ParseBounds(args[1])
	if err != nil {
		return s, err
	}
	s.UpperLeft, err = parser.ParseComplex(args[2])
	if err != nil {
		return s, err
	}
	s.LowerRight, err = parser.ParseComplex(args[3])
	if err != nil {
		return s, err
	}
	s.Limit = constants.IterationLimit
	return s, nil
}

// envUint reads a positive integer override from the environment.
// Unset, unparsable, or zero values fall back to def.
func envUint(name string, def int) int {
	if v, ok := utils.ParseUint(os.Getenv(name)); ok && v > 0 {
		return int(v)
	}
	return def
}

// main orchestrates one render in distinct phases.
func main() {
	// PHASE 0: Configuration — everything fatal happens before the core runs
	args := os.Args[1:]
	presetForm := len(args) == 2 && len(args[1]) > 1 && args[1][0] == '@'
	if len(args) != 4 && !presetForm {
		usage()
	}

	outPath := args[0]
	scene, err := sceneFromArgs(args)
	if err != nil {
		debug.DropError("CONFIG", err)
		usage()
	}

	workers := envUint(constants.EnvWorkers, runtime.GOMAXPROCS(0))
	chunkRows := envUint(constants.EnvChunkRows, constants.DefaultChunkRows)
	color := scene.Color || os.Getenv(constants.EnvColor) == "1"

	debug.DropMessage("SCENE", utils.Itoa(scene.Width)+"x"+utils.Itoa(scene.Height)+
		" limit "+utils.Itoa(scene.Limit)+
		", "+utils.Itoa(workers)+" workers, "+utils.Itoa(chunkRows)+" rows/chunk")

	// PHASE 1: Parallel render — the buffer is owned here, handed to workers
	// only as disjoint claimed sub-slices, and dispatch.Render does not
	// return until every worker has joined.
	bpp := 1
	fill := func(band []byte, width, rows int, ul, lr complex128) {
		render.Fill(band, width, rows, ul, lr, scene.Limit)
	}
	if color {
		bpp = 4
		fill = func(band []byte, width, rows int, ul, lr complex128) {
			render.FillRGBA(band, width, rows, ul, lr, scene.Limit)
		}
	}

	pixels := make([]byte, scene.Width*scene.Height*bpp)
	started := time.Now()
	err = dispatch.Render(pixels, dispatch.Config{
		Workers:       workers,
		ChunkRows:     chunkRows,
		Width:         scene.Width,
		Height:        scene.Height,
		UpperLeft:     scene.UpperLeft,
		LowerRight:    scene.LowerRight,
		BytesPerPixel: bpp,
		Fill:          fill,
	})
	if err != nil {
		debug.DropError("RENDER_FAULT", err)
		os.Exit(1)
	}
	elapsed := time.Since(started)

	checksum := ledger.Checksum(pixels)
	debug.DropMessage("RENDERED", utils.Itoa(int(elapsed.Milliseconds()))+" ms, checksum "+checksum[:16])

	// PHASE 2: Encode — runs strictly after the join point, so the buffer is
	// complete and no longer referenced by any worker.
	if color {
		err = encode.WriteRGBA(outPath, pixels, scene.Width, scene.Height)
	} else {
		err = encode.WriteGray(outPath, pixels, scene.Width, scene.Height)
	}
	if err != nil {
		debug.DropError("ENCODE_ERROR", err)
		os.Exit(1)
	}
	debug.DropMessage("WROTE", outPath)

	// PHASE 3: History ledger — best effort, never affects the artifact.
	if dbPath := os.Getenv(constants.EnvLedger); dbPath != "" {
		recordRender(dbPath, scene, args, outPath, workers, chunkRows, elapsed, checksum)
	}
}

// recordRender appends one completed render to the history ledger.
// Failures are reported and otherwise ignored: the image is already on disk.
func recordRender(dbPath string, scene preset.Scene, args []string, outPath string,
	workers, chunkRows int, elapsed time.Duration, checksum string) {

	l, err := ledger.Open(dbPath)
	if err != nil {
		debug.DropError("LEDGER_ERROR", err)
		return
	}
	defer l.Close()

	ul, lr := "", ""
	if len(args) == 4 {
		ul, lr = args[2], args[3]
	} else {
		ul = args[1] // preset form: record the @file reference
	}

	chunks := (scene.Height + chunkRows - 1) / chunkRows

	err = l.Append(ledger.Record{
		RenderedAt: time.Now(),
		Width:      scene.Width,
		Height:     scene.Height,
		UpperLeft:  ul,
		LowerRight: lr,
		Limit:      scene.Limit,
		Workers:    workers,
		ChunkRows:  chunkRows,
		Chunks:     chunks,
		Elapsed:    elapsed,
		Checksum:   checksum,
		Output:     outPath,
	})
	if err != nil {
		debug.DropError("LEDGER_ERROR", err)
		return
	}
	debug.DropMessage("LEDGER", "recorded render in "+dbPath)
}
