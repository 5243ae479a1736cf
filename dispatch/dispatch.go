// ============================================================================
// PARALLEL RENDER DISPATCH
// ============================================================================
//
// Drives a fixed pool of worker goroutines over one chunkqueue.Queue and one
// shared pixel buffer. Workers race to claim row-aligned pixel ranges; each
// worker re-slices the buffer to exactly its claimed range, so no two
// workers ever hold overlapping writable views — the queue's tiling
// invariant is the entire synchronization story.
//
// Lifetime model:
//   - Render launches N workers and does not return until every one of them
//     has terminated (sync.WaitGroup join)
//   - The caller therefore never observes a partially-written buffer, and
//     the buffer provably outlives every goroutine that references it
//
// Fault model:
//   - A panic inside a worker is recovered by that worker, reported through
//     a buffered channel, and surfaced as an error from Render after all
//     workers have joined; the first fault wins
//   - Queue exhaustion is the normal termination signal, not a fault

package dispatch

import (
	"fmt"
	"sync"

	"mandelbrot/chunkqueue"
	"mandelbrot/plane"
)

// ============================================================================
// CONFIGURATION
// ============================================================================

// Fill renders one row-aligned band. band covers rows*width pixels at
// bytesPerPixel bytes each; upperLeft/lowerRight are the plane coordinates
// of the band's own corners.
type Fill func(band []byte, width, rows int, upperLeft, lowerRight complex128)

// Config fixes the render geometry and pool shape for one Render call.
type Config struct {
	Workers       int        // Worker goroutine count, >= 1
	ChunkRows     int        // Rows per claimed chunk, >= 1
	Width, Height int        // Raster dimensions in pixels
	UpperLeft     complex128 // Plane coordinate of pixel (0, 0)
	LowerRight    complex128 // Plane coordinate of pixel (Width, Height)
	BytesPerPixel int        // 1 for grayscale, 4 for RGBA
	Fill          Fill       // Band renderer, called once per claimed chunk
}

func (c Config) validate(buflen int) error {
	if c.Workers < 1 {
		return fmt.Errorf("dispatch: worker count %d, want >= 1", c.Workers)
	}
	if c.ChunkRows < 1 {
		return fmt.Errorf("dispatch: chunk rows %d, want >= 1", c.ChunkRows)
	}
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("dispatch: raster %dx%d, want positive bounds", c.Width, c.Height)
	}
	if c.BytesPerPixel < 1 {
		return fmt.Errorf("dispatch: %d bytes per pixel, want >= 1", c.BytesPerPixel)
	}
	if c.Fill == nil {
		return fmt.Errorf("dispatch: nil fill delegate")
	}
	if want := c.Width * c.Height * c.BytesPerPixel; buflen != want {
		return fmt.Errorf("dispatch: buffer length %d, want %d", buflen, want)
	}
	return nil
}

// ============================================================================
// RENDER ORCHESTRATION
// ============================================================================

// Render fills pixels in parallel and returns once every worker has joined.
//
// The queue distributes the pixel index space [0, Width*Height) in chunks of
// ChunkRows*Width, so every claim is row-aligned: start/Width is the chunk's
// top row and (end-start)/Width its height. Each worker derives its writable
// view as pixels[start*bpp : end*bpp] from the claimed indices alone.
//
// On return the buffer is fully rendered, or an error describes the first
// worker fault (the buffer contents are then unspecified).
func Render(pixels []byte, cfg Config) error {
	if err := cfg.validate(len(pixels)); err != nil {
		return err
	}

	total := uint64(cfg.Width) * uint64(cfg.Height)
	queue := chunkqueue.New(total, uint64(cfg.ChunkRows)*uint64(cfg.Width))

	faults := make(chan error, cfg.Workers)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					faults <- fmt.Errorf("dispatch: worker fault: %v", r)
				}
			}()
			workLoop(pixels, queue, cfg)
		}()
	}

	// Join point: no code below runs while any worker is alive.
	wg.Wait()
	close(faults)
	return <-faults // nil when the channel drained empty
}

// workLoop claims ranges until exhaustion, rendering one band per claim.
// Runs entirely on one goroutine; shares nothing but the queue cursor and
// its own disjoint slices of the buffer.
func workLoop(pixels []byte, queue *chunkqueue.Queue, cfg Config) {
	for {
		start, end, ok := queue.Claim()
		if !ok {
			return // Queue drained — normal termination
		}

		// Chunk width is a multiple of Width and total is Width*Height, so
		// every claim (including the truncated tail) is row-aligned.
		top := int(start) / cfg.Width
		rows := int(end-start) / cfg.Width

		band := pixels[start*uint64(cfg.BytesPerPixel) : end*uint64(cfg.BytesPerPixel)]
		bandUL := plane.PixelToPoint(cfg.Width, cfg.Height, 0, top, cfg.UpperLeft, cfg.LowerRight)
		bandLR := plane.PixelToPoint(cfg.Width, cfg.Height, cfg.Width, top+rows, cfg.UpperLeft, cfg.LowerRight)

		cfg.Fill(band, cfg.Width, rows, bandUL, bandLR)
	}
}
