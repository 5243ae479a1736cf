// ============================================================================
// DISPATCH CORRECTNESS SUITE
// ============================================================================
//
// Verifies the worker-pool contract end to end:
//   - Every buffer position is written exactly once per render (write-count
//     stamping across worker counts and chunk shapes)
//   - Output bytes are invariant to worker count (scheduling independence)
//   - Worker panics surface as a single error after the join point
//   - Config validation rejects impossible geometry before launching

package dispatch

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"mandelbrot/render"
)

// incrementFill bumps every byte of its band by one, so a finished buffer
// must read exactly 1 everywhere iff each position was written exactly once.
func incrementFill(band []byte, width, rows int, _, _ complex128) {
	if len(band) != width*rows {
		panic("band length does not match geometry")
	}
	for i := range band {
		band[i]++
	}
}

func TestRenderWritesEveryPixelExactlyOnce(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		chunkRows     int
		workers       int
	}{
		{"one_worker", 64, 48, 4, 1},
		{"eight_workers", 64, 48, 4, 8},
		{"truncated_tail_chunk", 50, 37, 8, 8},
		{"chunk_covers_raster", 32, 32, 64, 4},
		{"single_row_chunks", 40, 25, 1, 16},
		{"more_workers_than_chunks", 10, 4, 2, 32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pixels := make([]byte, tc.width*tc.height)
			err := Render(pixels, Config{
				Workers:       tc.workers,
				ChunkRows:     tc.chunkRows,
				Width:         tc.width,
				Height:        tc.height,
				UpperLeft:     complex(-1, 1),
				LowerRight:    complex(1, -1),
				BytesPerPixel: 1,
				Fill:          incrementFill,
			})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			for i, v := range pixels {
				if v != 1 {
					t.Fatalf("position %d written %d times, want exactly 1", i, v)
				}
			}
		})
	}
}

func TestRenderOutputInvariantToWorkerCount(t *testing.T) {
	const w, h, chunkRows, limit = 96, 64, 5, 255
	ul, lr := complex(-2.2, 1.2), complex(1.0, -1.2)

	renderWith := func(workers int) []byte {
		pixels := make([]byte, w*h)
		err := Render(pixels, Config{
			Workers:       workers,
			ChunkRows:     chunkRows,
			Width:         w,
			Height:        h,
			UpperLeft:     ul,
			LowerRight:    lr,
			BytesPerPixel: 1,
			Fill: func(band []byte, width, rows int, bandUL, bandLR complex128) {
				render.Fill(band, width, rows, bandUL, bandLR, limit)
			},
		})
		if err != nil {
			t.Fatalf("Render with %d workers: %v", workers, err)
		}
		return pixels
	}

	reference := renderWith(1)
	for _, workers := range []int{2, 8, runtime.GOMAXPROCS(0)} {
		if got := renderWith(workers); !bytes.Equal(got, reference) {
			t.Fatalf("%d-worker render differs from 1-worker render", workers)
		}
	}
}

func TestRenderSurfacesWorkerFault(t *testing.T) {
	pixels := make([]byte, 64*64)
	err := Render(pixels, Config{
		Workers:       8,
		ChunkRows:     4,
		Width:         64,
		Height:        64,
		UpperLeft:     complex(-1, 1),
		LowerRight:    complex(1, -1),
		BytesPerPixel: 1,
		Fill: func(band []byte, width, rows int, _, _ complex128) {
			panic("delegate blew up")
		},
	})
	if err == nil {
		t.Fatal("Render returned nil after worker panics")
	}
	if !strings.Contains(err.Error(), "delegate blew up") {
		t.Fatalf("fault error %q does not carry the panic value", err)
	}
}

func TestRenderConfigValidation(t *testing.T) {
	valid := Config{
		Workers:       1,
		ChunkRows:     1,
		Width:         4,
		Height:        4,
		BytesPerPixel: 1,
		Fill:          incrementFill,
	}

	cases := []struct {
		name   string
		mutate func(*Config, *[]byte)
	}{
		{"zero_workers", func(c *Config, _ *[]byte) { c.Workers = 0 }},
		{"zero_chunk_rows", func(c *Config, _ *[]byte) { c.ChunkRows = 0 }},
		{"zero_width", func(c *Config, _ *[]byte) { c.Width = 0 }},
		{"negative_height", func(c *Config, _ *[]byte) { c.Height = -1 }},
		{"nil_fill", func(c *Config, _ *[]byte) { c.Fill = nil }},
		{"zero_bpp", func(c *Config, _ *[]byte) { c.BytesPerPixel = 0 }},
		{"short_buffer", func(_ *Config, b *[]byte) { *b = (*b)[:7] }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			buf := make([]byte, 16)
			tc.mutate(&cfg, &buf)
			if err := Render(buf, cfg); err == nil {
				t.Fatal("Render accepted invalid configuration")
			}
		})
	}
}

func TestRenderRGBABands(t *testing.T) {
	const w, h = 24, 16
	pixels := make([]byte, w*h*4)
	err := Render(pixels, Config{
		Workers:       4,
		ChunkRows:     3,
		Width:         w,
		Height:        h,
		UpperLeft:     complex(-2.2, 1.2),
		LowerRight:    complex(1.0, -1.2),
		BytesPerPixel: 4,
		Fill: func(band []byte, width, rows int, bandUL, bandLR complex128) {
			render.FillRGBA(band, width, rows, bandUL, bandLR, 255)
		},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i := 0; i < w*h; i++ {
		if pixels[i*4+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255 (position never rendered?)", i, pixels[i*4+3])
		}
	}
}
