// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go — Global Render Tunables
//
// Purpose:
//   - Defines renderer-wide constants: iteration budget, chunk sizing,
//     environment override names.
//
// Notes:
//   - Chunk sizing trades scheduling granularity against cursor contention;
//     the default keeps claim traffic negligible next to per-pixel work.
//
// ⚠️ No runtime logic here — all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ──────────────────────────── Escape Iteration ─────────────────────────────

const (
	// IterationLimit bounds the escape-time recurrence per pixel.
	// 255 is the ceiling the grayscale intensity mapping (255 - count) can
	// express without aliasing two escape counts onto one byte value.
	IterationLimit = 255
)

// ───────────────────────────── Work Distribution ───────────────────────────

const (
	// DefaultChunkRows is the number of raster rows per claimed chunk.
	// At 16 rows a 1200x800 render produces 50 chunks: enough granularity
	// to keep an 8-core pool balanced on the expensive interior regions,
	// few enough that CAS traffic on the cursor stays unmeasurable.
	DefaultChunkRows = 16
)

// ──────────────────────── Environment Overrides ────────────────────────────
//
// All pool/output tunables are overridable per-run without recompiling.
// Unset or unparsable values silently fall back to the defaults.

const (
	// EnvWorkers overrides the worker goroutine count (default GOMAXPROCS).
	EnvWorkers = "MANDEL_WORKERS"

	// EnvChunkRows overrides rows per claimed chunk (default DefaultChunkRows).
	EnvChunkRows = "MANDEL_CHUNK"

	// EnvColor selects the smooth RGB output mapping when set to "1".
	EnvColor = "MANDEL_COLOR"

	// EnvLedger names a SQLite render-history database; when set, every
	// completed render appends a record there.
	EnvLedger = "MANDEL_LEDGER"
)
