// ============================================================================
// CHUNKQUEUE: LOCK-FREE RANGE DISTRIBUTION QUEUE
// ============================================================================
//
// ChunkQueue hands out disjoint contiguous index ranges over a fixed-size
// buffer to any number of concurrently racing claimants, using a single
// atomic cursor and CAS retry instead of a mutex.
//
// Architecture overview:
//   - One monotonically advancing cursor marks the first unclaimed index
//   - Claim = CAS the cursor from its observed value to min(cur+chunk, total)
//   - CAS failure means another claimant advanced the cursor: reload, retry
//   - Cursor == total is the terminal, idempotent exhaustion state
//
// Tiling guarantee:
//   - Successful claims are totally ordered by the order their CAS landed
//   - Each claim starts exactly where the previous one ended
//   - The claim sequence therefore tiles [0, total) with no gap, no overlap,
//     regardless of claimant count, scheduling, or preemption between the
//     cursor load and the CAS
//
// Progress guarantee:
//   - A failed CAS implies some other claimant strictly advanced the cursor,
//     so total retries across all claimants are bounded by ceil(total/chunk)
//     plus one failure per contender per claim — the loop never livelocks
//
// Safety model:
//   - Queue returns plain indices only, never a sub-slice: the claimant owns
//     the buffer and derives its own exclusive view from the claimed range.
//     Disjointness of integer intervals is the entire aliasing argument.

package chunkqueue

import "sync/atomic"

// ============================================================================
// CORE DATA STRUCTURES
// ============================================================================

// Queue distributes disjoint [start, end) ranges over [0, total).
// Immutable after construction except for the atomic cursor.
//
// Cache layout: the cursor sits alone on its own cache line so contending
// claimants do not false-share with the read-only geometry fields.
type Queue struct {
	_      [64]byte // Isolation padding ahead of the hot cursor
	cursor uint64   // First unclaimed index; CAS-advanced, never retreats
	_      [56]byte // Isolation padding behind the hot cursor

	total uint64 // Index space upper bound, fixed at construction
	chunk uint64 // Preferred claim width, fixed at construction, >= 1
}

// ============================================================================
// CONSTRUCTOR
// ============================================================================

// New creates a queue over the index space [0, total) with the given
// preferred chunk width. The final claim is truncated to total when the
// space does not divide evenly.
//
// chunk must be >= 1; a zero chunk would pin the cursor forever, so it is
// rejected at construction rather than detected as a hang later.
func New(total, chunk uint64) *Queue {
	if chunk == 0 {
		panic("chunkqueue: chunk width must be >= 1")
	}
	return &Queue{total: total, chunk: chunk}
}

// ============================================================================
// CLAIM OPERATION
// ============================================================================

// Claim atomically acquires the next unclaimed range.
//
// Returns (start, end, true) granting the caller exclusive rights to the
// half-open interval [start, end), or (0, 0, false) once the index space is
// exhausted. Exhaustion is terminal: every subsequent call from any claimant
// also reports false.
//
// Safe for any number of concurrent callers with no external locking.
func (q *Queue) Claim() (start, end uint64, ok bool) {
	for {
		current := atomic.LoadUint64(&q.cursor)
		if current >= q.total {
			return 0, 0, false
		}

		proposed := current + q.chunk
		if proposed > q.total {
			proposed = q.total // Truncate the tail chunk
		}

		if atomic.CompareAndSwapUint64(&q.cursor, current, proposed) {
			return current, proposed, true
		}
		// Lost the race: another claimant advanced the cursor between the
		// load and the CAS. Reload and retry against the new frontier.
	}
}

// ============================================================================
// OBSERVERS
// ============================================================================

// Total returns the size of the index space the queue tiles.
func (q *Queue) Total() uint64 { return q.total }

// Chunk returns the preferred claim width.
func (q *Queue) Chunk() uint64 { return q.chunk }

// Claimed reports how many indices have been handed out so far.
// Advisory only under concurrency — the value may be stale by return time.
func (q *Queue) Claimed() uint64 {
	n := atomic.LoadUint64(&q.cursor)
	if n > q.total {
		return q.total
	}
	return n
}
