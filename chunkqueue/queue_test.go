// ============================================================================
// CHUNKQUEUE UNIT TEST SUITE
// ============================================================================
//
// Single-threaded correctness validation for the lock-free range queue.
// Concurrency behavior is exercised separately in queue_stress_test.go.
//
// Properties verified here:
//   - Drained claim sequence tiles [0, total) exactly: no gap, no overlap,
//     strictly increasing start offsets
//   - Exhaustion is immediate for an empty index space and idempotent after
//   - A chunk width covering the whole space yields exactly one claim
//   - Tail truncation produces the documented chunk pattern
//   - Zero chunk width is rejected at construction

package chunkqueue

import "testing"

// drain claims until exhaustion, returning the ordered range list.
func drain(t *testing.T, q *Queue) [][2]uint64 {
	t.Helper()
	var out [][2]uint64
	for {
		start, end, ok := q.Claim()
		if !ok {
			return out
		}
		if start >= end {
			t.Fatalf("empty claim [%d, %d)", start, end)
		}
		if end > q.Total() {
			t.Fatalf("claim [%d, %d) exceeds total %d", start, end, q.Total())
		}
		out = append(out, [2]uint64{start, end})
	}
}

// verifyTiling asserts ranges exactly tile [0, total) in increasing order.
func verifyTiling(t *testing.T, ranges [][2]uint64, total uint64) {
	t.Helper()
	var next uint64
	for i, r := range ranges {
		if r[0] != next {
			t.Fatalf("range %d starts at %d, want %d (gap or overlap)", i, r[0], next)
		}
		next = r[1]
	}
	if next != total {
		t.Fatalf("claims cover [0, %d), want [0, %d)", next, total)
	}
}

func TestQueueSingleThreadTiling(t *testing.T) {
	cases := []struct {
		name         string
		total, chunk uint64
		wantClaims   int
	}{
		{"exact_division", 90, 30, 3},
		{"truncated_tail", 100, 30, 4},
		{"unit_chunks", 7, 1, 7},
		{"single_covering_chunk", 5, 100, 1},
		{"chunk_equals_total", 64, 64, 1},
		{"large_space", 1 << 20, 4096, 256},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := New(tc.total, tc.chunk)
			ranges := drain(t, q)
			verifyTiling(t, ranges, tc.total)
			if len(ranges) != tc.wantClaims {
				t.Fatalf("got %d claims, want %d", len(ranges), tc.wantClaims)
			}
			if got := q.Claimed(); got != tc.total {
				t.Fatalf("Claimed() = %d after drain, want %d", got, tc.total)
			}
		})
	}
}

func TestQueueDocumentedScenario(t *testing.T) {
	// total=100, chunk=30 must yield [0,30) [30,60) [60,90) [90,100).
	q := New(100, 30)
	want := [][2]uint64{{0, 30}, {30, 60}, {60, 90}, {90, 100}}
	got := drain(t, q)
	if len(got) != len(want) {
		t.Fatalf("got %d claims, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("claim %d = [%d, %d), want [%d, %d)",
				i, got[i][0], got[i][1], want[i][0], want[i][1])
		}
	}
}

func TestQueueEmptySpace(t *testing.T) {
	q := New(0, 16)
	for i := 0; i < 3; i++ {
		if _, _, ok := q.Claim(); ok {
			t.Fatalf("claim %d succeeded on empty index space", i)
		}
	}
	if q.Claimed() != 0 {
		t.Fatalf("Claimed() = %d on empty queue, want 0", q.Claimed())
	}
}

func TestQueueExhaustionIsIdempotent(t *testing.T) {
	q := New(10, 4)
	drain(t, q)
	for i := 0; i < 100; i++ {
		if _, _, ok := q.Claim(); ok {
			t.Fatalf("claim succeeded after exhaustion (call %d)", i)
		}
	}
}

func TestQueueRejectsZeroChunk(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(64, 0) did not panic")
		}
	}()
	New(64, 0)
}

func TestQueueObservers(t *testing.T) {
	q := New(100, 30)
	if q.Total() != 100 {
		t.Fatalf("Total() = %d, want 100", q.Total())
	}
	if q.Chunk() != 30 {
		t.Fatalf("Chunk() = %d, want 30", q.Chunk())
	}
	q.Claim()
	if q.Claimed() != 30 {
		t.Fatalf("Claimed() = %d after one claim, want 30", q.Claimed())
	}
}
