// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go — cold-path diagnostic logging helper
//
// Purpose:
//   - Tags infrequent events (phase transitions, faults, ledger errors)
//     without pulling fmt machinery into the render path.
//
// Notes:
//   - Plain string concatenation, direct stderr write via utils.PrintWarning.
//   - Never called from inside a worker loop — workers are silent by design.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "mandelbrot/utils"

// DropError logs "<prefix>: <error>" to stderr, or just the prefix when
// err is nil (used as a cheap phase trace).
//
//go:nosplit
//go:inline
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
	} else {
		utils.PrintWarning(prefix + "\n")
	}
}

// DropMessage logs "<prefix>: <message>" to stderr.
//
//go:nosplit
//go:inline
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
