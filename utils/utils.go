package utils

import "os"

///////////////////////////////////////////////////////////////////////////////
// Diagnostic Output — Direct Stderr, No Formatting Machinery
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr. No fmt, no levels, no locks
// beyond the write itself — cold-path diagnostics only.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	os.Stderr.WriteString(msg)
}

///////////////////////////////////////////////////////////////////////////////
// Integer Formatting & Parsing — Allocation-Light Helpers
///////////////////////////////////////////////////////////////////////////////

// Itoa formats a base-10 integer without pulling in strconv at call sites.
//
//go:nosplit
//go:inline
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ParseUint parses a base-10 unsigned integer, rejecting empty input,
// non-digit bytes, and 64-bit overflow. Used for env-var overrides where a
// bad value must fall back to the default rather than abort.
//
//go:nosplit
//go:inline
func ParseUint(s string) (uint64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if v > (^uint64(0)-d)/10 {
			return 0, false // overflow
		}
		v = v*10 + d
	}
	return v, true
}
