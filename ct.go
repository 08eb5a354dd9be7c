package rfc6979

import (
	"crypto/subtle"
)

// This file provides comparisons over big-endian unsigned integers encoded as
// equal-length byte strings that execute in time, and with memory access
// patterns, independent of the compared values.  Neither function branches on
// or indexes by input contents, so the number of rejection-sampling
// iterations and the magnitude of rejected candidates do not leak through
// timing.

// ctEq returns 1 when a and b are bit-for-bit identical and 0 otherwise.  The
// per-byte results are combined by bitwise accumulation rather than
// short-circuit branching.  Both slices must be the same length.
func ctEq(a, b []byte) int {
	var acc byte
	for i := 0; i < len(a); i++ {
		acc |= a[i] ^ b[i]
	}
	return subtle.ConstantTimeByteEq(acc, 0)
}

// ctLt returns 1 when the unsigned integer encoded by a is strictly less than
// the unsigned integer encoded by b and 0 otherwise.  Both slices must be the
// same length.
func ctLt(a, b []byte) int {
	// Subtract b from a one byte at a time starting from the least
	// significant byte, propagating the borrow.  A borrow out of the most
	// significant byte means a < b.  The intermediate difference occupies
	// the low 9 bits of a uint32, so a wrapped subtraction sets the high bit
	// exactly when the true difference is negative.
	var borrow uint32
	for i := len(a) - 1; i >= 0; i-- {
		diff := uint32(a[i]) - uint32(b[i]) - borrow
		borrow = diff >> 31
	}
	return int(borrow)
}
