// Package bitops wraps the leading/trailing-zero counts used throughout
// the converters and reports whether the host CPU resolves them with
// dedicated instructions.
package bitops

import "math/bits"

// CountLeadingZeros64 returns the number of leading zero bits in n.
// n must be nonzero.
func CountLeadingZeros64(n uint64) int {
	return bits.LeadingZeros64(n)
}

// CountLeadingZeros32 returns the number of leading zero bits in n.
// n must be nonzero.
func CountLeadingZeros32(n uint32) int {
	return bits.LeadingZeros32(n)
}

// CountTrailingZeros64 returns the number of trailing zero bits in n.
// n must be nonzero.
func CountTrailingZeros64(n uint64) int {
	return bits.TrailingZeros64(n)
}

// CountTrailingZeros32 returns the number of trailing zero bits in n.
// n must be nonzero.
func CountTrailingZeros32(n uint32) int {
	return bits.TrailingZeros32(n)
}

// CountTrailingZeros16 returns the number of trailing zero bits in n.
// n must be nonzero.
func CountTrailingZeros16(n uint16) int {
	return bits.TrailingZeros16(n)
}

// HasCountTrailingZerosInstruction reports whether the trailing-zero count
// compiles down to a single hardware instruction on this CPU. The
// converters are correct either way; this is exposed for diagnostics.
func HasCountTrailingZerosInstruction() bool {
	return hasCTZ
}
