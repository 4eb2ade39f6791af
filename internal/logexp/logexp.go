// Package logexp provides the exact floor computations of e*log_b(a) - s
// used for exponent bookkeeping. Each function multiplies by a fixed-point
// approximation of the logarithm (an integer part plus a 64-bit fractional
// part, truncated to a small shift) chosen so the floor is exact on the
// documented range of e; outside that range the result silently degrades,
// so each function asserts its bound.
package logexp

// Fixed-point fractional digits of the logarithms, from the top 64 bits of
// the binary expansion.
const (
	log10Of2Fraction      = 0x4D104D427DE7FBCC
	log10Of4Over3Fraction = 0x1FFBFC2BBC780375
	log10Of5Fraction      = 0xB2EFB2BD82180433
	log2Of10Fraction      = 0x5269E12F346E2BF9
	log5Of2Fraction       = 0x6E40D1A4143DCB94
	log5Of3Fraction       = 0xAEBF47915D443B24
)

// floorShift packs an integer part and 64-bit fractional digits into a
// fixed-point constant with the given shift.
func floorShift(integerPart uint32, fraction uint64, shift uint) int32 {
	if shift == 0 {
		return int32(integerPart)
	}
	return int32(integerPart<<shift | uint32(fraction>>(64-shift)))
}

// compute returns floor(e*c - s) where c and s are fixed-point constants
// sharing the same shift.
func compute(e int, c, s int32, shift uint, maxExponent int) int {
	if e > maxExponent || e < -maxExponent {
		panic("logexp: exponent out of the exact range")
	}
	return int((int32(e)*c - s) >> shift)
}

// FloorLog10Pow2 returns floor(log10(2^e)). Exact for |e| <= 1700.
func FloorLog10Pow2(e int) int {
	return compute(e, floorShift(0, log10Of2Fraction, 22), 0, 22, 1700)
}

// FloorLog10Pow5 returns floor(log10(5^e)). Exact for |e| <= 2620.
func FloorLog10Pow5(e int) int {
	return compute(e, floorShift(0, log10Of5Fraction, 20), 0, 20, 2620)
}

// FloorLog2Pow5 returns floor(log2(5^e)). Exact for |e| <= 1764.
func FloorLog2Pow5(e int) int {
	return compute(e, floorShift(2, log2Of10Fraction, 19), 0, 19, 1764)
}

// FloorLog2Pow10 returns floor(log2(10^e)). Exact for |e| <= 1233.
func FloorLog2Pow10(e int) int {
	return compute(e, floorShift(3, log2Of10Fraction, 19), 0, 19, 1233)
}

// FloorLog5Pow2 returns floor(log5(2^e)). Exact for |e| <= 1492.
func FloorLog5Pow2(e int) int {
	return compute(e, floorShift(0, log5Of2Fraction, 20), 0, 20, 1492)
}

// FloorLog5Pow2MinusLog5Of3 returns floor(log5(2^e) - log5(3)).
// Exact for |e| <= 2427.
func FloorLog5Pow2MinusLog5Of3(e int) int {
	return compute(e,
		floorShift(0, log5Of2Fraction, 20),
		floorShift(0, log5Of3Fraction, 20), 20, 2427)
}

// FloorLog10Pow2MinusLog10Of4Over3 returns floor(log10(2^e) - log10(4/3)).
// Exact for |e| <= 1700.
func FloorLog10Pow2MinusLog10Of4Over3(e int) int {
	return compute(e,
		floorShift(0, log10Of2Fraction, 22),
		floorShift(0, log10Of4Over3Fraction, 22), 22, 1700)
}
