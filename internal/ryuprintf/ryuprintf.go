// Package ryuprintf iterates over fixed-size segments of the exact
// decimal expansion of a binary floating-point value, from left to right,
// starting at the first nonzero segment.
//
// A segment is a block of nine decimal digits identified by its signed
// index n; indices at or below zero lie above the decimal point. Each
// segment is produced by one multiplication of the MSB-aligned significand
// with a precomputed multiplier, a shift, and a reduction modulo 10^9.
// The interface is pull-oriented: the caller asks for the next segment
// when it wants one; nothing is buffered and no segment is revisited.
package ryuprintf

import (
	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/divisor"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// SegmentSize is the number of decimal digits per segment.
const SegmentSize = 9

// SegmentDivisor is 10^SegmentSize.
const SegmentDivisor = 1000000000

// segmentBitSize is floor(log2(10^9)) + 1.
const segmentBitSize = 30

// Compression factors: the exponent of two is decomposed as
// e + 9n = k*rho + r with r in [0, rho), and the table stores one
// multiplier per (n, k) pair.
const (
	compressionFactor32 = 11
	compressionFactor64 = 46
)

const (
	maxPow5Factor32 = 10 // floor(log5(2^25))
	maxPow5Factor64 = 23 // floor(log5(2^54))
)

// Generator64 walks the 9-digit segments of a finite nonzero binary64.
type Generator64 struct {
	rawSignificand  uint64 // significand with implicit bit, not aligned
	aligned         uint64 // rawSignificand shifted so the MSB is bit 63
	exponent        int
	segment         uint32
	segmentIndex    int // n
	exponentIndex   int // k
	remainder       int // r
	maxSegmentIndex int
}

// New64 constructs the walker and positions it on the first nonzero
// segment. br must be finite and nonzero.
func New64(br ieee754.Bits64) Generator64 {
	var g Generator64
	significand := br.SignificandBits()
	exponent := br.ExponentBits()
	if exponent != 0 {
		exponent += ieee754.Binary64.ExponentBias - ieee754.Binary64.SignificandBits
		significand |= 1 << 52
	} else {
		exponent = ieee754.Binary64.MinExponent - ieee754.Binary64.SignificandBits
	}
	g.init(significand, exponent)
	return g
}

func (g *Generator64) init(significand uint64, exponent int) {
	g.rawSignificand = significand
	g.aligned = significand << 11
	g.exponent = exponent

	// First candidate segment: n0 = floor((-e-p-1)*log10(2) / 9) + 1,
	// with the division kept unsigned.
	dividend := logexp.FloorLog10Pow2(-exponent - ieee754.Binary64.SignificandBits - 1)
	if exponent <= -ieee754.Binary64.SignificandBits-1 {
		g.segmentIndex = dividend/SegmentSize + 1
	} else {
		g.segmentIndex = -(-dividend / SegmentSize)
	}
	g.maxSegmentIndex = maxSegmentIndex(exponent)

	g.resetExponentIndex()
	g.segment = g.computeSegment()
	for g.segment == 0 {
		if g.segmentIndex >= g.maxSegmentIndex {
			panic("ryuprintf: no nonzero segment in a nonzero value")
		}
		g.segmentIndex++
		g.advanceExponentIndex()
		g.segment = g.computeSegment()
	}
}

// maxSegmentIndex returns the index of the last segment that can be
// nonzero: ceil(-e/9) for negative exponents, 0 otherwise.
func maxSegmentIndex(exponent int) int {
	if exponent >= 0 {
		return 0
	}
	return (-exponent + SegmentSize - 1) / SegmentSize
}

// resetExponentIndex computes the positive-remainder decomposition
// e + 9n = k*rho + r.
func (g *Generator64) resetExponentIndex() {
	pow2Exponent := g.exponent + g.segmentIndex*SegmentSize
	if pow2Exponent >= 0 {
		g.exponentIndex = pow2Exponent / compressionFactor64
		g.remainder = pow2Exponent % compressionFactor64
	} else {
		g.exponentIndex = -(-pow2Exponent / compressionFactor64)
		g.remainder = -pow2Exponent % compressionFactor64
		if g.remainder != 0 {
			g.exponentIndex--
			g.remainder = compressionFactor64 - g.remainder
		}
	}
}

func (g *Generator64) advanceExponentIndex() {
	g.remainder += SegmentSize
	if g.remainder >= compressionFactor64 {
		g.exponentIndex++
		g.remainder -= compressionFactor64
	}
}

// CurrentSegment returns the 9-digit value of the current segment. The
// first segment has no leading-zero guarantee; all later ones are full
// width.
func (g *Generator64) CurrentSegment() uint32 { return g.segment }

// CurrentSegmentIndex returns the signed index n of the current segment.
func (g *Generator64) CurrentSegmentIndex() int { return g.segmentIndex }

// ComputeNextSegment advances to the next segment and returns it, or 0
// once the expansion is exhausted.
func (g *Generator64) ComputeNextSegment() uint32 {
	g.segmentIndex++
	if g.segmentIndex <= g.maxSegmentIndex {
		g.advanceExponentIndex()
		g.segment = g.computeSegment()
	} else {
		g.segment = 0
	}
	return g.segment
}

// HasFurtherNonzeroSegments reports whether any nonzero digit remains
// after the current segment. It runs the divisibility tests on each call;
// cache the answer if it is needed repeatedly.
func (g *Generator64) HasFurtherNonzeroSegments() bool {
	return hasFurtherNonzero64(g.rawSignificand, g.exponent, g.segmentIndex, g.maxSegmentIndex)
}

func hasFurtherNonzero64(significand uint64, exponent, segmentIndex, maxSegmentIndex int) bool {
	if segmentIndex >= maxSegmentIndex {
		return false
	}
	// Nonzero digits remain iff significand * 2^e * 10^(9n) is not an
	// integer: either the exponent of 2 is still negative past the
	// significand's 2-adic valuation, or the exponent of 5 is negative
	// and not cancelled by the significand's 5-factors.
	minusPow5Exponent := -segmentIndex * SegmentSize
	minusPow2Exponent := -exponent + minusPow5Exponent

	if minusPow2Exponent > 0 &&
		!divisor.DivisibleByPow2_64(significand, minusPow2Exponent) {
		return true
	}
	if minusPow5Exponent > 0 &&
		(minusPow5Exponent > maxPow5Factor64 ||
			!divisor.DivisibleByPow5_64(significand, minusPow5Exponent)) {
		return true
	}
	return false
}

func (g *Generator64) computeSegment() uint32 {
	c := cache.Segment64(g.segmentIndex, g.exponentIndex)
	shift := segmentBitSize + g.remainder - 64 + ieee754.Binary64.SignificandBits + 1
	mul := wideint.Umul256Upper128(g.aligned, c)
	return divideShifted1e9(mul.ShiftRight(uint(64 - shift)))
}

// granlundMontgomery1e9 holds the reciprocal of 10^9 used to reduce the
// shifted 128-bit product.
var granlundMontgomery1e9 = wideint.Uint128{Hi: 0x89705F4136B4A597, Lo: 0x31680A88F8953031}

const granlundMontgomeryShift = 29

// divideShifted1e9 returns sr mod 10^9 for a 128-bit sr.
func divideShifted1e9(sr wideint.Uint128) uint32 {
	q := wideint.Umul256UpperMiddle64(sr, granlundMontgomery1e9)
	return uint32(sr.Lo) - SegmentDivisor*uint32(q>>granlundMontgomeryShift)
}
