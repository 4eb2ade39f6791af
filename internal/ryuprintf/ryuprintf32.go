package ryuprintf

// The binary32 walker. A single 64-bit high-half multiply produces each
// segment, and the reduction modulo 10^9 is an ordinary 64-bit remainder.

import (
	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/divisor"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// Generator32 walks the 9-digit segments of a finite nonzero binary32.
type Generator32 struct {
	rawSignificand  uint32
	aligned         uint32
	exponent        int
	segment         uint32
	segmentIndex    int
	exponentIndex   int
	remainder       int
	maxSegmentIndex int
}

// New32 constructs the walker and positions it on the first nonzero
// segment. br must be finite and nonzero.
func New32(br ieee754.Bits32) Generator32 {
	var g Generator32
	significand := br.SignificandBits()
	exponent := br.ExponentBits()
	if exponent != 0 {
		exponent += ieee754.Binary32.ExponentBias - ieee754.Binary32.SignificandBits
		significand |= 1 << 23
	} else {
		exponent = ieee754.Binary32.MinExponent - ieee754.Binary32.SignificandBits
	}

	g.rawSignificand = significand
	g.aligned = significand << 8
	g.exponent = exponent

	dividend := logexp.FloorLog10Pow2(-exponent - ieee754.Binary32.SignificandBits - 1)
	if exponent <= -ieee754.Binary32.SignificandBits-1 {
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
	return g
}

func (g *Generator32) resetExponentIndex() {
	pow2Exponent := g.exponent + g.segmentIndex*SegmentSize
	if pow2Exponent >= 0 {
		g.exponentIndex = pow2Exponent / compressionFactor32
		g.remainder = pow2Exponent % compressionFactor32
	} else {
		g.exponentIndex = -(-pow2Exponent / compressionFactor32)
		g.remainder = -pow2Exponent % compressionFactor32
		if g.remainder != 0 {
			g.exponentIndex--
			g.remainder = compressionFactor32 - g.remainder
		}
	}
}

func (g *Generator32) advanceExponentIndex() {
	g.remainder += SegmentSize
	if g.remainder >= compressionFactor32 {
		g.exponentIndex++
		g.remainder -= compressionFactor32
	}
}

// CurrentSegment returns the 9-digit value of the current segment.
func (g *Generator32) CurrentSegment() uint32 { return g.segment }

// CurrentSegmentIndex returns the signed index n of the current segment.
func (g *Generator32) CurrentSegmentIndex() int { return g.segmentIndex }

// ComputeNextSegment advances to the next segment and returns it, or 0
// once the expansion is exhausted.
func (g *Generator32) ComputeNextSegment() uint32 {
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
// after the current segment.
func (g *Generator32) HasFurtherNonzeroSegments() bool {
	if g.segmentIndex >= g.maxSegmentIndex {
		return false
	}
	minusPow5Exponent := -g.segmentIndex * SegmentSize
	minusPow2Exponent := -g.exponent + minusPow5Exponent

	if minusPow2Exponent > 0 &&
		!divisor.DivisibleByPow2_32(g.rawSignificand, minusPow2Exponent) {
		return true
	}
	if minusPow5Exponent > 0 &&
		(minusPow5Exponent > maxPow5Factor32 ||
			!divisor.DivisibleByPow5_32(g.rawSignificand, minusPow5Exponent)) {
		return true
	}
	return false
}

func (g *Generator32) computeSegment() uint32 {
	c := cache.Segment32(g.segmentIndex, g.exponentIndex)
	shift := segmentBitSize + g.remainder - 32 + ieee754.Binary32.SignificandBits + 1
	upper := wideint.Umul128Upper64From96(g.aligned, c)
	return uint32(upper >> uint(32-shift) % SegmentDivisor)
}
