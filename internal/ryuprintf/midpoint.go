package ryuprintf

// Midpoint walker. Exact parsing compares the input against the decimal
// expansion of the half-way point between a seed value and its upper
// neighbour, which is (2f+1) * 2^(e-1): one significand bit more than the
// ordinary walker accepts. The binary64 segment table is generated for
// significands of up to 54 bits, so the walker below serves the midpoints
// of both formats; it differs from Generator64 only in the alignment (one
// bit less) and in keeping a third product word so the deepest shift has
// room.

import (
	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// midpointSignificandBits is the width the midpoint walker is aligned
// for.
const midpointSignificandBits = 54

// pow2_128Mod1e9 is 2^128 mod 10^9, folding the 129th bit of a shifted
// product into the reduction.
const pow2_128Mod1e9 = 768211456

// MidpointGenerator walks the 9-digit segments of significand * 2^exponent
// for significands of up to 54 bits. It reuses the binary64 segment
// table.
type MidpointGenerator struct {
	rawSignificand  uint64
	aligned         uint64 // rawSignificand << 10
	exponent        int
	segment         uint32
	segmentIndex    int
	exponentIndex   int
	remainder       int
	maxSegmentIndex int
}

// NewMidpoint constructs the walker for significand * 2^exponent and
// positions it on the first nonzero segment. significand must be nonzero
// and below 2^54; exponent must stay within one of the binary64 range.
func NewMidpoint(significand uint64, exponent int) MidpointGenerator {
	var g MidpointGenerator
	g.rawSignificand = significand
	g.aligned = significand << (64 - midpointSignificandBits)
	g.exponent = exponent

	dividend := logexp.FloorLog10Pow2(-exponent - midpointSignificandBits)
	if exponent <= -midpointSignificandBits {
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

func (g *MidpointGenerator) resetExponentIndex() {
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

func (g *MidpointGenerator) advanceExponentIndex() {
	g.remainder += SegmentSize
	if g.remainder >= compressionFactor64 {
		g.exponentIndex++
		g.remainder -= compressionFactor64
	}
}

// CurrentSegment returns the 9-digit value of the current segment.
func (g *MidpointGenerator) CurrentSegment() uint32 { return g.segment }

// CurrentSegmentIndex returns the signed index n of the current segment.
func (g *MidpointGenerator) CurrentSegmentIndex() int { return g.segmentIndex }

// ComputeNextSegment advances to the next segment and returns it, or 0
// once the expansion is exhausted.
func (g *MidpointGenerator) ComputeNextSegment() uint32 {
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
func (g *MidpointGenerator) HasFurtherNonzeroSegments() bool {
	return hasFurtherNonzero64(g.rawSignificand, g.exponent, g.segmentIndex, g.maxSegmentIndex)
}

func (g *MidpointGenerator) computeSegment() uint32 {
	c := cache.Segment64(g.segmentIndex, g.exponentIndex)
	shift := segmentBitSize + g.remainder - 64 + midpointSignificandBits

	// The 54-bit alignment pushes the deepest shift to 65, one past what
	// the upper 128 product bits can serve, and the result itself can
	// reach 129 bits. Keep the upper 192 bits and fold the overflow bit
	// into the modular reduction.
	upper := wideint.Umul256Upper192(g.aligned, c)
	s := uint(128 - shift) // in [63, 108]

	var value wideint.Uint128
	var overflow uint64
	if s >= 64 {
		value = wideint.Uint128{
			Hi: upper.Hi >> (s - 64),
			Lo: upper.Hi<<(128-s) | upper.Mid>>(s-64),
		}
	} else {
		value = wideint.Uint128{
			Hi: upper.Hi<<(64-s) | upper.Mid>>s,
			Lo: upper.Mid<<(64-s) | upper.Lo>>s,
		}
		overflow = upper.Hi >> s
	}

	segment := divideShifted1e9(value)
	if overflow != 0 {
		segment += pow2_128Mod1e9
		if segment >= SegmentDivisor {
			segment -= SegmentDivisor
		}
	}
	return segment
}
