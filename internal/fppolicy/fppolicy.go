// Package fppolicy defines the policy axes that parameterize the
// converters: sign handling, trailing-zero handling, binary and decimal
// rounding, cache lookup and input validation. Each axis is a small enum
// whose zero value is the documented default, so an Options zero value is
// already fully configured and an axis can never carry two choices at
// once.
package fppolicy

// Sign selects what happens to the sign of the input.
type Sign uint8

const (
	// SignPropagate preserves the sign on the result.
	SignPropagate Sign = iota
	// SignIgnore drops the sign.
	SignIgnore
)

// TrailingZero selects what happens to trailing decimal zeros of a
// shortest-form significand.
type TrailingZero uint8

const (
	// TrailingZeroRemove strips trailing zeros and adds their count to the
	// exponent.
	TrailingZeroRemove TrailingZero = iota
	// TrailingZeroAllow leaves the significand as produced.
	TrailingZeroAllow
	// TrailingZeroReport leaves the significand as produced and marks the
	// MayHaveTrailingZeros flag on the result.
	TrailingZeroReport
)

// BinaryRounding selects the rounding mode assumed for the inverse
// (decimal to binary) conversion; it decides which decimals are considered
// to round back to the input.
type BinaryRounding uint8

const (
	NearestToEven BinaryRounding = iota
	NearestToOdd
	NearestTowardPlusInfinity
	NearestTowardMinusInfinity
	NearestTowardZero
	NearestAwayFromZero
	NearestToEvenStaticBoundary
	NearestToOddStaticBoundary
	NearestTowardPlusInfinityStaticBoundary
	NearestTowardMinusInfinityStaticBoundary
	TowardPlusInfinity
	TowardMinusInfinity
	TowardZero
	AwayFromZero
)

// RoundingTag groups the binary rounding modes by the algorithm skeleton
// they require.
type RoundingTag uint8

const (
	TagToNearest RoundingTag = iota
	TagLeftClosedDirected
	TagRightClosedDirected
)

// Interval is an endpoint-inclusion pair for a rounding interval.
type Interval struct {
	IncludeLeft  bool
	IncludeRight bool
}

var (
	closed              = Interval{IncludeLeft: true, IncludeRight: true}
	open                = Interval{}
	leftClosedRightOpen = Interval{IncludeLeft: true}
	rightClosedLeftOpen = Interval{IncludeRight: true}
)

func symmetric(isClosed bool) Interval {
	return Interval{IncludeLeft: isClosed, IncludeRight: isClosed}
}

func asymmetric(leftClosed bool) Interval {
	return Interval{IncludeLeft: leftClosed, IncludeRight: !leftClosed}
}

// Effective resolves a rounding mode against the concrete input (its
// parity via the low carrier bit, and its sign) into the tag plus the two
// interval providers the algorithm consults. The static-boundary and
// directed modes dispatch on the input up front, which is the runtime
// rendition of the delegate step in the reference design.
type Effective struct {
	Tag RoundingTag
	// Normal is the interval type for the regular case.
	Normal Interval
	// Shorter is the interval type for the power-of-two significand case.
	Shorter Interval
}

// Resolve computes the effective rounding behaviour for an input with the
// given low carrier bit and sign bit.
func (m BinaryRounding) Resolve(lowBitSet, negative bool) Effective {
	switch m {
	case NearestToEven:
		return Effective{TagToNearest, symmetric(!lowBitSet), closed}
	case NearestToOdd:
		return Effective{TagToNearest, symmetric(lowBitSet), closed}
	case NearestTowardPlusInfinity:
		return Effective{TagToNearest, asymmetric(!negative), asymmetric(!negative)}
	case NearestTowardMinusInfinity:
		return Effective{TagToNearest, asymmetric(negative), asymmetric(negative)}
	case NearestTowardZero:
		return Effective{TagToNearest, rightClosedLeftOpen, rightClosedLeftOpen}
	case NearestAwayFromZero:
		return Effective{TagToNearest, leftClosedRightOpen, leftClosedRightOpen}
	case NearestToEvenStaticBoundary:
		if !lowBitSet {
			return Effective{TagToNearest, closed, closed}
		}
		return Effective{TagToNearest, open, open}
	case NearestToOddStaticBoundary:
		if lowBitSet {
			return Effective{TagToNearest, closed, closed}
		}
		return Effective{TagToNearest, open, open}
	case NearestTowardPlusInfinityStaticBoundary:
		if negative {
			return Effective{TagToNearest, rightClosedLeftOpen, rightClosedLeftOpen}
		}
		return Effective{TagToNearest, leftClosedRightOpen, leftClosedRightOpen}
	case NearestTowardMinusInfinityStaticBoundary:
		if negative {
			return Effective{TagToNearest, leftClosedRightOpen, leftClosedRightOpen}
		}
		return Effective{TagToNearest, rightClosedLeftOpen, rightClosedLeftOpen}
	case TowardPlusInfinity:
		if negative {
			return Effective{TagLeftClosedDirected, leftClosedRightOpen, leftClosedRightOpen}
		}
		return Effective{TagRightClosedDirected, rightClosedLeftOpen, rightClosedLeftOpen}
	case TowardMinusInfinity:
		if negative {
			return Effective{TagRightClosedDirected, rightClosedLeftOpen, rightClosedLeftOpen}
		}
		return Effective{TagLeftClosedDirected, leftClosedRightOpen, leftClosedRightOpen}
	case TowardZero:
		return Effective{TagLeftClosedDirected, leftClosedRightOpen, leftClosedRightOpen}
	case AwayFromZero:
		return Effective{TagRightClosedDirected, rightClosedLeftOpen, rightClosedLeftOpen}
	default:
		panic("fppolicy: unknown binary rounding mode")
	}
}

// DecimalRounding selects the tie break between two equally close shortest
// decimals; it is consulted only by the small-divisor branch of the
// shortest-decimal search.
type DecimalRounding uint8

const (
	DecimalToEven DecimalRounding = iota
	DecimalDoNotCare
	DecimalToOdd
	DecimalAwayFromZero
	DecimalTowardZero
)

// BreakTie64 adjusts a candidate significand sitting exactly on a tie.
func (m DecimalRounding) BreakTie64(significand uint64) uint64 {
	switch m {
	case DecimalToEven:
		if significand%2 != 0 {
			return significand - 1
		}
	case DecimalToOdd:
		if significand%2 == 0 {
			return significand - 1
		}
	case DecimalTowardZero:
		return significand - 1
	}
	return significand
}

// BreakTie32 is the 32-bit counterpart of BreakTie64.
func (m DecimalRounding) BreakTie32(significand uint32) uint32 {
	switch m {
	case DecimalToEven:
		if significand%2 != 0 {
			return significand - 1
		}
	case DecimalToOdd:
		if significand%2 == 0 {
			return significand - 1
		}
	case DecimalTowardZero:
		return significand - 1
	}
	return significand
}

// Cache selects between the direct table and the compressed binary64
// table.
type Cache uint8

const (
	CacheFast Cache = iota
	CacheCompact
)

// Validation selects the input checking behaviour of the entry points.
type Validation uint8

const (
	// AssertFinite panics when a non-finite value reaches a converter.
	AssertFinite Validation = iota
	// NoValidation skips the check; feeding a non-finite value is then a
	// caller bug with unspecified output.
	NoValidation
)

// Options aggregates one choice per axis. The zero value selects every
// documented default: propagate sign, remove trailing zeros, round to
// nearest ties-to-even, decimal ties-to-even, fast cache, assert finite.
type Options struct {
	Sign            Sign
	TrailingZero    TrailingZero
	BinaryRounding  BinaryRounding
	DecimalRounding DecimalRounding
	Cache           Cache
	Validation      Validation
}
