// Package ieee754 provides the bit-level view of IEEE-754 binary32 and
// binary64 values: format constants, field extraction and classification.
// Conversion between a float and its carrier integer is a pure bit
// reinterpretation.
package ieee754

import "math"

// Format describes one of the two supported interchange formats.
type Format struct {
	SignificandBits int
	ExponentBits    int
	MinExponent     int
	MaxExponent     int
	ExponentBias    int
	DecimalDigits   int
	CarrierBits     int
}

// Binary32 and Binary64 are the format descriptors.
var (
	Binary32 = Format{
		SignificandBits: 23,
		ExponentBits:    8,
		MinExponent:     -126,
		MaxExponent:     127,
		ExponentBias:    -127,
		DecimalDigits:   9,
		CarrierBits:     32,
	}
	Binary64 = Format{
		SignificandBits: 52,
		ExponentBits:    11,
		MinExponent:     -1022,
		MaxExponent:     1023,
		ExponentBias:    -1023,
		DecimalDigits:   17,
		CarrierBits:     64,
	}
)

// Class is the result of classifying a carrier value.
type Class int

const (
	PositiveZero Class = iota
	NegativeZero
	PositiveSubnormal
	NegativeSubnormal
	PositiveNormal
	NegativeNormal
	PositiveInfinity
	NegativeInfinity
	NaN
)

// Bits64 is the carrier view of a binary64 value.
type Bits64 uint64

// Bits32 is the carrier view of a binary32 value.
type Bits32 uint32

// FromFloat64 reinterprets x as its carrier integer.
func FromFloat64(x float64) Bits64 { return Bits64(math.Float64bits(x)) }

// FromFloat32 reinterprets x as its carrier integer.
func FromFloat32(x float32) Bits32 { return Bits32(math.Float32bits(x)) }

// Float returns the binary64 value carried by b.
func (b Bits64) Float() float64 { return math.Float64frombits(uint64(b)) }

// Float returns the binary32 value carried by b.
func (b Bits32) Float() float32 { return math.Float32frombits(uint32(b)) }

const (
	exponentMask64 = (1<<11 - 1) << 52
	exponentMask32 = (1<<8 - 1) << 23
)

// SignificandBits returns the raw trailing significand field.
func (b Bits64) SignificandBits() uint64 { return uint64(b) & (1<<52 - 1) }

func (b Bits32) SignificandBits() uint32 { return uint32(b) & (1<<23 - 1) }

// ExponentBits returns the raw biased exponent field.
func (b Bits64) ExponentBits() int { return int(uint64(b) >> 52 & (1<<11 - 1)) }

func (b Bits32) ExponentBits() int { return int(uint32(b) >> 23 & (1<<8 - 1)) }

// BinarySignificand returns the significand with the implicit bit
// restored for normal values.
func (b Bits64) BinarySignificand() uint64 {
	s := b.SignificandBits()
	if b.ExponentBits() == 0 {
		return s
	}
	return s | 1<<52
}

func (b Bits32) BinarySignificand() uint32 {
	s := b.SignificandBits()
	if b.ExponentBits() == 0 {
		return s
	}
	return s | 1<<23
}

// BinaryExponent returns the unbiased exponent e of the value viewed as
// 1.f * 2^e (MinExponent for subnormals and zeros). With the integer
// BinarySignificand the exponent is e - SignificandBits.
func (b Bits64) BinaryExponent() int {
	e := b.ExponentBits()
	if e == 0 {
		return Binary64.MinExponent
	}
	return e + Binary64.ExponentBias
}

func (b Bits32) BinaryExponent() int {
	e := b.ExponentBits()
	if e == 0 {
		return Binary32.MinExponent
	}
	return e + Binary32.ExponentBias
}

// IsNegative reports the sign bit. Negative zero and negative NaNs count
// as negative.
func (b Bits64) IsNegative() bool { return uint64(b)>>63 != 0 }

func (b Bits32) IsNegative() bool { return uint32(b)>>31 != 0 }

// IsFinite reports whether the exponent field is not all ones.
func (b Bits64) IsFinite() bool { return uint64(b)&exponentMask64 != exponentMask64 }

func (b Bits32) IsFinite() bool { return uint32(b)&exponentMask32 != exponentMask32 }

// IsNonzero reports whether the value is neither +0 nor -0.
func (b Bits64) IsNonzero() bool { return uint64(b)<<1 != 0 }

func (b Bits32) IsNonzero() bool { return uint32(b)<<1 != 0 }

// IsSubnormal reports whether the exponent field is zero; both zeros
// qualify.
func (b Bits64) IsSubnormal() bool { return uint64(b)&exponentMask64 == 0 }

func (b Bits32) IsSubnormal() bool { return uint32(b)&exponentMask32 == 0 }

// IsInfinity reports whether the value is +Inf or -Inf.
func (b Bits64) IsInfinity() bool { return uint64(b)<<1 == exponentMask64<<1 }

func (b Bits32) IsInfinity() bool { return uint32(b)<<1 == exponentMask32<<1 }

// IsNaN reports whether the value is any NaN.
func (b Bits64) IsNaN() bool { return !b.IsFinite() && b.SignificandBits() != 0 }

func (b Bits32) IsNaN() bool { return !b.IsFinite() && b.SignificandBits() != 0 }

// Classify places b into one of the nine IEEE-754 classes.
func (b Bits64) Classify() Class {
	return classify(b.IsNegative(), b.IsFinite(), b.IsSubnormal(),
		b.IsNonzero(), b.SignificandBits() != 0)
}

func (b Bits32) Classify() Class {
	return classify(b.IsNegative(), b.IsFinite(), b.IsSubnormal(),
		b.IsNonzero(), b.SignificandBits() != 0)
}

func classify(negative, finite, subnormal, nonzero, payload bool) Class {
	switch {
	case !finite && payload:
		return NaN
	case !finite && negative:
		return NegativeInfinity
	case !finite:
		return PositiveInfinity
	case !nonzero && negative:
		return NegativeZero
	case !nonzero:
		return PositiveZero
	case subnormal && negative:
		return NegativeSubnormal
	case subnormal:
		return PositiveSubnormal
	case negative:
		return NegativeNormal
	default:
		return PositiveNormal
	}
}

// Constants frequently composed by the converters.
const (
	SignMask64     = Bits64(1) << 63
	SignMask32     = Bits32(1) << 31
	InfinityBits64 = Bits64(exponentMask64)
	InfinityBits32 = Bits32(exponentMask32)
)
