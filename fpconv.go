// Package fpconv implements correctly-rounded, minimum-length conversion
// between IEEE-754 binary floating-point numbers and decimal character
// strings, in both directions.
//
// Four algorithms cooperate behind the public surface: a shortest
// round-trip binary-to-decimal search, a segment generator that streams
// the exact decimal expansion nine digits at a time for fixed-precision
// output, a limited-precision decimal-to-binary converter, and an
// unlimited-precision parser that seeds itself with the limited converter
// and resolves half-way cases against the segment generator. All of them
// share the same frozen power-of-ten tables.
//
// Every conversion is a pure function of its arguments: no shared mutable
// state, no synchronization. The Append forms allocate only when dst must
// grow; the string forms allocate the returned string. Concurrent calls on
// disjoint buffers are always safe.
package fpconv

import (
	"errors"

	"github.com/agbru/fpconv/internal/fppolicy"
)

// ErrInvalidSyntax is returned by the checked parsing entry points when
// the input is not a decimal numeral of the accepted form.
var ErrInvalidSyntax = errors.New("fpconv: invalid decimal syntax")

// Policy axes. Each axis is a small enum whose zero value is the
// documented default; the Options struct carries at most one choice per
// axis by construction.
type (
	// SignMode selects whether the sign survives the conversion.
	SignMode = fppolicy.Sign
	// TrailingZeroMode selects what happens to trailing zeros of a
	// shortest-form significand.
	TrailingZeroMode = fppolicy.TrailingZero
	// RoundingMode selects the binary rounding the conversions assume.
	RoundingMode = fppolicy.BinaryRounding
	// DecimalRoundingMode breaks ties between equally short decimals.
	DecimalRoundingMode = fppolicy.DecimalRounding
	// CacheMode selects the direct or the compressed power-of-ten table.
	CacheMode = fppolicy.Cache
	// ValidationMode selects the input checking behaviour.
	ValidationMode = fppolicy.Validation
	// Options aggregates one choice per policy axis; its zero value is
	// fully configured with the defaults.
	Options = fppolicy.Options
)

// Sign axis.
const (
	SignPropagate = fppolicy.SignPropagate
	SignIgnore    = fppolicy.SignIgnore
)

// Trailing-zero axis.
const (
	TrailingZeroRemove = fppolicy.TrailingZeroRemove
	TrailingZeroAllow  = fppolicy.TrailingZeroAllow
	TrailingZeroReport = fppolicy.TrailingZeroReport
)

// Binary rounding axis.
const (
	NearestToEven              = fppolicy.NearestToEven
	NearestToOdd               = fppolicy.NearestToOdd
	NearestTowardPlusInfinity  = fppolicy.NearestTowardPlusInfinity
	NearestTowardMinusInfinity = fppolicy.NearestTowardMinusInfinity
	NearestTowardZero          = fppolicy.NearestTowardZero
	NearestAwayFromZero        = fppolicy.NearestAwayFromZero

	NearestToEvenStaticBoundary              = fppolicy.NearestToEvenStaticBoundary
	NearestToOddStaticBoundary               = fppolicy.NearestToOddStaticBoundary
	NearestTowardPlusInfinityStaticBoundary  = fppolicy.NearestTowardPlusInfinityStaticBoundary
	NearestTowardMinusInfinityStaticBoundary = fppolicy.NearestTowardMinusInfinityStaticBoundary

	TowardPlusInfinity  = fppolicy.TowardPlusInfinity
	TowardMinusInfinity = fppolicy.TowardMinusInfinity
	TowardZero          = fppolicy.TowardZero
	AwayFromZero        = fppolicy.AwayFromZero
)

// Decimal rounding axis.
const (
	DecimalToEven       = fppolicy.DecimalToEven
	DecimalDoNotCare    = fppolicy.DecimalDoNotCare
	DecimalToOdd        = fppolicy.DecimalToOdd
	DecimalAwayFromZero = fppolicy.DecimalAwayFromZero
	DecimalTowardZero   = fppolicy.DecimalTowardZero
)

// Cache axis.
const (
	CacheFast    = fppolicy.CacheFast
	CacheCompact = fppolicy.CacheCompact
)

// Validation axis.
const (
	AssertFinite = fppolicy.AssertFinite
	NoValidation = fppolicy.NoValidation
)

// Decimal64 is the decimal significand/exponent form of a binary64
// value: (-1)^Negative * Significand * 10^Exponent. For the shortest
// form, the significand is the smallest integer for which the pair
// converts back to the original binary value under the chosen rounding
// policy. Negative is populated only under SignPropagate and
// MayHaveTrailingZeros only under TrailingZeroReport.
type Decimal64 struct {
	Significand          uint64
	Exponent             int
	Negative             bool
	MayHaveTrailingZeros bool
}

// Decimal32 is the binary32 counterpart of Decimal64.
type Decimal32 struct {
	Significand          uint32
	Exponent             int
	Negative             bool
	MayHaveTrailingZeros bool
}
