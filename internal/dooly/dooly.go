// Package dooly converts a limited-precision decimal (at most 9 digits
// for binary32, 17 for binary64) into the correctly rounded binary
// floating-point value.
//
// The conversion multiplies the decimal significand by the cached
// power-of-ten approximation, normalizes the product, then decides the
// final rounding from the residual bits, the interval policy and an
// exactness predicate on the infinite-precision product. The same cache
// tables used by the shortest-decimal search serve here, which is why
// their exponent range extends below what that search alone needs.
package dooly

import (
	"github.com/agbru/fpconv/internal/bitops"
	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/divisor"
	"github.com/agbru/fpconv/internal/fppolicy"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// DigitLimit64 and DigitLimit32 are the maximum decimal significand
// widths accepted by the converters.
const (
	DigitLimit64 = 17
	DigitLimit32 = 9
)

// Decimal exponent ranges outside of which the input saturates to zero or
// infinity.
const (
	minK64 = -342 // floor(log10(2^-1074)) - DigitLimit64 - 1
	maxK64 = 308  // floor(log10(2^1024))
	minK32 = -55
	maxK32 = 38
)

const (
	maxPow5Factor64 = 24 // floor(log5(10^17))
	maxPow5Factor32 = 12 // floor(log5(10^9))
)

// MaxSignificand64 and MaxSignificand32 are the largest accepted decimal
// significands.
const (
	MaxSignificand64 = uint64(100000000000000000 - 1)
	MaxSignificand32 = uint32(1000000000 - 1)
)

// Decimal64 is a signed decimal input for the binary64 converter.
type Decimal64 struct {
	Significand uint64
	Exponent    int
	Negative    bool
}

// Decimal32 is a signed decimal input for the binary32 converter.
type Decimal32 struct {
	Significand uint32
	Exponent    int
	Negative    bool
}

func getCache64(k int, mode fppolicy.Cache) wideint.Uint128 {
	if mode == fppolicy.CacheCompact {
		return cache.Pow10_64Compact(k)
	}
	return cache.Pow10_64(k)
}

// Compute64 converts decimal to the binary64 whose value, rounded under
// the binary-rounding policy, equals significand * 10^exponent.
// The significand must not exceed MaxSignificand64.
func Compute64(decimal Decimal64, opts fppolicy.Options) ieee754.Bits64 {
	if decimal.Significand > MaxSignificand64 {
		panic("dooly: significand exceeds the binary64 digit limit")
	}

	var ret uint64
	if decimal.Negative && opts.Sign == fppolicy.SignPropagate {
		ret = uint64(ieee754.SignMask64)
	}

	if decimal.Significand == 0 || decimal.Exponent < minK64 {
		return ieee754.Bits64(ret)
	}
	if decimal.Exponent > maxK64 {
		return ieee754.Bits64(ret | uint64(ieee754.InfinityBits64))
	}

	tag := opts.BinaryRounding.Resolve(false, decimal.Negative).Tag

	tau := bitops.CountLeadingZeros64(decimal.Significand)
	c := getCache64(decimal.Exponent, opts.Cache)
	gi := wideint.Umul192Upper64(decimal.Significand<<uint(tau), c)

	// Binary exponent estimate; normalize g into [2^62, 2^63).
	binExponent := 64 + logexp.FloorLog2Pow10(decimal.Exponent) - tau - 1
	if gi>>63 != 0 {
		gi >>= 1
		binExponent++
	}

	const (
		p                        = 52
		normalResidualMask       = uint64(1)<<(64-p-2) - 1
		normalDistanceToBoundary = uint64(1) << (64 - p - 3)
	)

	var (
		significand        uint64
		residualMask       uint64
		distanceToBoundary uint64
	)

	if binExponent < ieee754.Binary64.MinExponent {
		if tag == fppolicy.TagToNearest {
			if binExponent < ieee754.Binary64.MinExponent-p-1 {
				return ieee754.Bits64(ret)
			}
			if binExponent == ieee754.Binary64.MinExponent-p-1 {
				// Half of the smallest subnormal: zero or the smallest
				// subnormal depending on the boundary rule.
				if opts.BinaryRounding.Resolve(false, false).Normal.IncludeRight {
					if gi != uint64(1)<<62 {
						return ieee754.Bits64(ret | 1)
					}
					if !isGInteger64(decimal.Significand, decimal.Exponent, 64-2-binExponent) {
						return ieee754.Bits64(ret | 1)
					}
					return ieee754.Bits64(ret)
				}
				return ieee754.Bits64(ret | 1)
			}
		} else if tag == fppolicy.TagLeftClosedDirected {
			if binExponent <= ieee754.Binary64.MinExponent-p-1 {
				return ieee754.Bits64(ret)
			}
		}

		// Subnormal: widen the residual to the subnormal spacing.
		residualMask = normalResidualMask + 1
		distanceToBoundary = normalDistanceToBoundary

		shift := uint(ieee754.Binary64.MinExponent - binExponent)
		residualMask <<= shift
		distanceToBoundary <<= shift
		residualMask--

		significand = gi >> (uint(64-p-2) + shift)
		binExponent = ieee754.Binary64.ExponentBias
	} else {
		residualMask = normalResidualMask
		distanceToBoundary = normalDistanceToBoundary
		significand = (gi << 2) >> (64 - p)
	}

	composeBits := func() ieee754.Bits64 {
		if binExponent > ieee754.Binary64.MaxExponent {
			return ieee754.Bits64(ret | uint64(ieee754.InfinityBits64))
		}
		ret |= significand
		ret |= uint64(binExponent-ieee754.Binary64.ExponentBias) << p
		return ieee754.Bits64(ret)
	}

	switch tag {
	case fppolicy.TagToNearest:
		remainder := gi & residualMask
		if remainder > distanceToBoundary {
			significand++
		} else if remainder == distanceToBoundary {
			candidate := ret | significand
			includeBoundary := opts.BinaryRounding.Resolve(candidate&1 != 0,
				ieee754.Bits64(candidate).IsNegative()).Normal.IncludeRight
			if !includeBoundary {
				significand++
			} else {
				if !isGInteger64(decimal.Significand, decimal.Exponent, 64-2-binExponent) {
					significand++
				}
				return composeBits()
			}
		} else {
			return composeBits()
		}
		if significand == uint64(1)<<p {
			binExponent++
			significand = 0
		}

	case fppolicy.TagLeftClosedDirected:
		// Round toward zero: the truncation already is the answer.

	default: // right-closed directed
		remainder := gi & residualMask
		if remainder == 0 &&
			isGInteger64(decimal.Significand, decimal.Exponent, 64-2-binExponent) {
			return composeBits()
		}
		significand++
		if significand == uint64(1)<<p {
			binExponent++
			significand = 0
		}
	}

	return composeBits()
}

// isGInteger64 reports whether f * 10^k * 2^e is an integer.
func isGInteger64(f uint64, k, e int) bool {
	if e+k < 0 {
		return divisor.DivisibleByPow2_64(f, -e-k)
	}
	if k < 0 {
		if -k > maxPow5Factor64 {
			return false
		}
		return divisor.DivisibleByPow5_64(f, -k)
	}
	return true
}

// Compute32 converts decimal to the binary32 whose value, rounded under
// the binary-rounding policy, equals significand * 10^exponent.
// The significand must not exceed MaxSignificand32.
func Compute32(decimal Decimal32, opts fppolicy.Options) ieee754.Bits32 {
	if decimal.Significand > MaxSignificand32 {
		panic("dooly: significand exceeds the binary32 digit limit")
	}

	var ret uint32
	if decimal.Negative && opts.Sign == fppolicy.SignPropagate {
		ret = uint32(ieee754.SignMask32)
	}

	if decimal.Significand == 0 || decimal.Exponent < minK32 {
		return ieee754.Bits32(ret)
	}
	if decimal.Exponent > maxK32 {
		return ieee754.Bits32(ret | uint32(ieee754.InfinityBits32))
	}

	tag := opts.BinaryRounding.Resolve(false, decimal.Negative).Tag

	tau := bitops.CountLeadingZeros32(decimal.Significand)
	c := cache.Pow10_32(decimal.Exponent)
	gi := wideint.Umul96Upper32(decimal.Significand<<uint(tau), c)

	binExponent := 32 + logexp.FloorLog2Pow10(decimal.Exponent) - tau - 1
	if gi>>31 != 0 {
		gi >>= 1
		binExponent++
	}

	const (
		p                        = 23
		normalResidualMask       = uint32(1)<<(32-p-2) - 1
		normalDistanceToBoundary = uint32(1) << (32 - p - 3)
	)

	var (
		significand        uint32
		residualMask       uint32
		distanceToBoundary uint32
	)

	if binExponent < ieee754.Binary32.MinExponent {
		if tag == fppolicy.TagToNearest {
			if binExponent < ieee754.Binary32.MinExponent-p-1 {
				return ieee754.Bits32(ret)
			}
			if binExponent == ieee754.Binary32.MinExponent-p-1 {
				if opts.BinaryRounding.Resolve(false, false).Normal.IncludeRight {
					if gi != uint32(1)<<30 {
						return ieee754.Bits32(ret | 1)
					}
					if !isGInteger32(decimal.Significand, decimal.Exponent, 32-2-binExponent) {
						return ieee754.Bits32(ret | 1)
					}
					return ieee754.Bits32(ret)
				}
				return ieee754.Bits32(ret | 1)
			}
		} else if tag == fppolicy.TagLeftClosedDirected {
			if binExponent <= ieee754.Binary32.MinExponent-p-1 {
				return ieee754.Bits32(ret)
			}
		}

		residualMask = normalResidualMask + 1
		distanceToBoundary = normalDistanceToBoundary

		shift := uint(ieee754.Binary32.MinExponent - binExponent)
		residualMask <<= shift
		distanceToBoundary <<= shift
		residualMask--

		significand = gi >> (uint(32-p-2) + shift)
		binExponent = ieee754.Binary32.ExponentBias
	} else {
		residualMask = normalResidualMask
		distanceToBoundary = normalDistanceToBoundary
		significand = (gi << 2) >> (32 - p)
	}

	composeBits := func() ieee754.Bits32 {
		if binExponent > ieee754.Binary32.MaxExponent {
			return ieee754.Bits32(ret | uint32(ieee754.InfinityBits32))
		}
		ret |= significand
		ret |= uint32(binExponent-ieee754.Binary32.ExponentBias) << p
		return ieee754.Bits32(ret)
	}

	switch tag {
	case fppolicy.TagToNearest:
		remainder := gi & residualMask
		if remainder > distanceToBoundary {
			significand++
		} else if remainder == distanceToBoundary {
			candidate := ret | significand
			includeBoundary := opts.BinaryRounding.Resolve(candidate&1 != 0,
				ieee754.Bits32(candidate).IsNegative()).Normal.IncludeRight
			if !includeBoundary {
				significand++
			} else {
				if !isGInteger32(decimal.Significand, decimal.Exponent, 32-2-binExponent) {
					significand++
				}
				return composeBits()
			}
		} else {
			return composeBits()
		}
		if significand == uint32(1)<<p {
			binExponent++
			significand = 0
		}

	case fppolicy.TagLeftClosedDirected:
		// Round toward zero.

	default:
		remainder := gi & residualMask
		if remainder == 0 &&
			isGInteger32(decimal.Significand, decimal.Exponent, 32-2-binExponent) {
			return composeBits()
		}
		significand++
		if significand == uint32(1)<<p {
			binExponent++
			significand = 0
		}
	}

	return composeBits()
}

// isGInteger32 reports whether f * 10^k * 2^e is an integer.
func isGInteger32(f uint32, k, e int) bool {
	if e+k < 0 {
		return divisor.DivisibleByPow2_32(f, -e-k)
	}
	if k < 0 {
		if -k > maxPow5Factor32 {
			return false
		}
		return divisor.DivisibleByPow5_32(f, -k)
	}
	return true
}
