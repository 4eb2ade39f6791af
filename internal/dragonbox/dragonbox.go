// Package dragonbox computes shortest round-trip decimal representations
// of IEEE-754 binary32/binary64 values.
//
// The search works on the rounding interval I of the input w: it first
// looks for a multiple of the larger divisor 10^(kappa+1) inside 10^k * I,
// and only when none exists does it fall back to the smaller divisor
// 10^kappa, which is guaranteed to succeed. Interval endpoints are never
// materialized; membership is decided from a single rounded multiplication
// with the power-of-ten cache plus parity and integer-ness side channels.
//
// The port follows the reference implementation by Junekey Jeon; the
// binary64 and binary32 paths are kept as separate copies so each stays on
// its natural word size.
package dragonbox

import (
	"github.com/agbru/fpconv/internal/bitops"
	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/divisor"
	"github.com/agbru/fpconv/internal/fppolicy"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// Result64 is an unsigned decimal significand/exponent pair for binary64.
type Result64 struct {
	Significand          uint64
	Exponent             int
	MayHaveTrailingZeros bool
}

// Result32 is an unsigned decimal significand/exponent pair for binary32.
type Result32 struct {
	Significand          uint32
	Exponent             int
	MayHaveTrailingZeros bool
}

// Constants for the binary64 search.
const (
	kappa64        = 2
	bigDivisor64   = 1000 // 10^(kappa+1)
	smallDivisor64 = 100  // 10^kappa

	maxPow5Factor64  = 23 // floor(log5(2^54))
	div5Threshold64  = 86 // floor(log2(10^(maxPow5Factor64 + kappa + 1)))
	caseFcHalfLow64  = -2 // -kappa - floor(log5(2^kappa))
	caseFcHalfHigh64 = 9  // floor(log2(10^(kappa+1)))
	caseFcLow64      = -4 // -kappa - 1 - floor(log5(2^(kappa+1)))
	caseFcHigh64     = 9

	shorterLeftLow64   = 2
	shorterLeftHigh64  = 3
	shorterRightLow64  = 0
	shorterRightHigh64 = 3
	shorterTieLow64    = -77
	shorterTieHigh64   = -77
)

// Constants for the binary32 search.
const (
	kappa32        = 1
	bigDivisor32   = 100
	smallDivisor32 = 10

	maxPow5Factor32  = 10 // floor(log5(2^25))
	div5Threshold32  = 39 // floor(log2(10^(maxPow5Factor32 + kappa + 1)))
	caseFcHalfLow32  = -1
	caseFcHalfHigh32 = 6
	caseFcLow32      = -2
	caseFcHigh32     = 6

	shorterLeftLow32   = 2
	shorterLeftHigh32  = 3
	shorterRightLow32  = 0
	shorterRightHigh32 = 3
	shorterTieLow32    = -35
	shorterTieHigh32   = -35
)

func getCache64(k int, mode fppolicy.Cache) wideint.Uint128 {
	if mode == fppolicy.CacheCompact {
		return cache.Pow10_64Compact(k)
	}
	return cache.Pow10_64(k)
}

// Compute64 runs the shortest-decimal search on a finite nonzero binary64.
// The sign is not consulted except through the interval policy; the caller
// handles sign propagation.
func Compute64(br ieee754.Bits64, opts fppolicy.Options) Result64 {
	eff := opts.BinaryRounding.Resolve(uint64(br)&1 != 0, br.IsNegative())
	switch eff.Tag {
	case fppolicy.TagToNearest:
		return computeNearest64(br, eff, opts)
	case fppolicy.TagLeftClosedDirected:
		return computeLeftClosedDirected64(br, opts)
	default:
		return computeRightClosedDirected64(br, opts)
	}
}

func computeNearest64(br ieee754.Bits64, eff fppolicy.Effective, opts fppolicy.Options) Result64 {
	significand := br.SignificandBits()
	exponent := br.ExponentBits()

	if exponent != 0 {
		exponent += ieee754.Binary64.ExponentBias - ieee754.Binary64.SignificandBits
		if significand == 0 {
			return shorterInterval64(exponent, eff.Shorter, opts)
		}
		significand |= 1 << 52
	} else {
		exponent = ieee754.Binary64.MinExponent - ieee754.Binary64.SignificandBits
	}

	interval := eff.Normal

	minusK := logexp.FloorLog10Pow2(exponent) - kappa64
	c := getCache64(-minusK, opts.Cache)
	betaMinus1 := exponent + logexp.FloorLog2Pow10(-minusK)

	deltaI := computeDelta64(c, betaMinus1)
	twoFc := significand << 1
	twoFr := twoFc | 1
	zi := computeMul64(twoFr<<uint(betaMinus1), c)

	var ret Result64

	// Step 2: try the larger divisor; remove trailing zeros on success.
	ret.Significand = divisor.DivideByPow10_3_64(zi)
	r := uint32(zi - bigDivisor64*ret.Significand)

	smallDivisorCase := false
	switch {
	case r > deltaI:
		smallDivisorCase = true
	case r < deltaI:
		// Exclude the right endpoint if necessary.
		if r == 0 && !interval.IncludeRight &&
			isProductInteger64(caseFcPmHalf, twoFr, exponent, minusK) {
			if opts.DecimalRounding == fppolicy.DecimalDoNotCare {
				ret.Significand *= 10
				ret.Significand--
				ret.Exponent = minusK + kappa64
				return ret
			}
			ret.Significand--
			r = bigDivisor64
			smallDivisorCase = true
		}
	default:
		// r == deltaI: compare the fractional parts through the parity of
		// the left endpoint.
		twoFl := twoFc - 1
		if (!interval.IncludeLeft ||
			!isProductInteger64(caseFcPmHalf, twoFl, exponent, minusK)) &&
			!computeMulParity64(twoFl, c, betaMinus1) {
			smallDivisorCase = true
		}
	}

	if !smallDivisorCase {
		ret.Exponent = minusK + kappa64 + 1
		finishTrailingZeros64(&ret, opts)
		return ret
	}

	// Step 3: find the significand with the smaller divisor.
	ret.MayHaveTrailingZeros = false
	ret.Significand *= 10
	ret.Exponent = minusK + kappa64

	const mask = uint32(1)<<kappa64 - 1

	if opts.DecimalRounding == fppolicy.DecimalDoNotCare {
		// The result may sit exactly on the excluded right endpoint; pull
		// it back in when it does.
		if !interval.IncludeRight {
			if r&mask == 0 {
				r >>= kappa64
				if divisor.CheckDivisibilityAndDivideByPow5_2(&r) &&
					isProductInteger64(caseFcPmHalf, twoFr, exponent, minusK) {
					ret.Significand += uint64(r) - 1
				} else {
					ret.Significand += uint64(r)
				}
			} else {
				ret.Significand += uint64(divisor.DivideByPow10_2(r))
			}
		} else {
			ret.Significand += uint64(divisor.DivideByPow10_2(r))
		}
		return ret
	}

	dist := r - deltaI/2 + smallDivisor64/2
	if dist&mask == 0 {
		approxYParity := (dist^(smallDivisor64/2))&1 != 0
		dist >>= kappa64
		if divisor.CheckDivisibilityAndDivideByPow5_2(&dist) {
			ret.Significand += uint64(dist)
			// zi and r have the same parity, so the parity of the real y
			// discriminates z^(f) >= epsilon^(f).
			if computeMulParity64(twoFc, c, betaMinus1) != approxYParity {
				ret.Significand--
			} else if opts.DecimalRounding != fppolicy.DecimalAwayFromZero &&
				isProductInteger64(caseFc, twoFc, exponent, minusK) {
				ret.Significand = opts.DecimalRounding.BreakTie64(ret.Significand)
			}
		} else {
			ret.Significand += uint64(dist)
		}
	} else {
		ret.Significand += uint64(divisor.DivideByPow10_2(dist))
	}
	return ret
}

func shorterInterval64(exponent int, interval fppolicy.Interval, opts fppolicy.Options) Result64 {
	minusK := logexp.FloorLog10Pow2MinusLog10Of4Over3(exponent)
	betaMinus1 := exponent + logexp.FloorLog2Pow10(-minusK)
	c := getCache64(-minusK, opts.Cache)

	xi := computeLeftEndpoint64(c, betaMinus1)
	zi := computeRightEndpoint64(c, betaMinus1)

	// Adjust the endpoints for open boundaries and non-integer endpoints.
	if !interval.IncludeRight && exponent >= shorterRightLow64 && exponent <= shorterRightHigh64 {
		zi--
	}
	if !interval.IncludeLeft || exponent < shorterLeftLow64 || exponent > shorterLeftHigh64 {
		xi++
	}

	var ret Result64
	ret.Significand = zi / 10
	if ret.Significand*10 >= xi {
		ret.Exponent = minusK + 1
		finishTrailingZeros64(&ret, opts)
		return ret
	}

	ret.MayHaveTrailingZeros = false
	ret.Significand = computeRoundUp64(c, betaMinus1)
	ret.Exponent = minusK

	if opts.DecimalRounding != fppolicy.DecimalDoNotCare &&
		opts.DecimalRounding != fppolicy.DecimalAwayFromZero &&
		exponent >= shorterTieLow64 && exponent <= shorterTieHigh64 {
		ret.Significand = opts.DecimalRounding.BreakTie64(ret.Significand)
	} else if ret.Significand < xi {
		ret.Significand++
	}
	return ret
}

func computeLeftClosedDirected64(br ieee754.Bits64, opts fppolicy.Options) Result64 {
	significand := br.SignificandBits()
	exponent := br.ExponentBits()

	if exponent != 0 {
		exponent += ieee754.Binary64.ExponentBias - ieee754.Binary64.SignificandBits
		significand |= 1 << 52
	} else {
		exponent = ieee754.Binary64.MinExponent - ieee754.Binary64.SignificandBits
	}

	minusK := logexp.FloorLog10Pow2(exponent) - kappa64
	c := getCache64(-minusK, opts.Cache)
	beta := exponent + logexp.FloorLog2Pow10(-minusK) + 1

	deltaI := computeDelta64(c, beta-1)
	xi := computeMul64(significand<<uint(beta), c)

	if !isProductInteger64(caseFc, significand, exponent+1, minusK) {
		xi++
	}

	var ret Result64
	ret.Significand = divisor.DivideByPow10_3_64(xi)
	r := uint32(xi - bigDivisor64*ret.Significand)
	if r != 0 {
		ret.Significand++
		r = bigDivisor64 - r
	}

	smallDivisorCase := false
	if r > deltaI {
		smallDivisorCase = true
	} else if r == deltaI {
		if computeMulParity64(significand+1, c, beta) ||
			isProductInteger64(caseFc, significand+1, exponent+1, minusK) {
			smallDivisorCase = true
		}
	}

	if !smallDivisorCase {
		ret.Exponent = minusK + kappa64 + 1
		finishTrailingZeros64(&ret, opts)
		return ret
	}

	ret.Significand *= 10
	ret.Significand -= uint64(divisor.DivideByPow10_2(r))
	ret.Exponent = minusK + kappa64
	ret.MayHaveTrailingZeros = false
	return ret
}

func computeRightClosedDirected64(br ieee754.Bits64, opts fppolicy.Options) Result64 {
	significand := br.SignificandBits()
	exponent := br.ExponentBits()

	closerBoundary := false
	if exponent != 0 {
		exponent += ieee754.Binary64.ExponentBias - ieee754.Binary64.SignificandBits
		closerBoundary = significand == 0
		significand |= 1 << 52
	} else {
		exponent = ieee754.Binary64.MinExponent - ieee754.Binary64.SignificandBits
	}

	shift := 0
	if closerBoundary {
		shift = 1
	}
	minusK := logexp.FloorLog10Pow2(exponent-shift) - kappa64
	c := getCache64(-minusK, opts.Cache)
	beta := exponent + logexp.FloorLog2Pow10(-minusK) + 1

	deltaI := computeDelta64(c, beta-1-shift)
	zi := computeMul64(significand<<uint(beta), c)

	var ret Result64
	ret.Significand = divisor.DivideByPow10_3_64(zi)
	r := uint32(zi - bigDivisor64*ret.Significand)

	smallDivisorCase := false
	if r > deltaI {
		smallDivisorCase = true
	} else if r == deltaI {
		if closerBoundary {
			if !computeMulParity64(significand*2-1, c, beta-1) {
				smallDivisorCase = true
			}
		} else {
			if !computeMulParity64(significand-1, c, beta) {
				smallDivisorCase = true
			}
		}
	}

	if !smallDivisorCase {
		ret.Exponent = minusK + kappa64 + 1
		finishTrailingZeros64(&ret, opts)
		return ret
	}

	ret.Significand *= 10
	ret.Significand += uint64(divisor.DivideByPow10_2(r))
	ret.Exponent = minusK + kappa64
	ret.MayHaveTrailingZeros = false
	return ret
}

func finishTrailingZeros64(ret *Result64, opts fppolicy.Options) {
	switch opts.TrailingZero {
	case fppolicy.TrailingZeroRemove:
		ret.Exponent += RemoveTrailingZeros64(&ret.Significand)
	case fppolicy.TrailingZeroReport:
		ret.MayHaveTrailingZeros = true
	}
}

// RemoveTrailingZeros64 strips trailing decimal zeros from n and returns
// the number removed. At most 15 zeros can occur for binary64.
func RemoveTrailingZeros64(n *uint64) int {
	t := bitops.CountTrailingZeros64(*n)
	const maxPower = 16 // smallest s with 10^s at or above (2^64-1)/1000/10
	if t > maxPower {
		t = maxPower
	}

	table := divisor.Pow5Table64

	// Try a single divide by 10^8 to drop to 32 bits, then strip on the
	// cheap word size.
	if t >= 8 {
		quotientCandidate := *n * table[8].ModInv
		if quotientCandidate <= table[8].MaxQuotient {
			quotient := uint32(quotientCandidate >> 8)

			modInverse := uint32(table[1].ModInv)
			const maxQuotient = ^uint32(0) / 5

			s := 8
			for ; s < t; s++ {
				if quotient*modInverse > maxQuotient {
					break
				}
				quotient *= modInverse
			}
			quotient >>= uint(s - 8)
			*n = uint64(quotient)
			return s
		}
	}

	// Otherwise strip zeros from the low 8 digits.
	quotient := uint32(divideByPow10_8(*n))
	remainder := uint32(*n - 100000000*uint64(quotient))

	modInverse := uint32(table[1].ModInv)
	const maxQuotient = ^uint32(0) / 5

	if t == 0 || remainder*modInverse > maxQuotient {
		return 0
	}
	remainder *= modInverse

	pow10 := uint64(10000000)
	for s := 1; ; s++ {
		if t == s || s == 7 || remainder*modInverse > maxQuotient {
			*n = uint64(remainder>>uint(s)) + uint64(quotient)*pow10
			return s
		}
		remainder *= modInverse
		pow10 /= 10
	}
}

// divideByPow10_8 computes n / 10^8 for n below 10^17.
func divideByPow10_8(n uint64) uint64 {
	return n / 100000000
}

// Integer-check cases: whether the exact product x * 10^k is an integer,
// where x is half-integer (fc +- 1/2 scaled to 2fc +- 1) or integer (fc).
type integerCheckCase int

const (
	caseFcPmHalf integerCheckCase = iota
	caseFc
)

func isProductInteger64(caseID integerCheckCase, twoF uint64, exponent, minusK int) bool {
	if caseID == caseFcPmHalf {
		if exponent < caseFcHalfLow64 {
			return false
		}
		if exponent <= caseFcHalfHigh64 {
			return true
		}
		if exponent > div5Threshold64 {
			return false
		}
		return divisor.DivisibleByPow5_64(twoF, minusK)
	}
	if exponent > div5Threshold64 {
		return false
	}
	if exponent > caseFcHigh64 {
		return divisor.DivisibleByPow5_64(twoF, minusK)
	}
	if exponent >= caseFcLow64 {
		return true
	}
	return divisor.DivisibleByPow2_64(twoF, minusK-exponent+1)
}

func computeMul64(u uint64, c wideint.Uint128) uint64 {
	return wideint.Umul192Upper64(u, c)
}

func computeDelta64(c wideint.Uint128, betaMinus1 int) uint32 {
	return uint32(c.Hi >> uint(64-1-betaMinus1))
}

func computeMulParity64(twoF uint64, c wideint.Uint128, betaMinus1 int) bool {
	return wideint.Umul192Middle64(twoF, c)>>uint(64-betaMinus1)&1 != 0
}

func computeLeftEndpoint64(c wideint.Uint128, betaMinus1 int) uint64 {
	return (c.Hi - c.Hi>>(52+2)) >> uint(64-52-1-betaMinus1)
}

func computeRightEndpoint64(c wideint.Uint128, betaMinus1 int) uint64 {
	return (c.Hi + c.Hi>>(52+1)) >> uint(64-52-1-betaMinus1)
}

func computeRoundUp64(c wideint.Uint128, betaMinus1 int) uint64 {
	return (c.Hi>>uint(64-52-2-betaMinus1) + 1) / 2
}
