package dragonbox

// The binary32 search. Structurally identical to the binary64 path but on
// 32-bit words with kappa = 1; kept as a separate copy so each format
// stays on its natural word size.

import (
	"github.com/agbru/fpconv/internal/bitops"
	"github.com/agbru/fpconv/internal/cache"
	"github.com/agbru/fpconv/internal/divisor"
	"github.com/agbru/fpconv/internal/fppolicy"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// Compute32 runs the shortest-decimal search on a finite nonzero binary32.
func Compute32(br ieee754.Bits32, opts fppolicy.Options) Result32 {
	eff := opts.BinaryRounding.Resolve(uint32(br)&1 != 0, br.IsNegative())
	switch eff.Tag {
	case fppolicy.TagToNearest:
		return computeNearest32(br, eff, opts)
	case fppolicy.TagLeftClosedDirected:
		return computeLeftClosedDirected32(br, opts)
	default:
		return computeRightClosedDirected32(br, opts)
	}
}

func computeNearest32(br ieee754.Bits32, eff fppolicy.Effective, opts fppolicy.Options) Result32 {
	significand := br.SignificandBits()
	exponent := br.ExponentBits()

	if exponent != 0 {
		exponent += ieee754.Binary32.ExponentBias - ieee754.Binary32.SignificandBits
		if significand == 0 {
			return shorterInterval32(exponent, eff.Shorter, opts)
		}
		significand |= 1 << 23
	} else {
		exponent = ieee754.Binary32.MinExponent - ieee754.Binary32.SignificandBits
	}

	interval := eff.Normal

	minusK := logexp.FloorLog10Pow2(exponent) - kappa32
	c := cache.Pow10_32(-minusK)
	betaMinus1 := exponent + logexp.FloorLog2Pow10(-minusK)

	deltaI := computeDelta32(c, betaMinus1)
	twoFc := significand << 1
	twoFr := twoFc | 1
	zi := computeMul32(twoFr<<uint(betaMinus1), c)

	var ret Result32

	ret.Significand = zi / bigDivisor32
	r := zi - bigDivisor32*ret.Significand

	smallDivisorCase := false
	switch {
	case r > deltaI:
		smallDivisorCase = true
	case r < deltaI:
		if r == 0 && !interval.IncludeRight &&
			isProductInteger32(caseFcPmHalf, twoFr, exponent, minusK) {
			if opts.DecimalRounding == fppolicy.DecimalDoNotCare {
				ret.Significand *= 10
				ret.Significand--
				ret.Exponent = minusK + kappa32
				return ret
			}
			ret.Significand--
			r = bigDivisor32
			smallDivisorCase = true
		}
	default:
		twoFl := twoFc - 1
		if (!interval.IncludeLeft ||
			!isProductInteger32(caseFcPmHalf, twoFl, exponent, minusK)) &&
			!computeMulParity32(twoFl, c, betaMinus1) {
			smallDivisorCase = true
		}
	}

	if !smallDivisorCase {
		ret.Exponent = minusK + kappa32 + 1
		finishTrailingZeros32(&ret, opts)
		return ret
	}

	ret.MayHaveTrailingZeros = false
	ret.Significand *= 10
	ret.Exponent = minusK + kappa32

	const mask = uint32(1)<<kappa32 - 1

	if opts.DecimalRounding == fppolicy.DecimalDoNotCare {
		if !interval.IncludeRight {
			if r&mask == 0 {
				r >>= kappa32
				if divisor.CheckDivisibilityAndDivideByPow5_1(&r) &&
					isProductInteger32(caseFcPmHalf, twoFr, exponent, minusK) {
					ret.Significand += r - 1
				} else {
					ret.Significand += r
				}
			} else {
				ret.Significand += divisor.DivideByPow10_1(r)
			}
		} else {
			ret.Significand += divisor.DivideByPow10_1(r)
		}
		return ret
	}

	dist := r - deltaI/2 + smallDivisor32/2
	if dist&mask == 0 {
		approxYParity := (dist^(smallDivisor32/2))&1 != 0
		dist >>= kappa32
		if divisor.CheckDivisibilityAndDivideByPow5_1(&dist) {
			ret.Significand += dist
			if computeMulParity32(twoFc, c, betaMinus1) != approxYParity {
				ret.Significand--
			} else if opts.DecimalRounding != fppolicy.DecimalAwayFromZero &&
				isProductInteger32(caseFc, twoFc, exponent, minusK) {
				ret.Significand = opts.DecimalRounding.BreakTie32(ret.Significand)
			}
		} else {
			ret.Significand += dist
		}
	} else {
		ret.Significand += divisor.DivideByPow10_1(dist)
	}
	return ret
}

func shorterInterval32(exponent int, interval fppolicy.Interval, opts fppolicy.Options) Result32 {
	minusK := logexp.FloorLog10Pow2MinusLog10Of4Over3(exponent)
	betaMinus1 := exponent + logexp.FloorLog2Pow10(-minusK)
	c := cache.Pow10_32(-minusK)

	xi := computeLeftEndpoint32(c, betaMinus1)
	zi := computeRightEndpoint32(c, betaMinus1)

	if !interval.IncludeRight && exponent >= shorterRightLow32 && exponent <= shorterRightHigh32 {
		zi--
	}
	if !interval.IncludeLeft || exponent < shorterLeftLow32 || exponent > shorterLeftHigh32 {
		xi++
	}

	var ret Result32
	ret.Significand = zi / 10
	if ret.Significand*10 >= xi {
		ret.Exponent = minusK + 1
		finishTrailingZeros32(&ret, opts)
		return ret
	}

	ret.MayHaveTrailingZeros = false
	ret.Significand = computeRoundUp32(c, betaMinus1)
	ret.Exponent = minusK

	if opts.DecimalRounding != fppolicy.DecimalDoNotCare &&
		opts.DecimalRounding != fppolicy.DecimalAwayFromZero &&
		exponent >= shorterTieLow32 && exponent <= shorterTieHigh32 {
		ret.Significand = opts.DecimalRounding.BreakTie32(ret.Significand)
	} else if ret.Significand < xi {
		ret.Significand++
	}
	return ret
}

func computeLeftClosedDirected32(br ieee754.Bits32, opts fppolicy.Options) Result32 {
	significand := br.SignificandBits()
	exponent := br.ExponentBits()

	if exponent != 0 {
		exponent += ieee754.Binary32.ExponentBias - ieee754.Binary32.SignificandBits
		significand |= 1 << 23
	} else {
		exponent = ieee754.Binary32.MinExponent - ieee754.Binary32.SignificandBits
	}

	minusK := logexp.FloorLog10Pow2(exponent) - kappa32
	c := cache.Pow10_32(-minusK)
	beta := exponent + logexp.FloorLog2Pow10(-minusK) + 1

	deltaI := computeDelta32(c, beta-1)
	xi := computeMul32(significand<<uint(beta), c)

	if !isProductInteger32(caseFc, significand, exponent+1, minusK) {
		xi++
	}

	var ret Result32
	ret.Significand = xi / bigDivisor32
	r := xi - bigDivisor32*ret.Significand
	if r != 0 {
		ret.Significand++
		r = bigDivisor32 - r
	}

	smallDivisorCase := false
	if r > deltaI {
		smallDivisorCase = true
	} else if r == deltaI {
		if computeMulParity32(significand+1, c, beta) ||
			isProductInteger32(caseFc, significand+1, exponent+1, minusK) {
			smallDivisorCase = true
		}
	}

	if !smallDivisorCase {
		ret.Exponent = minusK + kappa32 + 1
		finishTrailingZeros32(&ret, opts)
		return ret
	}

	ret.Significand *= 10
	ret.Significand -= divisor.DivideByPow10_1(r)
	ret.Exponent = minusK + kappa32
	ret.MayHaveTrailingZeros = false
	return ret
}

func computeRightClosedDirected32(br ieee754.Bits32, opts fppolicy.Options) Result32 {
	significand := br.SignificandBits()
	exponent := br.ExponentBits()

	closerBoundary := false
	if exponent != 0 {
		exponent += ieee754.Binary32.ExponentBias - ieee754.Binary32.SignificandBits
		closerBoundary = significand == 0
		significand |= 1 << 23
	} else {
		exponent = ieee754.Binary32.MinExponent - ieee754.Binary32.SignificandBits
	}

	shift := 0
	if closerBoundary {
		shift = 1
	}
	minusK := logexp.FloorLog10Pow2(exponent-shift) - kappa32
	c := cache.Pow10_32(-minusK)
	beta := exponent + logexp.FloorLog2Pow10(-minusK) + 1

	deltaI := computeDelta32(c, beta-1-shift)
	zi := computeMul32(significand<<uint(beta), c)

	var ret Result32
	ret.Significand = zi / bigDivisor32
	r := zi - bigDivisor32*ret.Significand

	smallDivisorCase := false
	if r > deltaI {
		smallDivisorCase = true
	} else if r == deltaI {
		if closerBoundary {
			if !computeMulParity32(significand*2-1, c, beta-1) {
				smallDivisorCase = true
			}
		} else {
			if !computeMulParity32(significand-1, c, beta) {
				smallDivisorCase = true
			}
		}
	}

	if !smallDivisorCase {
		ret.Exponent = minusK + kappa32 + 1
		finishTrailingZeros32(&ret, opts)
		return ret
	}

	ret.Significand *= 10
	ret.Significand += divisor.DivideByPow10_1(r)
	ret.Exponent = minusK + kappa32
	ret.MayHaveTrailingZeros = false
	return ret
}

func finishTrailingZeros32(ret *Result32, opts fppolicy.Options) {
	switch opts.TrailingZero {
	case fppolicy.TrailingZeroRemove:
		ret.Exponent += RemoveTrailingZeros32(&ret.Significand)
	case fppolicy.TrailingZeroReport:
		ret.MayHaveTrailingZeros = true
	}
}

// RemoveTrailingZeros32 strips trailing decimal zeros from n and returns
// the number removed. At most 7 zeros can occur for binary32.
func RemoveTrailingZeros32(n *uint32) int {
	t := bitops.CountTrailingZeros32(*n)
	const maxPower = 7
	if t > maxPower {
		t = maxPower
	}

	table := divisor.Pow5Table32

	s := 0
	for ; s < t-1; s += 2 {
		if *n*table[2].ModInv > table[2].MaxQuotient {
			break
		}
		*n *= table[2].ModInv
	}
	if s < t && *n*table[1].ModInv <= table[1].MaxQuotient {
		*n *= table[1].ModInv
		s++
	}
	*n >>= uint(s)
	return s
}

func isProductInteger32(caseID integerCheckCase, twoF uint32, exponent, minusK int) bool {
	if caseID == caseFcPmHalf {
		if exponent < caseFcHalfLow32 {
			return false
		}
		if exponent <= caseFcHalfHigh32 {
			return true
		}
		if exponent > div5Threshold32 {
			return false
		}
		return divisor.DivisibleByPow5_32(twoF, minusK)
	}
	if exponent > div5Threshold32 {
		return false
	}
	if exponent > caseFcHigh32 {
		return divisor.DivisibleByPow5_32(twoF, minusK)
	}
	if exponent >= caseFcLow32 {
		return true
	}
	return divisor.DivisibleByPow2_32(twoF, minusK-exponent+1)
}

func computeMul32(u uint32, c uint64) uint32 {
	return wideint.Umul96Upper32(u, c)
}

func computeDelta32(c uint64, betaMinus1 int) uint32 {
	return uint32(c >> uint(64-1-betaMinus1))
}

func computeMulParity32(twoF uint32, c uint64, betaMinus1 int) bool {
	return wideint.Umul96Lower64(twoF, c)>>uint(64-betaMinus1)&1 != 0
}

func computeLeftEndpoint32(c uint64, betaMinus1 int) uint32 {
	return uint32((c - c>>(23+2)) >> uint(64-23-1-betaMinus1))
}

func computeRightEndpoint32(c uint64, betaMinus1 int) uint32 {
	return uint32((c + c>>(23+1)) >> uint(64-23-1-betaMinus1))
}

func computeRoundUp32(c uint64, betaMinus1 int) uint32 {
	return uint32(c>>uint(64-23-2-betaMinus1)+1) / 2
}
