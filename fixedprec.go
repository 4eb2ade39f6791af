package fpconv

import (
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/ryuprintf"
)

// AppendFixedPrecisionScientific64 appends x in scientific form with
// precision significant digits after the leading one, rounded half to
// even against the exact expansion, and returns the extended slice.
// precision must be nonnegative.
func AppendFixedPrecisionScientific64(dst []byte, x float64, precision int) []byte {
	if precision < 0 {
		panic("fpconv: negative precision")
	}
	br := ieee754.FromFloat64(x)
	if !br.IsFinite() {
		return appendSpecial(dst, br.IsNegative(), br.IsNaN())
	}
	if br.IsNegative() {
		dst = append(dst, '-')
	}
	if !br.IsNonzero() {
		return appendFixedZero(dst, precision)
	}
	g := ryuprintf.New64(br)
	return appendFixedPrecision(dst, &g, precision, 3)
}

// AppendFixedPrecisionScientific32 is the binary32 counterpart of
// AppendFixedPrecisionScientific64; the exponent field is always two
// digits.
func AppendFixedPrecisionScientific32(dst []byte, x float32, precision int) []byte {
	if precision < 0 {
		panic("fpconv: negative precision")
	}
	br := ieee754.FromFloat32(x)
	if !br.IsFinite() {
		return appendSpecial(dst, br.IsNegative(), br.IsNaN())
	}
	if br.IsNegative() {
		dst = append(dst, '-')
	}
	if !br.IsNonzero() {
		return appendFixedZero(dst, precision)
	}
	g := ryuprintf.New32(br)
	return appendFixedPrecision(dst, &g, precision, 2)
}

// FixedPrecisionScientific64 renders x into a new string.
func FixedPrecisionScientific64(x float64, precision int) string {
	return string(AppendFixedPrecisionScientific64(nil, x, precision))
}

// FixedPrecisionScientific32 renders x into a new string.
func FixedPrecisionScientific32(x float32, precision int) string {
	return string(AppendFixedPrecisionScientific32(nil, x, precision))
}

func appendFixedZero(dst []byte, precision int) []byte {
	if precision == 0 {
		return append(dst, '0')
	}
	dst = append(dst, '0', '.')
	dst = appendZeros(dst, precision)
	return append(dst, "e+00"...)
}

const halfSegment = 500000000

func appendFixedPrecision(dst []byte, gen segmentSource, precision, maxExpDigits int) []byte {
	first := gen.CurrentSegment()
	length := decimalLength9(first)
	firstDigit := first / pow10Small[length-1]
	exponent := length - 1 - gen.CurrentSegmentIndex()*ryuprintf.SegmentSize

	// Digits following the leading one, normalized so current carries
	// currentLen digits.
	var current uint32
	var currentLen int
	if length > 1 {
		current = first % pow10Small[length-1]
		currentLen = length - 1
	} else {
		current = gen.ComputeNextSegment()
		currentLen = ryuprintf.SegmentSize
	}

	if precision == 0 {
		// Only rounding information is needed beyond the first digit.
		normalized := current * pow10Small[ryuprintf.SegmentSize-currentLen]
		if normalized > halfSegment ||
			(normalized == halfSegment &&
				(firstDigit%2 != 0 || gen.HasFurtherNonzeroSegments())) {
			firstDigit++
			if firstDigit == 10 {
				firstDigit = 1
				exponent++
			}
		}
		dst = append(dst, byte('0'+firstDigit))
		return appendExponentPadded(dst, exponent, maxExpDigits)
	}

	if precision <= currentLen {
		// All required digits are at hand; only the rounding needs the
		// expansion.
		var remainder uint32
		head := current
		if precision < currentLen {
			aligned := current * pow10Small[ryuprintf.SegmentSize-currentLen]
			div := pow10Small[ryuprintf.SegmentSize-precision]
			head = aligned / div
			remainder = aligned % div * pow10Small[precision]
		} else {
			remainder = gen.ComputeNextSegment()
		}

		if remainder > halfSegment ||
			(remainder == halfSegment &&
				(head%2 != 0 || gen.HasFurtherNonzeroSegments())) {
			head++
			if head == pow10Small[precision] {
				// The carry ripples into the leading digit.
				firstDigit++
				if firstDigit == 10 {
					firstDigit = 1
					exponent++
				}
				dst = append(dst, byte('0'+firstDigit), '.')
				dst = appendZeros(dst, precision)
				return appendExponentPadded(dst, exponent, maxExpDigits)
			}
		}
		dst = append(dst, byte('0'+firstDigit), '.')
		dst = appendNumber(dst, head, precision)
		return appendExponentPadded(dst, exponent, maxExpDigits)
	}

	// More digits are needed than the first segment holds. Walk segments
	// left to right, holding back the most recent non-nine chunk (the
	// anchor) and the run of all-nine segments after it, since a carry
	// out of the rounding position propagates through exactly such a
	// run.
	remaining := precision - currentLen

	emittedHead := false
	ensureHead := func() {
		if !emittedHead {
			dst = append(dst, byte('0'+firstDigit), '.')
			emittedHead = true
		}
	}

	anchorValue := current
	anchorLen := currentLen
	haveAnchor := anchorValue+1 != pow10Small[currentLen]
	nineRun := 0
	if !haveAnchor {
		nineRun = currentLen
	}

	const allNines = 999999999

	next := gen.ComputeNextSegment()
	for remaining > ryuprintf.SegmentSize {
		if next == allNines {
			nineRun += ryuprintf.SegmentSize
		} else {
			// A non-nine segment seals everything before it against
			// carries; flush the pending anchor and nine run.
			ensureHead()
			if haveAnchor {
				dst = appendNumber(dst, anchorValue, anchorLen)
			}
			dst = appendNines(dst, nineRun)
			nineRun = 0
			anchorValue, anchorLen, haveAnchor = next, ryuprintf.SegmentSize, true
		}
		remaining -= ryuprintf.SegmentSize
		next = gen.ComputeNextSegment()
	}

	// Split the closing segment at the remaining digit count.
	var tail, remainder uint32
	if remaining == ryuprintf.SegmentSize {
		tail = next
		remainder = gen.ComputeNextSegment()
	} else {
		div := pow10Small[ryuprintf.SegmentSize-remaining]
		tail = next / div
		remainder = next % div * pow10Small[remaining]
	}

	carry := false
	if remainder > halfSegment ||
		(remainder == halfSegment &&
			(tail%2 != 0 || gen.HasFurtherNonzeroSegments())) {
		tail++
		if tail == pow10Small[remaining] {
			tail = 0
			carry = true
		}
	}

	if carry {
		// The deferred nines roll over to zeros and the carry lands on
		// the anchor, or on the leading digit when no anchor is held.
		if haveAnchor {
			anchorValue++
			ensureHead()
			dst = appendNumber(dst, anchorValue, anchorLen)
		} else {
			firstDigit++
			if firstDigit == 10 {
				firstDigit = 1
				exponent++
			}
			ensureHead()
		}
		dst = appendZeros(dst, nineRun+remaining)
		return appendExponentPadded(dst, exponent, maxExpDigits)
	}

	ensureHead()
	if haveAnchor {
		dst = appendNumber(dst, anchorValue, anchorLen)
	}
	dst = appendNines(dst, nineRun)
	dst = appendNumber(dst, tail, remaining)
	return appendExponentPadded(dst, exponent, maxExpDigits)
}
