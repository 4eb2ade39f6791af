package fpconv

import (
	"github.com/agbru/fpconv/internal/bitops"
	"github.com/agbru/fpconv/internal/divisor"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/ryuprintf"
)

// segmentSource is the slice of the segment-walker API the renderers
// consume; both format walkers implement it.
type segmentSource interface {
	CurrentSegment() uint32
	CurrentSegmentIndex() int
	ComputeNextSegment() uint32
	HasFurtherNonzeroSegments() bool
}

func appendSpecial(dst []byte, negative, nan bool) []byte {
	if nan {
		return append(dst, "nan"...)
	}
	if negative {
		dst = append(dst, '-')
	}
	return append(dst, "Infinity"...)
}

// AppendShortestScientific64 appends the shortest round-trip scientific
// form of x to dst and returns the extended slice. The exponent is
// emitted in its natural width with a sign only when negative.
func AppendShortestScientific64(dst []byte, x float64, opts Options) []byte {
	br := ieee754.FromFloat64(x)
	if !br.IsFinite() {
		return appendSpecial(dst, br.IsNegative(), br.IsNaN())
	}
	if br.IsNegative() && opts.Sign == SignPropagate {
		dst = append(dst, '-')
	}
	if !br.IsNonzero() {
		return append(dst, "0e0"...)
	}
	d := ToShortestDecimal64(x, optsForRendering(opts))
	return appendShortestDigits(dst, d.Significand, d.Exponent)
}

// AppendShortestScientific32 is the binary32 counterpart of
// AppendShortestScientific64.
func AppendShortestScientific32(dst []byte, x float32, opts Options) []byte {
	br := ieee754.FromFloat32(x)
	if !br.IsFinite() {
		return appendSpecial(dst, br.IsNegative(), br.IsNaN())
	}
	if br.IsNegative() && opts.Sign == SignPropagate {
		dst = append(dst, '-')
	}
	if !br.IsNonzero() {
		return append(dst, "0e0"...)
	}
	d := ToShortestDecimal32(x, optsForRendering(opts))
	return appendShortestDigits(dst, uint64(d.Significand), d.Exponent)
}

// ShortestScientific64 renders x into a new string.
func ShortestScientific64(x float64, opts Options) string {
	return string(AppendShortestScientific64(nil, x, opts))
}

// ShortestScientific32 renders x into a new string.
func ShortestScientific32(x float32, opts Options) string {
	return string(AppendShortestScientific32(nil, x, opts))
}

// optsForRendering neutralizes the axes the renderer has already handled
// or cannot represent: the sign is written by the renderer itself, and a
// reported trailing-zero flag has no textual form.
func optsForRendering(opts Options) Options {
	opts.Sign = SignIgnore
	if opts.TrailingZero == TrailingZeroReport {
		opts.TrailingZero = TrailingZeroRemove
	}
	return opts
}

func appendShortestDigits(dst []byte, significand uint64, exponent int) []byte {
	length := decimalLength17(significand)
	var digits [17]byte
	writeSignificandDigits64(digits[:], significand, length)

	dst = append(dst, digits[0])
	if length > 1 {
		dst = append(dst, '.')
		dst = append(dst, digits[1:length]...)
	}

	dst = append(dst, 'e')
	exp := exponent + length - 1
	if exp < 0 {
		dst = append(dst, '-')
		exp = -exp
	}
	return appendNumber(dst, uint32(exp), decimalLength9(uint32(exp)))
}

// AppendPreciseScientific64 appends the exact decimal expansion of x in
// scientific form, trailing zeros removed, and returns the extended
// slice.
func AppendPreciseScientific64(dst []byte, x float64) []byte {
	br := ieee754.FromFloat64(x)
	if !br.IsFinite() {
		return appendSpecial(dst, br.IsNegative(), br.IsNaN())
	}
	if br.IsNegative() {
		dst = append(dst, '-')
	}
	if !br.IsNonzero() {
		return append(dst, "0e+0"...)
	}
	g := ryuprintf.New64(br)
	return appendPrecise(dst, &g)
}

// AppendPreciseScientific32 is the binary32 counterpart of
// AppendPreciseScientific64.
func AppendPreciseScientific32(dst []byte, x float32) []byte {
	br := ieee754.FromFloat32(x)
	if !br.IsFinite() {
		return appendSpecial(dst, br.IsNegative(), br.IsNaN())
	}
	if br.IsNegative() {
		dst = append(dst, '-')
	}
	if !br.IsNonzero() {
		return append(dst, "0e+0"...)
	}
	g := ryuprintf.New32(br)
	return appendPrecise(dst, &g)
}

// PreciseScientific64 renders x into a new string.
func PreciseScientific64(x float64) string {
	return string(AppendPreciseScientific64(nil, x))
}

// PreciseScientific32 renders x into a new string.
func PreciseScientific32(x float32) string {
	return string(AppendPreciseScientific32(nil, x))
}

func appendPrecise(dst []byte, gen segmentSource) []byte {
	exponent := -gen.CurrentSegmentIndex() * ryuprintf.SegmentSize

	first := gen.CurrentSegment()
	length := decimalLength9(first)
	firstDigit := first / pow10Small[length-1]
	rest := first % pow10Small[length-1]
	exponent += length - 1

	dst = append(dst, byte('0'+firstDigit))

	if !gen.HasFurtherNonzeroSegments() {
		// The whole tail sits in the first segment.
		if rest != 0 {
			stripped, zeros := stripTrailingZeros(rest)
			dst = append(dst, '.')
			dst = appendNumber(dst, stripped, length-1-zeros)
		}
		return appendExponentNatural(dst, exponent)
	}

	dst = append(dst, '.')
	if length > 1 {
		dst = appendNumber(dst, rest, length-1)
	}

	segment := gen.ComputeNextSegment()
	for gen.HasFurtherNonzeroSegments() {
		dst = appendNineDigits(dst, segment)
		segment = gen.ComputeNextSegment()
	}

	// The closing segment carries the last nonzero digit; strip what
	// follows it.
	stripped, zeros := stripTrailingZeros(segment)
	dst = appendNumber(dst, stripped, ryuprintf.SegmentSize-zeros)

	return appendExponentNatural(dst, exponent)
}

// stripTrailingZeros removes the trailing decimal zeros of a nonzero
// segment using the mod-inverse divisibility chain, returning the
// stripped value and the number of zeros removed.
func stripTrailingZeros(segment uint32) (uint32, int) {
	t := bitops.CountTrailingZeros32(segment)
	if t > ryuprintf.SegmentSize {
		t = ryuprintf.SegmentSize
	}
	table := divisor.Pow5Table32

	s := 0
	for ; s < t-1; s += 2 {
		if segment*table[2].ModInv > table[2].MaxQuotient {
			break
		}
		segment *= table[2].ModInv
	}
	if s < t && segment*table[1].ModInv <= table[1].MaxQuotient {
		segment *= table[1].ModInv
		s++
	}
	return segment >> uint(s), s
}

// appendExponentNatural appends 'e', an explicit sign, and the exponent
// in its natural width.
func appendExponentNatural(dst []byte, exponent int) []byte {
	dst = append(dst, 'e')
	if exponent < 0 {
		dst = append(dst, '-')
		exponent = -exponent
	} else {
		dst = append(dst, '+')
	}
	return appendNumber(dst, uint32(exponent), decimalLength9(uint32(exponent)))
}

// appendExponentPadded appends 'e', an explicit sign, and the exponent
// zero padded to two digits (three when it needs them and maxDigits
// allows).
func appendExponentPadded(dst []byte, exponent, maxDigits int) []byte {
	dst = append(dst, 'e')
	if exponent < 0 {
		dst = append(dst, '-')
		exponent = -exponent
	} else {
		dst = append(dst, '+')
	}
	digits := 2
	if exponent >= 100 && maxDigits >= 3 {
		digits = 3
	}
	return appendNumber(dst, uint32(exponent), digits)
}
