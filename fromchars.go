package fpconv

import (
	"github.com/agbru/fpconv/internal/dooly"
	"github.com/agbru/fpconv/internal/ieee754"
	"github.com/agbru/fpconv/internal/ryuprintf"
)

// The parsers accept decimal numerals of the form
// [±]d+[.d*][(e|E)[±]d+] (a leading dot is also tolerated). They are
// deliberately primitive: the unchecked entry points assume syntactically
// valid input and panic on violations, exactly like the rest of the
// precondition surface. ParseFloat64/ParseFloat32 wrap them with a
// syntax check that returns ErrInvalidSyntax instead.

// FromCharsLimited64 parses a decimal numeral of at most 17 significant
// digits and converts it with the limited-precision converter under
// opts. The digit budget is a precondition, not a truncation.
func FromCharsLimited64(s string, opts Options) uint64 {
	d := parseLimited64(s)
	return uint64(dooly.Compute64(d, opts))
}

// FromCharsLimited32 is the binary32 counterpart of FromCharsLimited64,
// with a 9-digit budget.
func FromCharsLimited32(s string, opts Options) uint32 {
	d64 := parseLimited64(s)
	if d64.Significand > uint64(dooly.MaxSignificand32) {
		panic("fpconv: too many digits for the binary32 digit limit")
	}
	return uint32(dooly.Compute32(dooly.Decimal32{
		Significand: uint32(d64.Significand),
		Exponent:    d64.Exponent,
		Negative:    d64.Negative,
	}, opts))
}

func parseLimited64(s string) dooly.Decimal64 {
	if len(s) == 0 {
		panic("fpconv: empty numeral")
	}
	var d dooly.Decimal64
	i, end := 0, len(s)
	digits := 0
	fracStart := 0

	if s[i] == '-' {
		d.Negative = true
		i++
	} else if s[i] == '+' {
		i++
	}
	if i == end {
		panic("fpconv: numeral without digits")
	}

	switch {
	case s[i] == '.':
		i++
		fracStart = i
		goto afterDecimalPoint
	case s[i] == '0':
		i++
		if i == end {
			return d
		}
		switch s[i] {
		case '.':
			i++
			fracStart = i
			goto afterDecimalPoint
		case 'e', 'E':
			i++
			goto afterExponentMarker
		default:
			panic("fpconv: malformed numeral")
		}
	default:
		assertDigit(s[i])
		digits = 1
		d.Significand = uint64(s[i] - '0')
		i++
	}

	for ; i < end; i++ {
		switch {
		case s[i] == '.':
			i++
			fracStart = i
			goto afterDecimalPoint
		case s[i] == 'e' || s[i] == 'E':
			i++
			goto afterExponentMarker
		default:
			assertDigit(s[i])
			digits++
			assertDigitBudget(digits)
			d.Significand = d.Significand*10 + uint64(s[i]-'0')
		}
	}
	return d

afterDecimalPoint:
	for ; i < end; i++ {
		if s[i] == 'e' || s[i] == 'E' {
			d.Exponent -= i - fracStart
			i++
			goto afterExponentMarker
		}
		assertDigit(s[i])
		digits++
		assertDigitBudget(digits)
		d.Significand = d.Significand*10 + uint64(s[i]-'0')
	}
	d.Exponent -= i - fracStart
	return d

afterExponentMarker:
	{
		if i == end {
			panic("fpconv: empty exponent")
		}
		negativeExponent := false
		if s[i] == '-' {
			negativeExponent = true
			i++
		} else if s[i] == '+' {
			i++
		}
		if i == end {
			panic("fpconv: empty exponent")
		}
		exp := 0
		for ; i < end; i++ {
			assertDigit(s[i])
			exp = exp*10 + int(s[i]-'0')
		}
		if negativeExponent {
			d.Exponent -= exp
		} else {
			d.Exponent += exp
		}
	}
	return d
}

func assertDigit(c byte) {
	if c < '0' || c > '9' {
		panic("fpconv: malformed numeral")
	}
}

func assertDigitBudget(digits int) {
	if digits > dooly.DigitLimit64 {
		panic("fpconv: digit budget exceeded")
	}
}

// FromCharsUnlimited64 parses a decimal numeral of any length into the
// correctly rounded (nearest, ties to even) binary64 bit pattern.
func FromCharsUnlimited64(s string) uint64 {
	return fromCharsUnlimited(s, dooly.DigitLimit64, seedAndResolve64)
}

// FromCharsUnlimited32 parses a decimal numeral of any length into the
// correctly rounded (nearest, ties to even) binary32 bit pattern.
func FromCharsUnlimited32(s string) uint32 {
	return uint32(fromCharsUnlimited(s, dooly.DigitLimit32, seedAndResolve32))
}

// ParseFloat64 is the checked form of FromCharsUnlimited64: it validates
// the syntax and returns ErrInvalidSyntax instead of panicking.
func ParseFloat64(s string) (float64, error) {
	if !validSyntax(s) {
		return 0, ErrInvalidSyntax
	}
	return ieee754.Bits64(FromCharsUnlimited64(s)).Float(), nil
}

// ParseFloat32 is the checked form of FromCharsUnlimited32.
func ParseFloat32(s string) (float32, error) {
	if !validSyntax(s) {
		return 0, ErrInvalidSyntax
	}
	return ieee754.Bits32(FromCharsUnlimited32(s)).Float(), nil
}

// validSyntax accepts [±]d+[.d*][(e|E)[±]d+] and [±].d+[...] forms.
func validSyntax(s string) bool {
	i, end := 0, len(s)
	if i < end && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := 0
	for i < end && s[i] >= '0' && s[i] <= '9' {
		i++
		intDigits++
	}
	fracDigits := 0
	if i < end && s[i] == '.' {
		i++
		for i < end && s[i] >= '0' && s[i] <= '9' {
			i++
			fracDigits++
		}
	}
	if intDigits+fracDigits == 0 {
		return false
	}
	if i < end && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < end && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < end && s[i] >= '0' && s[i] <= '9' {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == end
}

// scan is the first pass over the numeral: it locates the decimal dot,
// the end of the significand, the first significant digit, and the
// explicit exponent.
type scan struct {
	negative          bool
	begin             int // first significant digit (leading zeros skipped)
	decimalDotPos     int // position of '.', or len(s)
	significandEndPos int // position of the exponent marker, or len(s)
	exponent          int
	exponentOverflow  int // -1 underflow, +1 overflow, 0 none
}

func scanNumeral(s string) scan {
	end := len(s)
	sc := scan{decimalDotPos: end, significandEndPos: end}
	ptr := 0
	if ptr >= end {
		panic("fpconv: empty numeral")
	}
	if s[ptr] == '-' {
		sc.negative = true
		ptr++
		sc.begin = ptr
	} else if s[ptr] == '+' {
		ptr++
		sc.begin = ptr
	}
	if ptr >= end {
		panic("fpconv: numeral without digits")
	}

	firstNonzeroFound := false
	for ; ptr < end; ptr++ {
		c := s[ptr]
		if c == '.' {
			if sc.decimalDotPos != end {
				panic("fpconv: malformed numeral")
			}
			sc.decimalDotPos = ptr
		} else if c == 'e' || c == 'E' {
			sc.significandEndPos = ptr
			ptr++
			break
		} else {
			assertDigit(c)
			if !firstNonzeroFound {
				if c != '0' {
					firstNonzeroFound = true
				} else {
					sc.begin++
				}
			}
		}
	}

	if sc.significandEndPos != end && ptr <= end {
		negativeExponent := false
		if ptr < end && s[ptr] == '-' {
			negativeExponent = true
			ptr++
		} else if ptr < end && s[ptr] == '+' {
			ptr++
		}
		for ; ptr < end; ptr++ {
			assertDigit(s[ptr])
			sc.exponent = sc.exponent*10 + int(s[ptr]-'0')
			if sc.exponent >= 1000 {
				// Saturate: the value is out of any binary range.
				if negativeExponent {
					sc.exponentOverflow = -1
				} else {
					sc.exponentOverflow = 1
				}
				return sc
			}
		}
		if negativeExponent {
			sc.exponent = -sc.exponent
		}
	}
	return sc
}

// readDigits reads count decimal digits starting at pos, skipping a
// decimal dot and padding with zeros past endPos. It returns the value
// and the next position.
func readDigits(s string, pos, endPos, count int) (uint32, int) {
	var v uint32
	for i := 0; i < count; i++ {
		v *= 10
		if pos < endPos && s[pos] == '.' {
			pos++
		}
		if pos < endPos {
			v += uint32(s[pos] - '0')
			pos++
		}
	}
	return v, pos
}

func fromCharsUnlimited(s string, digitLimit int,
	seed func(significand uint64, exponent int, negative bool) (bits uint64, sigExp func() (uint64, int), special bool)) uint64 {

	sc := scanNumeral(s)
	end := len(s)

	if sc.exponentOverflow != 0 {
		bits, _, _ := seed(0, 0, sc.negative)
		if sc.exponentOverflow > 0 {
			return bits | infinityPayload(digitLimit)
		}
		return bits
	}

	exponent := sc.exponent
	begin := sc.begin
	if sc.decimalDotPos != end {
		exponent += (sc.decimalDotPos - begin) - digitLimit
	} else {
		exponent += (sc.significandEndPos - begin) - digitLimit
	}
	if begin >= sc.decimalDotPos {
		begin++
	}

	// Read the leading digit-limit digits of the significand.
	var significand uint64
	ptr := begin
	for i := 0; i < digitLimit; i++ {
		significand *= 10
		if ptr < end && s[ptr] == '.' {
			ptr++
		}
		if ptr < sc.significandEndPos {
			assertDigit(s[ptr])
			significand += uint64(s[ptr] - '0')
			ptr++
		}
	}

	bits, sigExp, special := seed(significand, exponent, sc.negative)
	if special || ptr == sc.significandEndPos {
		return bits
	}

	// Compare the remaining digits against the expansion of the midpoint
	// between the seed and its upper neighbour: (2f+1) * 2^(e-1).
	f, e := sigExp()
	gen := ryuprintf.NewMidpoint(2*f+1, e-1)

	comparisonDigits := exponent + digitLimit +
		gen.CurrentSegmentIndex()*ryuprintf.SegmentSize

	switch {
	case comparisonDigits <= 0:
		// The midpoint is strictly greater.
		return bits
	case comparisonDigits > ryuprintf.SegmentSize:
		// The midpoint is strictly smaller.
		return bits + 1
	default:
		window, next := readDigits(s, begin, sc.significandEndPos, comparisonDigits)
		ptr = next
		if window > gen.CurrentSegment() {
			return bits + 1
		}
		if window < gen.CurrentSegment() {
			return bits
		}
	}

	for ptr != sc.significandEndPos {
		gen.ComputeNextSegment()
		window, next := readDigits(s, ptr, sc.significandEndPos, ryuprintf.SegmentSize)
		ptr = next
		if window > gen.CurrentSegment() {
			return bits + 1
		}
		if window < gen.CurrentSegment() {
			return bits
		}
	}

	if gen.HasFurtherNonzeroSegments() {
		// The midpoint is strictly greater.
		return bits
	}

	// Exactly on the half-way point; break the tie to even.
	if bits%2 != 0 {
		bits++
	}
	return bits
}

func infinityPayload(digitLimit int) uint64 {
	if digitLimit == dooly.DigitLimit64 {
		return uint64(ieee754.InfinityBits64)
	}
	return uint64(uint32(ieee754.InfinityBits32))
}

// seedAndResolve64 computes the limited-precision seed for the binary64
// parser and exposes its (significand, exponent) decomposition for the
// midpoint walker. Saturated seeds (infinities) need no tail comparison.
func seedAndResolve64(significand uint64, exponent int, negative bool) (uint64, func() (uint64, int), bool) {
	b := dooly.Compute64(dooly.Decimal64{
		Significand: significand,
		Exponent:    exponent,
		Negative:    negative,
	}, Options{})
	special := !b.IsFinite()
	return uint64(b), func() (uint64, int) {
		return b.BinarySignificand(), binaryExponentScaled64(b)
	}, special
}

func seedAndResolve32(significand uint64, exponent int, negative bool) (uint64, func() (uint64, int), bool) {
	b := dooly.Compute32(dooly.Decimal32{
		Significand: uint32(significand),
		Exponent:    exponent,
		Negative:    negative,
	}, Options{})
	special := !b.IsFinite()
	return uint64(uint32(b)), func() (uint64, int) {
		return uint64(b.BinarySignificand()), binaryExponentScaled32(b)
	}, special
}

// binaryExponentScaled* return the exponent e of the integer-significand
// decomposition value = significand * 2^e.
func binaryExponentScaled64(b ieee754.Bits64) int {
	return b.BinaryExponent() - ieee754.Binary64.SignificandBits
}

func binaryExponentScaled32(b ieee754.Bits32) int {
	return b.BinaryExponent() - ieee754.Binary32.SignificandBits
}
