//go:build gmp

package fpconv

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/ncw/gmp"
)

// With the gmp tag the fixed-precision renderer is checked against an
// independently computed reference: the exact decimal expansion of the
// binary value, derived with arbitrary-precision integers and rounded
// half to even at the requested digit.

func referenceFixedPrecision(x float64, precision int) string {
	var sb strings.Builder
	if math.Signbit(x) {
		sb.WriteByte('-')
		x = -x
	}

	bits := math.Float64bits(x)
	mant := bits & (1<<52 - 1)
	exp := int(bits >> 52 & 0x7FF)
	if exp != 0 {
		mant |= 1 << 52
		exp -= 1075
	} else {
		exp = -1074
	}

	// digits(value) = mant * 2^exp rendered with enough decimals: scale
	// by 10^scale so at least precision+2 significant digits survive.
	n := new(gmp.Int).SetUint64(mant)
	den := new(gmp.Int).SetInt64(1)
	if exp >= 0 {
		n.Lsh(n, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}

	// Decimal exponent of the leading digit.
	digits := new(gmp.Int).Div(n, den).String()
	decExp := len(digits) - 1
	if digits == "0" {
		// Fractional value: find the first significant digit.
		decExp = -1
		probe := new(gmp.Int).Set(n)
		for {
			probe.Mul(probe, gmp.NewInt(10))
			if new(gmp.Int).Div(probe, den).Sign() != 0 {
				break
			}
			decExp--
		}
	}

	// Scale so precision+1 digits sit above the point, then round half
	// to even on the exact remainder.
	shift := precision - decExp
	num := new(gmp.Int).Set(n)
	if shift >= 0 {
		num.Mul(num, new(gmp.Int).Exp(gmp.NewInt(10), gmp.NewInt(int64(shift)), nil))
	} else {
		den = new(gmp.Int).Mul(den, new(gmp.Int).Exp(gmp.NewInt(10), gmp.NewInt(int64(-shift)), nil))
	}
	q, r := new(gmp.Int).QuoRem(num, den, new(gmp.Int))
	r.Lsh(r, 1) // compare 2r with den
	switch r.Cmp(den) {
	case 1:
		q.Add(q, gmp.NewInt(1))
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, gmp.NewInt(1))
		}
	}

	qs := q.String()
	if len(qs) > precision+1 {
		// The rounding carried into a new leading digit.
		decExp++
		qs = qs[:precision+1]
	}
	for len(qs) < precision+1 {
		qs = "0" + qs
	}

	sb.WriteByte(qs[0])
	if precision > 0 {
		sb.WriteByte('.')
		sb.WriteString(qs[1:])
	}
	sb.WriteByte('e')
	if decExp < 0 {
		sb.WriteByte('-')
		decExp = -decExp
	} else {
		sb.WriteByte('+')
	}
	if decExp < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(new(gmp.Int).SetInt64(int64(decExp)).String())
	return sb.String()
}

func TestFixedPrecisionAgainstGMP(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(41))
	for i := 0; i < 1500; i++ {
		x := math.Float64frombits(rng.Uint64())
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			continue
		}
		precision := rng.Intn(30)
		got := FixedPrecisionScientific64(x, precision)
		want := referenceFixedPrecision(x, precision)
		if got != want {
			t.Fatalf("FixedPrecisionScientific64(%v, %d) = %q, reference %q",
				x, precision, got, want)
		}
	}
}
