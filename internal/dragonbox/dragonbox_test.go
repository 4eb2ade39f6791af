package dragonbox

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/agbru/fpconv/internal/fppolicy"
	"github.com/agbru/fpconv/internal/ieee754"
)

func roundTrip64(t *testing.T, x float64, r Result64) {
	t.Helper()
	s := fmt.Sprintf("%de%d", r.Significand, r.Exponent)
	back, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("parse of %q: %v", s, err)
	}
	if back != x {
		t.Fatalf("round trip of %v through %q gives %v", x, s, back)
	}
}

func roundTrip32(t *testing.T, x float32, r Result32) {
	t.Helper()
	s := fmt.Sprintf("%de%d", r.Significand, r.Exponent)
	back, err := strconv.ParseFloat(s, 32)
	if err != nil {
		t.Fatalf("parse of %q: %v", s, err)
	}
	if float32(back) != x {
		t.Fatalf("round trip of %v through %q gives %v", x, s, back)
	}
}

// shortestDigitCount uses the standard library's shortest formatting as
// the minimality oracle.
func shortestDigitCount(x float64, bitSize int) int {
	s := strconv.FormatFloat(x, 'e', -1, bitSize)
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			n++
		} else if c == 'e' {
			break
		}
	}
	return n
}

func digitCount64(v uint64) int {
	n := 0
	for ; v > 0; v /= 10 {
		n++
	}
	return n
}

func TestCompute64KnownValues(t *testing.T) {
	t.Parallel()
	tests := []struct {
		x           float64
		significand uint64
		exponent    int
	}{
		{1.0, 1, 0},
		{0.1, 1, -1},
		{2.5, 25, -1},
		{4503599627370496, 4503599627370496, 0},
		{5e-324, 5, -324},
		{2.2250738585072014e-308, 22250738585072014, -324},
		{1.7976931348623157e308, 17976931348623157, 292},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprint(tt.x), func(t *testing.T) {
			t.Parallel()
			got := Compute64(ieee754.FromFloat64(tt.x), fppolicy.Options{})
			if got.Significand != tt.significand || got.Exponent != tt.exponent {
				t.Errorf("Compute64(%v) = (%d, %d), want (%d, %d)",
					tt.x, got.Significand, got.Exponent, tt.significand, tt.exponent)
			}
		})
	}
}

func TestCompute64RoundTripAndMinimality(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 5000; i++ {
		bits := rng.Uint64()
		x := math.Float64frombits(bits)
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			continue
		}
		r := Compute64(ieee754.FromFloat64(x), fppolicy.Options{})
		roundTrip64(t, math.Abs(x), r)

		if r.Significand%10 == 0 {
			t.Fatalf("trailing zero left on the significand of %v: %d", x, r.Significand)
		}
		if got, want := digitCount64(r.Significand), shortestDigitCount(x, 64); got != want {
			t.Fatalf("digit count for %v: got %d, want %d", x, got, want)
		}
	}
}

func TestCompute32RoundTripAndMinimality(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 5000; i++ {
		bits := rng.Uint32()
		x := math.Float32frombits(bits)
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) || x == 0 {
			continue
		}
		r := Compute32(ieee754.FromFloat32(x), fppolicy.Options{})
		roundTrip32(t, float32(math.Abs(float64(x))), r)

		if r.Significand%10 == 0 {
			t.Fatalf("trailing zero left on the significand of %v: %d", x, r.Significand)
		}
		if got, want := digitCount64(uint64(r.Significand)), shortestDigitCount(float64(x), 32); got != want {
			t.Fatalf("digit count for %v: got %d, want %d", x, got, want)
		}
	}
}

func TestPowersOfTwoShorterInterval(t *testing.T) {
	t.Parallel()
	for e := -80; e <= 80; e++ {
		x := math.Ldexp(1, e)
		r := Compute64(ieee754.FromFloat64(x), fppolicy.Options{})
		roundTrip64(t, x, r)
		if got, want := digitCount64(r.Significand), shortestDigitCount(x, 64); got != want {
			t.Fatalf("digit count for 2^%d: got %d, want %d", e, got, want)
		}
	}
}

func TestTrailingZeroPolicies(t *testing.T) {
	t.Parallel()
	// 2.5 * 10^3: the raw search produces trailing zeros.
	x := 2500.0

	removed := Compute64(ieee754.FromFloat64(x), fppolicy.Options{})
	if removed.Significand != 25 || removed.Exponent != 2 {
		t.Fatalf("remove policy: (%d, %d)", removed.Significand, removed.Exponent)
	}

	allowed := Compute64(ieee754.FromFloat64(x), fppolicy.Options{TrailingZero: fppolicy.TrailingZeroAllow})
	roundTrip64(t, x, allowed)

	reported := Compute64(ieee754.FromFloat64(x), fppolicy.Options{TrailingZero: fppolicy.TrailingZeroReport})
	roundTrip64(t, x, reported)
	if !reported.MayHaveTrailingZeros {
		t.Fatal("report policy did not flag trailing zeros for 2500")
	}
}

func TestDirectedRounding(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(13))
	toward := fppolicy.Options{BinaryRounding: fppolicy.TowardZero}
	away := fppolicy.Options{BinaryRounding: fppolicy.AwayFromZero}
	for i := 0; i < 1500; i++ {
		bits := rng.Uint64() & (1<<63 - 1)
		x := math.Float64frombits(bits)
		if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
			continue
		}

		// Toward zero: the emitted decimal must lie in [x, next-up), so
		// parsing it back under truncation yields x again; x itself is
		// always a valid output.
		r := Compute64(ieee754.FromFloat64(x), toward)
		s := fmt.Sprintf("%de%d", r.Significand, r.Exponent)
		back, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("parse of %q: %v", s, err)
		}
		if back < x || back >= nextUp(x) {
			t.Fatalf("left-closed output %q of %v outside [x, next)", s, x)
		}

		r = Compute64(ieee754.FromFloat64(x), away)
		s = fmt.Sprintf("%de%d", r.Significand, r.Exponent)
		back, err = strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("parse of %q: %v", s, err)
		}
		if back > x || back <= nextDown(x) {
			t.Fatalf("right-closed output %q of %v outside (prev, x]", s, x)
		}
	}
}

func nextUp(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

func nextDown(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

func TestRemoveTrailingZeros(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      uint64
		out     uint64
		removed int
	}{
		{1, 1, 0},
		{10, 1, 1},
		{12345000, 12345, 3},
		{10000000000000000, 1, 16},
		{17976931348623157, 17976931348623157, 0},
		{25000000000000000, 25, 15},
	}
	for _, tt := range tests {
		n := tt.in
		if got := RemoveTrailingZeros64(&n); got != tt.removed || n != tt.out {
			t.Errorf("RemoveTrailingZeros64(%d) = (%d, %d), want (%d, %d)",
				tt.in, n, got, tt.out, tt.removed)
		}
	}

	n32 := uint32(12340000)
	if got := RemoveTrailingZeros32(&n32); got != 4 || n32 != 1234 {
		t.Errorf("RemoveTrailingZeros32(12340000) = (%d, %d)", n32, got)
	}
}
