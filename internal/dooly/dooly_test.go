package dooly

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/agbru/fpconv/internal/fppolicy"
)

// strconv.ParseFloat is correctly rounded to nearest-even, which makes it
// an exact oracle for the default policy.
func oracle64(t *testing.T, significand uint64, exponent int, negative bool) uint64 {
	t.Helper()
	s := fmt.Sprintf("%de%d", significand, exponent)
	if negative {
		s = "-" + s
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		t.Fatalf("oracle parse of %q: %v", s, err)
	}
	return math.Float64bits(x)
}

func oracle32(t *testing.T, significand uint32, exponent int, negative bool) uint32 {
	t.Helper()
	s := fmt.Sprintf("%de%d", significand, exponent)
	if negative {
		s = "-" + s
	}
	x, err := strconv.ParseFloat(s, 32)
	if err != nil {
		t.Fatalf("oracle parse of %q: %v", s, err)
	}
	return math.Float32bits(float32(x))
}

func TestCompute64MatchesOracle(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5000; i++ {
		digits := rng.Intn(DigitLimit64) + 1
		limit := uint64(1)
		for j := 0; j < digits; j++ {
			limit *= 10
		}
		sig := rng.Uint64() % limit
		exp := rng.Intn(660) - 345
		neg := rng.Intn(2) == 1

		got := uint64(Compute64(Decimal64{Significand: sig, Exponent: exp, Negative: neg}, fppolicy.Options{}))
		want := oracle64(t, sig, exp, neg)
		if got != want {
			t.Fatalf("Compute64(%d, %d, %v) = %#x, want %#x", sig, exp, neg, got, want)
		}
	}
}

func TestCompute64Boundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sig uint64
		exp int
	}{
		{1, -324},                 // smallest subnormal region
		{5, -324},                 // exactly the zero/subnormal midpoint
		{49, -325},                // just below the midpoint
		{51, -325},                // just above the midpoint
		{17976931348623157, 292},  // largest finite
		{17976931348623158, 292},  // rounds to infinity
		{99999999999999999, 292},  // far past the largest finite
		{1, 309},                  // saturates to infinity via the exponent
		{1, -343},                 // saturates to zero via the exponent
		{24703282292062327, -324}, // subnormal/zero borderline
		{22250738585072014, -324}, // smallest normal
	}
	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("%de%d", tt.sig, tt.exp), func(t *testing.T) {
			t.Parallel()
			got := uint64(Compute64(Decimal64{Significand: tt.sig, Exponent: tt.exp}, fppolicy.Options{}))
			want := oracle64(t, tt.sig, tt.exp, false)
			if got != want {
				t.Errorf("Compute64 = %#x, want %#x", got, want)
			}
		})
	}
}

func TestCompute64CompactCache(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(2))
	compact := fppolicy.Options{Cache: fppolicy.CacheCompact}
	for i := 0; i < 3000; i++ {
		sig := rng.Uint64() % (MaxSignificand64 + 1)
		exp := rng.Intn(660) - 345
		fast := Compute64(Decimal64{Significand: sig, Exponent: exp}, fppolicy.Options{})
		slow := Compute64(Decimal64{Significand: sig, Exponent: exp}, compact)
		if fast != slow {
			t.Fatalf("cache policies disagree for %de%d: %#x vs %#x", sig, exp, fast, slow)
		}
	}
}

func TestCompute32MatchesOracle(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5000; i++ {
		digits := rng.Intn(DigitLimit32) + 1
		limit := uint32(1)
		for j := 0; j < digits; j++ {
			limit *= 10
		}
		sig := rng.Uint32() % limit
		exp := rng.Intn(100) - 58
		neg := rng.Intn(2) == 1

		got := uint32(Compute32(Decimal32{Significand: sig, Exponent: exp, Negative: neg}, fppolicy.Options{}))
		want := oracle32(t, sig, exp, neg)
		if got != want {
			t.Fatalf("Compute32(%d, %d, %v) = %#x, want %#x", sig, exp, neg, got, want)
		}
	}
}

func TestDirectedRounding64(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(4))
	toward := fppolicy.Options{BinaryRounding: fppolicy.TowardZero}
	away := fppolicy.Options{BinaryRounding: fppolicy.AwayFromZero}
	for i := 0; i < 2000; i++ {
		sig := rng.Uint64()%(MaxSignificand64) + 1
		exp := rng.Intn(600) - 320

		lo := uint64(Compute64(Decimal64{Significand: sig, Exponent: exp}, toward))
		hi := uint64(Compute64(Decimal64{Significand: sig, Exponent: exp}, away))
		nearest := uint64(Compute64(Decimal64{Significand: sig, Exponent: exp}, fppolicy.Options{}))

		if hi != lo && hi != lo+1 {
			t.Fatalf("truncation and round-up of %de%d differ by more than one ulp: %#x vs %#x",
				sig, exp, lo, hi)
		}
		if nearest != lo && nearest != hi {
			t.Fatalf("nearest of %de%d outside the directed bracket", sig, exp)
		}
	}
}

func TestDigitLimitPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an oversized significand")
		}
	}()
	Compute64(Decimal64{Significand: MaxSignificand64 + 1}, fppolicy.Options{})
}
