package fpconv

import (
	"fmt"
	"math"
	"strconv"
	"testing"
)

func TestShortestScientificScenarios(t *testing.T) {
	t.Parallel()
	tests64 := []struct {
		name string
		x    float64
		want string
	}{
		{"one", 1.0, "1e0"},
		{"zero", 0.0, "0e0"},
		{"negative zero", math.Copysign(0, -1), "-0e0"},
		{"tenth", 0.1, "1e-1"},
		{"pi-ish", 3.14, "3.14e0"},
		{"smallest normal", 2.2250738585072014e-308, "2.2250738585072014e-308"},
		{"smallest subnormal", 5e-324, "5e-324"},
		{"largest finite", 1.7976931348623157e308, "1.7976931348623157e308"},
		{"negative", -1234.5, "-1.2345e3"},
		{"infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"nan", math.NaN(), "nan"},
	}
	for _, tt := range tests64 {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShortestScientific64(tt.x, Options{}); got != tt.want {
				t.Errorf("ShortestScientific64(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}

	tests32 := []struct {
		name string
		x    float32
		want string
	}{
		{"one", 1.0, "1e0"},
		{"largest finite", 3.4028235e38, "3.4028235e38"},
		{"smallest subnormal", 1e-45, "1e-45"},
		{"third-ish", 0.33333334, "3.3333334e-1"},
	}
	for _, tt := range tests32 {
		tt := tt
		t.Run("binary32 "+tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ShortestScientific32(tt.x, Options{}); got != tt.want {
				t.Errorf("ShortestScientific32(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}
}

func TestPreciseScientificScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    float64
		want string
	}{
		{"tenth", 0.1,
			"1.000000000000000055511151231257827021181583404541015625e-1"},
		{"one", 1.0, "1e+0"},
		{"half", 0.5, "5e-1"},
		{"three halves", 1.5, "1.5e+0"},
		{"fifty", 50.0, "5e+1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PreciseScientific64(tt.x); got != tt.want {
				t.Errorf("PreciseScientific64(%v) = %q, want %q", tt.x, got, tt.want)
			}
		})
	}

	// The smallest subnormal is 5^1074 scaled: 751 significant digits
	// ending in 5, with exponent -324.
	s := PreciseScientific64(5e-324)
	if len(s) < 700 || s[len(s)-5:] != "e-324" || s[0] != '4' {
		t.Fatalf("PreciseScientific64(5e-324) malformed: %q...%q (len %d)", s[:8], s[len(s)-8:], len(s))
	}
	if s[len(s)-6] != '5' {
		t.Fatalf("PreciseScientific64(5e-324) should end with digit 5: %q", s[len(s)-8:])
	}
}

func TestToShortestDecimalPolicies(t *testing.T) {
	t.Parallel()

	d := ToShortestDecimal64(-2500.0, Options{})
	if !d.Negative || d.Significand != 25 || d.Exponent != 2 {
		t.Fatalf("default policies: %+v", d)
	}

	d = ToShortestDecimal64(-2500.0, Options{Sign: SignIgnore})
	if d.Negative {
		t.Fatalf("sign should be dropped: %+v", d)
	}

	// The allow policy may keep trailing zeros, but the denoted value is
	// unchanged.
	d = ToShortestDecimal64(-2500.0, Options{TrailingZero: TrailingZeroAllow})
	back, err := strconv.ParseFloat(fmt.Sprintf("%de%d", d.Significand, d.Exponent), 64)
	if err != nil || back != 2500.0 {
		t.Fatalf("allow policy: %+v parses to %v (%v)", d, back, err)
	}

	d = ToShortestDecimal64(-2500.0, Options{TrailingZero: TrailingZeroReport})
	if !d.MayHaveTrailingZeros {
		t.Fatalf("report policy: %+v", d)
	}
}

func TestValidationPolicy(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-finite input under AssertFinite")
		}
	}()
	ToShortestDecimal64(math.Inf(1), Options{})
}

func TestToBinaryLimitedPrecision(t *testing.T) {
	t.Parallel()
	if got := ToBinaryLimitedPrecision64(Decimal64{Significand: 1, Exponent: 0}, Options{}); got != math.Float64bits(1.0) {
		t.Fatalf("1e0 = %#x", got)
	}
	if got := Float64FromDecimal(Decimal64{Significand: 25, Exponent: -1}, Options{}); got != 2.5 {
		t.Fatalf("25e-1 = %v", got)
	}
	if got := Float32FromDecimal(Decimal32{Significand: 15, Exponent: -1, Negative: true}, Options{}); got != -1.5 {
		t.Fatalf("-15e-1 = %v", got)
	}
	// Saturation is a normal output.
	if got := Float64FromDecimal(Decimal64{Significand: 1, Exponent: 400}, Options{}); !math.IsInf(got, 1) {
		t.Fatalf("1e400 = %v", got)
	}
	if got := Float64FromDecimal(Decimal64{Significand: 1, Exponent: -400}, Options{}); got != 0 {
		t.Fatalf("1e-400 = %v", got)
	}
}
