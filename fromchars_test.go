package fpconv

import (
	"errors"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func TestFromCharsUnlimitedScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want uint64
	}{
		{"1.7976931348623157e308", 0x7FEFFFFFFFFFFFFF},
		{"5e-324", 0x0000000000000001},
		{"0", 0},
		{"-0", 1 << 63},
		{"1", math.Float64bits(1)},
		{"0.1", math.Float64bits(0.1)},
		{"1e1000", math.Float64bits(math.Inf(1))},
		{"-1e1000", math.Float64bits(math.Inf(-1))},
		{"1e-1000", 0},
		{"-1e-1000", 1 << 63},
		// Exactly the midpoint between 1 and the next double: ties to the
		// even neighbour, which is 1 itself.
		{"1.00000000000000011102230246251565404236316680908203125", math.Float64bits(1)},
		// One unit above the midpoint rounds up.
		{"1.00000000000000011102230246251565404236316680908203126", math.Float64bits(1) + 1},
		// One unit below rounds down.
		{"1.00000000000000011102230246251565404236316680908203124", math.Float64bits(1)},
		// Just above the midpoint between 0 and the smallest subnormal.
		{"2.5e-324", 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in[:min(len(tt.in), 24)], func(t *testing.T) {
			t.Parallel()
			if got := FromCharsUnlimited64(tt.in); got != tt.want {
				t.Errorf("FromCharsUnlimited64(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

// TestFromCharsExactMidpoints builds the full decimal expansions of
// half-way points and checks the ties-to-even resolution on them.
func TestFromCharsExactMidpoints(t *testing.T) {
	t.Parallel()

	// 2^-1075 is the midpoint between 0 and the smallest subnormal; its
	// expansion is 5^1075 placed 1075 digits down. Ties to even pick 0.
	mid := exactScaledPow5(t, 1075)
	if got := FromCharsUnlimited64(mid); got != 0 {
		t.Errorf("exact zero/subnormal midpoint = %#x, want 0", got)
	}
	// Any nonzero digit appended breaks the tie upward.
	if got := FromCharsUnlimited64(mid + "1"); got != 1 {
		t.Errorf("midpoint plus sticky digit = %#x, want 1", got)
	}

	// 3 * 2^-1075 is the midpoint between the two smallest subnormals;
	// the even side is 2 * 2^-1074... the lower pattern is odd (1), so
	// the tie goes up to 2.
	mid3 := exactScaledPow5Times(t, 1075, 3)
	if got := FromCharsUnlimited64(mid3); got != 2 {
		t.Errorf("first subnormal midpoint = %#x, want 2", got)
	}
}

// exactScaledPow5 renders 2^-p = 5^p / 10^p as a scientific numeral.
func exactScaledPow5(t *testing.T, p int) string {
	return exactScaledPow5Times(t, p, 1)
}

func exactScaledPow5Times(t *testing.T, p int, mult int64) string {
	t.Helper()
	n := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(p)), nil)
	n.Mul(n, big.NewInt(mult))
	digits := n.String()
	exponent := -(p - len(digits) + 1)
	return digits[:1] + "." + digits[1:] + "e" + strconv.Itoa(exponent)
}

func TestFromCharsMatchesStrconv64(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(31))
	digits := "0123456789"
	for i := 0; i < 4000; i++ {
		var sb strings.Builder
		if rng.Intn(2) == 1 {
			sb.WriteByte('-')
		}
		intLen := rng.Intn(25) + 1
		for j := 0; j < intLen; j++ {
			sb.WriteByte(digits[rng.Intn(10)])
		}
		if rng.Intn(2) == 1 {
			sb.WriteByte('.')
			fracLen := rng.Intn(30)
			for j := 0; j < fracLen; j++ {
				sb.WriteByte(digits[rng.Intn(10)])
			}
		}
		if rng.Intn(2) == 1 {
			sb.WriteByte('e')
			if rng.Intn(2) == 1 {
				sb.WriteByte('-')
			}
			sb.WriteString(strconv.Itoa(rng.Intn(350)))
		}
		s := sb.String()

		want, err := strconv.ParseFloat(s, 64)
		if err != nil {
			t.Fatalf("oracle rejects %q: %v", s, err)
		}
		got := FromCharsUnlimited64(s)
		if got != math.Float64bits(want) {
			t.Fatalf("FromCharsUnlimited64(%q) = %#x, want %#x", s, got, math.Float64bits(want))
		}
	}
}

func TestFromCharsMatchesStrconv32(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(32))
	digits := "0123456789"
	for i := 0; i < 4000; i++ {
		var sb strings.Builder
		if rng.Intn(2) == 1 {
			sb.WriteByte('-')
		}
		intLen := rng.Intn(12) + 1
		for j := 0; j < intLen; j++ {
			sb.WriteByte(digits[rng.Intn(10)])
		}
		if rng.Intn(2) == 1 {
			sb.WriteByte('.')
			for j, n := 0, rng.Intn(20); j < n; j++ {
				sb.WriteByte(digits[rng.Intn(10)])
			}
		}
		if rng.Intn(2) == 1 {
			sb.WriteByte('E')
			if rng.Intn(2) == 1 {
				sb.WriteByte('+')
			}
			sb.WriteString(strconv.Itoa(rng.Intn(60)))
		}
		s := sb.String()

		want, err := strconv.ParseFloat(s, 32)
		if err != nil {
			t.Fatalf("oracle rejects %q: %v", s, err)
		}
		got := FromCharsUnlimited32(s)
		if got != math.Float32bits(float32(want)) {
			t.Fatalf("FromCharsUnlimited32(%q) = %#x, want %#x", s, got, math.Float32bits(float32(want)))
		}
	}
}

func TestFromCharsLimited(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want float64
	}{
		{"1", 1},
		{"+1.5", 1.5},
		{"-2.25e2", -225},
		{".5", 0.5},
		{"0.125", 0.125},
		{"0", 0},
		{"0e10", 0},
		{"9007199254740993", 9007199254740993},
		{"123456789e-30", 123456789e-30},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := FromCharsLimited64(tt.in, Options{})
			if got != math.Float64bits(tt.want) {
				t.Errorf("FromCharsLimited64(%q) = %#x, want %#x",
					tt.in, got, math.Float64bits(tt.want))
			}
		})
	}

	if got := FromCharsLimited32("1.5", Options{}); got != math.Float32bits(1.5) {
		t.Errorf("FromCharsLimited32(1.5) = %#x", got)
	}
}

func TestParseFloatSyntax(t *testing.T) {
	t.Parallel()
	valid := []string{"1", "-1", "+1", "1.5", ".5", "1.", "1e5", "1E-5", "0.25e+3"}
	for _, s := range valid {
		if _, err := ParseFloat64(s); err != nil {
			t.Errorf("ParseFloat64(%q) unexpectedly failed: %v", s, err)
		}
	}

	invalid := []string{"", ".", "-", "1e", "1e+", "e5", "1.5.2", "1x", "nan", "inf", "0x1p3", " 1"}
	for _, s := range invalid {
		if _, err := ParseFloat64(s); !errors.Is(err, ErrInvalidSyntax) {
			t.Errorf("ParseFloat64(%q) should return ErrInvalidSyntax, got %v", s, err)
		}
	}

	x, err := ParseFloat32("3.4028235e38")
	if err != nil || x != math.MaxFloat32 {
		t.Errorf("ParseFloat32 of max float32 = %v, %v", x, err)
	}
}

func TestFromCharsLongTails(t *testing.T) {
	t.Parallel()
	// A long tail of digits must still resolve against the midpoint
	// expansion segment by segment.
	s := "0." + strings.Repeat("3", 800)
	want, _ := strconv.ParseFloat(s, 64)
	if got := FromCharsUnlimited64(s); got != math.Float64bits(want) {
		t.Fatalf("long tail of threes: %#x, want %#x", got, math.Float64bits(want))
	}

	s = "1." + strings.Repeat("0", 700) + "1"
	want, _ = strconv.ParseFloat(s, 64)
	if got := FromCharsUnlimited64(s); got != math.Float64bits(want) {
		t.Fatalf("sticky tail: %#x, want %#x", got, math.Float64bits(want))
	}
}
