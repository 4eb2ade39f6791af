package ieee754

import (
	"math"
	"testing"
)

func TestClassify64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    float64
		want Class
	}{
		{"positive zero", 0.0, PositiveZero},
		{"negative zero", math.Copysign(0, -1), NegativeZero},
		{"positive normal", 1.5, PositiveNormal},
		{"negative normal", -2.25, NegativeNormal},
		{"positive subnormal", 5e-324, PositiveSubnormal},
		{"negative subnormal", -5e-324, NegativeSubnormal},
		{"positive infinity", math.Inf(1), PositiveInfinity},
		{"negative infinity", math.Inf(-1), NegativeInfinity},
		{"nan", math.NaN(), NaN},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromFloat64(tt.x).Classify(); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestClassify32(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x    float32
		want Class
	}{
		{"positive zero", 0, PositiveZero},
		{"negative zero", float32(math.Copysign(0, -1)), NegativeZero},
		{"positive normal", 1.5, PositiveNormal},
		{"positive subnormal", 1e-45, PositiveSubnormal},
		{"positive infinity", float32(math.Inf(1)), PositiveInfinity},
		{"nan", float32(math.NaN()), NaN},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromFloat32(tt.x).Classify(); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestDecomposition64(t *testing.T) {
	t.Parallel()
	b := FromFloat64(1.0)
	if b.BinarySignificand() != 1<<52 || b.BinaryExponent() != 0 {
		t.Fatalf("decomposition of 1.0: significand %#x exponent %d",
			b.BinarySignificand(), b.BinaryExponent())
	}
	if got := b.Float(); got != 1.0 {
		t.Fatalf("round trip through carrier: %v", got)
	}

	sub := FromFloat64(5e-324)
	if sub.BinarySignificand() != 1 || sub.BinaryExponent() != Binary64.MinExponent {
		t.Fatalf("decomposition of the smallest subnormal: %#x, %d",
			sub.BinarySignificand(), sub.BinaryExponent())
	}
}

func TestFormatConstants(t *testing.T) {
	t.Parallel()
	if Binary64.SignificandBits != 52 || Binary64.ExponentBits != 11 ||
		Binary64.DecimalDigits != 17 || Binary64.CarrierBits != 64 {
		t.Fatalf("binary64 descriptor: %+v", Binary64)
	}
	if Binary32.SignificandBits != 23 || Binary32.ExponentBits != 8 ||
		Binary32.DecimalDigits != 9 || Binary32.CarrierBits != 32 {
		t.Fatalf("binary32 descriptor: %+v", Binary32)
	}
}
