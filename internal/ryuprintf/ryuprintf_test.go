package ryuprintf

import (
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/agbru/fpconv/internal/ieee754"
)

// exactSegments computes floor(significand * 2^exponent * 10^(9n)) mod
// 10^9 with big integers for a run of segment indices.
func exactSegments(significand uint64, exponent, firstN, count int) []uint32 {
	out := make([]uint32, 0, count)
	mod := big.NewInt(SegmentDivisor)
	for n := firstN; n < firstN+count; n++ {
		num := new(big.Int).SetUint64(significand)
		den := big.NewInt(1)
		if exponent >= 0 {
			num.Lsh(num, uint(exponent))
		} else {
			den.Lsh(den, uint(-exponent))
		}
		p := 9 * n
		if p >= 0 {
			num.Mul(num, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil))
		} else {
			den.Mul(den, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-p)), nil))
		}
		num.Quo(num, den)
		num.Mod(num, mod)
		out = append(out, uint32(num.Uint64()))
	}
	return out
}

// firstNonzeroSegment returns the exact index of the first nonzero
// segment.
func firstNonzeroSegment(significand uint64, exponent int) int {
	for n := -40; ; n++ {
		if exactSegments(significand, exponent, n, 1)[0] != 0 {
			return n
		}
	}
}

func checkWalker64(t *testing.T, x float64) {
	t.Helper()
	br := ieee754.FromFloat64(x)
	sig := br.BinarySignificand()
	exp := br.BinaryExponent() - ieee754.Binary64.SignificandBits

	g := New64(br)
	n0 := g.CurrentSegmentIndex()
	if want := firstNonzeroSegment(sig, exp); n0 != want {
		t.Fatalf("first segment index of %g: got %d, want %d", x, n0, want)
	}
	got := []uint32{g.CurrentSegment()}
	for i := 0; i < 6; i++ {
		got = append(got, g.ComputeNextSegment())
	}
	want := exactSegments(sig, exp, n0, 7)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("segment %d of %g: got %d, want %d (all got %v want %v)",
				n0+i, x, got[i], want[i], got, want)
		}
	}
}

func TestWalker64(t *testing.T) {
	t.Parallel()
	values := []float64{
		1.0, 0.1, 0.5, 2.0 / 3.0, 1e-300, 1e300, 123456789.123456789,
		5e-324, math.MaxFloat64, 2.2250738585072014e-308, 1.5e-5,
	}
	for _, x := range values {
		checkWalker64(t, x)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		bits := rng.Uint64() & (1<<63 - 1)
		x := math.Float64frombits(bits)
		if math.IsInf(x, 0) || math.IsNaN(x) || x == 0 {
			continue
		}
		checkWalker64(t, x)
	}
}

func TestWalker32(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(8))
	check := func(x float32) {
		br := ieee754.FromFloat32(x)
		sig := uint64(br.BinarySignificand())
		exp := br.BinaryExponent() - ieee754.Binary32.SignificandBits

		g := New32(br)
		n0 := g.CurrentSegmentIndex()
		if want := firstNonzeroSegment(sig, exp); n0 != want {
			t.Fatalf("first segment index of %g: got %d, want %d", x, n0, want)
		}
		got := []uint32{g.CurrentSegment()}
		for i := 0; i < 4; i++ {
			got = append(got, g.ComputeNextSegment())
		}
		want := exactSegments(sig, exp, n0, 5)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("segment %d of %g: got %v, want %v", n0+i, x, got, want)
			}
		}
	}
	check(1.0)
	check(0.1)
	check(math.MaxFloat32)
	check(1e-45)
	for i := 0; i < 300; i++ {
		bits := rng.Uint32() & (1<<31 - 1)
		x := math.Float32frombits(bits)
		if x == 0 || math.IsInf(float64(x), 0) || math.IsNaN(float64(x)) {
			continue
		}
		check(x)
	}
}

func TestMidpointWalker(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(9))
	check := func(sig uint64, exp int) {
		g := NewMidpoint(sig, exp)
		n0 := g.CurrentSegmentIndex()
		if want := firstNonzeroSegment(sig, exp); n0 != want {
			t.Fatalf("first segment index of %d*2^%d: got %d, want %d", sig, exp, n0, want)
		}
		got := []uint32{g.CurrentSegment()}
		for i := 0; i < 6; i++ {
			got = append(got, g.ComputeNextSegment())
		}
		want := exactSegments(sig, exp, n0, 7)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("segment %d of %d*2^%d: got %v, want %v", n0+i, sig, exp, got, want)
			}
		}
	}

	// Midpoint of the smallest subnormal gap.
	check(1, -1075)
	check(3, -1075)

	// Random binary64 midpoints: odd 54-bit significands.
	for i := 0; i < 300; i++ {
		f := uint64(rng.Int63n(1<<53-1<<52)) + 1<<52
		e := rng.Intn(971+1074+1) - 1074
		check(2*f+1, e-1)
	}

	// Binary32 midpoints go through the same walker.
	for i := 0; i < 100; i++ {
		f := uint64(rng.Int31n(1<<24-1<<23)) + 1<<23
		e := rng.Intn(104+149+1) - 149
		check(2*f+1, e-1)
	}
}

func TestHasFurtherNonzeroSegments(t *testing.T) {
	t.Parallel()
	// 1.0 has a single segment.
	g := New64(ieee754.FromFloat64(1.0))
	if g.HasFurtherNonzeroSegments() {
		t.Fatal("1.0 reported further nonzero segments")
	}
	// 0.1 has 55 significant decimals: more than one segment.
	g = New64(ieee754.FromFloat64(0.1))
	if !g.HasFurtherNonzeroSegments() {
		t.Fatal("0.1 reported no further segments")
	}
	// Walk 0.5: one digit, single nonzero segment at n = 1.
	g = New64(ieee754.FromFloat64(0.5))
	if g.CurrentSegmentIndex() != 1 || g.CurrentSegment() != 500000000 {
		t.Fatalf("0.5 first segment: n=%d v=%d", g.CurrentSegmentIndex(), g.CurrentSegment())
	}
	if g.HasFurtherNonzeroSegments() {
		t.Fatal("0.5 reported further nonzero segments")
	}
}
