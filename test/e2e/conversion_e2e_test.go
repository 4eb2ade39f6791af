// Package e2e exercises the assembled public API the way a consumer
// would: format, parse back, cross-check against the standard library,
// and run the table self check.
package e2e

import (
	"context"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/agbru/fpconv"
	"github.com/agbru/fpconv/convservice"
	"github.com/agbru/fpconv/internal/selfcheck"
)

func TestFormatParsePipeline(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 2000; i++ {
		bits := rng.Uint64()
		x := math.Float64frombits(bits)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			continue
		}

		short := fpconv.ShortestScientific64(x, fpconv.Options{})
		parsed, err := fpconv.ParseFloat64(short)
		if err != nil {
			t.Fatalf("ParseFloat64(%q): %v", short, err)
		}
		if math.Float64bits(parsed) != bits {
			t.Fatalf("pipeline round trip of %#x through %q gave %#x",
				bits, short, math.Float64bits(parsed))
		}

		// The precise form parses to the same value as well.
		precise := fpconv.PreciseScientific64(x)
		if x != 0 {
			back, err := strconv.ParseFloat(precise, 64)
			if err != nil || back != x {
				t.Fatalf("precise form %q of %v parsed to %v (%v)", precise, x, back, err)
			}
		}
	}
}

func TestServicePipeline(t *testing.T) {
	t.Parallel()
	svc := convservice.New(nil)
	ctx := context.Background()

	s := svc.ShortestScientific64(ctx, 6.02214076e23)
	x, err := svc.Parse64(ctx, s)
	if err != nil || x != 6.02214076e23 {
		t.Fatalf("service round trip through %q: %v, %v", s, x, err)
	}
}

func TestTableSelfCheck(t *testing.T) {
	t.Parallel()
	if err := selfcheck.Verify(nil); err != nil {
		t.Fatal(err)
	}
}
