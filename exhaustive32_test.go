package fpconv

import (
	"fmt"
	"math"
	"runtime"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestBinary32RoundTripExhaustive verifies the shortest-form round trip
// for every binary32 bit pattern, negative patterns included: each
// finite value is rendered and parsed back through this package's own
// parser, and the bits must survive unchanged. The full 2^32 sweep is
// split across one goroutine per processor; in short mode a strided
// subset that still covers both signs and every exponent runs instead.
func TestBinary32RoundTripExhaustive(t *testing.T) {
	stride := uint64(1)
	if testing.Short() {
		stride = 40009 // prime, so all exponent/significand mixes appear
	}

	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	const span = uint64(1) << 32
	chunk := span/uint64(workers) + 1

	for w := 0; w < workers; w++ {
		start := uint64(w) * chunk
		end := start + chunk
		if end > span {
			end = span
		}
		g.Go(func() error {
			buf := make([]byte, 0, 64)
			for bits := start; bits < end; bits += stride {
				pattern := uint32(bits)
				x := math.Float32frombits(pattern)
				if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
					continue
				}
				buf = AppendShortestScientific32(buf[:0], x, Options{})
				if got := FromCharsUnlimited32(string(buf)); got != pattern {
					return fmt.Errorf("round trip of %#08x through %q gave %#08x",
						pattern, buf, got)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
