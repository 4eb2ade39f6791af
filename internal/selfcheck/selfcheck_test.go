package selfcheck

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/agbru/fpconv/internal/logging"
)

func TestVerify(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := Verify(logging.NewLogger(&buf, "selfcheck")); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !strings.Contains(buf.String(), "power-of-ten tables verified") {
		t.Errorf("expected a completion event, log output: %q", buf.String())
	}
}

func TestReferencePow10(t *testing.T) {
	t.Parallel()
	// 10^0 at 128 bits is exactly 2^127.
	want := new(big.Int).Lsh(big.NewInt(1), 127)
	if got := referencePow10(0, 128); got.Cmp(want) != 0 {
		t.Fatalf("referencePow10(0) = %v", got)
	}
	// Entries are always exactly 128 bits wide.
	for _, k := range []int{-342, -100, -1, 1, 55, 308, 326} {
		if got := referencePow10(k, 128); got.BitLen() != 128 {
			t.Fatalf("referencePow10(%d) has %d bits", k, got.BitLen())
		}
	}
}
