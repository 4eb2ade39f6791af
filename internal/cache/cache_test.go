package cache

import (
	"testing"

	"github.com/agbru/fpconv/internal/wideint"
)

func TestCompactMatchesFast(t *testing.T) {
	t.Parallel()
	for k := MinK64; k <= MaxK64; k++ {
		fast := Pow10_64(k)
		compact := Pow10_64Compact(k)
		if fast != compact {
			t.Fatalf("compact entry for 10^%d is %#016x:%#016x, direct %#016x:%#016x",
				k, compact.Hi, compact.Lo, fast.Hi, fast.Lo)
		}
	}
}

func TestKnownEntries(t *testing.T) {
	t.Parallel()
	// 10^0 normalized to 128 bits is exactly 2^127.
	if got := Pow10_64(0); got != (wideint.Uint128{Hi: 1 << 63, Lo: 0}) {
		t.Fatalf("entry for 10^0 = %#x:%#x", got.Hi, got.Lo)
	}
	// 10^1 is 1.25 * 2^3, so the entry is 1.25 * 2^127 = 0xA0... exactly.
	if got := Pow10_64(1); got != (wideint.Uint128{Hi: 0xA000000000000000, Lo: 0}) {
		t.Fatalf("entry for 10^1 = %#x:%#x", got.Hi, got.Lo)
	}
	if got := Pow10_32(0); got != 1<<63 {
		t.Fatalf("binary32 entry for 10^0 = %#x", got)
	}
	// All entries are normalized: the top bit is always set.
	for k := MinK64; k <= MaxK64; k++ {
		if Pow10_64(k).Hi>>63 == 0 {
			t.Fatalf("entry for 10^%d is not normalized", k)
		}
	}
	for k := MinK32; k <= MaxK32; k++ {
		if Pow10_32(k)>>63 == 0 {
			t.Fatalf("binary32 entry for 10^%d is not normalized", k)
		}
	}
}
