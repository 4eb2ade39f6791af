// Package cache exposes the frozen power-of-ten tables that drive the
// converters. The direct tables hold one normalized approximation of 10^k
// per exponent; the compact binary64 variant stores every 27th entry and
// reconstructs the rest at lookup time from a power-of-5 multiple plus a
// 2-bit correction. Reconstruction is bit-exact: both lookup paths return
// identical entries for every k.
package cache

import (
	"github.com/agbru/fpconv/internal/logexp"
	"github.com/agbru/fpconv/internal/wideint"
)

// Exponent ranges of the power-of-ten tables. They jointly cover the
// needs of the shortest-decimal search and of the decimal-to-binary
// converter.
const (
	MinK32 = -55
	MaxK32 = 46
	MinK64 = -342
	MaxK64 = 326
)

// Segment-table index ranges (segment index n of the 9-digit expansion
// walker). The ranges are one wider than the representable inputs demand
// so the midpoint expansion used by exact parsing stays in range.
const (
	MinSegN32 = -5
	MaxSegN32 = 17
	MinSegN64 = -35
	MaxSegN64 = 120
)

// compressionRatio is the spacing of the stored entries in the compact
// binary64 table.
const compressionRatio = 27

// Pow10_32 returns the 64-bit approximation of 10^k.
// k must be in [MinK32, MaxK32].
func Pow10_32(k int) uint64 {
	return pow10Cache32[k-MinK32]
}

// Pow10_64 returns the 128-bit approximation of 10^k from the direct
// table. k must be in [MinK64, MaxK64].
func Pow10_64(k int) wideint.Uint128 {
	return pow10Cache64[k-MinK64]
}

// Pow10_64Compact returns the same entry as Pow10_64, reconstructed from
// the compressed table.
func Pow10_64Compact(k int) wideint.Uint128 {
	cacheIndex := (k - MinK64) / compressionRatio
	kBase := cacheIndex*compressionRatio + MinK64
	offset := k - kBase

	base := compressedBase64[cacheIndex]
	if offset == 0 {
		return base
	}

	// Realign base * 5^offset to the normalized position of entry k.
	alpha := uint(logexp.FloorLog2Pow10(kBase+offset) - logexp.FloorLog2Pow10(kBase) - offset)

	// Entries for k in [0, 55] are exact; all others store a ceiling.
	// Drop an inexact base to its floor before multiplying so the product
	// never overshoots, and restore the ceiling afterwards.
	var adjust uint64
	if kBase < 0 || kBase > 55 {
		adjust = 1
	}

	pow5 := compressedPow5[offset]
	recovered := wideint.Umul128(base.Hi, pow5)
	middleLow := wideint.Umul128(base.Lo-adjust, pow5)
	recovered = recovered.AddUint64(middleLow.Hi)

	highToMiddle := recovered.Hi << (64 - alpha)
	middleToLow := recovered.Lo << (64 - alpha)
	recovered = wideint.Uint128{
		Hi: recovered.Lo>>alpha | highToMiddle,
		Lo: middleLow.Lo>>alpha | middleToLow,
	}
	recovered = recovered.AddUint64(adjust)

	errorIndex := (k - MinK64) / 16
	err := compressedErrors[errorIndex] >> (uint(k-MinK64) % 16 * 2) & 0x3
	return recovered.AddUint64(uint64(err))
}

// Segment32 returns the 96-bit segment multiplier for segment index n and
// exponent index k of the binary32 walker.
func Segment32(n, k int) wideint.Uint96 {
	return segmentCache32[int(segmentIndex32[n-MinSegN32])+k]
}

// Segment64 returns the 192-bit segment multiplier for segment index n
// and exponent index k of the binary64 walker.
func Segment64(n, k int) wideint.Uint192 {
	return segmentCache64[int(segmentIndex64[n-MinSegN64])+k]
}
