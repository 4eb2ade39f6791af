package bitops

import "testing"

func TestCounts(t *testing.T) {
	t.Parallel()
	if CountLeadingZeros64(1) != 63 || CountLeadingZeros64(1<<63) != 0 {
		t.Fatal("CountLeadingZeros64 edges")
	}
	if CountTrailingZeros64(1) != 0 || CountTrailingZeros64(1<<63) != 63 {
		t.Fatal("CountTrailingZeros64 edges")
	}
	if CountLeadingZeros32(1) != 31 || CountTrailingZeros32(1<<31) != 31 {
		t.Fatal("32-bit count edges")
	}
	if CountTrailingZeros16(0x8000) != 15 {
		t.Fatal("CountTrailingZeros16 edge")
	}
	// The capability report is informational; it only has to answer.
	_ = HasCountTrailingZerosInstruction()
}
