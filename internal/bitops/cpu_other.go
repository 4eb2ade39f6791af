//go:build !amd64

package bitops

// Non-amd64 ports either have a native count-trailing-zeros instruction
// (arm64, riscv64 with Zbb) or lower it through math/bits lookup tables;
// treat both as supported since the cost difference is negligible there.
var hasCTZ = true
