//go:build amd64

package bitops

import "golang.org/x/sys/cpu"

// BMI1 provides TZCNT; without it the compiler falls back to BSF plus a
// zero test, which is still branch-free but one instruction longer.
var hasCTZ = cpu.X86.HasBMI1
