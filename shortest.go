package fpconv

import (
	"github.com/agbru/fpconv/internal/dragonbox"
	"github.com/agbru/fpconv/internal/fppolicy"
	"github.com/agbru/fpconv/internal/ieee754"
)

// ToShortestDecimal64 converts a finite nonzero binary64 into its
// shortest decimal form under the given policies. Passing a non-finite
// value panics unless the validation policy says otherwise; passing a
// zero yields a zero significand.
func ToShortestDecimal64(x float64, opts Options) Decimal64 {
	br := ieee754.FromFloat64(x)
	validate64(br, opts)

	var ret Decimal64
	if opts.Sign == fppolicy.SignPropagate {
		ret.Negative = br.IsNegative()
	}
	if !br.IsNonzero() {
		return ret
	}
	r := dragonbox.Compute64(br, opts)
	ret.Significand = r.Significand
	ret.Exponent = r.Exponent
	ret.MayHaveTrailingZeros = r.MayHaveTrailingZeros
	return ret
}

// ToShortestDecimal32 converts a finite nonzero binary32 into its
// shortest decimal form under the given policies.
func ToShortestDecimal32(x float32, opts Options) Decimal32 {
	br := ieee754.FromFloat32(x)
	validate32(br, opts)

	var ret Decimal32
	if opts.Sign == fppolicy.SignPropagate {
		ret.Negative = br.IsNegative()
	}
	if !br.IsNonzero() {
		return ret
	}
	r := dragonbox.Compute32(br, opts)
	ret.Significand = r.Significand
	ret.Exponent = r.Exponent
	ret.MayHaveTrailingZeros = r.MayHaveTrailingZeros
	return ret
}

func validate64(br ieee754.Bits64, opts Options) {
	if opts.Validation == fppolicy.AssertFinite && !br.IsFinite() {
		panic("fpconv: non-finite input to a finite-only conversion")
	}
}

func validate32(br ieee754.Bits32, opts Options) {
	if opts.Validation == fppolicy.AssertFinite && !br.IsFinite() {
		panic("fpconv: non-finite input to a finite-only conversion")
	}
}
