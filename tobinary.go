package fpconv

import (
	"github.com/agbru/fpconv/internal/dooly"
	"github.com/agbru/fpconv/internal/ieee754"
)

// ToBinaryLimitedPrecision64 converts a decimal of at most 17 significant
// digits into the binary64 whose value, rounded under the binary-rounding
// policy of opts, equals Significand * 10^Exponent. It returns the raw
// bit pattern; infinities and zeros are normal saturation outputs, not
// errors. Significands above the digit limit panic.
func ToBinaryLimitedPrecision64(d Decimal64, opts Options) uint64 {
	return uint64(dooly.Compute64(dooly.Decimal64{
		Significand: d.Significand,
		Exponent:    d.Exponent,
		Negative:    d.Negative,
	}, opts))
}

// ToBinaryLimitedPrecision32 is the binary32 counterpart of
// ToBinaryLimitedPrecision64, with a 9-digit limit.
func ToBinaryLimitedPrecision32(d Decimal32, opts Options) uint32 {
	return uint32(dooly.Compute32(dooly.Decimal32{
		Significand: d.Significand,
		Exponent:    d.Exponent,
		Negative:    d.Negative,
	}, opts))
}

// Float64FromDecimal is a convenience around ToBinaryLimitedPrecision64
// returning the float value.
func Float64FromDecimal(d Decimal64, opts Options) float64 {
	return ieee754.Bits64(ToBinaryLimitedPrecision64(d, opts)).Float()
}

// Float32FromDecimal is a convenience around ToBinaryLimitedPrecision32
// returning the float value.
func Float32FromDecimal(d Decimal32, opts Options) float32 {
	return ieee754.Bits32(ToBinaryLimitedPrecision32(d, opts)).Float()
}
