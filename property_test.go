package fpconv

import (
	"math"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property-based coverage of the round-trip and equivalence guarantees.
// The generators draw raw bit patterns so subnormals and extreme
// exponents appear with realistic frequency.

func TestRoundTripProperty64(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("shortest output parses back to the input", prop.ForAll(
		func(bits uint64) bool {
			x := math.Float64frombits(bits)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return true
			}
			s := ShortestScientific64(x, Options{})
			back, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return false
			}
			return math.Float64bits(back) == bits
		},
		gen.UInt64(),
	))

	properties.Property("shortest significand carries no trailing zero", prop.ForAll(
		func(bits uint64) bool {
			x := math.Float64frombits(bits)
			if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
				return true
			}
			d := ToShortestDecimal64(x, Options{})
			return d.Significand%10 != 0
		},
		gen.UInt64(),
	))

	properties.Property("our parser agrees with the standard library", prop.ForAll(
		func(bits uint64) bool {
			x := math.Float64frombits(bits)
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return true
			}
			s := strconv.FormatFloat(x, 'e', -1, 64)
			return FromCharsUnlimited64(s) == bits
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestRoundTripProperty32(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 2000
	properties := gopter.NewProperties(parameters)

	properties.Property("shortest output parses back to the input", prop.ForAll(
		func(bits uint32) bool {
			x := math.Float32frombits(bits)
			if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
				return true
			}
			s := ShortestScientific32(x, Options{})
			back, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return false
			}
			return math.Float32bits(float32(back)) == bits
		},
		gen.UInt32(),
	))

	properties.Property("our parser agrees with the standard library", prop.ForAll(
		func(bits uint32) bool {
			x := math.Float32frombits(bits)
			if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
				return true
			}
			s := strconv.FormatFloat(float64(x), 'e', -1, 32)
			return FromCharsUnlimited32(s) == bits
		},
		gen.UInt32(),
	))

	properties.TestingRun(t)
}

func TestCachePolicyEquivalenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	compact := Options{Cache: CacheCompact}

	properties.Property("compact and fast caches give identical decimals", prop.ForAll(
		func(bits uint64) bool {
			x := math.Float64frombits(bits)
			if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
				return true
			}
			return ToShortestDecimal64(x, Options{}) == ToShortestDecimal64(x, compact)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestFixedPrecisionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000
	properties := gopter.NewProperties(parameters)

	properties.Property("fixed precision output matches the standard formatter", prop.ForAll(
		func(bits uint64, precision uint8) bool {
			x := math.Float64frombits(bits)
			if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
				return true
			}
			p := int(precision % 40)
			return FixedPrecisionScientific64(x, p) == strconv.FormatFloat(x, 'e', p, 64)
		},
		gen.UInt64(), gen.UInt8(),
	))

	properties.TestingRun(t)
}
