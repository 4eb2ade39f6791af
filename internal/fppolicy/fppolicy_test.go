package fppolicy

import "testing"

func TestResolveTags(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		mode     BinaryRounding
		lowBit   bool
		negative bool
		tag      RoundingTag
		normal   Interval
	}{
		{"even on even", NearestToEven, false, false, TagToNearest, Interval{true, true}},
		{"even on odd", NearestToEven, true, false, TagToNearest, Interval{false, false}},
		{"odd on odd", NearestToOdd, true, false, TagToNearest, Interval{true, true}},
		{"toward plus inf, positive", NearestTowardPlusInfinity, false, false, TagToNearest, Interval{true, false}},
		{"toward plus inf, negative", NearestTowardPlusInfinity, false, true, TagToNearest, Interval{false, true}},
		{"toward zero", NearestTowardZero, false, false, TagToNearest, Interval{false, true}},
		{"away from zero", NearestAwayFromZero, true, true, TagToNearest, Interval{true, false}},
		{"static even boundary, even", NearestToEvenStaticBoundary, false, false, TagToNearest, Interval{true, true}},
		{"static even boundary, odd", NearestToEvenStaticBoundary, true, false, TagToNearest, Interval{false, false}},
		{"directed toward zero", TowardZero, false, false, TagLeftClosedDirected, Interval{true, false}},
		{"directed away", AwayFromZero, false, false, TagRightClosedDirected, Interval{false, true}},
		{"toward plus inf, positive side", TowardPlusInfinity, false, false, TagRightClosedDirected, Interval{false, true}},
		{"toward plus inf, negative side", TowardPlusInfinity, false, true, TagLeftClosedDirected, Interval{true, false}},
		{"toward minus inf, positive side", TowardMinusInfinity, false, false, TagLeftClosedDirected, Interval{true, false}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			eff := tt.mode.Resolve(tt.lowBit, tt.negative)
			if eff.Tag != tt.tag {
				t.Errorf("tag = %v, want %v", eff.Tag, tt.tag)
			}
			if eff.Normal != tt.normal {
				t.Errorf("normal interval = %+v, want %+v", eff.Normal, tt.normal)
			}
		})
	}
}

func TestBreakTie(t *testing.T) {
	t.Parallel()
	if got := DecimalToEven.BreakTie64(11); got != 10 {
		t.Errorf("to even on 11 = %d", got)
	}
	if got := DecimalToEven.BreakTie64(10); got != 10 {
		t.Errorf("to even on 10 = %d", got)
	}
	if got := DecimalToOdd.BreakTie64(10); got != 9 {
		t.Errorf("to odd on 10 = %d", got)
	}
	if got := DecimalTowardZero.BreakTie64(10); got != 9 {
		t.Errorf("toward zero on 10 = %d", got)
	}
	if got := DecimalAwayFromZero.BreakTie32(10); got != 10 {
		t.Errorf("away from zero on 10 = %d", got)
	}
}

func TestOptionsZeroValueDefaults(t *testing.T) {
	t.Parallel()
	var opts Options
	if opts.Sign != SignPropagate || opts.TrailingZero != TrailingZeroRemove ||
		opts.BinaryRounding != NearestToEven || opts.DecimalRounding != DecimalToEven ||
		opts.Cache != CacheFast || opts.Validation != AssertFinite {
		t.Fatalf("zero value is not the documented default set: %+v", opts)
	}
}
