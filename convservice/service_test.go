package convservice

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fpconv/convservice/mocks"
	"github.com/agbru/fpconv/internal/logging"
)

func TestServiceConversions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	svc := New(logging.NewLogger(&buf, "convservice"))
	ctx := context.Background()

	if got := svc.ShortestScientific64(ctx, 0.25); got != "2.5e-1" {
		t.Errorf("ShortestScientific64(0.25) = %q", got)
	}
	if got := svc.FixedPrecisionScientific64(ctx, 1.0, 3); got != "1.000e+00" {
		t.Errorf("FixedPrecisionScientific64(1, 3) = %q", got)
	}
	if got := svc.PreciseScientific64(ctx, 0.5); got != "5e-1" {
		t.Errorf("PreciseScientific64(0.5) = %q", got)
	}
	if x, err := svc.Parse64(ctx, "2.5e-1"); err != nil || x != 0.25 {
		t.Errorf("Parse64(2.5e-1) = %v, %v", x, err)
	}
	if _, err := svc.Parse64(ctx, "bogus"); err == nil {
		t.Error("Parse64 accepted malformed input")
	}
	if got := svc.ShortestScientific64(ctx, math.NaN()); got != "nan" {
		t.Errorf("ShortestScientific64(NaN) = %q", got)
	}

	logs := buf.String()
	if !strings.Contains(logs, "conversion completed") {
		t.Errorf("expected debug events in the log output, got %q", logs)
	}
	if !strings.Contains(logs, "parse_64") {
		t.Errorf("expected the parse operation label in the log output, got %q", logs)
	}
}

// renderAll is a consumer written against the Converter interface; the
// gomock test drives it with a scripted mock.
func renderAll(ctx context.Context, c Converter, xs []float64) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		out = append(out, c.ShortestScientific64(ctx, x))
	}
	return out
}

func TestConverterMock(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mock := mocks.NewMockConverter(ctrl)
	ctx := context.Background()

	mock.EXPECT().ShortestScientific64(ctx, 1.0).Return("1e0")
	mock.EXPECT().ShortestScientific64(ctx, 2.0).Return("2e0")

	got := renderAll(ctx, mock, []float64{1.0, 2.0})
	if got[0] != "1e0" || got[1] != "2e0" {
		t.Fatalf("renderAll through the mock = %v", got)
	}
}
