// Package convservice exposes the conversion API behind a small service
// interface and decorates it with the cross-cutting concerns the pure
// core deliberately avoids: Prometheus counters and duration histograms,
// OpenTelemetry spans, and structured debug logging. The conversion
// functions themselves stay pure and instrumentation-free;
// everything observable lives in this layer.
package convservice

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"

	"github.com/agbru/fpconv"
	"github.com/agbru/fpconv/internal/logging"
)

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpconv_conversions_total",
			Help: "The total number of conversions processed",
		},
		[]string{"operation", "status"},
	)
	conversionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fpconv_conversion_duration_seconds",
			Help: "The duration of conversions in seconds",
		},
		[]string{"operation"},
	)
)

// Converter defines the instrumented conversion surface. The interface
// exists for dependency injection and mocking; production code uses the
// Service implementation below.
type Converter interface {
	// ShortestScientific64 renders x in shortest round-trip scientific
	// form.
	ShortestScientific64(ctx context.Context, x float64) string

	// PreciseScientific64 renders the exact decimal expansion of x.
	PreciseScientific64(ctx context.Context, x float64) string

	// FixedPrecisionScientific64 renders x with the given number of
	// significant digits after the first.
	FixedPrecisionScientific64(ctx context.Context, x float64, precision int) string

	// Parse64 parses a decimal numeral into the correctly rounded
	// binary64, reporting syntax errors.
	Parse64(ctx context.Context, s string) (float64, error)
}

// Service implements Converter on top of the package fpconv entry
// points.
type Service struct {
	log  logging.Logger
	opts fpconv.Options
}

// Ensure Service implements the Converter interface.
var _ Converter = (*Service)(nil)

// New creates a Service logging through log. A nil logger selects the
// default stderr logger.
func New(log logging.Logger) *Service {
	if log == nil {
		log = logging.NewDefaultLogger()
	}
	return &Service{log: log}
}

// NewWithOptions creates a Service that applies opts to every policy
// driven conversion.
func NewWithOptions(log logging.Logger, opts fpconv.Options) *Service {
	s := New(log)
	s.opts = opts
	return s
}

func (s *Service) observe(ctx context.Context, operation string, fn func() error) {
	tracer := otel.Tracer("fpconv")
	_, span := tracer.Start(ctx, operation)
	defer span.End()

	start := time.Now()
	err := fn()
	duration := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
	}
	conversionsTotal.WithLabelValues(operation, status).Inc()
	conversionDuration.WithLabelValues(operation).Observe(duration)

	s.log.Debug("conversion completed",
		logging.String("operation", operation),
		logging.Float64("duration", duration),
		logging.String("status", status),
	)
}

// ShortestScientific64 renders x in shortest round-trip scientific form.
func (s *Service) ShortestScientific64(ctx context.Context, x float64) string {
	var out string
	s.observe(ctx, "shortest_scientific_64", func() error {
		out = fpconv.ShortestScientific64(x, s.opts)
		return nil
	})
	return out
}

// PreciseScientific64 renders the exact decimal expansion of x.
func (s *Service) PreciseScientific64(ctx context.Context, x float64) string {
	var out string
	s.observe(ctx, "precise_scientific_64", func() error {
		out = fpconv.PreciseScientific64(x)
		return nil
	})
	return out
}

// FixedPrecisionScientific64 renders x with precision significant digits
// after the first.
func (s *Service) FixedPrecisionScientific64(ctx context.Context, x float64, precision int) string {
	var out string
	s.observe(ctx, "fixed_precision_scientific_64", func() error {
		out = fpconv.FixedPrecisionScientific64(x, precision)
		return nil
	})
	return out
}

// Parse64 parses a decimal numeral into the correctly rounded binary64.
func (s *Service) Parse64(ctx context.Context, str string) (float64, error) {
	var out float64
	var perr error
	s.observe(ctx, "parse_64", func() error {
		out, perr = fpconv.ParseFloat64(str)
		return perr
	})
	return out, perr
}
