package observe

import (
	"context"

	"github.com/on-the-ground/memo_ive_go/pure"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names recorded by MetricsObserver.
const (
	MetricHits            = "memo.hits"
	MetricComputations    = "memo.computations"
	MetricFailures        = "memo.failures"
	MetricComputeDuration = "memo.compute.duration_ms"

	AttrEvaluator = "memo.evaluator"
)

var _ pure.Observer = (*MetricsObserver)(nil)

// MetricsObserver records hit, computation and failure counts plus body
// durations with an OpenTelemetry meter.
type MetricsObserver struct {
	hits         metric.Int64Counter
	computations metric.Int64Counter
	failures     metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetricsObserver creates the instruments on meter.
func NewMetricsObserver(meter metric.Meter) (*MetricsObserver, error) {
	hits, err := meter.Int64Counter(
		MetricHits,
		metric.WithDescription("Calls answered from a memo table"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	computations, err := meter.Int64Counter(
		MetricComputations,
		metric.WithDescription("Successful body invocations stored in a memo table"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter(
		MetricFailures,
		metric.WithDescription("Body invocations that failed and were not stored"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		MetricComputeDuration,
		metric.WithDescription("Body invocation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &MetricsObserver{
		hits:         hits,
		computations: computations,
		failures:     failures,
		durationHist: durationHist,
	}, nil
}

func (m *MetricsObserver) Hit(e pure.Event) {
	m.hits.Add(context.Background(), 1, attrs(e))
}

func (m *MetricsObserver) Computed(e pure.Event) {
	opt := attrs(e)
	m.computations.Add(context.Background(), 1, opt)
	m.durationHist.Record(context.Background(), durationMs(e), opt)
}

func (m *MetricsObserver) Failed(e pure.Event) {
	opt := attrs(e)
	m.failures.Add(context.Background(), 1, opt)
	m.durationHist.Record(context.Background(), durationMs(e), opt)
}

func attrs(e pure.Event) metric.MeasurementOption {
	return metric.WithAttributes(attribute.String(AttrEvaluator, e.Name))
}

func durationMs(e pure.Event) float64 {
	return float64(e.Span.Duration().Microseconds()) / 1000
}
