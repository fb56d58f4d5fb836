package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const scopeName = "jobboard/match"

// Tracer returns the tracer for the matching subsystem. With no provider
// registered the global default is a no-op, so instrumentation never fails
// when the sink is absent.
func Tracer() trace.Tracer {
	return otel.Tracer(scopeName)
}

// MatchMetrics holds the instruments emitted per ranking request.
type MatchMetrics struct {
	Duration metric.Float64Histogram
	Requests metric.Int64Counter
	Jobs     metric.Int64Counter
}

func NewMatchMetrics() (*MatchMetrics, error) {
	meter := otel.Meter(scopeName)

	duration, err := meter.Float64Histogram("match.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent computing one ranked match page"))
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter("match.requests",
		metric.WithDescription("Ranking requests by result"))
	if err != nil {
		return nil, err
	}

	jobs, err := meter.Int64Counter("match.jobs",
		metric.WithDescription("Matched jobs by score bucket"))
	if err != nil {
		return nil, err
	}

	return &MatchMetrics{Duration: duration, Requests: requests, Jobs: jobs}, nil
}

// ScoreBucket maps a score in [0,1] onto a coarse label for the match.jobs
// counter.
func ScoreBucket(score float64) string {
	switch {
	case score < 0.2:
		return "0.0-0.2"
	case score < 0.4:
		return "0.2-0.4"
	case score < 0.6:
		return "0.4-0.6"
	case score < 0.8:
		return "0.6-0.8"
	default:
		return "0.8-1.0"
	}
}
