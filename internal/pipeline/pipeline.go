package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/observability"
)

// Source loads every record of a dataset.
type Source[T any] interface {
	Read(ctx context.Context) ([]T, error)
}

// Sink renders records and reports how many points it drew.
type Sink[T any] interface {
	Write(ctx context.Context, records []T) (int, error)
}

// Pipeline runs one extract-then-render pass over a dataset.
type Pipeline[T any] struct {
	name    string
	source  Source[T]
	sink    Sink[T]
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline. name labels log lines and metrics.
func New[T any](name string, src Source[T], sink Sink[T], logger *slog.Logger, metrics *observability.Metrics) *Pipeline[T] {
	return &Pipeline[T]{
		name:    name,
		source:  src,
		sink:    sink,
		logger:  logger.With("dataset", name),
		metrics: metrics,
	}
}

// Run is shorthand for New(...).Run(ctx).
func Run[T any](ctx context.Context, name string, src Source[T], sink Sink[T], logger *slog.Logger, metrics *observability.Metrics) error {
	return New(name, src, sink, logger, metrics).Run(ctx)
}

// Run reads all records, then hands them to the sink. Metrics are only
// updated when both stages succeed.
func (p *Pipeline[T]) Run(ctx context.Context) error {
	start := domain.Now()
	p.logger.Info("pipeline started")

	records, err := p.source.Read(ctx)
	if err != nil {
		return fmt.Errorf("%s: extract: %w", p.name, err)
	}
	p.logger.Info("records loaded", "count", len(records))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}

	points, err := p.sink.Write(ctx, records)
	if err != nil {
		return fmt.Errorf("%s: render: %w", p.name, err)
	}

	now := domain.Now()
	elapsed := now.Sub(start)
	p.metrics.PointsPlotted.WithLabelValues(p.name).Set(float64(points))
	p.metrics.RunDuration.WithLabelValues(p.name).Set(elapsed.Seconds())
	p.metrics.LastSuccess.WithLabelValues(p.name).Set(float64(now.Unix()))

	p.logger.Info("pipeline finished", "points", points, "duration", elapsed)
	return nil
}
