package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/observability"
)

// ErrEmptyFile is returned when the input has no header row.
var ErrEmptyFile = errors.New("csv file has no header row")

// Options controls how malformed rows are handled.
type Options struct {
	// Dataset labels log lines and metrics, e.g. "sitka".
	Dataset string

	// SkipMalformed logs and drops rows whose high or low temperature does
	// not parse. When false such a row aborts the read.
	SkipMalformed bool
}

// Reader loads weather records from a CDO CSV export.
// It implements pipeline.Source[domain.WeatherRecord].
type Reader struct {
	path    string
	layout  domain.ColumnLayout
	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewReader creates a Reader for the file at path.
func NewReader(path string, layout domain.ColumnLayout, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Reader {
	return &Reader{
		path:    path,
		layout:  layout,
		opts:    opts,
		logger:  logger.With("dataset", opts.Dataset, "path", path),
		metrics: metrics,
	}
}

// Read opens the file and parses every data row.
func (r *Reader) Read(ctx context.Context) ([]domain.WeatherRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open weather csv: %w", err)
	}
	defer f.Close()

	return r.read(ctx, f)
}

func (r *Reader) read(ctx context.Context, src io.Reader) ([]domain.WeatherRecord, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1 // short rows are reported by ParseWeatherRow with their line number

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", r.path, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, name := range header {
		r.logger.Info("csv column", "index", i, "name", name)
	}

	var records []domain.WeatherRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		r.metrics.RecordsRead.WithLabelValues(r.opts.Dataset).Inc()

		rec, err := domain.ParseWeatherRow(row, r.layout)
		if err != nil {
			if r.opts.SkipMalformed && domain.IsSkippable(err) {
				r.logger.Warn("data missing, skipping row",
					"date", rec.Date.Format(domain.DateLayout),
					"line", line,
					"error", err,
				)
				r.metrics.RecordsSkipped.WithLabelValues(r.opts.Dataset).Inc()
				continue
			}
			return nil, fmt.Errorf("%s line %d: %w", r.path, line, err)
		}
		records = append(records, rec)
	}

	r.logger.Debug("temperature highs", "highs", highs(records))
	return records, nil
}

func highs(records []domain.WeatherRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.High
	}
	return out
}
