package geojson

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/observability"
)

// ErrInvalidJSON is returned when the input file is not well-formed JSON.
var ErrInvalidJSON = errors.New("invalid json")

// previewLen is how many leading values are logged at debug level.
const previewLen = 10

// readableOptions indents nested values by four spaces and keeps key order.
// Width 0 puts every array element on its own line.
var readableOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: false,
}

// Load reads a JSON file and validates it.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geojson: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidJSON)
	}
	return data, nil
}

// Pretty re-serializes a JSON document with four-space indentation.
func Pretty(data []byte) []byte {
	return pretty.PrettyOptions(data, readableOptions)
}

// WriteReadable writes the indented form of data to path, creating parent
// directories as needed.
func WriteReadable(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, Pretty(data), 0o644); err != nil {
		return fmt.Errorf("write readable json: %w", err)
	}
	return nil
}

// Extractor pulls earthquakes out of a FeatureCollection.
type Extractor struct {
	dataset string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewExtractor creates an Extractor whose logs and metrics carry dataset.
func NewExtractor(dataset string, logger *slog.Logger, metrics *observability.Metrics) *Extractor {
	return &Extractor{dataset: dataset, logger: logger, metrics: metrics}
}

// Extract parses every element of the top-level "features" array. Features
// with a missing or non-numeric magnitude or coordinate are logged once and
// skipped.
func (e *Extractor) Extract(ctx context.Context, data []byte) ([]domain.Earthquake, error) {
	features := gjson.GetBytes(data, "features")
	if !features.IsArray() {
		return nil, domain.ErrNoFeatures
	}

	all := features.Array()
	e.logger.Info("features found", "count", len(all))

	events := make([]domain.Earthquake, 0, len(all))
	for i, f := range all {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e.metrics.RecordsRead.WithLabelValues(e.dataset).Inc()

		eq, err := domain.ParseFeature(f)
		if err != nil {
			if !domain.IsSkippable(err) {
				return nil, fmt.Errorf("feature %d: %w", i, err)
			}
			e.logger.Warn("invalid feature, skipping",
				"index", i,
				"id", f.Get("id").String(),
				"error", err,
			)
			e.metrics.RecordsSkipped.WithLabelValues(e.dataset).Inc()
			continue
		}
		events = append(events, eq)
	}

	series := domain.NewEarthquakeSeries(events)
	n := min(previewLen, series.Len())
	e.logger.Debug("earthquake preview",
		"mags", series.Mags[:n],
		"lons", series.Lons[:n],
		"lats", series.Lats[:n],
	)
	return events, nil
}

// Reader loads a feed file, writes its readable copy, and extracts events.
// It implements pipeline.Source[domain.Earthquake].
type Reader struct {
	path         string
	readablePath string
	extractor    *Extractor
}

// NewReader creates a Reader. An empty readablePath skips the indented copy.
func NewReader(path, readablePath string, extractor *Extractor) *Reader {
	return &Reader{path: path, readablePath: readablePath, extractor: extractor}
}

// Read runs load, optional readable write, and extraction in order.
func (r *Reader) Read(ctx context.Context) ([]domain.Earthquake, error) {
	data, err := Load(r.path)
	if err != nil {
		return nil, err
	}

	if r.readablePath != "" {
		if err := WriteReadable(r.readablePath, data); err != nil {
			return nil, err
		}
		r.extractor.logger.Info("wrote readable json", "path", r.readablePath)
	}

	return r.extractor.Extract(ctx, data)
}
