package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/plot"
)

// WeatherChart renders weather records as a highs and lows chart image.
type WeatherChart struct {
	path   string
	format plot.Format
	opts   plot.TemperatureOptions
	logger *slog.Logger
}

// NewWeatherChart creates a sink that writes the chart to path.
func NewWeatherChart(path string, format plot.Format, opts plot.TemperatureOptions, logger *slog.Logger) *WeatherChart {
	return &WeatherChart{path: path, format: format, opts: opts, logger: logger}
}

// Write implements Sink[domain.WeatherRecord].
func (w *WeatherChart) Write(_ context.Context, records []domain.WeatherRecord) (int, error) {
	s := domain.NewWeatherSeries(records)
	sum := domain.SummarizeWeather(s)
	w.logger.Info("weather summary",
		"days", sum.Count,
		"first", sum.First.Format(domain.DateLayout),
		"last", sum.Last.Format(domain.DateLayout),
		"max_high", sum.MaxHigh,
		"min_low", sum.MinLow,
	)

	if err := plot.SaveTemperature(w.path, w.format, s, w.opts); err != nil {
		return 0, err
	}
	w.logger.Info("chart saved", "path", w.path, "format", w.format)
	return s.Len(), nil
}

// EarthquakeMap renders earthquakes as an HTML world map.
type EarthquakeMap struct {
	path   string
	opts   plot.MapOptions
	logger *slog.Logger
}

// NewEarthquakeMap creates a sink that writes the map page to path.
func NewEarthquakeMap(path string, opts plot.MapOptions, logger *slog.Logger) *EarthquakeMap {
	return &EarthquakeMap{path: path, opts: opts, logger: logger}
}

// Write implements Sink[domain.Earthquake].
func (m *EarthquakeMap) Write(_ context.Context, events []domain.Earthquake) (int, error) {
	s := domain.NewEarthquakeSeries(events)
	sum := domain.SummarizeEarthquakes(s)
	m.logger.Info("earthquake summary",
		"count", sum.Count,
		"min_mag", sum.MinMagnitude,
		"max_mag", sum.MaxMagnitude,
		"strongest", sum.Strongest,
	)

	if err := plot.SaveMapHTML(m.path, s, sum, m.opts); err != nil {
		return 0, err
	}
	m.logger.Info("map saved", "path", m.path)
	return s.Len(), nil
}
