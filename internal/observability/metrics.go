package observability

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one tool run. Each run gets its
// own registry because the tools are batch jobs that export once on exit.
type Metrics struct {
	Registry *prometheus.Registry

	RecordsRead    *prometheus.CounterVec // labels: dataset
	RecordsSkipped *prometheus.CounterVec // labels: dataset
	PointsPlotted  *prometheus.GaugeVec   // labels: dataset
	RunDuration    *prometheus.GaugeVec   // labels: dataset
	LastSuccess    *prometheus.GaugeVec   // labels: dataset
}

// NewMetrics creates all collectors and registers them with a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RecordsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_charts",
			Name:      "records_read_total",
			Help:      "Data records read from the input file, including skipped ones.",
		}, []string{"dataset"}),
		RecordsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_charts",
			Name:      "records_skipped_total",
			Help:      "Records dropped because a numeric field failed to parse.",
		}, []string{"dataset"}),
		PointsPlotted: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_charts",
			Name:      "points_plotted",
			Help:      "Points drawn on the last rendered chart.",
		}, []string{"dataset"}),
		RunDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_charts",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last load-and-render run.",
		}, []string{"dataset"}),
		LastSuccess: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "weather_charts",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful run.",
		}, []string{"dataset"}),
	}

	m.Registry.MustRegister(
		m.RecordsRead,
		m.RecordsSkipped,
		m.PointsPlotted,
		m.RunDuration,
		m.LastSuccess,
	)

	return m
}

// WriteTextfile writes the registry in the text exposition format for the
// node_exporter textfile collector. The write is atomic.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
