package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RecordsRead.WithLabelValues("sitka").Add(3)

	assert.InDelta(t, 3, testutil.ToFloat64(a.RecordsRead.WithLabelValues("sitka")), 1e-9)
	assert.InDelta(t, 0, testutil.ToFloat64(b.RecordsRead.WithLabelValues("sitka")), 1e-9)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RecordsRead.WithLabelValues("death_valley").Add(365)
	m.RecordsSkipped.WithLabelValues("death_valley").Add(1)
	m.PointsPlotted.WithLabelValues("death_valley").Set(364)

	path := filepath.Join(t.TempDir(), "nested", "charts.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `weather_charts_records_read_total{dataset="death_valley"} 365`)
	assert.Contains(t, out, `weather_charts_records_skipped_total{dataset="death_valley"} 1`)
	assert.Contains(t, out, `weather_charts_points_plotted{dataset="death_valley"} 364`)
}
