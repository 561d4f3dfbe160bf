package geojson

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/observability"
)

var samplePath = filepath.Join("testdata", "eq_sample.geojson")

func loadSample(t *testing.T) []byte {
	t.Helper()
	data, err := Load(samplePath)
	require.NoError(t, err)
	return data
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`{"features": [`), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.geojson"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPretty_RoundTrip(t *testing.T) {
	data := loadSample(t)
	out := Pretty(data)

	var want, got any
	require.NoError(t, json.Unmarshal(data, &want))
	require.NoError(t, json.Unmarshal(out, &got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("pretty output changed the document (-want +got):\n%s", diff)
	}
}

func TestPretty_IndentsWithFourSpaces(t *testing.T) {
	out := string(Pretty([]byte(`{"type":"FeatureCollection","metadata":{"count":4},"features":[]}`)))

	assert.True(t, strings.HasPrefix(out, "{\n    \"type\": \"FeatureCollection\","))
	assert.Contains(t, out, "\n        \"count\": 4")
	assert.Less(t, strings.Index(out, `"type"`), strings.Index(out, `"metadata"`), "key order is preserved")
	assert.Less(t, strings.Index(out, `"metadata"`), strings.Index(out, `"features"`), "key order is preserved")
}

func TestWriteReadable(t *testing.T) {
	data := loadSample(t)
	path := filepath.Join(t.TempDir(), "eq_data", "readable.json")

	require.NoError(t, WriteReadable(path, data))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Pretty(data), written)
}

func TestExtractor_Extract(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	metrics := observability.NewMetrics()

	events, err := NewExtractor("eq", logger, metrics).Extract(context.Background(), loadSample(t))
	require.NoError(t, err)

	want := []domain.Earthquake{
		{Magnitude: 1.6, Lon: -150.7585, Lat: 61.7591, Title: "M 1.6 - 27 km NNW of Susitna, Alaska"},
		{Magnitude: 2.2, Lon: -66.2, Lat: 18.1, Title: "M 2.2 - Puerto Rico region"},
		{Magnitude: 4.5, Lon: 141.3, Lat: 37.5, Title: "M 4.5 - 30 km E of Namie, Japan"},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, strings.Count(logs.String(), `"msg":"invalid feature, skipping"`))
	assert.Contains(t, logs.String(), `"id":"nn00837212"`)
	assert.Contains(t, logs.String(), `"msg":"features found","count":4`)
	assert.InDelta(t, 4, testutil.ToFloat64(metrics.RecordsRead.WithLabelValues("eq")), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.RecordsSkipped.WithLabelValues("eq")), 1e-9)
}

func TestExtractor_NoFeatures(t *testing.T) {
	x := NewExtractor("eq", slog.Default(), observability.NewMetrics())

	_, err := x.Extract(context.Background(), []byte(`{"type":"FeatureCollection"}`))
	assert.ErrorIs(t, err, domain.ErrNoFeatures)

	_, err = x.Extract(context.Background(), []byte(`{"features":{}}`))
	assert.ErrorIs(t, err, domain.ErrNoFeatures)
}

func TestExtractor_EmptyFeatures(t *testing.T) {
	events, err := NewExtractor("eq", slog.Default(), observability.NewMetrics()).
		Extract(context.Background(), []byte(`{"features":[]}`))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestExtractor_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewExtractor("eq", slog.Default(), observability.NewMetrics()).Extract(ctx, loadSample(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReader_WritesReadableCopy(t *testing.T) {
	readable := filepath.Join(t.TempDir(), "readable.json")
	r := NewReader(samplePath, readable, NewExtractor("eq", slog.Default(), observability.NewMetrics()))

	events, err := r.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 3)
	assert.FileExists(t, readable)
}

func TestReader_SkipsReadableCopyWhenUnset(t *testing.T) {
	r := NewReader(samplePath, "", NewExtractor("eq", slog.Default(), observability.NewMetrics()))

	events, err := r.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
