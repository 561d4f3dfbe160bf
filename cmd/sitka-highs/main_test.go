package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-charts/internal/cli"
	"github.com/couchcryptid/weather-charts/internal/config"
	"github.com/couchcryptid/weather-charts/internal/observability"
)

var fixture = filepath.Join("..", "..", "internal", "adapter", "csvfile", "testdata", "sitka_sample.csv")

func TestRun(t *testing.T) {
	out := t.TempDir()
	cfg := &config.Config{OutputDir: out, ChartFormat: "svg", ChartWidth: 640, ChartHeight: 480}
	env := cli.NewEnv(cfg, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), observability.NewMetrics(), fixture, "")

	require.NoError(t, run(context.Background(), env))

	data, err := os.ReadFile(cfg.ChartPath(config.SitkaChartBase))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Contains(t, string(data), title)
}

func TestRun_MissingInput(t *testing.T) {
	cfg := &config.Config{WeatherDataDir: t.TempDir(), OutputDir: t.TempDir(), ChartFormat: "png", ChartWidth: 640, ChartHeight: 480}
	env := cli.NewEnv(cfg, slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil)), observability.NewMetrics(), "", "")

	err := run(context.Background(), env)
	require.ErrorIs(t, err, os.ErrNotExist)
}
