// Command eq-world-map plots the last 30 days of USGS earthquakes on a world
// map colored by magnitude. It also writes an indented copy of the feed for
// reading by hand.
package main

import (
	"context"
	"flag"

	"github.com/couchcryptid/weather-charts/internal/adapter/geojson"
	"github.com/couchcryptid/weather-charts/internal/cli"
	"github.com/couchcryptid/weather-charts/internal/pipeline"
	"github.com/couchcryptid/weather-charts/internal/plot"
)

const (
	dataset = "earthquakes"
	title   = "Global Earthquakes"

	// skipReadable as the -readable value turns off the indented copy.
	skipReadable = "-"
)

var readable = flag.String("readable", "", `indented copy of the feed (default from EQ_DATA_DIR); "-" to skip`)

func main() {
	cli.Main("eq-world-map", func(ctx context.Context, env *cli.Env) error {
		return run(ctx, env, *readable)
	})
}

func run(ctx context.Context, env *cli.Env, readablePath string) error {
	cfg := env.Config
	switch readablePath {
	case "":
		readablePath = cfg.EarthquakeReadablePath()
	case skipReadable:
		readablePath = ""
	}

	src := geojson.NewReader(env.In(cfg.EarthquakePath()), readablePath,
		geojson.NewExtractor(dataset, env.Logger, env.Metrics))
	sink := pipeline.NewEarthquakeMap(env.Out(cfg.MapPath()), plot.MapOptions{
		Title:  title,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
	}, env.Logger)

	return pipeline.Run(ctx, dataset, src, sink, env.Logger, env.Metrics)
}
