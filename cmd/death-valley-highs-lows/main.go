// Command death-valley-highs-lows charts the daily highs and lows recorded in
// Death Valley National Park in 2021. Days missing a high or low reading are
// logged and left off the chart.
package main

import (
	"context"

	"github.com/couchcryptid/weather-charts/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-charts/internal/cli"
	"github.com/couchcryptid/weather-charts/internal/config"
	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/pipeline"
	"github.com/couchcryptid/weather-charts/internal/plot"
)

const (
	dataset = "death_valley"
	title   = "Daily High Temps in Death Valley, in 2021"
)

func main() {
	cli.Main("death-valley-highs-lows", run)
}

func run(ctx context.Context, env *cli.Env) error {
	cfg := env.Config
	format, err := plot.ParseFormat(cfg.ChartFormat)
	if err != nil {
		return err
	}

	src := csvfile.NewReader(env.In(cfg.DeathValleyPath()), domain.DeathValleyLayout, csvfile.Options{
		Dataset:       dataset,
		SkipMalformed: true,
	}, env.Logger, env.Metrics)
	sink := pipeline.NewWeatherChart(env.Out(cfg.ChartPath(config.DeathValleyChartBase)), format, plot.TemperatureOptions{
		Title:  title,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
	}, env.Logger)

	return pipeline.Run(ctx, dataset, src, sink, env.Logger, env.Metrics)
}
