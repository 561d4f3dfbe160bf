// Command sitka-highs charts the daily highs and lows recorded at the Sitka,
// Alaska airport station in 2021.
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
	dataset = "sitka"
	title   = "Daily High Temps in Sitka, AK in 2021"
)

func main() {
	cli.Main("sitka-highs", run)
}

func run(ctx context.Context, env *cli.Env) error {
	cfg := env.Config
	format, err := plot.ParseFormat(cfg.ChartFormat)
	if err != nil {
		return err
	}

	src := csvfile.NewReader(env.In(cfg.SitkaPath()), domain.SitkaLayout,
		csvfile.Options{Dataset: dataset}, env.Logger, env.Metrics)
	sink := pipeline.NewWeatherChart(env.Out(cfg.ChartPath(config.SitkaChartBase)), format, plot.TemperatureOptions{
		Title:  title,
		Width:  cfg.ChartWidth,
		Height: cfg.ChartHeight,
	}, env.Logger)

	return pipeline.Run(ctx, dataset, src, sink, env.Logger, env.Metrics)
}
