// Command genmock writes deterministic mock datasets for the chart tools: a
// Sitka CSV, a Death Valley CSV with missing readings, and a USGS-style
// GeoJSON feed with one feature lacking a magnitude. It runs the generated
// rows back through the domain parsers and prints the counts test assertions
// depend on.
//
// Usage:
//
//	go run ./cmd/genmock -weather-dir weather_data -eq-dir eq_data
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/jonboulle/clockwork"
	"github.com/tidwall/gjson"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/mockdata"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	opts := mockdata.Options{}
	flag.StringVar(&opts.WeatherDir, "weather-dir", "weather_data", "output directory for weather CSVs")
	flag.StringVar(&opts.EarthquakeDir, "eq-dir", "eq_data", "output directory for the GeoJSON feed")
	flag.IntVar(&opts.Days, "days", 365, "days of weather to generate")
	flag.IntVar(&opts.Quakes, "quakes", 200, "earthquake features to generate")
	flag.Uint64Var(&opts.Seed, "seed", 2021, "random seed")
	flag.Parse()

	if opts.Days <= 0 || opts.Quakes <= 0 {
		flag.Usage()
		return fmt.Errorf("-days and -quakes must be positive")
	}

	// Fixed clock so summaries printed below are reproducible.
	domain.SetClock(clockwork.NewFakeClockAt(mockdata.GeneratedAt))
	defer domain.SetClock(nil)

	res, err := mockdata.Generate(opts)
	if err != nil {
		return err
	}

	for _, ds := range res.Weather {
		log.Printf("wrote %s: %d rows", ds.Path, len(ds.Rows))
		printWeatherStats(ds)
	}
	log.Printf("wrote %s: %d features", res.FeedPath, opts.Quakes)
	printQuakeStats(res.Feed)
	return nil
}

func printWeatherStats(ds mockdata.Dataset) {
	var records []domain.WeatherRecord
	skipped := 0
	for _, row := range ds.Rows {
		rec, err := domain.ParseWeatherRow(row, ds.Layout)
		if err != nil {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	sum := domain.SummarizeWeather(domain.NewWeatherSeries(records))

	fmt.Printf("\n=== %s ===\n", ds.Name)
	fmt.Printf("Rows: %d, plotted: %d, skipped: %d\n", len(ds.Rows), sum.Count, skipped)
	fmt.Printf("Max high: %d, min low: %d\n", sum.MaxHigh, sum.MinLow)
}

func printQuakeStats(feed []byte) {
	var events []domain.Earthquake
	skipped := 0
	for _, f := range gjson.GetBytes(feed, "features").Array() {
		eq, err := domain.ParseFeature(f)
		if err != nil {
			skipped++
			continue
		}
		events = append(events, eq)
	}
	sum := domain.SummarizeEarthquakes(domain.NewEarthquakeSeries(events))

	fmt.Println("\n=== Earthquakes ===")
	fmt.Printf("Features: %d, plotted: %d, skipped: %d\n", len(events)+skipped, sum.Count, skipped)
	fmt.Printf("Magnitude range: %.2f - %.2f\n", sum.MinMagnitude, sum.MaxMagnitude)
	fmt.Printf("Strongest: %s\n", sum.Strongest)
}
