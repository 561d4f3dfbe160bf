package plot

import (
	"io"
	"math"
	"slices"
	"strconv"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/weather-charts/internal/domain"
)

// Colors follow the matplotlib named colors at the same alpha: red and blue
// lines at 0.5, a green band at 0.1.
var (
	highColor = drawing.Color{R: 255, A: 128}
	lowColor  = drawing.Color{B: 255, A: 128}
	bandColor = drawing.Color{G: 128, A: 26}
)

const (
	titleFontSize = 21
	labelFontSize = 16
	dateTickAngle = 45
	maxDateTicks  = 12
)

// TemperatureOptions configures the daily highs and lows chart.
type TemperatureOptions struct {
	Title  string
	Width  int
	Height int
}

// TemperatureChart builds a line chart of daily highs (red) and lows (blue)
// with the band between them shaded green. Date tick labels are rotated so
// they do not overlap.
func TemperatureChart(s domain.WeatherSeries, opts TemperatureOptions) (chart.Chart, error) {
	if s.Len() == 0 {
		return chart.Chart{}, ErrNoData
	}

	xs := make([]float64, s.Len())
	highs := make([]float64, s.Len())
	lows := make([]float64, s.Len())
	for i := range s.Dates {
		xs[i] = chart.TimeToFloat64(s.Dates[i])
		highs[i] = float64(s.Highs[i])
		lows[i] = float64(s.Lows[i])
	}

	first, last := slices.MinFunc(s.Dates, time.Time.Compare), slices.MaxFunc(s.Dates, time.Time.Compare)
	xMin := chart.TimeToFloat64(first.AddDate(0, 0, -1))
	xMax := chart.TimeToFloat64(last.AddDate(0, 0, 1))
	yLo := min(slices.Min(highs), slices.Min(lows))
	yHi := max(slices.Max(highs), slices.Max(lows))
	yMin, yMax := padRange(yLo, yHi, max((yHi-yLo)*0.05, 1))

	var series []chart.Series
	if s.Len() > 1 {
		series = append(series, bandBetween("Range", chart.Style{FillColor: bandColor}, xs, highs, lows))
	}
	series = append(series,
		chart.TimeSeries{
			Name:    "Highs",
			XValues: s.Dates,
			YValues: highs,
			Style:   chart.Style{StrokeColor: highColor, StrokeWidth: 1.5},
		},
		chart.TimeSeries{
			Name:    "Lows",
			XValues: s.Dates,
			YValues: lows,
			Style:   chart.Style{StrokeColor: lowColor, StrokeWidth: 1.5},
		},
	)

	return chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 20, Right: 30, Bottom: 100}},
		XAxis: chart.XAxis{
			Name:      "Dates",
			NameStyle: chart.Style{FontSize: labelFontSize},
			Range:     &chart.ContinuousRange{Min: xMin, Max: xMax},
			Ticks:     dateTicks(first, last),
			TickStyle: chart.Style{FontSize: labelFontSize, TextRotationDegrees: dateTickAngle},
		},
		YAxis: chart.YAxis{
			Name:      "Temp (F)",
			NameStyle: chart.Style{FontSize: labelFontSize},
			Range:     &chart.ContinuousRange{Min: yMin, Max: yMax},
			Ticks:     degreeTicks(yMin, yMax),
			TickStyle: chart.Style{FontSize: labelFontSize},
		},
		Series: series,
	}, nil
}

// RenderTemperature builds and encodes the temperature chart to w.
func RenderTemperature(w io.Writer, f Format, s domain.WeatherSeries, opts TemperatureOptions) error {
	c, err := TemperatureChart(s, opts)
	if err != nil {
		return err
	}
	return Render(w, f, c)
}

// SaveTemperature builds the temperature chart and writes it to path.
func SaveTemperature(path string, f Format, s domain.WeatherSeries, opts TemperatureOptions) error {
	c, err := TemperatureChart(s, opts)
	if err != nil {
		return err
	}
	return Save(path, f, c)
}

// padRange widens [lo, hi] by pad on both sides. go-chart rejects zero-width
// ranges, so a single point still gets a usable axis.
func padRange(lo, hi, pad float64) (float64, float64) {
	return lo - pad, hi + pad
}

// dateTicks labels whole days from first through last, every step days so
// that at most maxDateTicks labels are drawn. A single day gets a second
// tick the day after so the axis has a span.
func dateTicks(first, last time.Time) []chart.Tick {
	days := int(last.Sub(first).Hours()/24) + 1
	step := max(1, (days+maxDateTicks-1)/maxDateTicks)

	var ticks []chart.Tick
	for d := first; !d.After(last); d = d.AddDate(0, 0, step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(d), Label: d.Format(domain.DateLayout)})
	}
	if len(ticks) == 1 {
		next := first.AddDate(0, 0, 1)
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(next), Label: next.Format(domain.DateLayout)})
	}
	return ticks
}

// degreeTicks places whole-degree labels inside [lo, hi], every 10 degrees
// on wide ranges, every 5 on narrow ones, and every degree when that would
// leave fewer than two labels.
func degreeTicks(lo, hi float64) []chart.Tick {
	step := 5
	if hi-lo > 60 {
		step = 10
	}
	ticks := wholeTicks(lo, hi, step)
	if len(ticks) < 2 {
		ticks = wholeTicks(lo, hi, 1)
	}
	return ticks
}

func wholeTicks(lo, hi float64, step int) []chart.Tick {
	var ticks []chart.Tick
	for v := int(math.Ceil(lo/float64(step))) * step; float64(v) <= hi; v += step {
		ticks = append(ticks, chart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}
