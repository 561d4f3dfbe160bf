package plot

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/couchcryptid/weather-charts/internal/domain"
)

func sampleWeather() domain.WeatherSeries {
	d := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	return domain.NewWeatherSeries([]domain.WeatherRecord{
		{Date: d, High: 63, Low: 52},
		{Date: d.AddDate(0, 0, 1), High: 61, Low: 50},
		{Date: d.AddDate(0, 0, 2), High: 58, Low: 53},
		{Date: d.AddDate(0, 0, 3), High: 66, Low: 49},
	})
}

func TestTemperatureChart(t *testing.T) {
	opts := TemperatureOptions{Title: "Daily High Temps in Sitka, AK in 2021", Width: 800, Height: 600}

	t.Run("series and axes", func(t *testing.T) {
		c, err := TemperatureChart(sampleWeather(), opts)
		require.NoError(t, err)

		assert.Equal(t, opts.Title, c.Title)
		assert.Equal(t, 800, c.Width)
		assert.Equal(t, 600, c.Height)
		assert.Equal(t, "Dates", c.XAxis.Name)
		assert.Equal(t, "Temp (F)", c.YAxis.Name)
		assert.InDelta(t, dateTickAngle, c.XAxis.TickStyle.TextRotationDegrees, 1e-9)

		require.Len(t, c.Series, 3)
		assert.Equal(t, "Range", c.Series[0].GetName())
		assert.Equal(t, "Highs", c.Series[1].GetName())
		assert.Equal(t, "Lows", c.Series[2].GetName())
		assert.Equal(t, highColor, c.Series[1].GetStyle().StrokeColor)
		assert.Equal(t, lowColor, c.Series[2].GetStyle().StrokeColor)

		highs, ok := c.Series[1].(chart.TimeSeries)
		require.True(t, ok)
		assert.Equal(t, []float64{63, 61, 58, 66}, highs.YValues)
	})

	t.Run("every point inside the axis ranges", func(t *testing.T) {
		c, err := TemperatureChart(sampleWeather(), opts)
		require.NoError(t, err)

		assert.Less(t, c.YAxis.Range.GetMin(), 49.0)
		assert.Greater(t, c.YAxis.Range.GetMax(), 66.0)
		first := chart.TimeToFloat64(time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC))
		assert.Less(t, c.XAxis.Range.GetMin(), first)
	})

	t.Run("single day has no band", func(t *testing.T) {
		s := domain.NewWeatherSeries([]domain.WeatherRecord{
			{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), High: 40, Low: 40},
		})
		c, err := TemperatureChart(s, opts)
		require.NoError(t, err)
		require.Len(t, c.Series, 2)
		assert.Less(t, c.YAxis.Range.GetMin(), c.YAxis.Range.GetMax())
	})

	t.Run("empty series", func(t *testing.T) {
		_, err := TemperatureChart(domain.WeatherSeries{}, opts)
		assert.ErrorIs(t, err, ErrNoData)
	})
}

func TestRenderTemperature(t *testing.T) {
	opts := TemperatureOptions{Title: "Highs and lows", Width: 640, Height: 480}

	t.Run("png", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTemperature(&buf, FormatPNG, sampleWeather(), opts))
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
	})

	t.Run("svg", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, RenderTemperature(&buf, FormatSVG, sampleWeather(), opts))
		assert.Contains(t, buf.String(), "<svg")
		assert.Contains(t, buf.String(), "Highs and lows")
	})

	t.Run("empty series is not rendered", func(t *testing.T) {
		var buf bytes.Buffer
		err := RenderTemperature(&buf, FormatPNG, domain.WeatherSeries{}, opts)
		assert.ErrorIs(t, err, ErrNoData)
		assert.Zero(t, buf.Len())
	})
}

func tickLabels(ticks []chart.Tick) []string {
	out := make([]string, len(ticks))
	for i, t := range ticks {
		out[i] = t.Label
	}
	return out
}

func TestTemperatureChart_Ticks(t *testing.T) {
	opts := TemperatureOptions{Title: "t", Width: 800, Height: 600}

	t.Run("date ticks start on the first day", func(t *testing.T) {
		c, err := TemperatureChart(sampleWeather(), opts)
		require.NoError(t, err)

		assert.Equal(t, []string{"2021-07-01", "2021-07-02", "2021-07-03", "2021-07-04"}, tickLabels(c.XAxis.Ticks))
		for _, tk := range c.XAxis.Ticks {
			assert.Greater(t, tk.Value, c.XAxis.Range.GetMin())
			assert.Less(t, tk.Value, c.XAxis.Range.GetMax())
		}
	})

	t.Run("full year stays readable", func(t *testing.T) {
		start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
		var recs []domain.WeatherRecord
		for i := range 365 {
			recs = append(recs, domain.WeatherRecord{Date: start.AddDate(0, 0, i), High: 50 + i%20, Low: 30 + i%15})
		}
		c, err := TemperatureChart(domain.NewWeatherSeries(recs), opts)
		require.NoError(t, err)

		labels := tickLabels(c.XAxis.Ticks)
		assert.LessOrEqual(t, len(labels), maxDateTicks)
		assert.Equal(t, "2021-01-01", labels[0])
		for _, l := range labels {
			assert.True(t, strings.HasPrefix(l, "2021-"), "label %s outside the data year", l)
		}
	})

	t.Run("degree ticks are whole numbers", func(t *testing.T) {
		c, err := TemperatureChart(sampleWeather(), opts)
		require.NoError(t, err)

		require.NotEmpty(t, c.YAxis.Ticks)
		for _, tk := range c.YAxis.Ticks {
			assert.NotContains(t, tk.Label, ".")
			assert.Equal(t, strconv.Itoa(int(tk.Value)), tk.Label)
			assert.GreaterOrEqual(t, tk.Value, c.YAxis.Range.GetMin())
			assert.LessOrEqual(t, tk.Value, c.YAxis.Range.GetMax())
		}
		assert.Equal(t, []string{"50", "55", "60", "65"}, tickLabels(c.YAxis.Ticks))
	})

	t.Run("single day", func(t *testing.T) {
		s := domain.NewWeatherSeries([]domain.WeatherRecord{
			{Date: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), High: 40, Low: 40},
		})
		c, err := TemperatureChart(s, opts)
		require.NoError(t, err)

		assert.Equal(t, []string{"2021-01-01", "2021-01-02"}, tickLabels(c.XAxis.Ticks))
		assert.Equal(t, []string{"39", "40", "41"}, tickLabels(c.YAxis.Ticks))
	})
}
