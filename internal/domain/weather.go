package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the reference layout of the DATE column.
const DateLayout = "2006-01-02"

// ColumnLayout pins the zero-based positions of the fields read from a
// weather CSV export.
type ColumnLayout struct {
	Date int
	High int
	Low  int
}

var (
	// SitkaLayout matches sitka_weather_2021_simple.csv (TMAX=4, TMIN=5).
	SitkaLayout = ColumnLayout{Date: 2, High: 4, Low: 5}

	// DeathValleyLayout matches death_valley_2021_simple.csv, which has no
	// TAVG column (TMAX=3, TMIN=4).
	DeathValleyLayout = ColumnLayout{Date: 2, High: 3, Low: 4}
)

// Width is the minimum number of columns a row needs for this layout.
func (l ColumnLayout) Width() int {
	return max(l.Date, l.High, l.Low) + 1
}

// WeatherRecord is one station-day.
type WeatherRecord struct {
	Date time.Time
	High int // degrees F
	Low  int // degrees F
}

// WeatherSeries holds parallel date, high, and low sequences ready to plot.
type WeatherSeries struct {
	Dates []time.Time
	Highs []int
	Lows  []int
}

// Len returns the number of points in the series.
func (s WeatherSeries) Len() int { return len(s.Dates) }

// WeatherSummary describes a loaded weather series.
type WeatherSummary struct {
	Count    int
	First    time.Time
	Last     time.Time
	MaxHigh  int
	MinLow   int
	LoadedAt time.Time
}

// ParseWeatherRow coerces one CSV row according to layout. The date is parsed
// first so a skipped row can still be reported by date. Numeric failures wrap
// ErrInvalidNumber; a bad date wraps ErrInvalidDate.
func ParseWeatherRow(row []string, layout ColumnLayout) (WeatherRecord, error) {
	if len(row) < layout.Width() {
		return WeatherRecord{}, ErrShortRow
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(row[layout.Date]))
	if err != nil {
		return WeatherRecord{}, &FieldError{Column: layout.Date, Field: "DATE", Value: row[layout.Date], Err: ErrInvalidDate}
	}

	rec := WeatherRecord{Date: date}
	if rec.High, err = parseTemperature(row, layout.High, "TMAX"); err != nil {
		return rec, err
	}
	if rec.Low, err = parseTemperature(row, layout.Low, "TMIN"); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseTemperature(row []string, col int, name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(row[col]))
	if err != nil {
		return 0, &FieldError{Column: col, Field: name, Value: row[col], Err: ErrInvalidNumber}
	}
	return v, nil
}

// NewWeatherSeries splits records into parallel sequences, preserving order.
func NewWeatherSeries(records []WeatherRecord) WeatherSeries {
	s := WeatherSeries{
		Dates: make([]time.Time, 0, len(records)),
		Highs: make([]int, 0, len(records)),
		Lows:  make([]int, 0, len(records)),
	}
	for _, r := range records {
		s.Dates = append(s.Dates, r.Date)
		s.Highs = append(s.Highs, r.High)
		s.Lows = append(s.Lows, r.Low)
	}
	return s
}

// SummarizeWeather computes the extremes and date span of a series.
// An empty series yields only Count=0 and LoadedAt.
func SummarizeWeather(s WeatherSeries) WeatherSummary {
	sum := WeatherSummary{Count: s.Len(), LoadedAt: clock.Now()}
	if s.Len() == 0 {
		return sum
	}

	sum.First, sum.Last = s.Dates[0], s.Dates[0]
	sum.MaxHigh, sum.MinLow = s.Highs[0], s.Lows[0]
	for i := range s.Dates {
		if s.Dates[i].Before(sum.First) {
			sum.First = s.Dates[i]
		}
		if s.Dates[i].After(sum.Last) {
			sum.Last = s.Dates[i]
		}
		sum.MaxHigh = max(sum.MaxHigh, s.Highs[i])
		sum.MinLow = min(sum.MinLow, s.Lows[i])
	}
	return sum
}
