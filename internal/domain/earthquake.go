package domain

import (
	"time"

	"github.com/tidwall/gjson"
)

// gjson paths into a single GeoJSON feature.
const (
	pathMag   = "properties.mag"
	pathTitle = "properties.title"
	pathLon   = "geometry.coordinates.0"
	pathLat   = "geometry.coordinates.1"
)

// Earthquake is one feature of a USGS GeoJSON feed.
type Earthquake struct {
	Magnitude float64
	Lon       float64
	Lat       float64
	Title     string
}

// EarthquakeSeries holds parallel magnitude, coordinate, and title sequences.
type EarthquakeSeries struct {
	Mags   []float64
	Lons   []float64
	Lats   []float64
	Titles []string
}

// Len returns the number of events in the series.
func (s EarthquakeSeries) Len() int { return len(s.Mags) }

// EarthquakeSummary describes a loaded earthquake series.
type EarthquakeSummary struct {
	Count        int
	MinMagnitude float64
	MaxMagnitude float64
	Strongest    string // title of the largest-magnitude event
	LoadedAt     time.Time
}

// ParseFeature reads magnitude, longitude, latitude, and title from one
// element of a "features" array. A missing or non-numeric magnitude or
// coordinate wraps ErrInvalidNumber. A missing title is left empty.
func ParseFeature(feature gjson.Result) (Earthquake, error) {
	mag, err := numberAt(feature, pathMag)
	if err != nil {
		return Earthquake{}, err
	}
	lon, err := numberAt(feature, pathLon)
	if err != nil {
		return Earthquake{}, err
	}
	lat, err := numberAt(feature, pathLat)
	if err != nil {
		return Earthquake{}, err
	}

	return Earthquake{
		Magnitude: mag,
		Lon:       lon,
		Lat:       lat,
		Title:     feature.Get(pathTitle).String(),
	}, nil
}

func numberAt(feature gjson.Result, path string) (float64, error) {
	v := feature.Get(path)
	if v.Type != gjson.Number {
		return 0, &FieldError{Column: -1, Field: path, Value: v.Raw, Err: ErrInvalidNumber}
	}
	return v.Float(), nil
}

// NewEarthquakeSeries splits events into parallel sequences, preserving order.
func NewEarthquakeSeries(events []Earthquake) EarthquakeSeries {
	s := EarthquakeSeries{
		Mags:   make([]float64, 0, len(events)),
		Lons:   make([]float64, 0, len(events)),
		Lats:   make([]float64, 0, len(events)),
		Titles: make([]string, 0, len(events)),
	}
	for _, e := range events {
		s.Mags = append(s.Mags, e.Magnitude)
		s.Lons = append(s.Lons, e.Lon)
		s.Lats = append(s.Lats, e.Lat)
		s.Titles = append(s.Titles, e.Title)
	}
	return s
}

// SummarizeEarthquakes finds the magnitude range and the strongest event.
// Ties keep the earliest event in feed order.
func SummarizeEarthquakes(s EarthquakeSeries) EarthquakeSummary {
	sum := EarthquakeSummary{Count: s.Len(), LoadedAt: clock.Now()}
	if s.Len() == 0 {
		return sum
	}

	sum.MinMagnitude, sum.MaxMagnitude = s.Mags[0], s.Mags[0]
	sum.Strongest = s.Titles[0]
	for i, m := range s.Mags {
		if m < sum.MinMagnitude {
			sum.MinMagnitude = m
		}
		if m > sum.MaxMagnitude {
			sum.MaxMagnitude = m
			sum.Strongest = s.Titles[i]
		}
	}
	return sum
}
