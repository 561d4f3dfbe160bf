// Package mockdata generates deterministic stand-ins for the NOAA CDO weather
// exports and the USGS earthquake feed, laid out exactly as the chart tools
// read them.
package mockdata

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-charts/internal/config"
	"github.com/couchcryptid/weather-charts/internal/domain"
)

var (
	firstDay = time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	// GeneratedAt stamps the feed metadata and anchors event times.
	GeneratedAt = time.Date(2021, time.August, 1, 6, 0, 0, 0, time.UTC)
)

// station describes one mock weather series: a yearly sinusoid around mean
// with the given amplitude and a fixed spread between high and low.
type station struct {
	name      string
	id        string
	label     string
	file      string
	header    []string
	layout    domain.ColumnLayout
	mean, amp float64
	spread    float64
	gapEvery  int // every n-th day loses a reading; 0 for none
}

var stations = []station{
	{
		name:   "Sitka",
		id:     "USW00025333",
		label:  "SITKA AIRPORT, AK US",
		file:   config.SitkaFile,
		header: []string{"STATION", "NAME", "DATE", "TAVG", "TMAX", "TMIN"},
		layout: domain.SitkaLayout,
		mean:   48, amp: 12, spread: 9,
	},
	{
		name:   "Death Valley",
		id:     "USC00042319",
		label:  "DEATH VALLEY NATIONAL PARK, CA US",
		file:   config.DeathValleyFile,
		header: []string{"STATION", "NAME", "DATE", "TMAX", "TMIN", "TOBS"},
		layout: domain.DeathValleyLayout,
		mean:   92, amp: 26, spread: 25,
		gapEvery: 61,
	},
}

// Options controls what Generate writes and where.
type Options struct {
	WeatherDir    string
	EarthquakeDir string
	Days          int
	Quakes        int
	Seed          uint64
}

// Dataset is one generated weather CSV.
type Dataset struct {
	Name   string
	Path   string
	Layout domain.ColumnLayout
	Header []string
	Rows   [][]string
}

// Result lists everything Generate wrote.
type Result struct {
	Weather  []Dataset
	FeedPath string
	Feed     []byte
}

// Generate writes the Sitka and Death Valley CSVs under WeatherDir and the
// GeoJSON feed under EarthquakeDir, using the tools' default file names.
// Death Valley loses a high or low every 61 days; the middle feature of the
// feed has a null magnitude. The same seed always yields the same bytes.
func Generate(opts Options) (*Result, error) {
	if opts.Days <= 0 || opts.Quakes <= 0 {
		return nil, errors.New("days and quakes must be positive")
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	res := &Result{}
	for _, st := range stations {
		ds := Dataset{
			Name:   st.name,
			Path:   filepath.Join(opts.WeatherDir, st.file),
			Layout: st.layout,
			Header: st.header,
			Rows:   st.rows(rng, opts.Days),
		}
		if err := writeCSV(ds.Path, ds.Header, ds.Rows); err != nil {
			return nil, fmt.Errorf("write %s: %w", st.file, err)
		}
		res.Weather = append(res.Weather, ds)
	}

	feed, err := earthquakeFeed(rng, opts.Quakes)
	if err != nil {
		return nil, fmt.Errorf("build feed: %w", err)
	}
	res.Feed = feed
	res.FeedPath = filepath.Join(opts.EarthquakeDir, config.EarthquakeFile)
	if err := writeFile(res.FeedPath, feed); err != nil {
		return nil, fmt.Errorf("write feed: %w", err)
	}
	return res, nil
}

func (s station) rows(rng *rand.Rand, days int) [][]string {
	rows := make([][]string, 0, days)
	for d := range days {
		date := firstDay.AddDate(0, 0, d)
		// Coldest around mid January.
		season := -math.Cos(2 * math.Pi * float64(d-15) / 365)
		high := int(math.Round(s.mean + s.amp*season + s.spread/2 + rng.NormFloat64()*3))
		low := int(math.Round(float64(high) - s.spread + rng.NormFloat64()*2))

		hs, ls := strconv.Itoa(high), strconv.Itoa(low)
		if s.gapEvery > 0 && d > 0 && d%s.gapEvery == 0 {
			// Alternate which reading goes missing.
			if (d/s.gapEvery)%2 == 1 {
				hs = ""
			} else {
				ls = ""
			}
		}

		row := make([]string, len(s.header))
		row[0], row[1], row[2] = s.id, s.label, date.Format(domain.DateLayout)
		row[s.layout.High], row[s.layout.Low] = hs, ls
		for i, name := range s.header {
			if name == "TOBS" {
				row[i] = strconv.Itoa((high + low) / 2)
			}
		}
		rows = append(rows, row)
	}
	return rows
}

type feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   geometry       `json:"geometry"`
	ID         string         `json:"id"`
}

type geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Rough epicenter clusters along plate boundaries: lon, lat, spread in degrees.
var regions = []struct {
	place    string
	lon, lat float64
	spread   float64
}{
	{"Alaska", -150, 61, 4},
	{"CA", -118, 35, 3},
	{"Japan", 141, 37, 4},
	{"Indonesia", 120, -4, 6},
	{"Chile", -71, -30, 5},
	{"Tonga", -175, -20, 4},
	{"Greece", 23, 38, 3},
}

func earthquakeFeed(rng *rand.Rand, n int) ([]byte, error) {
	features := make([]feature, 0, n)
	for i := range n {
		r := regions[rng.IntN(len(regions))]
		lon := clamp(r.lon+rng.NormFloat64()*r.spread, -180, 180)
		lat := clamp(r.lat+rng.NormFloat64()*r.spread, -89, 89)
		mag := math.Round((0.8+rng.ExpFloat64()*1.1)*100) / 100
		km := 1 + rng.IntN(80)

		props := map[string]any{
			"mag":   mag,
			"place": fmt.Sprintf("%d km of %s", km, r.place),
			"time":  GeneratedAt.Add(-time.Duration(rng.Int64N(int64(30 * 24 * time.Hour)))).UnixMilli(),
			"type":  "earthquake",
			"title": fmt.Sprintf("M %.1f - %d km of %s", mag, km, r.place),
		}
		if i == n/2 {
			props["mag"] = nil
		}

		features = append(features, feature{
			Type:       "Feature",
			Properties: props,
			Geometry:   geometry{Type: "Point", Coordinates: []float64{round4(lon), round4(lat), round4(rng.Float64() * 60)}},
			ID:         fmt.Sprintf("mock%05d", i),
		})
	}

	return json.Marshal(map[string]any{
		"type": "FeatureCollection",
		"metadata": map[string]any{
			"generated": GeneratedAt.UnixMilli(),
			"title":     "USGS Magnitude 1.0+ Earthquakes, Past Month",
			"count":     n,
		},
		"features": features,
	})
}

func clamp(v, lo, hi float64) float64 { return min(max(v, lo), hi) }
func round4(v float64) float64        { return math.Round(v*1e4) / 1e4 }

func writeCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o600)
}
