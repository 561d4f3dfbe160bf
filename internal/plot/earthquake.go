package plot

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/couchcryptid/weather-charts/internal/domain"
	"github.com/couchcryptid/weather-charts/internal/projection"
)

var (
	oceanColor = drawing.Color{R: 229, G: 236, B: 246, A: 255}
	edgeColor  = drawing.Color{R: 68, G: 68, B: 68, A: 255}
	gridColor  = drawing.Color{R: 255, G: 255, B: 255, A: 255}
)

const (
	defaultDotWidth = 4
	outlineSteps    = 90
	graticuleStep   = 30
	mapMargin       = 0.05
)

// MapOptions configures the earthquake world map.
type MapOptions struct {
	Title      string
	Width      int
	Height     int
	DotWidth   float64               // 0 uses 4
	Projection projection.Projection // nil uses projection.NaturalEarth
}

func (o MapOptions) proj() projection.Projection {
	if o.Projection == nil {
		return projection.NaturalEarth
	}
	return o.Projection
}

// MagnitudeColor maps m onto the Viridis scale between lo and hi. A
// degenerate range maps everything to the low end of the scale.
func MagnitudeColor(m, lo, hi float64) drawing.Color {
	if hi <= lo {
		return chart.Viridis(0, 0, 1)
	}
	m = min(max(m, lo), hi)
	return chart.Viridis(m, lo, hi)
}

// EarthquakeMap builds a scatter of events on a projected globe. Each dot is
// colored by magnitude on the Viridis scale spanning the series' own range.
func EarthquakeMap(s domain.EarthquakeSeries, opts MapOptions) (chart.Chart, error) {
	if s.Len() == 0 {
		return chart.Chart{}, ErrNoData
	}
	proj := opts.proj()

	xs := make([]float64, s.Len())
	ys := make([]float64, s.Len())
	for i := range s.Lons {
		xs[i], ys[i] = proj(s.Lons[i], s.Lats[i])
	}

	sum := domain.SummarizeEarthquakes(s)
	mags := s.Mags
	dot := opts.DotWidth
	if dot <= 0 {
		dot = defaultDotWidth
	}

	outline := projection.Outline(proj, outlineSteps)
	series := []chart.Series{
		areaSeries{
			Name:  "Globe",
			Style: chart.Style{FillColor: oceanColor, StrokeColor: edgeColor, StrokeWidth: 1},
			Xs:    outline.Xs,
			Ys:    outline.Ys,
		},
	}
	for i, l := range projection.Graticule(proj, graticuleStep) {
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("Graticule %d", i),
			XValues: l.Xs,
			YValues: l.Ys,
			Style:   chart.Style{StrokeColor: gridColor, StrokeWidth: 1},
		})
	}
	series = append(series, chart.ContinuousSeries{
		Name:    "Earthquakes",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    dot,
			DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
				return MagnitudeColor(mags[index], sum.MinMagnitude, sum.MaxMagnitude)
			},
		},
	})

	minX, maxX, minY, maxY := projection.Bounds(proj)
	mx := (maxX - minX) * mapMargin
	my := (maxY - minY) * mapMargin

	return chart.Chart{
		Title:      opts.Title,
		TitleStyle: chart.Style{FontSize: titleFontSize},
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 60, Left: 10, Right: 10, Bottom: 10}},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: minX - mx, Max: maxX + mx},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: minY - my, Max: maxY + my},
		},
		Series: series,
	}, nil
}

// RenderMap builds and encodes the earthquake map to w.
func RenderMap(w io.Writer, f Format, s domain.EarthquakeSeries, opts MapOptions) error {
	c, err := EarthquakeMap(s, opts)
	if err != nil {
		return err
	}
	return Render(w, f, c)
}
