package plot

import (
	"bytes"
	"cmp"
	"embed"
	"fmt"
	"html/template"
	"io"
	"slices"
	"time"

	"github.com/couchcryptid/weather-charts/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var mapTemplate = template.Must(template.ParseFS(templateFS, "templates/map.html.tmpl"))

// scaleStops is the number of gradient stops in the magnitude color bar.
const scaleStops = 11

type mapPage struct {
	Title       string
	SVG         template.HTML
	Summary     domain.EarthquakeSummary
	Scale       []scaleStop
	Events      []mapEvent
	GeneratedAt string
}

type scaleStop struct {
	Offset int // percent
	Color  string
}

type mapEvent struct {
	Title     string
	Magnitude float64
	Lon       float64
	Lat       float64
	Color     string
}

// WriteMapHTML renders the map as inline SVG inside a standalone HTML page,
// with a "Magnitude" color bar and a table of every event's title,
// magnitude, and coordinates ordered by magnitude, strongest first.
func WriteMapHTML(w io.Writer, s domain.EarthquakeSeries, summary domain.EarthquakeSummary, opts MapOptions) error {
	var svg bytes.Buffer
	if err := RenderMap(&svg, FormatSVG, s, opts); err != nil {
		return err
	}

	page := mapPage{
		Title:       opts.Title,
		SVG:         template.HTML(svg.String()), //nolint:gosec // chart renderer output
		Summary:     summary,
		GeneratedAt: summary.LoadedAt.UTC().Format(time.RFC3339),
	}

	for i := range scaleStops {
		frac := float64(i) / float64(scaleStops-1)
		c := MagnitudeColor(frac, 0, 1)
		page.Scale = append(page.Scale, scaleStop{Offset: int(frac * 100), Color: cssColor(c.R, c.G, c.B)})
	}

	page.Events = make([]mapEvent, s.Len())
	for i := range s.Mags {
		c := MagnitudeColor(s.Mags[i], summary.MinMagnitude, summary.MaxMagnitude)
		page.Events[i] = mapEvent{
			Title:     s.Titles[i],
			Magnitude: s.Mags[i],
			Lon:       s.Lons[i],
			Lat:       s.Lats[i],
			Color:     cssColor(c.R, c.G, c.B),
		}
	}
	slices.SortStableFunc(page.Events, func(a, b mapEvent) int {
		return cmp.Compare(b.Magnitude, a.Magnitude)
	})

	if err := mapTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("execute map template: %w", err)
	}
	return nil
}

// SaveMapHTML writes the HTML map page to path.
func SaveMapHTML(path string, s domain.EarthquakeSeries, summary domain.EarthquakeSummary, opts MapOptions) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteMapHTML(w, s, summary, opts)
	})
}

func cssColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
