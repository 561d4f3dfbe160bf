// Command validate checks dataset files before they are charted: CSV header
// layout, integer coercion of temperature columns, how many rows the
// skip-on-missing rule will drop, and that the indented GeoJSON copy carries
// the same events as the raw feed.
//
// Usage:
//
//	go run ./cmd/validate -weather-dir weather_data -eq-dir eq_data
package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/couchcryptid/weather-charts/internal/adapter/geojson"
	"github.com/couchcryptid/weather-charts/internal/config"
	"github.com/couchcryptid/weather-charts/internal/domain"
)

// weatherSpec ties a dataset file to its column layout and expected headers.
type weatherSpec struct {
	name          string
	file          string
	layout        domain.ColumnLayout
	skipMalformed bool
}

var weatherSpecs = []weatherSpec{
	{name: "Sitka", file: config.SitkaFile, layout: domain.SitkaLayout},
	{name: "Death Valley", file: config.DeathValleyFile, layout: domain.DeathValleyLayout, skipMalformed: true},
}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	weatherDir := flag.String("weather-dir", "weather_data", "directory containing weather CSV files")
	eqDir := flag.String("eq-dir", "eq_data", "directory containing the GeoJSON feed")
	flag.Parse()

	if code := run(*weatherDir, *eqDir); code != 0 {
		os.Exit(code)
	}
}

func run(weatherDir, eqDir string) int {
	fmt.Println("=== Dataset Integrity Validation ===")
	fmt.Println()

	var phases []*phase
	var totalRows, totalSkipped int
	for _, s := range weatherSpecs {
		path := filepath.Join(weatherDir, s.file)
		header, rows, err := loadCSV(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load %s CSV: %v\n", s.name, err)
			return 1
		}
		phases = append(phases, validateHeader(s, header))
		p, skipped := validateRows(s, rows)
		phases = append(phases, p)
		totalRows += len(rows)
		totalSkipped += skipped
	}

	feed, err := geojson.Load(filepath.Join(eqDir, config.EarthquakeFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load GeoJSON feed: %v\n", err)
		return 1
	}
	phases = append(phases, validateFeatures(feed), validateReadableRoundTrip(feed))

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d weather rows (%d to skip), %d features\n",
		totalRows, totalSkipped, len(gjson.GetBytes(feed, "features").Array()))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

type csvRow struct {
	lineNum int
	fields  []string
}

func loadCSV(path string) ([]string, []csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(all) < 2 {
		return nil, nil, fmt.Errorf("no data rows in %s", path)
	}

	rows := make([]csvRow, 0, len(all)-1)
	for i, row := range all[1:] {
		rows = append(rows, csvRow{lineNum: i + 2, fields: row})
	}
	return all[0], rows, nil
}

// ── Phases ──

// validateHeader checks that the date, high, and low columns sit where the
// layout expects them.
func validateHeader(s weatherSpec, header []string) *phase {
	p := &phase{name: s.name + " header layout"}
	want := map[int]string{s.layout.Date: "DATE", s.layout.High: "TMAX", s.layout.Low: "TMIN"}
	for idx, name := range want {
		if idx >= len(header) {
			p.errorf("column %d (%s) missing: header has %d columns", idx, name, len(header))
			continue
		}
		if got := strings.TrimSpace(header[idx]); got != name {
			p.errorf("column %d: want %s, got %q", idx, name, got)
		}
	}
	return p
}

// validateRows parses every row with the layout and checks that the parsed
// temperatures equal the integer value of their source cells. Numeric
// failures are counted as skips when the dataset allows them.
func validateRows(s weatherSpec, rows []csvRow) (*phase, int) {
	p := &phase{name: s.name + " row coercion"}
	skipped := 0
	for _, row := range rows {
		rec, err := domain.ParseWeatherRow(row.fields, s.layout)
		if err != nil {
			if s.skipMalformed && domain.IsSkippable(err) {
				skipped++
				continue
			}
			p.errorf("line %d: %v", row.lineNum, err)
			continue
		}

		for _, c := range []struct {
			col int
			got int
		}{{s.layout.High, rec.High}, {s.layout.Low, rec.Low}} {
			want, err := strconv.Atoi(strings.TrimSpace(row.fields[c.col]))
			if err != nil || want != c.got {
				p.errorf("line %d column %d: parsed %d from %q", row.lineNum, c.col, c.got, row.fields[c.col])
			}
		}
	}
	if skipped == len(rows) {
		p.errorf("every row would be skipped")
	}
	fmt.Printf("%s: %d rows, %d skipped, %d plotted\n", s.name, len(rows), skipped, len(rows)-skipped)
	return p, skipped
}

// validateFeatures checks that the feed has features and that at least one
// of them yields a plottable event.
func validateFeatures(feed []byte) *phase {
	p := &phase{name: "GeoJSON features"}
	features := gjson.GetBytes(feed, "features")
	if !features.IsArray() {
		p.errorf("%v", domain.ErrNoFeatures)
		return p
	}

	plotted, skipped := 0, 0
	for i, f := range features.Array() {
		_, err := domain.ParseFeature(f)
		switch {
		case err == nil:
			plotted++
		case domain.IsSkippable(err):
			skipped++
		default:
			p.errorf("feature %d: %v", i, err)
		}
	}
	if plotted == 0 {
		p.errorf("no feature has a numeric magnitude and coordinates")
	}
	fmt.Printf("Earthquakes: %d features, %d skipped, %d plotted\n", plotted+skipped, skipped, plotted)
	return p
}

// validateReadableRoundTrip indents the feed the way eq-world-map does and
// checks every event survives unchanged.
func validateReadableRoundTrip(feed []byte) *phase {
	p := &phase{name: "GeoJSON readable round trip"}
	readable := geojson.Pretty(feed)
	if !gjson.ValidBytes(readable) {
		p.errorf("indented copy is not valid JSON")
		return p
	}

	orig := gjson.GetBytes(feed, "features").Array()
	copied := gjson.GetBytes(readable, "features").Array()
	if len(orig) != len(copied) {
		p.errorf("feature count: raw %d, readable %d", len(orig), len(copied))
		return p
	}
	for i := range orig {
		a, errA := domain.ParseFeature(orig[i])
		b, errB := domain.ParseFeature(copied[i])
		if (errA == nil) != (errB == nil) || (errA != nil && !errors.Is(errB, domain.ErrInvalidNumber)) {
			p.errorf("feature %d: raw err %v, readable err %v", i, errA, errB)
			continue
		}
		if a != b {
			p.errorf("feature %d: raw %+v, readable %+v", i, a, b)
		}
	}
	return p
}
