package plot

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
)

// areaSeries draws a closed polygon through its points, filled with
// Style.FillColor and outlined with Style.StrokeColor when StrokeWidth > 0.
// It covers what go-chart's built-in series do not: a band between two lines
// and the outline of a projected globe.
type areaSeries struct {
	Name  string
	Style chart.Style
	Xs    []float64
	Ys    []float64
}

var (
	_ chart.Series         = areaSeries{}
	_ chart.ValuesProvider = areaSeries{}
)

// bandBetween builds the polygon enclosed by upper and lower over xs: along
// upper left to right, then back along lower.
func bandBetween(name string, style chart.Style, xs, upper, lower []float64) areaSeries {
	n := len(xs)
	a := areaSeries{Name: name, Style: style, Xs: make([]float64, 0, 2*n), Ys: make([]float64, 0, 2*n)}
	for i := 0; i < n; i++ {
		a.Xs = append(a.Xs, xs[i])
		a.Ys = append(a.Ys, upper[i])
	}
	for i := n - 1; i >= 0; i-- {
		a.Xs = append(a.Xs, xs[i])
		a.Ys = append(a.Ys, lower[i])
	}
	return a
}

func (a areaSeries) GetName() string { return a.Name }
func (a areaSeries) GetStyle() chart.Style { return a.Style }
func (a areaSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (a areaSeries) Len() int { return len(a.Xs) }
func (a areaSeries) GetValues(i int) (x, y float64) { return a.Xs[i], a.Ys[i] }

func (a areaSeries) Validate() error {
	if len(a.Xs) != len(a.Ys) {
		return fmt.Errorf("area series %q: %d x values but %d y values", a.Name, len(a.Xs), len(a.Ys))
	}
	if len(a.Xs) < 3 {
		return fmt.Errorf("area series %q: need at least 3 points, got %d", a.Name, len(a.Xs))
	}
	return nil
}

func (a areaSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(a.Xs) == 0 {
		return
	}

	px := func(i int) (int, int) {
		return canvasBox.Left + xrange.Translate(a.Xs[i]), canvasBox.Bottom - yrange.Translate(a.Ys[i])
	}

	trace := func() {
		x, y := px(0)
		r.MoveTo(x, y)
		for i := 1; i < len(a.Xs); i++ {
			x, y = px(i)
			r.LineTo(x, y)
		}
		r.Close()
	}

	if !a.Style.FillColor.IsZero() {
		r.SetFillColor(a.Style.FillColor)
		trace()
		r.Fill()
	}
	if a.Style.StrokeWidth > 0 && !a.Style.StrokeColor.IsZero() {
		r.SetStrokeColor(a.Style.StrokeColor)
		r.SetStrokeWidth(a.Style.StrokeWidth)
		trace()
		r.Stroke()
	}
}
