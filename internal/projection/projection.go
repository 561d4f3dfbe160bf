// Package projection maps longitude/latitude pairs onto a flat map.
//
// Inputs are degrees; outputs are in the projection's native units (radians
// of arc at the equator), so an equirectangular world spans x in [-π, π] and
// y in [-π/2, π/2].
package projection

import "math"

// Projection converts a longitude/latitude pair in degrees to map coordinates.
type Projection func(lon, lat float64) (x, y float64)

// NaturalEarth is the Natural Earth I pseudocylindrical projection, using the
// polynomial fit published by Šavrič, Jenny, Patterson, Petrovič and Hurni
// (2011). The world spans roughly x in [-2.7354, 2.7354], y in [-1.4224, 1.4224].
func NaturalEarth(lon, lat float64) (float64, float64) {
	lambda := lon * math.Pi / 180
	phi := lat * math.Pi / 180
	phi2 := phi * phi
	phi4 := phi2 * phi2

	x := lambda * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
	y := phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
	return x, y
}

// Equirectangular maps degrees straight to radians.
func Equirectangular(lon, lat float64) (float64, float64) {
	return lon * math.Pi / 180, lat * math.Pi / 180
}

// Line is a projected polyline.
type Line struct {
	Xs []float64
	Ys []float64
}

// Bounds returns the projected extent of the whole globe.
func Bounds(p Projection) (minX, maxX, minY, maxY float64) {
	maxX, _ = p(180, 0)
	_, maxY = p(0, 90)
	return -maxX, maxX, -maxY, maxY
}

// Outline traces the edge of the projected globe as a closed ring, walking
// the west meridian north, the north pole east, the east meridian south and
// the south pole west. steps is the number of samples per side.
func Outline(p Projection, steps int) Line {
	steps = max(steps, 1)
	var l Line
	add := func(lon, lat float64) {
		x, y := p(lon, lat)
		l.Xs = append(l.Xs, x)
		l.Ys = append(l.Ys, y)
	}

	for i := range steps {
		add(-180, -90+180*float64(i)/float64(steps))
	}
	for i := range steps {
		add(-180+360*float64(i)/float64(steps), 90)
	}
	for i := range steps {
		add(180, 90-180*float64(i)/float64(steps))
	}
	for i := range steps {
		add(180-360*float64(i)/float64(steps), -90)
	}
	add(-180, -90)
	return l
}

// Graticule returns meridians and parallels every stepDeg degrees, excluding
// the globe edge that Outline already draws.
func Graticule(p Projection, stepDeg int) []Line {
	if stepDeg <= 0 {
		return nil
	}
	const samples = 90

	var lines []Line
	for lon := -180 + stepDeg; lon < 180; lon += stepDeg {
		var l Line
		for i := 0; i <= samples; i++ {
			x, y := p(float64(lon), -90+180*float64(i)/samples)
			l.Xs = append(l.Xs, x)
			l.Ys = append(l.Ys, y)
		}
		lines = append(lines, l)
	}
	for lat := -90 + stepDeg; lat < 90; lat += stepDeg {
		var l Line
		for i := 0; i <= samples; i++ {
			x, y := p(-180+360*float64(i)/samples, float64(lat))
			l.Xs = append(l.Xs, x)
			l.Ys = append(l.Ys, y)
		}
		lines = append(lines, l)
	}
	return lines
}
