// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package thermistor converts voltage readings from an NTC thermistor in a
// voltage divider into temperature using the Steinhart-Hart equation.
//
// The equation is fitted to three calibration points taken from the
// thermistor datasheet, each the natural log of the resistance and the
// inverse of the temperature at that resistance. The fit is performed once
// when the converter is created.
package thermistor

import "math"

// Point is one calibration point on the thermistor curve.
type Point struct {
	// LogR is the natural log of the thermistor resistance in ohms.
	LogR float64
	// InvT is the inverse of the temperature at that resistance.
	// The unit of temperature used here sets the unit the converter
	// returns.
	InvT float64
}

// Config describes the thermistor and the divider subcircuit it is read
// through.
type Config struct {
	// Bias is the divider bias resistance in ohms.
	Bias float64
	// Supply is the divider feed voltage in volts.
	Supply float64
	// Points are the calibration points the curve is fitted to.
	Points [3]Point
}

// DefaultConfig returns the configuration for a B57891M103 thermistor with
// a 10k bias resistor fed from 3.3V.
//
// The calibration points are taken at -55C, 25C and 155C, so temperatures
// are returned in Celsius. The fit misbehaves towards the cold end of that
// span, where the inverse temperature crosses zero, and would benefit from
// recalibration in Kelvin.
func DefaultConfig() Config {
	return Config{
		Bias:   10000,
		Supply: 3.3,
		Points: [3]Point{
			{LogR: 13.69, InvT: -0.01818},
			{LogR: 9.21, InvT: 0.04},
			{LogR: 5.125, InvT: 0.006451},
		},
	}
}

// Coefficients fits the Steinhart-Hart coefficients to three calibration
// points.
func Coefficients(pts [3]Point) (a, b, c float64) {
	g2 := (pts[1].InvT - pts[0].InvT) / (pts[1].LogR - pts[0].LogR)
	g3 := (pts[2].InvT - pts[0].InvT) / (pts[2].LogR - pts[0].LogR)
	c = ((g3 - g2) / (pts[2].LogR - pts[1].LogR)) / (pts[0].LogR + pts[1].LogR + pts[2].LogR)
	b = g2 - c*(pts[0].LogR*pts[0].LogR+pts[0].LogR*pts[1].LogR+pts[1].LogR*pts[1].LogR)
	a = pts[0].InvT - pts[0].LogR*(b+pts[0].LogR*pts[0].LogR*c)
	return a, b, c
}

// Converter converts divider voltages to display values.
type Converter struct {
	bias    float64
	supply  float64
	a, b, c float64
}

// New creates a Converter with the coefficients fitted to the configured
// calibration points.
func New(cfg Config) *Converter {
	a, b, c := Coefficients(cfg.Points)
	return &Converter{
		bias:   cfg.Bias,
		supply: cfg.Supply,
		a:      a,
		b:      b,
		c:      c,
	}
}

// Resistance returns the thermistor resistance in ohms for a divider
// reading in millivolts.
//
// Readings at or beyond the supply voltage do not correspond to a physical
// divider state and return an infinite or negative resistance.
func (cv *Converter) Resistance(mv float64) float64 {
	v := mv / 1000
	return cv.bias * v / (cv.supply - v)
}

// Temperature returns the temperature in hundredths of a degree for a
// divider reading in millivolts, truncated toward zero.
//
// Readings outside the divider range produce meaningless values, as the
// curve is only defined for positive resistance. Callers are expected to
// keep the subcircuit within range.
func (cv *Converter) Temperature(mv float64) int {
	lr := math.Log(cv.Resistance(mv))
	t := 1 / (cv.a + cv.b*lr + cv.c*lr*lr*lr)
	return int(t * 100)
}

// Millivolts returns the reading truncated to whole millivolts.
//
// This is the pass-through used when the display shows the raw voltage
// rather than temperature.
func (cv *Converter) Millivolts(mv float64) int {
	return int(mv)
}
