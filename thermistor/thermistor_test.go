// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package thermistor_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/tempmon/thermistor"
)

func TestCoefficients(t *testing.T) {
	a, b, c := thermistor.Coefficients(thermistor.DefaultConfig().Points)
	assert.InDelta(t, -0.09539784770490309, a, 1e-14)
	assert.InDelta(t, 0.022192673667604357, b, 1e-14)
	assert.InDelta(t, -8.83180116203109e-05, c, 1e-17)
}

func TestResistance(t *testing.T) {
	cv := thermistor.New(thermistor.DefaultConfig())
	patterns := []struct {
		mv   float64
		ohms float64
	}{
		{888, 3681.592},
		{592, 2186.115},
		{1650, 10000},
		{300, 1000},
		{100, 312.5},
	}
	for _, p := range patterns {
		p := p
		t.Run(fmt.Sprintf("%.0fmV", p.mv), func(t *testing.T) {
			assert.InDelta(t, p.ohms, cv.Resistance(p.mv), 0.001)
		})
	}
}

func TestTemperature(t *testing.T) {
	cv := thermistor.New(thermistor.DefaultConfig())
	patterns := []struct {
		mv    float64
		centi int
	}{
		{888, 2636},
		{592, 2849},
		{1650, 2500},
		{1000, 2591},
		{300, 3473},
		{100, 6515},
	}
	for _, p := range patterns {
		p := p
		t.Run(fmt.Sprintf("%.0fmV", p.mv), func(t *testing.T) {
			assert.Equal(t, p.centi, cv.Temperature(p.mv))
		})
	}
}

// The temperature must fall as the divider voltage, and so the thermistor
// resistance, rises across the hot half of the calibrated span.
func TestTemperatureMonotonic(t *testing.T) {
	cv := thermistor.New(thermistor.DefaultConfig())
	prev := cv.Temperature(100)
	for mv := 150.0; mv <= 1600; mv += 50 {
		cur := cv.Temperature(mv)
		assert.LessOrEqual(t, cur, prev, "at %.0fmV", mv)
		prev = cur
	}
	assert.Less(t, prev, cv.Temperature(100))
}

func TestTemperatureOutOfRange(t *testing.T) {
	cv := thermistor.New(thermistor.DefaultConfig())
	// at the supply rail the divider solution is singular
	assert.True(t, math.IsInf(cv.Resistance(3300), 1))
	// beyond the rail the solution is non-physical
	assert.Less(t, cv.Resistance(3400), 0.0)
	assert.NotPanics(t, func() {
		cv.Temperature(3300)
		cv.Temperature(3400)
		cv.Temperature(0)
	})
}

func TestMillivolts(t *testing.T) {
	cv := thermistor.New(thermistor.DefaultConfig())
	patterns := []struct {
		mv   float64
		want int
	}{
		{888, 888},
		{592, 592},
		{3028.08, 3028},
		{0.9, 0},
	}
	for _, p := range patterns {
		p := p
		t.Run(fmt.Sprintf("%vmV", p.mv), func(t *testing.T) {
			assert.Equal(t, p.want, cv.Millivolts(p.mv))
		})
	}
}
