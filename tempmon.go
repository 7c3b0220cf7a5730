// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//
//
// Package tempmon implements a two channel analog temperature monitor with
// a four digit seven segment readout.
//
// The monitor polls a thermistor on the primary ADC channel against a
// threshold set by a potentiometer on the second channel, and sounds a
// buzzer while the threshold is exceeded. A single button cycles the
// readout between the thermistor, the threshold setting, and off.
// Readings are shown either as millivolts or as hundredths of a degree
// Celsius.
//
// Example of use:
//
//	h := rpi.NewHAL(rpi.DefaultHALConfig())
//	m := tempmon.New(h, tempmon.DefaultConfig())
//	m.Run(ctx)
//
// All hardware access goes through the HAL interface, so the monitor runs
// unchanged on the Raspberry Pi backend in the rpi package, on a TinyGo
// target, or against the Mock.
package tempmon

import (
	"context"

	"github.com/warthog618/tempmon/sevenseg"
	"github.com/warthog618/tempmon/thermistor"
)

// Mode is the readout selected by the mode button.
type Mode uint8

const (
	// ModeThermistor displays the primary channel and runs the alarm.
	ModeThermistor Mode = iota
	// ModePotentiometer displays the threshold channel.
	ModePotentiometer
	// ModeOff blanks the display and skips sampling.
	ModeOff
)

func (m Mode) String() string {
	switch m {
	case ModeThermistor:
		return "thermistor"
	case ModePotentiometer:
		return "potentiometer"
	case ModeOff:
		return "off"
	default:
		return "unknown"
	}
}

// Monitor runs the acquisition, alarm and display loop.
//
// The loop is single threaded and blocking, as the display must be
// rewritten continuously to appear steady.
type Monitor struct {
	hal       HAL
	cfg       Config
	conv      *thermistor.Converter
	display   *sevenseg.Display
	sampler   *Sampler
	alarm     *Alarm
	presses   uint
	buzzCount int
}

// New creates a Monitor over the given hardware.
func New(hal HAL, cfg Config) *Monitor {
	return &Monitor{
		hal:     hal,
		cfg:     cfg,
		conv:    thermistor.New(cfg.Thermistor),
		display: sevenseg.New(hal, cfg.InterDigitCycles),
		sampler: NewSampler(hal),
		alarm:   NewAlarm(hal, cfg),
	}
}

// Mode returns the readout selected by the button presses so far.
// Modes cycle in declaration order.
func (m *Monitor) Mode() Mode {
	return Mode(m.presses % 3)
}

// Presses returns the number of button presses seen.
func (m *Monitor) Presses() uint {
	return m.presses
}

// Step runs one pass of the monitor loop: button sense and debounce,
// acquisition, alarm, and one display refresh.
func (m *Monitor) Step() {
	pressed := !m.hal.ReadButtonPin()
	if pressed {
		m.presses++
	}
	// a press counts once, held or bouncing reads just spin here
	for pressed {
		m.hal.DelayCycles(m.cfg.WaitCycles)
		pressed = !m.hal.ReadButtonPin()
	}
	repeat := int(float64(m.cfg.WaitCycles) * 0.4)
	if m.Mode() == ModeOff {
		m.display.RenderBlank(repeat)
		return
	}
	primary, threshold := m.sampler.Sample()
	if m.Mode() == ModePotentiometer {
		m.show(threshold, repeat)
		return
	}
	_, m.buzzCount = m.alarm.Update(primary, threshold, m.buzzCount)
	m.show(primary, repeat)
}

// Run steps the monitor until the context is done.
// The status and alarm outputs are driven low before the first pass.
func (m *Monitor) Run(ctx context.Context) {
	m.hal.SetStatusPin(false)
	m.hal.SetAlarmPin(false)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		m.Step()
	}
}

// show renders one reading for a full refresh.
func (m *Monitor) show(r RawSample, repeat int) {
	mv := float64(r) * m.cfg.VoltageCoeff
	var v int
	if m.cfg.DisplayMillivolts {
		v = m.conv.Millivolts(mv)
	} else {
		v = m.conv.Temperature(mv)
	}
	m.display.Render(v, repeat)
}
