// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build tinygo
// +build tinygo

package main

import (
	"machine"
	"time"

	"github.com/warthog618/tempmon"
)

// hal drives the monitor hardware on the Pico pins.
type hal struct {
	primary   machine.ADC
	threshold machine.ADC
}

var _ tempmon.HAL = (*hal)(nil)

// newHAL configures the pins and drives the outputs to their idle states.
func newHAL() *hal {
	machine.InitADC()
	h := &hal{
		primary:   machine.ADC{Pin: primaryPin},
		threshold: machine.ADC{Pin: thresholdPin},
	}
	h.primary.Configure(machine.ADCConfig{})
	h.threshold.Configure(machine.ADCConfig{})
	statusPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	statusPin.Low()
	alarmPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	alarmPin.Low()
	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	dataPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dataPin.Low()
	shiftPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	shiftPin.Low()
	storePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	storePin.Low()
	return h
}

// ReadADCChannels converts the primary then the threshold channel.
// Get returns 16 bit left justified values, the monitor works in the
// converter's native 10 bits.
func (h *hal) ReadADCChannels() (primary, threshold tempmon.RawSample) {
	primary = tempmon.RawSample(h.primary.Get() >> 6)
	threshold = tempmon.RawSample(h.threshold.Get() >> 6)
	return primary, threshold
}

// SetStatusPin drives the status indicator.
func (h *hal) SetStatusPin(on bool) {
	statusPin.Set(on)
}

// SetAlarmPin drives the buzzer.
func (h *hal) SetAlarmPin(on bool) {
	alarmPin.Set(on)
}

// ReadButtonPin returns the raw level of the button line.
func (h *hal) ReadButtonPin() bool {
	return buttonPin.Get()
}

// ShiftOutBit presents a bit on the display data line and lets it settle.
func (h *hal) ShiftOutBit(bit bool) {
	dataPin.Set(bit)
	time.Sleep(tclk)
}

// PulseShiftClock clocks the presented bit into the display registers.
func (h *hal) PulseShiftClock() {
	shiftPin.High()
	time.Sleep(tclk)
	shiftPin.Low()
}

// PulseStoreClock latches the shifted frame onto the display.
func (h *hal) PulseStoreClock() {
	storePin.High()
	time.Sleep(tclk)
	storePin.Low()
}

// DelayCycles sleeps for n cycles of the 16MHz reference clock, so 62.5ns
// per cycle.
func (h *hal) DelayCycles(n int) {
	time.Sleep(time.Duration(n) * 125 * time.Nanosecond / 2)
}
