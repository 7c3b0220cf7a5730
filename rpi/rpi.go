// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//
//
// Package rpi is the Raspberry Pi backend for the tempmon monitor.
//
// GPIO pins are driven through the /dev/gpiomem register map (rev 2
// boards and later, BCM2835 through BCM2711), and the two analog channels
// are read from an MCP3008 on a bit bashed SPI bus.
//
// Example of use:
//
//	rpi.Open()
//	defer rpi.Close()
//
//	h := rpi.NewHAL(rpi.DefaultHALConfig())
//	defer h.Close()
//
//	tempmon.New(h, tempmon.DefaultConfig()).Run(ctx)
//
// The package uses the raw BCM2835 pin numbers, not the positions as they
// are mapped on the J8 header.
package rpi

import (
	"time"

	"github.com/warthog618/tempmon"
)

// HALConfig assigns the monitor lines to BCM GPIO pins.
type HALConfig struct {
	// Indicator and buzzer outputs.
	Status int
	Alarm  int

	// Mode button input, pulled up, pressed reads low.
	Button int

	// Display shift register lines.
	Data  int
	Shift int
	Store int

	// Converter bus lines and clock half period.
	ADCClock  int
	ADCSelect int
	ADCMosi   int
	ADCMiso   int
	Tclk      time.Duration

	// Converter channels for the two inputs.
	Primary   int
	Threshold int
}

// DefaultHALConfig returns the reference wiring, with the converter on the
// hardware SPI pins.
func DefaultHALConfig() HALConfig {
	return HALConfig{
		Status:    GPIO17,
		Alarm:     GPIO27,
		Button:    GPIO12,
		Data:      GPIO21,
		Shift:     GPIO20,
		Store:     GPIO16,
		ADCClock:  GPIO11,
		ADCSelect: GPIO8,
		ADCMosi:   GPIO10,
		ADCMiso:   GPIO9,
		Tclk:      2500 * time.Nanosecond,
		Primary:   0,
		Threshold: 1,
	}
}

// HAL drives the monitor hardware on Raspberry Pi GPIO pins.
//
// The monitor's delay unit is mapped to the 62.5ns cycle of the reference
// board's 16MHz clock.
type HAL struct {
	cfg    HALConfig
	adc    *MCP3008
	status *Pin
	alarm  *Pin
	button *Pin
	data   *Pin
	shift  *Pin
	store  *Pin
}

var _ tempmon.HAL = (*HAL)(nil)

// NewHAL creates a HAL over the configured pins and drives them to their
// idle states.
// The GPIO memory must already be open.
func NewHAL(cfg HALConfig) *HAL {
	h := &HAL{
		cfg:    cfg,
		adc:    NewMCP3008(cfg.Tclk, cfg.ADCClock, cfg.ADCSelect, cfg.ADCMosi, cfg.ADCMiso),
		status: NewPin(cfg.Status),
		alarm:  NewPin(cfg.Alarm),
		button: NewPin(cfg.Button),
		data:   NewPin(cfg.Data),
		shift:  NewPin(cfg.Shift),
		store:  NewPin(cfg.Store),
	}
	h.status.Low()
	h.status.Output()
	h.alarm.Low()
	h.alarm.Output()
	h.button.Input()
	h.button.PullUp()
	h.data.Low()
	h.data.Output()
	h.shift.Low()
	h.shift.Output()
	h.store.Low()
	h.store.Output()
	return h
}

// Close disables the output pins.
func (h *HAL) Close() {
	h.adc.Close()
	h.status.Input()
	h.alarm.Input()
	h.data.Input()
	h.shift.Input()
	h.store.Input()
}

// ReadADCChannels converts the primary then the threshold channel.
func (h *HAL) ReadADCChannels() (primary, threshold tempmon.RawSample) {
	primary = tempmon.RawSample(h.adc.Read(h.cfg.Primary))
	threshold = tempmon.RawSample(h.adc.Read(h.cfg.Threshold))
	return primary, threshold
}

// SetStatusPin drives the status indicator.
func (h *HAL) SetStatusPin(on bool) {
	h.status.Write(Level(on))
}

// SetAlarmPin drives the buzzer.
func (h *HAL) SetAlarmPin(on bool) {
	h.alarm.Write(Level(on))
}

// ReadButtonPin returns the raw level of the button line.
func (h *HAL) ReadButtonPin() bool {
	return bool(h.button.Read())
}

// ShiftOutBit presents a bit on the display data line and lets it settle.
func (h *HAL) ShiftOutBit(bit bool) {
	h.data.Write(Level(bit))
	time.Sleep(h.cfg.Tclk)
}

// PulseShiftClock clocks the presented bit into the display registers.
func (h *HAL) PulseShiftClock() {
	h.shift.High()
	time.Sleep(h.cfg.Tclk)
	h.shift.Low()
}

// PulseStoreClock latches the shifted frame onto the display.
func (h *HAL) PulseStoreClock() {
	h.store.High()
	time.Sleep(h.cfg.Tclk)
	h.store.Low()
}

// DelayCycles sleeps for n cycles of the 16MHz reference clock, so 62.5ns
// per cycle.
func (h *HAL) DelayCycles(n int) {
	time.Sleep(time.Duration(n) * 125 * time.Nanosecond / 2)
}
