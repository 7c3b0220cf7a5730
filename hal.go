// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tempmon

// RawSample is a single channel ADC conversion result.
// Ten bit converters produce the range 0 to 1023.
type RawSample uint16

// HAL is the hardware the monitor runs against.
//
// Implementations are expected to come up with the status and alarm
// outputs low, the button input pulled up, and both display clocks idle
// low. Calls block until the hardware operation completes and report no
// errors; the hardware is assumed wired and functional.
type HAL interface {
	// ReadADCChannels converts the primary and threshold channels,
	// blocking until both results are available.
	ReadADCChannels() (primary, threshold RawSample)

	// SetStatusPin drives the status indicator.
	SetStatusPin(on bool)

	// SetAlarmPin drives the buzzer output.
	SetAlarmPin(on bool)

	// ReadButtonPin returns the raw level of the mode button line.
	// The line is pulled up, so false reads as pressed.
	ReadButtonPin() bool

	// ShiftOutBit presents a bit on the display data line.
	ShiftOutBit(bit bool)

	// PulseShiftClock clocks the presented bit into the display
	// registers.
	PulseShiftClock()

	// PulseStoreClock latches the shifted frame onto the display.
	PulseStoreClock()

	// DelayCycles waits for n processor cycles.
	DelayCycles(n int)
}
