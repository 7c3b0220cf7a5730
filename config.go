// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tempmon

import "github.com/warthog618/tempmon/thermistor"

// Config holds the monitor tuning parameters.
//
// Cycle counts are in processor cycles of the reference board, which runs
// at 16MHz, so one cycle is 62.5ns.
type Config struct {
	// VoltageCoeff converts a raw sample to millivolts.
	VoltageCoeff float64

	// DisplayMillivolts selects the raw millivolt readout rather than
	// hundredths of a degree.
	DisplayMillivolts bool

	// ThresholdAlarm enables the buzzer when the primary channel reads
	// above the threshold channel.
	ThresholdAlarm bool

	// AlarmLimit is the number of consecutive exceeded readings that
	// sound the buzzer before it is suppressed.
	AlarmLimit int

	// BeepCycles is the nominal buzz duration in cycles.
	BeepCycles int

	// SoundDelay is the buzzer half period in cycles, and so sets the
	// buzzer tone.
	SoundDelay int

	// WaitCycles paces the button debounce and sets the number of
	// display passes per refresh.
	WaitCycles int

	// InterDigitCycles is the pause after each digit frame.
	InterDigitCycles int

	// Thermistor describes the primary channel subcircuit.
	Thermistor thermistor.Config
}

// DefaultConfig returns the tuning for the reference board.
//
// The voltage coefficient is the experimental value for the 10 bit
// converter against the 3.3V rail; theory says 3.22.
func DefaultConfig() Config {
	return Config{
		VoltageCoeff:      2.96,
		DisplayMillivolts: true,
		ThresholdAlarm:    true,
		AlarmLimit:        5,
		BeepCycles:        1500,
		SoundDelay:        20,
		WaitCycles:        200,
		InterDigitCycles:  10000,
		Thermistor:        thermistor.DefaultConfig(),
	}
}
