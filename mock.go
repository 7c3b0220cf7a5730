// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tempmon

import "fmt"

// Mock is a HAL stand-in for tests and simulation.
//
// Channel reads consume their scripts one element per call and hold the
// last element once the script is exhausted. Button reads consume their
// script one element per call and read released once it is exhausted, so
// an empty button script always reads released. Every call is appended to
// Trace, shifted bits are modeled in a 16 bit register image, and each
// store clock pulse appends the image to Latched. Delays return
// immediately.
type Mock struct {
	Primary   []RawSample
	Threshold []RawSample
	Button    []bool

	Trace   []string
	Latched []uint16
	Delayed int
	Status  bool
	Alarm   bool

	reads   int
	buttons int
	reg     uint16
	bit     bool
}

var _ HAL = (*Mock)(nil)

// ReadADCChannels returns the scripted channel readings.
func (m *Mock) ReadADCChannels() (primary, threshold RawSample) {
	primary = scripted(m.Primary, m.reads)
	threshold = scripted(m.Threshold, m.reads)
	m.reads++
	m.record("adc=%d/%d", primary, threshold)
	return primary, threshold
}

// SetStatusPin records the status indicator level.
func (m *Mock) SetStatusPin(on bool) {
	m.Status = on
	m.record("status=%t", on)
}

// SetAlarmPin records the buzzer level.
func (m *Mock) SetAlarmPin(on bool) {
	m.Alarm = on
	m.record("alarm=%t", on)
}

// ReadButtonPin returns the scripted button level.
func (m *Mock) ReadButtonPin() bool {
	level := true
	if m.buttons < len(m.Button) {
		level = m.Button[m.buttons]
		m.buttons++
	}
	m.record("button=%t", level)
	return level
}

// ShiftOutBit presents a bit to the modeled registers.
func (m *Mock) ShiftOutBit(bit bool) {
	m.bit = bit
	if bit {
		m.record("bit=1")
	} else {
		m.record("bit=0")
	}
}

// PulseShiftClock shifts the presented bit into the modeled registers.
func (m *Mock) PulseShiftClock() {
	m.reg <<= 1
	if m.bit {
		m.reg |= 1
	}
	m.record("sck")
}

// PulseStoreClock latches the modeled register image.
func (m *Mock) PulseStoreClock() {
	m.Latched = append(m.Latched, m.reg)
	m.record("rck")
}

// DelayCycles counts the requested cycles without waiting.
func (m *Mock) DelayCycles(n int) {
	m.Delayed += n
	m.record("delay=%d", n)
}

func (m *Mock) record(format string, args ...interface{}) {
	m.Trace = append(m.Trace, fmt.Sprintf(format, args...))
}

func scripted(script []RawSample, i int) RawSample {
	if len(script) == 0 {
		return 0
	}
	if i >= len(script) {
		i = len(script) - 1
	}
	return script[i]
}
