// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpi

import (
	"sync"
	"time"
)

// SPI is a bit bashed SPI bus on GPIO pins, as used to reach the analog
// converter. It is not related to the SPI device drivers provided by
// Linux, though it defaults to the same header pins.
type SPI struct {
	mu sync.Mutex
	// time between clock edges (i.e. half the cycle time)
	tclk time.Duration
	sclk *Pin
	ssz  *Pin
	mosi *Pin
	miso *Pin
}

// NewSPI creates a SPI bus.
// The GPIO memory must already be open.
func NewSPI(tclk time.Duration, sclk, ssz, mosi, miso int) *SPI {
	s := &SPI{
		tclk: tclk,
		sclk: NewPin(sclk),
		ssz:  NewPin(ssz),
		mosi: NewPin(mosi),
		miso: NewPin(miso),
	}
	// hold the device reset until needed...
	s.sclk.Low()
	s.sclk.Output()
	s.ssz.High()
	s.ssz.Output()
	return s
}

// Close disables the output pins used to drive the device.
func (s *SPI) Close() {
	s.mu.Lock()
	s.sclk.Input()
	s.ssz.Input()
	s.mosi.Input()
	s.mu.Unlock()
}

// clockIn clocks in a data bit from the device on miso.
// Assumes clock starts high and ends with the rising edge of the next clock.
// Assumes caller already holds the mu lock.
func (s *SPI) clockIn() Level {
	time.Sleep(s.tclk)
	s.sclk.Low() // device writes on the falling edge
	time.Sleep(s.tclk)
	b := s.miso.Read()
	s.sclk.High()
	return b
}

// clockOut clocks out a data bit to the device on mosi.
// Assumes clock starts low and ends with the falling edge of the next clock.
// Assumes caller already holds the mu lock.
func (s *SPI) clockOut(l Level) {
	s.mosi.Write(l)
	time.Sleep(s.tclk)
	s.sclk.High() // device reads on the rising edge
	time.Sleep(s.tclk)
	s.sclk.Low()
}
