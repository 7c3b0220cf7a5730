// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rpi

import "time"

// MCP3008 reads single ended values from the Microchip MCP3008, the 10 bit
// eight channel ADC the monitor samples through.
// The two data pins, mosi and miso, may be tied and connected to a single
// GPIO pin.
type MCP3008 struct {
	SPI
}

// NewMCP3008 creates a MCP3008.
// The GPIO memory must already be open.
func NewMCP3008(tclk time.Duration, sclk, ssz, mosi, miso int) *MCP3008 {
	return &MCP3008{*NewSPI(tclk, sclk, ssz, mosi, miso)}
}

// Read returns the value of a single channel read from the ADC.
func (adc *MCP3008) Read(ch int) uint16 {
	adc.mu.Lock()
	adc.ssz.High()
	adc.sclk.Low()
	adc.mosi.High()
	adc.mosi.Output()
	time.Sleep(adc.tclk)
	adc.ssz.Low()

	adc.clockOut(High) // Start
	adc.clockOut(High) // SGL
	for i := 2; i >= 0; i-- {
		d := Low
		if (ch >> uint(i) & 0x01) == 0x01 {
			d = High
		}
		adc.clockOut(d)
	}
	// mux settling
	adc.mosi.Input()
	time.Sleep(adc.tclk)
	adc.sclk.High()
	adc.clockIn() // null bit
	var d uint16
	for i := 0; i < 10; i++ {
		d = d << 1
		if adc.clockIn() {
			d = d | 0x01
		}
	}
	adc.ssz.High()
	adc.mu.Unlock()
	return d
}
