// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package sevenseg drives a four digit seven segment display through a
// pair of daisy chained 8 bit shift registers.
//
// Each digit is written as a 16 bit frame: four zero bits, four one-hot
// digit select bits, then the segment pattern least significant bit first.
// The frame is clocked out on a data line and shift clock pair and made
// visible with a store clock pulse. The display is multiplexed one digit
// at a time, so it only appears steady while frames are rewritten
// continuously.
package sevenseg

import (
	"fmt"
	"math/bits"
)

// Bus is the serial interface the display is wired to.
//
// Rendering assumes both clocks idle low and drives them blocking, so a
// Display must not be shared between goroutines.
type Bus interface {
	ShiftOutBit(bit bool)
	PulseShiftClock()
	PulseStoreClock()
	DelayCycles(n int)
}

// Blank indexes the all-clear pattern.
const Blank = 10

// Segment patterns in ABCDEFGP bit order.
// Bit 0 is the decimal point and is clear on all numerals.
var glyphs = [11]byte{
	0b11111100, // 0
	0b01100000, // 1
	0b11011010, // 2
	0b11110010, // 3
	0b01100110, // 4
	0b10110110, // 5
	0b10111110, // 6
	0b11100000, // 7
	0b11111110, // 8
	0b11110110, // 9
	0b00000000, // all-clear
}

// Digits splits a number into its four least significant decimal digits,
// most significant first.
//
// Division truncates toward zero, so the digits of a negative number come
// out negative and render blank. The display has no minus sign.
func Digits(n int) [4]int {
	return [4]int{
		n / 1000 % 10,
		n / 100 % 10,
		n / 10 % 10,
		n % 10,
	}
}

// Glyph returns the segment pattern for a digit.
// Anything outside 0-9 returns the blank pattern.
func Glyph(d int) byte {
	if d < 0 || d > 9 {
		d = Blank
	}
	return glyphs[d]
}

// Dot returns the pattern with the decimal point lit.
func Dot(g byte) byte {
	return g | 0x01
}

// Rune returns the character a segment pattern renders, ignoring the
// decimal point. ok is false if the pattern is not a numeral or blank.
func Rune(g byte) (r rune, ok bool) {
	for i, p := range glyphs {
		if p == g&^0x01 {
			if i == Blank {
				return ' ', true
			}
			return rune('0' + i), true
		}
	}
	return '?', false
}

// Frame returns the 16 bit register image of one digit frame, as held by
// the register pair once the frame is fully shifted in.
// sel counts 4 to 1 from the leftmost digit.
func Frame(sel int, g byte) uint16 {
	return uint16(1)<<(12-sel) | uint16(bits.Reverse8(g))
}

// Decode recovers the digit position and segment pattern from a latched
// register image. It is the inverse of Frame.
func Decode(word uint16) (sel int, g byte, err error) {
	if word&0xf000 != 0 {
		return 0, 0, fmt.Errorf("leading bits set in frame %#04x", word)
	}
	oneHot := byte(word >> 8 & 0x0f)
	if oneHot == 0 || oneHot&(oneHot-1) != 0 {
		return 0, 0, fmt.Errorf("invalid digit select in frame %#04x", word)
	}
	return 4 - bits.TrailingZeros8(oneHot), bits.Reverse8(byte(word)), nil
}

// Display writes digit frames to a Bus.
type Display struct {
	bus   Bus
	pause int
}

// New creates a Display.
// pause is the delay, in cycles, after each digit frame.
func New(bus Bus, pause int) *Display {
	return &Display{
		bus:   bus,
		pause: pause,
	}
}

// Render multiplexes the four least significant digits of n onto the
// display, left to right, repeating the pass repeat times.
func (d *Display) Render(n, repeat int) {
	dd := Digits(n)
	for r := repeat; r > 0; r-- {
		for i, dig := range dd {
			d.writeFrame(Glyph(dig), 4-i)
			d.bus.DelayCycles(d.pause)
		}
	}
}

// RenderBlank clears all four digits, repeating the pass repeat times.
func (d *Display) RenderBlank(repeat int) {
	for r := repeat; r > 0; r-- {
		for sel := 4; sel > 0; sel-- {
			d.writeFrame(Glyph(Blank), sel)
			d.bus.DelayCycles(d.pause)
		}
	}
}

// writeFrame shifts one digit frame into the registers and latches it.
func (d *Display) writeFrame(g byte, sel int) {
	for i := 4; i > 0; i-- {
		d.bus.ShiftOutBit(false)
		d.bus.PulseShiftClock()
	}
	for i := sel; i > sel-4; i-- {
		d.bus.ShiftOutBit(i == 1)
		d.bus.PulseShiftClock()
	}
	for i := 8; i > 0; i-- {
		d.bus.ShiftOutBit(g&0x01 == 0x01)
		d.bus.PulseShiftClock()
		g >>= 1
	}
	d.bus.PulseStoreClock()
}
