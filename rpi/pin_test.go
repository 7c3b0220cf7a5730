// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
  Test suite for the pin module.

	Tests drive a fake register block rather than the live GPIO memory,
	so they run on any Linux box, not just a Pi.
*/
package rpi

import (
	"testing"
)

// fakeMem swaps in a zeroed register block for the duration of the test.
func fakeMem(t *testing.T) {
	t.Helper()
	mem = make([]uint32, memLength/4)
	chipset = BCM2835
	t.Cleanup(func() {
		mem = nil
		chipset = BCM2835
	})
}

func TestNewPinUnopened(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NewPin did not panic")
		}
	}()
	p := NewPin(GPIO17)
	_ = p
}

func TestNewPinOutOfRange(t *testing.T) {
	fakeMem(t)
	if p := NewPin(-1); p != nil {
		t.Error("Created pin below range")
	}
	if p := NewPin(MaxGPIOPin); p != nil {
		t.Error("Created pin above range")
	}
}

func TestNewPinRegisters(t *testing.T) {
	fakeMem(t)
	pin := NewPin(GPIO27)
	if pin.Pin() != 27 {
		t.Error("Wrong pin number", pin.Pin())
	}
	if pin.fsel != 2 {
		t.Error("Wrong fsel register", pin.fsel)
	}
	if pin.levelReg != 13 {
		t.Error("Wrong level register", pin.levelReg)
	}
	if pin.clearReg != 10 {
		t.Error("Wrong clear register", pin.clearReg)
	}
	if pin.setReg != 7 {
		t.Error("Wrong set register", pin.setReg)
	}
	if pin.pullReg2711 != 58 {
		t.Error("Wrong pull register", pin.pullReg2711)
	}
	if pin.mask != 1<<27 {
		t.Errorf("Wrong mask %x", pin.mask)
	}
}

func TestMode(t *testing.T) {
	fakeMem(t)
	pin := NewPin(GPIO27)
	mode := pin.Mode()
	if mode != Input {
		t.Fatal("Not an input pin")
	}
	pin.SetMode(Output)
	if mem[pin.fsel] != 1<<21 {
		t.Errorf("Wrong fsel value %x", mem[pin.fsel])
	}
	mode = pin.Mode()
	if mode != Output {
		t.Error("Failed to set output")
	}
	pin.SetMode(Input)
	if mem[pin.fsel] != 0 {
		t.Errorf("Wrong fsel value %x", mem[pin.fsel])
	}
	mode = pin.Mode()
	if mode != Input {
		t.Error("Failed to set input")
	}
	pin.Output()
	mode = pin.Mode()
	if mode != Output {
		t.Error("Failed to set output")
	}
	pin.Input()
	mode = pin.Mode()
	if mode != Input {
		t.Error("Failed to set input")
	}
}

func TestRead(t *testing.T) {
	fakeMem(t)
	pin := NewPin(GPIO17)
	if pin.Read() != Low {
		t.Error("Expected initial Low")
	}
	mem[pin.levelReg] |= pin.mask
	if pin.Read() != High {
		t.Error("Failed to read High")
	}
	if pin.Shadow() != High {
		t.Error("Failed to shadow read High")
	}
	mem[pin.levelReg] &^= pin.mask
	if pin.Read() != Low {
		t.Error("Failed to read Low")
	}
	if pin.Shadow() != Low {
		t.Error("Failed to shadow read Low")
	}
}

func TestWrite(t *testing.T) {
	fakeMem(t)
	pin := NewPin(GPIO17)
	pin.Write(High)
	if mem[pin.setReg] != pin.mask {
		t.Errorf("Wrong set register value %x", mem[pin.setReg])
	}
	if pin.Shadow() != High {
		t.Error("Failed to shadow write High")
	}
	pin.Write(Low)
	if mem[pin.clearReg] != pin.mask {
		t.Errorf("Wrong clear register value %x", mem[pin.clearReg])
	}
	if pin.Shadow() != Low {
		t.Error("Failed to shadow write Low")
	}
	mem[pin.setReg] = 0
	pin.High()
	if mem[pin.setReg] != pin.mask {
		t.Error("Failed to write High")
	}
	mem[pin.clearReg] = 0
	pin.Low()
	if mem[pin.clearReg] != pin.mask {
		t.Error("Failed to write Low")
	}
}

func TestToggle(t *testing.T) {
	fakeMem(t)
	pin := NewPin(GPIO17)
	pin.Write(Low)
	pin.Toggle()
	if pin.Shadow() != High {
		t.Error("Failed to shadow toggle High")
	}
	if mem[pin.setReg] != pin.mask {
		t.Error("Failed to toggle High")
	}
	pin.Toggle()
	if pin.Shadow() != Low {
		t.Error("Failed to shadow toggle Low")
	}
	if mem[pin.clearReg] != pin.mask {
		t.Error("Failed to toggle Low")
	}
}

func TestShadowAtCreation(t *testing.T) {
	fakeMem(t)
	mem[13] |= 1 << 17
	pin := NewPin(GPIO17)
	if pin.Shadow() != High {
		t.Error("Failed to shadow initial level")
	}
}

func TestPull2835(t *testing.T) {
	fakeMem(t)
	pin := NewPin(GPIO17)
	pin.PullUp()
	// The clocking sequence is transient, only the idle end state is
	// visible here.
	if mem[pullReg2835]&pullMask != 0 {
		t.Errorf("Pull register not cleared %x", mem[pullReg2835])
	}
	if mem[pin.bank+38] != 0 {
		t.Errorf("Pull clock register not cleared %x", mem[pin.bank+38])
	}
	pin.PullDown()
	pin.PullNone()
}

func TestPull2711(t *testing.T) {
	fakeMem(t)
	chipset = BCM2711
	pin := NewPin(GPIO17)
	// The 2711 reverses the up/down field values.
	pin.PullUp()
	if mem[58] != 1<<2 {
		t.Errorf("Failed to pull up, reg %x", mem[58])
	}
	pin.PullDown()
	if mem[58] != 2<<2 {
		t.Errorf("Failed to pull down, reg %x", mem[58])
	}
	pin.SetPull(PullNone)
	if mem[58] != 0 {
		t.Errorf("Failed to clear pull, reg %x", mem[58])
	}
}

func BenchmarkWrite(b *testing.B) {
	mem = make([]uint32, memLength/4)
	defer func() { mem = nil }()
	pin := NewPin(GPIO17)
	for i := 0; i < b.N; i++ {
		pin.Write(High)
	}
}

func BenchmarkToggle(b *testing.B) {
	mem = make([]uint32, memLength/4)
	defer func() { mem = nil }()
	pin := NewPin(GPIO17)
	for i := 0; i < b.N; i++ {
		pin.Toggle()
	}
}
