// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build linux
// +build linux

package rpi

import (
	"encoding/binary"
	"errors"
	"os"
	"reflect"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Arrays for 8 / 32 bit access to memory and a semaphore for write locking
var (
	// The memlock covers read/modify/write access to the mem block.
	// Individual reads and writes can skip the lock on the assumption that
	// concurrent register writes are atomic. e.g. Read, Write and Mode.
	memlock sync.Mutex
	mem     []uint32
	mem8    []uint8
)

// Open memory maps the GPIO registers from /dev/gpiomem and detects the
// GPIO chip variant.
// Must be called before pins are created.
func Open() (err error) {
	if len(mem) != 0 {
		return ErrAlreadyOpen
	}
	file, err := os.OpenFile(
		"/dev/gpiomem",
		os.O_RDWR|os.O_SYNC,
		0)

	if err != nil {
		return
	}
	defer file.Close()

	memlock.Lock()
	defer memlock.Unlock()

	// Memory map GPIO registers to byte array
	mem8, err = unix.Mmap(
		int(file.Fd()),
		0,
		memLength,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED)

	if err != nil {
		return
	}

	// Convert mapped byte memory to unsafe []uint32 pointer, adjust length as needed
	header := *(*reflect.SliceHeader)(unsafe.Pointer(&mem8))
	header.Len /= 4 // (32 bit = 4 bytes)
	header.Cap /= 4

	mem = *(*[]uint32)(unsafe.Pointer(&header))

	chipset = detectChip()

	return nil
}

// Close unmaps the GPIO registers.
func Close() error {
	memlock.Lock()
	defer memlock.Unlock()
	mem = make([]uint32, 0)
	return unix.Munmap(mem8)
}

// Chip identifies the GPIO variant driving the header pins.
type Chip int

// The supported GPIO chip variants.
const (
	// BCM2835 covers the 2835/6/7 family, which share the clocked pull
	// mechanism.
	BCM2835 Chip = iota
	// BCM2711, as found on the Pi4, has per pin pull registers.
	BCM2711
)

var chipset Chip

// GPIOChip returns the GPIO chip variant detected by Open.
func GPIOChip() Chip {
	return chipset
}

// detectChip identifies the GPIO variant from the device tree.
// The 2711 zeroes the legacy bus address slot and reports its peripheral
// base in the following cell.
func detectChip() Chip {
	r, err := os.ReadFile("/proc/device-tree/soc/ranges")
	if err != nil || len(r) < 12 {
		return BCM2835
	}
	if binary.BigEndian.Uint32(r[4:8]) == 0 &&
		binary.BigEndian.Uint32(r[8:12]) == 0xfe000000 {
		return BCM2711
	}
	return BCM2835
}

var (
	// ErrAlreadyOpen indicates the mem is already open.
	ErrAlreadyOpen = errors.New("already open")
)
