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
)

const (
	// Indicator and buzzer outputs.
	statusPin = machine.LED
	alarmPin  = machine.GP15

	// Mode button input, pulled up, pressed reads low.
	buttonPin = machine.GP14

	// Display shift register lines.
	dataPin  = machine.GP2
	shiftPin = machine.GP3
	storePin = machine.GP4

	// Analog inputs, thermistor divider on ADC0 and potentiometer on ADC1.
	primaryPin   = machine.ADC0
	thresholdPin = machine.ADC1

	// Settling time between display line transitions.
	tclk = 2500 * time.Nanosecond
)
