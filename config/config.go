// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads the host side settings for the monitor: the GPIO
// wiring of the display, button and converter, the monitor tuning, and the
// thermistor calibration.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/warthog618/tempmon"
	"github.com/warthog618/tempmon/thermistor"
	"gopkg.in/yaml.v3"
)

// Config is the persisted monitor configuration.
type Config struct {
	Device     Device     `yaml:"device"`
	Monitor    Monitor    `yaml:"monitor"`
	Thermistor Thermistor `yaml:"thermistor"`
}

// Device assigns the monitor lines to BCM GPIO pins.
type Device struct {
	Status int `yaml:"status"`
	Alarm  int `yaml:"alarm"`
	Button int `yaml:"button"`
	Data   int `yaml:"data"`
	Shift  int `yaml:"shift"`
	Store  int `yaml:"store"`
	ADC    ADC `yaml:"adc"`
}

// ADC assigns the converter bus pins and channels.
type ADC struct {
	Clock     int           `yaml:"clock"`
	Select    int           `yaml:"select"`
	Mosi      int           `yaml:"mosi"`
	Miso      int           `yaml:"miso"`
	Tclk      time.Duration `yaml:"tclk"`
	Primary   int           `yaml:"primary"`
	Threshold int           `yaml:"threshold"`
}

// Monitor contains the loop tuning parameters.
type Monitor struct {
	VoltageCoeff     float64 `yaml:"voltage_coeff"`
	Millivolts       bool    `yaml:"millivolts"`
	ThresholdAlarm   bool    `yaml:"threshold_alarm"`
	AlarmLimit       int     `yaml:"alarm_limit"`
	BeepCycles       int     `yaml:"beep_cycles"`
	SoundDelay       int     `yaml:"sound_delay"`
	WaitCycles       int     `yaml:"wait_cycles"`
	InterDigitCycles int     `yaml:"inter_digit_cycles"`
}

// Thermistor contains the divider and calibration parameters.
type Thermistor struct {
	Bias   float64 `yaml:"bias"`
	Supply float64 `yaml:"supply"`
	Points []Point `yaml:"points"`
}

// Point is one calibration point, as the natural log of the resistance and
// the inverse temperature at that resistance.
type Point struct {
	LogR float64 `yaml:"logr"`
	InvT float64 `yaml:"invt"`
}

// Default returns the configuration for the reference wiring, with the
// converter on the hardware SPI pins.
func Default() *Config {
	mon := tempmon.DefaultConfig()
	return &Config{
		Device: Device{
			Status: 17,
			Alarm:  27,
			Button: 12,
			Data:   21,
			Shift:  20,
			Store:  16,
			ADC: ADC{
				Clock:     11,
				Select:    8,
				Mosi:      10,
				Miso:      9,
				Tclk:      2500 * time.Nanosecond,
				Primary:   0,
				Threshold: 1,
			},
		},
		Monitor: Monitor{
			VoltageCoeff:     mon.VoltageCoeff,
			Millivolts:       mon.DisplayMillivolts,
			ThresholdAlarm:   mon.ThresholdAlarm,
			AlarmLimit:       mon.AlarmLimit,
			BeepCycles:       mon.BeepCycles,
			SoundDelay:       mon.SoundDelay,
			WaitCycles:       mon.WaitCycles,
			InterDigitCycles: mon.InterDigitCycles,
		},
		Thermistor: Thermistor{
			Bias:   mon.Thermistor.Bias,
			Supply: mon.Thermistor.Supply,
			Points: []Point{
				{LogR: mon.Thermistor.Points[0].LogR, InvT: mon.Thermistor.Points[0].InvT},
				{LogR: mon.Thermistor.Points[1].LogR, InvT: mon.Thermistor.Points[1].InvT},
				{LogR: mon.Thermistor.Points[2].LogR, InvT: mon.Thermistor.Points[2].InvT},
			},
		},
	}
}

// Load loads the configuration from a YAML file.
// A missing file or missing fields fall back to the defaults.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MonitorConfig returns the monitor tuning this configuration selects.
func (c *Config) MonitorConfig() tempmon.Config {
	th := thermistor.Config{
		Bias:   c.Thermistor.Bias,
		Supply: c.Thermistor.Supply,
	}
	for i, p := range c.Thermistor.Points {
		if i == len(th.Points) {
			break
		}
		th.Points[i] = thermistor.Point{LogR: p.LogR, InvT: p.InvT}
	}
	return tempmon.Config{
		VoltageCoeff:      c.Monitor.VoltageCoeff,
		DisplayMillivolts: c.Monitor.Millivolts,
		ThresholdAlarm:    c.Monitor.ThresholdAlarm,
		AlarmLimit:        c.Monitor.AlarmLimit,
		BeepCycles:        c.Monitor.BeepCycles,
		SoundDelay:        c.Monitor.SoundDelay,
		WaitCycles:        c.Monitor.WaitCycles,
		InterDigitCycles:  c.Monitor.InterDigitCycles,
		Thermistor:        th,
	}
}

// ensureDefaults backfills zeroed fields that have no meaningful zero
// value. Pins are left alone, as unset pins already took their defaults
// when the file was unmarshalled over them.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Device.ADC.Tclk == 0 {
		c.Device.ADC.Tclk = def.Device.ADC.Tclk
	}

	if c.Monitor.VoltageCoeff == 0 {
		c.Monitor.VoltageCoeff = def.Monitor.VoltageCoeff
	}
	if c.Monitor.AlarmLimit == 0 {
		c.Monitor.AlarmLimit = def.Monitor.AlarmLimit
	}
	if c.Monitor.BeepCycles == 0 {
		c.Monitor.BeepCycles = def.Monitor.BeepCycles
	}
	if c.Monitor.SoundDelay == 0 {
		c.Monitor.SoundDelay = def.Monitor.SoundDelay
	}
	if c.Monitor.WaitCycles == 0 {
		c.Monitor.WaitCycles = def.Monitor.WaitCycles
	}
	if c.Monitor.InterDigitCycles == 0 {
		c.Monitor.InterDigitCycles = def.Monitor.InterDigitCycles
	}

	if c.Thermistor.Bias == 0 {
		c.Thermistor.Bias = def.Thermistor.Bias
	}
	if c.Thermistor.Supply == 0 {
		c.Thermistor.Supply = def.Thermistor.Supply
	}
	if len(c.Thermistor.Points) != len(def.Thermistor.Points) {
		c.Thermistor.Points = def.Thermistor.Points
	}
}
