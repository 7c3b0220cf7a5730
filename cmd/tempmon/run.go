// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//go:build linux
// +build linux

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/warthog618/tempmon"
	"github.com/warthog618/tempmon/config"
	"github.com/warthog618/tempmon/rpi"
)

func init() {
	runCmd.Flags().StringVarP(&runOpts.Config, "config", "c", "tempmon.yaml", "path to the monitor config file")
	rootCmd.AddCommand(runCmd)
}

var (
	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the monitor on the Pi GPIO pins",
		Long:  `Sample the thermistor and potentiometer and drive the display and alarm until interrupted.`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}
	runOpts = struct {
		Config string
	}{}
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(runOpts.Config)
	if err != nil {
		return err
	}
	if err = rpi.Open(); err != nil {
		return err
	}
	defer func() {
		if err := rpi.Close(); err != nil {
			logErr(cmd, err)
		}
	}()
	h := rpi.NewHAL(halConfig(cfg.Device))
	defer h.Close()
	ctx, cancel := context.WithCancel(context.Background())
	sigdone := make(chan os.Signal, 1)
	signal.Notify(sigdone, os.Interrupt, os.Kill)
	defer signal.Stop(sigdone)
	go func() {
		<-sigdone
		cancel()
	}()
	fmt.Printf("monitoring on %s\n", chipName(rpi.GPIOChip()))
	tempmon.New(h, cfg.MonitorConfig()).Run(ctx)
	return nil
}

func halConfig(d config.Device) rpi.HALConfig {
	return rpi.HALConfig{
		Status:    d.Status,
		Alarm:     d.Alarm,
		Button:    d.Button,
		Data:      d.Data,
		Shift:     d.Shift,
		Store:     d.Store,
		ADCClock:  d.ADC.Clock,
		ADCSelect: d.ADC.Select,
		ADCMosi:   d.ADC.Mosi,
		ADCMiso:   d.ADC.Miso,
		Tclk:      d.ADC.Tclk,
		Primary:   d.ADC.Primary,
		Threshold: d.ADC.Threshold,
	}
}

func chipName(c rpi.Chip) string {
	switch c {
	case rpi.BCM2711:
		return "bcm2711"
	default:
		return "bcm2835"
	}
}
