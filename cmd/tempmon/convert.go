// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/warthog618/tempmon"
	"github.com/warthog618/tempmon/thermistor"
)

func init() {
	convertCmd.Flags().Float64VarP(&convertOpts.Coeff, "coeff", "k",
		tempmon.DefaultConfig().VoltageCoeff, "millivolts per converter count")
	convertCmd.SetHelpTemplate(convertCmd.HelpTemplate() + extendedConvertHelp)
	rootCmd.AddCommand(convertCmd)
}

var extendedConvertHelp = `
Readings are raw converter counts (0-1023).

The fit only holds over the calibrated span, so readings scaled beyond
the supply rail produce garbage, just as they would on the device.
`

var (
	convertCmd = &cobra.Command{
		Use:     "convert <reading1>...",
		Short:   "Convert raw readings to temperatures",
		Example: "  tempmon convert 300 888",
		Args:    cobra.MinimumNArgs(1),
		RunE:    convert,
	}
	convertOpts = struct {
		Coeff float64
	}{}
)

func convert(cmd *cobra.Command, args []string) error {
	cv := thermistor.New(thermistor.DefaultConfig())
	for _, arg := range args {
		raw, err := parseReading(arg)
		if err != nil {
			return err
		}
		mv := float64(raw) * convertOpts.Coeff
		fmt.Printf("raw %4d: %7.1fmV %9.1fOhm %7.2fC\n",
			raw, mv, cv.Resistance(mv), float64(cv.Temperature(mv))/100)
	}
	return nil
}

func parseReading(arg string) (int, error) {
	r, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("can't parse reading '%s'", arg)
	}
	if r > 1023 {
		return 0, fmt.Errorf("reading '%d' out of range", r)
	}
	return int(r), nil
}
