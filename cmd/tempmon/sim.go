// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/warthog618/tempmon"
	"github.com/warthog618/tempmon/sevenseg"
)

func init() {
	simCmd.Flags().IntVarP(&simOpts.Steps, "steps", "n", 12, "number of monitor passes to simulate")
	simCmd.Flags().IntVarP(&simOpts.Threshold, "threshold", "t", 300, "potentiometer reading (0-1023)")
	simCmd.Flags().IntSliceVarP(&simOpts.Press, "press", "p", nil, "passes on which the mode button is pressed")
	simCmd.Flags().BoolVarP(&simOpts.Millivolts, "millivolts", "m", false, "display millivolts rather than temperature")
	simCmd.SetHelpTemplate(simCmd.HelpTemplate() + extendedSimHelp)
	rootCmd.AddCommand(simCmd)
}

var extendedSimHelp = `
The thermistor reading sweeps a triangle wave spanning the default
threshold, so the alarm trips near the top of each sweep where the
reading exceeds the threshold.
`

var (
	simCmd = &cobra.Command{
		Use:   "sim",
		Short: "Simulate the monitor without hardware",
		Long:  `Run the monitor against synthetic readings and print the display after each pass.`,
		Args:  cobra.NoArgs,
		RunE:  sim,
	}
	simOpts = struct {
		Steps      int
		Threshold  int
		Press      []int
		Millivolts bool
	}{}
)

func sim(cmd *cobra.Command, args []string) error {
	if simOpts.Threshold < 0 || simOpts.Threshold > 1023 {
		return fmt.Errorf("threshold '%d' out of range", simOpts.Threshold)
	}
	cfg := tempmon.DefaultConfig()
	cfg.DisplayMillivolts = simOpts.Millivolts
	h := newSimHAL(simOpts.Threshold)
	for _, p := range simOpts.Press {
		h.press[p] = true
	}
	m := tempmon.New(h, cfg)
	for i := 0; i < simOpts.Steps; i++ {
		h.pass(i)
		beeps := h.beeps
		m.Step()
		mark := ""
		if h.beeps > beeps {
			mark = " alarm"
		}
		fmt.Printf("%3d %-13s [%s]%s\n", i, m.Mode(), string(h.screen[:]), mark)
	}
	return nil
}

// simHAL feeds the monitor synthetic readings and decodes whatever it
// latches onto the display registers.
type simHAL struct {
	threshold int
	press     map[int]bool
	step      int
	consumed  bool
	reg       uint16
	bit       bool
	screen    [4]rune
	beeps     int
}

var _ tempmon.HAL = (*simHAL)(nil)

func newSimHAL(threshold int) *simHAL {
	return &simHAL{
		threshold: threshold,
		press:     map[int]bool{},
		screen:    [4]rune{' ', ' ', ' ', ' '},
	}
}

// pass starts simulated pass n, rearming the button.
func (h *simHAL) pass(n int) {
	h.step = n
	h.consumed = false
}

// triangle sweeps between lo and hi and back over period steps.
func triangle(step, lo, hi, period int) int {
	half := period / 2
	pos := step % period
	if pos < half {
		return lo + (hi-lo)*pos/half
	}
	return hi - (hi-lo)*(pos-half)/half
}

func (h *simHAL) ReadADCChannels() (primary, threshold tempmon.RawSample) {
	return tempmon.RawSample(triangle(h.step, 200, 400, 8)), tempmon.RawSample(h.threshold)
}

func (h *simHAL) SetStatusPin(on bool) {}

func (h *simHAL) SetAlarmPin(on bool) {
	if on {
		h.beeps++
	}
}

// ReadButtonPin reads low once on a pass with a button press scheduled.
func (h *simHAL) ReadButtonPin() bool {
	if h.press[h.step] && !h.consumed {
		h.consumed = true
		return false
	}
	return true
}

func (h *simHAL) ShiftOutBit(bit bool) {
	h.bit = bit
}

func (h *simHAL) PulseShiftClock() {
	h.reg <<= 1
	if h.bit {
		h.reg |= 1
	}
}

func (h *simHAL) PulseStoreClock() {
	sel, g, err := sevenseg.Decode(h.reg)
	if err != nil {
		return
	}
	if r, ok := sevenseg.Rune(g); ok {
		h.screen[4-sel] = r
	}
}

func (h *simHAL) DelayCycles(n int) {}
