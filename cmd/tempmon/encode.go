// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/warthog618/tempmon/sevenseg"
)

func init() {
	encodeCmd.Flags().BoolVarP(&encodeOpts.Dot, "dot", "d", false, "light the decimal point on the tens digit")
	encodeCmd.SetHelpTemplate(encodeCmd.HelpTemplate() + extendedEncodeHelp)
	rootCmd.AddCommand(encodeCmd)
}

var extendedEncodeHelp = `
Patterns are the segment bits, A through G then the decimal point.
Frames are the image held by the register pair once the digit is fully
shifted in, with the digit select in the high byte.
`

var (
	encodeCmd = &cobra.Command{
		Use:     "encode <value>",
		Short:   "Show the display frames for a value",
		Example: "  tempmon encode 2636",
		Args:    cobra.ExactArgs(1),
		RunE:    encode,
	}
	encodeOpts = struct {
		Dot bool
	}{}
)

func encode(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("can't parse value '%s'", args[0])
	}
	screen := make([]rune, 0, 5)
	sel := 4
	for _, d := range sevenseg.Digits(n) {
		g := sevenseg.Glyph(d)
		if encodeOpts.Dot && sel == 2 {
			g = sevenseg.Dot(g)
		}
		r, _ := sevenseg.Rune(g)
		fmt.Printf("sel %d: %c %08b %#06x\n", sel, r, g, sevenseg.Frame(sel, g))
		screen = append(screen, r)
		if encodeOpts.Dot && sel == 2 {
			screen = append(screen, '.')
		}
		sel--
	}
	fmt.Printf("displays [%s]\n", string(screen))
	return nil
}
