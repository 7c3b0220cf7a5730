// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

//go:build tinygo
// +build tinygo

//go:generate tinygo flash -target=pico

// A temperature monitor on the Raspberry Pi Pico.
package main

import (
	"context"

	"github.com/warthog618/tempmon"
)

func main() {
	m := tempmon.New(newHAL(), tempmon.DefaultConfig())
	m.Run(context.Background())
}
