// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/blob/loader/file"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
	"github.com/warthog618/tempmon"
	"github.com/warthog618/tempmon/rpi"
)

// This example runs the monitor with pin assignments taken from
// configuration (env, flag or config file), falling back to the reference
// wiring defined in loadConfig.
// All pins other than the button and DO are outputs so do not run this
// example on a board where those pins serve other purposes.
func main() {
	cfg := loadConfig()
	err := rpi.Open()
	if err != nil {
		panic(err)
	}
	defer rpi.Close()
	h := rpi.NewHAL(rpi.HALConfig{
		Status:    int(cfg.MustGet("status").Uint()),
		Alarm:     int(cfg.MustGet("alarm").Uint()),
		Button:    int(cfg.MustGet("button").Uint()),
		Data:      int(cfg.MustGet("data").Uint()),
		Shift:     int(cfg.MustGet("shift").Uint()),
		Store:     int(cfg.MustGet("store").Uint()),
		ADCClock:  int(cfg.MustGet("clk").Uint()),
		ADCSelect: int(cfg.MustGet("csz").Uint()),
		ADCMosi:   int(cfg.MustGet("di").Uint()),
		ADCMiso:   int(cfg.MustGet("do").Uint()),
		Tclk:      cfg.MustGet("tclk").Duration(),
		Primary:   int(cfg.MustGet("primary").Uint()),
		Threshold: int(cfg.MustGet("threshold").Uint()),
	})
	defer h.Close()
	ctx, cancel := context.WithCancel(context.Background())
	sigdone := make(chan os.Signal, 1)
	signal.Notify(sigdone, os.Interrupt, os.Kill)
	defer signal.Stop(sigdone)
	go func() {
		<-sigdone
		cancel()
	}()
	fmt.Println("monitoring - press the mode button to cycle the display")
	tempmon.New(h, tempmon.DefaultConfig()).Run(ctx)
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"tclk":      "2500ns",
		"status":    rpi.GPIO17,
		"alarm":     rpi.GPIO27,
		"button":    rpi.GPIO12,
		"data":      rpi.GPIO21,
		"shift":     rpi.GPIO20,
		"store":     rpi.GPIO16,
		"clk":       rpi.GPIO11,
		"csz":       rpi.GPIO8,
		"di":        rpi.GPIO10,
		"do":        rpi.GPIO9,
		"primary":   0,
		"threshold": 1,
	}
	def := dict.New(dict.WithMap(defaultConfig))
	// highest priority sources first - flags override environment
	cfg := config.New(
		pflag.New(pflag.WithFlags([]pflag.Flag{{Short: 'c', Name: "config-file"}})),
		env.New(env.WithEnvPrefix("TEMPMON_")),
		config.WithDefault(def))

	// config file may be specified via flag or env, so check for it
	// and if present add it with lower priority than flag and env.
	configFile, err := cfg.Get("config.file")
	jsondec := json.NewDecoder()
	if err == nil {
		// explicitly specified config file - must be there
		cfg.Append(blob.New(file.New(configFile.String()), jsondec, blob.MustLoad()))
	} else {
		// implicit and optional default config file
		cfg.Append(blob.New(file.New("monitor.json"), jsondec))
	}
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}
