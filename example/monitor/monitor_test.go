// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"monitor"}

	cfg := loadConfig()
	assert.Equal(t, 2500*time.Nanosecond, cfg.MustGet("tclk").Duration())
	pins := map[string]uint{
		"status":    17,
		"alarm":     27,
		"button":    12,
		"data":      21,
		"shift":     20,
		"store":     16,
		"clk":       11,
		"csz":       8,
		"di":        10,
		"do":        9,
		"primary":   0,
		"threshold": 1,
	}
	for key, want := range pins {
		assert.Equal(t, want, cfg.MustGet(key).Uint(), key)
	}
}

func TestLoadConfigFile(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	path := filepath.Join(t.TempDir(), "monitor.json")
	require.Nil(t, os.WriteFile(path, []byte(`{"tclk": "5000ns", "button": 6}`), 0644))
	os.Args = []string{"monitor", "-c", path}

	cfg := loadConfig()
	// the file overrides defaults but leaves unlisted keys alone
	assert.Equal(t, 5000*time.Nanosecond, cfg.MustGet("tclk").Duration())
	assert.Equal(t, uint(6), cfg.MustGet("button").Uint())
	assert.Equal(t, uint(17), cfg.MustGet("status").Uint())
}
