// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tempmon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/tempmon"
)

func TestAlarmUpdate(t *testing.T) {
	patterns := []struct {
		name      string
		primary   tempmon.RawSample
		threshold tempmon.RawSample
		count     int
		enabled   bool
		fired     bool
		next      int
	}{
		{"below", 200, 300, 0, true, false, 0},
		{"below mid run", 200, 300, 3, true, false, 0},
		{"equal", 300, 300, 3, true, false, 0},
		{"first", 300, 200, 0, true, true, 1},
		{"last", 300, 200, 4, true, true, 5},
		{"suppressed", 300, 200, 5, true, false, 6},
		{"beyond limit", 300, 200, 9, true, false, 10},
		{"disabled", 300, 200, 0, false, false, 1},
		{"disabled below", 200, 300, 4, false, false, 0},
	}
	for _, p := range patterns {
		p := p
		t.Run(p.name, func(t *testing.T) {
			cfg := tempmon.DefaultConfig()
			cfg.ThresholdAlarm = p.enabled
			h := &tempmon.Mock{}
			a := tempmon.NewAlarm(h, cfg)
			fired, next := a.Update(p.primary, p.threshold, p.count)
			assert.Equal(t, p.fired, fired)
			assert.Equal(t, p.next, next)
			if !p.fired {
				// only a firing touches the hardware
				assert.Empty(t, h.Trace)
			}
		})
	}
}

func TestNewAlarmZeroSoundDelay(t *testing.T) {
	cfg := tempmon.DefaultConfig()
	cfg.SoundDelay = 0
	h := &tempmon.Mock{}
	a := tempmon.NewAlarm(h, cfg)
	fired, next := a.Update(300, 200, 0)
	require.True(t, fired)
	require.Equal(t, 1, next)
	// the delay clamps to 1, so the 1500 beep cycles give 750 pulses
	assert.Equal(t, 750, count(h.Trace, "alarm=true"))
	assert.Equal(t, 1500, h.Delayed)
}

func TestAlarmBuzzTrace(t *testing.T) {
	h := &tempmon.Mock{}
	a := tempmon.NewAlarm(h, tempmon.DefaultConfig())
	fired, next := a.Update(300, 200, 0)
	require.True(t, fired)
	require.Equal(t, 1, next)

	// 1500 cycles at a half period of 20 is 37 full pulses
	pulse := []string{
		"alarm=true", "status=true", "delay=20",
		"alarm=false", "status=false", "delay=20",
	}
	require.Len(t, h.Trace, 37*len(pulse))
	for i := 0; i < len(h.Trace); i += len(pulse) {
		require.Equal(t, pulse, h.Trace[i:i+len(pulse)])
	}
	assert.Equal(t, 37*2*20, h.Delayed)
	// the buzzer ends silent
	assert.False(t, h.Alarm)
	assert.False(t, h.Status)
}
