// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tempmon

// Alarm sounds the buzzer while the primary channel reads above the
// threshold channel.
//
// The buzzer sounds for a limited run of consecutive exceeded readings and
// is then suppressed until a reading drops back to the threshold, which
// rearms it.
type Alarm struct {
	hal     HAL
	enabled bool
	limit   int
	pulses  int
	delay   int
}

// NewAlarm creates an Alarm.
//
// A SoundDelay below 1 is treated as 1.
func NewAlarm(hal HAL, cfg Config) *Alarm {
	delay := cfg.SoundDelay
	if delay < 1 {
		delay = 1
	}
	return &Alarm{
		hal:     hal,
		enabled: cfg.ThresholdAlarm,
		limit:   cfg.AlarmLimit,
		pulses:  cfg.BeepCycles / (2 * delay),
		delay:   delay,
	}
}

// Update applies one pair of readings to the alarm policy.
//
// count is the current run of exceeded readings and next is the run after
// this pair. The buzzer sounds when the threshold is exceeded, the run is
// below the limit, and the alarm is enabled. A disabled alarm still counts
// the run, and any reading at or below the threshold resets it.
func (a *Alarm) Update(primary, threshold RawSample, count int) (fired bool, next int) {
	if primary <= threshold {
		return false, 0
	}
	if a.enabled && count < a.limit {
		a.buzz()
		return true, count + 1
	}
	return false, count + 1
}

// buzz pulses the buzzer, and the status indicator in lockstep with it,
// for the beep duration.
func (a *Alarm) buzz() {
	for i := a.pulses; i > 0; i-- {
		a.hal.SetAlarmPin(true)
		a.hal.SetStatusPin(true)
		a.hal.DelayCycles(a.delay)
		a.hal.SetAlarmPin(false)
		a.hal.SetStatusPin(false)
		a.hal.DelayCycles(a.delay)
	}
}
