// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package tempmon

// Sampler reads the ADC channels, driving the status indicator for the
// duration of the acquisition.
type Sampler struct {
	hal HAL
}

// NewSampler creates a Sampler.
func NewSampler(hal HAL) *Sampler {
	return &Sampler{hal: hal}
}

// Sample converts both channels.
func (s *Sampler) Sample() (primary, threshold RawSample) {
	s.hal.SetStatusPin(true)
	primary, threshold = s.hal.ReadADCChannels()
	s.hal.SetStatusPin(false)
	return primary, threshold
}
