// SPDX-License-Identifier: EPL-2.0

package audio

import "slices"

// Capabilities enumerates what an output device can physically play. It is
// the policy side of format validation: wav.ParseHeader accepts any
// well-formed header, Capabilities decides whether a given device can clock
// the described stream.
type Capabilities struct {
	// SampleRates lists the supported sample frequencies in Hz.
	SampleRates []int
	// BitDepths lists the supported bits per sample.
	BitDepths []int
	// MaxChannels is the highest supported channel count.
	MaxChannels int
}

// DefaultCapabilities models a MAX98357A class I2S DAC: 16-bit mono or
// stereo at the seven LRCLK frequencies the chip locks onto. 11.025, 12,
// 22.05 and 24 kHz are absent on purpose; the part does not support them.
func DefaultCapabilities() Capabilities {
	return Capabilities{
		SampleRates: []int{8000, 16000, 32000, 44100, 48000, 88200, 96000},
		BitDepths:   []int{16},
		MaxChannels: 2,
	}
}

// Validate checks a decoded stream description against the device policy.
// audioFormat must be linear PCM (code 1); compressed payloads are not
// playable through a raw PCM sink. A failure is an *UnsupportedFormatError
// naming the offending parameter.
func (c Capabilities) Validate(audioFormat, sampleRate, bitsPerSample, channels int) error {
	if audioFormat != 1 {
		return &UnsupportedFormatError{Param: "audio format", Value: audioFormat}
	}

	if channels < 1 || channels > c.MaxChannels {
		return &UnsupportedFormatError{Param: "channels", Value: channels}
	}

	if !slices.Contains(c.BitDepths, bitsPerSample) {
		return &UnsupportedFormatError{Param: "bits per sample", Value: bitsPerSample}
	}

	if !slices.Contains(c.SampleRates, sampleRate) {
		return &UnsupportedFormatError{Param: "sample rate", Value: sampleRate}
	}

	return nil
}
