// SPDX-License-Identifier: EPL-2.0

//go:build cgo

// Package portaudio adapts the default host audio device into an
// audio.Sink, standing in for the I2S DAC when running on a desktop. It is
// a thin wrapper over github.com/gordonklaus/portaudio and needs a working
// host audio stack, so it carries no unit tests.
package portaudio

import (
	"fmt"
	"time"

	pa "github.com/gordonklaus/portaudio"

	"github.com/ik5/wavplay/audio"
	"github.com/ik5/wavplay/utils"
)

// FramesPerBuffer is the stream buffer length in frames, mirroring the
// 512-frame DMA pages of the embedded original.
const FramesPerBuffer = 512

// Sink plays 16-bit PCM through the default portaudio output stream.
type Sink struct {
	stream  *pa.Stream
	buf     []int16
	enabled bool
}

// New returns an unconfigured sink. Configure opens the host stream.
func New() *Sink {
	return &Sink{}
}

func (s *Sink) Configure(sampleRate, bitsPerSample, channels int) error {
	if bitsPerSample != 16 {
		return &audio.UnsupportedFormatError{Param: "bits per sample", Value: bitsPerSample}
	}

	if channels < 1 {
		return &audio.UnsupportedFormatError{Param: "channels", Value: channels}
	}

	if err := pa.Initialize(); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.buf = make([]int16, FramesPerBuffer*channels)

	stream, err := pa.OpenDefaultStream(0, channels, float64(sampleRate), FramesPerBuffer, &s.buf)
	if err != nil {
		_ = pa.Terminate()
		return fmt.Errorf("%w", err)
	}
	s.stream = stream

	return nil
}

func (s *Sink) Enable() error {
	if s.stream == nil {
		return audio.ErrNotConfigured
	}

	if err := s.stream.Start(); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.enabled = true

	return nil
}

// WriteBlocking pushes p one stream buffer at a time. The host API blocks
// while its ring buffer is full, which is exactly the backpressure the
// playback loop relies on. portaudio exposes no bounded-wait write, so the
// timeout is advisory here.
func (s *Sink) WriteBlocking(p []byte, _ time.Duration) (int, error) {
	if s.stream == nil {
		return 0, audio.ErrNotConfigured
	}

	if !s.enabled {
		return 0, audio.ErrNotEnabled
	}

	samples := utils.PCM16ToInt16(p)

	for start := 0; start < len(samples); start += len(s.buf) {
		end := start + len(s.buf)
		if end > len(samples) {
			end = len(samples)
		}

		n := copy(s.buf, samples[start:end])
		// Zero-pad a final partial buffer; the stream always transmits
		// whole pages.
		for i := n; i < len(s.buf); i++ {
			s.buf[i] = 0
		}

		if err := s.stream.Write(); err != nil {
			return start * 2, fmt.Errorf("%w", err)
		}
	}

	return len(p), nil
}

// Disable stops and closes the host stream. Safe to call more than once.
func (s *Sink) Disable() error {
	s.enabled = false

	if s.stream == nil {
		return nil
	}

	stream := s.stream
	s.stream = nil

	if err := stream.Stop(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := pa.Terminate(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
