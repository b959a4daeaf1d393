// SPDX-License-Identifier: EPL-2.0

package wavfile

import (
	"fmt"
	"io"
	"time"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavplay/audio"
	"github.com/ik5/wavplay/utils"
)

// Sink captures the streamed PCM bytes back into a WAV container. It is the
// offline counterpart of a live DAC: handy for regression tests and for
// inspecting exactly what a playback session delivered.
//
// Only 16-bit PCM is accepted, matching the playback engine's own policy.
type Sink struct {
	w       io.WriteSeeker
	enc     *gowav.Encoder
	format  *goaudio.Format
	enabled bool
}

// New builds a sink writing the captured stream to w. The container is
// finalized on Disable.
func New(w io.WriteSeeker) *Sink {
	return &Sink{w: w}
}

func (s *Sink) Configure(sampleRate, bitsPerSample, channels int) error {
	if bitsPerSample != 16 {
		return &audio.UnsupportedFormatError{Param: "bits per sample", Value: bitsPerSample}
	}

	if channels < 1 {
		return &audio.UnsupportedFormatError{Param: "channels", Value: channels}
	}

	s.enc = gowav.NewEncoder(s.w, sampleRate, bitsPerSample, channels, 1)
	s.format = &goaudio.Format{NumChannels: channels, SampleRate: sampleRate}

	return nil
}

func (s *Sink) Enable() error {
	if s.enc == nil {
		return audio.ErrNotConfigured
	}
	s.enabled = true

	return nil
}

// WriteBlocking never actually blocks for long; a file accepts bytes as
// fast as the OS takes them, so the timeout goes unused.
func (s *Sink) WriteBlocking(p []byte, _ time.Duration) (int, error) {
	if s.enc == nil {
		return 0, audio.ErrNotConfigured
	}

	if !s.enabled {
		return 0, audio.ErrNotEnabled
	}

	buf := &goaudio.IntBuffer{
		Format:         s.format,
		Data:           utils.PCM16ToInt(p),
		SourceBitDepth: 16,
	}

	if err := s.enc.Write(buf); err != nil {
		return 0, fmt.Errorf("%w", err)
	}

	return len(p), nil
}

// Disable finalizes the container (patches the declared sizes in the
// header) and is safe to call more than once.
func (s *Sink) Disable() error {
	s.enabled = false

	if s.enc == nil {
		return nil
	}

	enc := s.enc
	s.enc = nil

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
