// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
	"time"

	"github.com/ik5/wavplay/wav"
)

// Reader is a seekable in-memory byte source with fault injection, standing
// in for the storage-resident file during tests.
type Reader struct {
	data []byte
	pos  int

	// MaxRead caps how many bytes a single Read may return, to exercise
	// short reads. Zero means no cap.
	MaxRead int
	// FailAfter makes Read fail with ReadErr once this many bytes have
	// been handed out. Negative means never.
	FailAfter int
	ReadErr   error
	// SeekErr is returned by every Seek call when set.
	SeekErr error

	Reads int
	Seeks int
}

// NewReader wraps data in a fault-free Reader; adjust the public fields to
// inject faults.
func NewReader(data []byte) *Reader {
	return &Reader{data: data, FailAfter: -1}
}

func (r *Reader) Read(p []byte) (int, error) {
	r.Reads++

	if r.FailAfter >= 0 && r.pos >= r.FailAfter {
		if r.ReadErr != nil {
			return 0, r.ReadErr
		}
		// Behave like a truncated file: nothing left to hand out.
		return 0, io.EOF
	}

	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	n := len(p)
	if r.MaxRead > 0 && n > r.MaxRead {
		n = r.MaxRead
	}
	if avail := len(r.data) - r.pos; n > avail {
		n = avail
	}
	if r.FailAfter >= 0 && r.pos+n > r.FailAfter {
		n = r.FailAfter - r.pos
	}

	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n

	return n, nil
}

func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	r.Seeks++

	if r.SeekErr != nil {
		return 0, r.SeekErr
	}

	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = int64(r.pos) + offset
	case io.SeekEnd:
		pos = int64(len(r.data)) + offset
	default:
		return 0, errors.New("audiotest: bad whence")
	}

	if pos < 0 {
		return 0, errors.New("audiotest: negative seek position")
	}
	r.pos = int(pos)

	return pos, nil
}

// SinkWrite records one WriteBlocking call: the accepted bytes and the
// timeout the caller passed.
type SinkWrite struct {
	Data    []byte
	Timeout time.Duration
}

// Sink implements the audio.Sink shape (without importing it) while
// recording every call, so tests can assert exact call sequences and
// byte-exact delivery.
type Sink struct {
	SampleRate int
	Bits       int
	Channels   int

	ConfigureCalls int
	EnableCalls    int
	DisableCalls   int
	Writes         []SinkWrite

	ConfigureErr error
	EnableErr    error
	DisableErr   error
	// WriteErrAt makes WriteBlocking call number n (1-based) fail with
	// WriteErr before accepting any bytes. Zero disables the fault.
	WriteErrAt int
	WriteErr   error
	// MaxWrite caps bytes accepted per call, to exercise the partial
	// write loop. Zero means accept everything.
	MaxWrite int

	Enabled bool
}

func (s *Sink) Configure(sampleRate, bitsPerSample, channels int) error {
	s.ConfigureCalls++

	if s.ConfigureErr != nil {
		return s.ConfigureErr
	}

	s.SampleRate = sampleRate
	s.Bits = bitsPerSample
	s.Channels = channels

	return nil
}

func (s *Sink) Enable() error {
	s.EnableCalls++

	if s.EnableErr != nil {
		return s.EnableErr
	}
	s.Enabled = true

	return nil
}

func (s *Sink) WriteBlocking(p []byte, timeout time.Duration) (int, error) {
	if s.WriteErrAt > 0 && len(s.Writes)+1 == s.WriteErrAt {
		s.Writes = append(s.Writes, SinkWrite{Timeout: timeout})
		return 0, s.WriteErr
	}

	n := len(p)
	if s.MaxWrite > 0 && n > s.MaxWrite {
		n = s.MaxWrite
	}

	data := make([]byte, n)
	copy(data, p[:n])
	s.Writes = append(s.Writes, SinkWrite{Data: data, Timeout: timeout})

	return n, nil
}

func (s *Sink) Disable() error {
	s.DisableCalls++

	if s.DisableErr != nil {
		return s.DisableErr
	}
	s.Enabled = false

	return nil
}

// WriteSizes lists the byte count of each recorded write.
func (s *Sink) WriteSizes() []int {
	sizes := make([]int, len(s.Writes))
	for i, w := range s.Writes {
		sizes[i] = len(w.Data)
	}

	return sizes
}

// Bytes concatenates every recorded write into the delivered byte stream.
func (s *Sink) Bytes() []byte {
	var out []byte
	for _, w := range s.Writes {
		out = append(out, w.Data...)
	}

	return out
}

// BuildFile assembles a complete in-memory WAV file: a canonical 16-bit PCM
// header followed by payload.
func BuildFile(sampleRate, channels int, payload []byte) []byte {
	h := wav.NewHeader(sampleRate, channels, uint32(len(payload)))

	return append(wav.EncodeHeader(h), payload...)
}

// Pattern returns n bytes of a deterministic rolling pattern, handy for
// verifying byte-exact delivery.
func Pattern(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7 + 3)
	}

	return p
}
