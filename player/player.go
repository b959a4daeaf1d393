// SPDX-License-Identifier: EPL-2.0

package player

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/wavplay/audio"
	"github.com/ik5/wavplay/wav"
)

const (
	// DefaultChunkSize matches one ring-buffer page of the original
	// hardware: 512 frames of 16-bit mono.
	DefaultChunkSize = 1024

	// DefaultWriteTimeout is long enough that the sink's natural
	// backpressure never trips it. Shrinking it turns normal drain delay
	// into spurious aborts.
	DefaultWriteTimeout = time.Hour
)

// Player streams the PCM payload of one WAV byte source into an audio sink.
// It owns the whole transfer: header read, feasibility check, sink
// configuration and the bounded-memory copy loop. A Player is single use;
// build a fresh one to replay.
//
// Everything runs on the caller's goroutine. The only blocking points are
// the storage reads and the sink writes, and the sink's backpressure is
// what paces the loop to real time.
type Player struct {
	src  io.ReadSeeker
	sink audio.Sink

	caps    audio.Capabilities
	chunk   int
	timeout time.Duration
	log     logrus.FieldLogger

	id     string
	state  State
	armed  bool
	header wav.Header
}

// Stats describes a finished transfer.
type Stats struct {
	Header wav.Header
	// Bytes is the PCM byte count delivered to the sink.
	Bytes int64
	// Chunks is the number of transfer loop iterations it took.
	Chunks int
	// Elapsed is the wall-clock duration of the transfer phase alone;
	// header parsing and sink arming are excluded.
	Elapsed time.Duration
}

// Option adjusts a Player at construction time.
type Option func(*Player)

// WithChunkSize sets the transfer chunk capacity in bytes. The buffer is
// allocated once and reused for every iteration.
func WithChunkSize(n int) Option {
	return func(p *Player) {
		if n > 0 {
			p.chunk = n
		}
	}
}

// WithWriteTimeout bounds each blocking sink write. This is a maximum wait,
// not a pacing interval; keep it generous.
func WithWriteTimeout(d time.Duration) Option {
	return func(p *Player) {
		p.timeout = d
	}
}

// WithCapabilities injects the output device policy consulted before the
// sink is touched. Defaults to audio.DefaultCapabilities.
func WithCapabilities(c audio.Capabilities) Option {
	return func(p *Player) {
		p.caps = c
	}
}

// WithLogger attaches a logger for header, progress and cleanup reporting.
// Without it the player stays silent.
func WithLogger(log logrus.FieldLogger) Option {
	return func(p *Player) {
		p.log = log
	}
}

// New builds a Player over src and sink. The source cursor may be anywhere;
// playback always starts from the top of the file.
func New(src io.ReadSeeker, sink audio.Sink, opts ...Option) *Player {
	p := &Player{
		src:     src,
		sink:    sink,
		caps:    audio.DefaultCapabilities(),
		chunk:   DefaultChunkSize,
		timeout: DefaultWriteTimeout,
		id:      xid.New().String(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		p.log = silent
	}
	p.log = p.log.WithField("session", p.id)

	return p
}

// State reports where the session currently is.
func (p *Player) State() State {
	return p.state
}

// Header returns the decoded header once the session progressed past
// HeaderRead; the zero Header before that.
func (p *Player) Header() wav.Header {
	return p.header
}

// Play runs the session to completion and reports transfer statistics.
//
// On any fault the session aborts: the originating error is returned, and
// if the sink was already armed it is disabled best-effort, with a disable
// failure logged rather than returned so the primary error stays visible.
// Play returns ErrSessionDone when called on a session that already ran.
func (p *Player) Play() (Stats, error) {
	if p.state != Idle {
		return Stats{}, ErrSessionDone
	}

	header, err := p.readHeader()
	if err != nil {
		return Stats{}, p.abort(err)
	}
	p.state = HeaderRead
	p.header = header
	p.logHeader(header)

	err = p.caps.Validate(
		int(header.AudioFormat),
		int(header.SampleRate),
		int(header.BitsPerSample),
		int(header.Channels),
	)
	if err != nil {
		return Stats{}, p.abort(err)
	}
	p.state = Validated

	if err := p.arm(header); err != nil {
		return Stats{}, p.abort(err)
	}
	p.state = SinkArmed

	// Explicit reposition to the top of the data section. The header read
	// already left the cursor there, but the source may have been handed
	// over mid-file.
	if _, err := p.src.Seek(wav.HeaderSize, io.SeekStart); err != nil {
		return Stats{}, p.abort(&IOError{Op: "seek", Err: err})
	}

	p.state = Streaming
	stats, err := p.stream(header)
	if err != nil {
		return Stats{}, p.abort(err)
	}

	if err := p.sink.Disable(); err != nil {
		p.armed = false
		return Stats{}, p.abort(&SinkError{Op: "disable", Err: err})
	}
	p.armed = false
	p.state = Drained

	p.state = Finished
	p.log.WithFields(logrus.Fields{
		"bytes":   stats.Bytes,
		"chunks":  stats.Chunks,
		"elapsed": stats.Elapsed,
	}).Info("playback finished")

	return stats, nil
}

// readHeader pulls exactly the 44 header bytes from the top of the source.
func (p *Player) readHeader() (wav.Header, error) {
	if _, err := p.src.Seek(0, io.SeekStart); err != nil {
		return wav.Header{}, &IOError{Op: "seek", Err: err}
	}

	buf := make([]byte, wav.HeaderSize)

	n, err := io.ReadFull(p.src, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return wav.Header{}, &IOError{
			Op:  "read header",
			Err: fmt.Errorf("%w: got %d of %d bytes", ErrTruncatedHeader, n, wav.HeaderSize),
		}
	}
	if err != nil {
		return wav.Header{}, &IOError{Op: "read header", Err: err}
	}

	return wav.ParseHeader(buf)
}

func (p *Player) logHeader(h wav.Header) {
	p.log.WithFields(logrus.Fields{
		"riff_size":       h.FileSize,
		"fmt_size":        h.FmtSize,
		"audio_format":    h.AudioFormat,
		"channels":        h.Channels,
		"sample_rate":     h.SampleRate,
		"byte_rate":       h.ByteRate,
		"block_align":     h.BlockAlign,
		"bits_per_sample": h.BitsPerSample,
		"data_size":       h.DataSize,
		"duration":        h.Duration(),
	}).Info("WAV header decoded")

	// The bookkeeping fields are informational only; playback trusts
	// DataSize alone, so mismatches are surfaced but never fatal.
	for _, issue := range h.Inconsistencies() {
		p.log.Warn("header bookkeeping mismatch: " + issue)
	}
}

func (p *Player) arm(h wav.Header) error {
	err := p.sink.Configure(int(h.SampleRate), int(h.BitsPerSample), int(h.Channels))
	if err != nil {
		return &SinkError{Op: "configure", Err: err}
	}

	if err := p.sink.Enable(); err != nil {
		return &SinkError{Op: "enable", Err: err}
	}
	p.armed = true

	return nil
}

// stream runs the transfer loop: read up to one chunk, never past the
// declared data size, hand it to the sink, repeat until every declared byte
// was delivered.
func (p *Player) stream(h wav.Header) (Stats, error) {
	var (
		buf      = make([]byte, p.chunk)
		total    = int64(h.DataSize)
		consumed int64
		chunks   int
	)

	start := time.Now()

	for consumed < total {
		want := int64(len(buf))
		if remaining := total - consumed; want > remaining {
			want = remaining
		}

		n, err := p.src.Read(buf[:want])
		if err != nil && err != io.EOF {
			return Stats{}, &IOError{Op: "read", Err: err}
		}
		if n == 0 {
			return Stats{}, &IOError{
				Op:  "read",
				Err: fmt.Errorf("%w: got %d of %d data bytes", ErrUnexpectedEOF, consumed, total),
			}
		}

		if err := p.writeChunk(buf[:n]); err != nil {
			return Stats{}, err
		}

		consumed += int64(n)
		chunks++
	}

	return Stats{
		Header:  h,
		Bytes:   consumed,
		Chunks:  chunks,
		Elapsed: time.Since(start),
	}, nil
}

// writeChunk pushes a whole chunk into the sink, looping over partial
// writes. Every underlying write gets the full timeout.
func (p *Player) writeChunk(b []byte) error {
	for len(b) > 0 {
		n, err := p.sink.WriteBlocking(b, p.timeout)
		if err != nil {
			return &SinkError{Op: "write", Err: err}
		}
		if n == 0 {
			return &SinkError{Op: "write", Err: io.ErrShortWrite}
		}

		b = b[n:]
	}

	return nil
}

// abort lands the session in Aborted, shutting the transmit path down if it
// was armed. The disable failure, if any, is logged and swallowed so the
// primary error stays visible.
func (p *Player) abort(err error) error {
	if p.armed {
		if derr := p.sink.Disable(); derr != nil {
			p.log.WithError(derr).Warn("sink disable during abort failed")
		}
		p.armed = false
	}
	p.state = Aborted

	return err
}
