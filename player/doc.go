// SPDX-License-Identifier: EPL-2.0

// Package player implements the streaming playback engine: a single-use,
// single-goroutine session that moves the PCM payload of a WAV byte source
// into an audio sink in fixed-size chunks.
//
// A session walks a strict state machine:
//
//	Idle -> HeaderRead -> Validated -> SinkArmed -> Streaming -> Drained -> Finished
//
// with any fault landing in Aborted. The header is read and parsed first,
// then checked against the injected device Capabilities; only then is the
// sink configured and enabled, so an unplayable file never touches the
// hardware. The transfer loop reuses one chunk buffer, reads no further
// than the byte count the header declared, and relies on the sink's
// blocking writes for real-time pacing.
//
//	f, _ := os.Open("tune.wav")
//	defer f.Close()
//
//	p := player.New(f, sink,
//	    player.WithChunkSize(1024),
//	    player.WithLogger(log),
//	)
//	stats, err := p.Play()
//
// Faults are terminal for the session. Storage problems surface as *IOError
// (wrapping ErrTruncatedHeader or ErrUnexpectedEOF when the source ran
// short), sink problems as *SinkError, infeasible formats as
// *audio.UnsupportedFormatError, and malformed headers as the wav package's
// parse errors. Whenever the sink was already armed, an aborting session
// still disables it so the hardware is not left transmitting.
package player
