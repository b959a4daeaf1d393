// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader reports a source that ended before the 44-byte
	// header was fully read.
	ErrTruncatedHeader = errors.New("truncated WAV header")
	// ErrUnexpectedEOF reports a source that ran dry before delivering
	// the byte count the header declared.
	ErrUnexpectedEOF = errors.New("unexpected end of stream")
	// ErrSessionDone reports Play being called on a session that already
	// ran. Sessions are single use.
	ErrSessionDone = errors.New("playback session already used")
)

// IOError reports a storage-side failure: a seek or read that failed, or a
// stream that ended early (in which case it wraps ErrTruncatedHeader or
// ErrUnexpectedEOF with the byte counts involved).
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// SinkError reports a sink-side failure during configure, enable, write or
// disable.
type SinkError struct {
	Op  string
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("sink %s: %v", e.Op, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
