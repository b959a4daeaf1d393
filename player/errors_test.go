// SPDX-License-Identifier: EPL-2.0

package player

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrTruncatedHeader", ErrTruncatedHeader, "truncated WAV header"},
		{"ErrUnexpectedEOF", ErrUnexpectedEOF, "unexpected end of stream"},
		{"ErrSessionDone", ErrSessionDone, "playback session already used"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.err == nil {
				t.Fatalf("%s is nil", tt.name)
			}

			if tt.err.Error() != tt.want {
				t.Errorf("%s.Error() = %q, want %q", tt.name, tt.err.Error(), tt.want)
			}
		})
	}
}

func TestIOError(t *testing.T) {
	t.Parallel()

	inner := fmt.Errorf("%w: got 1500 of 2500 data bytes", ErrUnexpectedEOF)
	err := &IOError{Op: "read", Err: inner}

	want := "storage read: unexpected end of stream: got 1500 of 2500 data bytes"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Error("errors.Is(err, ErrUnexpectedEOF) = false, want true")
	}
}

func TestSinkError(t *testing.T) {
	t.Parallel()

	inner := errors.New("PLL would not lock")
	err := &SinkError{Op: "configure", Err: inner}

	want := "sink configure: PLL would not lock"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is(err, inner) = false, want true")
	}

	var sinkErr *SinkError
	if !errors.As(fmt.Errorf("play: %w", err), &sinkErr) {
		t.Error("errors.As through a wrap = false, want true")
	}
}
