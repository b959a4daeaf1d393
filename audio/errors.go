// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrWriteTimeout reports a blocking write that could not hand its
	// bytes to the device queue within the allowed wait.
	ErrWriteTimeout = errors.New("sink write timeout")
	// ErrNotConfigured reports sink use before a successful Configure.
	ErrNotConfigured = errors.New("sink not configured")
	// ErrNotEnabled reports a write while the transmit path is disabled.
	ErrNotEnabled = errors.New("sink not enabled")
)

// UnsupportedFormatError reports a well-formed stream description that the
// output device cannot play. Param names the rejected parameter ("audio
// format", "sample rate", "bits per sample" or "channels").
type UnsupportedFormatError struct {
	Param string
	Value int
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported %s: %d", e.Param, e.Value)
}
