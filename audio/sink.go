// SPDX-License-Identifier: EPL-2.0

package audio

import "time"

// Sink is the hardware audio output abstraction: a configurable, blocking
// byte queue feeding a DAC or an equivalent backend.
//
// Lifecycle: Configure, Enable, any number of WriteBlocking calls, Disable.
// Configure may be rejected by the backend when the parameters are outside
// what the device can clock. WriteBlocking pushes little-endian PCM bytes
// and blocks until the device queue accepts them or timeout passes; the
// timeout is a maximum wait, not a polling interval, and should be generous
// enough that normal ring-buffer backpressure never trips it. A timed-out
// write reports ErrWriteTimeout. Disable stops the transmit path; drain
// semantics are the sink's own business.
type Sink interface {
	Configure(sampleRate, bitsPerSample, channels int) error
	Enable() error
	WriteBlocking(p []byte, timeout time.Duration) (int, error)
	Disable() error
}
