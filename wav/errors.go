// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
)

var (
	// ErrShortHeader reports a buffer smaller than the 44-byte header.
	ErrShortHeader = errors.New("short WAV header")
)

// BadTagError reports a fixed header tag that does not hold its required
// value. Field names the header field in question ("riff id", "format tag",
// "chunk format id" or "data section id").
type BadTagError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *BadTagError) Error() string {
	return fmt.Sprintf("bad %s tag: expected %q, got %q", e.Field, e.Expected, e.Actual)
}
