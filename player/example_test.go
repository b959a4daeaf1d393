// SPDX-License-Identifier: EPL-2.0

package player_test

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ik5/wavplay/player"
	"github.com/ik5/wavplay/wav"
)

// countingSink is a minimal audio.Sink that discards samples and counts
// bytes. Real backends live in the sinks subpackages.
type countingSink struct {
	rate     int
	bits     int
	channels int
	bytes    int
}

func (s *countingSink) Configure(rate, bits, channels int) error {
	s.rate, s.bits, s.channels = rate, bits, channels

	return nil
}

func (s *countingSink) Enable() error { return nil }

func (s *countingSink) WriteBlocking(p []byte, _ time.Duration) (int, error) {
	s.bytes += len(p)

	return len(p), nil
}

func (s *countingSink) Disable() error { return nil }

// Example streams an in-memory WAV file through a custom sink.
func Example() {
	// A complete file: 44-byte header plus 2500 PCM payload bytes.
	file := append(wav.EncodeHeader(wav.NewHeader(44100, 1, 2500)), make([]byte, 2500)...)

	sink := &countingSink{}

	p := player.New(bytes.NewReader(file), sink, player.WithChunkSize(1024))

	stats, err := p.Play()
	if err != nil {
		fmt.Println("play error:", err)
		return
	}

	fmt.Printf("configured: %d Hz, %d bit, %d channel\n", sink.rate, sink.bits, sink.channels)
	fmt.Printf("delivered: %d bytes in %d chunks\n", stats.Bytes, stats.Chunks)
	// Output:
	// configured: 44100 Hz, 16 bit, 1 channel
	// delivered: 2500 bytes in 3 chunks
}
