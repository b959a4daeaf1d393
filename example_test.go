// SPDX-License-Identifier: EPL-2.0

package wavplay_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/wavplay"
	"github.com/ik5/wavplay/player"
	"github.com/ik5/wavplay/sinks/wavfile"
	"github.com/ik5/wavplay/wav"
)

// Example_captureToFile plays a synthetic WAV file into the offline capture
// sink, producing a byte-identical copy of the stream.
func Example_captureToFile() {
	dir, err := os.MkdirTemp("", "wavplay")
	if err != nil {
		fmt.Println("tempdir error:", err)
		return
	}
	defer os.RemoveAll(dir)

	// Build a small mono test file: 44-byte header plus 2500 PCM bytes.
	inPath := filepath.Join(dir, "in.wav")
	file := append(wav.EncodeHeader(wav.NewHeader(44100, 1, 2500)), make([]byte, 2500)...)

	if err := os.WriteFile(inPath, file, 0o644); err != nil {
		fmt.Println("write error:", err)
		return
	}

	out, err := os.Create(filepath.Join(dir, "out.wav"))
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer out.Close()

	stats, err := wavplay.PlayFile(inPath, wavfile.New(out), player.WithChunkSize(1024))
	if err != nil {
		fmt.Println("play error:", err)
		return
	}

	fmt.Printf("played %d bytes in %d chunks\n", stats.Bytes, stats.Chunks)
	// Output: played 2500 bytes in 3 chunks
}

// Example_feasibility shows an infeasible file being rejected before any
// device configuration happens.
func Example_feasibility() {
	dir, err := os.MkdirTemp("", "wavplay")
	if err != nil {
		fmt.Println("tempdir error:", err)
		return
	}
	defer os.RemoveAll(dir)

	// 22.05 kHz parses fine but the default DAC policy cannot clock it.
	inPath := filepath.Join(dir, "in.wav")
	file := append(wav.EncodeHeader(wav.NewHeader(22050, 1, 100)), make([]byte, 100)...)

	if err := os.WriteFile(inPath, file, 0o644); err != nil {
		fmt.Println("write error:", err)
		return
	}

	out, err := os.Create(filepath.Join(dir, "out.wav"))
	if err != nil {
		fmt.Println("create error:", err)
		return
	}
	defer out.Close()

	_, err = wavplay.PlayFile(inPath, wavfile.New(out))
	fmt.Println(err)
	// Output: unsupported sample rate: 22050
}
