// SPDX-License-Identifier: EPL-2.0

// Package wavfile provides an audio.Sink that records the played stream
// into a WAV file, using github.com/go-audio/wav for the container writing.
//
//	out, _ := os.Create("capture.wav")
//	defer out.Close()
//
//	sink := wavfile.New(out)
//	stats, err := wavplay.PlayFile("tune.wav", sink)
//
// Because the sink never applies backpressure, a session playing into it
// runs at storage speed rather than real time, which is exactly what tests
// and offline tooling want.
package wavfile
