// SPDX-License-Identifier: EPL-2.0

// Package wavplay streams PCM audio from WAV files to a real-time audio
// output under bounded memory, the way a microcontroller feeds a DAC from
// an SD card: parse the 44-byte container header, check the format against
// what the device can clock, then pump fixed-size chunks through a blocking
// sink that applies real-time backpressure.
//
// # Quick Start
//
//	sink := portaudio.New()
//
//	stats, err := wavplay.PlayFile("tune.wav", sink)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("played %d bytes in %v\n", stats.Bytes, stats.Elapsed)
//
// # Structure
//
// The pipeline is split along its trust boundaries:
//
//   - wav parses and encodes the canonical container header. Pure functions,
//     no policy.
//   - audio defines the Sink contract and the injectable device
//     Capabilities deciding what is playable.
//   - player runs the single-use, single-goroutine streaming session with
//     an explicit state machine and a reused chunk buffer.
//   - sinks/portaudio and sinks/wavfile are concrete backends: live
//     playback through the host audio device, and offline capture back
//     into a WAV file.
//
// Any io.ReadSeeker can act as the storage side, so the same engine runs
// against files, in-memory buffers or block-device wrappers.
//
// # Error Handling
//
// Faults are terminal for a session and carry their origin: header parse
// errors (wav.BadTagError and friends), *audio.UnsupportedFormatError for
// infeasible formats, *player.IOError for the storage side and
// *player.SinkError for the device side. A session that already armed the
// sink always disables it on the way out, so an abort never leaves the
// hardware transmitting.
package wavplay
