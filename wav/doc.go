// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes the canonical 44-byte WAV container header.
//
// The package is deliberately small: it handles only the fixed layout that
// consists of a RIFF chunk, one "fmt " section and one "data" section, which
// is what embedded players and most PCM recorders produce. It performs no
// I/O; both ParseHeader and EncodeHeader are pure functions over byte slices.
//
// # Parsing
//
//	h, err := wav.ParseHeader(buf)
//	if err != nil {
//	    var bad *wav.BadTagError
//	    if errors.As(err, &bad) {
//	        // bad.Field names the offending header field
//	    }
//	}
//
// ParseHeader validates only the container structure (the four fixed tags).
// Whether the described stream is playable on a given device is policy that
// belongs to the device, not the file format; see the audio package.
//
// # Encoding
//
//	h := wav.NewHeader(44100, 1, uint32(len(pcm)))
//	buf := wav.EncodeHeader(h)
//
// NewHeader fills in the derived bookkeeping fields (byte rate, block align,
// declared file size) for 16-bit linear PCM.
//
// # Field layout
//
// Offsets relative to file start, all integers little-endian:
//
//	0   "RIFF"            8   "WAVE"           12  "fmt "
//	4   file size         16  fmt size         20  audio format
//	22  channels          24  sample rate      28  byte rate
//	32  block align       34  bits per sample  36  "data"
//	40  data size         44  PCM payload
package wav
