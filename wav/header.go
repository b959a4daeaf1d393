// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"time"
)

// HeaderSize is the exact byte length of a canonical WAV header.
// The PCM payload starts at this offset in the file.
const HeaderSize = 44

// FormatPCM is the audio format code for uncompressed linear PCM.
const FormatPCM = 1

// Fixed tag values of the canonical header layout.
const (
	tagRIFF = "RIFF"
	tagWAVE = "WAVE"
	tagFmt  = "fmt "
	tagData = "data"
)

// Header describes a canonical 44-byte WAV container header: a RIFF chunk
// holding a single "fmt " section immediately followed by a single "data"
// section. All multi-byte fields are little-endian on the wire.
type Header struct {
	// FileSize is the declared RIFF chunk size (file size minus 8 bytes).
	// Informational only; playback trusts DataSize alone.
	FileSize uint32
	// FmtSize is the declared size of the format section (16 for PCM).
	FmtSize uint32
	// AudioFormat is the encoding code. 1 means linear PCM.
	AudioFormat uint16
	// Channels is the channel count (1=mono, 2=stereo).
	Channels uint16
	// SampleRate in Hz.
	SampleRate uint32
	// ByteRate is SampleRate times BlockAlign.
	ByteRate uint32
	// BlockAlign is the byte size of one frame: Channels * BitsPerSample/8.
	BlockAlign uint16
	// BitsPerSample is the bit depth of a single sample.
	BitsPerSample uint16
	// DataSize is the exact byte length of the PCM payload that follows
	// the header.
	DataSize uint32
}

// ParseHeader decodes the 44-byte header found at the start of a WAV file.
// It validates the four fixed tags ("RIFF", "WAVE", "fmt ", "data") and
// decodes every field, but applies no playback policy: an exotic sample rate
// or bit depth still parses fine. Feasibility against a concrete output
// device is a separate concern (see audio.Capabilities).
//
// b must hold at least HeaderSize bytes; extra bytes are ignored.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d of %d bytes", ErrShortHeader, len(b), HeaderSize)
	}

	tags := []struct {
		field string
		want  string
		off   int
	}{
		{"riff id", tagRIFF, 0},
		{"format tag", tagWAVE, 8},
		{"chunk format id", tagFmt, 12},
		{"data section id", tagData, 36},
	}
	for _, tag := range tags {
		got := string(b[tag.off : tag.off+4])
		if got != tag.want {
			return Header{}, &BadTagError{Field: tag.field, Expected: tag.want, Actual: got}
		}
	}

	return Header{
		FileSize:      binary.LittleEndian.Uint32(b[4:8]),
		FmtSize:       binary.LittleEndian.Uint32(b[16:20]),
		AudioFormat:   binary.LittleEndian.Uint16(b[20:22]),
		Channels:      binary.LittleEndian.Uint16(b[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(b[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(b[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(b[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(b[34:36]),
		DataSize:      binary.LittleEndian.Uint32(b[40:44]),
	}, nil
}

// EncodeHeader renders h back into its 44-byte wire form. The fixed tags are
// always written with their canonical values, so EncodeHeader(h) round-trips
// through ParseHeader for any h.
func EncodeHeader(h Header) []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:4], tagRIFF)
	binary.LittleEndian.PutUint32(b[4:8], h.FileSize)
	copy(b[8:12], tagWAVE)

	copy(b[12:16], tagFmt)
	binary.LittleEndian.PutUint32(b[16:20], h.FmtSize)
	binary.LittleEndian.PutUint16(b[20:22], h.AudioFormat)
	binary.LittleEndian.PutUint16(b[22:24], h.Channels)
	binary.LittleEndian.PutUint32(b[24:28], h.SampleRate)
	binary.LittleEndian.PutUint32(b[28:32], h.ByteRate)
	binary.LittleEndian.PutUint16(b[32:34], h.BlockAlign)
	binary.LittleEndian.PutUint16(b[34:36], h.BitsPerSample)

	copy(b[36:40], tagData)
	binary.LittleEndian.PutUint32(b[40:44], h.DataSize)

	return b
}

// NewHeader builds a 16-bit linear PCM header with all derived fields
// (ByteRate, BlockAlign, FileSize, FmtSize) computed from the primary ones.
func NewHeader(sampleRate, channels int, dataSize uint32) Header {
	blockAlign := uint16(channels) * 2

	return Header{
		FileSize:      36 + dataSize,
		FmtSize:       16,
		AudioFormat:   FormatPCM,
		Channels:      uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(blockAlign),
		BlockAlign:    blockAlign,
		BitsPerSample: 16,
		DataSize:      dataSize,
	}
}

// Duration is the playback time of the data section at the declared byte
// rate. Returns 0 when ByteRate is 0.
func (h Header) Duration() time.Duration {
	if h.ByteRate == 0 {
		return 0
	}

	return time.Duration(float64(h.DataSize) / float64(h.ByteRate) * float64(time.Second))
}

// Inconsistencies reports mismatches between the declared bookkeeping fields
// and the values derived from the primary ones. Real-world files get these
// wrong often enough that playback trusts DataSize alone, so callers should
// treat the result as diagnostics rather than validation failures.
func (h Header) Inconsistencies() []string {
	var out []string

	if want := h.Channels * (h.BitsPerSample / 8); h.BitsPerSample%8 == 0 && h.BlockAlign != want {
		out = append(out, fmt.Sprintf("block align is %d, channels x bytes per sample gives %d", h.BlockAlign, want))
	}

	if want := h.SampleRate * uint32(h.BlockAlign); h.ByteRate != want {
		out = append(out, fmt.Sprintf("byte rate is %d, sample rate x block align gives %d", h.ByteRate, want))
	}

	if want := 36 + h.DataSize; h.FileSize != want {
		out = append(out, fmt.Sprintf("declared file size is %d, header plus data gives %d", h.FileSize, want))
	}

	return out
}
