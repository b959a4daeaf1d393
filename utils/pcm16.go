package utils

import "encoding/binary"

// PCM16ToInt16 decodes little-endian 16-bit PCM bytes into int16 samples.
// A trailing odd byte is ignored.
func PCM16ToInt16(p []byte) []int16 {
	samples := make([]int16, len(p)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(p[2*i : 2*i+2]))
	}

	return samples
}

// PCM16ToInt decodes little-endian 16-bit PCM bytes into int sample values,
// the representation go-audio buffers carry. A trailing odd byte is ignored.
func PCM16ToInt(p []byte) []int {
	samples := make([]int, len(p)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(p[2*i : 2*i+2])))
	}

	return samples
}

// Int16ToPCM16 encodes int16 samples as little-endian 16-bit PCM bytes.
func Int16ToPCM16(samples []int16) []byte {
	p := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(p[2*i:2*i+2], uint16(s))
	}

	return p
}
