// ABOUTME: PCM sample decoder
// ABOUTME: Splits interleaved 16-bit little-endian stereo bytes into channels
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/harperreed/waventropy/pkg/audio"
)

// DecodeStereo16 extracts the left and right channels from an interleaved
// 16-bit little-endian buffer. Each sample keeps its raw bit pattern.
func DecodeStereo16(data []byte, frames, channels int) (audio.Stereo, error) {
	if channels != audio.StereoChannels {
		return audio.Stereo{}, fmt.Errorf("%w: %d channels (only stereo is supported)",
			audio.ErrUnsupportedFormat, channels)
	}

	if frames < 0 {
		return audio.Stereo{}, fmt.Errorf("%w: negative frame count %d", audio.ErrMalformedInput, frames)
	}

	if len(data)%audio.BytesPerFrame != 0 {
		return audio.Stereo{}, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte frame size",
			audio.ErrMalformedInput, len(data), audio.BytesPerFrame)
	}

	if len(data) < frames*audio.BytesPerFrame {
		return audio.Stereo{}, fmt.Errorf("%w: %d bytes cannot hold %d frames",
			audio.ErrMalformedInput, len(data), frames)
	}

	left := make([]int16, frames)
	right := make([]int16, frames)
	for i := 0; i < frames; i++ {
		off := i * audio.BytesPerFrame
		left[i] = int16(binary.LittleEndian.Uint16(data[off:]))
		right[i] = int16(binary.LittleEndian.Uint16(data[off+2:]))
	}

	return audio.Stereo{Left: left, Right: right}, nil
}

// appendInt16LE appends a sample as two little-endian bytes
func appendInt16LE(dst []byte, sample int16) []byte {
	return binary.LittleEndian.AppendUint16(dst, uint16(sample))
}
