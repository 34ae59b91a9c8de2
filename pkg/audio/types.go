// ABOUTME: Audio type definitions
// ABOUTME: Defines PCM formats, decoded stereo channels and error kinds
package audio

import "errors"

// Fixed properties of the PCM layout the analyzer accepts
const (
	StereoChannels = 2
	BytesPerSample = 2
	BytesPerFrame  = StereoChannels * BytesPerSample
)

var (
	// ErrUnsupportedFormat is returned for any channel count other than 2
	// or a sample width other than 16 bits.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrMalformedInput is returned when a byte buffer does not match the
	// declared frame count and frame size.
	ErrMalformedInput = errors.New("malformed audio input")

	// ErrEmptyInput is returned when there are no samples to analyze.
	ErrEmptyInput = errors.New("empty audio input")
)

// Format describes audio stream format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
	FrameSize  int // bytes per frame
}

// Stereo holds decoded left and right channels. Both slices have one entry per frame.
type Stereo struct {
	Left  []int16
	Right []int16
}

// Frames returns the number of stereo frames
func (s Stereo) Frames() int {
	return len(s.Left)
}

// Interleave merges the channels element-wise: left[0], right[0], left[1], right[1], ...
func (s Stereo) Interleave() []int16 {
	out := make([]int16, 0, len(s.Left)+len(s.Right))
	for i := range s.Left {
		out = append(out, s.Left[i], s.Right[i])
	}
	return out
}
