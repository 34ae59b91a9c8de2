// ABOUTME: Audio fundamentals package providing core types and error kinds
// ABOUTME: Defines Format, Stereo channel pairs and the shared sentinel errors
// Package audio provides fundamental audio types shared by the analysis pipeline.
//
// This package defines core types used throughout waventropy:
//   - Format: Describes the PCM stream handed over by a container loader
//   - Stereo: Two decoded 16-bit channels of equal length
//
// It also defines the error kinds every stage reports:
//   - ErrUnsupportedFormat: channel layout or sample width the pipeline cannot analyze
//   - ErrMalformedInput: byte buffer inconsistent with the declared frame count
//   - ErrEmptyInput: nothing left to analyze after decoding
//
// Example:
//
//	format := audio.Format{
//	    Codec:      "pcm",
//	    SampleRate: 44100,
//	    Channels:   2,
//	    BitDepth:   16,
//	}
//
//	// Merge channels into the symbol sequence used for statistics
//	symbols := stereo.Interleave()
package audio
