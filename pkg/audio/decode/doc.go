// ABOUTME: Audio decoding package for the analysis pipeline
// ABOUTME: Loads WAV, FLAC, MP3 and raw PCM files and splits 16-bit stereo frames
// Package decode turns audio files into the raw PCM buffers the analyzer consumes.
//
// Supports: WAV (go-audio/wav), FLAC (mewkiz/flac), MP3 (go-mp3) and
// headerless signed 16-bit little-endian stereo (.pcm, .raw).
//
// Load produces a Clip holding interleaved little-endian bytes plus the
// declared format and frame count. DecodeStereo16 splits such a buffer
// into per-channel int16 samples without any normalization.
//
// Example:
//
//	clip, err := decode.Load("song.wav", 0)
//	stereo, err := decode.DecodeStereo16(clip.Data, clip.Frames, clip.Format.Channels)
package decode
