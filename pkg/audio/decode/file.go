// ABOUTME: Audio file loaders producing raw PCM clips
// ABOUTME: Supports WAV, FLAC, MP3 and headerless s16le files with size bounds
package decode

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/harperreed/waventropy/pkg/audio"
	"github.com/mewkiz/flac"
)

const (
	// DefaultMaxBytes bounds the size of a file accepted by Load
	DefaultMaxBytes = 512 << 20

	// DefaultRawSampleRate is assumed for headerless PCM files
	DefaultRawSampleRate = 44100
)

// ErrInputTooLarge is returned when a file exceeds the configured size bound
var ErrInputTooLarge = errors.New("audio file too large")

// Clip is a loaded audio file reduced to interleaved 16-bit little-endian PCM
type Clip struct {
	Title  string
	Format audio.Format
	Data   []byte
	Frames int
}

// Options controls how files are loaded
type Options struct {
	MaxBytes      int64 // 0 means DefaultMaxBytes
	RawSampleRate int   // sample rate for .pcm/.raw files, 0 means DefaultRawSampleRate
}

// Load reads an audio file and returns its raw PCM clip.
// The file type is chosen by extension.
func Load(path string, opts Options) (*Clip, error) {
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat audio file: %w", err)
	}
	if info.Size() > maxBytes {
		return nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrInputTooLarge, path, info.Size(), maxBytes)
	}

	filename := filepath.Base(path)
	title := strings.TrimSuffix(filename, filepath.Ext(filename))

	var clip *Clip
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav", ".wave":
		clip, err = loadWAV(path)
	case ".flac":
		clip, err = loadFLAC(path)
	case ".mp3":
		clip, err = loadMP3(path)
	case ".pcm", ".raw":
		rate := opts.RawSampleRate
		if rate <= 0 {
			rate = DefaultRawSampleRate
		}
		clip, err = loadRaw(path, rate)
	default:
		return nil, fmt.Errorf("%w: extension %q (supported: .wav, .flac, .mp3, .pcm, .raw)",
			audio.ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	clip.Title = title
	log.Printf("Loaded %s: %s (sample rate: %d Hz, channels: %d, frames: %d)",
		clip.Format.Codec, title, clip.Format.SampleRate, clip.Format.Channels, clip.Frames)

	return clip, nil
}

func loadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid WAV file", audio.ErrMalformedInput)
	}

	// WAVE_FORMAT_PCM
	if dec.WavAudioFormat != 1 {
		return nil, fmt.Errorf("%w: WAV encoding %d (only integer PCM is supported)",
			audio.ErrUnsupportedFormat, dec.WavAudioFormat)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples (only 16-bit is supported)",
			audio.ErrUnsupportedFormat, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV samples: %w", err)
	}

	channels := int(dec.NumChans)
	data := make([]byte, 0, len(buf.Data)*audio.BytesPerSample)
	for _, v := range buf.Data {
		data = appendInt16LE(data, int16(v))
	}

	return &Clip{
		Format: audio.Format{
			Codec:      "wav",
			SampleRate: int(dec.SampleRate),
			Channels:   channels,
			BitDepth:   16,
			FrameSize:  channels * audio.BytesPerSample,
		},
		Data:   data,
		Frames: frameCount(len(data), channels),
	}, nil
}

func loadFLAC(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode FLAC: %w", audio.ErrMalformedInput, err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	if info.BitsPerSample != 16 {
		return nil, fmt.Errorf("%w: %d-bit samples (only 16-bit is supported)",
			audio.ErrUnsupportedFormat, info.BitsPerSample)
	}

	data := make([]byte, 0, int(info.NSamples)*channels*audio.BytesPerSample)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse FLAC frame: %w", audio.ErrMalformedInput, err)
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := range frame.Subframes {
				data = appendInt16LE(data, int16(frame.Subframes[ch].Samples[i]))
			}
		}
	}

	return &Clip{
		Format: audio.Format{
			Codec:      "flac",
			SampleRate: int(info.SampleRate),
			Channels:   channels,
			BitDepth:   16,
			FrameSize:  channels * audio.BytesPerSample,
		},
		Data:   data,
		Frames: frameCount(len(data), channels),
	}, nil
}

func loadMP3(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode MP3: %w", audio.ErrMalformedInput, err)
	}

	// go-mp3 always produces 16-bit little-endian stereo
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("mp3 decode error: %w", err)
	}
	frames := frameCount(len(data), audio.StereoChannels)

	return &Clip{
		Format: audio.Format{
			Codec:      "mp3",
			SampleRate: dec.SampleRate(),
			Channels:   audio.StereoChannels,
			BitDepth:   16,
			FrameSize:  audio.BytesPerFrame,
		},
		Data:   data[:frames*audio.BytesPerFrame],
		Frames: frames,
	}, nil
}

func loadRaw(path string, sampleRate int) (*Clip, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM file: %w", err)
	}

	return &Clip{
		Format: audio.Format{
			Codec:      "pcm",
			SampleRate: sampleRate,
			Channels:   audio.StereoChannels,
			BitDepth:   16,
			FrameSize:  audio.BytesPerFrame,
		},
		Data:   data,
		Frames: frameCount(len(data), audio.StereoChannels),
	}, nil
}

func frameCount(dataLen, channels int) int {
	if channels <= 0 {
		return 0
	}
	return dataLen / (channels * audio.BytesPerSample)
}
