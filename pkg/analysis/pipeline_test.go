// ABOUTME: Tests for the analysis pipeline
// ABOUTME: Tests end-to-end metrics and error kinds for in-memory clips
package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/harperreed/waventropy/pkg/audio"
	"github.com/harperreed/waventropy/pkg/audio/decode"
)

func stereoClip(samples ...int16) *decode.Clip {
	data := make([]byte, 0, len(samples)*2)
	for _, s := range samples {
		data = append(data, byte(s), byte(uint16(s)>>8))
	}
	return &decode.Clip{
		Title:  "test",
		Format: audio.Format{Codec: "pcm", SampleRate: 44100, Channels: 2, BitDepth: 16, FrameSize: 4},
		Data:   data,
		Frames: len(samples) / 2,
	}
}

func TestAnalyze_EndToEnd(t *testing.T) {
	// Interleaves to 1, 1, 1, 2
	res, err := Analyze(stereoClip(1, 1, 1, 2))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if res.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", res.Frames())
	}
	if res.Frequencies[1] != 3 || res.Frequencies[2] != 1 {
		t.Errorf("expected frequencies {1:3, 2:1}, got %v", res.Frequencies)
	}
	if res.Codes[1].Len != 1 || res.Codes[2].Len != 1 {
		t.Errorf("expected 1-bit codes, got %q and %q", res.Codes[1], res.Codes[2])
	}
	if math.Abs(res.Metrics.Entropy-0.8113) > 1e-4 {
		t.Errorf("expected entropy ~0.8113, got %v", res.Metrics.Entropy)
	}
	if math.Abs(res.Metrics.AverageCodeLength-1) > 1e-9 {
		t.Errorf("expected average code length 1, got %v", res.Metrics.AverageCodeLength)
	}
	if res.Title != "test" {
		t.Errorf("expected title 'test', got %q", res.Title)
	}
}

func TestAnalyze_ChannelsPreserved(t *testing.T) {
	res, err := Analyze(stereoClip(256, 512, -1, -32768))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if res.Channels.Left[0] != 256 || res.Channels.Left[1] != -1 {
		t.Errorf("unexpected left channel %v", res.Channels.Left)
	}
	if res.Channels.Right[0] != 512 || res.Channels.Right[1] != -32768 {
		t.Errorf("unexpected right channel %v", res.Channels.Right)
	}
	if !res.Codes.IsPrefixFree() {
		t.Error("expected prefix-free codes")
	}
}

func TestAnalyze_SingleSymbol(t *testing.T) {
	res, err := Analyze(stereoClip(5, 5, 5, 5, 5, 5))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if res.Metrics.Entropy != 0 {
		t.Errorf("expected entropy 0, got %v", res.Metrics.Entropy)
	}
	if res.Metrics.AverageCodeLength != 0 {
		t.Errorf("expected average code length 0, got %v", res.Metrics.AverageCodeLength)
	}
	if res.Frequencies[5] != 6 {
		t.Errorf("expected count 6, got %d", res.Frequencies[5])
	}
}

func TestAnalyze_UnsupportedFormat(t *testing.T) {
	clip := stereoClip(1, 2, 3, 4)
	clip.Format.Channels = 1

	_, err := Analyze(clip)
	if !errors.Is(err, audio.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestAnalyze_MalformedInput(t *testing.T) {
	clip := stereoClip(1, 2, 3, 4)
	clip.Data = clip.Data[:7]
	clip.Frames = 1

	_, err := Analyze(clip)
	if !errors.Is(err, audio.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	_, err := Analyze(stereoClip())
	if !errors.Is(err, audio.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestResultCodeRows(t *testing.T) {
	// 0 appears 5 times, 1 and 2 once each
	res, err := Analyze(stereoClip(0, 0, 0, 0, 0, 1, 2, 0))
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	rows := res.CodeRows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].Symbol != 0 || rows[0].Count != 6 || rows[0].Code.Len != 1 {
		t.Errorf("expected first row {0, 6, 1 bit}, got %+v", rows[0])
	}
	if rows[1].Symbol != 1 || rows[2].Symbol != 2 {
		t.Errorf("expected symbols 1 then 2 for equal lengths, got %d then %d", rows[1].Symbol, rows[2].Symbol)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Code.Len < rows[i-1].Code.Len {
			t.Errorf("rows not ordered by code length at %d", i)
		}
	}
}
