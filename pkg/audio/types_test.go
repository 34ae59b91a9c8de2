// ABOUTME: Tests for audio types
// ABOUTME: Tests channel interleaving and frame accounting
package audio

import "testing"

func TestStereoInterleave(t *testing.T) {
	s := Stereo{
		Left:  []int16{1, 3, 5},
		Right: []int16{2, 4, 6},
	}

	got := s.Interleave()
	expected := []int16{1, 2, 3, 4, 5, 6}

	if len(got) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("sample %d: expected %d, got %d", i, expected[i], got[i])
		}
	}
}

func TestStereoInterleave_Empty(t *testing.T) {
	s := Stereo{}

	if got := s.Interleave(); len(got) != 0 {
		t.Errorf("expected no samples, got %d", len(got))
	}
	if s.Frames() != 0 {
		t.Errorf("expected 0 frames, got %d", s.Frames())
	}
}

func TestStereoFrames(t *testing.T) {
	s := Stereo{
		Left:  []int16{-32768, 0, 32767, 7},
		Right: []int16{0, 0, 0, 0},
	}

	if s.Frames() != 4 {
		t.Errorf("expected 4 frames, got %d", s.Frames())
	}
	if got := len(s.Interleave()); got != 8 {
		t.Errorf("expected 8 interleaved samples, got %d", got)
	}
}

func TestFrameSizeConstants(t *testing.T) {
	if BytesPerFrame != 4 {
		t.Errorf("expected 4 bytes per stereo 16-bit frame, got %d", BytesPerFrame)
	}
}
