// ABOUTME: Tests for entropy metrics
// ABOUTME: Tests the Shannon bound, single-symbol edge case and error reporting
package entropy

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/harperreed/waventropy/pkg/audio"
	"github.com/harperreed/waventropy/pkg/huffman"
)

const tolerance = 1e-9

func codesFor(t *testing.T, freqs huffman.FrequencyTable) huffman.CodeTable {
	t.Helper()

	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	codes, err := huffman.AssignCodes(tree)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	return codes
}

func TestCompute_EndToEnd(t *testing.T) {
	freqs := huffman.CountFrequencies([]int16{1, 1, 1, 2})
	codes := codesFor(t, freqs)

	m, err := Compute(freqs, codes)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	expected := -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25))
	if math.Abs(m.Entropy-expected) > tolerance {
		t.Errorf("expected entropy %v, got %v", expected, m.Entropy)
	}
	if math.Abs(m.Entropy-0.8113) > 1e-4 {
		t.Errorf("expected entropy ~0.8113, got %.4f", m.Entropy)
	}
	if math.Abs(m.AverageCodeLength-1.0) > tolerance {
		t.Errorf("expected average code length 1.0, got %v", m.AverageCodeLength)
	}
	if m.Symbols != 2 {
		t.Errorf("expected 2 symbols, got %d", m.Symbols)
	}
	if m.Samples != 4 {
		t.Errorf("expected 4 samples, got %d", m.Samples)
	}
}

func TestCompute_SingleSymbol(t *testing.T) {
	freqs := huffman.CountFrequencies([]int16{9, 9, 9, 9, 9})
	codes := codesFor(t, freqs)

	m, err := Compute(freqs, codes)
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	if m.Entropy != 0 {
		t.Errorf("expected entropy 0, got %v", m.Entropy)
	}
	// Empty code for the only symbol
	if m.AverageCodeLength != 0 {
		t.Errorf("expected average code length 0, got %v", m.AverageCodeLength)
	}
	if freqs[9] != m.Samples {
		t.Errorf("expected symbol count %d to equal total %d", freqs[9], m.Samples)
	}
	if m.Efficiency() != 1 {
		t.Errorf("expected efficiency 1, got %v", m.Efficiency())
	}
}

func TestCompute_Empty(t *testing.T) {
	_, err := Compute(huffman.FrequencyTable{}, huffman.CodeTable{})
	if !errors.Is(err, audio.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestCompute_MissingCode(t *testing.T) {
	freqs := huffman.FrequencyTable{1: 2, 2: 2}
	codes := huffman.CodeTable{1: {Bits: 0, Len: 1}}

	_, err := Compute(freqs, codes)
	if !errors.Is(err, ErrMissingCode) {
		t.Errorf("expected ErrMissingCode, got %v", err)
	}
}

func TestShannonBound(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		freqs := huffman.FrequencyTable{}
		distinct := 2 + rng.Intn(500)
		for len(freqs) < distinct {
			freqs[int16(rng.Intn(65536)-32768)] = uint64(1 + rng.Intn(5000))
		}
		codes := codesFor(t, freqs)

		m, err := Compute(freqs, codes)
		if err != nil {
			t.Fatalf("trial %d: compute failed: %v", trial, err)
		}

		if m.Entropy > m.AverageCodeLength+tolerance {
			t.Errorf("trial %d: entropy %v exceeds average length %v", trial, m.Entropy, m.AverageCodeLength)
		}
		if m.AverageCodeLength >= m.Entropy+1 {
			t.Errorf("trial %d: average length %v is not below entropy+1 (%v)", trial, m.AverageCodeLength, m.Entropy+1)
		}
		if m.Redundancy() < -tolerance {
			t.Errorf("trial %d: negative redundancy %v", trial, m.Redundancy())
		}
	}
}

func TestAverageCodeLengthMatchesWeightedSum(t *testing.T) {
	freqs := huffman.FrequencyTable{-3: 10, 0: 40, 7: 25, 12: 5, 100: 20}
	codes := codesFor(t, freqs)

	var weighted uint64
	for sym, count := range freqs {
		weighted += count * uint64(codes[sym].Len)
	}
	expected := float64(weighted) / float64(freqs.Total())

	if got := AverageCodeLength(freqs, codes); math.Abs(got-expected) > tolerance {
		t.Errorf("expected average length %v, got %v", expected, got)
	}
}

func TestEntropy_Uniform(t *testing.T) {
	freqs := huffman.FrequencyTable{}
	for s := int16(0); s < 256; s++ {
		freqs[s] = 4
	}

	if got := Entropy(freqs); math.Abs(got-8) > tolerance {
		t.Errorf("expected entropy 8 bits, got %v", got)
	}

	// Uniform over a power of two is coded exactly at the entropy
	m, err := Compute(freqs, codesFor(t, freqs))
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}
	if math.Abs(m.AverageCodeLength-8) > tolerance {
		t.Errorf("expected average length 8, got %v", m.AverageCodeLength)
	}
	if math.Abs(m.Efficiency()-1) > tolerance {
		t.Errorf("expected efficiency 1, got %v", m.Efficiency())
	}
}

func TestEntropy_Empty(t *testing.T) {
	if got := Entropy(huffman.FrequencyTable{}); got != 0 {
		t.Errorf("expected 0 for an empty table, got %v", got)
	}
}

func TestEntropy_RepeatableAcrossCalls(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	freqs := huffman.FrequencyTable{}
	for len(freqs) < 20000 {
		freqs[int16(rng.Intn(65536)-32768)] = uint64(1 + rng.Intn(1000))
	}
	codes := codesFor(t, freqs)

	h0 := Entropy(freqs)
	avg0 := AverageCodeLength(freqs, codes)
	for i := 0; i < 50; i++ {
		if h := Entropy(freqs); math.Float64bits(h) != math.Float64bits(h0) {
			t.Fatalf("call %d: entropy %v differs from first result %v", i, h, h0)
		}
		if avg := AverageCodeLength(freqs, codes); math.Float64bits(avg) != math.Float64bits(avg0) {
			t.Fatalf("call %d: average length %v differs from first result %v", i, avg, avg0)
		}
	}
}
