// ABOUTME: Information-theoretic metrics over a symbol distribution
// ABOUTME: Computes Shannon entropy and frequency-weighted average code length
// Package entropy summarizes a frequency table and its Huffman codes.
package entropy

import (
	"errors"
	"fmt"
	"math"

	"github.com/harperreed/waventropy/pkg/audio"
	"github.com/harperreed/waventropy/pkg/huffman"
)

// ErrMissingCode is returned when a counted symbol has no code
var ErrMissingCode = errors.New("symbol has no code")

// Metrics describes a distribution in bits per symbol
type Metrics struct {
	Entropy           float64
	AverageCodeLength float64
	Symbols           int    // distinct symbols
	Samples           uint64 // total samples
}

// Efficiency is entropy divided by average code length.
// An empty code (single symbol) counts as perfectly efficient.
func (m Metrics) Efficiency() float64 {
	if m.AverageCodeLength == 0 {
		return 1
	}
	return m.Entropy / m.AverageCodeLength
}

// Redundancy is the number of bits per symbol spent above the entropy
func (m Metrics) Redundancy() float64 {
	return m.AverageCodeLength - m.Entropy
}

// Entropy returns the Shannon entropy of the table in bits per symbol.
// An empty table has entropy 0. Terms are summed in ascending symbol order
// so the result is identical across runs.
func Entropy(freqs huffman.FrequencyTable) float64 {
	total := float64(freqs.Total())

	var h float64
	for _, sym := range freqs.Symbols() {
		count := freqs[sym]
		if count == 0 {
			continue
		}
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	return h
}

// AverageCodeLength returns the expected code length in bits per symbol.
// Symbols without a code contribute nothing. Summed in ascending symbol order.
func AverageCodeLength(freqs huffman.FrequencyTable, codes huffman.CodeTable) float64 {
	total := float64(freqs.Total())

	var avg float64
	for _, sym := range freqs.Symbols() {
		count := freqs[sym]
		if count == 0 {
			continue
		}
		avg += float64(count) / total * float64(codes[sym].Len)
	}
	return avg
}

// Compute derives the metrics for a table and its codes
func Compute(freqs huffman.FrequencyTable, codes huffman.CodeTable) (Metrics, error) {
	total := freqs.Total()
	if total == 0 {
		return Metrics{}, fmt.Errorf("%w: entropy is undefined without samples", audio.ErrEmptyInput)
	}

	distinct := 0
	for sym, count := range freqs {
		if count == 0 {
			continue
		}
		if _, ok := codes[sym]; !ok {
			return Metrics{}, fmt.Errorf("%w: %d", ErrMissingCode, sym)
		}
		distinct++
	}

	return Metrics{
		Entropy:           Entropy(freqs),
		AverageCodeLength: AverageCodeLength(freqs, codes),
		Symbols:           distinct,
		Samples:           total,
	}, nil
}
