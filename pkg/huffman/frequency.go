// ABOUTME: Symbol frequency model
// ABOUTME: Counts occurrences of each sample value in a symbol sequence
package huffman

import "sort"

// FrequencyTable maps a sample value to the number of times it occurred
type FrequencyTable map[int16]uint64

// CountFrequencies builds a frequency table in a single pass
func CountFrequencies(samples []int16) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, s := range samples {
		freqs[s]++
	}
	return freqs
}

// Total returns the number of samples the table was built from
func (f FrequencyTable) Total() uint64 {
	var total uint64
	for _, n := range f {
		total += n
	}
	return total
}

// Symbols returns the distinct symbols in ascending order
func (f FrequencyTable) Symbols() []int16 {
	symbols := make([]int16, 0, len(f))
	for s := range f {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
