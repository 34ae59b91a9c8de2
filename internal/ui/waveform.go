// ABOUTME: Terminal waveform rendering
// ABOUTME: Reduces a channel to per-column peaks and draws them as block rows
package ui

import (
	"math"
	"strings"
)

// amplitudeScale matches the classic viewer: a full-scale sample reaches half the lane
const amplitudeScale = 65536.0

// renderChannel draws samples into 2*halfRows+1 rows of at most width columns.
// The middle row is the zero line.
func renderChannel(samples []int16, width, halfRows int) []string {
	rows := make([][]rune, 2*halfRows+1)
	cols := width
	if len(samples) < cols {
		cols = len(samples)
	}
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", cols))
	}

	for c := 0; c < cols; c++ {
		lo, hi := columnPeaks(samples, c, cols)
		up := barLength(hi, halfRows)
		down := barLength(-lo, halfRows)

		if up == 0 && down == 0 {
			rows[halfRows][c] = '─'
			continue
		}
		rows[halfRows][c] = '█'
		for i := 1; i <= up; i++ {
			rows[halfRows-i][c] = '█'
		}
		for i := 1; i <= down; i++ {
			rows[halfRows+i][c] = '█'
		}
	}

	out := make([]string, len(rows))
	for r := range rows {
		out[r] = string(rows[r])
	}
	return out
}

// columnPeaks returns the minimum and maximum sample in column c of cols
func columnPeaks(samples []int16, c, cols int) (lo, hi int) {
	start := c * len(samples) / cols
	end := (c + 1) * len(samples) / cols
	if end <= start {
		end = start + 1
	}

	lo, hi = math.MaxInt, math.MinInt
	for _, s := range samples[start:end] {
		lo = min(lo, int(s))
		hi = max(hi, int(s))
	}
	return lo, hi
}

// barLength converts a non-negative amplitude to a row count
func barLength(amplitude, halfRows int) int {
	if amplitude <= 0 {
		return 0
	}
	n := int(math.Ceil(float64(amplitude) / amplitudeScale * float64(halfRows)))
	return min(n, halfRows)
}
