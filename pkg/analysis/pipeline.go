// ABOUTME: One-shot analysis pipeline over a decoded clip
// ABOUTME: Produces an immutable result with channels, codes and metrics
package analysis

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/harperreed/waventropy/pkg/audio"
	"github.com/harperreed/waventropy/pkg/audio/decode"
	"github.com/harperreed/waventropy/pkg/entropy"
	"github.com/harperreed/waventropy/pkg/huffman"
)

// Result is the outcome of analyzing one clip.
// It is shared with renderers and must not be modified.
type Result struct {
	ID          uuid.UUID
	Title       string
	Format      audio.Format
	Channels    audio.Stereo
	Frequencies huffman.FrequencyTable
	Codes       huffman.CodeTable
	Metrics     entropy.Metrics
}

// Frames returns the number of analyzed stereo frames
func (r *Result) Frames() int {
	return r.Channels.Frames()
}

// CodeRow is one symbol of the code table
type CodeRow struct {
	Symbol int16
	Count  uint64
	Code   huffman.Code
}

// CodeRows lists the code table ordered by code length, then symbol
func (r *Result) CodeRows() []CodeRow {
	rows := make([]CodeRow, 0, len(r.Codes))
	for sym, code := range r.Codes {
		rows = append(rows, CodeRow{Symbol: sym, Count: r.Frequencies[sym], Code: code})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Code.Len != rows[j].Code.Len {
			return rows[i].Code.Len < rows[j].Code.Len
		}
		return rows[i].Symbol < rows[j].Symbol
	})
	return rows
}

// Analyze runs the full pipeline over a loaded clip
func Analyze(clip *decode.Clip) (*Result, error) {
	stereo, err := decode.DecodeStereo16(clip.Data, clip.Frames, clip.Format.Channels)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", clip.Title, err)
	}
	if stereo.Frames() == 0 {
		return nil, fmt.Errorf("decode %s: %w: no frames", clip.Title, audio.ErrEmptyInput)
	}

	freqs := huffman.CountFrequencies(stereo.Interleave())

	tree, err := huffman.BuildTree(freqs)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}

	codes, err := huffman.AssignCodes(tree)
	if err != nil {
		return nil, fmt.Errorf("assign codes: %w", err)
	}

	metrics, err := entropy.Compute(freqs, codes)
	if err != nil {
		return nil, fmt.Errorf("compute metrics: %w", err)
	}

	return &Result{
		ID:          uuid.New(),
		Title:       clip.Title,
		Format:      clip.Format,
		Channels:    stereo,
		Frequencies: freqs,
		Codes:       codes,
		Metrics:     metrics,
	}, nil
}
