// ABOUTME: Entry point for the Huffman code table dump
// ABOUTME: Prints per-symbol counts and codes for an audio file
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/harperreed/waventropy/pkg/analysis"
)

var (
	top     = flag.Int("top", 32, "Number of code table rows to print (0 for all)")
	maxMB   = flag.Int64("max-mb", 512, "Largest accepted input file in MiB")
	rawRate = flag.Int("rate", 44100, "Sample rate assumed for .pcm/.raw input")
	debug   = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: huffcodes [flags] <audio-file>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if !*debug {
		log.SetOutput(io.Discard)
	}

	analyzer := analysis.New(analysis.Config{
		MaxBytes:      *maxMB << 20,
		RawSampleRate: *rawRate,
	})

	res, err := analyzer.AnalyzeFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffcodes: %v\n", err)
		os.Exit(1)
	}

	m := res.Metrics
	fmt.Printf("%s: %d frames, %d samples, %d distinct symbols\n", res.Title, res.Frames(), m.Samples, m.Symbols)
	fmt.Printf("entropy %.4f bits/symbol, average code length %.4f bits/symbol, efficiency %.2f%%, redundancy %.4f bits/symbol\n\n",
		m.Entropy, m.AverageCodeLength, m.Efficiency()*100, m.Redundancy())

	rows := res.CodeRows()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "symbol\tcount\tbits\tcode\t")
	for i, row := range rows {
		if *top > 0 && i == *top {
			break
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t\n", row.Symbol, row.Count, row.Code.Len, row.Code)
	}
	w.Flush()

	if *top > 0 && len(rows) > *top {
		fmt.Printf("... %d more symbols\n", len(rows)-*top)
	}
}
