// ABOUTME: Entry point for the waveform entropy viewer
// ABOUTME: Parses CLI flags, analyzes an audio file and shows the result
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/harperreed/waventropy/internal/ui"
	"github.com/harperreed/waventropy/internal/version"
	"github.com/harperreed/waventropy/pkg/analysis"
)

var (
	file        = flag.String("file", "", "Audio file or http(s) URL to analyze (WAV, FLAC, MP3, raw s16le); may also be given as the first argument")
	logFile     = flag.String("log-file", "waventropy.log", "Log file path")
	noTUI       = flag.Bool("no-tui", false, "Disable TUI, print metrics and stream logs instead")
	maxMB       = flag.Int64("max-mb", 512, "Largest accepted input file in MiB")
	rawRate     = flag.Int("rate", 44100, "Sample rate assumed for .pcm/.raw input")
	cacheDir    = flag.String("cache-dir", "", "Download cache for URL inputs (default: system temp dir)")
	clearCache  = flag.Bool("clear-cache", false, "Remove the download cache and exit")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if *clearCache {
		analyzer := analysis.New(analysis.Config{CacheDir: *cacheDir})
		if err := analyzer.ClearCache(); err != nil {
			log.Fatalf("failed to clear cache: %v", err)
		}
		fmt.Println("Download cache cleared")
		return
	}

	path := *file
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "usage: waventropy [flags] <audio-file-or-url>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if *noTUI {
		// Streaming logs mode: log to both stdout and file
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	} else {
		// TUI mode: log only to file
		log.SetOutput(f)
	}

	analyzer := analysis.New(analysis.Config{
		MaxBytes:      *maxMB << 20,
		RawSampleRate: *rawRate,
		CacheDir:      *cacheDir,
	})

	if !*noTUI {
		if err := ui.Run(path, analyzer); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
		return
	}

	log.Printf("Starting %s", version.String())
	outcome := <-analyzer.Start(path)
	if outcome.Err != nil {
		log.Fatalf("Analysis failed: %v", outcome.Err)
	}

	res := outcome.Result
	fmt.Printf("Title: %s\n", res.Title)
	fmt.Printf("Sample Rate: %d Hz\n", res.Format.SampleRate)
	fmt.Printf("Total Samples: %d\n", res.Frames())
	fmt.Printf("Entropy: %.4f\n", res.Metrics.Entropy)
	fmt.Printf("Average Code Word Length: %.4f\n", res.Metrics.AverageCodeLength)
	fmt.Printf("Redundancy: %.4f\n", res.Metrics.Redundancy())
}
