// ABOUTME: File-level analyzer with duplicate-load suppression
// ABOUTME: Loads audio files and runs the pipeline in the foreground or background
package analysis

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/waventropy/internal/remote"
	"github.com/harperreed/waventropy/pkg/audio/decode"
	"golang.org/x/sync/singleflight"
)

// Config holds analyzer configuration
type Config struct {
	MaxBytes      int64  // largest accepted file, 0 means decode.DefaultMaxBytes
	RawSampleRate int    // sample rate assumed for headerless PCM
	CacheDir      string // where http(s) inputs are downloaded, empty for a temp dir
}

// Outcome carries the result of a background analysis
type Outcome struct {
	Result *Result
	Err    error
}

// Analyzer loads and analyzes audio files
type Analyzer struct {
	config     Config
	group      singleflight.Group
	downloader *remote.Downloader
}

// New creates a new analyzer
func New(config Config) *Analyzer {
	return &Analyzer{
		config:     config,
		downloader: remote.NewDownloader(config.CacheDir, config.MaxBytes),
	}
}

// AnalyzeFile loads and analyzes a file or http(s) URL. Concurrent calls for the same
// path share a single execution and receive the same result.
func (a *Analyzer) AnalyzeFile(path string) (*Result, error) {
	v, err, shared := a.group.Do(path, func() (interface{}, error) {
		return a.run(path)
	})
	if shared {
		log.Printf("Joined in-flight analysis of %s", path)
	}
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// ClearCache removes every downloaded input from the cache directory
func (a *Analyzer) ClearCache() error {
	if err := a.downloader.Cleanup(); err != nil {
		return fmt.Errorf("failed to clear download cache: %w", err)
	}
	return nil
}

// Start analyzes a file in the background. The returned channel receives
// exactly one Outcome and is then closed. The analysis cannot be canceled.
func (a *Analyzer) Start(path string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		res, err := a.AnalyzeFile(path)
		out <- Outcome{Result: res, Err: err}
	}()
	return out
}

func (a *Analyzer) run(path string) (*Result, error) {
	requestID := uuid.New()
	start := time.Now()
	log.Printf("[%s] Analyzing %s", requestID, path)

	var err error
	local := path
	if remote.IsURL(path) {
		local, err = a.downloader.Fetch(path)
		if err != nil {
			log.Printf("[%s] Download failed: %v", requestID, err)
			return nil, err
		}
	}

	clip, err := decode.Load(local, decode.Options{
		MaxBytes:      a.config.MaxBytes,
		RawSampleRate: a.config.RawSampleRate,
	})
	if err != nil {
		log.Printf("[%s] Load failed: %v", requestID, err)
		return nil, err
	}

	if local != path {
		clip.Title = remote.Title(path)
	}

	res, err := Analyze(clip)
	if err != nil {
		log.Printf("[%s] Analysis failed: %v", requestID, err)
		return nil, err
	}
	res.ID = requestID

	log.Printf("[%s] Done in %v: %d frames, %d symbols, entropy %.4f, average code length %.4f",
		requestID, time.Since(start).Round(time.Millisecond), res.Frames(),
		res.Metrics.Symbols, res.Metrics.Entropy, res.Metrics.AverageCodeLength)

	return res, nil
}
