// ABOUTME: Remote audio downloader for http(s) inputs
// ABOUTME: Fetches audio files into a hashed on-disk cache with a size bound
package remote

import (
	"crypto/sha256"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/harperreed/waventropy/pkg/audio/decode"
)

// Downloader manages audio downloads
type Downloader struct {
	cacheDir string
	maxBytes int64
	client   *http.Client
}

// NewDownloader creates a downloader caching into cacheDir.
// An empty cacheDir uses a directory under os.TempDir.
func NewDownloader(cacheDir string, maxBytes int64) *Downloader {
	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "waventropy-cache")
	}
	if maxBytes <= 0 {
		maxBytes = decode.DefaultMaxBytes
	}
	return &Downloader{
		cacheDir: cacheDir,
		maxBytes: maxBytes,
		client:   &http.Client{},
	}
}

// IsURL reports whether the input should be fetched over HTTP
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Title derives a display title from the last path element of a URL
func Title(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || path.Base(u.Path) == "/" || path.Base(u.Path) == "." {
		return rawURL
	}
	base := path.Base(u.Path)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Fetch downloads the URL unless it is already cached and returns the local path.
// The cached file keeps the URL's extension so the loader can pick a decoder.
func (d *Downloader) Fetch(rawURL string) (string, error) {
	if err := os.MkdirAll(d.cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	hash := sha256.Sum256([]byte(rawURL))
	cachePath := filepath.Join(d.cacheDir, fmt.Sprintf("%x%s", hash[:8], extension(rawURL)))

	if _, err := os.Stat(cachePath); err == nil {
		log.Printf("Audio cache hit: %s", cachePath)
		return cachePath, nil
	}

	log.Printf("Downloading audio: %s", rawURL)
	resp, err := d.client.Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to download audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("audio download failed: HTTP %d", resp.StatusCode)
	}
	if resp.ContentLength > d.maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", decode.ErrInputTooLarge, rawURL, resp.ContentLength, d.maxBytes)
	}

	// Write to a temp file and rename so a failed download never looks cached
	tmp, err := os.CreateTemp(d.cacheDir, "download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create cache file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, io.LimitReader(resp.Body, d.maxBytes+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("failed to save audio: %w", err)
	}
	if n > d.maxBytes {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", decode.ErrInputTooLarge, rawURL, d.maxBytes)
	}

	if err := os.Rename(tmp.Name(), cachePath); err != nil {
		return "", fmt.Errorf("failed to store cached audio: %w", err)
	}

	log.Printf("Audio saved: %s (%d bytes)", cachePath, n)
	return cachePath, nil
}

// Cleanup removes the cache directory
func (d *Downloader) Cleanup() error {
	return os.RemoveAll(d.cacheDir)
}

// extension extracts the lowercase file extension from a URL path
func extension(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(path.Ext(u.Path))
}
