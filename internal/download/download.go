package download

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/charmbracelet/log"

	"github.com/jsdosanj/downloader/internal/fetch"
	"github.com/jsdosanj/downloader/internal/manifest"
	"github.com/jsdosanj/downloader/internal/stats"
)

// Outcome reports what happened to a single download attempt.
type Outcome string

const (
	OutcomeDownloaded Outcome = "downloaded"
	OutcomeDuplicate  Outcome = "duplicate"
	OutcomeFailed     Outcome = "failed"
)

// Characters that are unsafe in filenames on at least one supported OS.
const forbidden = `\/:*?"<>|`

const substitute = '#'

// SanitizeFilename replaces forbidden filename characters with '#'. It is
// idempotent: sanitizing an already-sanitized name changes nothing.
func SanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbidden, r) {
			return substitute
		}
		return r
	}, name)
}

// FilenameFromURL derives a local filename from the final path segment of
// rawURL with any query string or fragment stripped, then sanitizes it.
func FilenameFromURL(rawURL string) string {
	s := rawURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	name := s[strings.LastIndex(s, "/")+1:]
	return SanitizeFilename(name)
}

// Service is the file download primitive. A bloom filter short-circuits URLs
// already attempted this run, so a link repeated across pages triggers at
// most one fetch attempt even after a failure; the destination-file-exists
// check remains the authoritative duplicate test.
type Service struct {
	client   *fetch.Client
	run      *stats.Run
	manifest *manifest.Writer
	log      *log.Logger

	mu        sync.Mutex
	attempted *bloom.BloomFilter
}

// NewService creates the download primitive. manifest may be nil.
func NewService(client *fetch.Client, run *stats.Run, man *manifest.Writer, logger *log.Logger) *Service {
	return &Service{
		client:    client,
		run:       run,
		manifest:  man,
		log:       logger,
		attempted: bloom.NewWithEstimates(1_000_000, 0.001),
	}
}

// Download fetches rawURL into destDir. The destination directory is created
// on demand. On failure any partially written file is removed and the run
// continues; there is no retry.
func (s *Service) Download(ctx context.Context, rawURL, destDir string) Outcome {
	name := FilenameFromURL(rawURL)
	if name == "" {
		s.log.Warn("no filename in url, skipping", "url", rawURL)
		return OutcomeFailed
	}

	s.mu.Lock()
	repeat := s.attempted.TestAndAdd([]byte(rawURL))
	s.mu.Unlock()
	if repeat {
		s.log.Debug("already attempted this run", "url", rawURL)
		return OutcomeDuplicate
	}

	dest := filepath.Join(destDir, name)
	if _, err := os.Stat(dest); err == nil {
		s.log.Debug("skipping duplicate", "path", dest)
		return OutcomeDuplicate
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		s.log.Warn("cannot create directory", "dir", destDir, "err", err)
		return OutcomeFailed
	}

	size, err := s.fetchToFile(ctx, rawURL, dest)
	if err != nil {
		os.Remove(dest)
		s.log.Warn("download failed", "url", rawURL, "err", err)
		return OutcomeFailed
	}

	s.run.AddFile(size)
	if s.manifest != nil {
		if err := s.manifest.Record(rawURL, dest, size); err != nil {
			s.log.Warn("manifest write failed", "err", err)
		}
	}
	s.log.Info("downloaded", "file", name, "bytes", size)
	return OutcomeDownloaded
}

func (s *Service) fetchToFile(ctx context.Context, rawURL, dest string) (int64, error) {
	resp, err := s.client.Get(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(out, resp.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return size, err
}
