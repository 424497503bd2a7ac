package extractor

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/lrstanley/go-ytdlp"
	"golang.org/x/net/publicsuffix"

	"github.com/jsdosanj/downloader/internal/stats"
	"github.com/jsdosanj/downloader/internal/types"
)

const probeTimeout = 30 * time.Second

// knownHosts are registered domains yt-dlp handles; URLs on these hosts skip
// the network probe entirely.
var knownHosts = map[string]struct{}{
	"youtube.com":     {},
	"youtu.be":        {},
	"vimeo.com":       {},
	"dailymotion.com": {},
	"soundcloud.com":  {},
	"twitch.tv":       {},
}

// KnownPlatform reports whether rawURL's registered domain is one yt-dlp is
// known to support, without any network traffic.
func KnownPlatform(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	etld1, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		etld1 = host
	}
	_, ok := knownHosts[etld1]
	return ok
}

// Service invokes yt-dlp for platform URLs.
type Service struct {
	log *log.Logger
}

// New creates the extractor service.
func New(logger *log.Logger) *Service {
	return &Service{log: logger}
}

// Probe runs yt-dlp in simulate mode to ask whether it can handle rawURL.
// Any error, including a timeout, means "not supported" and never fails the
// run; the caller falls through to the crawl path.
func (s *Service) Probe(ctx context.Context, rawURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := ytdlp.New().Simulate().Quiet().Run(ctx, rawURL)
	if err != nil {
		s.log.Debug("extractor probe failed", "url", rawURL, "err", err)
		return false
	}
	return true
}

// Extract downloads rawURL, which may be a single item or a whole playlist,
// into destDir. yt-dlp does not report a usable file count through its exit
// status, so the run's file contribution is measured by diffing matching
// files in destDir before and after.
func (s *Service) Extract(ctx context.Context, rawURL, destDir string, format types.Format, run *stats.Run) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	exts := outputExtensions(format)
	filesBefore, bytesBefore := countMatching(destDir, exts)

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	sp.Suffix = " extracting " + rawURL
	sp.Start()
	_, err := command(format, destDir).Run(ctx, rawURL)
	sp.Stop()
	if err != nil {
		return fmt.Errorf("yt-dlp failed: %w", err)
	}

	filesAfter, bytesAfter := countMatching(destDir, exts)
	run.Add(int64(filesAfter-filesBefore), bytesAfter-bytesBefore)
	s.log.Info("extraction complete", "url", rawURL, "files", filesAfter-filesBefore)
	return nil
}

// command maps a format mode to a yt-dlp invocation: mp3 extracts the best
// audio to mp3; mp4 takes the best mp4 video plus m4a audio, merged to mp4;
// the default takes the best combined stream with the same merge policy.
func command(format types.Format, destDir string) *ytdlp.Command {
	dl := ytdlp.New().
		RestrictFilenames().
		Output(outputTemplate(destDir))

	switch format {
	case types.FormatMP3:
		dl = dl.ExtractAudio().AudioFormat("mp3").Format("bestaudio/best")
	case types.FormatMP4:
		dl = dl.Format("bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best").
			MergeOutputFormat("mp4")
	default:
		dl = dl.Format("bestvideo+bestaudio/best").MergeOutputFormat("mp4")
	}
	return dl
}

// outputTemplate names extractor output. Playlist items keep their position
// so repeated titles within a playlist cannot collide.
func outputTemplate(destDir string) string {
	return filepath.Join(destDir, "%(playlist_index&{} - |)s%(title)s.%(ext)s")
}

// outputExtensions lists the extensions the extractor may leave behind for a
// format mode, used when counting results.
func outputExtensions(format types.Format) []string {
	switch format {
	case types.FormatMP3:
		return []string{".mp3"}
	case types.FormatMP4:
		return []string{".mp4"}
	default:
		return []string{".mp3", ".mp4", ".m4a", ".webm", ".mkv"}
	}
}

// countMatching tallies files directly under dir whose extension is in exts.
func countMatching(dir string, exts []string) (int, int64) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0
	}

	var files int
	var bytes int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				files++
				if info, err := entry.Info(); err == nil {
					bytes += info.Size()
				}
				break
			}
		}
	}
	return files, bytes
}
