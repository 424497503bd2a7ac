package crawler

import (
	"context"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jsdosanj/downloader/internal/download"
	"github.com/jsdosanj/downloader/internal/parser"
	"github.com/jsdosanj/downloader/internal/types"
)

// Fetcher retrieves the body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Downloader stores a terminal file beneath a directory.
type Downloader interface {
	Download(ctx context.Context, url, destDir string) download.Outcome
}

// Crawler walks an HTML link graph depth-first from a root URL, downloading
// links whose extension matches the active allow-list and recursing into
// same-site subpaths, mirroring the remote hierarchy locally. A visited set
// keyed on the exact URL string guards against cycles.
type Crawler struct {
	fetcher    Fetcher
	downloader Downloader
	exts       map[string]struct{}
	log        *log.Logger

	mu      sync.Mutex
	visited map[string]struct{}
}

// New builds a crawler for one run. The extension allow-list is fixed up
// front from the requested format.
func New(fetcher Fetcher, downloader Downloader, format types.Format, logger *log.Logger) *Crawler {
	exts := make(map[string]struct{})
	for _, e := range format.Extensions() {
		exts[e] = struct{}{}
	}
	return &Crawler{
		fetcher:    fetcher,
		downloader: downloader,
		exts:       exts,
		log:        logger,
		visited:    make(map[string]struct{}),
	}
}

// Crawl fetches pageURL and expands its links into destDir, downloading
// files synchronously and recursing depth-first into subpaths. A fetch
// failure abandons this branch only; siblings already discovered by the
// caller continue.
func (c *Crawler) Crawl(ctx context.Context, pageURL, destDir string) {
	if !c.markVisited(pageURL) {
		c.log.Debug("already visited", "url", pageURL)
		return
	}

	body, err := c.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		c.log.Warn("fetch failed, abandoning branch", "url", pageURL, "err", err)
		return
	}

	base := Base(pageURL)
	if base == "" {
		c.log.Warn("cannot derive base url", "url", pageURL)
		return
	}

	c.log.Info("crawling", "url", pageURL, "dir", destDir)

	for _, raw := range parser.ExtractHrefs(string(body)) {
		if skippable(raw) {
			continue
		}
		abs := Resolve(raw, pageURL)
		if abs == "" {
			continue
		}

		switch {
		case c.downloadable(abs):
			c.downloader.Download(ctx, abs, destDir)
		case strings.HasPrefix(abs, base) && !looksLikeFile(abs):
			name := folderName(abs)
			if name == "" || name == "." {
				continue
			}
			c.Crawl(ctx, abs, filepath.Join(destDir, name))
		default:
			// different host, or a file type outside the allow-list
			c.log.Debug("ignoring link", "url", abs)
		}
	}
}

// Visited returns the URLs traversed so far, sorted.
func (c *Crawler) Visited() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	urls := make([]string, 0, len(c.visited))
	for u := range c.visited {
		urls = append(urls, u)
	}
	sort.Strings(urls)
	return urls
}

// markVisited inserts u into the visited set, reporting whether it was new.
// Insertion happens before any recursion so symmetric links between two
// pages cannot loop.
func (c *Crawler) markVisited(u string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.visited[u]; ok {
		return false
	}
	c.visited[u] = struct{}{}
	return true
}

// downloadable checks the URL's extension against the allow-list,
// case-insensitive, with query and fragment stripped.
func (c *Crawler) downloadable(absURL string) bool {
	s := absURL
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(s), "."))
	if ext == "" {
		return false
	}
	_, ok := c.exts[ext]
	return ok
}
