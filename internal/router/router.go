package router

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jsdosanj/downloader/internal/extractor"
	"github.com/jsdosanj/downloader/internal/stats"
	"github.com/jsdosanj/downloader/internal/types"
)

// Extractor is the platform-extractor path.
type Extractor interface {
	Probe(ctx context.Context, url string) bool
	Extract(ctx context.Context, url, destDir string, format types.Format, run *stats.Run) error
}

// SiteCrawler is the generic HTML crawl path.
type SiteCrawler interface {
	Crawl(ctx context.Context, url, destDir string)
}

// Router chooses between the two mutually exclusive execution paths for a
// starting URL: cheap host match first, network probe second, so plain
// websites only pay the probe cost when the host check fails.
type Router struct {
	extractor Extractor
	crawler   SiteCrawler
	run       *stats.Run
	log       *log.Logger
	skipProbe bool
}

// New builds a router over the two paths.
func New(ex Extractor, cr SiteCrawler, run *stats.Run, logger *log.Logger) *Router {
	return &Router{extractor: ex, crawler: cr, run: run, log: logger}
}

// SetSkipProbe disables the simulate probe; non-platform URLs then go
// straight to the crawl path without the extra network round trip.
func (r *Router) SetSkipProbe(skip bool) { r.skipProbe = skip }

// Route dispatches cfg.StartURL. An extraction error propagates: once the
// extractor path is chosen there is no fallback. Crawl-path page failures
// are absorbed inside the engine and never surface here.
func (r *Router) Route(ctx context.Context, cfg types.Config) error {
	dest := cfg.DestRoot()

	if extractor.KnownPlatform(cfg.StartURL) {
		r.log.Info("known media platform, using extractor", "url", cfg.StartURL)
		return r.extractor.Extract(ctx, cfg.StartURL, dest, cfg.Format, r.run)
	}

	if !r.skipProbe && r.extractor.Probe(ctx, cfg.StartURL) {
		r.log.Info("extractor supports url, using extractor", "url", cfg.StartURL)
		return r.extractor.Extract(ctx, cfg.StartURL, dest, cfg.Format, r.run)
	}

	r.log.Info("crawling site", "url", cfg.StartURL, "dest", dest)
	r.crawler.Crawl(ctx, cfg.StartURL, dest)
	return nil
}
