package crawler

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jsdosanj/downloader/internal/download"
)

// fileExtRe matches a short trailing extension: a dot followed by 2-5
// alphanumerics. Its absence is the folder-like heuristic; an extensionless
// file is misclassified as a directory candidate. Known limitation, kept
// deliberately.
var fileExtRe = regexp.MustCompile(`\.[a-zA-Z0-9]{2,5}$`)

// Base derives scheme://host from a page URL, for resolving root-relative
// links.
func Base(page string) string {
	u, err := url.Parse(page)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Resolve turns a raw href into an absolute URL. It is a pure function of
// the link and the page it appeared on. Rules, in order: an http(s) link is
// already absolute; a protocol-relative link inherits the page's scheme; a
// root-relative link is joined to the page's base; everything else is
// relative to the page's directory.
func Resolve(link, page string) string {
	switch {
	case strings.HasPrefix(link, "http://"), strings.HasPrefix(link, "https://"):
		return link
	case strings.HasPrefix(link, "//"):
		u, err := url.Parse(page)
		if err != nil || u.Scheme == "" {
			return ""
		}
		return u.Scheme + ":" + link
	case strings.HasPrefix(link, "/"):
		base := Base(page)
		if base == "" {
			return ""
		}
		return base + link
	default:
		i := strings.LastIndex(page, "/")
		if i < 0 {
			return ""
		}
		return page[:i+1] + link
	}
}

// skippable reports hrefs that are never fetched or recursed into.
func skippable(link string) bool {
	return strings.HasPrefix(link, "#") ||
		strings.HasPrefix(link, "mailto:") ||
		strings.HasPrefix(link, "javascript:")
}

// lastSegment returns the final path segment of an absolute URL, ignoring a
// trailing slash.
func lastSegment(absURL string) string {
	s := strings.TrimSuffix(absURL, "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// looksLikeFile reports whether the URL's final path segment carries a short
// trailing extension.
func looksLikeFile(absURL string) bool {
	return fileExtRe.MatchString(lastSegment(absURL))
}

// folderName derives the local directory name for a same-site subpath.
func folderName(absURL string) string {
	return download.SanitizeFilename(lastSegment(absURL))
}
