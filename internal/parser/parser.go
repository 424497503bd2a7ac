package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHrefs returns the deduplicated href attribute values of all anchor
// tags in an HTML document. Values come back exactly as written in the
// markup; resolving them against the page URL is the crawler's job.
func ExtractHrefs(htmlContent string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}

	links := make([]string, 0)
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || seen[href] {
			return
		}
		seen[href] = true
		links = append(links, href)
	})

	return links
}
