package parser

import (
	"reflect"
	"testing"
)

func TestExtractHrefs(t *testing.T) {
	html := `
	<html>
		<body>
			<a href="https://example.com/page1">Link 1</a>
			<a href="/page2">Link 2</a>
			<a href="page3">Link 3</a>
		</body>
	</html>
	`

	got := ExtractHrefs(html)
	want := []string{"https://example.com/page1", "/page2", "page3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractHrefs() = %v, want %v", got, want)
	}
}

func TestExtractHrefsEmptyHTML(t *testing.T) {
	if got := ExtractHrefs(""); len(got) != 0 {
		t.Errorf("expected 0 links, got %d", len(got))
	}
}

func TestExtractHrefsNoDuplicates(t *testing.T) {
	html := `
	<html>
		<body>
			<a href="/page">Link 1</a>
			<a href="/page">Link 2</a>
		</body>
	</html>
	`

	if got := ExtractHrefs(html); len(got) != 1 {
		t.Errorf("expected 1 unique link, got %d", len(got))
	}
}

func TestExtractHrefsRawValues(t *testing.T) {
	// values must come back unresolved, exactly as written
	html := `<a href="#top">t</a><a href="mailto:a@b.com">m</a><a href="//cdn.test/x">c</a>`

	got := ExtractHrefs(html)
	want := []string{"#top", "mailto:a@b.com", "//cdn.test/x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractHrefs() = %v, want %v", got, want)
	}
}

func TestExtractHrefsUppercaseMarkup(t *testing.T) {
	html := `<HTML><BODY><A HREF="/loud">x</A></BODY></HTML>`

	got := ExtractHrefs(html)
	if len(got) != 1 || got[0] != "/loud" {
		t.Errorf("case-insensitive extraction failed: %v", got)
	}
}

func TestExtractHrefsAnchorWithoutHref(t *testing.T) {
	html := `<a name="here">no target</a><a href="/real">real</a>`

	got := ExtractHrefs(html)
	if len(got) != 1 || got[0] != "/real" {
		t.Errorf("expected only /real, got %v", got)
	}
}
