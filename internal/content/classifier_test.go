package content_test

import (
	"testing"

	"tldr/internal/content"
	"tldr/internal/domain"
)

func TestClassifyBareURLs(t *testing.T) {
	cases := map[string]string{
		"https://example.com/article":         "https://example.com/article",
		"http://example.com":                  "http://example.com",
		"  https://example.com/a?b=c#d  \n":   "https://example.com/a?b=c#d",
		"HTTPS://EXAMPLE.COM/Path":            "HTTPS://EXAMPLE.COM/Path",
		"HtTp://x":                            "HtTp://x",
		"https://example.com/with(parens)and": "https://example.com/with(parens)and",
	}

	for raw, wantURL := range cases {
		got := content.Classify(raw)
		if got.Kind != domain.InputRemoteDocument {
			t.Fatalf("expected %q to be a remote document, got %s", raw, got.Kind)
		}
		if got.URL != wantURL {
			t.Fatalf("unexpected URL for %q: got %q want %q", raw, got.URL, wantURL)
		}
	}
}

func TestClassifyTrimsUnicodeSpace(t *testing.T) {
	got := content.Classify("\u00a0https://example.com/nbsp\ufeff\u2003")
	if got.Kind != domain.InputRemoteDocument {
		t.Fatalf("expected remote document, got %s", got.Kind)
	}
	if got.URL != "https://example.com/nbsp" {
		t.Fatalf("unexpected URL: %q", got.URL)
	}
}

func TestClassifyRawText(t *testing.T) {
	cases := []string{
		"The quick brown fox jumps over the lazy dog.",
		"Read this: https://example.com/article",
		"https://example.com/article and more words",
		"https://",
		"ftp://example.com/file",
		"example.com/article",
		"https:// example.com",
		"https://example.com/a\u00a0and\u00a0prose",
		"https://example.com\u2003read\u2003later",
		"https://example.com/a\u0085b",
		"https://example.com/a\ufeffb",
		"https://\u00a0",
	}

	for _, raw := range cases {
		got := content.Classify(raw)
		if got.Kind != domain.InputRawText {
			t.Fatalf("expected %q to be raw text, got %s", raw, got.Kind)
		}
		if got.Text != raw {
			t.Fatalf("expected raw text to be passed through verbatim, got %q", got.Text)
		}
	}
}

func TestEmbeddedLinksDoesNotAffectClassification(t *testing.T) {
	text := "See https://example.com/a and https://example.org/b for details"

	links := content.EmbeddedLinks(text)
	if len(links) != 2 {
		t.Fatalf("expected 2 embedded links, got %d (%v)", len(links), links)
	}

	if got := content.Classify(text); got.Kind != domain.InputRawText {
		t.Fatalf("expected text with embedded links to stay raw text, got %s", got.Kind)
	}
}
