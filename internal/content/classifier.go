package content

import (
	"regexp"
	"strings"
	"unicode"

	"tldr/internal/domain"

	"mvdan.cc/xurls/v2"
)

var (
	urlSchemeRe = regexp.MustCompile(`(?i)^https?://`)

	embeddedURLRe = xurls.Strict()
)

// isSpace covers Unicode white space plus the byte order mark, which pasted
// web text often carries.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// Classify decides whether text is a bare http(s) URL or literal content.
// Only a string that is wholly a URL is treated as a remote document; raw
// text is passed on exactly as supplied.
func Classify(text string) domain.Input {
	trimmed := strings.TrimFunc(text, isSpace)

	if isBareURL(trimmed) {
		return domain.Input{Kind: domain.InputRemoteDocument, URL: trimmed}
	}

	return domain.Input{Kind: domain.InputRawText, Text: text}
}

func isBareURL(s string) bool {
	loc := urlSchemeRe.FindStringIndex(s)
	if loc == nil {
		return false
	}

	rest := s[loc[1]:]

	return rest != "" && strings.IndexFunc(rest, isSpace) < 0
}

// EmbeddedLinks returns the links found inside raw text. It is informational
// and never affects classification.
func EmbeddedLinks(text string) []string {
	return embeddedURLRe.FindAllString(text, -1)
}
