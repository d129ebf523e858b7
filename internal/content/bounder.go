package content

// Bound returns the first maxChars characters of text. It does not look for
// word or sentence boundaries.
func Bound(text string, maxChars int) string {
	if maxChars < 0 || len(text) <= maxChars {
		return text
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	return string(runes[:maxChars])
}
