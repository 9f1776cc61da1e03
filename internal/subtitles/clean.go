package subtitles

import (
	"regexp"
	"strings"
)

var markupPattern = regexp.MustCompile(`<[^>]+>`)

// CleanText strips HTML-like markup tags and zero-width spaces from subtitle
// text and trims surrounding whitespace.
func CleanText(text string) string {
	text = strings.ReplaceAll(text, "\u200b", "")
	text = markupPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func normalizeLineEndings(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return strings.ReplaceAll(content, "\r", "\n")
}
