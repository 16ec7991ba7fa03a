// Package textclean normalises raw comment text before classification.
package textclean

import (
	"regexp"
	"strings"
)

var (
	mentionPattern = regexp.MustCompile(`@\w+`)

	// Emoticons, pictographs, transport symbols, flags, dingbats and the
	// enclosed-character block up to U+1F251.
	emojiPattern = regexp.MustCompile(`[` +
		`\x{1F600}-\x{1F64F}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F1E0}-\x{1F1FF}` +
		`\x{2702}-\x{27B0}` +
		`\x{24C2}-\x{1F251}` +
		`]+`)

	urlPattern = regexp.MustCompile(`http\S+|www\S+|https\S+`)
	tagPattern = regexp.MustCompile(`<.*?>`)

	// \s in RE2 is ASCII only; add vertical tab and Unicode separators.
	spacePattern = regexp.MustCompile(`[\s\v\x{85}\p{Z}]+`)
)

// Clean strips mentions, emoji, URLs and HTML tags, then collapses whitespace.
func Clean(text string) string {
	text = mentionPattern.ReplaceAllString(text, "")
	text = emojiPattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")
	text = tagPattern.ReplaceAllString(text, "")
	text = spacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
