package summarizer

import (
	"regexp"
	"strings"
)

var (
	bracketCue     = regexp.MustCompile(`(?s)\[.*?\]`)
	parentheticCue = regexp.MustCompile(`(?s)\(.*?\)`)
)

// Clean 去除字幕中的 [Music]、(Applause) 等提示，并把连续空白压缩为单个空格
func Clean(raw string) string {
	text := bracketCue.ReplaceAllString(raw, "")
	text = parentheticCue.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}
