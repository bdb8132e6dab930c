package ingest

import (
	"regexp"
	"strings"
)

const (
	WordsPerMinute = 200
	minReadMinutes = 1
)

var (
	reCodeFence  = regexp.MustCompile("(?s)```.*?```")
	reInlineCode = regexp.MustCompile("`[^`]*`")
	reImage      = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	reLink       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reHTMLTag    = regexp.MustCompile(`<[^>]*>`)
	reHeader     = regexp.MustCompile(`#+\s+`)
	reRule       = regexp.MustCompile(`---+`)
	reListMarker = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	reQuote      = regexp.MustCompile(`(?m)^>\s+`)
)

// stripInline removes the syntax that never counts as words: code, images,
// link targets and raw HTML.
func stripInline(s string) string {
	s = reCodeFence.ReplaceAllString(s, "")
	s = reInlineCode.ReplaceAllString(s, "")
	s = reImage.ReplaceAllString(s, "")
	s = reLink.ReplaceAllString(s, "$1")
	return reHTMLTag.ReplaceAllString(s, "")
}

// stripBlock additionally removes block-level markers.
func stripBlock(s string) string {
	s = stripInline(s)
	s = reHeader.ReplaceAllString(s, "")
	s = reRule.ReplaceAllString(s, "")
	s = reListMarker.ReplaceAllString(s, "")
	return reQuote.ReplaceAllString(s, "")
}

func WordCount(md string) int {
	if md == "" {
		return 0
	}
	return len(strings.Fields(stripInline(md)))
}

// ReadingTime returns whole minutes at WordsPerMinute, rounded up, with a
// one minute floor for any non-empty input.
func ReadingTime(md string) int {
	if md == "" {
		return 0
	}
	words := len(strings.Fields(stripBlock(md)))
	minutes := (words + WordsPerMinute - 1) / WordsPerMinute
	if minutes < minReadMinutes {
		return minReadMinutes
	}
	return minutes
}
