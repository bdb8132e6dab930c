package ingest

import (
	"strings"
	"testing"
)

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"plain", "one two  three\nfour", 4},
		{"code fence dropped", "before\n```go\nfunc main() {}\n```\nafter", 2},
		{"inline code dropped", "call `fmt.Println` now", 2},
		{"link text kept", "see [the docs](https://example.com) here", 4},
		{"image dropped", "look ![a cat](cat.png) there", 2},
		{"html dropped", "<p>hello <b>world</b></p>", 2},
		{"whitespace only", "   \n\t ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.in); got != tt.want {
				t.Fatalf("WordCount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	words := func(n int) string {
		return strings.TrimSpace(strings.Repeat("word ", n))
	}
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"floor", "short", 1},
		{"markup only", "## ", 1},
		{"exact minute", words(200), 1},
		{"rounds up", words(250), 2},
		{"three minutes", words(401), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingTime(tt.in); got != tt.want {
				t.Fatalf("ReadingTime = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestReadingTimeStripsBlockMarkers(t *testing.T) {
	md := "# Title\n\n- " + strings.Repeat("w ", 199) + "\n> quoted\n---\n"
	// 1 title word + 199 list words + 1 quoted word
	if got := ReadingTime(md); got != 2 {
		t.Fatalf("ReadingTime = %d, want 2", got)
	}
	if got := ReadingTime("# a\n- b"); got != 1 {
		t.Fatalf("ReadingTime = %d, want 1", got)
	}
}
