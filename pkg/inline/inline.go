// Package inline parses the small inline markup language used in block text:
// **bold** spans and <span style="color: #RRGGBB">coloured</span> spans.
//
// Constructs are matched non-greedily from left to right and never overlap.
// Anything that does not form a complete construct is kept as literal text,
// so Parse never fails.
package inline

import (
	"regexp"
	"strings"
)

// Run is a contiguous piece of text sharing one style.
type Run struct {
	Text  string
	Bold  bool
	Color string // "#RRGGBB" or empty for the medium's default colour
}

var (
	tokenPattern = regexp.MustCompile(`\*\*(.*?)\*\*|<span style="color:\s*#?([0-9a-fA-F]{6})\s*;?\s*">(.*?)</span>`)
	boldMarker   = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// Parse splits text into styled runs. Empty constructs produce no run.
func Parse(text string) []Run {
	var runs []Run
	emit := func(r Run) {
		if r.Text != "" {
			runs = append(runs, r)
		}
	}

	pos := 0
	for _, m := range tokenPattern.FindAllStringSubmatchIndex(text, -1) {
		emit(Run{Text: text[pos:m[0]]})
		switch {
		case m[2] >= 0:
			emit(Run{Text: text[m[2]:m[3]], Bold: true})
		case m[4] >= 0:
			inner := text[m[6]:m[7]]
			stripped := boldMarker.ReplaceAllString(inner, "$1")
			emit(Run{
				Text:  stripped,
				Bold:  stripped != inner,
				Color: "#" + strings.ToUpper(text[m[4]:m[5]]),
			})
		}
		pos = m[1]
	}
	emit(Run{Text: text[pos:]})
	return runs
}

// Plain returns text with all markup removed.
func Plain(text string) string {
	var b strings.Builder
	for _, r := range Parse(text) {
		b.WriteString(r.Text)
	}
	return b.String()
}

// HasStyle reports whether any run carries bold or colour.
func HasStyle(runs []Run) bool {
	for _, r := range runs {
		if r.Bold || r.Color != "" {
			return true
		}
	}
	return false
}
