package ui

import (
	"sort"
	"strings"

	"github.com/rnwolfe/sift/internal/match"
)

// Highlight renders source with the matched rune ranges in the Match
// style. When color output is off the source comes back untouched.
func Highlight(source string, ranges match.Matrix) string {
	if len(ranges) == 0 || !ColorEnabled() {
		return source
	}
	return HighlightWith(source, ranges, func(s string) string { return Match.Render(s) })
}

// HighlightWith wraps each matched rune range of source with wrap,
// independent of terminal state. Ranges are inclusive rune indices; they
// may arrive unsorted or overlapping and are merged first. Out-of-range
// indices are clamped.
func HighlightWith(source string, ranges match.Matrix, wrap func(string) string) string {
	if len(ranges) == 0 {
		return source
	}
	runes := []rune(source)

	var b strings.Builder
	next := 0
	for _, r := range mergeRanges(ranges) {
		if r.Start >= len(runes) {
			break
		}
		if r.Start < next {
			r.Start = next
		}
		if r.End >= len(runes) {
			r.End = len(runes) - 1
		}
		b.WriteString(string(runes[next:r.Start]))
		b.WriteString(wrap(string(runes[r.Start : r.End+1])))
		next = r.End + 1
	}
	b.WriteString(string(runes[next:]))
	return b.String()
}

// mergeRanges sorts the ranges and coalesces any that overlap or touch.
func mergeRanges(rs match.Matrix) match.Matrix {
	sorted := make(match.Matrix, len(rs))
	copy(sorted, rs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := match.Matrix{sorted[0]}
	for _, r := range sorted[1:] {
		last := &out[len(out)-1]
		if r.Start <= last.End+1 {
			if r.End > last.End {
				last.End = r.End
			}
			continue
		}
		out = append(out, r)
	}
	return out
}
