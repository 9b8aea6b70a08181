// Package match aligns Latin-letter queries against the phonetic
// transliteration of mixed-script text and maps every hit back to rune
// ranges of the original string. All failures are reported as a nil
// Matrix; no-match is a normal result, never an error.
package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Range is an inclusive [Start, End] pair of rune indices into the
// original string, covering one contiguous span of matched characters.
type Range struct {
	Start int
	End   int
}

// Matrix is an ordered left-to-right list of ranges that collectively
// cover a query word or a whole sentence.
type Matrix []Range

// Span is a half-open [Start, End) character range.
type Span struct {
	Start int
	End   int
}

// Mapping is the immutable transliteration/boundary structure for one
// source string. It is built once (see internal/pinyin) and may be shared
// read-only across any number of concurrent searches.
//
// Invariants: len(Bounds) == len(Letters)+1 and len(Tokens) == len(Letters)+1
// (one sentinel each); len(Offsets) == CharCount+1; Bounds, Tokens and
// Offsets are non-decreasing. Slicing Letters by Offsets[i]:Offsets[j]
// yields the transliteration of characters [i, j). Letters that belong to
// the same reading of the same character share a Tokens value; a
// polyphonic character contributes one token per reading, so competing
// readings are never mistaken for each other.
type Mapping struct {
	Source    string
	CharCount int
	Letters   string
	Bounds    []Span
	Tokens    []int
	Offsets   []int
}

// Provider builds a Mapping for a source string. A nil result means the
// source cannot be mapped and the search fails as no-match.
type Provider func(source string) *Mapping

// Search is the library entry point. It first tries a literal,
// case-insensitive substring match of the full untrimmed query; only when
// that fails does it build a boundary mapping and run the word-by-word
// phonetic match. Returns nil for a blank query, an empty source, or when
// no alignment exists.
func Search(source, query string, provider Provider) Matrix {
	if source == "" || strings.TrimSpace(query) == "" {
		return nil
	}
	if r, ok := literalRange(source, query); ok {
		return Matrix{r}
	}
	if provider == nil {
		return nil
	}
	m := provider(source)
	if m == nil {
		return nil
	}
	return matchSentence(m, query)
}

// literalRange finds the leftmost case-insensitive occurrence of query in
// source and returns it as a rune range. strings.Map keeps the rune count
// stable, so byte offsets in the lowered copy convert cleanly to rune
// indices in the original.
func literalRange(source, query string) (Range, bool) {
	ls := strings.Map(unicode.ToLower, source)
	lq := strings.Map(unicode.ToLower, query)
	i := strings.Index(ls, lq)
	if i < 0 {
		return Range{}, false
	}
	start := utf8.RuneCountInString(ls[:i])
	return Range{start, start + utf8.RuneCountInString(lq) - 1}, true
}
