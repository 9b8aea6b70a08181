// Package pinyin builds the transliteration/boundary mapping that
// internal/match aligns queries against. Han characters contribute the
// letters of every one of their readings, ASCII letters and digits map to
// their lowercase selves, and everything else contributes nothing.
package pinyin

import (
	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/rnwolfe/sift/internal/match"
)

var args = func() gopinyin.Args {
	a := gopinyin.NewArgs()
	a.Style = gopinyin.Normal
	a.Heteronym = true
	return a
}()

// Map builds the boundary mapping for source. It satisfies match.Provider.
// Each reading of a polyphonic character gets its own token id, so the
// matcher can tell competing readings of one character apart.
func Map(source string) *match.Mapping {
	return build(source, true)
}

// Single is Map restricted to the most common reading of each character,
// for configurations that turn heteronym matching off.
func Single(source string) *match.Mapping {
	return build(source, false)
}

func build(source string, heteronym bool) *match.Mapping {
	m := &match.Mapping{Source: source}

	var letters []byte
	token := 0
	for _, r := range source {
		m.Offsets = append(m.Offsets, len(letters))
		char := m.CharCount
		rs := readings(r)
		if !heteronym && len(rs) > 1 {
			rs = rs[:1]
		}
		for _, reading := range rs {
			for i := 0; i < len(reading); i++ {
				letters = append(letters, reading[i])
				m.Bounds = append(m.Bounds, match.Span{Start: char, End: char + 1})
				m.Tokens = append(m.Tokens, token)
			}
			token++
		}
		m.CharCount++
	}

	// Sentinels.
	m.Offsets = append(m.Offsets, len(letters))
	m.Bounds = append(m.Bounds, match.Span{Start: m.CharCount, End: m.CharCount})
	m.Tokens = append(m.Tokens, -1)
	m.Letters = string(letters)
	return m
}

// readings returns the lowercase Latin spellings of r: all distinct
// pinyin readings for a Han character, the rune itself for ASCII
// alphanumerics, nothing otherwise.
func readings(r rune) []string {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return []string{string(r)}
	case r >= 'A' && r <= 'Z':
		return []string{string(r + 'a' - 'A')}
	}

	var out []string
	for _, p := range gopinyin.SinglePinyin(r, args) {
		s := sanitize(p)
		if s == "" {
			continue
		}
		seen := false
		for _, prev := range out {
			if prev == s {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, s)
		}
	}
	return out
}

// sanitize reduces a reading to plain a-z. The Normal style already strips
// tones; ü (as in lü/nü) becomes v, anything else non-ASCII is dropped.
func sanitize(reading string) string {
	var b []byte
	for _, r := range reading {
		switch {
		case r >= 'a' && r <= 'z':
			b = append(b, byte(r))
		case r == 'ü':
			b = append(b, 'v')
		}
	}
	return string(b)
}
