package match

import (
	"sort"
	"strings"
)

// matchSentence matches a possibly multi-word query against m. The
// trimmed query is tried literally first; otherwise it is split on
// whitespace and every word must find a placement inside the ranges no
// earlier word has claimed. One unplaceable word fails the whole query.
func matchSentence(m *Mapping, query string) Matrix {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || m == nil || m.CharCount == 0 {
		return nil
	}
	if r, ok := literalRange(m.Source, trimmed); ok {
		return Matrix{r}
	}

	words := strings.Fields(strings.ToLower(trimmed))
	var acc Matrix
	for _, w := range words {
		placed := false
		for _, r := range restRanges(m.CharCount, acc) {
			if hit := matchWord(m, w, r.Start, r.End); hit != nil {
				acc = append(acc, hit...)
				placed = true
				break
			}
		}
		if !placed {
			return nil
		}
	}
	return acc
}

// restRanges returns the sorted disjoint ranges of [0, total) not covered
// by claimed. The claimed ranges may arrive unsorted or overlapping.
func restRanges(total int, claimed Matrix) Matrix {
	if total <= 0 {
		return nil
	}
	if len(claimed) == 0 {
		return Matrix{{0, total - 1}}
	}

	sorted := make(Matrix, len(claimed))
	copy(sorted, claimed)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var out Matrix
	next := 0
	for _, r := range sorted {
		if r.Start > next {
			out = append(out, Range{next, r.Start - 1})
		}
		if r.End+1 > next {
			next = r.End + 1
		}
	}
	if next < total {
		out = append(out, Range{next, total - 1})
	}
	return out
}
