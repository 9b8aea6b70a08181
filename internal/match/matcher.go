package match

import "strings"

// runState is the DP 4-tuple kept per transliteration position: the size
// of the chain currently in progress and the character range of its last
// contiguous run. A zero letters count means virgin (no chain alive here).
type runState struct {
	chars   int
	letters int
	start   int
	end     int
}

// pathCell is one backtracking entry: a matched segment of lettersConsumed
// query letters covering characters [start, end] (relative to the slice).
type pathCell struct {
	start   int
	end     int
	letters int
	ok      bool
}

// matchWord aligns one whitespace-free lowercase word against the
// transliteration slice for characters [startIndex, endIndex] of m and
// returns the matched ranges (absolute rune indices), or nil.
//
// The alignment is a scoring DP over (position, query letter). A step is
// accepted either as a continuation (next letter of the same reading of
// the same character) or as a new word (first letter of a reading on a
// character past the one in progress). Each acceptance gains
// 2*chainLetters+1, so an unbroken chain of n letters is worth n² and
// fewer, longer runs always beat fragmented ones.
func matchWord(m *Mapping, word string, startIndex, endIndex int) Matrix {
	if m == nil || m.CharCount == 0 || word == "" {
		return nil
	}
	ls := m.Offsets[startIndex]
	le := m.Offsets[endIndex+1]
	n := le - ls
	q := len(word)
	if n == 0 || n < q {
		return nil
	}

	charAt := func(p int) int { return m.Bounds[ls+p].Start - startIndex }
	tokenAt := func(p int) int { return m.Tokens[ls+p] }

	// Greedy feasibility pass: the earliest not-yet-consumed position for
	// each query letter. Any letter without one fails the whole word before
	// the DP runs, and the positions double as per-letter sweep anchors.
	anchors := make([]int, q)
	pos := 0
	for i := 0; i < q; i++ {
		j := strings.IndexByte(m.Letters[ls+pos:le], word[i])
		if j < 0 {
			return nil
		}
		anchors[i] = pos + j
		pos = anchors[i] + 1
	}

	scores := make([]int, n)
	runs := make([]runState, n)
	paths := make([]pathCell, n*q)

	for qi := 0; qi < q; qi++ {
		ql := word[qi]
		first := anchors[qi]

		// Predecessor cell (previous letter, previous position). For the
		// first swept position it still holds the previous pass's value;
		// afterwards it is the value saved before each overwrite.
		var prevRun runState
		var prevScore int
		if first > 0 {
			prevRun = runs[first-1]
			prevScore = scores[first-1]
		}

		for p := first; p < n; p++ {
			savedRun, savedScore := runs[p], scores[p]

			// Candidate carried from the cell to the left in this pass.
			// Score and path always survive the carry; the run tuple goes
			// stale once the sweep drifts past the character after the last
			// matched one, so a dead chain cannot leak its run bonus.
			var carryRun runState
			var carryScore int
			var carryPath pathCell
			if p > first {
				carryRun = staleAdjust(runs[p-1], p, n, charAt)
				carryScore = scores[p-1]
				carryPath = paths[(p-1)*q+qi]
			}

			accepted := false
			var newRun runState
			var newScore int
			if m.Letters[ls+p] == ql && (qi == 0 || prevScore > 0) {
				c := charAt(p)
				switch {
				case qi > 0 && p > 0 && tokenAt(p) == tokenAt(p-1) && m.Letters[ls+p-1] == word[qi-1]:
					// Continuation within one reading of one character.
					accepted = true
					if prevRun.letters > 0 && prevRun.end == c {
						newRun = runState{prevRun.chars, prevRun.letters + 1, prevRun.start, c}
					} else {
						newRun = runState{1, 1, c, c}
					}
				case (p == 0 || tokenAt(p) != tokenAt(p-1)) && (prevRun.letters == 0 || c > prevRun.end):
					// New word: a reading starts on a character the chain has
					// not touched. Adjacent characters extend the current run;
					// anything further begins a fresh segment.
					accepted = true
					if prevRun.letters > 0 && c == prevRun.end+1 {
						newRun = runState{prevRun.chars + 1, prevRun.letters + 1, prevRun.start, c}
					} else {
						newRun = runState{1, 1, c, c}
					}
				}
				if accepted {
					newScore = prevScore + 2*prevRun.letters + 1
				}
			}

			if accepted && newScore >= carryScore {
				runs[p] = newRun
				scores[p] = newScore
				if newScore > carryScore || !carryPath.ok {
					paths[p*q+qi] = pathCell{newRun.start, newRun.end, newRun.letters, true}
				} else {
					// Tie: keep the earlier-found path.
					paths[p*q+qi] = carryPath
				}
			} else {
				runs[p] = carryRun
				scores[p] = carryScore
				paths[p*q+qi] = carryPath
			}

			prevRun, prevScore = savedRun, savedScore
		}
	}

	cell := paths[(n-1)*q+(q-1)]
	if !cell.ok {
		return nil
	}

	// Backtrack: consume the final segment, then resume at the letter just
	// before that segment's first character, until the word is spent.
	var out Matrix
	qi := q - 1
	for {
		out = append(out, Range{cell.start + startIndex, cell.end + startIndex})
		qi -= cell.letters
		if qi < 0 {
			break
		}
		p := m.Offsets[startIndex+cell.start] - ls - 1
		if p < 0 {
			return nil
		}
		cell = paths[p*q+qi]
		if !cell.ok {
			return nil
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// staleAdjust decides whether a carried run tuple is still continuable at
// position p. The chain stays alive while p is inside the last matched
// character (gap 0) or inside the character right after it while that
// character still has letters ahead (gap 1); otherwise the tuple resets.
func staleAdjust(r runState, p, n int, charAt func(int) int) runState {
	if r.letters == 0 {
		return runState{}
	}
	gap := charAt(p) - r.end
	if gap == 0 {
		return r
	}
	if gap == 1 && p+1 < n && charAt(p+1) == charAt(p) {
		return r
	}
	return runState{}
}
