package pinyin

import (
	"reflect"
	"strings"
	"testing"

	"github.com/rnwolfe/sift/internal/match"
)

func TestMap_ASCII(t *testing.T) {
	m := Map("Ab3")
	if m.Letters != "ab3" {
		t.Fatalf("Letters = %q, want %q", m.Letters, "ab3")
	}
	if m.CharCount != 3 {
		t.Fatalf("CharCount = %d, want 3", m.CharCount)
	}
	wantOffsets := []int{0, 1, 2, 3}
	if !reflect.DeepEqual(m.Offsets, wantOffsets) {
		t.Fatalf("Offsets = %v, want %v", m.Offsets, wantOffsets)
	}
	// Each ASCII rune is its own reading.
	if m.Tokens[0] == m.Tokens[1] {
		t.Fatal("distinct characters must have distinct tokens")
	}
}

func TestMap_Han(t *testing.T) {
	m := Map("中国")
	if !strings.HasPrefix(m.Letters, "zhong") {
		t.Fatalf("Letters = %q, want zhong prefix", m.Letters)
	}
	if !strings.Contains(m.Letters, "guo") {
		t.Fatalf("Letters = %q, want to contain guo", m.Letters)
	}
	if m.CharCount != 2 {
		t.Fatalf("CharCount = %d, want 2", m.CharCount)
	}
	if len(m.Bounds) != len(m.Letters)+1 || len(m.Tokens) != len(m.Letters)+1 {
		t.Fatalf("boundary tables must carry one sentinel: bounds %d tokens %d letters %d",
			len(m.Bounds), len(m.Tokens), len(m.Letters))
	}
	// Every letter of "zhong" belongs to character 0.
	for i := 0; i < len("zhong"); i++ {
		if m.Bounds[i] != (match.Span{Start: 0, End: 1}) {
			t.Fatalf("Bounds[%d] = %v, want [0,1)", i, m.Bounds[i])
		}
	}
}

func TestMap_Heteronym(t *testing.T) {
	// 长 reads both chang and zhang; each reading gets its own token.
	m := Map("长")
	if !strings.Contains(m.Letters, "chang") || !strings.Contains(m.Letters, "zhang") {
		t.Skipf("heteronym table lacks expected readings, got %q", m.Letters)
	}
	first := m.Tokens[0]
	last := m.Tokens[len(m.Letters)-1]
	if first == last {
		t.Fatal("competing readings must not share a token")
	}
	for _, b := range m.Bounds[:len(m.Letters)] {
		if b != (match.Span{Start: 0, End: 1}) {
			t.Fatalf("all readings belong to character 0, got %v", b)
		}
	}
}

func TestSingle_OneReadingPerCharacter(t *testing.T) {
	m := Single("长")
	if m.Letters == "" {
		t.Skip("pinyin table lacks readings for 长")
	}
	first := m.Tokens[0]
	for _, tok := range m.Tokens[:len(m.Letters)] {
		if tok != first {
			t.Fatalf("Single must emit one reading, got tokens %v for %q", m.Tokens, m.Letters)
		}
	}
}

func TestMap_SkipsUnmappableRunes(t *testing.T) {
	m := Map("a.b")
	if m.Letters != "ab" {
		t.Fatalf("Letters = %q, want %q", m.Letters, "ab")
	}
	wantOffsets := []int{0, 1, 1, 2}
	if !reflect.DeepEqual(m.Offsets, wantOffsets) {
		t.Fatalf("Offsets = %v, want %v", m.Offsets, wantOffsets)
	}
}

func TestMap_MonotonicInvariants(t *testing.T) {
	m := Map("中a。3国")
	if len(m.Offsets) != m.CharCount+1 {
		t.Fatalf("Offsets length = %d, want %d", len(m.Offsets), m.CharCount+1)
	}
	for i := 1; i < len(m.Offsets); i++ {
		if m.Offsets[i] < m.Offsets[i-1] {
			t.Fatalf("Offsets not monotonic: %v", m.Offsets)
		}
	}
	for i := 1; i < len(m.Bounds); i++ {
		if m.Bounds[i].Start < m.Bounds[i-1].Start {
			t.Fatalf("Bounds not monotonic at %d: %v", i, m.Bounds)
		}
	}
	for _, c := range m.Letters {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			t.Fatalf("Letters must stay lowercase Latin/digits, got %q", m.Letters)
		}
	}
}

func TestSearchIntegration(t *testing.T) {
	cases := []struct {
		source, query string
		want          match.Matrix
	}{
		{"中国", "zg", match.Matrix{{Start: 0, End: 1}}},
		{"中国", "zhongguo", match.Matrix{{Start: 0, End: 1}}},
		{"Chrome 浏览器", "llq", match.Matrix{{Start: 7, End: 9}}},
		{"Chrome 浏览器", "chrome", match.Matrix{{Start: 0, End: 5}}},
		{"中国", "xyz", nil},
	}
	for _, tc := range cases {
		got := match.Search(tc.source, tc.query, Map)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Search(%q, %q) = %v, want %v", tc.source, tc.query, got, tc.want)
		}
	}
}
