package match

import (
	"reflect"
	"testing"
)

// mixedMapping is "你好world": two Han characters followed by ASCII.
func mixedMapping() *Mapping {
	return readingsMapping("你好world", [][]string{
		{"ni"}, {"hao"}, {"w"}, {"o"}, {"r"}, {"l"}, {"d"},
	})
}

func TestMatchSentence_LiteralFastPath(t *testing.T) {
	m := identityMapping("hello world")
	got := matchSentence(m, "  world ")
	want := Matrix{{6, 10}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matchSentence(literal) = %v, want %v", got, want)
	}
}

func TestMatchSentence_MultiWord(t *testing.T) {
	got := matchSentence(mixedMapping(), "hao wd")
	want := Matrix{{1, 1}, {2, 2}, {6, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matchSentence(hao wd) = %v, want %v", got, want)
	}
}

func TestMatchSentence_WordsClaimDisjointRanges(t *testing.T) {
	// The second "hao" has no remaining placement, so the whole sentence
	// fails with no partial result.
	if got := matchSentence(mixedMapping(), "hao hao"); got != nil {
		t.Fatalf("matchSentence(hao hao) = %v, want no-match", got)
	}
}

func TestMatchSentence_Blank(t *testing.T) {
	if got := matchSentence(mixedMapping(), "   "); got != nil {
		t.Fatalf("blank query should be no-match, got %v", got)
	}
}

func TestMatchSentence_UppercaseQuery(t *testing.T) {
	got := matchSentence(mixedMapping(), "NiHao")
	want := Matrix{{0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("matchSentence(NiHao) = %v, want %v", got, want)
	}
}

func TestRestRanges(t *testing.T) {
	cases := []struct {
		name    string
		total   int
		claimed Matrix
		want    Matrix
	}{
		{"empty", 5, nil, Matrix{{0, 4}}},
		{"middle", 10, Matrix{{3, 5}}, Matrix{{0, 2}, {6, 9}}},
		{"edges", 10, Matrix{{0, 1}, {8, 9}}, Matrix{{2, 7}}},
		{"unsorted", 10, Matrix{{6, 7}, {1, 2}}, Matrix{{0, 0}, {3, 5}, {8, 9}}},
		{"overlap", 10, Matrix{{1, 4}, {3, 6}}, Matrix{{0, 0}, {7, 9}}},
		{"full", 4, Matrix{{0, 3}}, nil},
		{"zero", 0, nil, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := restRanges(tc.total, tc.claimed)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("restRanges(%d, %v) = %v, want %v", tc.total, tc.claimed, got, tc.want)
			}
		})
	}
}
