package match

import (
	"reflect"
	"testing"
)

func TestSearch_LiteralSkipsProvider(t *testing.T) {
	calls := 0
	provider := func(s string) *Mapping {
		calls++
		return identityMapping(s)
	}

	got := Search("Hello 世界", "lo", provider)
	want := Matrix{{3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(literal) = %v, want %v", got, want)
	}
	if calls != 0 {
		t.Fatalf("literal match should not build a mapping, provider called %d times", calls)
	}
}

func TestSearch_LiteralIsCaseInsensitive(t *testing.T) {
	got := Search("Hello World", "hello w", func(s string) *Mapping { return identityMapping(s) })
	want := Matrix{{0, 6}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(hello w) = %v, want %v", got, want)
	}
}

func TestSearch_Phonetic(t *testing.T) {
	provider := func(string) *Mapping { return mixedMapping() }

	got := Search("你好world", "nihao", provider)
	want := Matrix{{0, 1}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Search(nihao) = %v, want %v", got, want)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	provider := func(string) *Mapping { return mixedMapping() }
	if got := Search("你好world", "xyz", provider); got != nil {
		t.Fatalf("Search(xyz) = %v, want no-match", got)
	}
}

func TestSearch_EmptyInputs(t *testing.T) {
	provider := func(s string) *Mapping { return identityMapping(s) }
	if got := Search("", "a", provider); got != nil {
		t.Fatalf("empty source should be no-match, got %v", got)
	}
	if got := Search("abc", "", provider); got != nil {
		t.Fatalf("empty query should be no-match, got %v", got)
	}
	if got := Search("abc", "   ", provider); got != nil {
		t.Fatalf("blank query should be no-match, got %v", got)
	}
	if got := Search("abc", "b", nil); !reflect.DeepEqual(got, Matrix{{1, 1}}) {
		t.Fatalf("nil provider should still allow literal matches, got %v", got)
	}
	if got := Search("abc", "ac", nil); got != nil {
		t.Fatalf("nil provider should fail non-literal queries, got %v", got)
	}
}

func TestSearch_Deterministic(t *testing.T) {
	provider := func(string) *Mapping { return mixedMapping() }
	first := Search("你好world", "hao wd", provider)
	second := Search("你好world", "hao wd", provider)
	if first == nil || !reflect.DeepEqual(first, second) {
		t.Fatalf("Search is not deterministic: %v vs %v", first, second)
	}
}
