package lang

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/nf"
)

func TestWordsSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.lang")
	defer teardown()
	//
	g, err := cfg.Parse("S -> aS | b")
	if err != nil {
		t.Fatal(err)
	}
	words := Words(g, 3, 10)
	expected := []string{"b", "ab", "aab"}
	if len(words) != len(expected) {
		t.Fatalf("expected words %v, got %v", expected, words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("expected words %v, got %v", expected, words)
			break
		}
	}
}

func TestWordsWithEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.lang")
	defer teardown()
	//
	g, err := cfg.Parse("S -> ε | a")
	if err != nil {
		t.Fatal(err)
	}
	words := Words(g, 1, 10)
	expected := []string{"", "a"}
	if len(words) != len(expected) {
		t.Fatalf("expected words %v, got %v", expected, words)
	}
	for i, w := range words {
		if w != expected[i] {
			t.Errorf("expected words %v, got %v", expected, words)
			break
		}
	}
}

func TestWordsRespectsLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.lang")
	defer teardown()
	//
	g, err := cfg.Parse("S -> aS | a")
	if err != nil {
		t.Fatal(err)
	}
	if words := Words(g, 10, 3); len(words) != 3 {
		t.Errorf("expected word count to be capped at 3, got %d", len(words))
	}
}

func TestLanguagePreservedByConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.lang")
	defer teardown()
	//
	inputs := []string{
		"S -> AB | a\nA -> aA | ε\nB -> b",
		"S -> aS | b",
		"S -> ASA | aB\nA -> S | ε\nB -> b",
	}
	for n, input := range inputs {
		g, err := cfg.Parse(input)
		if err != nil {
			t.Fatal(err)
		}
		cnf, _ := nf.Convert(g)
		before := Words(g, 5, 100)
		after := Words(cnf, 5, 100)
		if !sameWords(before, after) {
			t.Errorf("grammar #%d: language changed by conversion:\nbefore %v\nafter  %v",
				n+1, before, after)
		}
	}
}

// sameWords compares word samples, ignoring the empty word (which is
// handled by the separate S0 → ε production).
func sameWords(a, b []string) bool {
	set := make(map[string]bool)
	for _, w := range a {
		if w != "" {
			set[w] = true
		}
	}
	for _, w := range b {
		if w != "" {
			if !set[w] {
				return false
			}
			delete(set, w)
		}
	}
	return len(set) == 0
}
