package nf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chomsky/cfg"
)

func TestRemoveNonGenerating(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	// A never derives a terminal string
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("S").N("A").T("b").End()
	b.LHS("A").N("A").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	h := generatingOnly(g)
	if h.Size() != 1 {
		t.Errorf("expected only S → a to survive, got %d productions", h.Size())
	}
	if h.Contains(cfg.Nonterminal("A")) {
		t.Errorf("non-generating A must be removed")
	}
}

func TestRemoveUnreachable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("B").T("b").End() // never referenced from S
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	h := reachableOnly(g)
	if h.Size() != 1 {
		t.Errorf("expected only S → a to survive, got %d productions", h.Size())
	}
	if h.Defines(cfg.Nonterminal("B")) {
		t.Errorf("unreachable B must be removed")
	}
}

func TestUselessOrderSensitivity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	// B is reachable only through the non-generating A: removing
	// non-generating symbols first makes B unreachable, so both disappear.
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("S").N("A").N("B").End()
	b.LHS("A").N("A").T("a").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := &pipeline{names: cfg.NewNamer(g)}
	h := p.removeUseless(g)
	if h.Size() != 1 {
		t.Errorf("expected only S → a to survive, got %d productions", h.Size())
	}
	for _, name := range []string{"A", "B"} {
		if h.Contains(cfg.Nonterminal(name)) {
			t.Errorf("useless symbol %s must be removed", name)
		}
	}
	if !h.Contains(cfg.Nonterminal("S")) {
		t.Errorf("start symbol must always stay in the nonterminal set")
	}
}

func TestUselessKeepsStartOnEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	// the language is empty; every production dies, the start symbol stays
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").N("S").T("a").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := &pipeline{names: cfg.NewNamer(g)}
	h := p.removeUseless(g)
	if h.Size() != 0 {
		t.Errorf("expected no production to survive, got %d", h.Size())
	}
	if !h.Contains(h.Start()) {
		t.Errorf("start symbol must remain a member of the nonterminal set")
	}
}
