package nf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/chomsky/cfg"
)

func TestBinarizeIsolatesTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").T("a").N("B").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := &pipeline{names: cfg.NewNamer(g)}
	h := p.binarize(g)
	checkCNFShape(t, h)
	rules := h.RulesFor(cfg.Nonterminal("S"))
	if len(rules) != 1 || rules[0].RHS()[0] != cfg.Nonterminal("T_a") {
		t.Errorf("expected S → T_a B, got %v", rules)
	}
	tRules := h.RulesFor(cfg.Nonterminal("T_a"))
	if len(tRules) != 1 || tRules[0].RHS()[0] != cfg.Terminal("a") {
		t.Errorf("expected T_a → a, got %v", tRules)
	}
}

func TestBinarizeReusesTerminalVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	// the same terminal in different productions shares one variable
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").T("a").N("S").End()
	b.LHS("S").N("S").T("a").End()
	b.LHS("S").T("x").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := &pipeline{names: cfg.NewNamer(g)}
	h := p.binarize(g)
	checkCNFShape(t, h)
	if n := len(h.RulesFor(cfg.Nonterminal("T_a"))); n != 1 {
		t.Errorf("expected one shared T_a → a production, got %d", n)
	}
}

func TestBinarizeChainsLongBodies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").N("C").N("D").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").End()
	b.LHS("C").T("c").End()
	b.LHS("D").T("d").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := &pipeline{names: cfg.NewNamer(g)}
	h := p.binarize(g)
	checkCNFShape(t, h)
	// S → A X1, X1 → B X2, X2 → C D
	checkBody(t, h, "S", []cfg.Symbol{cfg.Nonterminal("A"), cfg.Nonterminal("X1")})
	checkBody(t, h, "X1", []cfg.Symbol{cfg.Nonterminal("B"), cfg.Nonterminal("X2")})
	checkBody(t, h, "X2", []cfg.Symbol{cfg.Nonterminal("C"), cfg.Nonterminal("D")})
}

func TestBinarizeKeepsShortBodies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.nf")
	defer teardown()
	//
	b := cfg.NewGrammarBuilder("G")
	b.LHS("S").T("a").End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	p := &pipeline{names: cfg.NewNamer(g)}
	h := p.binarize(g)
	if h.Size() != 2 {
		t.Errorf("expected bodies of length ≤ 1 to pass through, got %d productions", h.Size())
	}
}

func checkBody(t *testing.T, g *cfg.Grammar, head string, body []cfg.Symbol) {
	t.Helper()
	rules := g.RulesFor(cfg.Nonterminal(head))
	if len(rules) != 1 {
		t.Errorf("expected exactly one production for %s, got %d", head, len(rules))
		return
	}
	rhs := rules[0].RHS()
	if len(rhs) != len(body) {
		t.Errorf("expected %s-body %v, got %v", head, body, rhs)
		return
	}
	for i, sym := range rhs {
		if sym != body[i] {
			t.Errorf("expected %s-body %v, got %v", head, body, rhs)
			return
		}
	}
}

// checkCNFShape verifies the CNF shape invariant: every body is one
// terminal, or two nonterminals, or empty for the start symbol only.
func checkCNFShape(t *testing.T, g *cfg.Grammar) {
	t.Helper()
	for _, r := range g.Rules() {
		rhs := r.RHS()
		switch len(rhs) {
		case 0:
			if r.LHS != g.Start() {
				t.Errorf("ε-production for non-start symbol: %v", r)
			}
		case 1:
			if !rhs[0].IsTerminal() {
				t.Errorf("unit production in CNF grammar: %v", r)
			}
		case 2:
			if rhs[0].IsTerminal() || rhs[1].IsTerminal() {
				t.Errorf("terminal in two-symbol body: %v", r)
			}
		default:
			t.Errorf("body of length %d in CNF grammar: %v", len(rhs), r)
		}
	}
}
