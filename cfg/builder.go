package cfg

import "fmt"

// GrammarBuilder is a builder object for grammars. Clients add productions
// rule by rule; the head of the first production becomes the start symbol
// (unless overridden with SetStart).
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()
//    b.LHS("A").Epsilon()
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	name     string
	start    Symbol
	hasStart bool
	rules    []*Production
	err      error
}

// NewGrammarBuilder gets a new grammar builder, given the name of the
// grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// LHS starts a new production with the given nonterminal as its head.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	return &RuleBuilder{gb: gb, lhs: Nonterminal(name)}
}

// SetStart overrides the default start symbol (the head of the first
// production).
func (gb *GrammarBuilder) SetStart(name string) *GrammarBuilder {
	gb.start = Nonterminal(name)
	gb.hasStart = true
	return gb
}

// Grammar returns the grammar built up so far.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	if gb.err != nil {
		return nil, gb.err
	}
	if len(gb.rules) == 0 {
		return nil, fmt.Errorf("grammar %q has no productions", gb.name)
	}
	g := FromRules(gb.name, gb.start, gb.rules)
	tracer().Debugf("built grammar %q with %d productions", g.Name, g.Size())
	return g, nil
}

func (gb *GrammarBuilder) appendRule(lhs Symbol, rhs []Symbol) *Production {
	if !gb.hasStart {
		gb.start = lhs
		gb.hasStart = true
	}
	p := NewProduction(lhs, rhs)
	p.Serial = len(gb.rules)
	gb.rules = append(gb.rules, p)
	return p
}

// RuleBuilder is a builder type for a single production. Add symbols to the
// right-hand side with N and T, then close the production with End or
// Epsilon.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// N appends a nonterminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Nonterminal(name))
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, Terminal(name))
	return rb
}

// AppendSymbol appends a pre-built symbol to the right-hand side.
func (rb *RuleBuilder) AppendSymbol(sym Symbol) *RuleBuilder {
	rb.rhs = append(rb.rhs, sym)
	return rb
}

// End closes the production and hands it over to the grammar builder.
func (rb *RuleBuilder) End() *Production {
	return rb.gb.appendRule(rb.lhs, rb.rhs)
}

// Epsilon closes the production with an empty right-hand side.
func (rb *RuleBuilder) Epsilon() *Production {
	if len(rb.rhs) > 0 {
		rb.gb.err = fmt.Errorf("ε-production %q must not have symbols on its RHS", rb.lhs.Name)
	}
	return rb.gb.appendRule(rb.lhs, nil)
}
