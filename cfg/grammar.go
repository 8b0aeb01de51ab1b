package cfg

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// --- Productions -----------------------------------------------------------

// Production is a grammar production
//
//    LHS  ➞  X1 … Xn
//
// with X being terminal or nonterminal symbols. A production with an empty
// right-hand side is an ε-production. Production identity is (LHS, RHS);
// grammars collapse duplicate productions at construction time.
type Production struct {
	Serial int    // order of appearance within a grammar
	LHS    Symbol // head nonterminal
	rhs    []Symbol
}

// NewProduction creates a production LHS ➞ rhs. The rhs slice is copied.
func NewProduction(lhs Symbol, rhs []Symbol) *Production {
	return &Production{
		LHS: lhs,
		rhs: append([]Symbol(nil), rhs...),
	}
}

// RHS returns the right-hand side of a production. Callers must not modify
// the returned slice.
func (p *Production) RHS() []Symbol {
	return p.rhs
}

// IsEps returns true for ε-productions.
func (p *Production) IsEps() bool {
	return len(p.rhs) == 0
}

// IsUnit returns true if the right-hand side is exactly one nonterminal.
func (p *Production) IsUnit() bool {
	return len(p.rhs) == 1 && !p.rhs[0].IsTerminal()
}

// eq compares a production to a (head, body) pair.
func (p *Production) eq(lhs Symbol, rhs []Symbol) bool {
	if p.LHS != lhs || len(p.rhs) != len(rhs) {
		return false
	}
	for i, sym := range p.rhs {
		if sym != rhs[i] {
			return false
		}
	}
	return true
}

func (p *Production) String() string {
	return fmt.Sprintf("%s %s %s", p.LHS.Name, arrowGlyph, bodyString(p.rhs))
}

func bodyString(rhs []Symbol) string {
	if len(rhs) == 0 {
		return epsGlyph
	}
	names := make([]string, len(rhs))
	for i, sym := range rhs {
		names[i] = sym.Name
	}
	return strings.Join(names, " ")
}

// --- Grammars --------------------------------------------------------------

// Grammar is a context-free grammar: a set of nonterminals, a set of
// terminals, an ordered collection of productions, and a designated start
// symbol. Production order is preserved for deterministic, human-readable
// output.
//
// Grammars are immutable after construction. The normalization stages of
// package nf never modify a grammar in place; they derive new ones with
// FromRules.
type Grammar struct {
	Name         string // an informal name of this grammar
	start        Symbol
	rules        []*Production
	nonterminals *treeset.Set // of Symbol
	terminals    *treeset.Set // of Symbol
}

// FromRules creates a grammar from an ordered production list. Duplicate
// (head, body) pairs collapse to their first occurrence, serial numbers are
// reassigned, and the terminal/nonterminal sets are computed from heads and
// bodies. The start symbol is always entered into the nonterminal set, even
// if no production survives for it.
func FromRules(name string, start Symbol, prods []*Production) *Grammar {
	g := &Grammar{
		Name:         name,
		start:        start,
		nonterminals: newSymbolSet(start),
		terminals:    newSymbolSet(),
	}
	for _, p := range prods {
		if g.findRule(p.LHS, p.rhs) != nil {
			continue // collapse duplicate
		}
		r := NewProduction(p.LHS, p.rhs)
		r.Serial = len(g.rules)
		g.rules = append(g.rules, r)
		g.nonterminals.Add(r.LHS)
		for _, sym := range r.rhs {
			if sym.IsTerminal() {
				g.terminals.Add(sym)
			} else {
				g.nonterminals.Add(sym)
			}
		}
	}
	return g
}

// Start returns the start symbol of a grammar.
func (g *Grammar) Start() Symbol {
	return g.start
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns production number no, or nil.
func (g *Grammar) Rule(no int) *Production {
	if no < 0 || no >= len(g.rules) {
		return nil
	}
	return g.rules[no]
}

// Rules returns the productions of a grammar in order. Callers must not
// modify the returned slice.
func (g *Grammar) Rules() []*Production {
	return g.rules
}

// RulesFor returns all productions headed by nonterminal lhs, in order.
func (g *Grammar) RulesFor(lhs Symbol) []*Production {
	var r []*Production
	for _, p := range g.rules {
		if p.LHS == lhs {
			r = append(r, p)
		}
	}
	return r
}

// Defines returns true if at least one production is headed by lhs.
func (g *Grammar) Defines(lhs Symbol) bool {
	for _, p := range g.rules {
		if p.LHS == lhs {
			return true
		}
	}
	return false
}

// Contains checks a symbol for membership in the grammar's symbol sets.
func (g *Grammar) Contains(sym Symbol) bool {
	if sym.IsTerminal() {
		return g.terminals.Contains(sym)
	}
	return g.nonterminals.Contains(sym)
}

// EachNonTerminal iterates over all nonterminals (in symbol order),
// executing a mapper function. Results of the mapper are collected.
func (g *Grammar) EachNonTerminal(mapper func(sym Symbol) interface{}) []interface{} {
	return eachMember(g.nonterminals, mapper)
}

// EachTerminal iterates over all terminals (in symbol order), executing a
// mapper function. Results of the mapper are collected.
func (g *Grammar) EachTerminal(mapper func(sym Symbol) interface{}) []interface{} {
	return eachMember(g.terminals, mapper)
}

// EachSymbol iterates over all symbols of a grammar, terminals first,
// executing a mapper function. Results of the mapper are collected.
func (g *Grammar) EachSymbol(mapper func(sym Symbol) interface{}) []interface{} {
	var r []interface{}
	r = append(r, eachMember(g.terminals, mapper)...)
	r = append(r, eachMember(g.nonterminals, mapper)...)
	return r
}

func eachMember(set *treeset.Set, mapper func(sym Symbol) interface{}) []interface{} {
	var r []interface{}
	it := set.Iterator()
	for it.Next() {
		if v := mapper(it.Value().(Symbol)); v != nil {
			r = append(r, v)
		}
	}
	return r
}

func (g *Grammar) findRule(lhs Symbol, rhs []Symbol) *Production {
	for _, p := range g.rules {
		if p.eq(lhs, rhs) {
			return p
		}
	}
	return nil
}

// Dump is a debugging helper, printing all productions of a grammar to the
// trace (at debug level).
func (g *Grammar) Dump() {
	tracer().Debugf("grammar %q, start symbol %s", g.Name, g.start.Name)
	for _, r := range g.rules {
		tracer().Debugf("%3d: %v", r.Serial, r)
	}
}
