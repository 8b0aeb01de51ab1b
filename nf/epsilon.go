package nf

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/chomsky/cfg"
)

// removeEpsilons eliminates ε-productions. First the nullable set is
// computed as a least fixpoint; then every production is expanded over the
// power set of its nullable positions. The empty body is excluded from the
// expansion, except for productions of the start symbol: when the language
// contains the empty string, the single production S0 → ε survives.
// Afterwards no other ε-production exists anywhere in the grammar.
func (p *pipeline) removeEpsilons(g *cfg.Grammar) *cfg.Grammar {
	nullable := nullableSet(g)
	tracer().Debugf("nullable set = %v", nullable)
	start := g.Start()
	var prods []*cfg.Production
	for _, r := range g.Rules() {
		if r.IsEps() {
			continue // original ε-productions are dropped
		}
		rhs := r.RHS()
		var positions []int
		for i, sym := range rhs {
			if !sym.IsTerminal() && nullable.Contains(sym) {
				positions = append(positions, i)
			}
		}
		for mask := 0; mask < 1<<uint(len(positions)); mask++ {
			body := make([]cfg.Symbol, 0, len(rhs))
			pos := 0
			for i, sym := range rhs {
				if pos < len(positions) && positions[pos] == i {
					deleted := mask>>uint(pos)&1 == 1
					pos++
					if deleted {
						continue
					}
				}
				body = append(body, sym)
			}
			if len(body) == 0 && r.LHS != start {
				continue
			}
			prods = append(prods, cfg.NewProduction(r.LHS, body))
		}
	}
	return cfg.FromRules(g.Name, start, prods)
}

// nullableSet computes the least fixpoint of: a nonterminal is nullable if
// it has an ε-production, or a production all of whose body symbols are
// nullable nonterminals. The loop runs at most |nonterminals| rounds.
func nullableSet(g *cfg.Grammar) *treeset.Set {
	nullable := treeset.NewWith(cfg.SymbolComparator)
	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules() {
			if nullable.Contains(r.LHS) {
				continue
			}
			allNullable := true
			for _, sym := range r.RHS() {
				if sym.IsTerminal() || !nullable.Contains(sym) {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable.Add(r.LHS)
				changed = true
			}
		}
	}
	return nullable
}
