package nf

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/chomsky/cfg"
)

// removeUnits eliminates unit productions (productions whose body is a
// single nonterminal). For every nonterminal A the unit closure U(A) is
// computed—A itself plus everything reachable over unit productions—and
// A's productions are replaced by the non-unit productions of all members
// of U(A). Members already in the closure are not re-expanded, so cycles
// like A → B, B → A terminate.
func (p *pipeline) removeUnits(g *cfg.Grammar) *cfg.Grammar {
	var prods []*cfg.Production
	seen := treeset.NewWith(cfg.SymbolComparator)
	for _, r := range g.Rules() {
		A := r.LHS
		if seen.Contains(A) {
			continue
		}
		seen.Add(A)
		closure := treeset.NewWith(cfg.SymbolComparator, A)
		queue := arraylist.New(A)
		for queue.Size() > 0 {
			v, _ := queue.Get(0)
			queue.Remove(0)
			B := v.(cfg.Symbol)
			for _, rule := range g.RulesFor(B) {
				if rule.IsUnit() {
					C := rule.RHS()[0]
					if !closure.Contains(C) {
						closure.Add(C)
						queue.Add(C)
					}
					continue
				}
				prods = append(prods, cfg.NewProduction(A, rule.RHS()))
			}
		}
		tracer().Debugf("U(%s) = %v", A.Name, closure)
	}
	return cfg.FromRules(g.Name, g.Start(), prods)
}
