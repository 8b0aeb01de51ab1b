package nf

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/chomsky/cfg"
)

// removeUseless drops non-generating symbols first and unreachable symbols
// second, operating on the result of the first step. The order is
// essential: reversing it can leave symbols which are reachable but
// non-generating, or which lose their generating status only after their
// producers disappear.
func (p *pipeline) removeUseless(g *cfg.Grammar) *cfg.Grammar {
	return reachableOnly(generatingOnly(g))
}

// generatingOnly keeps only productions whose head and body consist of
// generating symbols. Terminals are generating by definition; a
// nonterminal is generating if some production rewrites it to generating
// symbols only (the base case being an all-terminal or empty body).
// Computed as a least fixpoint.
func generatingOnly(g *cfg.Grammar) *cfg.Grammar {
	generating := treeset.NewWith(cfg.SymbolComparator)
	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules() {
			if generating.Contains(r.LHS) {
				continue
			}
			ok := true
			for _, sym := range r.RHS() {
				if !sym.IsTerminal() && !generating.Contains(sym) {
					ok = false
					break
				}
			}
			if ok {
				generating.Add(r.LHS)
				changed = true
			}
		}
	}
	tracer().Debugf("generating set = %v", generating)
	var prods []*cfg.Production
	for _, r := range g.Rules() {
		keep := generating.Contains(r.LHS)
		for _, sym := range r.RHS() {
			if !keep {
				break
			}
			if !sym.IsTerminal() && !generating.Contains(sym) {
				keep = false
			}
		}
		if keep {
			prods = append(prods, r)
		}
	}
	return cfg.FromRules(g.Name, g.Start(), prods)
}

// reachableOnly keeps only productions headed by symbols reachable from the
// start symbol, computed as a graph traversal over the (already
// generating-filtered) production set.
func reachableOnly(g *cfg.Grammar) *cfg.Grammar {
	reachable := treeset.NewWith(cfg.SymbolComparator, g.Start())
	queue := arraylist.New(g.Start())
	for queue.Size() > 0 {
		v, _ := queue.Get(0)
		queue.Remove(0)
		A := v.(cfg.Symbol)
		for _, r := range g.RulesFor(A) {
			for _, sym := range r.RHS() {
				if !sym.IsTerminal() && !reachable.Contains(sym) {
					reachable.Add(sym)
					queue.Add(sym)
				}
			}
		}
	}
	tracer().Debugf("reachable set = %v", reachable)
	var prods []*cfg.Production
	for _, r := range g.Rules() {
		if reachable.Contains(r.LHS) {
			prods = append(prods, r)
		}
	}
	return cfg.FromRules(g.Name, g.Start(), prods)
}
