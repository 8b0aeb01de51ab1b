package nf

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/chomsky/cfg"
)

// binarize brings every surviving production into CNF shape. Terminals
// occurring in bodies of length two or more are replaced by fresh
// variables—one per terminal, reused across the whole grammar—with an
// accompanying production T → t. Bodies of n ≥ 3 symbols are rewritten as a
// chain
//
//    Head → B1 X1,  X1 → B2 X2,  …,  X(n-2) → B(n-1) Bn
//
// with n-2 fresh intermediate variables per production, so unrelated
// chains never merge. Bodies of length ≤ 1 pass through unchanged (terminal
// productions, and the single allowed S0 → ε).
func (p *pipeline) binarize(g *cfg.Grammar) *cfg.Grammar {
	termVars := treemap.NewWith(cfg.SymbolComparator) // terminal ↦ fresh variable
	var prods []*cfg.Production
	for _, r := range g.Rules() {
		rhs := r.RHS()
		if len(rhs) <= 1 {
			prods = append(prods, r)
			continue
		}
		body := make([]cfg.Symbol, len(rhs))
		for i, sym := range rhs {
			if sym.IsTerminal() {
				body[i] = p.terminalVar(termVars, sym)
			} else {
				body[i] = sym
			}
		}
		prev := r.LHS
		for len(body) > 2 {
			link := p.names.Numbered("X", 1)
			prods = append(prods, cfg.NewProduction(prev, []cfg.Symbol{body[0], link}))
			body = body[1:]
			prev = link
		}
		prods = append(prods, cfg.NewProduction(prev, body))
	}
	termVars.Each(func(t, v interface{}) {
		prods = append(prods, cfg.NewProduction(v.(cfg.Symbol), []cfg.Symbol{t.(cfg.Symbol)}))
	})
	return cfg.FromRules(g.Name, g.Start(), prods)
}

// terminalVar returns the fresh variable standing in for terminal t,
// creating it on first use. Variables are named after the terminal
// (T_a for terminal a), falling back to numbered suffixes on collisions.
func (p *pipeline) terminalVar(vars *treemap.Map, t cfg.Symbol) cfg.Symbol {
	if v, ok := vars.Get(t); ok {
		return v.(cfg.Symbol)
	}
	v := p.names.Fresh("T_" + t.Name)
	vars.Put(t, v)
	tracer().Debugf("terminal %q isolated behind %s", t.Name, v.Name)
	return v
}
