package nf

import (
	"github.com/npillmayer/chomsky/cfg"
)

// isolateStart introduces a brand-new start symbol S0 (or S1, S2, … if that
// name is taken) with the single production S0 → S. Afterwards the start
// symbol never occurs on any right-hand side, so the later ε-stage can
// attach its "start derives the empty string" special case solely to S0.
func (p *pipeline) isolateStart(g *cfg.Grammar) *cfg.Grammar {
	s0 := p.names.Numbered("S", 0)
	tracer().Debugf("new start symbol %s", s0.Name)
	prods := make([]*cfg.Production, 0, g.Size()+1)
	prods = append(prods, cfg.NewProduction(s0, []cfg.Symbol{g.Start()}))
	prods = append(prods, g.Rules()...)
	return cfg.FromRules(g.Name, s0, prods)
}
