package nf

import (
	"github.com/npillmayer/chomsky/cfg"
)

// Labels of the five normalization stages, in pipeline order.
const (
	StageStartSymbol = "Add a new start symbol"
	StageEpsilons    = "Remove ε-productions"
	StageUnits       = "Remove unit productions"
	StageUseless     = "Remove useless symbols"
	StageBinarize    = "Binarize and isolate terminals"
)

// Snapshot is an immutable copy of the grammar as of a stage's completion,
// together with the stage's label. The snapshot sequence of a conversion
// has exactly one entry per stage, in pipeline order.
type Snapshot struct {
	Label   string
	Grammar *cfg.Grammar
	Digest  string // grammar fingerprint, see cfg.Grammar.Fingerprint
}

// stage is one step of the pipeline.
type stage struct {
	label string
	apply func(*cfg.Grammar) *cfg.Grammar
}

// pipeline carries the per-conversion state: the fresh-name bookkeeping and
// the recorded snapshots. A pipeline value is local to one Convert call.
type pipeline struct {
	names *cfg.Namer
	steps []Snapshot
}

// Convert normalizes a grammar into Chomsky Normal Form. It returns the
// final grammar and the ordered snapshots taken after each of the five
// stages. The input grammar is left untouched.
func Convert(g *cfg.Grammar) (*cfg.Grammar, []Snapshot) {
	p := &pipeline{names: cfg.NewNamer(g)}
	stages := []stage{
		{StageStartSymbol, p.isolateStart},
		{StageEpsilons, p.removeEpsilons},
		{StageUnits, p.removeUnits},
		{StageUseless, p.removeUseless},
		{StageBinarize, p.binarize},
	}
	cur := g
	for _, s := range stages {
		cur = s.apply(cur)
		tracer().Debugf("=== %s %s", s.label, "==================================")
		cur.Dump()
		p.record(s.label, cur)
	}
	return cur, p.steps
}

func (p *pipeline) record(label string, g *cfg.Grammar) {
	p.steps = append(p.steps, Snapshot{
		Label:   label,
		Grammar: g,
		Digest:  g.Fingerprint(),
	})
}
