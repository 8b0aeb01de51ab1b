/*
Package cfg implements a model for context-free grammars.

Grammars consist of terminal and nonterminal symbols, and of productions
rewriting a nonterminal to a (possibly empty) sequence of symbols. Clients
either parse a grammar from production text (see Parse), or construct one
with a grammar builder object:

    b := cfg.NewGrammarBuilder("G")
    b.LHS("S").N("A").N("B").End()   // S  ->  A B
    b.LHS("S").T("a").End()          // S  ->  a
    b.LHS("A").T("a").N("A").End()   // A  ->  a A
    b.LHS("A").Epsilon()             // A  ->
    b.LHS("B").T("b").End()          // B  ->  b
    g, err := b.Grammar()

Symbols are tagged values: whether a symbol is a terminal or a nonterminal
is decided exactly once—at parse time or in the builder—and never
re-inferred afterwards. Grammars are immutable once constructed; the
normalization stages of package nf derive new grammars with FromRules.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.cfg'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cfg")
}
