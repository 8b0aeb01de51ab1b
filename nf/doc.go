/*
Package nf normalizes context-free grammars into Chomsky Normal Form.

Normalization runs as a pipeline of five ordered stages, each a pure
function from grammar to grammar:

  1. Add a new start symbol: a fresh S0 with production S0 → S, so the
     start symbol never occurs on a right-hand side and the
     "start derives ε" special case can attach solely to S0.
  2. Remove ε-productions: compute the nullable set as a least fixpoint,
     expand every production over the power set of its nullable positions,
     and drop all ε-productions except a single allowed S0 → ε.
  3. Remove unit productions: replace every nonterminal's productions by
     the non-unit productions of its unit closure; cycles in the unit graph
     are absorbed by the closure computation.
  4. Remove useless symbols: non-generating symbols first, then unreachable
     symbols, strictly in that order.
  5. Binarize and isolate terminals: terminals inside longer bodies move
     behind fresh variables T → t, and bodies of three or more symbols are
     chained through fresh intermediate variables.

Stages never modify their input grammar; every stage derives a new grammar
value. After each stage a labeled snapshot is recorded, so that callers
(step-by-step front ends, tests) can inspect the complete transformation.

All fixpoint loops operate on subsets of the grammar's own symbol set and
therefore terminate after at most as many rounds as there are symbols.
Fresh-name bookkeeping is local to one Convert call; concurrent conversions
share no state.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.nf'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.nf")
}
