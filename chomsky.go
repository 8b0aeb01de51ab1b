package chomsky

import (
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/chomsky/nf"
)

// Convert parses production text and normalizes the resulting grammar into
// Chomsky Normal Form. It returns the final CNF grammar together with the
// ordered snapshots taken after each of the five normalization stages.
//
// Parse failures are returned as a *cfg.ParseError; no partial result is
// produced in that case.
//
// Convert is safe for concurrent use: every call operates on its own grammar
// value and its own fresh-name bookkeeping.
func Convert(text string) (*cfg.Grammar, []nf.Snapshot, error) {
	g, err := cfg.Parse(text)
	if err != nil {
		return nil, nil, err
	}
	final, steps := nf.Convert(g)
	return final, steps, nil
}
