package cfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
)

// Glyphs used for rendering grammars.
const (
	arrowGlyph = "→"
	epsGlyph   = "ε"
)

// Text renders a grammar in its textual form: one line per distinct head,
//
//    HEAD → ALT | ALT | …
//
// with symbols space-separated within an alternative and ε denoting the
// empty body. The start symbol's line comes first, the remaining heads
// follow in sorted order; within a line, alternatives keep production
// order.
func (g *Grammar) Text() string {
	var heads []string
	seen := make(map[string]bool)
	for _, r := range g.rules {
		if !seen[r.LHS.Name] {
			seen[r.LHS.Name] = true
			heads = append(heads, r.LHS.Name)
		}
	}
	sort.Strings(heads)
	if seen[g.start.Name] {
		ordered := []string{g.start.Name}
		for _, h := range heads {
			if h != g.start.Name {
				ordered = append(ordered, h)
			}
		}
		heads = ordered
	}
	var b strings.Builder
	for i, h := range heads {
		if i > 0 {
			b.WriteString("\n")
		}
		var alts []string
		for _, r := range g.RulesFor(Nonterminal(h)) {
			alts = append(alts, bodyString(r.rhs))
		}
		b.WriteString(fmt.Sprintf("%s %s %s", h, arrowGlyph, strings.Join(alts, " | ")))
	}
	return b.String()
}

// Fingerprint returns a stable digest of a grammar, derived from its start
// symbol and rendered productions. Two grammars with identical production
// lists and start symbol share a fingerprint; callers may use it to detect
// whether a transformation changed anything.
func (g *Grammar) Fingerprint() string {
	view := struct {
		Start string
		Rules []string
	}{
		Start: g.start.Name,
		Rules: make([]string, len(g.rules)),
	}
	for i, r := range g.rules {
		view.Rules[i] = r.String()
	}
	return fmt.Sprintf("%x", structhash.Sha1(view, 1))
}
