package cfg

import "strconv"

// Namer synthesizes fresh nonterminal names which are guaranteed not to
// collide with any name already present in a grammar. Namers are
// request-scoped: every conversion run uses its own Namer, never a
// process-wide counter, so concurrent conversions produce reproducible,
// independent output.
type Namer struct {
	taken    map[string]bool
	counters map[string]int
}

// NewNamer creates a namer seeded with every symbol name of g.
func NewNamer(g *Grammar) *Namer {
	n := &Namer{
		taken:    make(map[string]bool),
		counters: make(map[string]int),
	}
	if g != nil {
		g.EachSymbol(func(sym Symbol) interface{} {
			n.taken[sym.Name] = true
			return nil
		})
	}
	return n
}

// Fresh returns a nonterminal named base if that name is free, otherwise
// base2, base3, … The returned name is claimed.
func (n *Namer) Fresh(base string) Symbol {
	name := base
	for i := 2; n.taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	n.taken[name] = true
	return Nonterminal(name)
}

// Numbered returns a nonterminal named prefix<i>, with i counting up from
// the given start per prefix and skipping names already claimed. Successive
// calls with the same prefix continue the count, which keeps chains like
// X1, X2, … stable across an entire conversion.
func (n *Namer) Numbered(prefix string, from int) Symbol {
	i, ok := n.counters[prefix]
	if !ok {
		i = from
	}
	name := prefix + strconv.Itoa(i)
	for n.taken[name] {
		i++
		name = prefix + strconv.Itoa(i)
	}
	n.counters[prefix] = i + 1
	n.taken[name] = true
	return Nonterminal(name)
}
