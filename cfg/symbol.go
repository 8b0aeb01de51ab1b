package cfg

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolKind tags a grammar symbol as terminal or nonterminal.
type SymbolKind int8

// The two kinds of grammar symbols.
const (
	TerminalType SymbolKind = iota
	NonterminalType
)

// Symbol is a terminal or nonterminal grammar symbol. Symbols are small
// value types; two symbols are equal iff kind and name agree.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Terminal creates a terminal symbol.
func Terminal(name string) Symbol {
	return Symbol{Name: name, Kind: TerminalType}
}

// Nonterminal creates a nonterminal symbol.
func Nonterminal(name string) Symbol {
	return Symbol{Name: name, Kind: NonterminalType}
}

// IsTerminal returns true for terminal symbols.
func (sym Symbol) IsTerminal() bool {
	return sym.Kind == TerminalType
}

func (sym Symbol) String() string {
	return sym.Name
}

// SymbolComparator orders symbols by kind, then by name. It has the
// signature expected by the gods container types.
func SymbolComparator(a, b interface{}) int {
	s1 := a.(Symbol)
	s2 := b.(Symbol)
	if s1.Kind != s2.Kind {
		return int(s1.Kind) - int(s2.Kind)
	}
	return utils.StringComparator(s1.Name, s2.Name)
}

// newSymbolSet creates an ordered set of symbols.
func newSymbolSet(syms ...Symbol) *treeset.Set {
	set := treeset.NewWith(SymbolComparator)
	for _, sym := range syms {
		set.Add(sym)
	}
	return set
}
