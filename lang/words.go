/*
Package lang enumerates bounded samples of a context-free grammar's
language.

Enumeration is a breadth-first derivation from the start symbol: sentential
forms are expanded at their leftmost nonterminal, and forms consisting of
terminals only are collected as words. The search is bounded by a maximum
word length, a maximum word count and an overall expansion budget, so it
terminates even for grammars with ε- or unit-cycles.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lang

import (
	"sort"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/chomsky/cfg"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.lang'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.lang")
}

// expansion budget: hard cap on sentential forms taken off the worklist.
const maxExpansions = 100000

// Words derives all words of g's language up to maxLen characters,
// returning at most maxWords of them, sorted by length and then
// lexicographically. The empty word is included if the language contains
// it. Words is deterministic for a given grammar.
func Words(g *cfg.Grammar, maxLen int, maxWords int) []string {
	if maxWords <= 0 {
		return nil
	}
	found := make(map[string]bool)
	visited := make(map[string]bool)
	queue := arraylist.New()
	start := []cfg.Symbol{g.Start()}
	queue.Add(start)
	visited[formKey(start)] = true
	expansions := 0
	for queue.Size() > 0 && expansions < maxExpansions {
		v, _ := queue.Get(0)
		queue.Remove(0)
		form := v.([]cfg.Symbol)
		expansions++
		at := leftmostNonterminal(form)
		if at < 0 { // all-terminal form: a word
			w := wordOf(form)
			if len(w) <= maxLen && !found[w] {
				found[w] = true
				tracer().Debugf("derived word %q", w)
			}
			continue
		}
		for _, r := range g.RulesFor(form[at]) {
			next := expand(form, at, r.RHS())
			if terminalLength(next) > maxLen {
				continue
			}
			if key := formKey(next); !visited[key] {
				visited[key] = true
				queue.Add(next)
			}
		}
	}
	words := make([]string, 0, len(found))
	for w := range found {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) < len(words[j])
		}
		return words[i] < words[j]
	})
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return words
}

// Contains reports whether word is derivable from g, up to the enumeration
// budget of Words. Intended for language comparisons on small samples, not
// as a general recognizer.
func Contains(g *cfg.Grammar, word string) bool {
	for _, w := range Words(g, len(word), maxExpansions) {
		if w == word {
			return true
		}
	}
	return false
}

func leftmostNonterminal(form []cfg.Symbol) int {
	for i, sym := range form {
		if !sym.IsTerminal() {
			return i
		}
	}
	return -1
}

// expand replaces form[at] by rhs, copying the form.
func expand(form []cfg.Symbol, at int, rhs []cfg.Symbol) []cfg.Symbol {
	next := make([]cfg.Symbol, 0, len(form)+len(rhs)-1)
	next = append(next, form[:at]...)
	next = append(next, rhs...)
	next = append(next, form[at+1:]...)
	return next
}

// terminalLength is the length of the terminal prefix material in a form,
// a lower bound for the length of every word derivable from it.
func terminalLength(form []cfg.Symbol) int {
	n := 0
	for _, sym := range form {
		if sym.IsTerminal() {
			n += len(sym.Name)
		}
	}
	return n
}

func wordOf(form []cfg.Symbol) string {
	var b strings.Builder
	for _, sym := range form {
		b.WriteString(sym.Name)
	}
	return b.String()
}

func formKey(form []cfg.Symbol) string {
	parts := make([]string, len(form))
	for i, sym := range form {
		if sym.IsTerminal() {
			parts[i] = "t:" + sym.Name
		} else {
			parts[i] = "n:" + sym.Name
		}
	}
	return strings.Join(parts, "\x00")
}
