package cfg

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse parses line-oriented production text into a grammar.
//
// Every non-blank line describes one production family:
//
//    HEAD → BODY | BODY | …
//
// The arrow may be spelled '->' or '→', alternatives are separated by '|'.
// An alternative consisting solely of 'ε' (or its ASCII spelling 'E')
// denotes the empty body. The start symbol is the head of the first parsed
// production.
//
// Lexical convention, applied uniformly: a line is tokenized into maximal
// runs of characters which are neither whitespace nor one of the reserved
// markers ('|', the two arrow spellings). If an alternative consists of two
// or more tokens, every token is one symbol; a single-token alternative is
// split into one symbol per rune, so that 'AB' abbreviates 'A B'. A symbol
// whose first rune is an uppercase letter is a nonterminal, every other
// symbol is a terminal. Classification happens here, once, and is carried
// in the symbol's tag from then on; a nonterminal that never appears as a
// head simply has no productions and is removed by the useless-symbol
// stage of package nf.
//
// Parsing is fail-fast: the first malformed line aborts with a *ParseError
// identifying the line, and no partial grammar is returned.
func Parse(text string) (*Grammar, error) {
	b := NewGrammarBuilder("G")
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := parseLine(b, i+1, raw, line); err != nil {
			return nil, err
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed grammar with %d productions", g.Size())
	g.Dump()
	return g, nil
}

func parseLine(b *GrammarBuilder, lineno int, raw, line string) error {
	canon := strings.ReplaceAll(line, "→", "->")
	toks, err := scanLine(canon)
	if err != nil {
		return malformedError(lineno, raw, "cannot scan production: %v", err)
	}
	arrowAt := -1
	for i, t := range toks {
		if t.typ == tokArrow {
			arrowAt = i
			break
		}
	}
	switch {
	case arrowAt < 0:
		return malformedError(lineno, raw, "production has no arrow")
	case arrowAt == 0:
		return emptyHeadError(lineno, raw)
	case arrowAt > 1:
		return malformedError(lineno, raw, "head must be a single symbol")
	}
	head := classify(toks[0].lexeme)
	if head.IsTerminal() {
		return malformedError(lineno, raw, "head %q is not a nonterminal", head.Name)
	}
	body := toks[arrowAt+1:]
	if len(body) == 0 {
		return malformedError(lineno, raw, "production has no body")
	}
	alt := make([]lineToken, 0, len(body))
	for _, t := range body {
		switch t.typ {
		case tokArrow:
			return malformedError(lineno, raw, "unexpected second arrow")
		case tokPipe:
			if len(alt) == 0 {
				return danglingAltError(lineno, raw)
			}
			appendAlternative(b, head, alt)
			alt = alt[:0]
		default:
			alt = append(alt, t)
		}
	}
	if len(alt) == 0 { // trailing '|'
		return danglingAltError(lineno, raw)
	}
	appendAlternative(b, head, alt)
	return nil
}

// appendAlternative adds one production for an alternative's token run.
func appendAlternative(b *GrammarBuilder, head Symbol, alt []lineToken) {
	rb := b.LHS(head.Name)
	if len(alt) == 1 {
		if isEpsMarker(alt[0].lexeme) {
			rb.Epsilon()
			return
		}
		// single token: one symbol per rune
		for _, r := range alt[0].lexeme {
			rb.AppendSymbol(classify(string(r)))
		}
		rb.End()
		return
	}
	for _, t := range alt {
		rb.AppendSymbol(classify(t.lexeme))
	}
	rb.End()
}

// isEpsMarker accepts the two spellings of the empty-body marker. 'E' is
// reserved for this purpose and cannot be used as a nonterminal name in
// single-symbol alternatives.
func isEpsMarker(lexeme string) bool {
	return lexeme == epsGlyph || lexeme == "E"
}

// classify tags a symbol name: uppercase first rune means nonterminal,
// everything else is a terminal.
func classify(name string) Symbol {
	r, _ := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return Nonterminal(name)
	}
	return Terminal(name)
}
