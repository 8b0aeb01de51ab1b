package cfg

import (
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine-based tokenizer for single production lines.

// Token types of the production-line scanner.
const (
	tokSymbol = iota + 10
	tokArrow
	tokPipe
)

type lineToken struct {
	typ    int
	lexeme string
}

var lexOnce sync.Once // monitors one-time DFA compilation
var lineLexer *lexmachine.Lexer
var lineLexerErr error

// lexer returns the compiled scanner DFA for production lines. The arrow
// must already be canonicalized to its ASCII spelling; '-' is reserved for
// the arrow and cannot appear inside a symbol.
func lexer() (*lexmachine.Lexer, error) {
	lexOnce.Do(func() {
		lineLexer = lexmachine.NewLexer()
		lineLexer.Add([]byte(`( |\t|\r)+`), skip)
		lineLexer.Add([]byte(`->`), makeToken(tokArrow))
		lineLexer.Add([]byte(`\|`), makeToken(tokPipe))
		lineLexer.Add([]byte(`[^ \t\r\n|\-]+`), makeToken(tokSymbol))
		lineLexerErr = lineLexer.Compile()
	})
	return lineLexer, lineLexerErr
}

// Skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is an action which wraps a scanned match into a token.
func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// scanLine tokenizes a single production line.
func scanLine(line string) ([]lineToken, error) {
	lx, err := lexer()
	if err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	s, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var toks []lineToken
	tok, err, eof := s.Next()
	for !eof {
		if err != nil {
			return nil, err
		}
		if tok != nil {
			t := tok.(*lexmachine.Token)
			toks = append(toks, lineToken{typ: t.Type, lexeme: string(t.Lexeme)})
		}
		tok, err, eof = s.Next()
	}
	return toks, nil
}
