package cfg

import "fmt"

// ErrorCode classifies parse failures.
type ErrorCode int

// Parse error codes.
const (
	MalformedProduction ErrorCode = iota + 1 // line lacks a recognized arrow, or is otherwise broken
	EmptyHead                                // line has no head symbol before the arrow
	UnterminatedAlternative                  // dangling '|' with no following alternative
)

// ParseError is the error type returned by Parse. It identifies the
// offending line by 1-based index and raw text. Parsing is fail-fast: the
// first broken line aborts the whole parse and no partial grammar is
// returned.
type ParseError struct {
	Code ErrorCode
	Line int    // 1-based index of the offending line
	Text string // raw text of the offending line
	msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s (%q)", e.Line, e.msg, e.Text)
}

func malformedError(lineno int, text string, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Code: MalformedProduction,
		Line: lineno,
		Text: text,
		msg:  fmt.Sprintf(format, a...),
	}
}

func emptyHeadError(lineno int, text string) *ParseError {
	return &ParseError{
		Code: EmptyHead,
		Line: lineno,
		Text: text,
		msg:  "production has no head symbol",
	}
}

func danglingAltError(lineno int, text string) *ParseError {
	return &ParseError{
		Code: UnterminatedAlternative,
		Line: lineno,
		Text: text,
		msg:  "disjunction marker '|' without a following alternative",
	}
}
