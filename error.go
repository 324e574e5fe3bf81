package brltab

import "fmt"

// --- Parse errors ----------------------------------------------------------

// ErrorKind classifies parse failures.
type ErrorKind int8

const (
	ErrLex          ErrorKind = iota + 1 // malformed token, e.g. unterminated quote
	ErrUnknownOp                         // opcode not in the vocabulary
	ErrArgument                          // wrong argument count/type/range for a known opcode
	ErrSyntax                            // malformed test/action expression
	ErrContinuation                      // dangling continuation marker at end of file
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLex:
		return "lexical error"
	case ErrUnknownOp:
		return "unknown opcode"
	case ErrArgument:
		return "argument error"
	case ErrSyntax:
		return "syntax error"
	case ErrContinuation:
		return "continuation error"
	}
	return "error"
}

// ParseError is the single error type produced by the parse path. It carries
// the failure position (the furthest input point reached, not the start of
// the failed production), the lexeme found there, and, where a grammar
// choice failed, the sorted set of constructs that would have been
// accepted. ParseErrors are produced, never mutated.
type ParseError struct {
	Kind     ErrorKind
	Msg      string
	Sp       Span
	Opcode   string   // set for argument errors
	ArgPos   int      // 1-based argument position, set for argument errors
	Found    string   // lexeme (or token kind) at the failure point
	Expected []string // accepted constructs at the failure point, sorted
}

func (e *ParseError) Error() string {
	pos := ""
	if !e.Sp.IsNull() {
		pos = fmt.Sprintf("%d:%d: ", e.Sp.Line, e.Sp.Col)
	}
	return pos + e.Msg
}

func (e *ParseError) Span() Span {
	return e.Sp
}

// LexErrorf creates a lexical error at a span.
func LexErrorf(span Span, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: ErrLex, Sp: span, Msg: fmt.Sprintf(format, args...)}
}

// UnknownOpcodeError reports an opcode name missing from the vocabulary.
// The name is reported exactly as found in the input.
func UnknownOpcodeError(name string, span Span) *ParseError {
	return &ParseError{
		Kind:  ErrUnknownOp,
		Sp:    span,
		Found: name,
		Msg:   fmt.Sprintf("unknown opcode %q", name),
	}
}

// ArgumentErrorf reports a wrong argument for a known opcode. pos is the
// 1-based argument position; pos 0 flags a failure of the rule as a whole,
// e.g. a prefix on an opcode which takes none.
func ArgumentErrorf(opcode string, pos int, span Span, format string, args ...interface{}) *ParseError {
	msg := fmt.Sprintf(format, args...)
	if pos > 0 {
		msg = fmt.Sprintf("opcode %q, argument %d: %s", opcode, pos, msg)
	} else {
		msg = fmt.Sprintf("opcode %q: %s", opcode, msg)
	}
	return &ParseError{
		Kind:   ErrArgument,
		Sp:     span,
		Opcode: opcode,
		ArgPos: pos,
		Msg:    msg,
	}
}

// SyntaxErrorf reports a malformed test/action expression.
func SyntaxErrorf(span Span, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: ErrSyntax, Sp: span, Msg: fmt.Sprintf(format, args...)}
}

// ContinuationErrorf reports a dangling continuation marker.
func ContinuationErrorf(span Span, format string, args ...interface{}) *ParseError {
	return &ParseError{Kind: ErrContinuation, Sp: span, Msg: fmt.Sprintf(format, args...)}
}
