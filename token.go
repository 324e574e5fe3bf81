package brltab

// --- Tokens ----------------------------------------------------------------

// TokKind is the lexical category of a token.
type TokKind int8

// Token kinds produced by the line scanner. The scanner classifies by shape
// only: a word consisting solely of decimal digits is a NumberWord, a word
// over the dot alphabet (0-9, a-f, with optional '-' cell separators) is a
// DotsWord. Shape classification is a hint; the primitive grammars accept
// whichever kinds can denote the value they are after ("face" is a legal
// dot pattern and a legal character operand).
const (
	EOL          TokKind = iota // end of the logical line (synthetic)
	Word                        // any other run of non-blank characters
	DotsWord                    // e.g. "123", "1f", "123-1f"
	NumberWord                  // e.g. "42"
	QuotedString                // e.g. "a b", escapes \" and \\
	Punct                       // ( ) = != < <= > >=
)

func (k TokKind) String() string {
	switch k {
	case EOL:
		return "end-of-line"
	case Word:
		return "word"
	case DotsWord:
		return "dot-pattern"
	case NumberWord:
		return "number"
	case QuotedString:
		return "string"
	case Punct:
		return "punctuation"
	}
	return "unknown"
}

// Token is one lexical unit of a table line. Tokens are immutable values,
// produced by the scanner and consumed by the grammars.
type Token struct {
	kind   TokKind
	lexeme string
	span   Span
}

// MakeToken wraps a lexeme into a token.
func MakeToken(kind TokKind, lexeme string, span Span) Token {
	return Token{kind: kind, lexeme: lexeme, span: span}
}

func (t Token) Kind() TokKind {
	return t.kind
}

// Lexeme returns the token text as it appeared in the input, quotes and
// escapes included for QuotedString tokens.
func (t Token) Lexeme() string {
	return t.lexeme
}

func (t Token) Span() Span {
	return t.span
}

// Translated returns a copy of the token with its span replaced. The table
// assembler uses this to rewrite line-local spans into file coordinates.
func (t Token) Translated(span Span) Token {
	t.span = span
	return t
}

func (t Token) String() string {
	if t.kind == EOL {
		return "<EOL>"
	}
	return t.lexeme
}
