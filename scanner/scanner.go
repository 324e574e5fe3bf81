/*
Package scanner tokenizes braille-table lines.

The scanner receives one logical line at a time (the table assembler joins
continuation lines before lexing) and produces a finite token sequence:
words, quoted strings, dot patterns, numbers and comparator punctuation.
Comments ('#' to end of line) and whitespace runs are consumed silently.
Classification is by shape only: "20" is a number token and "1f" a
dot-pattern token, and the primitive grammars accept either where the
opcode's shape calls for it.

Lexing is backed by a lexmachine DFA. There are no fixed-size buffers
anywhere in the scan path; memory use is bounded by line length alone.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"sync"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/npillmayer/brltab"
)

// tracer traces with key 'brltab.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("brltab.scanner")
}

// --- DFA construction ------------------------------------------------------

// Rule order matters twice over: lexmachine prefers the longest match, and
// breaks length ties in favor of the rule added first. "20" is tied between
// the number and dot-pattern rules and must come out a number; "1f" only the
// dot-pattern rule can match in full.
func newLexer() (*lexmachine.Lexer, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`#[^\n]*`), skip)
	lexer.Add([]byte(`( |\t)+`), skip)
	lexer.Add([]byte(`\"(\\.|[^\"\\])*\"`), makeToken(brltab.QuotedString))
	lexer.Add([]byte(`[0-9]+`), makeToken(brltab.NumberWord))
	lexer.Add([]byte(`[0-9a-f]+(-[0-9a-f]+)*`), makeToken(brltab.DotsWord))
	for _, op := range []string{`<=`, `>=`, `!=`, `=`, `<`, `>`, `\(`, `\)`} {
		lexer.Add([]byte(op), makeToken(brltab.Punct))
	}
	lexer.Add([]byte(`[^ \t\"=<>!()]+`), makeToken(brltab.Word))
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lexer, nil
}

// skip is a lexer action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// makeToken is a lexer action which wraps a scanned match into a token.
func makeToken(kind brltab.TokKind) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// The DFA is immutable after compilation and shared by all line scanners.
var lexer *lexmachine.Lexer
var lexerErr error
var compileOnce sync.Once

func sharedLexer() (*lexmachine.Lexer, error) {
	compileOnce.Do(func() {
		lexer, lexerErr = newLexer()
	})
	return lexer, lexerErr
}

// --- Line scanners ---------------------------------------------------------

// LineScanner tokenizes a single logical line. Each scanner owns its input
// and position; concurrent scanners never share mutable state.
type LineScanner struct {
	scanner *lexmachine.Scanner
	input   string
	done    bool
}

// NewLineScanner creates a scanner for one logical line of table text.
func NewLineScanner(line string) (*LineScanner, error) {
	lx, err := sharedLexer()
	if err != nil {
		return nil, err
	}
	s, err := lx.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	return &LineScanner{scanner: s, input: line}, nil
}

// NextToken returns the next token of the line, or a token of kind EOL once
// the line is exhausted. A malformed token yields a *brltab.ParseError of
// kind ErrLex; the scanner produces no further tokens afterwards.
func (s *LineScanner) NextToken() (brltab.Token, error) {
	if s.done {
		return s.eolToken(), nil
	}
	tok, err, eof := s.scanner.Next()
	if eof {
		s.done = true
		return s.eolToken(), nil
	}
	if err != nil {
		s.done = true
		return brltab.Token{}, s.lexError(err)
	}
	token := tok.(*lexmachine.Token)
	span := brltab.At(1, token.TC+1, uint64(token.TC), uint64(len(token.Lexeme)))
	tracer().Debugf("token %s %q at %s", brltab.TokKind(token.Type), token.Lexeme, span)
	return brltab.MakeToken(brltab.TokKind(token.Type), string(token.Lexeme), span), nil
}

// Tokens drains the scanner. The returned slice does not include the
// trailing EOL token.
func (s *LineScanner) Tokens() ([]brltab.Token, error) {
	var toks []brltab.Token
	for {
		tok, err := s.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind() == brltab.EOL {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

func (s *LineScanner) eolToken() brltab.Token {
	n := uint64(len(s.input))
	return brltab.MakeToken(brltab.EOL, "", brltab.At(1, len(s.input)+1, n, 0))
}

// lexError converts a lexmachine scan failure into a ParseError. An
// unterminated quote is reported at the opening quote, not at end of line.
func (s *LineScanner) lexError(err error) *brltab.ParseError {
	if ui, is := err.(*machines.UnconsumedInput); is {
		at := ui.StartTC
		if at < len(s.input) && s.input[at] == '"' {
			return brltab.LexErrorf(brltab.At(1, at+1, uint64(at), 1),
				"unterminated string literal")
		}
		end := ui.FailTC
		if end <= at {
			end = at + 1
		}
		return brltab.LexErrorf(brltab.At(1, at+1, uint64(at), uint64(end-at)),
			"malformed token %q", clip(s.input, at, end))
	}
	return brltab.LexErrorf(brltab.Span{}, "scan failed: %v", err)
}

func clip(s string, from, to int) string {
	if from > len(s) {
		from = len(s)
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}

// Tokens tokenizes one logical line. It is shorthand for creating a
// LineScanner and draining it.
func Tokens(line string) ([]brltab.Token, error) {
	s, err := NewLineScanner(line)
	if err != nil {
		return nil, err
	}
	return s.Tokens()
}
