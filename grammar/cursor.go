package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/npillmayer/brltab"
)

// --- Input cursor ----------------------------------------------------------

// cursor is a read position within the token sequence of one logical line.
// Cursors are passed by value through all grammar functions: a failed
// production cannot move its caller's position, which rules out the shared
// scan-state overrun bugs of hand-rolled table parsers.
type cursor struct {
	toks []brltab.Token
	pos  int
	eol  brltab.Span // position just behind the last token
}

func newCursor(toks []brltab.Token, eol brltab.Span) cursor {
	return cursor{toks: toks, eol: eol}
}

// peek returns the token at the cursor, or a synthetic EOL token once the
// line is exhausted.
func (c cursor) peek() brltab.Token {
	if c.pos < len(c.toks) {
		return c.toks[c.pos]
	}
	return brltab.MakeToken(brltab.EOL, "", c.eol)
}

// next returns a cursor advanced by one token.
func (c cursor) next() cursor {
	if c.pos < len(c.toks) {
		c.pos++
	}
	return c
}

func (c cursor) exhausted() bool {
	return c.pos >= len(c.toks)
}

// remaining counts the tokens left on the line.
func (c cursor) remaining() int {
	return len(c.toks) - c.pos
}

// isWord tests for a word token with a given (lower-case) lexeme.
func (c cursor) isWord(word string) bool {
	tok := c.peek()
	return tok.Kind() == brltab.Word && strings.ToLower(tok.Lexeme()) == word
}

// --- Furthest-failure tracking ---------------------------------------------

// progress records the furthest input point a parse attempt has reached
// before failing, the lexeme found there, and the set of constructs that
// would have been accepted. The set is kept sorted (treeset) so diagnostics
// come out deterministic regardless of the order alternatives were tried in.
type progress struct {
	pos      int
	span     brltab.Span
	found    string
	expected *treeset.Set
}

func newProgress() *progress {
	return &progress{
		pos:      -1,
		expected: treeset.NewWith(utils.StringComparator),
	}
}

// expect records that construct `what` would have been accepted at the
// cursor position. Positions beyond the furthest point reset the set;
// positions behind it are ignored.
func (p *progress) expect(c cursor, what string) {
	if c.pos < p.pos {
		return
	}
	if c.pos > p.pos {
		p.pos = c.pos
		tok := c.peek()
		p.span = tok.Span()
		p.found = foundName(tok)
		p.expected.Clear()
	}
	p.expected.Add(what)
}

func (p *progress) expectedList() []string {
	vals := p.expected.Values()
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = v.(string)
	}
	return strs
}

// syntaxError turns the furthest failure point into a ParseError.
func (p *progress) syntaxError() *brltab.ParseError {
	exp := p.expectedList()
	var err *brltab.ParseError
	if len(exp) == 0 {
		err = brltab.SyntaxErrorf(p.span, "unexpected %s", p.found)
	} else {
		err = brltab.SyntaxErrorf(p.span, "expecting %s, found %s",
			strings.Join(exp, " or "), p.found)
	}
	err.Found = p.found
	err.Expected = exp
	return err
}

func foundName(tok brltab.Token) string {
	if tok.Kind() == brltab.EOL {
		return "end of line"
	}
	return "\"" + tok.Lexeme() + "\""
}
