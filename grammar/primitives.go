package grammar

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/brltab"
)

// --- Primitive value grammars ----------------------------------------------

// valueError describes a failed primitive: either the token at the cursor
// cannot denote the wanted kind at all (expected/found), or it has the right
// shape but fails validation (msg, e.g. a duplicate dot within a cell).
type valueError struct {
	expected string // wanted construct
	msg      string // validation failure, empty for a plain mismatch
	span     brltab.Span
	found    string
}

func (ve *valueError) message() string {
	if ve.msg != "" {
		return ve.msg
	}
	return "expecting " + ve.expected + ", found " + ve.found
}

// mismatch records the expectation in the progress record and builds a
// valueError for the caller.
func mismatch(c cursor, p *progress, expected string) *valueError {
	p.expect(c, expected)
	tok := c.peek()
	return &valueError{expected: expected, span: tok.Span(), found: foundName(tok)}
}

func invalid(tok brltab.Token, format string, args ...interface{}) *valueError {
	return &valueError{
		msg:   fmt.Sprintf(format, args...),
		span:  tok.Span(),
		found: foundName(tok),
	}
}

// --- Dot patterns ----------------------------------------------------------

// parseDots consumes one token denoting a braille dot pattern: cells over
// the dot alphabet 0–9, a–f, joined by '-'. A dot may appear at most once
// per cell.
func parseDots(c cursor, p *progress) (brltab.DotPattern, cursor, *valueError) {
	tok := c.peek()
	if tok.Kind() != brltab.DotsWord && tok.Kind() != brltab.NumberWord {
		return brltab.DotPattern{}, c, mismatch(c, p, "dot pattern")
	}
	cells, verr := cellsFromLexeme(tok)
	if verr != nil {
		return brltab.DotPattern{}, c, verr
	}
	return brltab.DotPattern{Cells: cells, Sp: tok.Span()}, c.next(), nil
}

func cellsFromLexeme(tok brltab.Token) ([]brltab.Cell, *valueError) {
	parts := strings.Split(tok.Lexeme(), "-")
	cells := make([]brltab.Cell, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, invalid(tok, "empty cell in dot pattern %q", tok.Lexeme())
		}
		var cell brltab.Cell
		for _, r := range part {
			dot, ok := brltab.Dot(r)
			if !ok {
				return nil, invalid(tok, "%q is not a dot number (0-9, a-f)", string(r))
			}
			if cell.Has(dot) {
				return nil, invalid(tok, "duplicate dot %q within one cell", string(r))
			}
			cell = cell.With(dot)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// --- Character runs --------------------------------------------------------

// parseChars consumes one token denoting a run of characters: a bare word
// (escapes \s \t \n \\ decoded) or a quoted string.
func parseChars(c cursor, p *progress) (brltab.StringLit, cursor, *valueError) {
	tok := c.peek()
	var text string
	var verr *valueError
	switch tok.Kind() {
	case brltab.Word, brltab.DotsWord, brltab.NumberWord:
		text, verr = unescapeWord(tok)
	case brltab.QuotedString:
		text, verr = unquote(tok)
	default:
		return brltab.StringLit{}, c, mismatch(c, p, "characters")
	}
	if verr != nil {
		return brltab.StringLit{}, c, verr
	}
	return brltab.StringLit{S: text, Sp: tok.Span()}, c.next(), nil
}

// parseChar consumes a character run and requires it to be a single rune.
func parseChar(c cursor, p *progress) (brltab.CharLit, cursor, *valueError) {
	tok := c.peek()
	lit, c2, verr := parseChars(c, p)
	if verr != nil {
		verr.expected = "character"
		return brltab.CharLit{}, c, verr
	}
	if utf8.RuneCountInString(lit.S) != 1 {
		return brltab.CharLit{}, c, invalid(tok, "expecting a single character, found %q", lit.S)
	}
	r, _ := utf8.DecodeRuneInString(lit.S)
	return brltab.CharLit{R: r, Sp: lit.Sp}, c2, nil
}

// --- Numbers ---------------------------------------------------------------

// parseNumber consumes a non-negative integer. Range limits come from the
// opcode's argument shape, never from the primitive itself.
func parseNumber(c cursor, p *progress, min, max int) (brltab.Number, cursor, *valueError) {
	tok := c.peek()
	if tok.Kind() != brltab.NumberWord {
		return brltab.Number{}, c, mismatch(c, p, "number")
	}
	n, err := strconv.Atoi(tok.Lexeme())
	if err != nil {
		return brltab.Number{}, c, invalid(tok, "number %q out of range", tok.Lexeme())
	}
	if n < min {
		return brltab.Number{}, c, invalid(tok, "number %d below minimum %d", n, min)
	}
	if max > 0 && n > max {
		return brltab.Number{}, c, invalid(tok, "number %d above maximum %d", n, max)
	}
	return brltab.Number{N: n, Sp: tok.Span()}, c.next(), nil
}

// --- Names -----------------------------------------------------------------

// parseName consumes an identifier: a letter followed by letters, digits,
// '_' or '-'.
func parseName(c cursor, p *progress) (brltab.Ident, cursor, *valueError) {
	tok := c.peek()
	switch tok.Kind() {
	case brltab.Word, brltab.DotsWord:
		// fallthrough to validation; "face" lexes as a dot pattern but is
		// a perfectly good name
	default:
		return brltab.Ident{}, c, mismatch(c, p, "name")
	}
	name := tok.Lexeme()
	if !validName(name) {
		return brltab.Ident{}, c, invalid(tok, "%q is not a valid name", name)
	}
	return brltab.Ident{Name: name, Sp: tok.Span()}, c.next(), nil
}

func validName(name string) bool {
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return name != ""
}

// --- Character classes -----------------------------------------------------

// parseClass consumes a bracketed character class: single characters and
// lo-hi ranges, e.g. "[a-z0]". A bare character run is accepted as the
// class of exactly those characters.
func parseClass(c cursor, p *progress) (brltab.CharClass, cursor, *valueError) {
	tok := c.peek()
	switch tok.Kind() {
	case brltab.Word, brltab.DotsWord, brltab.NumberWord:
	default:
		return brltab.CharClass{}, c, mismatch(c, p, "character class")
	}
	lex := tok.Lexeme()
	if !strings.HasPrefix(lex, "[") {
		lit, c2, verr := parseChars(c, p)
		if verr != nil {
			verr.expected = "character class"
			return brltab.CharClass{}, c, verr
		}
		var ranges []brltab.CharRange
		for _, r := range lit.S {
			ranges = append(ranges, brltab.CharRange{Lo: r, Hi: r})
		}
		return brltab.CharClass{Ranges: ranges, Sp: lit.Sp}, c2, nil
	}
	if !strings.HasSuffix(lex, "]") || len(lex) < 2 {
		return brltab.CharClass{}, c, invalid(tok, "unterminated character class %q", lex)
	}
	body := []rune(lex[1 : len(lex)-1])
	if len(body) == 0 {
		return brltab.CharClass{}, c, invalid(tok, "empty character class")
	}
	var ranges []brltab.CharRange
	for i := 0; i < len(body); {
		lo := body[i]
		if i+2 < len(body) && body[i+1] == '-' {
			hi := body[i+2]
			if hi < lo {
				return brltab.CharClass{}, c,
					invalid(tok, "invalid range %s-%s in character class", string(lo), string(hi))
			}
			ranges = append(ranges, brltab.CharRange{Lo: lo, Hi: hi})
			i += 3
			continue
		}
		ranges = append(ranges, brltab.CharRange{Lo: lo, Hi: lo})
		i++
	}
	return brltab.CharClass{Ranges: ranges, Sp: tok.Span()}, c.next(), nil
}

// --- File names ------------------------------------------------------------

// parseFile consumes the file-name argument of an include directive. The
// parser records the name only; resolution is the file loader's business.
func parseFile(c cursor, p *progress) (brltab.StringLit, cursor, *valueError) {
	tok := c.peek()
	switch tok.Kind() {
	case brltab.Word, brltab.DotsWord, brltab.NumberWord:
		return brltab.StringLit{S: tok.Lexeme(), Sp: tok.Span()}, c.next(), nil
	case brltab.QuotedString:
		return parseChars(c, p)
	}
	return brltab.StringLit{}, c, mismatch(c, p, "file name")
}

// --- Escape handling -------------------------------------------------------

// unescapeWord decodes the escape set of bare words: \s (space), \t, \n, \\.
func unescapeWord(tok brltab.Token) (string, *valueError) {
	lex := tok.Lexeme()
	if !strings.ContainsRune(lex, '\\') {
		return lex, nil
	}
	var b strings.Builder
	runes := []rune(lex)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 >= len(runes) {
			return "", invalid(tok, "dangling escape at end of %q", lex)
		}
		i++
		switch runes[i] {
		case 's':
			b.WriteByte(' ')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", invalid(tok, "unknown escape \\%s in %q", string(runes[i]), lex)
		}
	}
	return b.String(), nil
}

// unquote strips the quotes of a string token and decodes its escapes
// (the word escapes plus \").
func unquote(tok brltab.Token) (string, *valueError) {
	lex := tok.Lexeme()
	if len(lex) < 2 || lex[0] != '"' || lex[len(lex)-1] != '"' {
		return "", invalid(tok, "malformed string literal %q", lex)
	}
	body := lex[1 : len(lex)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var b strings.Builder
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 >= len(runes) {
			return "", invalid(tok, "dangling escape in string literal")
		}
		i++
		switch runes[i] {
		case '"':
			b.WriteByte('"')
		case 's':
			b.WriteByte(' ')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", invalid(tok, "unknown escape \\%s in string literal", string(runes[i]))
		}
	}
	return b.String(), nil
}
