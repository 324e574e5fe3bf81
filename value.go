package brltab

import (
	"strconv"
	"strings"
)

// --- Rule argument values --------------------------------------------------

// Value is one argument of a parsed directive: a tagged variant over the
// primitive semantic types a rule argument can hold. Values are immutable
// once constructed and always carry a valid span into the original input.
type Value interface {
	Span() Span
	String() string
	value() // seals the variant set
}

// CharLit is a single-character literal, e.g. the character being defined by
// a character-definition rule.
type CharLit struct {
	R  rune
	Sp Span
}

// CharRange is one alternative of a character class: a single character
// (Lo == Hi) or an inclusive range.
type CharRange struct {
	Lo, Hi rune
}

// CharClass is a bracketed alternation of characters and ranges, e.g.
// "[a-z0]".
type CharClass struct {
	Ranges []CharRange
	Sp     Span
}

// DotPattern is an ordered sequence of braille cells.
type DotPattern struct {
	Cells []Cell
	Sp    Span
}

// Number is a non-negative integer argument.
type Number struct {
	N  int
	Sp Span
}

// Ident is a name argument: a class name, an attribute name.
type Ident struct {
	Name string
	Sp   Span
}

// StringLit is a run of characters: rule text, a word to contract, a file
// name. Escape sequences are already decoded.
type StringLit struct {
	S  string
	Sp Span
}

func (v CharLit) Span() Span    { return v.Sp }
func (v CharClass) Span() Span  { return v.Sp }
func (v DotPattern) Span() Span { return v.Sp }
func (v Number) Span() Span     { return v.Sp }
func (v Ident) Span() Span      { return v.Sp }
func (v StringLit) Span() Span  { return v.Sp }

// String renders the character in table notation: blanks and backslashes
// come out as their escape sequences, so a rendered value re-parses to
// itself.
func (v CharLit) String() string {
	switch v.R {
	case ' ':
		return `\s`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\\':
		return `\\`
	}
	return string(v.R)
}

func (v CharClass) String() string {
	s := "["
	for _, r := range v.Ranges {
		if r.Lo == r.Hi {
			s += string(r.Lo)
		} else {
			s += string(r.Lo) + "-" + string(r.Hi)
		}
	}
	return s + "]"
}

func (v DotPattern) String() string { return CellsString(v.Cells) }
func (v Number) String() string     { return strconv.Itoa(v.N) }
func (v Ident) String() string      { return v.Name }

func (v StringLit) String() string {
	s := strings.ReplaceAll(v.S, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func (CharLit) value()    {}
func (CharClass) value()  {}
func (DotPattern) value() {}
func (Number) value()     {}
func (Ident) value()      {}
func (StringLit) value()  {}

// Contains tells whether the class matches a rune.
func (v CharClass) Contains(r rune) bool {
	for _, rg := range v.Ranges {
		if r >= rg.Lo && r <= rg.Hi {
			return true
		}
	}
	return false
}
