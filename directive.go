package brltab

import (
	"strings"
)

// --- Rule prefixes ---------------------------------------------------------

// Prefix is a bit set of the modifier keywords which may precede an opcode.
type Prefix uint8

const (
	Noback  Prefix = 1 << iota // rule not used for back-translation
	Nofor                      // rule not used for forward translation
	Nocross                    // dots may not be split across a hyphenation point
)

// PrefixNamed maps a prefix keyword to its flag.
// Returns false for non-prefix words.
func PrefixNamed(word string) (Prefix, bool) {
	switch word {
	case "noback":
		return Noback, true
	case "nofor":
		return Nofor, true
	case "nocross":
		return Nocross, true
	}
	return 0, false
}

func (p Prefix) Has(flag Prefix) bool {
	return p&flag != 0
}

func (p Prefix) String() string {
	var names []string
	if p.Has(Noback) {
		names = append(names, "noback")
	}
	if p.Has(Nofor) {
		names = append(names, "nofor")
	}
	if p.Has(Nocross) {
		names = append(names, "nocross")
	}
	return strings.Join(names, " ")
}

// --- Directives ------------------------------------------------------------

// Directive is one parsed rule line: the opcode, its prefixes, the typed
// argument values in order, and, for multipart opcodes, the test/action
// body. Directives never reference other directives; relationships between
// rules are positional (ruleset order) or by-name, resolved later by the
// consuming translation engine.
type Directive struct {
	Opcode   string  // lower-cased opcode name
	Prefixes Prefix  // zero or more of noback/nofor/nocross
	Args     []Value // in declaration order
	Body     *Body   // non-nil iff the opcode is multipart
	Sp       Span    // covers the whole rule, prefixes included
}

func (d *Directive) Span() Span {
	return d.Sp
}

func (d *Directive) String() string {
	var b strings.Builder
	if d.Prefixes != 0 {
		b.WriteString(d.Prefixes.String())
		b.WriteByte(' ')
	}
	b.WriteString(d.Opcode)
	for _, arg := range d.Args {
		b.WriteByte(' ')
		b.WriteString(arg.String())
	}
	if d.Body != nil {
		b.WriteByte(' ')
		b.WriteString(d.Body.String())
	}
	return b.String()
}

// Body is the test/action part of a multipart directive.
type Body struct {
	Test    Expr
	Actions []ActionStep
	Sp      Span
}

func (b *Body) String() string {
	var sb strings.Builder
	sb.WriteString("test ")
	sb.WriteString(b.Test.String())
	sb.WriteString(" actions")
	for _, step := range b.Actions {
		sb.WriteByte(' ')
		sb.WriteString(step.String())
	}
	return sb.String()
}
