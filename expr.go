package brltab

import (
	"strconv"
	"strings"
)

// --- Test/action expression trees ------------------------------------------

// Expr is a node of the test sub-language of multipart opcodes. The tree is
// owned by its directive, carries a span per node, and contains no cycles
// and no shared mutable state.
type Expr interface {
	Span() Span
	String() string
	expr()
}

// Literal is a bare word or quoted string matched verbatim against input.
type Literal struct {
	Text string
	Sp   Span
}

// IntLit is a numeric leaf, used as a comparator operand.
type IntLit struct {
	N  int
	Sp Span
}

// ClassRef references a character class by name ("_vowels" → "vowels").
// Name resolution is the consuming engine's job, not the parser's.
type ClassRef struct {
	Name string
	Sp   Span
}

// CompareOp is a comparator operator.
type CompareOp int8

const (
	OpEq CompareOp = iota // =
	OpNe                  // !=
	OpLt                  // <
	OpLe                  // <=
	OpGt                  // >
	OpGe                  // >=
)

func (op CompareOp) String() string {
	switch op {
	case OpEq:
		return "="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	}
	return "?"
}

// Compare is a binary comparison between two operand leaves.
type Compare struct {
	Op          CompareOp
	Left, Right Expr
	Sp          Span
}

// Not negates its operand.
type Not struct {
	X  Expr
	Sp Span
}

// And is an n-ary conjunction, in source order.
type And struct {
	Terms []Expr
	Sp    Span
}

// Or is an n-ary disjunction, in source order.
type Or struct {
	Terms []Expr
	Sp    Span
}

// ActionStep is one step of the action clause: an action name plus operand
// leaves (numbers, strings, class references).
type ActionStep struct {
	Name     string
	Operands []Expr
	Sp       Span
}

func (e Literal) Span() Span    { return e.Sp }
func (e IntLit) Span() Span     { return e.Sp }
func (e ClassRef) Span() Span   { return e.Sp }
func (e Compare) Span() Span    { return e.Sp }
func (e Not) Span() Span        { return e.Sp }
func (e And) Span() Span        { return e.Sp }
func (e Or) Span() Span         { return e.Sp }
func (e ActionStep) Span() Span { return e.Sp }

func (e Literal) String() string {
	if e.Text == "" || strings.ContainsAny(e.Text, " \t\"=<>!()") {
		s := strings.ReplaceAll(e.Text, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		return `"` + s + `"`
	}
	return e.Text
}
func (e IntLit) String() string   { return strconv.Itoa(e.N) }
func (e ClassRef) String() string { return "_" + e.Name }

func (e Compare) String() string {
	return e.Left.String() + " " + e.Op.String() + " " + e.Right.String()
}

func (e Not) String() string {
	return "not " + e.X.String()
}

func (e And) String() string {
	return joinTerms(e.Terms, " and ")
}

func (e Or) String() string {
	return joinTerms(e.Terms, " or ")
}

func (e ActionStep) String() string {
	s := e.Name
	for _, op := range e.Operands {
		s += " " + op.String()
	}
	return s
}

func joinTerms(terms []Expr, sep string) string {
	strs := make([]string, len(terms))
	for i, t := range terms {
		strs[i] = t.String()
	}
	return "(" + strings.Join(strs, sep) + ")"
}

func (Literal) expr()    {}
func (IntLit) expr()     {}
func (ClassRef) expr()   {}
func (Compare) expr()    {}
func (Not) expr()        {}
func (And) expr()        {}
func (Or) expr()         {}
func (ActionStep) expr() {}
