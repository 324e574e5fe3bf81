package grammar

import (
	"strconv"
	"strings"

	"github.com/npillmayer/brltab"
)

// --- Multipart test/action bodies ------------------------------------------
//
// Multipart opcodes carry a nested sub-language:
//
//    Body        ::= "test" Disjunction "actions" ActionStep+
//    Disjunction ::= Conjunction ("or" Conjunction)*
//    Conjunction ::= Negation (["and"] Negation)*
//    Negation    ::= ["not"] Atom
//    Atom        ::= Comparator | ClassReference | Literal | "(" Disjunction ")"
//    Comparator  ::= Operand ("=" | "!=" | "<" | "<=" | ">" | ">=") Operand
//    ActionStep  ::= Identifier Operand*
//
// The grammar is already stratified, so precedence falls out of the
// productions; parsing is a single left-to-right pass. At every choice
// point alternatives commit in declaration order; a committed choice is
// never retried, which keeps parse time linear. Operands are numbers,
// quoted strings and class references; a bare word in operand position of
// an action step starts the next step.

// reserved words of the multipart sub-language; they never act as literals
// or action names.
func reserved(word string) bool {
	switch strings.ToLower(word) {
	case "test", "actions", "and", "or", "not":
		return true
	}
	return false
}

// parseBody parses "test <expr> actions <step>+".
func (p *Parser) parseBody(c cursor, pr *progress) (*brltab.Body, cursor, *brltab.ParseError) {
	if !c.isWord("test") {
		pr.expect(c, `keyword "test"`)
		return nil, c, pr.syntaxError()
	}
	span := c.peek().Span()
	c = c.next()
	test, c, err := p.parseDisjunction(c, pr, 0)
	if err != nil {
		return nil, c, err
	}
	if !c.isWord("actions") {
		pr.expect(c, `keyword "actions"`)
		return nil, c, pr.syntaxError()
	}
	c = c.next()
	steps, c, err := p.parseActions(c, pr)
	if err != nil {
		return nil, c, err
	}
	span = span.Extend(test.Span())
	for _, s := range steps {
		span = span.Extend(s.Sp)
	}
	return &brltab.Body{Test: test, Actions: steps, Sp: span}, c, nil
}

func (p *Parser) parseDisjunction(c cursor, pr *progress, depth int) (brltab.Expr, cursor, *brltab.ParseError) {
	first, c, err := p.parseConjunction(c, pr, depth)
	if err != nil {
		return nil, c, err
	}
	terms := []brltab.Expr{first}
	span := first.Span()
	for c.isWord("or") {
		c = c.next()
		term, c2, err := p.parseConjunction(c, pr, depth)
		if err != nil {
			return nil, c2, err
		}
		terms = append(terms, term)
		span = span.Extend(term.Span())
		c = c2
	}
	if len(terms) == 1 {
		return first, c, nil
	}
	return brltab.Or{Terms: terms, Sp: span}, c, nil
}

// parseConjunction accepts both explicit "and" and plain juxtaposition of
// atoms ("_c1 a" tests both in sequence).
func (p *Parser) parseConjunction(c cursor, pr *progress, depth int) (brltab.Expr, cursor, *brltab.ParseError) {
	first, c, err := p.parseNegation(c, pr, depth)
	if err != nil {
		return nil, c, err
	}
	terms := []brltab.Expr{first}
	span := first.Span()
	for {
		if c.isWord("and") {
			c = c.next()
		} else if !p.startsAtom(c) {
			break
		}
		term, c2, err := p.parseNegation(c, pr, depth)
		if err != nil {
			return nil, c2, err
		}
		terms = append(terms, term)
		span = span.Extend(term.Span())
		c = c2
	}
	if len(terms) == 1 {
		return first, c, nil
	}
	return brltab.And{Terms: terms, Sp: span}, c, nil
}

func (p *Parser) parseNegation(c cursor, pr *progress, depth int) (brltab.Expr, cursor, *brltab.ParseError) {
	if c.isWord("not") {
		span := c.peek().Span()
		x, c2, err := p.parseAtom(c.next(), pr, depth)
		if err != nil {
			return nil, c2, err
		}
		return brltab.Not{X: x, Sp: span.Extend(x.Span())}, c2, nil
	}
	return p.parseAtom(c, pr, depth)
}

// startsAtom tells whether the cursor could begin another atom. Used for
// implicit conjunction; deliberately conservative.
func (p *Parser) startsAtom(c cursor) bool {
	tok := c.peek()
	switch tok.Kind() {
	case brltab.NumberWord, brltab.DotsWord, brltab.QuotedString:
		return true
	case brltab.Word:
		word := strings.ToLower(tok.Lexeme())
		return word == "not" || !reserved(word)
	case brltab.Punct:
		return tok.Lexeme() == "("
	}
	return false
}

func (p *Parser) parseAtom(c cursor, pr *progress, depth int) (brltab.Expr, cursor, *brltab.ParseError) {
	tok := c.peek()
	if tok.Kind() == brltab.Punct && tok.Lexeme() == "(" {
		if depth+1 > p.maxDepth {
			return nil, c, brltab.SyntaxErrorf(tok.Span(),
				"expression nested too deeply (limit is %d)", p.maxDepth)
		}
		inner, c2, err := p.parseDisjunction(c.next(), pr, depth+1)
		if err != nil {
			return nil, c2, err
		}
		closing := c2.peek()
		if closing.Kind() != brltab.Punct || closing.Lexeme() != ")" {
			pr.expect(c2, `")"`)
			return nil, c2, pr.syntaxError()
		}
		return inner, c2.next(), nil
	}
	operand, c2, ok := p.parseOperand(c, pr)
	if !ok {
		pr.expect(c, `"("`)
		return nil, c, pr.syntaxError()
	}
	if op, isCmp := comparator(c2.peek()); isCmp {
		right, c3, ok := p.parseOperand(c2.next(), pr)
		if !ok {
			return nil, c2, pr.syntaxError()
		}
		return brltab.Compare{
			Op:    op,
			Left:  operand,
			Right: right,
			Sp:    operand.Span().Extend(right.Span()),
		}, c3, nil
	}
	return operand, c2, nil
}

// parseOperand parses an expression leaf: a number, a quoted string, a
// class reference, or a bare-word literal. Reserved words are rejected.
func (p *Parser) parseOperand(c cursor, pr *progress) (brltab.Expr, cursor, bool) {
	tok := c.peek()
	switch tok.Kind() {
	case brltab.NumberWord:
		n, err := strconv.Atoi(tok.Lexeme())
		if err != nil {
			break
		}
		return brltab.IntLit{N: n, Sp: tok.Span()}, c.next(), true
	case brltab.QuotedString:
		text, verr := unquote(tok)
		if verr != nil {
			break
		}
		return brltab.Literal{Text: text, Sp: tok.Span()}, c.next(), true
	case brltab.DotsWord:
		return brltab.Literal{Text: tok.Lexeme(), Sp: tok.Span()}, c.next(), true
	case brltab.Word:
		lex := tok.Lexeme()
		if reserved(lex) {
			break
		}
		if strings.HasPrefix(lex, "_") && len(lex) > 1 {
			return brltab.ClassRef{Name: lex[1:], Sp: tok.Span()}, c.next(), true
		}
		text, verr := unescapeWord(tok)
		if verr != nil {
			break
		}
		return brltab.Literal{Text: text, Sp: tok.Span()}, c.next(), true
	}
	pr.expect(c, "class reference")
	pr.expect(c, "literal")
	pr.expect(c, "number")
	return nil, c, false
}

func comparator(tok brltab.Token) (brltab.CompareOp, bool) {
	if tok.Kind() != brltab.Punct {
		return 0, false
	}
	switch tok.Lexeme() {
	case "=":
		return brltab.OpEq, true
	case "!=":
		return brltab.OpNe, true
	case "<":
		return brltab.OpLt, true
	case "<=":
		return brltab.OpLe, true
	case ">":
		return brltab.OpGt, true
	case ">=":
		return brltab.OpGe, true
	}
	return 0, false
}

// parseActions parses one or more action steps. A bare word opens a step;
// numbers, strings and class references attach to the open step as
// operands.
func (p *Parser) parseActions(c cursor, pr *progress) ([]brltab.ActionStep, cursor, *brltab.ParseError) {
	var steps []brltab.ActionStep
	for {
		tok := c.peek()
		if !stepName(tok) {
			break
		}
		step := brltab.ActionStep{Name: strings.ToLower(tok.Lexeme()), Sp: tok.Span()}
		c = c.next()
		for {
			opTok := c.peek()
			if !stepOperand(opTok) {
				break
			}
			operand, c2, ok := p.parseOperand(c, pr)
			if !ok {
				return nil, c, pr.syntaxError()
			}
			step.Operands = append(step.Operands, operand)
			step.Sp = step.Sp.Extend(operand.Span())
			c = c2
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		pr.expect(c, "action name")
		return nil, c, pr.syntaxError()
	}
	return steps, c, nil
}

// stepName accepts bare words (and hex-shaped words like "ace") which are
// not reserved and not class references.
func stepName(tok brltab.Token) bool {
	switch tok.Kind() {
	case brltab.Word, brltab.DotsWord:
		lex := tok.Lexeme()
		return !reserved(lex) && !strings.HasPrefix(lex, "_")
	}
	return false
}

// stepOperand accepts the operand kinds which cannot open a new step.
func stepOperand(tok brltab.Token) bool {
	switch tok.Kind() {
	case brltab.NumberWord, brltab.QuotedString:
		return true
	case brltab.Word:
		return strings.HasPrefix(tok.Lexeme(), "_") && len(tok.Lexeme()) > 1
	}
	return false
}
