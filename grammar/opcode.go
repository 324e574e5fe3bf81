package grammar

import (
	"strings"

	"github.com/npillmayer/brltab"
)

// --- Directive lines -------------------------------------------------------

// ParseDirective parses the token sequence of one logical line into a
// directive. An empty token sequence (blank or comment-only line) yields
// (nil, nil). eol is the position just behind the last token, used for
// end-of-line diagnostics.
//
// Errors follow the taxonomy of the base package: an opcode missing from
// the vocabulary is always an unknown-opcode error (never a syntax error),
// a wrong argument is an argument error carrying opcode and position, and
// a malformed multipart body is a syntax error at the furthest point
// reached.
func (p *Parser) ParseDirective(toks []brltab.Token, eol brltab.Span) (*brltab.Directive, error) {
	c := newCursor(toks, eol)
	if c.exhausted() {
		return nil, nil
	}
	pr := newProgress()
	span := c.peek().Span()

	// optional rule prefixes
	var prefixes brltab.Prefix
	for {
		tok := c.peek()
		if tok.Kind() != brltab.Word {
			break
		}
		flag, is := brltab.PrefixNamed(strings.ToLower(tok.Lexeme()))
		if !is {
			break
		}
		if prefixes.Has(flag) {
			return nil, brltab.SyntaxErrorf(tok.Span(), "duplicate prefix %q", tok.Lexeme())
		}
		prefixes |= flag
		c = c.next()
	}

	// the opcode, case-insensitive against the vocabulary
	opTok := c.peek()
	if opTok.Kind() == brltab.EOL {
		return nil, brltab.SyntaxErrorf(opTok.Span(), "expecting opcode after prefixes, found end of line")
	}
	spec, known := p.vocab.Lookup(opTok.Lexeme())
	if !known {
		return nil, brltab.UnknownOpcodeError(opTok.Lexeme(), opTok.Span())
	}
	c = c.next()
	span = span.Extend(opTok.Span())
	if prefixes != 0 && !spec.Prefixes {
		return nil, brltab.ArgumentErrorf(spec.Name, 0, span, "opcode does not accept prefixes")
	}
	tracer().Debugf("directive %q, shape of %d argument(s)", spec.Name, len(spec.Args))

	// arguments, driven by the opcode's declared shape
	args := make([]brltab.Value, 0, len(spec.Args))
	for i, argSpec := range spec.Args {
		if argSpec.Optional && c.remaining() <= required(spec.Args[i+1:]) {
			if argSpec.Default != nil {
				args = append(args, defaultedValue(argSpec.Default, opTok.Span()))
			}
			continue
		}
		val, c2, verr := p.parseArg(argSpec, c, pr)
		if verr != nil {
			err := brltab.ArgumentErrorf(spec.Name, i+1, verr.span, "%s", verr.message())
			err.Found = verr.found
			if verr.msg == "" {
				err.Expected = []string{verr.expected}
			}
			return nil, err
		}
		args = append(args, val)
		span = span.Extend(val.Span())
		c = c2
	}

	// multipart body
	var body *brltab.Body
	if spec.Multipart {
		b, c2, err := p.parseBody(c, pr)
		if err != nil {
			return nil, err
		}
		body = b
		span = span.Extend(b.Sp)
		c = c2
	}

	if !c.exhausted() {
		tok := c.peek()
		return nil, brltab.ArgumentErrorf(spec.Name, len(spec.Args)+1, tok.Span(),
			"unexpected extra argument %q", tok.Lexeme())
	}
	return &brltab.Directive{
		Opcode:   spec.Name,
		Prefixes: prefixes,
		Args:     args,
		Body:     body,
		Sp:       span,
	}, nil
}

// defaultedValue positions a synthesized default value at a zero-length
// span just behind the opcode token. Every argument value carries a
// position into the input, the defaulted ones included.
func defaultedValue(v brltab.Value, opSpan brltab.Span) brltab.Value {
	sp := brltab.At(opSpan.Line, opSpan.Col+int(opSpan.Len()), opSpan.End, 0)
	switch x := v.(type) {
	case brltab.CharLit:
		x.Sp = sp
		return x
	case brltab.CharClass:
		x.Sp = sp
		return x
	case brltab.DotPattern:
		x.Sp = sp
		return x
	case brltab.Number:
		x.Sp = sp
		return x
	case brltab.Ident:
		x.Sp = sp
		return x
	case brltab.StringLit:
		x.Sp = sp
		return x
	}
	return v
}

// required counts the non-optional argument shapes in a slice.
func required(specs []ArgSpec) int {
	n := 0
	for _, s := range specs {
		if !s.Optional {
			n++
		}
	}
	return n
}

// parseArg dispatches one argument to its primitive grammar.
func (p *Parser) parseArg(spec ArgSpec, c cursor, pr *progress) (brltab.Value, cursor, *valueError) {
	switch spec.Kind {
	case ArgChars:
		return liftString(parseChars(c, pr))
	case ArgChar:
		v, c2, verr := parseChar(c, pr)
		return v, c2, verr
	case ArgDots:
		v, c2, verr := parseDots(c, pr)
		return v, c2, verr
	case ArgNumber:
		v, c2, verr := parseNumber(c, pr, spec.Min, spec.Max)
		return v, c2, verr
	case ArgName:
		v, c2, verr := parseName(c, pr)
		return v, c2, verr
	case ArgClass:
		v, c2, verr := parseClass(c, pr)
		return v, c2, verr
	case ArgFile:
		return liftString(parseFile(c, pr))
	}
	return nil, c, mismatch(c, pr, "argument")
}

func liftString(v brltab.StringLit, c cursor, verr *valueError) (brltab.Value, cursor, *valueError) {
	if verr != nil {
		return nil, c, verr
	}
	return v, c, nil
}
