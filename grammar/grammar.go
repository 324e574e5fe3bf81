/*
Package grammar parses token streams of braille-table lines into directives.

The package splits into three layers. Primitive grammars turn single tokens
into typed values (dot patterns, characters, numbers, names, character
classes). The opcode grammar identifies the directive's opcode against a
data-driven vocabulary and parses the remaining tokens according to the
opcode's declared argument shape. Adding an opcode is a data change, not a
grammar change. Multipart opcodes hand their trailing tokens to a
recursive-descent grammar for the nested test/action sub-language.

All grammar functions receive an input cursor by value. A failing production
cannot disturb its caller's read position, and the furthest failure point is
recorded explicitly for diagnostics. Alternatives are tried in declaration
order and the first full match commits; there is no global backtracking, so
parse time stays linear in input length even on adversarial input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'brltab.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("brltab.grammar")
}

// DefaultMaxDepth bounds the nesting of parenthesized test expressions.
// Input-driven recursion is guarded, never unbounded.
const DefaultMaxDepth = 64

// Parser parses single directive lines. A Parser is immutable after
// creation and safe for concurrent use; each ParseDirective call owns its
// cursor and failure record.
type Parser struct {
	vocab    *Vocabulary
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithVocabulary sets the opcode vocabulary. Defaults to the built-in table.
func WithVocabulary(v *Vocabulary) Option {
	return func(p *Parser) {
		if v != nil {
			p.vocab = v
		}
	}
}

// MaxDepth overrides the parenthesis nesting limit for test expressions.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// NewParser creates a directive parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		vocab:    NewVocabulary(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Vocabulary returns the parser's opcode vocabulary.
func (p *Parser) Vocabulary() *Vocabulary {
	return p.vocab
}
