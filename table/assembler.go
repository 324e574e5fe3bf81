/*
Package table assembles braille-table input into an ordered rule set.

The assembler consumes input lines, joins continuation lines into logical
lines, skips blanks and comments, parses every remaining line through the
opcode grammar, and collects the directives, in file order, into a
Ruleset. Assembly is fail-fast: the first unrecoverable error stops the run
and is returned with full position context, and no partial ruleset escapes.
Callers wanting collect-all-errors behavior re-invoke the grammar per line
themselves.

Parsing a table is a pure function of its text. Assemblers hold no mutable
state between runs, so independent tables may be parsed concurrently with
one assembler each (or one shared parser, which is immutable).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/brltab"
	"github.com/npillmayer/brltab/grammar"
	"github.com/npillmayer/brltab/scanner"
)

// tracer traces with key 'brltab.table'.
func tracer() tracing.Trace {
	return tracing.Select("brltab.table")
}

// continuationMarker joins a physical line with its successor.
const continuationMarker = '\\'

// --- Assembler -------------------------------------------------------------

// Assembler turns raw table text into a Ruleset.
type Assembler struct {
	parser *grammar.Parser
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithParser sets the directive parser (and thereby vocabulary and depth
// limit). Defaults to grammar.NewParser().
func WithParser(p *grammar.Parser) Option {
	return func(a *Assembler) {
		if p != nil {
			a.parser = p
		}
	}
}

// New creates an Assembler.
func New(opts ...Option) *Assembler {
	a := &Assembler{parser: grammar.NewParser()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ParseString assembles a complete table from a string.
func (a *Assembler) ParseString(input string) (*Ruleset, error) {
	return a.Parse(strings.NewReader(input))
}

// Parse assembles a complete table from a reader. The reader carries one
// already-resolved logical table stream; file inclusion happens outside.
func (a *Assembler) Parse(r io.Reader) (*Ruleset, error) {
	rs := &Ruleset{}
	in := bufio.NewScanner(r)
	in.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	// Count the raw bytes behind each line ourselves: ScanLines eats the
	// line terminator (\n or \r\n), so len(Text()) alone would drift the
	// byte offsets on CRLF input.
	advanced := 0
	in.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		adv, token, err := bufio.ScanLines(data, atEOF)
		advanced += adv
		return adv, token, err
	})

	var logical *logicalLine
	var markerSpan brltab.Span // position of the pending continuation marker
	lineno := 0
	var offset uint64
	for in.Scan() {
		lineno++
		raw := in.Text()
		consumed := advanced
		advanced = 0
		content, cont := splitContinuation(raw)
		if logical == nil {
			logical = &logicalLine{}
		}
		logical.append(content, lineno, offset)
		if cont {
			col := len(content) + 1
			markerSpan = brltab.At(lineno, col, offset+uint64(col)-1, 1)
			offset += uint64(consumed)
			continue
		}
		if err := a.assembleLine(logical, rs); err != nil {
			return nil, err
		}
		logical = nil
		offset += uint64(consumed)
	}
	if err := in.Err(); err != nil {
		return nil, err
	}
	if logical != nil {
		return nil, brltab.ContinuationErrorf(markerSpan,
			"dangling continuation marker at end of file")
	}
	tracer().Infof("assembled ruleset of %d directive(s) from %d line(s)", len(rs.Directives), lineno)
	return rs, nil
}

// splitContinuation strips a trailing continuation marker. The marker is a
// backslash as the last non-blank character of the physical line.
func splitContinuation(raw string) (string, bool) {
	trimmed := strings.TrimRight(raw, " \t")
	if strings.HasSuffix(trimmed, string(continuationMarker)) {
		return trimmed[:len(trimmed)-1], true
	}
	return raw, false
}

// assembleLine lexes and parses one logical line and appends the resulting
// directive, if any, to the ruleset.
func (a *Assembler) assembleLine(l *logicalLine, rs *Ruleset) error {
	toks, err := scanner.Tokens(l.text)
	if err != nil {
		if perr, is := err.(*brltab.ParseError); is {
			perr.Sp = l.translate(perr.Sp)
		}
		return err
	}
	for i, tok := range toks {
		toks[i] = tok.Translated(l.translate(tok.Span()))
	}
	eol := l.translate(brltab.At(1, len(l.text)+1, uint64(len(l.text)), 0))
	d, err := a.parser.ParseDirective(toks, eol)
	if err != nil {
		return err
	}
	if d == nil { // blank or comment-only line
		return nil
	}
	rs.Directives = append(rs.Directives, d)
	return nil
}

// --- Logical lines ---------------------------------------------------------

// logicalLine is one or more physical lines joined by continuation markers.
// It keeps a segment per physical line so line-local token spans translate
// back to file coordinates.
type logicalLine struct {
	text string
	segs []segment
}

type segment struct {
	logStart int    // offset of the segment within the logical text
	length   int
	line     int    // 1-based physical line
	fileOff  uint64 // byte offset of the segment start within the input
}

func (l *logicalLine) append(content string, line int, fileOff uint64) {
	l.segs = append(l.segs, segment{
		logStart: len(l.text),
		length:   len(content),
		line:     line,
		fileOff:  fileOff,
	})
	l.text += content
}

// translate rewrites a span with logical-line-local offsets into file
// coordinates. A directive continued over several physical lines gets a
// span covering all of them.
func (l *logicalLine) translate(sp brltab.Span) brltab.Span {
	start := l.locate(int(sp.Start))
	end := l.locate(int(sp.End))
	delta := int(sp.Start) - start.logStart
	return brltab.Span{
		Line:  start.line,
		Col:   delta + 1,
		Start: start.fileOff + uint64(delta),
		End:   end.fileOff + (sp.End - uint64(end.logStart)),
	}
}

// locate finds the segment containing a logical offset. Offsets at or past
// the end map to the last segment.
func (l *logicalLine) locate(off int) segment {
	if len(l.segs) == 0 {
		return segment{}
	}
	for _, seg := range l.segs {
		if off < seg.logStart+seg.length {
			return seg
		}
	}
	return l.segs[len(l.segs)-1]
}
