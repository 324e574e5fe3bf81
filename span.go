package brltab

import "fmt"

// --- Source spans ----------------------------------------------------------

// Span locates a stretch of input text. It carries the 1-based line and
// column of its first character plus the byte-offset range within the input
// stream. Every parsed node (token, value, directive, expression node) holds
// a span pointing into the original input; spans serve diagnostics only and
// never drive control flow.
//
// The zero Span is the null span, used where no position is known.
type Span struct {
	Line  int    // 1-based physical line of the first byte
	Col   int    // 1-based column (byte-counted) within that line
	Start uint64 // byte offset of the first byte
	End   uint64 // byte offset just behind the last byte
}

// At creates a span of a given byte length.
func At(line, col int, start, length uint64) Span {
	return Span{Line: line, Col: col, Start: start, End: start + length}
}

// Len returns the length of (start…end).
func (s Span) Len() uint64 {
	return s.End - s.Start
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. Line/column
// stick with the span starting first.
func (s Span) Extend(other Span) Span {
	if other.IsNull() {
		return s
	}
	if s.IsNull() {
		return other
	}
	if other.Start < s.Start {
		s.Start = other.Start
		s.Line, s.Col = other.Line, other.Col
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d(%d…%d)", s.Line, s.Col, s.Start, s.End)
}
