package brltab

import "strings"

// --- Braille cells ---------------------------------------------------------

// Cell is a single braille cell, encoded as a bit set of raised dots.
// Table files name dots with the hex alphabet '0'–'9', 'a'–'f': dots 1–8 are
// the physical dots, 0 and 9–15 are the virtual dots some table dialects
// use. Bit n set means dot n raised.
type Cell uint16

// NumDots is the size of the dot alphabet.
const NumDots = 16

// dotNames maps dot numbers to their table-file notation.
const dotNames = "0123456789abcdef"

// Dot translates a dot-name rune into its dot number.
// Returns false for runes outside the dot alphabet.
func Dot(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	}
	return 0, false
}

// Has tells whether dot n is raised.
func (c Cell) Has(n int) bool {
	return n >= 0 && n < NumDots && c&(1<<uint(n)) != 0
}

// With returns a copy of c with dot n raised.
func (c Cell) With(n int) Cell {
	if n < 0 || n >= NumDots {
		return c
	}
	return c | 1<<uint(n)
}

// Dots returns the raised dot numbers in ascending order.
func (c Cell) Dots() []int {
	var dots []int
	for n := 0; n < NumDots; n++ {
		if c.Has(n) {
			dots = append(dots, n)
		}
	}
	return dots
}

// String renders the cell in table-file notation, dots in ascending order.
func (c Cell) String() string {
	var b strings.Builder
	for n := 0; n < NumDots; n++ {
		if c.Has(n) {
			b.WriteByte(dotNames[n])
		}
	}
	return b.String()
}

// CellsString renders a sequence of cells with '-' separators, the notation
// used for multi-cell dot patterns.
func CellsString(cells []Cell) string {
	strs := make([]string, len(cells))
	for i, c := range cells {
		strs[i] = c.String()
	}
	return strings.Join(strs, "-")
}
