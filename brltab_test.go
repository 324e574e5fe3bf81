package brltab

import "testing"

func TestSpanExtend(t *testing.T) {
	a := At(1, 1, 0, 5)
	b := At(2, 3, 12, 4)
	ext := a.Extend(b)
	if ext.Start != 0 || ext.End != 16 {
		t.Errorf("expected extended span (0…16), got %s", ext)
	}
	if ext.Line != 1 || ext.Col != 1 {
		t.Errorf("extended span should keep position of earlier span, got %s", ext)
	}
	if !(Span{}).IsNull() {
		t.Errorf("zero span should be null")
	}
	if got := a.Extend(Span{}); got != a {
		t.Errorf("extending by the null span should be a no-op, got %s", got)
	}
}

func TestCellDots(t *testing.T) {
	var c Cell
	c = c.With(2).With(0)
	if !c.Has(0) || !c.Has(2) || c.Has(1) {
		t.Errorf("cell has wrong dots: %v", c.Dots())
	}
	if c.String() != "02" {
		t.Errorf("expected cell notation \"02\", got %q", c.String())
	}
	if s := CellsString([]Cell{c, Cell(0).With(1).With(15)}); s != "02-1f" {
		t.Errorf("expected \"02-1f\", got %q", s)
	}
}

func TestDotAlphabet(t *testing.T) {
	if d, ok := Dot('8'); !ok || d != 8 {
		t.Errorf("Dot('8') = %d, %v", d, ok)
	}
	if d, ok := Dot('f'); !ok || d != 15 {
		t.Errorf("Dot('f') = %d, %v", d, ok)
	}
	if _, ok := Dot('F'); ok {
		t.Errorf("upper-case 'F' must not be a dot name")
	}
	if _, ok := Dot('z'); ok {
		t.Errorf("'z' must not be a dot name")
	}
}

func TestPrefixes(t *testing.T) {
	p := Noback | Nocross
	if !p.Has(Noback) || !p.Has(Nocross) || p.Has(Nofor) {
		t.Errorf("prefix set broken: %s", p)
	}
	if p.String() != "noback nocross" {
		t.Errorf("expected \"noback nocross\", got %q", p)
	}
	if _, ok := PrefixNamed("display"); ok {
		t.Errorf("\"display\" is not a prefix")
	}
}

func TestCharLitNotation(t *testing.T) {
	cases := []struct {
		r    rune
		want string
	}{
		{' ', `\s`}, {'\t', `\t`}, {'a', "a"}, {'ü', "ü"},
	}
	for _, c := range cases {
		if got := (CharLit{R: c.r}).String(); got != c.want {
			t.Errorf("CharLit(%q).String() = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestCharClassContains(t *testing.T) {
	class := CharClass{Ranges: []CharRange{{Lo: 'a', Hi: 'z'}, {Lo: '0', Hi: '0'}}}
	for r, want := range map[rune]bool{'a': true, 'm': true, '0': true, 'A': false, '1': false} {
		if class.Contains(r) != want {
			t.Errorf("Contains(%q) = %v, want %v", r, !want, want)
		}
	}
}
