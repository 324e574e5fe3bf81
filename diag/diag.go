/*
Package diag formats parse errors for table authors.

diag is a pure reporting layer over brltab.ParseError values and performs
no parsing logic. Reports carry the error kind, the 1-based line/column
position, the lexeme found at the failure point and the constructs that
would have been accepted there.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package diag

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/npillmayer/brltab"
)

// Report renders an error as a single line suitable for logs and compiler
// style output:
//
//    en-chess.ctb:12:8: argument error: opcode "display", argument 2: expecting dot pattern, found "xyz"
//
func Report(name string, err error) string {
	perr, is := err.(*brltab.ParseError)
	if !is {
		if name == "" {
			return err.Error()
		}
		return name + ": " + err.Error()
	}
	var b strings.Builder
	if name != "" {
		b.WriteString(name)
		b.WriteByte(':')
	}
	if !perr.Sp.IsNull() {
		fmt.Fprintf(&b, "%d:%d:", perr.Sp.Line, perr.Sp.Col)
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(perr.Kind.String())
	b.WriteString(": ")
	b.WriteString(perr.Msg)
	return b.String()
}

// Excerpt renders the offending source line with a caret under the failure
// position. Returns "" if the error carries no usable position or the line
// is out of range.
func Excerpt(input string, err error) string {
	perr, is := err.(*brltab.ParseError)
	if !is || perr.Sp.IsNull() {
		return ""
	}
	lines := strings.Split(input, "\n")
	if perr.Sp.Line < 1 || perr.Sp.Line > len(lines) {
		return ""
	}
	src := strings.TrimRight(lines[perr.Sp.Line-1], "\r")
	col := perr.Sp.Col
	if col < 1 {
		col = 1
	}
	if col > len(src)+1 {
		col = len(src) + 1
	}
	caret := strings.Repeat(" ", col-1) + "^"
	return src + "\n" + caret
}

// Print writes a colored report plus source excerpt via pterm.
func Print(name, input string, err error) {
	pterm.Error.Println(Report(name, err))
	if excerpt := Excerpt(input, err); excerpt != "" {
		pterm.Println(excerpt)
	}
}

// --- Directive trees -------------------------------------------------------

// DirectiveTree builds a pterm tree of a parsed directive, arguments and
// expression body included. Render it with
// pterm.DefaultTree.WithRoot(node).Render().
func DirectiveTree(d *brltab.Directive) pterm.TreeNode {
	ll := pterm.LeveledList{}
	label := d.Opcode
	if d.Prefixes != 0 {
		label = d.Prefixes.String() + " " + label
	}
	ll = append(ll, pterm.LeveledListItem{Level: 0, Text: label})
	for _, arg := range d.Args {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: arg.String()})
	}
	if d.Body != nil {
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "test"})
		ll = leveledExpr(d.Body.Test, ll, 2)
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: "actions"})
		for _, step := range d.Body.Actions {
			ll = append(ll, pterm.LeveledListItem{Level: 2, Text: step.String()})
		}
	}
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledExpr(e brltab.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch x := e.(type) {
	case brltab.And:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "and"})
		for _, t := range x.Terms {
			ll = leveledExpr(t, ll, level+1)
		}
	case brltab.Or:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "or"})
		for _, t := range x.Terms {
			ll = leveledExpr(t, ll, level+1)
		}
	case brltab.Not:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "not"})
		ll = leveledExpr(x.X, ll, level+1)
	case brltab.Compare:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: x.Op.String()})
		ll = leveledExpr(x.Left, ll, level+1)
		ll = leveledExpr(x.Right, ll, level+1)
	default:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: e.String()})
	}
	return ll
}
