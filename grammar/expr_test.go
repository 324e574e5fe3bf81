package grammar

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/brltab"
)

func TestMultipartBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	d := mustParse(t, NewParser(), "context test _c1 a actions pass2")
	if d.Body == nil {
		t.Fatalf("expected a multipart body")
	}
	and, is := d.Body.Test.(brltab.And)
	if !is || len(and.Terms) != 2 {
		t.Fatalf("expected an implicit conjunction of 2 terms, got %v", d.Body.Test)
	}
	ref, is := and.Terms[0].(brltab.ClassRef)
	if !is || ref.Name != "c1" {
		t.Errorf("expected class reference \"c1\", got %v", and.Terms[0])
	}
	lit, is := and.Terms[1].(brltab.Literal)
	if !is || lit.Text != "a" {
		t.Errorf("expected literal \"a\", got %v", and.Terms[1])
	}
	if len(d.Body.Actions) != 1 || d.Body.Actions[0].Name != "pass2" {
		t.Errorf("expected a single action step \"pass2\", got %v", d.Body.Actions)
	}
}

func TestMultipartMissingAction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	input := "context test _c1 a actions"
	perr := mustFail(t, NewParser(), input, brltab.ErrSyntax)
	// the error points at end of line, where an action name was due
	if perr.Sp.Col != len(input)+1 {
		t.Errorf("expected failure at end of line (col %d), got %s", len(input)+1, perr.Sp)
	}
	if perr.Found != "end of line" {
		t.Errorf("found = %q", perr.Found)
	}
	if len(perr.Expected) == 0 || !contains(perr.Expected, "action name") {
		t.Errorf("expected set should name the action, got %v", perr.Expected)
	}
}

func TestMultipartMissingTestKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	perr := mustFail(t, NewParser(), "context _c1 actions pass2", brltab.ErrSyntax)
	if !contains(perr.Expected, `keyword "test"`) {
		t.Errorf("expected set is %v", perr.Expected)
	}
}

func TestOperatorStratification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	// "a or b and not c" parses as  or(a, and(b, not(c)))
	d := mustParse(t, NewParser(), "context test a or b and not c actions pass2")
	or, is := d.Body.Test.(brltab.Or)
	if !is || len(or.Terms) != 2 {
		t.Fatalf("expected top-level disjunction, got %v", d.Body.Test)
	}
	if _, is := or.Terms[0].(brltab.Literal); !is {
		t.Errorf("first disjunct should be a literal, is %T", or.Terms[0])
	}
	and, is := or.Terms[1].(brltab.And)
	if !is || len(and.Terms) != 2 {
		t.Fatalf("second disjunct should be a conjunction, is %v", or.Terms[1])
	}
	if _, is := and.Terms[1].(brltab.Not); !is {
		t.Errorf("negation lost, conjunction is %v", and.Terms)
	}
}

func TestParenthesesOverridePrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	d := mustParse(t, NewParser(), "context test (a or b) and c actions pass2")
	and, is := d.Body.Test.(brltab.And)
	if !is || len(and.Terms) != 2 {
		t.Fatalf("expected top-level conjunction, got %v", d.Body.Test)
	}
	if _, is := and.Terms[0].(brltab.Or); !is {
		t.Errorf("parenthesized disjunction lost, got %T", and.Terms[0])
	}
}

func TestComparators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	ops := map[string]brltab.CompareOp{
		"=": brltab.OpEq, "!=": brltab.OpNe, "<": brltab.OpLt,
		"<=": brltab.OpLe, ">": brltab.OpGt, ">=": brltab.OpGe,
	}
	for lit, op := range ops {
		d := mustParse(t, NewParser(), "context test _len "+lit+" 3 actions pass2")
		cmp, is := d.Body.Test.(brltab.Compare)
		if !is || cmp.Op != op {
			t.Errorf("%q: got %v", lit, d.Body.Test)
			continue
		}
		if _, is := cmp.Left.(brltab.ClassRef); !is {
			t.Errorf("%q: left operand is %T", lit, cmp.Left)
		}
		if right, is := cmp.Right.(brltab.IntLit); !is || right.N != 3 {
			t.Errorf("%q: right operand is %v", lit, cmp.Right)
		}
	}
	// a comparator without right operand fails at the furthest point
	mustFail(t, NewParser(), "context test _len = actions pass2", brltab.ErrSyntax)
}

func TestUnmatchedParenthesis(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	perr := mustFail(t, NewParser(), "context test (a or (b and c) actions pass2", brltab.ErrSyntax)
	// the innermost unmatched construct is the first "(": the error names
	// the missing ")" at the "actions" keyword, not a vague end-of-line
	if !contains(perr.Expected, `")"`) {
		t.Errorf("expected set is %v", perr.Expected)
	}
	if perr.Found != `"actions"` {
		t.Errorf("found = %q", perr.Found)
	}
}

func TestNestingDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	deep := strings.Repeat("(", 5) + "a" + strings.Repeat(")", 5)
	p := NewParser(MaxDepth(4))
	perr := mustFail(t, p, "context test "+deep+" actions pass2", brltab.ErrSyntax)
	if !strings.Contains(perr.Msg, "nested too deeply") {
		t.Errorf("message is %q", perr.Msg)
	}
	// one level below the limit passes
	ok := strings.Repeat("(", 4) + "a" + strings.Repeat(")", 4)
	mustParse(t, p, "context test "+ok+" actions pass2")
}

func TestActionSteps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	d := mustParse(t, NewParser(), `correct test _c1 actions insert 3 "xy" swap _c2 pass2`)
	steps := d.Body.Actions
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %v", steps)
	}
	if steps[0].Name != "insert" || len(steps[0].Operands) != 2 {
		t.Errorf("step 0 is %v", steps[0])
	}
	if steps[1].Name != "swap" || len(steps[1].Operands) != 1 {
		t.Errorf("step 1 is %v", steps[1])
	}
	if _, is := steps[1].Operands[0].(brltab.ClassRef); !is {
		t.Errorf("swap operand should be a class reference, is %T", steps[1].Operands[0])
	}
	if steps[2].Name != "pass2" || len(steps[2].Operands) != 0 {
		t.Errorf("step 2 is %v", steps[2])
	}
}

func TestBodySpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	input := "context test _c1 actions pass2"
	d := mustParse(t, NewParser(), input)
	if d.Sp.Start != 0 || d.Sp.End != uint64(len(input)) {
		t.Errorf("directive span is %s, expected to cover %q", d.Sp, input)
	}
	for _, step := range d.Body.Actions {
		if step.Sp.IsNull() {
			t.Errorf("action step without span: %v", step)
		}
	}
}

func contains(strs []string, want string) bool {
	for _, s := range strs {
		if s == want {
			return true
		}
	}
	return false
}
