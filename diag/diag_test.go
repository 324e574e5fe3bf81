package diag

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"

	"github.com/npillmayer/brltab/table"
)

func TestReport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.diag")
	defer teardown()
	//
	input := "space 20\nfrobnicate 1\n"
	_, err := table.New().ParseString(input)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	report := Report("test.ctb", err)
	t.Logf("report: %s", report)
	if !strings.HasPrefix(report, "test.ctb:2:1: ") {
		t.Errorf("report should lead with name:line:col, got %q", report)
	}
	if !strings.Contains(report, "frobnicate") {
		t.Errorf("report should name the offending opcode, got %q", report)
	}
	// without a file name the position stands alone
	if r := Report("", err); !strings.HasPrefix(r, "2:1: ") {
		t.Errorf("got %q", r)
	}
	// non-ParseError errors pass through with the name prepended
	plain := errors.New("boom")
	if r := Report("test.ctb", plain); r != "test.ctb: boom" {
		t.Errorf("got %q", r)
	}
}

func TestExcerpt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.diag")
	defer teardown()
	//
	input := "space 20\ndisplay xyz notadots\n"
	_, err := table.New().ParseString(input)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	excerpt := Excerpt(input, err)
	t.Logf("excerpt:\n%s", excerpt)
	lines := strings.Split(excerpt, "\n")
	if len(lines) != 2 || lines[0] != "display xyz notadots" {
		t.Fatalf("excerpt is %q", excerpt)
	}
	caret := strings.Index(lines[1], "^")
	if caret != strings.Index(lines[0], "notadots") {
		t.Errorf("caret at column %d, expected under %q", caret+1, "notadots")
	}
	// errors without position yield no excerpt
	if Excerpt(input, errors.New("boom")) != "" {
		t.Errorf("plain errors have no excerpt")
	}
}

func TestDirectiveTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.diag")
	defer teardown()
	//
	rs, err := table.New().ParseString("noback context test _c1 and not a actions pass2\n")
	if err != nil {
		t.Fatal(err)
	}
	node := DirectiveTree(rs.Directives[0])
	var labels []string
	collect(&labels, node)
	joined := strings.Join(labels, " ")
	for _, want := range []string{"noback context", "test", "and", "not", "_c1", "actions", "pass2"} {
		if !strings.Contains(joined, want) {
			t.Errorf("tree misses %q: %v", want, labels)
		}
	}
}

func collect(labels *[]string, node pterm.TreeNode) {
	*labels = append(*labels, node.Text)
	for _, child := range node.Children {
		collect(labels, child)
	}
}
