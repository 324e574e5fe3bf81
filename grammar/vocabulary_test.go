package grammar

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/brltab"
)

func TestVocabularyLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	v := NewVocabulary()
	spec, ok := v.Lookup("Display")
	if !ok || spec.Name != "display" {
		t.Fatalf("lookup should be case-insensitive, got %v, %v", spec, ok)
	}
	if len(spec.Args) != 2 || spec.Args[0].Kind != ArgChars || spec.Args[1].Kind != ArgDots {
		t.Errorf("display shape is %v", spec.Args)
	}
	if _, ok := v.Lookup("frobnicate"); ok {
		t.Errorf("unknown opcode should not resolve")
	}
	names := v.Names()
	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() must come out sorted: %v", names)
	}
}

func TestVocabularyLoadYAML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	doc := `
opcodes:
  - name: frobsign
    args: [dots, number]
    prefixes: true
  - name: frobrule
    multipart: true
`
	v := NewVocabulary()
	if err := v.LoadYAML([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	spec, ok := v.Lookup("frobsign")
	if !ok || len(spec.Args) != 2 || !spec.Prefixes {
		t.Fatalf("frobsign shape is %v, %v", spec, ok)
	}
	if spec.Args[0].Kind != ArgDots || spec.Args[1].Kind != ArgNumber {
		t.Errorf("frobsign args are %v", spec.Args)
	}
	// the extended vocabulary drives the parser like a built-in shape
	p := NewParser(WithVocabulary(v))
	d := mustParse(t, p, "noback frobsign 123 7")
	if d.Opcode != "frobsign" || len(d.Args) != 2 {
		t.Errorf("directive is %v", d)
	}
	if n := d.Args[1].(brltab.Number); n.N != 7 {
		t.Errorf("number argument is %v", d.Args[1])
	}
	d = mustParse(t, p, "frobrule test _c1 actions pass2")
	if d.Body == nil {
		t.Errorf("frobrule should parse a multipart body")
	}
}

func TestVocabularyLoadYAMLErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	v := NewVocabulary()
	if err := v.LoadYAML([]byte("opcodes:\n  - args: [dots]\n")); err == nil {
		t.Errorf("missing opcode name should be rejected")
	}
	if err := v.LoadYAML([]byte("opcodes:\n  - name: x\n    args: [gizmo]\n")); err == nil {
		t.Errorf("unknown argument kind should be rejected")
	}
	if err := v.LoadYAML([]byte("opcodes: {")); err == nil {
		t.Errorf("malformed YAML should be rejected")
	}
}

func TestVocabularyRedefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "brltab.grammar")
	defer teardown()
	//
	v := NewVocabulary()
	v.Define(OpSpec{Name: "UNDEFINED", Args: []ArgSpec{{Kind: ArgNumber}}})
	spec, _ := v.Lookup("undefined")
	if len(spec.Args) != 1 || spec.Args[0].Kind != ArgNumber {
		t.Errorf("redefinition did not take: %v", spec)
	}
}
