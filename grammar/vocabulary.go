package grammar

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/brltab"
)

// --- Argument shapes -------------------------------------------------------

// ArgKind is the expected type of one opcode argument.
type ArgKind int8

const (
	ArgChars  ArgKind = iota + 1 // run of characters (word or quoted string)
	ArgChar                      // exactly one character
	ArgDots                      // braille dot pattern
	ArgNumber                    // non-negative integer
	ArgName                      // identifier (class/attribute name)
	ArgClass                     // bracketed character class, e.g. [a-z0]
	ArgFile                      // file name of an included table
)

func (k ArgKind) String() string {
	switch k {
	case ArgChars:
		return "characters"
	case ArgChar:
		return "character"
	case ArgDots:
		return "dot pattern"
	case ArgNumber:
		return "number"
	case ArgName:
		return "name"
	case ArgClass:
		return "character class"
	case ArgFile:
		return "file name"
	}
	return "argument"
}

// argKindNamed resolves the YAML spelling of an argument kind.
func argKindNamed(name string) (ArgKind, bool) {
	switch strings.ToLower(name) {
	case "chars":
		return ArgChars, true
	case "char":
		return ArgChar, true
	case "dots":
		return ArgDots, true
	case "number":
		return ArgNumber, true
	case "name":
		return ArgName, true
	case "class":
		return ArgClass, true
	case "file":
		return ArgFile, true
	}
	return 0, false
}

// ArgSpec declares one argument of an opcode.
type ArgSpec struct {
	Kind     ArgKind
	Optional bool         // may be omitted if Default fills in
	Default  brltab.Value // substituted for an omitted argument, spanned behind the opcode
	Min, Max int          // numeric range for ArgNumber; Max 0 means unbounded
}

// OpSpec declares the shape of one opcode: its argument list and whether it
// is a multipart (test/action) opcode. Shapes are configuration data: the
// grammar walks the shape, it never special-cases opcode names.
type OpSpec struct {
	Name      string
	Args      []ArgSpec
	Multipart bool // trailing tokens form a test/action body
	Prefixes  bool // noback/nofor/nocross allowed before the opcode
}

// --- Vocabulary ------------------------------------------------------------

// Vocabulary maps opcode names (case-insensitive) to their shapes.
type Vocabulary struct {
	ops map[string]OpSpec
}

// NewVocabulary creates a vocabulary holding the built-in opcode table.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{ops: make(map[string]OpSpec, len(builtinOps))}
	for _, spec := range builtinOps {
		v.Define(spec)
	}
	return v
}

// Define adds or replaces an opcode shape.
func (v *Vocabulary) Define(spec OpSpec) {
	spec.Name = strings.ToLower(spec.Name)
	v.ops[spec.Name] = spec
}

// Lookup finds an opcode shape by name, case-insensitively.
func (v *Vocabulary) Lookup(name string) (OpSpec, bool) {
	spec, ok := v.ops[strings.ToLower(name)]
	return spec, ok
}

// Names returns all opcode names in sorted order.
func (v *Vocabulary) Names() []string {
	names := make([]string, 0, len(v.ops))
	for name := range v.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// --- YAML extension --------------------------------------------------------

// Table dialects extend the vocabulary with data, not code. A vocabulary
// document looks like
//
//    opcodes:
//      - name: frobsign
//        args: [dots, number]
//        prefixes: true
//      - name: frobrule
//        multipart: true
//
// Arguments declared via YAML are required; optional arguments with default
// values can only be registered through Define.
type yamlVocabulary struct {
	Opcodes []struct {
		Name      string   `yaml:"name"`
		Args      []string `yaml:"args"`
		Multipart bool     `yaml:"multipart"`
		Prefixes  bool     `yaml:"prefixes"`
	} `yaml:"opcodes"`
}

// LoadYAML merges opcode shapes from a YAML document into the vocabulary.
func (v *Vocabulary) LoadYAML(data []byte) error {
	var doc yamlVocabulary
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse vocabulary document: %w", err)
	}
	for i, op := range doc.Opcodes {
		if op.Name == "" {
			return fmt.Errorf("vocabulary entry %d: missing opcode name", i+1)
		}
		spec := OpSpec{Name: op.Name, Multipart: op.Multipart, Prefixes: op.Prefixes}
		for _, arg := range op.Args {
			kind, ok := argKindNamed(arg)
			if !ok {
				return fmt.Errorf("opcode %q: unknown argument kind %q", op.Name, arg)
			}
			spec.Args = append(spec.Args, ArgSpec{Kind: kind})
		}
		v.Define(spec)
		tracer().Debugf("vocabulary: defined opcode %q", op.Name)
	}
	return nil
}

// --- Built-in opcode table -------------------------------------------------

// charDef is the common shape of character-definition opcodes.
func charDef(name string) OpSpec {
	return OpSpec{
		Name:     name,
		Args:     []ArgSpec{{Kind: ArgChar}, {Kind: ArgDots}},
		Prefixes: true,
	}
}

// wordRule is the common shape of word-level translation opcodes.
func wordRule(name string) OpSpec {
	return OpSpec{
		Name:     name,
		Args:     []ArgSpec{{Kind: ArgChars}, {Kind: ArgDots}},
		Prefixes: true,
	}
}

// indicator is the common shape of indicator opcodes (dots only).
func indicator(name string) OpSpec {
	return OpSpec{Name: name, Args: []ArgSpec{{Kind: ArgDots}}}
}

// multipart is the common shape of context-sensitive opcodes.
func multipart(name string) OpSpec {
	return OpSpec{Name: name, Multipart: true, Prefixes: true}
}

// builtinOps is the initial opcode vocabulary. It covers the table-file
// core: character definitions, display/input mappings, word rules, classes
// and attributes, indicators, and the multipart context opcodes. Dialect
// extensions are loaded via LoadYAML.
var builtinOps = []OpSpec{
	// file structure
	{Name: "include", Args: []ArgSpec{{Kind: ArgFile}}},
	{Name: "undefined", Args: []ArgSpec{{Kind: ArgDots}}},

	// character definitions
	{
		Name: "space",
		Args: []ArgSpec{
			// `space 20` defines the blank itself; the character argument
			// defaults to U+0020 when omitted.
			{Kind: ArgChar, Optional: true, Default: brltab.CharLit{R: ' '}},
			{Kind: ArgDots},
		},
		Prefixes: true,
	},
	charDef("punctuation"),
	charDef("digit"),
	charDef("letter"),
	charDef("lowercase"),
	charDef("uppercase"),
	charDef("sign"),
	charDef("math"),
	charDef("litdigit"),

	// display/input mappings
	wordRule("display"),
	wordRule("multind"),

	// word rules
	wordRule("word"),
	wordRule("always"),
	wordRule("begword"),
	wordRule("midword"),
	wordRule("endword"),
	wordRule("lowword"),
	wordRule("largesign"),
	wordRule("syllable"),
	wordRule("joinword"),
	{Name: "contraction", Args: []ArgSpec{{Kind: ArgChars}}},

	// classes and attributes
	{Name: "class", Args: []ArgSpec{{Kind: ArgName}, {Kind: ArgChars}}},
	{Name: "attribute", Args: []ArgSpec{{Kind: ArgName}, {Kind: ArgClass}}},
	{Name: "emphclass", Args: []ArgSpec{{Kind: ArgName}}},

	// indicators
	indicator("numsign"),
	indicator("letsign"),
	indicator("capsletter"),
	indicator("begcapsword"),
	indicator("endcapsword"),
	indicator("nocontractsign"),

	// multipart context rules
	multipart("context"),
	multipart("correct"),
	multipart("pass2"),
	multipart("pass3"),
	multipart("pass4"),
}
