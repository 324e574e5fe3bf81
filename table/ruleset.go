package table

import (
	"github.com/cnf/structhash"

	"github.com/npillmayer/brltab"
)

// Ruleset is the ordered, parsed representation of one table. Directive
// order always matches input line order; later rules may override earlier
// ones, but resolving that is the consuming translation engine's job; the
// parser only guarantees syntactic validity and positional fidelity.
// A Ruleset is immutable after assembly.
type Ruleset struct {
	Directives []*brltab.Directive
}

// Len returns the number of directives.
func (rs *Ruleset) Len() int {
	return len(rs.Directives)
}

// Hash returns a structural fingerprint of the ruleset. Two parses of the
// same input always hash identically; the fingerprint makes for a cheap
// cache key or change detector for table files.
func (rs *Ruleset) Hash() (string, error) {
	return structhash.Hash(rs, 1)
}
