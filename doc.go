/*
Package brltab is a parser for braille-translation table files.

Braille tables are line-oriented text files: each non-blank line declares one
rule: a character mapping, a word contraction, an indicator, or a
context-sensitive multipart rule with nested test/action sub-expressions.
Tables of this kind have traditionally been read by hand-rolled scanning
code, which has been a reliable source of out-of-bounds defects. brltab
replaces that with a grammar-driven parser: raw table text in, a structured
and validated rule set out, with precise line/column diagnostics on every
failure and no unsafe access on any input, however malformed.

Package structure is as follows:

■ scanner: Package scanner tokenizes one logical table line (words, quoted
strings, dot patterns, numbers, comparator punctuation).

■ grammar: Package grammar parses token streams into directives. It holds the
primitive value grammars, the data-driven opcode vocabulary, and the
recursive-descent grammar for multipart test/action expressions.

■ table: Package table assembles physical input lines (joining continuation
lines, skipping comments) into an ordered, immutable Ruleset.

■ diag: Package diag formats parse errors for table authors.

The base package contains data types which are used throughout all the other
packages: source spans, tokens, braille cells, rule values, the directive and
expression tree, and the parse-error taxonomy.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package brltab
