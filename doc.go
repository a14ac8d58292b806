/*
Package lexer generates lexical analyzers from declarative token
configurations.

Clients hand in an ordered list of (token name, regular expression) pairs
and receive a lexer which splits input text into tokens under the usual
maximal-munch rule: the longest match wins, and between categories matching
equally long stretches the one declared first wins. Every pattern passes
through the classic pipeline of regular-language constructions, each stage
living in a package of its own:

■ regex: Package regex tokenizes regular expressions written in infix
syntax and compiles them to prenex (prefix) form.

■ ast: Package ast parses prenex expressions into abstract syntax trees.

■ nfa: Package nfa builds nondeterministic finite automata from expression
trees, using Thompson's construction.

■ dfa: Package dfa converts NFAs to deterministic automata by subset
construction, minimizes them, and exports them to GraphViz DOT.

■ intset: Package intset provides the sorted integer sets which the subset
construction identifies DFA states by.

■ lexmach: Package lexmach adapts token configurations to the lexmachine
scanner library, as an alternative backend.

The base package contains the token data types used throughout all the
other packages, the token configuration format, and the two scanning
surfaces: batch Tokenize and the streaming Scanner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexer")
}
