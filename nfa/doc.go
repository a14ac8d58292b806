/*
Package nfa implements Thompson construction of nondeterministic finite
automata from regular expression trees.

Every sub-expression compiles to a fragment with exactly one start and one
accept state; fragments are composed with epsilon transitions only. State ids
are handed out by an allocator owned by a single construction run, so ids are
unique within a build and independent builds may run concurrently.

After construction, the epsilon closure of every state is precomputed. The
closures, together with the transition list, are all the subset construction
in package dfa needs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexer.fa'.
func tracer() tracing.Trace {
	return tracing.Select("lexer.fa")
}
