/*
Package dfa implements subset construction of complete deterministic finite
automata from Thompson NFAs.

A deterministic state is canonically the sorted set of nondeterministic
states it represents. Construction runs a breadth-first worklist from the
epsilon closure of the NFA start state, deduplicates target subsets by their
canonical key, and numbers states densely in first-discovery order, which
makes the result reproducible.

Every constructed automaton is complete: the transition function is total
and a sink state exists. A subset with no successors materializes as the
empty subset and becomes the natural sink; if no sink emerges, one is
synthesized. The lexer's simulation loop relies on this invariant, it treats
"reached the sink" as the only stopping condition besides end of input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package dfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexer.fa'.
func tracer() tracing.Trace {
	return tracing.Select("lexer.fa")
}
