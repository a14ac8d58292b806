/*
Package intset implements a small ordered integer set type.

Set is a special purpose set type, suitable mainly for implementing algorithms
around automata, scanners, parsers, etc. These kinds of algorithms are often more
straightforward to describe as set constructions and operations. Subset
construction, for example, identifies a deterministic state with the set of
nondeterministic states it represents, and needs a canonical, hashable form of
that set for deduplication. Set.Key provides exactly that.

All set operations are non-destructive: a Set is a value and may be used as-is
for map storage and comparison.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package intset
