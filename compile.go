package lexer

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Iulian277-University/Lexer/dfa"
	"github.com/Iulian277-University/Lexer/regex"
)

// Compiled automata are immutable, so cache hits may be shared freely
// between lexers. 256 entries outgrow any realistic token configuration.
var cache, _ = lru.New[string, *dfa.DFA](256)

// Compile turns a single pattern into its deterministic automaton, running
// the full pipeline: prenex compilation, expression parsing, Thompson
// construction and subset construction. Results are memoized per pattern
// string.
func Compile(pattern string) (*dfa.DFA, error) {
	if d, ok := cache.Get(pattern); ok {
		return d, nil
	}
	prenex, err := regex.ToPrenex(pattern)
	if err != nil {
		return nil, err
	}
	d, err := dfa.FromPrenex(prenex)
	if err != nil {
		return nil, err
	}
	cache.Add(pattern, d)
	return d, nil
}
