/*
Package lexrepl/main provides an interactive command line tool for
experimenting with token configurations and the regex compilation
pipeline. Users load a configuration, tokenize sample input, and
inspect every intermediate stage of a pattern: its prenex form, its
expression tree, and the automata compiled from it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexer'
func tracer() tracing.Trace {
	return tracing.Select("lexer")
}
