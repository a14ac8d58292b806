/*
Package lexmach provides an adapter to drive the lexmachine scanner
generator from a token configuration.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

The adapter accepts the same ordered token configuration the native backend
consumes and translates every pattern into lexmachine's regex dialect. Both
backends resolve matches identically, longest match first and the earliest
category on ties, so lexmachine serves as a drop-in replacement where its
richer surface syntax or its performance profile is preferred. The reserved
atoms eps and void are the exception; they have no lexmachine counterpart
and make the adapter fail at construction time.

	cfg, err := lexer.LoadConfig("tokens.yaml")
	if err != nil {
		// do error handling
	}
	LM, err := lexmach.NewLMAdapter(cfg, "WS")
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.
The scanner implements the lexer.Tokenizer interface.

	scan, err := LM.Scanner("input string to tokenize")
	if err != nil {
		// do error handling
	}

On the consumer side tokens are read until EOF.

	for … { // feed token into a parser
		token := scan.NextToken()
		if token.TokType() != lexer.EOFType {
			…
		}
	}

________________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package lexmach
