/*
Package regex turns infix regular expressions into prenex form.

Prenex form is a fully prefix-notated rendering of a regular expression:
every operator token precedes its operands, which makes grouping tokens
unnecessary. Operators are spelled as uppercase keywords. The expression

    (a|b)*c

compiles to the space-separated token stream

    CONCAT STAR UNION a b c

The surface language supports union '|', implicit concatenation, the postfix
repetition operators '*', '+' and '?', grouping with parentheses, contiguous
character ranges like [0-9], quoted literals 'x' for operator glyphs and
whitespace, and the reserved atoms eps (the empty string) and void (the
empty language).

Conversion works on a reversed, bracket-swapped copy of the token stream:
a shunting-yard pass produces postfix for the reversed input, and reversing
that output yields the prefix form. Repetition operators pop stack entries of
equal or higher precedence; the binary operators pop only strictly higher
ones.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/
package regex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lexer.regex'.
func tracer() tracing.Trace {
	return tracing.Select("lexer.regex")
}
