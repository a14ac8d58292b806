package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/Iulian277-University/Lexer/dfa"
)

// Lexer tokenizes input under a multi-pattern, longest-match-with-priority
// discipline. It holds one deterministic automaton per configured token
// category. Lexers are immutable after construction and safe for concurrent
// use.
type Lexer struct {
	cfg  Config
	dfas []*dfa.DFA
}

// New compiles every category of a token configuration. Any malformed
// pattern aborts construction, with the offending category named in the
// error. A lexer is never partially usable.
func New(cfg Config) (*Lexer, error) {
	if len(cfg) == 0 {
		return nil, fmt.Errorf("token configuration is empty")
	}
	l := &Lexer{cfg: cfg, dfas: make([]*dfa.DFA, len(cfg))}
	for i, def := range cfg {
		d, err := Compile(def.Regex)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", def.Token, err)
		}
		l.dfas[i] = d
	}
	tracer().Infof("lexer over %d token categories, config %s", len(cfg), cfg.Fingerprint())
	return l, nil
}

// Config returns the lexer's token configuration.
func (l *Lexer) Config() Config {
	return l.cfg
}

// TypeName returns the category name behind a token type.
func (l *Lexer) TypeName(tt TokType) string {
	if tt == EOFType {
		return "EOF"
	}
	if int(tt) < 0 || int(tt) >= len(l.cfg) {
		return fmt.Sprintf("TokType(%d)", int(tt))
	}
	return l.cfg[tt].Token
}

// TypeNamer returns a TokTypeStringer over this lexer's categories.
func (l *Lexer) TypeNamer() TokTypeStringer {
	return func(tt TokType) string { return l.TypeName(tt) }
}

// Tokenize scans the complete input, left to right, and returns its token
// sequence. The first position where no category can match stops the scan
// and is returned as a NoViableAltError; no partial token sequence is
// returned in that case.
func (l *Lexer) Tokenize(input string) ([]Token, error) {
	var toks []Token
	for start := 0; start < len(input); {
		tt, end, ok, furthest := l.match(input, start)
		if !ok {
			tracer().Debugf("no viable alternative, furthest reach is %d", furthest)
			return nil, newNoViableAlt(input, furthest)
		}
		toks = append(toks, MakeDefaultToken(tt, l.cfg[tt].Token, input[start:end+1],
			Span{uint64(start), uint64(end + 1)}))
		start = end + 1
	}
	return toks, nil
}

// match drives every category's automaton from start and selects the winning
// match: the greatest endpoint wins, and on equal endpoints the category
// declared first. The returned furthest index is the rightmost position any
// attempt reached, kept for error positioning.
func (l *Lexer) match(input string, start int) (tt TokType, end int, ok bool, furthest int) {
	end = -1
	furthest = start
	for i, d := range l.dfas {
		e, reach, matched := runDFA(d, input, start)
		if matched && e > end {
			tt, end, ok = TokType(i), e, true
		}
		if reach > furthest {
			furthest = reach
		}
	}
	return
}

// runDFA walks one automaton over input[start:] and reports the byte index
// of the last byte of the longest prefix it accepts, the index it stopped
// at, and whether any prefix matched at all. Endpoints are recorded only
// after consuming at least one rune, so a match never has length zero.
func runDFA(d *dfa.DFA, input string, start int) (end, reach int, matched bool) {
	state := d.Start()
	end = -1
	for i := start; i < len(input); {
		r, w := utf8.DecodeRuneInString(input[i:])
		state = d.Step(state, r)
		if state < 0 || state == d.Sink() {
			return end, i, end >= 0
		}
		i += w
		if d.IsFinal(state) {
			end = i - 1
		}
	}
	return end, len(input), end >= 0
}
