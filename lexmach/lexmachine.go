package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	lexer "github.com/Iulian277-University/Lexer"
	"github.com/Iulian277-University/Lexer/regex"
)

// lexmachine adapter

// tracer traces with key 'lexer'.
func tracer() tracing.Trace {
	return tracing.Select("lexer")
}

// LMAdapter wraps a lexmachine lexer built from a token configuration.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
	cfg   lexer.Config
}

// NewLMAdapter creates a new lexmachine adapter from a token configuration.
// Patterns are translated from the configuration's regex dialect into
// lexmachine's dialect. Categories named in skip are matched but dropped
// from the token stream, the usual treatment of whitespace and comments.
//
// Token types of the resulting scanner coincide with the configuration
// indices, so tokens are interchangeable with those of the native backend.
// lexmachine resolves matches by the same discipline, longest match first
// and earliest pattern on ties.
//
// NewLMAdapter will return an error if a pattern cannot be translated or
// compiling the DFA failed.
func NewLMAdapter(cfg lexer.Config, skip ...string) (*LMAdapter, error) {
	adapter := &LMAdapter{cfg: cfg}
	adapter.Lexer = lexmachine.NewLexer()
	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}
	for i, def := range cfg {
		pattern, err := Translate(def.Regex)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", def.Token, err)
		}
		if skipped[def.Token] {
			adapter.Lexer.Add([]byte(pattern), Skip)
			continue
		}
		adapter.Lexer.Add([]byte(pattern), MakeToken(def.Token, i))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement
// the Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{lm.cfg, s, logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	cfg     lexer.Config
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ lexer.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Scanning errors are passed
// to the error handler and scanning resumes behind the unconsumed input.
func (lms *LMScanner) NextToken() lexer.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		pos := uint64(lms.scanner.TC)
		return lexer.MakeDefaultToken(lexer.EOFType, "EOF", "", lexer.Span{pos, pos})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("lexmachine token %d | %q", token.Type, string(token.Lexeme))
	return lexer.MakeDefaultToken(
		lexer.TokType(token.Type),
		lms.cfg[token.Type].Token,
		string(token.Lexeme),
		lexer.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// ---------------------------------------------------------------------------

// Translate rewrites a pattern from the token configuration dialect into
// lexmachine's regex dialect: quoting is resolved into backslash escapes
// and the explicit concatenation operator disappears, concatenation being
// juxtaposition there. Operator precedence is the same in both dialects, so
// the expression structure carries over unchanged.
//
// The reserved atoms eps and void have no lexmachine counterpart; patterns
// using them do not translate.
func Translate(pattern string) (string, error) {
	toks, err := regex.Tokenize(pattern)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, t := range toks {
		switch {
		case t.IsLiteral():
			switch t.Lit {
			case regex.Epsilon:
				return "", fmt.Errorf("eps is not expressible as a lexmachine pattern")
			case regex.Void:
				return "", fmt.Errorf("void is not expressible as a lexmachine pattern")
			}
			b.WriteString(lmEscape(t.Lit))
		case t.Op == regex.Concat:
			// implicit in the target dialect
		case t.Op == regex.Union:
			b.WriteByte('|')
		case t.Op == regex.Star:
			b.WriteByte('*')
		case t.Op == regex.Plus:
			b.WriteByte('+')
		case t.Op == regex.Maybe:
			b.WriteByte('?')
		case t.Op == regex.LParen:
			b.WriteByte('(')
		case t.Op == regex.RParen:
			b.WriteByte(')')
		}
	}
	return b.String(), nil
}

// lmEscape renders a literal rune for lexmachine. Metacharacters get a
// backslash; lexmachine treats a backslash before a non-special character
// as that character, so over-escaping is harmless.
func lmEscape(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case '|', '*', '+', '?', '(', ')', '[', ']', '.', '\\', '^', '$', '-', ',', '\'', '"':
		return `\` + string(r)
	}
	return string(r)
}
