package lexer

// Tokenizer is the streaming interface to a lexer, the surface a parser
// driver would consume.
type Tokenizer interface {
	NextToken() Token
	SetErrorHandler(func(error))
}

// --- Default token type ----------------------------------------------------

// DefaultToken is the token type the scanners of this package produce.
type DefaultToken struct {
	kind   TokType
	name   string
	lexeme string
	Val    interface{}
	span   Span
}

var _ Token = DefaultToken{}

// MakeDefaultToken creates a token of a given category.
func MakeDefaultToken(typ TokType, name string, lexeme string, span Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		name:   name,
		lexeme: lexeme,
		span:   span,
	}
}

// TokType returns the token's category type.
func (t DefaultToken) TokType() TokType {
	return t.kind
}

// Name returns the name of the token's category, "EOF" for end of input.
func (t DefaultToken) Name() string {
	return t.name
}

// Value returns the token's value, if any. Lexing leaves it empty; a
// downstream consumer may fill it in.
func (t DefaultToken) Value() interface{} {
	return t.Val
}

// Lexeme returns the token's lexeme as it appeared in the input.
func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

// Span returns the input region the token covers.
func (t DefaultToken) Span() Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOFType {
		return "EOF"
	}
	return "(" + t.name + " " + t.lexeme + ")"
}

// --- Streaming scanner -----------------------------------------------------

// Scanner streams the tokens of an input on demand. It implements Tokenizer.
// Once input is exhausted, and after a lexical error has been reported,
// every call to NextToken yields an EOFType token.
type Scanner struct {
	lexer  *Lexer
	input  string
	pos    int
	skip   map[TokType]bool
	onErr  func(error)
	failed bool
}

var _ Tokenizer = (*Scanner)(nil)

// default error reporting; scanner clients may override this using
// SetErrorHandler
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Scanner creates a streaming scanner over input.
func (l *Lexer) Scanner(input string, opts ...Option) *Scanner {
	s := &Scanner{
		lexer: l,
		input: input,
		onErr: logError,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetErrorHandler sets an error handler lexical errors are passed to.
// Handing in nil restores the default handler, which logs to the package
// tracer.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.onErr = logError
		return
	}
	s.onErr = h
}

// NextToken returns the next token of the input. Skipped categories are
// consumed silently. A position where no category matches is reported to
// the error handler once, then the scanner goes dead and yields EOF.
func (s *Scanner) NextToken() Token {
	for !s.failed && s.pos < len(s.input) {
		tt, end, ok, furthest := s.lexer.match(s.input, s.pos)
		if !ok {
			s.failed = true
			s.onErr(newNoViableAlt(s.input, furthest))
			break
		}
		start := s.pos
		s.pos = end + 1
		if s.skip[tt] {
			continue
		}
		return MakeDefaultToken(tt, s.lexer.cfg[tt].Token, s.input[start:end+1],
			Span{uint64(start), uint64(end + 1)})
	}
	return MakeDefaultToken(EOFType, "EOF", "", Span{uint64(s.pos), uint64(s.pos)})
}

// --- Scanner options -------------------------------------------------------

// Option configures a Scanner created by Lexer.Scanner.
type Option func(s *Scanner)

// SkipTypes suppresses the given token categories from the stream, typically
// whitespace or comment categories.
func SkipTypes(types ...TokType) Option {
	return func(s *Scanner) {
		if s.skip == nil {
			s.skip = make(map[TokType]bool, len(types))
		}
		for _, tt := range types {
			s.skip[tt] = true
		}
	}
}
