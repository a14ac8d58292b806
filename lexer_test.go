package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeNumbersAndIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "NUM", Regex: "[0-9][0-9]*"},
		{Token: "ID", Regex: "[a-z][a-z]*"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	toks, err := l.Tokenize("123abc")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("Expected 2 tokens, have %d", len(toks))
	}
	if toks[0].Lexeme() != "123" || l.TypeName(toks[0].TokType()) != "NUM" {
		t.Errorf("Expected (NUM 123), is %v", toks[0])
	}
	if toks[1].Lexeme() != "abc" || l.TypeName(toks[1].TokType()) != "ID" {
		t.Errorf("Expected (ID abc), is %v", toks[1])
	}
}

func TestTokenizeLongestMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "KEY", Regex: "if|else"},
		{Token: "ID", Regex: "[a-z][a-z]*"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	toks, err := l.Tokenize("iffy")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 1 || l.TypeName(toks[0].TokType()) != "ID" {
		t.Errorf("Expected iffy to lex as a single ID, is %v", toks)
	}
}

func TestTokenizeFirstCategoryWinsTies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "KEY", Regex: "if|else"},
		{Token: "ID", Regex: "[a-z][a-z]*"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	for _, input := range []string{"if", "else"} {
		toks, err := l.Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", input, err)
		}
		if len(toks) != 1 || l.TypeName(toks[0].TokType()) != "KEY" {
			t.Errorf("Expected %q to lex as KEY, is %v", input, toks)
		}
	}
}

func TestTokenizeSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "GREEK", Regex: "α|β"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	toks, err := l.Tokenize("αβ")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("Expected 2 tokens, have %d", len(toks))
	}
	// spans are byte offsets, each Greek letter is 2 bytes of UTF-8
	if toks[0].Span() != (Span{0, 2}) {
		t.Errorf("Expected first span to be (0…2), is %s", toks[0].Span())
	}
	if toks[1].Span() != (Span{2, 4}) {
		t.Errorf("Expected second span to be (2…4), is %s", toks[1].Span())
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "ID", Regex: "[a-z][a-z]*"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	toks, err := l.Tokenize("")
	if err != nil {
		t.Errorf("Expected empty input to lex cleanly, error is %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("Expected no tokens for empty input, have %d", len(toks))
	}
}

func TestTokenizeErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "ID", Regex: "[a-z][a-z]*"},
		{Token: "NL", Regex: "'\n'"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	_, err = l.Tokenize("ab\ncd#e")
	if err == nil {
		t.Fatalf("Expected a lexical error, have none")
	}
	var lexErr *NoViableAltError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a NoViableAltError, is %v", err)
	}
	if lexErr.Line != 1 || lexErr.Col != 3 {
		t.Errorf("Expected error at line 1, column 3, is line %d, column %d",
			lexErr.Line, lexErr.Col)
	}
	if err.Error() != "No viable alternative at character 3, line 1" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
}

func TestTokenizeErrorAtEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	l, err := New(Config{
		{Token: "AB", Regex: "ab"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	_, err = l.Tokenize("a")
	if err == nil {
		t.Fatalf("Expected a lexical error, have none")
	}
	var lexErr *NoViableAltError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a NoViableAltError, is %v", err)
	}
	if !lexErr.AtEOF {
		t.Errorf("Expected the error position to be EOF, is %d", lexErr.Pos)
	}
	if err.Error() != "No viable alternative at character EOF, line 0" {
		t.Errorf("Unexpected error message: %q", err.Error())
	}
}

func TestTokenizeErrorUsesFurthestReach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	// the dying attempt that got furthest determines the reported position,
	// even when a shorter category died earlier
	l, err := New(Config{
		{Token: "X", Regex: "x"},
		{Token: "ABC", Regex: "abc"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	_, err = l.Tokenize("ab#")
	var lexErr *NoViableAltError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a NoViableAltError, is %v", err)
	}
	if lexErr.Pos != 2 {
		t.Errorf("Expected furthest reach to be 2, is %d", lexErr.Pos)
	}
	if lexErr.Col != 3 {
		t.Errorf("Expected column 3, is %d", lexErr.Col)
	}
}

func TestTokenizeNoZeroLengthMatches(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	// a? accepts the empty string, but an empty match is never emitted; the
	// scan either consumes a rune or fails
	l, err := New(Config{
		{Token: "OPT", Regex: "a?"},
	})
	if err != nil {
		t.Fatalf("lexer construction failed: %v", err)
	}
	toks, err := l.Tokenize("aa")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 2 {
		t.Errorf("Expected 2 tokens, have %d", len(toks))
	}
	_, err = l.Tokenize("b")
	var lexErr *NoViableAltError
	if !errors.As(err, &lexErr) {
		t.Fatalf("Expected a NoViableAltError instead of an empty-token loop, is %v", err)
	}
	if lexErr.Pos != 0 {
		t.Errorf("Expected the error at position 0, is %d", lexErr.Pos)
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	_, err := New(Config{
		{Token: "GOOD", Regex: "a"},
		{Token: "BAD", Regex: "a**"},
	})
	if err == nil {
		t.Fatalf("Expected construction to fail on a malformed pattern")
	}
	if !strings.Contains(err.Error(), "BAD") {
		t.Errorf("Expected the offending category to be named, is %q", err.Error())
	}
	// the grouped form is the legal way to stack repetition
	if _, err := New(Config{{Token: "OK", Regex: "(a*)*"}}); err != nil {
		t.Errorf("Expected (a*)* to construct, failed with %v", err)
	}
}
