package lexmach

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	lexer "github.com/Iulian277-University/Lexer"
)

var inputStrings = []string{
	"1",
	"1x 22",
	"if iffy",
	"a1b2",
}

var tokenCounts = []int{1, 3, 2, 4}

func testConfig() lexer.Config {
	return lexer.Config{
		{Token: "KEY", Regex: "if|else"},
		{Token: "ID", Regex: "[a-z][a-z]*"},
		{Token: "NUM", Regex: "[0-9][0-9]*"},
		{Token: "WS", Regex: "' '|'\t'|'\n'"},
	}
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	LM, err := NewLMAdapter(testConfig(), "WS")
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != lexer.EOFType {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLMMatchDiscipline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	LM, err := NewLMAdapter(testConfig(), "WS")
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("if iffy")
	if err != nil {
		t.Fatal(err)
	}
	first := sc.NextToken()
	if first.Lexeme() != "if" || first.TokType() != 0 {
		t.Errorf("Expected the tie on 'if' to go to KEY, is %v", first)
	}
	second := sc.NextToken()
	if second.Lexeme() != "iffy" || second.TokType() != 1 {
		t.Errorf("Expected the longer ID match to win, is %v", second)
	}
}

func TestTranslate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lexer")
	defer teardown()
	//
	patterns := []struct {
		dialect string
		lm      string
	}{
		{"a*b", "a*b"},
		{"(a|b)?c", "(a|b)?c"},
		{"[0-2]", "(0|1|2)"},
		{"a.b", "ab"},
		{"'*'a", `\*a`},
		{"'\t'", `\t`},
	}
	for _, p := range patterns {
		got, err := Translate(p.dialect)
		if err != nil {
			t.Errorf("Translate(%q) failed: %v", p.dialect, err)
			continue
		}
		if got != p.lm {
			t.Errorf("Expected %q to translate to %q, is %q", p.dialect, p.lm, got)
		}
	}
	for _, pattern := range []string{"eps", "void|a", "'x"} {
		if _, err := Translate(pattern); err == nil {
			t.Errorf("Expected Translate(%q) to fail", pattern)
		}
	}
}
