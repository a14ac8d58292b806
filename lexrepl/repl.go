package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	lexer "github.com/Iulian277-University/Lexer"
	"github.com/Iulian277-University/Lexer/ast"
	"github.com/Iulian277-University/Lexer/dfa"
	"github.com/Iulian277-University/Lexer/nfa"
	"github.com/Iulian277-University/Lexer/regex"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Iulian277 <iulian277@users.noreply.github.com>

*/

// main() starts an interactive CLI, where users may load token
// configurations, tokenize sample input, and walk single patterns through
// every stage of the compilation pipeline.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	configf := flag.String("config", "", "Token configuration to load at startup")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo)  // will set the correct level later
	pterm.Info.Println("Welcome to the lexer") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("lexer> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	if *configf != "" {
		if err := intp.loadConfig(*configf); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	cfg  lexer.Config
	lx   *lexer.Lexer
	repl *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute runs a single command line. The first word selects the command,
// the rest of the line is its argument.
func (intp *Intp) Execute(line string) (bool, error) {
	cmd := line
	arg := ""
	if sp := strings.IndexAny(line, " \t"); sp >= 0 {
		cmd, arg = line[:sp], strings.TrimSpace(line[sp:])
	}
	switch cmd {
	case "bye":
		return true, nil
	case "help":
		intp.help()
		return false, nil
	case "load":
		return false, intp.loadConfig(arg)
	case "lex":
		return false, intp.lex(arg)
	case "prenex":
		return false, intp.prenex(arg)
	case "ast":
		return false, intp.tree(arg)
	case "nfa":
		return false, intp.nfaStats(arg)
	case "dfa":
		return false, intp.dfaStats(arg)
	case "dot":
		return false, intp.dot(arg)
	}
	return false, fmt.Errorf("unknown command \"%s\", try help", cmd)
}

func (intp *Intp) help() {
	pterm.Println("load <file.yaml>     load a token configuration")
	pterm.Println("lex <input>          tokenize input with the loaded configuration")
	pterm.Println("prenex <regex>       compile a pattern to prenex form")
	pterm.Println("ast <regex>          display a pattern's expression tree")
	pterm.Println("nfa <regex>          Thompson construction for a pattern")
	pterm.Println("dfa <regex>          deterministic automaton for a pattern")
	pterm.Println("dot nfa|dfa <regex>  GraphViz output for a pattern's automaton")
	pterm.Println("bye                  quit")
}

// loadConfig reads a token configuration file and builds a lexer from it.
func (intp *Intp) loadConfig(path string) error {
	if path == "" {
		return fmt.Errorf("load expects a configuration file")
	}
	cfg, err := lexer.LoadConfig(path)
	if err != nil {
		return err
	}
	lx, err := lexer.New(cfg)
	if err != nil {
		return err
	}
	intp.cfg, intp.lx = cfg, lx
	pterm.Info.Println(fmt.Sprintf("%d token categories, config %s", len(cfg), cfg.Fingerprint()))
	ll := pterm.LeveledList{}
	for _, def := range cfg {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: def.Token})
		ll = append(ll, pterm.LeveledListItem{Level: 1, Text: def.Regex})
	}
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// lex tokenizes the argument with the currently loaded lexer and prints a
// token table.
func (intp *Intp) lex(input string) error {
	if intp.lx == nil {
		return fmt.Errorf("no configuration loaded, use load first")
	}
	toks, err := intp.lx.Tokenize(input)
	if err != nil {
		return err
	}
	pterm.Println(" type |           token | lexeme")
	pterm.Println("------+-----------------+--------")
	for _, tok := range toks {
		pterm.Println(fmt.Sprintf(" %4d | %15s | %q %s", tok.TokType(),
			intp.lx.TypeName(tok.TokType()), tok.Lexeme(), tok.Span()))
	}
	return nil
}

func (intp *Intp) prenex(pattern string) error {
	pre, err := regex.ToPrenex(pattern)
	if err != nil {
		return err
	}
	pterm.Info.Println(pre)
	return nil
}

// tree renders a pattern's expression tree on the terminal.
func (intp *Intp) tree(pattern string) error {
	pre, err := regex.ToPrenex(pattern)
	if err != nil {
		return err
	}
	expr, err := ast.Parse(pre)
	if err != nil {
		return err
	}
	ll := leveledExpr(expr, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func (intp *Intp) nfaStats(pattern string) error {
	pre, err := regex.ToPrenex(pattern)
	if err != nil {
		return err
	}
	n, err := nfa.FromPrenex(pre)
	if err != nil {
		return err
	}
	pterm.Info.Println(fmt.Sprintf("NFA with %d states and %d transitions, start %d, accept %d",
		n.NumStates(), n.NumTransitions(), n.Start(), n.Accept()))
	pterm.Println(n.String())
	return nil
}

func (intp *Intp) dfaStats(pattern string) error {
	pre, err := regex.ToPrenex(pattern)
	if err != nil {
		return err
	}
	d, err := dfa.FromPrenex(pre)
	if err != nil {
		return err
	}
	min := d.Minimize()
	pterm.Info.Println(fmt.Sprintf("DFA with %d states over %d symbols, %d after minimization",
		d.NumStates(), len(d.Alphabet()), min.NumStates()))
	pterm.Println(d.String())
	return nil
}

// dot writes an automaton in GraphViz format to stdout. The first argument
// word selects the stage, nfa or dfa.
func (intp *Intp) dot(arg string) error {
	stage := arg
	pattern := ""
	if sp := strings.IndexAny(arg, " \t"); sp >= 0 {
		stage, pattern = arg[:sp], strings.TrimSpace(arg[sp:])
	}
	if pattern == "" {
		return fmt.Errorf("dot expects a stage (nfa or dfa) and a pattern")
	}
	pre, err := regex.ToPrenex(pattern)
	if err != nil {
		return err
	}
	switch stage {
	case "nfa":
		n, err := nfa.FromPrenex(pre)
		if err != nil {
			return err
		}
		return n.Dot(os.Stdout)
	case "dfa":
		d, err := dfa.FromPrenex(pre)
		if err != nil {
			return err
		}
		return d.Dot(os.Stdout)
	}
	return fmt.Errorf("unknown automaton stage \"%s\"", stage)
}

// leveledExpr flattens an expression tree into a leveled list for pterm's
// tree renderer.
func leveledExpr(e ast.Expr, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch n := e.(type) {
	case *ast.Atom:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.String()})
	case *ast.Star:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "STAR"})
		ll = leveledExpr(n.Child, ll, level+1)
	case *ast.Plus:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "PLUS"})
		ll = leveledExpr(n.Child, ll, level+1)
	case *ast.Maybe:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "MAYBE"})
		ll = leveledExpr(n.Child, ll, level+1)
	case *ast.Concat:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "CONCAT"})
		ll = leveledExpr(n.Left, ll, level+1)
		ll = leveledExpr(n.Right, ll, level+1)
	case *ast.Union:
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: "UNION"})
		ll = leveledExpr(n.Left, ll, level+1)
		ll = leveledExpr(n.Right, ll, level+1)
	}
	return ll
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
