package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/llkit/ll"
	"github.com/npillmayer/llkit/ll/rules"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("LL.REPL"), where users may enter grammar
// rules and have them analysed for LL(1) conformance.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "File with initial grammar rules")
	adjacent := flag.Bool("adjacent-ends", false, "Nullable non-terminals inherit the ends of adjacent terminals")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LL.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := NewIntp(ll.WithTerminalAdjacentEnds(*adjacent))
	intp.repl = repl
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Eval(input); err != nil {
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving rules / commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
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
	lines   []string // rules entered so far
	opts    []ll.Option
	reports map[string]*ll.Report // fingerprint → report
	repl    *readline.Instance
}

// NewIntp creates an interpreter, given options for the analysis.
func NewIntp(opts ...ll.Option) *Intp {
	return &Intp{
		opts:    opts,
		reports: make(map[string]*ll.Report),
	}
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
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
		quit, err := intp.Eval(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

var errUnknownCommand = errors.New("unknown command")

// Eval evaluates a line of input: either a grammar rule or a command
// starting with ':'.
//
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.addRule(line)
	}
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":run":
		return false, intp.run()
	case ":check":
		return false, intp.check()
	case ":grammar":
		return false, intp.listRules()
	case ":reset":
		intp.lines = intp.lines[:0]
		pterm.Info.Println("grammar cleared")
	case ":help":
		pterm.Info.Println("commands: :run :check :grammar :reset :help :quit")
	case ":quit", ":q":
		return true, nil
	default:
		err := fmt.Errorf("%w: %s", errUnknownCommand, cmd)
		pterm.Error.Println(err.Error())
		return false, err
	}
	return false, nil
}

// addRule checks a rule for syntax errors and appends it to the grammar.
func (intp *Intp) addRule(line string) error {
	if _, err := rules.Parse([]string{line}); err != nil {
		intp.printError(err)
		return err
	}
	intp.lines = append(intp.lines, line)
	return nil
}

func (intp *Intp) grammar() (*ll.Grammar, error) {
	g, err := rules.ParseGrammar("G", intp.lines)
	if err != nil {
		intp.printError(err)
		return nil, err
	}
	return g, nil
}

func (intp *Intp) run() error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	rep, err := intp.analyse(g)
	if err != nil {
		intp.printError(err)
		return err
	}
	printReport(rep)
	return nil
}

// analyse returns the report for a grammar. Reports are cached by the
// fingerprint of the grammar.
func (intp *Intp) analyse(g *ll.Grammar) (*ll.Report, error) {
	fp := g.Fingerprint()
	if rep, ok := intp.reports[fp]; ok {
		tracer().Debugf("using cached report for grammar %s", fp)
		return rep, nil
	}
	a, err := ll.Analyze(g, intp.opts...)
	if err != nil {
		return nil, err
	}
	rep := a.Report()
	if fp != "" {
		intp.reports[fp] = rep
	}
	return rep, nil
}

func (intp *Intp) check() error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	if err := ll.CheckLL1(g); err != nil {
		intp.printError(err)
		return err
	}
	pterm.Info.Println("grammar passes the LL(1) check")
	return nil
}

func (intp *Intp) listRules() error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	for _, r := range g.Rules() {
		pterm.Println(fmt.Sprintf("%3d  %v", r.Serial, r))
	}
	return nil
}

func (intp *Intp) printError(err error) {
	var rerr *rules.RuleError
	if errors.As(err, &rerr) {
		pterm.Error.Println(rerr.Input)
		pterm.Error.Println(strings.Repeat(" ", rerr.Span.From()) + "^ " + rerr.Msg)
		return
	}
	pterm.Error.Println(err.Error())
}

// --- Report output ---------------------------------------------------------

func printReport(rep *ll.Report) {
	pterm.Println(fmt.Sprintf("Grammar %s  [%s]", rep.Grammar, rep.Fingerprint))
	root := pterm.NewTreeFromLeveledList(leveledReport(rep))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledReport lists the sections of a report, with section lines one level
// below their section title.
func leveledReport(rep *ll.Report) pterm.LeveledList {
	var list pterm.LeveledList
	for i, s := range rep.Sections {
		list = append(list, pterm.LeveledListItem{
			Level: 0,
			Text:  fmt.Sprintf("Step %d: %s", i+1, s.Title),
		})
		if len(s.Lines) == 0 {
			list = append(list, pterm.LeveledListItem{Level: 1, Text: "(none)"})
		}
		for _, line := range s.Lines {
			list = append(list, pterm.LeveledListItem{Level: 1, Text: line})
		}
	}
	return list
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
