package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/combo/analyst"
	"github.com/npillmayer/combo/ast"
	"github.com/npillmayer/combo/term"
	"github.com/npillmayer/combo/termlang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("C.REPL"), where users may enter
// commands operating on combinator terms. C.REPL keeps a current term and,
// after 'load', a crosslinked tree of it with a cursor for editing.
//
// Please refer to packages "compiler" and "ast".
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	steps := flag.Int("steps", 10000, "Step limit for simplification, 0 for none")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to CREPL")    // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel))
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	//
	// set up REPL
	repl, err := readline.New("crepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:   repl,
		steps:  *steps,
		cursor: ast.Nil,
		client: analyst.NewClient(analyst.LocalTransport{Steps: *steps}),
	}
	if input != "" {
		if intp.current, err = termlang.Parse(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
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
	repl    *readline.Instance
	steps   int
	current *term.Term   // current term
	arena   *ast.Arena   // crosslinked tree of the loaded term, nil before 'load'
	cursor  ast.NodeID   // cursor within arena, if loaded
	hood    []*term.Term // last neighborhood listed
	client  *analyst.Client
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
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			lineno++
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
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
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	c, ok := commands[cmd]
	if !ok {
		return false, unknownCommand(cmd)
	}
	tracer().Debugf("command %s %v", cmd, args)
	return c.run(intp, args)
}

// termArg parses the arguments of a command as a term, defaulting to the
// current term.
func (intp *Intp) termArg(args []string) (*term.Term, error) {
	if len(args) == 0 {
		if intp.current == nil {
			return nil, fmt.Errorf("no current term; enter one with 'parse'")
		}
		return intp.current, nil
	}
	return termlang.ParseTokens(args)
}

func (intp *Intp) show(t *term.Term) {
	intp.current = t
	pterm.Info.Println(termlang.Print(t))
}

func (intp *Intp) ctx() context.Context {
	return context.Background()
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
