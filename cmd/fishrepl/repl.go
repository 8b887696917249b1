package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/fishrambeta"
	"github.com/npillmayer/fishrambeta/expr"
	"github.com/npillmayer/fishrambeta/formula"
	"github.com/npillmayer/fishrambeta/physics"
	"github.com/npillmayer/fishrambeta/runtime"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracingKeys are the keys of the packages a user may want to trace.
var tracingKeys = []string{
	"fishrambeta.repl",
	"fishrambeta.expr",
	"fishrambeta.rewrite",
	"fishrambeta.latex",
	"fishrambeta.runtime",
	"fishrambeta.physics",
	"fishrambeta.formula",
}

// main() starts an interactive CLI, where users may enter formulas in LaTeX
// notation. Formulas are simplified and printed back as LaTeX, or calculated
// with variables defined in the session and with physical constants.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	implicit := flag.Bool("implicit", true, "Adjacent operands denote a product")
	constf := flag.String("constants", "", "TOML or YAML file with additional constants")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to Fishrambeta") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up constants and variables
	var constants physics.Provider = physics.Defaults()
	if *constf != "" {
		table, err := physics.LoadFile(*constf)
		if err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
		constants = table
	}
	setTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	input := strings.Join(flag.Args(), " ")
	input = strings.TrimSpace(input)
	//
	// set up REPL
	repl, err := readline.New("fish> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := NewIntp(constants, *implicit)
	intp.repl = repl
	//
	// load an init file and start receiving commands / formulas
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	intp.REPL() // go into interactive mode
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
	lastValue float64
	repl      *readline.Instance
	env       *runtime.Environment
	constants physics.Provider
	implicit  bool
}

// NewIntp creates an interpreter with an empty set of user variables.
func NewIntp(constants physics.Provider, implicit bool) *Intp {
	return &Intp{
		env:       runtime.NewEnvironment(constants.Values()),
		constants: constants,
		implicit:  implicit,
	}
}

func (intp *Intp) options() []formula.Option {
	return []formula.Option{
		formula.ImplicitMultiplication(intp.implicit),
		formula.WithConstants(intp.constants),
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
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
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
		quit, _ := intp.Eval(line)
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or simplifies a formula, given on a line by itself.
// Results and errors are printed.
//
func (intp *Intp) Eval(line string) (bool, error) {
	cmd, arg := line, ""
	if strings.HasPrefix(line, ":") {
		if i := strings.IndexAny(line, " \t"); i > 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
		}
	} else {
		cmd, arg = "", line
	}
	var err error
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":let":
		err = intp.let(arg)
	case ":calc":
		var v float64
		if v, err = intp.calc(arg); err == nil {
			pterm.Info.Println(fmt.Sprintf("%g", v))
		}
	case ":tree":
		err = intp.tree(arg)
	case ":vars":
		intp.vars()
	case "":
		var latex string
		if latex, err = formula.Simplify(arg, intp.options()...); err == nil {
			pterm.Info.Println(latex)
		}
	default:
		err = fmt.Errorf("unknown command %s", cmd)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false, err
}

// let handles `:let name = latex`.
func (intp *Intp) let(arg string) error {
	eq := strings.Index(arg, "=")
	if eq < 0 {
		return fishrambeta.Errorf(fishrambeta.MalformedInput, "usage: :let name = formula")
	}
	name := strings.TrimSpace(arg[:eq])
	if name == "" {
		return fishrambeta.Errorf(fishrambeta.MalformedInput, "missing variable name")
	}
	v, err := intp.calc(arg[eq+1:])
	if err != nil {
		return err
	}
	intp.env.Define(name, v)
	pterm.Info.Println(fmt.Sprintf("%s = %g", name, v))
	return nil
}

func (intp *Intp) calc(text string) (float64, error) {
	v, err := formula.Calculate(text, intp.env.UserValues(), intp.options()...)
	if err != nil {
		return 0, err
	}
	intp.lastValue = v
	return v, nil
}

func (intp *Intp) vars() {
	names := intp.env.Variables()
	if len(names) == 0 {
		pterm.Info.Println("no variables defined")
		return
	}
	for _, name := range names {
		v, _ := intp.env.Lookup(name)
		pterm.Info.Println(fmt.Sprintf("%s = %g", name, v))
	}
}

// tree is a helper command to display an expression as a tree on a terminal.
func (intp *Intp) tree(text string) error {
	e, err := formula.Tree(text, intp.options()...)
	if err != nil {
		return err
	}
	ll := leveledExpr(e, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func leveledExpr(e expr.Expression, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := e.String()
	if !expr.IsLeaf(e) {
		text = e.Kind().String()
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  text,
	})
	for _, ch := range expr.Children(e) {
		ll = leveledExpr(ch, ll, level+1)
	}
	return ll
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range tracingKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
