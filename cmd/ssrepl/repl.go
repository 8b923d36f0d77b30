package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/stackscript/eval"
	"github.com/npillmayer/stackscript/runtime"
	"github.com/npillmayer/stackscript/syntax"
	"github.com/npillmayer/stackscript/value"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

const continuationPrompt = "... "

// Intp is our interpreter object
type Intp struct {
	ev        *eval.Evaluator
	globals   *runtime.Scope // lives as long as the session
	stack     []value.Value  // results kept between inputs if autoclear is off
	autoclear bool
	prompt    string
	repl      *readline.Instance
	quit      bool
}

// NewIntp creates an interpreter with a fresh global scope.
func NewIntp(cfg *Config) *Intp {
	intp := &Intp{
		ev:        eval.New(),
		globals:   runtime.NewGlobals(),
		autoclear: true,
		prompt:    cfg.Prompt,
	}
	if cfg.Autoclear != nil {
		intp.autoclear = *cfg.Autoclear
	}
	return intp
}

// Eval evaluates stackscript source text. If autoclear is off, the stack
// left by the previous input is the initial stack. On error, the stack
// remains unchanged.
func (intp *Intp) Eval(src string) error {
	var initial []value.Value
	if !intp.autoclear {
		initial = intp.stack
	}
	result, err := intp.ev.EvaluateString(src, intp.globals, initial...)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	intp.stack = result
	return nil
}

// RunFile evaluates the content of a script file. It returns false if the
// file could not be read or evaluated.
func (intp *Intp) RunFile(filename string) bool {
	src, err := os.ReadFile(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	tracer().Infof("Running %s", filename)
	return intp.Eval(string(src)) == nil
}

// RunFiles evaluates script files in order. It stops at the first script
// which fails and returns false in that case.
func (intp *Intp) RunFiles(filenames []string) bool {
	for i, filename := range filenames {
		if !intp.RunFile(filename) {
			if rest := filenames[i+1:]; len(rest) > 0 {
				tracer().Errorf("Skipping %s", strings.Join(rest, ", "))
			}
			return false
		}
	}
	return true
}

// loadInitFile evaluates a file for its bindings. Values left on the stack
// are dropped.
func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	if _, err := intp.ev.EvaluateString(string(src), intp.globals); err != nil {
		tracer().Errorf("Error in init file %s: %v", filename, err)
		return
	}
	tracer().Infof("Loaded %s", filename)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() error {
	repl, err := readline.New(intp.prompt)
	if err != nil {
		return err
	}
	intp.repl = repl
	defer repl.Close()
	var pending []string
	for !intp.quit {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if len(pending) == 0 {
			if line = strings.TrimSpace(line); line == "" {
				continue
			}
			if strings.HasPrefix(line, "/") {
				intp.Execute(line)
				continue
			}
		}
		pending = append(pending, line)
		src := strings.Join(pending, "\n")
		if syntax.Balance(src) > 0 { // unclosed brackets: ask for more
			intp.repl.SetPrompt(continuationPrompt)
			continue
		}
		pending = pending[:0]
		intp.repl.SetPrompt(intp.prompt)
		if intp.Eval(src) == nil {
			intp.printStack()
		}
	}
	println("Good bye!")
	return nil
}

// --- Metacommands ----------------------------------------------------------

type metacommand struct {
	help string
	run  func(intp *Intp, args []string)
}

var metacommands map[string]metacommand

func init() {
	metacommands = map[string]metacommand{
		"help":      {"list metacommands", (*Intp).cmdHelp},
		"quit":      {"quit the interpreter", func(intp *Intp, _ []string) { intp.quit = true }},
		"clear":     {"clear the stack", func(intp *Intp, _ []string) { intp.stack = nil }},
		"autoclear": {"clear the stack after each input: /autoclear [on|off]", (*Intp).cmdAutoclear},
		"stack":     {"display the stack as a tree", func(intp *Intp, _ []string) { intp.printStackTree() }},
		"globals":   {"list global bindings", (*Intp).cmdGlobals},
		"ops":       {"list operators: /ops [operator]", (*Intp).cmdOps},
	}
}

// Execute runs a metacommand, given as a line starting with '/'.
func (intp *Intp) Execute(line string) {
	args := strings.Fields(strings.TrimPrefix(line, "/"))
	if len(args) == 0 {
		args = []string{"help"}
	}
	name := args[0]
	if name == "?" {
		name = "help"
	}
	cmd, ok := metacommands[name]
	if !ok {
		pterm.Error.Println(fmt.Sprintf("unrecognized command '%s', try /help", name))
		return
	}
	tracer().Debugf("metacommand %s %v", name, args[1:])
	cmd.run(intp, args[1:])
}

func (intp *Intp) cmdHelp(args []string) {
	names := make([]string, 0, len(metacommands))
	for name := range metacommands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pterm.Println(fmt.Sprintf("/%-10s %s", name, metacommands[name].help))
	}
}

func (intp *Intp) cmdAutoclear(args []string) {
	if len(args) == 0 {
		pterm.Info.Println(onOff(intp.autoclear))
		return
	}
	switch args[0] {
	case "on":
		intp.autoclear = true
	case "off":
		intp.autoclear = false
	default:
		pterm.Error.Println(fmt.Sprintf("invalid argument '%s'", args[0]))
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (intp *Intp) cmdGlobals(args []string) {
	intp.globals.Tags().Each(func(name string, tag *runtime.Tag) {
		pterm.Println(fmt.Sprintf("%-12s %s", name, tag.Value))
	})
}

func (intp *Intp) cmdOps(args []string) {
	ops := intp.ev.Operators()
	if len(args) > 0 {
		overloads := ops.Overloads(args[0])
		if len(overloads) == 0 {
			pterm.Error.Println(fmt.Sprintf("no operator '%s'", args[0]))
		}
		for _, ov := range overloads {
			pterm.Println(ov.String())
		}
		return
	}
	pterm.Println(strings.Join(ops.Operators(), " "))
}

// --- Output ----------------------------------------------------------------

// stackLines formats the stack, top of stack last.
func stackLines(stack []value.Value) []string {
	lines := make([]string, len(stack))
	width := len(fmt.Sprint(len(stack)))
	for i, v := range stack {
		lines[i] = fmt.Sprintf("[%0*d] %s", width, i, v)
	}
	return lines
}

func (intp *Intp) printStack() {
	for _, line := range stackLines(intp.stack) {
		pterm.Info.Println(line)
	}
}

// printStackTree displays the stack as a tree, with elements of lists and
// tuples as children.
func (intp *Intp) printStackTree() {
	if len(intp.stack) == 0 {
		pterm.Info.Println("stack is empty")
		return
	}
	ll := pterm.LeveledList{pterm.LeveledListItem{Level: 0, Text: "stack"}}
	for _, v := range intp.stack {
		ll = leveledValue(v, ll, 1)
	}
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledValue(v value.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch v.(type) {
	case *value.List, value.Tuple:
		n, _ := value.Length(v)
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s (%d)", v.Kind(), n),
		})
		seq, _ := value.Seq(v)
		for e := seq.Next(); e != nil; e = seq.Next() {
			ll = leveledValue(e, ll, level+1)
		}
		return ll
	}
	return append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  v.String(),
	})
}
