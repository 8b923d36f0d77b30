package main

import (
	"flag"
	"io"
	"os"

	"github.com/mattn/go-isatty"
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

// main() starts an interactive CLI, where users may enter stackscript
// expressions. The REPL will evaluate the expressions and print out the
// resulting stack.
//
// Given script files as arguments, or with standard input not connected to
// a terminal, the scripts are evaluated non-interactively.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	cfgf := flag.String("config", "", "Configuration file (YAML)")
	interactive := flag.Bool("i", false, "Enter interactive mode after running scripts")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	//
	cfg := DefaultConfig()
	if *cfgf != "" {
		var err error
		if cfg, err = LoadConfig(*cfgf); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(3)
		}
	}
	if *tlevel != "" {
		cfg.Trace = *tlevel
	}
	tracer().Infof("Trace level is %s", cfg.Trace)
	setTraceLevel(traceLevel(cfg.Trace)) // now set the user supplied level
	//
	intp := NewIntp(cfg)
	for _, prelude := range cfg.Prelude {
		intp.loadInitFile(prelude)
	}
	intp.loadInitFile(*initf) // init file name provided by flag
	//
	stdinIsTerminal := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	if flag.NArg() > 0 || !stdinIsTerminal {
		intp.autoclear = false
		var ok bool
		if flag.NArg() > 0 {
			ok = intp.RunFiles(flag.Args())
		} else {
			src, err := io.ReadAll(os.Stdin)
			if err != nil {
				tracer().Errorf("cannot read standard input: %v", err)
				os.Exit(2)
			}
			ok = intp.Eval(string(src)) == nil
		}
		intp.printStack()
		if !*interactive || !stdinIsTerminal {
			if !ok {
				os.Exit(1)
			}
			return
		}
	}
	pterm.Info.Println("Welcome to stackscript") // colored welcome message
	tracer().Infof("Quit with <ctrl>D or /quit") // inform user how to stop the CLI
	if err := intp.REPL(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
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

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

// setTraceLevel sets the level for all tracers of stackscript.
func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"stackscript.repl", "stackscript.eval", "stackscript.runtime",
		"stackscript.syntax", "stackscript.scanner"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
