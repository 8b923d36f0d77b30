package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stackscript/value"
)

func TestIntpKeepsGlobals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.repl")
	defer teardown()
	//
	intp := NewIntp(DefaultConfig())
	if err := intp.Eval("{. *} :sq ,"); err != nil {
		t.Fatal(err)
	}
	if err := intp.Eval("7 sq!"); err != nil {
		t.Fatal(err)
	}
	if len(intp.stack) != 1 || intp.stack[0] != value.Int(49) {
		t.Errorf("expected [49], got %v", intp.stack)
	}
}

func TestIntpAutoclear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.repl")
	defer teardown()
	//
	intp := NewIntp(DefaultConfig())
	intp.Execute("/autoclear off")
	if intp.autoclear {
		t.Fatalf("expected autoclear to be off")
	}
	intp.Eval("1 2")
	intp.Eval("+")
	if len(intp.stack) != 1 || intp.stack[0] != value.Int(3) {
		t.Errorf("expected previous results to carry over, got %v", intp.stack)
	}
	if err := intp.Eval("x"); err == nil {
		t.Errorf("expected name error")
	}
	if len(intp.stack) != 1 {
		t.Errorf("expected failed input to leave stack unchanged, got %v", intp.stack)
	}
	intp.Execute("/clear")
	if len(intp.stack) != 0 {
		t.Errorf("expected /clear to empty the stack")
	}
	intp.Execute("/quit")
	if !intp.quit {
		t.Errorf("expected /quit to end the session")
	}
}

func TestStackLines(t *testing.T) {
	lines := stackLines([]value.Value{value.Int(1), value.String("a"), value.Int(3),
		value.Int(4), value.Int(5), value.Int(6), value.Int(7), value.Int(8), value.Int(9),
		value.Int(10), value.NewList(nil)})
	if lines[0] != "[00] 1" || lines[1] != `[01] "a"` || lines[10] != "[10] []" {
		t.Errorf("unexpected stack format: %v", lines)
	}
}

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.repl")
	defer teardown()
	//
	data := []byte("prompt: \"> \"\nautoclear: false\nprelude:\n  - std.ss\n  - /abs/x.ss\n")
	cfg, err := ParseConfig(data, "/home/me/ssrepl.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "> " || *cfg.Autoclear || cfg.Trace != "Info" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if len(cfg.Prelude) != 2 || cfg.Prelude[0] != filepath.Join("/home/me", "std.ss") || cfg.Prelude[1] != "/abs/x.ss" {
		t.Errorf("unexpected prelude %v", cfg.Prelude)
	}
	cfg, err = ParseConfig([]byte("trace: Debug\n"), "x.yaml")
	if err != nil || !*cfg.Autoclear || cfg.Prompt != defaultPrompt || cfg.Trace != "Debug" {
		t.Errorf("expected defaults for missing settings, got %+v, %v", cfg, err)
	}
	if _, err = ParseConfig([]byte("prompt: [1, 2"), "bad.yaml"); err == nil {
		t.Errorf("expected malformed YAML to be rejected")
	}
}

func TestPreludeFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.repl")
	defer teardown()
	//
	dir := t.TempDir()
	prelude := filepath.Join(dir, "prelude.ss")
	src := "// squares\n{ . * } :sq\n1 2 3\n"
	if err := os.WriteFile(prelude, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	intp := NewIntp(DefaultConfig())
	intp.loadInitFile(prelude)
	if len(intp.stack) != 0 {
		t.Errorf("expected prelude results to be dropped")
	}
	if err := intp.Eval("3 sq!"); err != nil || intp.stack[0] != value.Int(9) {
		t.Errorf("expected prelude bindings to be visible, got %v, %v", intp.stack, err)
	}
	if !intp.RunFile(prelude) || len(intp.stack) != 4 {
		t.Errorf("expected script to leave its results, got %v", intp.stack)
	}
}

func TestRunFilesStopsAtFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stackscript.repl")
	defer teardown()
	//
	dir := t.TempDir()
	write := func(name, src string) string {
		fname := filepath.Join(dir, name)
		if err := os.WriteFile(fname, []byte(src), 0644); err != nil {
			t.Fatal(err)
		}
		return fname
	}
	good := write("good.ss", "1 :a")
	bad := write("bad.ss", "undefined")
	last := write("last.ss", "2 :b")
	intp := NewIntp(DefaultConfig())
	intp.autoclear = false
	if !intp.RunFiles([]string{good, last}) || len(intp.stack) != 2 {
		t.Errorf("expected both scripts to run, got %v", intp.stack)
	}
	intp = NewIntp(DefaultConfig())
	intp.autoclear = false
	if intp.RunFiles([]string{good, bad, last}) {
		t.Errorf("expected failing script to be reported")
	}
	if _, err := intp.globals.Lookup("b"); err == nil {
		t.Errorf("expected scripts after a failure to be skipped")
	}
	if intp.RunFiles([]string{filepath.Join(dir, "missing.ss")}) {
		t.Errorf("expected missing script to be reported")
	}
}
