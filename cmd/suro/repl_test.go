package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"
)

// scriptReader replays lines as if typed at the prompt.
type scriptReader struct {
	lines   []string
	errs    map[int]error
	prompts []string
}

func (r *scriptReader) Prompt(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	i := len(r.prompts) - 1
	if err, ok := r.errs[i]; ok {
		return "", err
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func runScript(t *testing.T, r *scriptReader) (stdout, stderr string, history []string) {
	t.Helper()
	var out, errOut bytes.Buffer
	in := newTestInterpreter(&out)
	code := replLoop(r, in, "suro> ", &out, &errOut, func(s string) {
		history = append(history, s)
	})
	if code != exitOK {
		t.Fatalf("replLoop exit=%d", code)
	}
	return out.String(), errOut.String(), history
}

func TestREPLKeepsBindings(t *testing.T) {
	r := &scriptReader{lines: []string{
		"set x to 2",
		"change x to x * 21",
		"x",
		"print('x is', x)",
	}}
	out, errOut, history := runScript(t, r)

	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if want := "42\nx is\n42\n\n"; out != want {
		t.Errorf("stdout = %q, want %q", out, want)
	}
	if len(history) != 4 || history[1] != "change x to x * 21" {
		t.Errorf("history = %q", history)
	}
}

func TestREPLContinuation(t *testing.T) {
	r := &scriptReader{lines: []string{
		"{",
		"  set a to 1;",
		"  return a + 1;",
		"}",
	}}
	out, errOut, history := runScript(t, r)

	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.HasPrefix(out, "2\n") {
		t.Errorf("stdout = %q, want 2", out)
	}
	wantPrompts := []string{"suro> ", promptCont, promptCont, promptCont, "suro> "}
	if strings.Join(r.prompts, "|") != strings.Join(wantPrompts, "|") {
		t.Errorf("prompts = %q, want %q", r.prompts, wantPrompts)
	}
	if len(history) != 1 || history[0] != "{ set a to 1; return a + 1; }" {
		t.Errorf("history = %q", history)
	}
}

func TestREPLKeywordAtEndOfLine(t *testing.T) {
	r := &scriptReader{lines: []string{
		"if 1 then true",
	}}
	out, errOut, _ := runScript(t, r)

	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.HasPrefix(out, "true\n") {
		t.Errorf("stdout = %q, want true", out)
	}
}

func TestREPLErrorsDoNotEndSession(t *testing.T) {
	r := &scriptReader{lines: []string{
		"change y to 1",
		"set 1 to 2",
		"3",
	}}
	out, errOut, history := runScript(t, r)

	if !strings.Contains(errOut, "<repl>:1:8: reassignment of undefined") {
		t.Errorf("stderr missing runtime error:\n%s", errOut)
	}
	if !strings.Contains(errOut, "expected identifier, got INTEGER 1") {
		t.Errorf("stderr missing syntax error:\n%s", errOut)
	}
	if !strings.HasPrefix(out, "3\n") {
		t.Errorf("stdout = %q, want 3", out)
	}
	if len(history) != 1 {
		t.Errorf("failed inputs recorded: %q", history)
	}
}

func TestREPLCommands(t *testing.T) {
	r := &scriptReader{lines: []string{
		"set n to 'v'",
		":scope",
		":help",
		":bogus",
		":quit",
		"print('unreachable')",
	}}
	out, _, _ := runScript(t, r)

	for _, want := range []string{
		"frame 0 (root) {",
		`  n: "v"`,
		"  print: <native print>",
		"REPL commands:",
		"unknown command :bogus",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "unreachable") {
		t.Errorf("input after :quit was evaluated:\n%s", out)
	}
}

func TestREPLAbortDiscardsPendingInput(t *testing.T) {
	r := &scriptReader{
		lines: []string{"{ set a to 1;", "7"},
		errs:  map[int]error{1: liner.ErrPromptAborted},
	}
	out, errOut, _ := runScript(t, r)

	if errOut != "" {
		t.Fatalf("unexpected stderr:\n%s", errOut)
	}
	if !strings.HasPrefix(out, "7\n") {
		t.Errorf("stdout = %q, want 7", out)
	}
	if r.prompts[2] != "suro> " {
		t.Errorf("prompt after abort = %q, want primary prompt", r.prompts[2])
	}
}

func TestREPLIncompleteInputAtEOF(t *testing.T) {
	r := &scriptReader{lines: []string{"{ 1;"}}
	_, errOut, _ := runScript(t, r)

	if !strings.Contains(errOut, "EOF") {
		t.Errorf("stderr = %q, want error at end of input", errOut)
	}
}
