package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/you-not-fish/suro/internal/config"
	"github.com/you-not-fish/suro/internal/interp"
	"github.com/you-not-fish/suro/internal/object"
	"github.com/you-not-fish/suro/internal/syntax"
)

const (
	promptCont = "  ... "
	replFile   = "<repl>"
)

var banner = fmt.Sprintf("suro %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", Version)

const helpText = `REPL commands:
  :scope   Show the bindings of the session
  :help    Show this help
  :quit    Exit the REPL`

// lineReader is the part of liner.State the REPL loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
}

// runREPL starts an interactive session on the terminal.
func runREPL(cfg *config.Config) int {
	fmt.Println(banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist := cfg.HistoryPath(); hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	in := interp.New(&interp.Config{Stdout: os.Stdout, MaxDepth: cfg.MaxDepth})
	return replLoop(ln, in, cfg.Prompt, os.Stdout, os.Stderr, ln.AppendHistory)
}

// replLoop reads inputs until end of input or :quit and evaluates each
// one in the same interpreter. record, if non-nil, receives every input
// that evaluated without error.
func replLoop(r lineReader, in *interp.Interpreter, prompt string, stdout, stderr io.Writer, record func(string)) int {
	for {
		src, ok := readInput(r, prompt, promptCont)
		if !ok {
			fmt.Fprintln(stdout)
			return exitOK
		}

		code := strings.TrimSpace(src)
		switch {
		case code == "":
			continue
		case strings.HasPrefix(code, ":"):
			if quit := replCommand(in, code, stdout); quit {
				return exitOK
			}
			continue
		}

		prog, err := syntax.Parse(replFile, src)
		if err != nil {
			fmt.Fprintln(stderr, errorColor.Sprint(err.Error()))
			continue
		}
		v, err := in.Eval(prog)
		if err != nil {
			fmt.Fprintln(stderr, errorColor.Sprint(err.Error()))
			continue
		}
		if v.Kind() != object.NullKind {
			fmt.Fprintln(stdout, valueColor.Sprint(v.Inspect()))
		}
		if record != nil {
			record(strings.Join(strings.Fields(code), " "))
		}
	}
}

// replCommand runs a colon command and reports whether the session ends.
func replCommand(in *interp.Interpreter, cmd string, stdout io.Writer) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":scope":
		fmt.Fprint(stdout, in.Scope().String())
	case ":help":
		fmt.Fprintln(stdout, helpText)
	default:
		fmt.Fprintf(stdout, "unknown command %s. Type :help for commands.\n", cmd)
	}
	return false
}

// readInput reads lines until they form a complete program or a program
// with an error that more input cannot fix. Every line keeps its newline,
// so a keyword typed last on a line is still a keyword. It reports false at
// end of input.
func readInput(r lineReader, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := r.Prompt(p)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		b.WriteString(line)
		b.WriteByte('\n')

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if _, perr := syntax.Parse(replFile, src); syntax.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
