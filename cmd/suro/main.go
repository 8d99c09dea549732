// Package main implements the suro interpreter entry point.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"

	"github.com/you-not-fish/suro/internal/config"
	"github.com/you-not-fish/suro/internal/interp"
	"github.com/you-not-fish/suro/internal/syntax"
)

// Version information
const Version = "0.1.0-dev"

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var (
	errorColor  = color.New(color.FgRed)
	headerColor = color.New(color.FgCyan, color.Bold)
	valueColor  = color.New(color.FgGreen)
)

type options struct {
	verbose    bool
	emitTokens bool
	emitAST    bool
	astFormat  string
	configPath string
	repl       bool
	noColor    bool
	version    bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run parses args, loads the configuration and dispatches to one of the
// modes. It returns the process exit code.
func run(args []string) int {
	var opts options
	fs := flag.NewFlagSet("suro", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.BoolVar(&opts.verbose, "v", false, "Print tokens, AST and final value")
	fs.BoolVar(&opts.emitTokens, "emit-tokens", false, "Output token stream")
	fs.BoolVar(&opts.emitAST, "emit-ast", false, "Output AST")
	fs.StringVar(&opts.astFormat, "ast-format", "text", "AST output format (text or json)")
	fs.StringVar(&opts.configPath, "config", "", "Configuration file (default ./"+config.DefaultFile+" if present)")
	fs.BoolVar(&opts.repl, "repl", false, "Start an interactive session")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable coloured output")
	fs.BoolVar(&opts.version, "version", false, "Print version")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "suro %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: suro [options] <file.suro>\n")
		fmt.Fprintf(os.Stderr, "       suro -repl\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if opts.version {
		fmt.Printf("suro version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		return exitOK
	}

	cfg, err := config.Resolve(opts.configPath, ".")
	if err != nil {
		report(err)
		return exitError
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbose = opts.verbose
		case "ast-format":
			cfg.ASTFormat = opts.astFormat
		case "no-color":
			if opts.noColor {
				cfg.Color = config.ColorNever
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		report(err)
		return exitUsage
	}
	setColor(cfg.Color)

	if opts.repl {
		return runREPL(cfg)
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: expected exactly one input file")
		fmt.Fprintln(os.Stderr, "usage: suro [options] <file.suro>")
		return exitUsage
	}
	filename := fs.Arg(0)

	switch {
	case opts.emitTokens:
		return runEmitTokens(filename)
	case opts.emitAST:
		return runEmitAST(filename, cfg.ASTFormat)
	}
	return runFile(filename, cfg)
}

// setColor applies the colour mode. Auto keeps the terminal detection
// done by the color package.
func setColor(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// report prints a diagnostic to stderr.
func report(err error) {
	fmt.Fprintln(os.Stderr, errorColor.Sprint(err.Error()))
}

func header(title string) string {
	return headerColor.Sprintf("=== %s ===", title)
}

// readSource reads and validates a source file.
func readSource(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return syntax.ReadSource(filename, f)
}

// runFile evaluates a source file. In verbose mode the token stream, the
// tree and the final value are printed as well.
func runFile(filename string, cfg *config.Config) int {
	src, err := readSource(filename)
	if err != nil {
		report(err)
		return exitError
	}

	lexemes, err := syntax.Tokenize(filename, src)
	if err != nil {
		report(err)
		return exitError
	}
	if cfg.Verbose {
		fmt.Println(header("Tokens"))
		printTokens(os.Stdout, lexemes)
	}

	prog, err := syntax.ParseTokens(lexemes)
	if err != nil {
		report(err)
		return exitError
	}
	if cfg.Verbose {
		fmt.Println(header(fmt.Sprintf("AST (%d nodes)", syntax.CountNodes(prog))))
		if err := printAST(os.Stdout, prog, cfg.ASTFormat); err != nil {
			report(err)
			return exitError
		}
		fmt.Println(header("Output"))
	}

	v, err := interp.Evaluate(prog, &interp.Config{Stdout: os.Stdout, MaxDepth: cfg.MaxDepth})
	if err != nil {
		report(err)
		return exitError
	}
	if cfg.Verbose {
		fmt.Println(header("Value"))
		fmt.Println(valueColor.Sprint(v.Inspect()))
	}
	return exitOK
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename, format string) int {
	src, err := readSource(filename)
	if err != nil {
		report(err)
		return exitError
	}
	prog, err := syntax.Parse(filename, src)
	if err != nil {
		report(err)
		return exitError
	}
	if err := printAST(os.Stdout, prog, format); err != nil {
		report(err)
		return exitError
	}
	return exitOK
}

func printAST(w io.Writer, prog *syntax.Program, format string) error {
	if format == "json" {
		return syntax.FprintJSON(w, prog)
	}
	syntax.Fprint(w, prog)
	return nil
}

// runEmitTokens scans the input file and prints all tokens with positions.
// Tokens before a lexical error are printed, then the error.
func runEmitTokens(filename string) int {
	src, err := readSource(filename)
	if err != nil {
		report(err)
		return exitError
	}

	var lexemes []syntax.Lexeme
	s := syntax.NewScanner(filename, src)
	for {
		s.Next()
		if s.Err() != nil {
			break
		}
		lexemes = append(lexemes, syntax.Lexeme{Tok: s.Token(), Lit: s.Literal(), Pos: s.Pos()})
		if s.Token().IsEOF() {
			break
		}
	}

	printTokens(os.Stdout, lexemes)
	if err := s.Err(); err != nil {
		report(err)
		return exitError
	}
	return exitOK
}

// printTokens writes a table of lexemes.
func printTokens(w io.Writer, lexemes []syntax.Lexeme) {
	fmt.Fprintf(w, "%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))
	for _, l := range lexemes {
		fmt.Fprintf(w, "%-20s %-12s %s\n", l.Pos, l.Tok, formatLiteral(l.Lit))
	}
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\t':
			b.WriteString("\\t")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
