// Package config loads the suro tool settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = ".suro.yml"

// ColorMode selects when diagnostics are coloured.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // colour when stderr is a terminal
	ColorAlways ColorMode = "always" // colour even when redirected
	ColorNever  ColorMode = "never"
)

// Config holds the settings of the suro command.
type Config struct {
	Path        string // file the settings were read from; empty for defaults
	Verbose     bool
	ASTFormat   string // text or json
	Color       ColorMode
	HistoryFile string // REPL history; empty disables it
	Prompt      string // REPL prompt
	MaxDepth    int    // frame limit; 0 uses the interpreter default
}

// configFile mirrors the YAML document. Pointer fields distinguish
// absent keys from zero values.
type configFile struct {
	Verbose     *bool   `yaml:"verbose"`
	ASTFormat   *string `yaml:"ast_format"`
	Color       *string `yaml:"color"`
	HistoryFile *string `yaml:"history_file"`
	Prompt      *string `yaml:"prompt"`
	MaxDepth    *int    `yaml:"max_depth"`
}

// ValidationError aggregates configuration validation failures.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed")
	if e.Path != "" {
		b.WriteString(" for ")
		b.WriteString(e.Path)
	}
	b.WriteString(":")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ASTFormat:   "text",
		Color:       ColorAuto,
		HistoryFile: "~/.suro_history",
		Prompt:      "suro> ",
	}
}

// Load reads the settings in path on top of the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
			return nil, verr
		}
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Decode reads a YAML document from r on top of the defaults.
// Unknown keys are rejected. An empty document yields the defaults.
func Decode(r io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	cfg := Default()
	var raw configFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, err
	}

	raw.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads path if it is set, else DefaultFile in dir if present,
// else returns the defaults.
func Resolve(path, dir string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	candidate := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(candidate); err == nil {
		return Load(candidate)
	}
	return Default(), nil
}

func (f *configFile) apply(cfg *Config) {
	if f.Verbose != nil {
		cfg.Verbose = *f.Verbose
	}
	if f.ASTFormat != nil {
		cfg.ASTFormat = *f.ASTFormat
	}
	if f.Color != nil {
		cfg.Color = ColorMode(*f.Color)
	}
	if f.HistoryFile != nil {
		cfg.HistoryFile = *f.HistoryFile
	}
	if f.Prompt != nil {
		cfg.Prompt = *f.Prompt
	}
	if f.MaxDepth != nil {
		cfg.MaxDepth = *f.MaxDepth
	}
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var errs ValidationError
	switch c.ASTFormat {
	case "text", "json":
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("ast_format must be text or json, got %q", c.ASTFormat))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs.Issues = append(errs.Issues, fmt.Sprintf("color must be auto, always or never, got %q", c.Color))
	}
	if c.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	if c.MaxDepth < 0 {
		errs.Issues = append(errs.Issues, fmt.Sprintf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// HistoryPath returns HistoryFile with a leading ~ expanded to the home
// directory, or "" if history is disabled or the home directory is unknown.
func (c *Config) HistoryPath() string {
	p := c.HistoryFile
	if p == "" {
		return ""
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p
}
