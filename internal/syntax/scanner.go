package syntax

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// lexRules is the ordered rule table of the language.
// The lexer tries the rules in order and takes the first one that matches
// at the cursor (not the longest match): Comment must stay ahead of Punct
// so that "--" is not read as two minus signs.
var lexRules = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `--[^\n]*`},
	{Name: "String", Pattern: `"[^"\n]*"|'[^'\n]*'`},
	{Name: "Integer", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[;(){},+*/-]`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})

var (
	ruleComment    = lexRules.Symbols()["Comment"]
	ruleString     = lexRules.Symbols()["String"]
	ruleInteger    = lexRules.Symbols()["Integer"]
	rulePunct      = lexRules.Symbols()["Punct"]
	ruleIdent      = lexRules.Symbols()["Ident"]
	ruleWhitespace = lexRules.Symbols()["Whitespace"]
)

var punctTokens = map[string]Token{
	";": _Semi,
	"(": _Lparen,
	")": _Rparen,
	"{": _Lbrace,
	"}": _Rbrace,
	",": _Comma,
	"+": _Add,
	"-": _Sub,
	"*": _Mul,
	"/": _Div,
}

// LexError reports input that no lexical rule accepts.
type LexError struct {
	Pos    Pos
	Offset int  // byte offset of the offending character
	Char   rune // offending character
	Msg    string
}

func (e *LexError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "unrecognized character"
	}
	return fmt.Sprintf("%s: %s at offset %d (%q)", e.Pos, msg, e.Offset, e.Char)
}

// Lexeme is a token together with its literal text and position.
type Lexeme struct {
	Tok Token
	Lit string
	Pos Pos
}

func (l Lexeme) String() string {
	if l.Tok == _EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", l.Tok, l.Lit)
}

// Scanner performs lexical analysis on suro source code.
type Scanner struct {
	filename string
	src      string
	lex      lexer.Lexer

	// Current token info
	tok    Token  // token type
	lit    string // token literal, as matched (string quotes included)
	tokPos Pos    // token start position

	err error // first lexical error; sticky
}

// NewScanner creates a new Scanner for src.
func NewScanner(filename, src string) *Scanner {
	s := &Scanner{filename: filename, src: src}
	lex, err := lexRules.LexString(filename, src)
	if err != nil {
		s.err = err
		s.tok = _Error
		return s
	}
	s.lex = lex
	return s
}

// Next advances to the next token. Comments and whitespace are skipped.
// After a lexical error the scanner stays on _Error.
func (s *Scanner) Next() {
	if s.err != nil {
		s.tok = _Error
		return
	}

redo:
	t, err := s.lex.Next()
	if err != nil {
		s.fail(err)
		return
	}

	s.tokPos = s.position(t.Pos)
	s.lit = t.Value

	switch {
	case t.EOF():
		s.tok = _EOF
		s.lit = ""
	case t.Type == ruleComment, t.Type == ruleWhitespace:
		goto redo
	case t.Type == ruleString:
		s.tok = _String
	case t.Type == ruleInteger:
		s.tok = _Integer
	case t.Type == rulePunct:
		s.tok = punctTokens[t.Value]
	case t.Type == ruleIdent:
		s.tok = s.ident(t)
	default:
		s.fail(fmt.Errorf("unexpected lexer rule %d", t.Type))
	}
}

// ident classifies an identifier match. A keyword only counts as a keyword
// when some character follows it; the Ident rule is greedy, so that character
// can never be an identifier character. A keyword that ends the input is
// therefore an ordinary identifier.
func (s *Scanner) ident(t lexer.Token) Token {
	tok := LookupKeyword(t.Value)
	if tok != _Name && t.Pos.Offset+len(t.Value) >= len(s.src) {
		return _Name
	}
	return tok
}

func (s *Scanner) fail(err error) {
	s.tok = _Error
	s.lit = ""

	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		s.err = err
		return
	}
	off := lerr.Pos.Offset
	ch := utf8.RuneError
	if off >= 0 && off < len(s.src) {
		ch, _ = utf8.DecodeRuneInString(s.src[off:])
	}
	s.tokPos = s.position(lerr.Pos)
	s.err = &LexError{Pos: s.tokPos, Offset: off, Char: ch}
}

func (s *Scanner) position(p lexer.Position) Pos {
	return NewPosOffset(s.filename, uint32(p.Line), uint32(p.Column), p.Offset)
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's literal text.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Err returns the lexical error that stopped the scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

// Tokenize scans src completely and returns its lexemes, terminated by a
// single EOF lexeme. It stops at the first character no rule accepts.
func Tokenize(filename, src string) ([]Lexeme, error) {
	s := NewScanner(filename, src)
	var out []Lexeme
	for {
		s.Next()
		if s.tok == _Error {
			return nil, s.err
		}
		out = append(out, Lexeme{Tok: s.tok, Lit: s.lit, Pos: s.tokPos})
		if s.tok == _EOF {
			return out, nil
		}
	}
}
