// Package syntax implements lexical and syntactic analysis for the suro
// scripting language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Literals
	_Name    // identifier: x, to_bool, my-var
	_Integer // 123
	_String  // "abc" or 'abc' (quotes kept)
	_True    // true
	_False   // false

	// Operators
	_Add // +
	_Sub // -
	_Mul // *
	_Div // /

	// Delimiters
	_Lparen // (
	_Rparen // )
	_Lbrace // {
	_Rbrace // }
	_Comma  // ,
	_Semi   // ;

	// Keywords
	_Call
	_Change
	_Else
	_Func
	_If
	_Return
	_Set
	_Takes
	_Then
	_To
	_With

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_Name:    "NAME",
	_Integer: "INTEGER",
	_String:  "STRING",
	_True:    "true",
	_False:   "false",

	_Add: "+",
	_Sub: "-",
	_Mul: "*",
	_Div: "/",

	_Lparen: "(",
	_Rparen: ")",
	_Lbrace: "{",
	_Rbrace: "}",
	_Comma:  ",",
	_Semi:   ";",

	_Call:   "call",
	_Change: "change",
	_Else:   "else",
	_Func:   "func",
	_If:     "if",
	_Return: "return",
	_Set:    "set",
	_Takes:  "takes",
	_Then:   "then",
	_To:     "to",
	_With:   "with",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a keyword token.
// true and false are keywords as well.
func (t Token) IsKeyword() bool {
	return t == _True || t == _False || t >= _Call && t <= _With
}

// IsLiteral reports whether t is a literal token.
func (t Token) IsLiteral() bool {
	return t >= _Integer && t <= _False
}

// IsOperator reports whether t is an arithmetic operator token.
func (t Token) IsOperator() bool {
	return t >= _Add && t <= _Div
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// Exported operator tokens for the evaluator.
const (
	Add Token = _Add
	Sub Token = _Sub
	Mul Token = _Mul
	Div Token = _Div
)

// keywords maps keyword strings to their token type.
var keywords = map[string]Token{
	"call":   _Call,
	"change": _Change,
	"else":   _Else,
	"false":  _False,
	"func":   _Func,
	"if":     _If,
	"return": _Return,
	"set":    _Set,
	"takes":  _Takes,
	"then":   _Then,
	"to":     _To,
	"true":   _True,
	"with":   _With,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a keyword, returns the keyword token.
// Otherwise, returns _Name.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}
