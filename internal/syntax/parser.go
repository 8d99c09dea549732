package syntax

import (
	"errors"
	"fmt"
	"strconv"
)

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos   Pos
	Msg   string
	AtEOF bool // input ended before the construct was complete
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// IsIncomplete reports whether err is a syntax error caused by running out
// of input, i.e. more text could still make the program valid.
func IsIncomplete(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se) && se.AtEOF
}

// Parser performs syntax analysis on a lexeme stream.
// The first syntax error is fatal: the parser records it and stops
// consuming input.
type Parser struct {
	lexemes []Lexeme
	idx     int // index of the current lexeme

	// Current token info (cached from lexemes[idx])
	tok Token
	lit string
	pos Pos

	// Error handling
	errh  func(pos Pos, msg string)
	first *SyntaxError
	abort bool
}

// NewParser creates a new Parser over lexemes, as produced by Tokenize.
// errh, if non-nil, is called with the syntax error that stops the parse.
func NewParser(lexemes []Lexeme, errh func(pos Pos, msg string)) *Parser {
	p := &Parser{lexemes: lexemes, idx: -1, errh: errh}
	p.next() // prime the parser with first token
	return p
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next lexeme. Running off the end of the stream
// behaves like EOF.
func (p *Parser) next() {
	if p.abort {
		p.tok = _EOF
		return
	}
	if p.idx+1 < len(p.lexemes) {
		p.idx++
		l := p.lexemes[p.idx]
		p.tok, p.lit, p.pos = l.Tok, l.Lit, l.Pos
		return
	}
	p.idx = len(p.lexemes)
	p.tok, p.lit = _EOF, ""
}

// peek returns the token after the current one.
func (p *Parser) peek() Token {
	if p.idx+1 < len(p.lexemes) {
		return p.lexemes[p.idx+1].Tok
	}
	return _EOF
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError("expected " + tok.String() + ", got " + p.describe())
	}
}

// describe renders the current token for error messages.
func (p *Parser) describe() string {
	switch p.tok {
	case _Name, _Integer, _String:
		return fmt.Sprintf("%s %s", p.tok, p.lit)
	}
	return p.tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current position.
func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.pos, msg)
}

// syntaxErrorAt records the first syntax error and aborts the parse.
func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	p.first = &SyntaxError{Pos: pos, Msg: msg, AtEOF: p.tok == _EOF}
	if p.errh != nil {
		p.errh(pos, msg)
	}
	p.abort = true
	p.tok = _EOF
}

// FirstError returns the error that stopped the parse, or nil if none.
func (p *Parser) FirstError() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry points

// Parse parses: Program = Statement EOF.
func (p *Parser) Parse() *Program {
	prog := &Program{}
	prog.pos = p.pos
	prog.Body = p.statement()
	p.want(_EOF)
	return prog
}

// ParseTokens parses a complete lexeme stream.
func ParseTokens(lexemes []Lexeme) (*Program, error) {
	p := NewParser(lexemes, nil)
	prog := p.Parse()
	if err := p.FirstError(); err != nil {
		return nil, err
	}
	return prog, nil
}

// Parse tokenizes and parses src.
func Parse(filename, src string) (*Program, error) {
	lexemes, err := Tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(lexemes)
}

// ----------------------------------------------------------------------------
// Helper methods

// name parses an identifier and returns a Name node.
func (p *Parser) name() *Name {
	n := &Name{Value: "_"}
	n.pos = p.pos
	if p.tok != _Name {
		p.syntaxError("expected identifier, got " + p.describe())
		return n
	}
	n.Value = p.lit
	p.next()
	return n
}

// stmtList parses Statement { ',' Statement }.
func (p *Parser) stmtList() []Stmt {
	list := []Stmt{p.statement()}
	for p.got(_Comma) {
		list = append(list, p.statement())
	}
	return list
}

// ----------------------------------------------------------------------------
// Statements

// statement parses:
//
//	Statement = 'set' Ident 'to' Expr | 'change' Ident 'to' Expr
//	          | 'return' Statement | Block | If | Expr
func (p *Parser) statement() Stmt {
	switch p.tok {
	case _Set, _Change:
		return p.assignStmt()

	case _Return:
		s := &ReturnStmt{}
		s.pos = p.pos
		p.next()
		s.X = p.statement()
		return s

	case _Lbrace:
		return p.blockStmt()

	case _If:
		return p.ifStmt()

	default:
		x := p.expr()
		s := &ExprStmt{X: x}
		s.pos = x.pos
		return s
	}
}

// assignStmt parses 'set' Ident 'to' Expr or 'change' Ident 'to' Expr.
// Whether the name exists is checked at run time.
func (p *Parser) assignStmt() Stmt {
	s := &AssignStmt{Change: p.tok == _Change}
	s.pos = p.pos
	p.next() // consume set or change

	s.Name = p.name()
	p.want(_To)
	s.X = p.expr()
	return s
}

// blockStmt parses { Statement ; ... }
func (p *Parser) blockStmt() *BlockStmt {
	b := &BlockStmt{}
	b.pos = p.pos

	p.want(_Lbrace)
	for p.tok != _Rbrace && p.tok != _EOF {
		b.Stmts = append(b.Stmts, p.statement())
		p.want(_Semi)
	}

	b.Rbrace = p.pos
	p.want(_Rbrace)
	return b
}

// ifStmt parses:
//
//	'if' Statement 'then' Statement
//	{ 'else' 'if' Statement 'then' Statement } [ 'else' Statement ]
//
// A ';' immediately followed by 'else' belongs to the chain, so an if-chain
// may be written one arm per block line.
func (p *Parser) ifStmt() Stmt {
	s := &IfStmt{}
	s.pos = p.pos

	p.want(_If)
	s.Branches = append(s.Branches, p.condBranch(s.pos))

	for p.elseFollows() {
		pos := p.pos
		p.want(_Else)
		if p.got(_If) {
			s.Branches = append(s.Branches, p.condBranch(pos))
			continue
		}
		br := &IfBranch{}
		br.pos = pos
		br.Then = p.statement()
		s.Branches = append(s.Branches, br)
		break
	}
	return s
}

// condBranch parses Statement 'then' Statement.
func (p *Parser) condBranch(pos Pos) *IfBranch {
	br := &IfBranch{}
	br.pos = pos
	br.Cond = p.statement()
	p.want(_Then)
	br.Then = p.statement()
	return br
}

// elseFollows reports whether an else arm comes next, consuming a
// separating ';' if there is one.
func (p *Parser) elseFollows() bool {
	if p.tok == _Else {
		return true
	}
	if p.tok == _Semi && p.peek() == _Else {
		p.next()
		return true
	}
	return false
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses Term { ('+'|'-') Term } into a flat chain.
func (p *Parser) expr() *Expr {
	x := &Expr{}
	x.pos = p.pos
	x.Terms = append(x.Terms, p.term())

	for p.tok == _Add || p.tok == _Sub {
		x.Ops = append(x.Ops, p.tok)
		x.OpPos = append(x.OpPos, p.pos)
		p.next() // consume operator
		x.Terms = append(x.Terms, p.term())
	}
	return x
}

// term parses Factor { ('*'|'/') Factor } into a flat chain.
func (p *Parser) term() *Term {
	t := &Term{}
	t.pos = p.pos
	t.Factors = append(t.Factors, p.factor())

	for p.tok == _Mul || p.tok == _Div {
		t.Ops = append(t.Ops, p.tok)
		t.OpPos = append(t.OpPos, p.pos)
		p.next() // consume operator
		t.Factors = append(t.Factors, p.factor())
	}
	return t
}

// factor parses a primary followed by any number of call suffixes.
func (p *Parser) factor() Factor {
	f := p.primary()
	for !p.abort && p.tok == _Lparen {
		f = p.callSuffix(f)
	}
	return f
}

// primary parses:
//
//	Integer | String | 'true' | 'false' | Ident | '(' Statement ')' | Block
//	| 'call' Primary [ 'with' '(' Statement { ',' Statement } ')' ]
//	| 'func' [ 'takes' '(' Ident { ',' Ident } ')' ] Statement
func (p *Parser) primary() Factor {
	pos := p.pos

	switch p.tok {
	case _Integer:
		v, err := strconv.ParseInt(p.lit, 10, 32)
		if err != nil {
			p.syntaxError("integer literal " + p.lit + " out of range")
		}
		lit := &IntLit{Value: int32(v)}
		lit.pos = pos
		p.next()
		return lit

	case _String:
		// strip the delimiting quotes
		val := p.lit
		if len(val) >= 2 {
			val = val[1 : len(val)-1]
		}
		lit := &StringLit{Value: val}
		lit.pos = pos
		p.next()
		return lit

	case _True, _False:
		lit := &BoolLit{Value: p.tok == _True}
		lit.pos = pos
		p.next()
		return lit

	case _Name:
		return p.name()

	case _Lparen:
		p.next()
		s := p.statement()
		p.want(_Rparen)
		return stmtFactor(pos, s)

	case _Lbrace:
		return stmtFactor(pos, p.blockStmt())

	case _Call:
		return stmtFactor(pos, p.callStmt())

	case _Func:
		return stmtFactor(pos, p.funcDecl())

	default:
		p.syntaxError("expected operand, got " + p.describe())
		n := &Name{Value: "_"} // placeholder; the parse is already aborted
		n.pos = pos
		return n
	}
}

// callStmt parses 'call' Primary [ 'with' '(' Statement { ',' Statement } ')' ].
func (p *Parser) callStmt() *CallStmt {
	c := &CallStmt{}
	c.pos = p.pos

	p.want(_Call)
	c.Fun = asStmt(p.primary())

	if p.got(_With) {
		p.want(_Lparen)
		c.Args = p.stmtList()
		p.want(_Rparen)
	}
	return c
}

// callSuffix parses the argument list of fun(args...).
func (p *Parser) callSuffix(fun Factor) Factor {
	c := &CallStmt{Fun: asStmt(fun)}
	c.pos = fun.Pos()

	p.want(_Lparen)
	if p.tok != _Rparen {
		c.Args = p.stmtList()
	}
	p.want(_Rparen)
	return stmtFactor(c.pos, c)
}

// funcDecl parses 'func' [ 'takes' '(' Ident { ',' Ident } ')' ] Statement.
func (p *Parser) funcDecl() *FuncDecl {
	d := &FuncDecl{}
	d.pos = p.pos

	p.want(_Func)
	if p.got(_Takes) {
		p.want(_Lparen)
		seen := make(map[string]bool)
		for {
			n := p.name()
			if seen[n.Value] && !p.abort {
				p.syntaxErrorAt(n.pos, "duplicate parameter "+n.Value)
			}
			seen[n.Value] = true
			d.Params = append(d.Params, n)
			if !p.got(_Comma) {
				break
			}
		}
		p.want(_Rparen)
	}

	d.Body = p.statement()
	return d
}

// stmtFactor wraps s so it can be used as an operand.
func stmtFactor(pos Pos, s Stmt) *StmtFactor {
	f := &StmtFactor{S: s}
	f.pos = pos
	return f
}

// asStmt turns a factor back into a statement: wrapped statements are
// unwrapped, anything else becomes a one-operand expression statement.
func asStmt(f Factor) Stmt {
	if sf, ok := f.(*StmtFactor); ok {
		return sf.S
	}
	t := &Term{Factors: []Factor{f}}
	t.pos = f.Pos()
	x := &Expr{Terms: []*Term{t}}
	x.pos = f.Pos()
	s := &ExprStmt{X: x}
	s.pos = f.Pos()
	return s
}
