package syntax

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{_EOF, "EOF"},
		{_Error, "ERROR"},
		{_Name, "NAME"},
		{_Integer, "INTEGER"},
		{_String, "STRING"},
		{_True, "true"},
		{_Add, "+"},
		{_Div, "/"},
		{_Lbrace, "{"},
		{_Semi, ";"},
		{_Change, "change"},
		{_To, "to"},
		{_With, "with"},
		{Token(999), "token(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("Token(%d).String() = %q, want %q", tt.tok, got, tt.want)
			}
		})
	}
}

func TestTokenNamesComplete(t *testing.T) {
	for tok := Token(0); tok < tokenCount; tok++ {
		if tokenNames[tok] == "" {
			t.Errorf("token %d has no name", tok)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	for word, tok := range keywords {
		if got := LookupKeyword(word); got != tok {
			t.Errorf("LookupKeyword(%q) = %s, want %s", word, got, tok)
		}
		if !tok.IsKeyword() {
			t.Errorf("%s.IsKeyword() = false", tok)
		}
		if tok.String() != word {
			t.Errorf("%s.String() = %q, want %q", tok, tok.String(), word)
		}
	}

	for _, word := range []string{"x", "print", "to_bool", "setting", "Set", "if-then"} {
		if got := LookupKeyword(word); got != _Name {
			t.Errorf("LookupKeyword(%q) = %s, want NAME", word, got)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	if !_Integer.IsLiteral() || !_String.IsLiteral() || !_False.IsLiteral() {
		t.Error("literal tokens should report IsLiteral")
	}
	if _Name.IsLiteral() {
		t.Error("NAME is not a literal")
	}
	for _, tok := range []Token{_Add, _Sub, _Mul, _Div} {
		if !tok.IsOperator() {
			t.Errorf("%s.IsOperator() = false", tok)
		}
	}
	if _Semi.IsOperator() {
		t.Error("; is not an operator")
	}
	if !_EOF.IsEOF() || _Name.IsEOF() {
		t.Error("IsEOF mismatch")
	}
}
