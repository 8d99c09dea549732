package object

import (
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Integer(1), "Integer"},
		{String("s"), "String"},
		{Boolean(true), "Boolean"},
		{NullValue, "Null"},
		{&NativeFunction{Name: "print"}, "NativeFunction"},
		{&Function{}, "Function"},
	}
	for _, tt := range tests {
		if got := tt.v.Kind().String(); got != tt.want {
			t.Errorf("%T kind = %s, want %s", tt.v, got, tt.want)
		}
	}
	if got := Kind(42).String(); got != "kind(42)" {
		t.Errorf("unknown kind = %s", got)
	}
}

func TestInspect(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Integer(-7), "-7"},
		{String("a\"b"), `"a\"b"`},
		{Boolean(false), "false"},
		{NullValue, "null"},
		{&NativeFunction{Name: "to_bool"}, "<native to_bool>"},
		{&Function{Params: []string{"a", "b"}}, "<func(a, b)>"},
		{&Function{}, "<func()>"},
	}
	for _, tt := range tests {
		if got := tt.v.Inspect(); got != tt.want {
			t.Errorf("Inspect(%#v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		v    Value
		want string
		ok   bool
	}{
		{Integer(2147483647), "2147483647", true},
		{String("raw text"), "raw text", true},
		{String(""), "", true},
		{Boolean(true), "true", true},
		{NullValue, "", false},
		{&Function{}, "", false},
		{&NativeFunction{Name: "print"}, "", false},
	}
	for _, tt := range tests {
		got, ok := Text(tt.v)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Text(%s) = %q, %v; want %q, %v", tt.v.Inspect(), got, ok, tt.want, tt.ok)
		}
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Boolean(true), true},
		{Boolean(false), false},
		{Integer(0), false},
		{Integer(-1), true},
		{Integer(7), true},
		{String(""), false},
		{String("0"), true},
	}
	for _, tt := range tests {
		got, err := Truthy(tt.v)
		if err != nil {
			t.Errorf("Truthy(%s): %v", tt.v.Inspect(), err)
			continue
		}
		if got != tt.want {
			t.Errorf("Truthy(%s) = %v, want %v", tt.v.Inspect(), got, tt.want)
		}
	}
}

func TestTruthyNotConvertible(t *testing.T) {
	for _, v := range []Value{NullValue, &Function{}, &NativeFunction{Name: "print"}} {
		_, err := Truthy(v)
		if !IsKind(err, ErrType) {
			t.Errorf("Truthy(%s) = %v, want type mismatch", v.Inspect(), err)
		}
	}
}
