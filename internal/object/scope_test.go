package object

import (
	"strings"
	"testing"
)

func TestScopeDefineAndLookup(t *testing.T) {
	s := NewRootScope(nil)
	s.Define("x", Integer(1))

	v, ok := s.Lookup("x")
	if !ok || v != Integer(1) {
		t.Errorf("Lookup(x) = %v, %v; want 1, true", v, ok)
	}

	// Define in the same frame overwrites.
	s.Define("x", String("two"))
	if v, _ := s.Lookup("x"); v != String("two") {
		t.Errorf("Lookup(x) after redefine = %v, want \"two\"", v)
	}

	if _, ok := s.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestScopeShadowing(t *testing.T) {
	s := NewRootScope(nil)
	s.Define("x", Integer(1))

	s.Push()
	s.Define("x", Integer(2))
	if v, _ := s.Lookup("x"); v != Integer(2) {
		t.Errorf("inner x = %v, want 2", v)
	}

	if err := s.Pop(); err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if v, _ := s.Lookup("x"); v != Integer(1) {
		t.Errorf("outer x after pop = %v, want 1", v)
	}
}

func TestScopeLookupOuter(t *testing.T) {
	s := NewRootScope(nil)
	s.Define("x", Integer(1))
	s.Push()
	s.Push()

	if v, ok := s.Lookup("x"); !ok || v != Integer(1) {
		t.Errorf("Lookup(x) from depth %d = %v, %v", s.Depth(), v, ok)
	}
	if names := s.Names(); len(names) != 0 {
		t.Errorf("innermost frame names = %v, want none", names)
	}
}

func TestScopeReassign(t *testing.T) {
	s := NewRootScope(nil)
	s.Define("x", Integer(1))
	s.Push()
	s.Define("y", Integer(10))

	// Reassign walks outward to the defining frame.
	if !s.Reassign("x", Integer(5)) {
		t.Fatal("Reassign(x) failed")
	}
	if names := s.Names(); len(names) != 1 || names[0] != "y" {
		t.Errorf("Reassign must not define in the current frame, names = %v", names)
	}
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Lookup("x"); v != Integer(5) {
		t.Errorf("x = %v, want 5", v)
	}

	if s.Reassign("z", Integer(1)) {
		t.Error("Reassign of an undefined name should fail")
	}
	if _, ok := s.Lookup("z"); ok {
		t.Error("failed Reassign must not bind the name")
	}
}

func TestScopeReassignNearest(t *testing.T) {
	s := NewRootScope(nil)
	s.Define("x", Integer(1))
	s.Push()
	s.Define("x", Integer(2))
	s.Reassign("x", Integer(3))
	s.Pop()

	if v, _ := s.Lookup("x"); v != Integer(1) {
		t.Errorf("outer x = %v, want 1 (only the nearest binding changes)", v)
	}
}

func TestScopePopRoot(t *testing.T) {
	s := NewRootScope(nil)
	err := s.Pop()
	if !IsKind(err, ErrScope) {
		t.Errorf("Pop on root = %v, want scope error", err)
	}
	if s.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", s.Depth())
	}
}

func TestScopeDepth(t *testing.T) {
	s := NewRootScope(nil)
	for i := 0; i < 5; i++ {
		s.Push()
	}
	if s.Depth() != 6 {
		t.Errorf("Depth = %d, want 6", s.Depth())
	}
	for i := 0; i < 5; i++ {
		if err := s.Pop(); err != nil {
			t.Fatalf("Pop %d: %v", i, err)
		}
	}
	if s.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", s.Depth())
	}
}

func TestRootScopeNatives(t *testing.T) {
	s := NewRootScope(DefaultNatives())

	for _, name := range []string{"print", "to_bool"} {
		v, ok := s.Lookup(name)
		if !ok {
			t.Errorf("native %s not in root frame", name)
			continue
		}
		if v.Kind() != NativeKind {
			t.Errorf("%s kind = %s, want NativeFunction", name, v.Kind())
		}
	}

	// Natives may be shadowed and reassigned like any binding.
	s.Push()
	s.Define("print", Integer(0))
	if v, _ := s.Lookup("print"); v != Integer(0) {
		t.Errorf("shadowed print = %v", v)
	}
}

func TestScopeString(t *testing.T) {
	s := NewRootScope(DefaultNatives())
	s.Push()
	s.Define("x", String("hi"))

	str := s.String()
	for _, want := range []string{"frame 1 (block)", `x: "hi"`, "frame 0 (root)", "print: <native print>"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() missing %q:\n%s", want, str)
		}
	}
}
