package object

import (
	"fmt"
	"sort"
	"strings"

	"github.com/edwingeng/deque"
)

// frame holds the bindings of one scope level.
type frame map[string]Value

// Scope is the chain of frames a program runs against, kept as a stack.
// The bottom frame is the root: it is seeded from a native table and is
// never popped. Lookups search from the innermost frame outward.
type Scope struct {
	frames deque.Deque // of frame; back is the innermost
}

// NewRootScope creates a scope holding only the root frame, populated with
// the functions in natives.
func NewRootScope(natives *Natives) *Scope {
	root := make(frame)
	if natives != nil {
		for name, f := range natives.procs {
			root[name] = f
		}
	}
	s := &Scope{frames: deque.NewDeque()}
	s.frames.PushBack(root)
	return s
}

// Push enters a new, empty frame.
func (s *Scope) Push() {
	s.frames.PushBack(make(frame))
}

// Pop discards the innermost frame. Popping the root is an error.
func (s *Scope) Pop() error {
	if s.frames.Len() <= 1 {
		return Errorf(ErrScope, "cannot pop the root frame")
	}
	s.frames.PopBack()
	return nil
}

// Depth returns the number of frames, including the root.
func (s *Scope) Depth() int {
	return s.frames.Len()
}

// current returns the innermost frame.
func (s *Scope) current() frame {
	return s.frames.Back().(frame)
}

// at returns the frame at depth i, 0 being the root.
func (s *Scope) at(i int) frame {
	return s.frames.Peek(i).(frame)
}

// Define binds name in the innermost frame, overwriting a binding of the
// same name in that frame.
func (s *Scope) Define(name string, v Value) {
	s.current()[name] = v
}

// Reassign overwrites the binding of name in the nearest frame defining it.
// It reports false if no frame does.
func (s *Scope) Reassign(name string, v Value) bool {
	for i := s.frames.Len() - 1; i >= 0; i-- {
		f := s.at(i)
		if _, ok := f[name]; ok {
			f[name] = v
			return true
		}
	}
	return false
}

// Lookup returns the value bound to name in the nearest frame defining it.
func (s *Scope) Lookup(name string) (Value, bool) {
	for i := s.frames.Len() - 1; i >= 0; i-- {
		if v, ok := s.at(i)[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Names returns the names bound in the innermost frame, sorted.
func (s *Scope) Names() []string {
	cur := s.current()
	names := make([]string, 0, len(cur))
	for name := range cur {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a string representation of the scope for debugging,
// innermost frame first.
func (s *Scope) String() string {
	var buf strings.Builder
	for i := s.frames.Len() - 1; i >= 0; i-- {
		f := s.at(i)
		names := make([]string, 0, len(f))
		for name := range f {
			names = append(names, name)
		}
		sort.Strings(names)

		label := "block"
		if i == 0 {
			label = "root"
		}
		fmt.Fprintf(&buf, "frame %d (%s) {\n", i, label)
		for _, name := range names {
			fmt.Fprintf(&buf, "  %s: %s\n", name, f[name].Inspect())
		}
		buf.WriteString("}\n")
	}
	return buf.String()
}
