// Package scope implements the lexical scope chain for the Monkey
// evaluator. A Scope maps names to values and points at its enclosing
// scope; lookups walk the chain outward while bindings always land in
// the innermost frame. Function values hold a shared reference to the
// scope they were defined in, which is what makes closures work.
package scope

import "github.com/monkeylang/gomonkey/objects"

// Scope defines one frame of the lexical scope chain.
//
// The chain is traversed from child to parent during lookup, giving the
// usual shadowing behavior: an inner binding of a name hides the outer
// one without touching it. Parent is nil for the root scope owned by
// the REPL session (or a file run).
type Scope struct {
	// Variables maps names to their current values in this frame
	Variables map[string]objects.MonkeyObject

	// Parent points to the enclosing scope; nil for the root scope
	Parent *Scope
}

// NewScope creates a Scope with the given parent. Pass nil for a root
// scope. The new frame starts empty but sees every binding of its
// ancestors through LookUp.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.MonkeyObject),
		Parent:    parent,
	}
}

// LookUp searches for a name in this frame and then recursively in the
// parents. The innermost binding wins.
//
// Returns the bound value and true, or nil and false when the name is
// bound nowhere in the chain.
func (s *Scope) LookUp(varName string) (objects.MonkeyObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		obj, ok = s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind creates or replaces a binding in THIS frame only. Parent frames
// are never touched, so binding a name that exists outside shadows it.
// A let statement always binds through the innermost frame.
func (s *Scope) Bind(varName string, obj objects.MonkeyObject) {
	s.Variables[varName] = obj
}
