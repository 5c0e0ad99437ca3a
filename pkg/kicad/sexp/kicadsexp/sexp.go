// Package kicadsexp is a small streaming S-expression reader for KiCad
// files such as the legacy `.net` netlist export.
package kicadsexp

import (
	"io"
	"strings"
)

// Sexp is a node: either an atom (Symbol) or a *List.
type Sexp interface {
	IsLeaf() bool
	String() string
}

// Symbol is an atom. Quoted strings and bare identifiers both become symbols.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// List is a parenthesised sequence of nodes.
type List struct {
	elements []Sexp
}

// NewList builds a list from the given nodes.
func NewList(elems ...Sexp) *List {
	return &List{elements: elems}
}

func (l *List) IsLeaf() bool { return false }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, elem := range l.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(elem.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at index, or nil when out of range.
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.elements)
}

// Items returns the list elements. The slice must not be modified.
func (l *List) Items() []Sexp {
	return l.elements
}

// Parse reads every top-level expression from r.
func Parse(r io.Reader) ([]Sexp, error) {
	return NewParser(r).ParseAll()
}

// ParseString is Parse for in-memory input.
func ParseString(s string) ([]Sexp, error) {
	return Parse(strings.NewReader(s))
}
