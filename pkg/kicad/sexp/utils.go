// Package sexp provides navigation helpers over kicadsexp trees shared by the
// KiCad file readers.
package sexp

import (
	"fmt"

	"github.com/OpenTraceLab/kicad-bom/pkg/kicad/sexp/kicadsexp"
)

// Items returns the elements of a list node, or nil for atoms.
func Items(s kicadsexp.Sexp) []kicadsexp.Sexp {
	l, ok := s.(*kicadsexp.List)
	if !ok || l == nil {
		return nil
	}
	return l.Items()
}

// GetNodeName returns the leading symbol of a list, e.g. "comp" for (comp ...).
func GetNodeName(s kicadsexp.Sexp) (string, error) {
	items := Items(s)
	if len(items) == 0 {
		return "", fmt.Errorf("expected non-empty list, got %v", s)
	}
	sym, ok := items[0].(kicadsexp.Symbol)
	if !ok {
		return "", fmt.Errorf("expected symbol as node name, got %T", items[0])
	}
	return string(sym), nil
}

// FindNode searches for a child list whose first symbol is key.
// Example: FindNode(comp, "value") finds (value 10k) in a (comp ...) list.
func FindNode(s kicadsexp.Sexp, key string) (kicadsexp.Sexp, bool) {
	for _, item := range Items(s) {
		if name, err := GetNodeName(item); err == nil && name == key {
			return item, true
		}
	}
	return nil, false
}

// FindAllNodes finds all child lists whose first symbol is key.
func FindAllNodes(s kicadsexp.Sexp, key string) []kicadsexp.Sexp {
	var results []kicadsexp.Sexp
	for _, item := range Items(s) {
		if name, err := GetNodeName(item); err == nil && name == key {
			results = append(results, item)
		}
	}
	return results
}

// GetString extracts the atom at index in a list.
// Index 0 is the key, 1 is first value, etc.
func GetString(s kicadsexp.Sexp, index int) (string, error) {
	items := Items(s)
	if index < 0 || index >= len(items) {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, len(items))
	}
	sym, ok := items[index].(kicadsexp.Symbol)
	if !ok {
		return "", fmt.Errorf("expected symbol at index %d, got %T", index, items[index])
	}
	return string(sym), nil
}

// ChildValue returns the first value of the child node named key:
// ChildValue((comp (ref R1)), "ref") is "R1". Missing nodes yield ok=false.
func ChildValue(s kicadsexp.Sexp, key string) (string, bool) {
	node, found := FindNode(s, key)
	if !found {
		return "", false
	}
	v, err := GetString(node, 1)
	if err != nil {
		// (datasheet) with no value is an empty string, not a missing node.
		return "", true
	}
	return v, true
}
