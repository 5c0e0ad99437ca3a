package netlist

import "strings"

// Field is one named user field on a component or library part.
type Field struct {
	Name  string
	Value string
}

// LibPart is the library symbol a component was instantiated from.
type LibPart struct {
	Lib         string
	Part        string
	Description string
	Footprints  []string
	Fields      []Field
}

// Component is one placed symbol in the design.
type Component struct {
	Ref         string
	Value       string
	Footprint   string
	Datasheet   string
	Description string

	// Library source (libsource lib/part).
	Lib  string
	Part string

	// Sheet path names, e.g. "/Power/".
	Sheet string

	// User fields in file order.
	Fields []Field

	// Properties such as exclude_from_bom and dnp (KiCad 7+).
	Properties []Field

	// LibPart is resolved after loading; nil when the export has no libparts
	// section or the symbol is missing from it.
	LibPart *LibPart
}

// Netlist is a loaded netlist export.
type Netlist struct {
	Version    string
	Source     string
	Date       string
	Tool       string
	Components []*Component
	LibParts   []*LibPart
}

// Reference returns the reference designator.
func (c *Component) Reference() string {
	return c.Ref
}

// Identity returns the value, part name and footprint triple used to compare
// components that carry no manufacturer fields.
func (c *Component) Identity() (value, part, footprint string) {
	return c.Value, c.Part, c.Footprint
}

// FieldNames returns the user field names in file order.
func (c *Component) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}

// FieldValue looks up a user field by its exact name.
func (c *Component) FieldValue(name string) (string, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// LibField looks up a field on the component's library part, ignoring case.
func (c *Component) LibField(name string) (string, bool) {
	if c.LibPart == nil {
		return "", false
	}
	if strings.EqualFold(name, "description") && c.LibPart.Description != "" {
		return c.LibPart.Description, true
	}
	for _, f := range c.LibPart.Fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// HasProperty reports whether the component carries the named property.
func (c *Component) HasProperty(name string) bool {
	for _, p := range c.Properties {
		if p.Name == name {
			return true
		}
	}
	return false
}

// FindLibPart returns the library part for lib/part, or nil.
func (n *Netlist) FindLibPart(lib, part string) *LibPart {
	for _, lp := range n.LibParts {
		if lp.Lib == lib && lp.Part == part {
			return lp
		}
	}
	return nil
}

// resolveLibParts links every component to its library part.
func (n *Netlist) resolveLibParts() {
	for _, c := range n.Components {
		c.LibPart = n.FindLibPart(c.Lib, c.Part)
	}
}
