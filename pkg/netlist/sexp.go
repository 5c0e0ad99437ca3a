package netlist

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/kicad-bom/pkg/kicad/sexp"
	"github.com/OpenTraceLab/kicad-bom/pkg/kicad/sexp/kicadsexp"
)

// ParseSexp reads a KiCad s-expression (.net) netlist.
func ParseSexp(r io.Reader) (*Netlist, error) {
	sexps, err := kicadsexp.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}

	if len(sexps) == 0 {
		return nil, fmt.Errorf("empty file or no valid s-expressions found")
	}

	root := sexps[0]
	rootName, err := sexp.GetNodeName(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get root node name: %w", err)
	}
	if rootName != "export" {
		return nil, fmt.Errorf("not a KiCad netlist: expected 'export', got '%s'", rootName)
	}

	nl := &Netlist{}
	nl.Version, _ = sexp.ChildValue(root, "version")

	if design, found := sexp.FindNode(root, "design"); found {
		nl.Source, _ = sexp.ChildValue(design, "source")
		nl.Date, _ = sexp.ChildValue(design, "date")
		nl.Tool, _ = sexp.ChildValue(design, "tool")
	}

	if comps, found := sexp.FindNode(root, "components"); found {
		for _, node := range sexp.FindAllNodes(comps, "comp") {
			c, err := parseComp(node)
			if err != nil {
				return nil, err
			}
			nl.Components = append(nl.Components, c)
		}
	}

	if libparts, found := sexp.FindNode(root, "libparts"); found {
		for _, node := range sexp.FindAllNodes(libparts, "libpart") {
			nl.LibParts = append(nl.LibParts, parseLibPart(node))
		}
	}

	nl.resolveLibParts()
	return nl, nil
}

func parseComp(node kicadsexp.Sexp) (*Component, error) {
	ref, ok := sexp.ChildValue(node, "ref")
	if !ok || ref == "" {
		return nil, fmt.Errorf("component without ref: %s", node)
	}

	c := &Component{Ref: ref}
	c.Value, _ = sexp.ChildValue(node, "value")
	c.Footprint, _ = sexp.ChildValue(node, "footprint")
	c.Datasheet, _ = sexp.ChildValue(node, "datasheet")
	c.Description, _ = sexp.ChildValue(node, "description")

	if src, found := sexp.FindNode(node, "libsource"); found {
		c.Lib, _ = sexp.ChildValue(src, "lib")
		c.Part, _ = sexp.ChildValue(src, "part")
		if c.Description == "" {
			c.Description, _ = sexp.ChildValue(src, "description")
		}
	}

	if sheet, found := sexp.FindNode(node, "sheetpath"); found {
		c.Sheet, _ = sexp.ChildValue(sheet, "names")
	}

	if fields, found := sexp.FindNode(node, "fields"); found {
		c.Fields = parseFields(fields)
	}

	for _, prop := range sexp.FindAllNodes(node, "property") {
		name, _ := sexp.ChildValue(prop, "name")
		value, _ := sexp.ChildValue(prop, "value")
		c.Properties = append(c.Properties, Field{Name: name, Value: value})
	}

	return c, nil
}

func parseLibPart(node kicadsexp.Sexp) *LibPart {
	lp := &LibPart{}
	lp.Lib, _ = sexp.ChildValue(node, "lib")
	lp.Part, _ = sexp.ChildValue(node, "part")
	lp.Description, _ = sexp.ChildValue(node, "description")

	if fps, found := sexp.FindNode(node, "footprints"); found {
		for _, fp := range sexp.FindAllNodes(fps, "fp") {
			if v, err := sexp.GetString(fp, 1); err == nil {
				lp.Footprints = append(lp.Footprints, v)
			}
		}
	}

	if fields, found := sexp.FindNode(node, "fields"); found {
		lp.Fields = parseFields(fields)
	}
	return lp
}

// parseFields reads (fields (field (name "mfg1") "Yageo") ...). A field
// with no value atom has an empty value.
func parseFields(node kicadsexp.Sexp) []Field {
	var out []Field
	for _, f := range sexp.FindAllNodes(node, "field") {
		name, _ := sexp.ChildValue(f, "name")
		value, _ := sexp.GetString(f, 2)
		out = append(out, Field{Name: name, Value: value})
	}
	return out
}
