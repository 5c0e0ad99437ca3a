package netlist

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

type xmlExport struct {
	XMLName    xml.Name     `xml:"export"`
	Version    string       `xml:"version,attr"`
	Design     xmlDesign    `xml:"design"`
	Components []xmlComp    `xml:"components>comp"`
	LibParts   []xmlLibPart `xml:"libparts>libpart"`
}

type xmlDesign struct {
	Source string `xml:"source"`
	Date   string `xml:"date"`
	Tool   string `xml:"tool"`
}

type xmlComp struct {
	Ref         string        `xml:"ref,attr"`
	Value       string        `xml:"value"`
	Footprint   string        `xml:"footprint"`
	Datasheet   string        `xml:"datasheet"`
	Description string        `xml:"description"`
	Fields      []xmlField    `xml:"fields>field"`
	LibSource   xmlLibSource  `xml:"libsource"`
	SheetPath   xmlSheetPath  `xml:"sheetpath"`
	Properties  []xmlProperty `xml:"property"`
}

type xmlField struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlLibSource struct {
	Lib         string `xml:"lib,attr"`
	Part        string `xml:"part,attr"`
	Description string `xml:"description,attr"`
}

type xmlSheetPath struct {
	Names string `xml:"names,attr"`
}

type xmlProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

type xmlLibPart struct {
	Lib         string     `xml:"lib,attr"`
	Part        string     `xml:"part,attr"`
	Description string     `xml:"description"`
	Footprints  []string   `xml:"footprints>fp"`
	Fields      []xmlField `xml:"fields>field"`
}

// ParseXML reads a KiCad generic XML netlist.
func ParseXML(r io.Reader) (*Netlist, error) {
	var doc xmlExport
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode XML netlist: %w", err)
	}

	nl := &Netlist{
		Version: doc.Version,
		Source:  doc.Design.Source,
		Date:    doc.Design.Date,
		Tool:    doc.Design.Tool,
	}

	for _, xc := range doc.Components {
		if xc.Ref == "" {
			return nil, fmt.Errorf("component without ref attribute")
		}
		c := &Component{
			Ref:         xc.Ref,
			Value:       strings.TrimSpace(xc.Value),
			Footprint:   strings.TrimSpace(xc.Footprint),
			Datasheet:   strings.TrimSpace(xc.Datasheet),
			Description: strings.TrimSpace(xc.Description),
			Lib:         xc.LibSource.Lib,
			Part:        xc.LibSource.Part,
			Sheet:       xc.SheetPath.Names,
			Fields:      convertXMLFields(xc.Fields),
		}
		if c.Description == "" {
			c.Description = xc.LibSource.Description
		}
		for _, p := range xc.Properties {
			c.Properties = append(c.Properties, Field{Name: p.Name, Value: p.Value})
		}
		nl.Components = append(nl.Components, c)
	}

	for _, xl := range doc.LibParts {
		nl.LibParts = append(nl.LibParts, &LibPart{
			Lib:         xl.Lib,
			Part:        xl.Part,
			Description: strings.TrimSpace(xl.Description),
			Footprints:  xl.Footprints,
			Fields:      convertXMLFields(xl.Fields),
		})
	}

	nl.resolveLibParts()
	return nl, nil
}

func convertXMLFields(in []xmlField) []Field {
	if len(in) == 0 {
		return nil
	}
	out := make([]Field, len(in))
	for i, f := range in {
		out[i] = Field{Name: f.Name, Value: f.Value}
	}
	return out
}
