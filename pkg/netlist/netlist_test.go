package netlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// checkSample verifies the contents shared by testdata/sample.xml and
// testdata/sample.net.
func checkSample(t *testing.T, nl *Netlist) {
	t.Helper()

	if nl.Version != "E" {
		t.Errorf("Expected version 'E', got '%s'", nl.Version)
	}
	if nl.Tool != "Eeschema 8.0.1" {
		t.Errorf("Expected tool 'Eeschema 8.0.1', got '%s'", nl.Tool)
	}
	if len(nl.Components) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(nl.Components))
	}
	if len(nl.LibParts) != 1 {
		t.Fatalf("Expected 1 libpart, got %d", len(nl.LibParts))
	}

	r1 := nl.Components[0]
	if r1.Ref != "R1" || r1.Value != "10k" || r1.Footprint != "Resistor_SMD:R_0603_1608Metric" {
		t.Errorf("Unexpected R1: %+v", r1)
	}
	if r1.Lib != "Device" || r1.Part != "R" {
		t.Errorf("Unexpected R1 libsource %s:%s", r1.Lib, r1.Part)
	}
	if r1.Description != "Resistor" {
		t.Errorf("Expected description from libsource, got '%s'", r1.Description)
	}
	if r1.LibPart == nil {
		t.Fatal("R1 libpart not resolved")
	}
	if v, ok := r1.LibField("MFG1"); !ok || v != "Yageo" {
		t.Errorf("LibField(MFG1) = %q, %v", v, ok)
	}
	if len(r1.Fields) != 0 {
		t.Errorf("Expected no user fields on R1, got %v", r1.Fields)
	}

	c1 := nl.Components[1]
	if c1.Sheet != "/Power/" {
		t.Errorf("Expected sheet '/Power/', got '%s'", c1.Sheet)
	}
	names := c1.FieldNames()
	if len(names) != 2 || names[0] != "MFG1" || names[1] != "mfg1pn" {
		t.Errorf("Unexpected C1 field names %v", names)
	}
	if v, ok := c1.FieldValue("MFG1"); !ok || v != "Murata" {
		t.Errorf("FieldValue(MFG1) = %q, %v", v, ok)
	}
	if _, ok := c1.FieldValue("mfg1"); ok {
		t.Error("FieldValue should be case-sensitive")
	}
	if !c1.HasProperty("dnp") {
		t.Error("Expected C1 to carry the dnp property")
	}
	if c1.LibPart != nil {
		t.Error("C1 has no libpart in the export, expected nil")
	}
	if _, ok := c1.LibField("mfg1"); ok {
		t.Error("LibField without libpart should report absence")
	}
}

func TestParseXML(t *testing.T) {
	nl, err := LoadFile(filepath.Join("testdata", "sample.xml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	checkSample(t, nl)
}

func TestParseSexp(t *testing.T) {
	nl, err := LoadFile(filepath.Join("testdata", "sample.net"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	checkSample(t, nl)
}

func TestLoadSniffsFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantN   int
	}{
		{name: "xml with bom and blanks", input: "\xEF\xBB\xBF \n<export><components><comp ref=\"R1\"/></components></export>", wantN: 1},
		{name: "sexp with blanks", input: "\n\t(export (components (comp (ref R1)) (comp (ref R2))))", wantN: 2},
		{name: "empty", input: "   ", wantErr: ErrUnknownFormat},
		{name: "json", input: `{"components": []}`, wantErr: ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nl, err := Load(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(nl.Components) != tt.wantN {
				t.Errorf("Expected %d components, got %d", tt.wantN, len(nl.Components))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "wrong sexp root", input: "(kicad_sch (version 1))"},
		{name: "sexp comp without ref", input: "(export (components (comp (value 1k))))"},
		{name: "broken sexp", input: "(export (components"},
		{name: "broken xml", input: "<export><components>"},
		{name: "xml comp without ref", input: "<export><components><comp><value>1k</value></comp></components></export>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.xml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
