package bom

import "strings"

// Record is a component as seen by the BOM builder. *netlist.Component
// implements it.
type Record interface {
	Reference() string
	// Identity returns value, part name and footprint.
	Identity() (value, part, footprint string)
	FieldNames() []string
	FieldValue(name string) (string, bool)
}

// LibFielder is implemented by records that can fall back to fields of
// their library part.
type LibFielder interface {
	LibField(name string) (string, bool)
}

// Field names.
const (
	FieldDescription = "description"
	FieldMfg1        = "mfg1"
	FieldMfg1PN      = "mfg1pn"
	FieldMfg2        = "mfg2"
	FieldMfg2PN      = "mfg2pn"
	FieldExclude     = "exclude"
)

// HMTFields identify a manufacturer part. They take precedence over value,
// part name and footprint when deciding equivalence.
var HMTFields = []string{FieldDescription, FieldMfg1, FieldMfg1PN, FieldMfg2, FieldMfg2PN}

// Columns is the output schema.
var Columns = []string{"Qty", "Reference(s)", FieldDescription, FieldMfg1, FieldMfg1PN, FieldMfg2, FieldMfg2PN}

// Field returns the value of the field whose lowercased name equals the
// lowercased name argument. ok is false when no such field exists.
func Field(r Record, name string) (value string, ok bool) {
	want := strings.ToLower(name)
	for _, fn := range r.FieldNames() {
		if strings.ToLower(fn) == want {
			return r.FieldValue(fn)
		}
	}
	return "", false
}

// fieldOrLib reads a field from r, then from its library part, and returns
// "" when neither has it.
func fieldOrLib(r Record, name string) string {
	if v, ok := Field(r, name); ok {
		return v
	}
	return libField(r, name)
}

func libField(r Record, name string) string {
	if lf, ok := r.(LibFielder); ok {
		if v, ok := lf.LibField(name); ok {
			return v
		}
	}
	return ""
}
