package bom

// rec is a minimal Record used across the package tests.
type rec struct {
	ref       string
	value     string
	part      string
	footprint string
	fields    []kv
	lib       map[string]string
}

type kv struct{ name, value string }

func (r *rec) Reference() string { return r.ref }

func (r *rec) Identity() (string, string, string) { return r.value, r.part, r.footprint }

func (r *rec) FieldNames() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.name
	}
	return names
}

func (r *rec) FieldValue(name string) (string, bool) {
	for _, f := range r.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return "", false
}

func (r *rec) LibField(name string) (string, bool) {
	v, ok := r.lib[name]
	return v, ok
}

// plain hides LibField so fallbacks can be tested without a library part.
type plain struct{ r *rec }

func (p plain) Reference() string { return p.r.Reference() }
func (p plain) Identity() (string, string, string) { return p.r.Identity() }
func (p plain) FieldNames() []string { return p.r.FieldNames() }
func (p plain) FieldValue(name string) (string, bool) { return p.r.FieldValue(name) }

func refs[T Record](group []T) []string {
	out := make([]string, len(group))
	for i, r := range group {
		out[i] = r.Reference()
	}
	return out
}
