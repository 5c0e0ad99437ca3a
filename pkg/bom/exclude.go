package bom

// FilterExcluded returns the records without an "exclude" field. The
// field's value does not matter; an empty one still excludes.
func FilterExcluded[T Record](records []T) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if _, excluded := Field(r, FieldExclude); !excluded {
			out = append(out, r)
		}
	}
	return out
}
