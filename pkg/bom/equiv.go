package bom

import "strings"

// EquivalentByHMT compares a and b on the union of the HMT fields either of
// them carries. decided is false when neither carries any, in which case
// equal is meaningless. A field missing on one side never equals a field
// present on the other, even if the present value is empty.
func EquivalentByHMT(a, b Record) (equal, decided bool) {
	names := hmtFieldNames(a)
	for name := range hmtFieldNames(b) {
		names[name] = struct{}{}
	}
	if len(names) == 0 {
		return false, false
	}

	for name := range names {
		av, aok := Field(a, name)
		bv, bok := Field(b, name)
		if aok != bok || av != bv {
			return false, true
		}
	}
	return true, true
}

// Equivalent reports whether a and b belong on the same BOM row.
func Equivalent(a, b Record) bool {
	if equal, decided := EquivalentByHMT(a, b); decided {
		return equal
	}
	av, ap, af := a.Identity()
	bv, bp, bf := b.Identity()
	return av == bv && ap == bp && af == bf
}

// hmtFieldNames returns the case-folded HMT field names present on r.
func hmtFieldNames(r Record) map[string]struct{} {
	out := make(map[string]struct{})
	for _, fn := range r.FieldNames() {
		lower := strings.ToLower(fn)
		for _, h := range HMTFields {
			if lower == h {
				out[lower] = struct{}{}
				break
			}
		}
	}
	return out
}
