package bom

import (
	"fmt"
	"strconv"
	"strings"
)

// Representative selects which group member supplies the field columns.
type Representative int

const (
	// RepresentativeLast reads fields from the last member of the group.
	RepresentativeLast Representative = iota
	// RepresentativeFirst reads fields from the first member.
	RepresentativeFirst
	// RepresentativeFirstNonEmpty takes, per column, the first non-empty
	// value found on any member.
	RepresentativeFirstNonEmpty
)

func (r Representative) String() string {
	switch r {
	case RepresentativeLast:
		return "last"
	case RepresentativeFirst:
		return "first"
	case RepresentativeFirstNonEmpty:
		return "nonempty"
	default:
		return "Representative(" + strconv.Itoa(int(r)) + ")"
	}
}

// ParseRepresentative parses the String form of a Representative.
func ParseRepresentative(s string) (Representative, error) {
	switch strings.ToLower(s) {
	case "", "last":
		return RepresentativeLast, nil
	case "first":
		return RepresentativeFirst, nil
	case "nonempty", "first-nonempty":
		return RepresentativeFirstNonEmpty, nil
	default:
		return 0, fmt.Errorf("unknown representative %q (want last, first or nonempty)", s)
	}
}

// BuildRow renders a group as a row in Columns order: the quantity, the
// references joined by ", " and then each field column.
func BuildRow[T Record](group []T, rep Representative) []string {
	refs := make([]string, len(group))
	for i, r := range group {
		refs[i] = r.Reference()
	}

	row := make([]string, 0, len(Columns))
	row = append(row, strconv.Itoa(len(group)), strings.Join(refs, ", "))
	for _, col := range Columns[2:] {
		row = append(row, groupField(group, col, rep))
	}
	return row
}

func groupField[T Record](group []T, name string, rep Representative) string {
	if len(group) == 0 {
		return ""
	}
	switch rep {
	case RepresentativeFirst:
		return fieldOrLib(group[0], name)
	case RepresentativeFirstNonEmpty:
		for _, r := range group {
			if v, ok := Field(r, name); ok && v != "" {
				return v
			}
		}
		return libField(group[len(group)-1], name)
	default:
		return fieldOrLib(group[len(group)-1], name)
	}
}
