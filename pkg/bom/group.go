package bom

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// GroupMode selects how an item is admitted to a group.
type GroupMode int

const (
	// GroupBySeed admits an item equivalent to the group's first member.
	GroupBySeed GroupMode = iota
	// GroupStrict admits an item only if it is equivalent to every member.
	GroupStrict
)

func (m GroupMode) String() string {
	switch m {
	case GroupBySeed:
		return "seed"
	case GroupStrict:
		return "strict"
	default:
		return "GroupMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Group partitions items into groups of equivalent items. Groups appear in
// the order of their first member and members keep their input order.
// Every item lands in exactly one group.
func Group[T any](items []T, eq func(a, b T) bool, mode GroupMode) [][]T {
	grouped := make([]bool, len(items))
	var groups [][]T

	for i, seed := range items {
		if grouped[i] {
			continue
		}
		grouped[i] = true
		group := []T{seed}

		for j := i + 1; j < len(items); j++ {
			if grouped[j] {
				continue
			}
			if admits(group, items[j], eq, mode) {
				group = append(group, items[j])
				grouped[j] = true
			}
		}
		groups = append(groups, group)
	}

	return groups
}

func admits[T any](group []T, item T, eq func(a, b T) bool, mode GroupMode) bool {
	if mode != GroupStrict {
		return eq(group[0], item)
	}
	for _, member := range group {
		if !eq(member, item) {
			return false
		}
	}
	return true
}

// SortGroups orders the members of each group by reference designator and
// then the groups by their first reference. R2 sorts before R10.
func SortGroups[T Record](groups [][]T) {
	for _, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return LessRef(g[i].Reference(), g[j].Reference())
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if len(groups[i]) == 0 || len(groups[j]) == 0 {
			return len(groups[i]) > len(groups[j])
		}
		return LessRef(groups[i][0].Reference(), groups[j][0].Reference())
	})
}

// LessRef compares reference designators by prefix, then numerically by the
// trailing number.
func LessRef(a, b string) bool {
	ap, an, aok := splitRef(a)
	bp, bn, bok := splitRef(b)
	if ap != bp {
		return ap < bp
	}
	if aok && bok && an != bn {
		return an < bn
	}
	if aok != bok {
		return !aok
	}
	return a < b
}

// splitRef splits "R10" into "R", 10.
func splitRef(ref string) (prefix string, num int, ok bool) {
	i := strings.LastIndexFunc(ref, func(r rune) bool { return !unicode.IsDigit(r) })
	digits := ref[i+1:]
	if digits == "" {
		return ref, 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return ref, 0, false
	}
	return ref[:i+1], n, true
}
