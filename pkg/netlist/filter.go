package netlist

import (
	"fmt"
	"regexp"
)

// FilterConfig lists the patterns that make a component uninteresting for a
// BOM. Each pattern is matched against the start of the text.
type FilterConfig struct {
	ExcludedRefs       []string `yaml:"excluded_refs"`
	ExcludedValues     []string `yaml:"excluded_values"`
	ExcludedFootprints []string `yaml:"excluded_footprints"`
	ExcludedFields     []string `yaml:"excluded_fields"` // drop components carrying a matching field name

	SkipExcludedFromBOM bool `yaml:"skip_excluded_from_bom"` // honor the exclude_from_bom property
	SkipDNP             bool `yaml:"skip_dnp"`               // honor the dnp property
}

// DefaultFilterConfig returns the patterns Eeschema's bundled BOM scripts use.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		ExcludedRefs: []string{
			"#.*",      // #PWR, #FLG, ...
			"TP[0-9]+", // test points
		},
		ExcludedValues: []string{
			"MOUNTHOLE",
			"SCOPETEST",
			"MOUNT_HOLE",
			"SOLDER_BRIDGE.*",
		},
	}
}

// Filter selects the components that belong in a BOM.
type Filter struct {
	refs       []*regexp.Regexp
	values     []*regexp.Regexp
	footprints []*regexp.Regexp
	fields     []*regexp.Regexp

	skipExcludedFromBOM bool
	skipDNP             bool
}

// NewFilter compiles the patterns in cfg.
func NewFilter(cfg FilterConfig) (*Filter, error) {
	f := &Filter{
		skipExcludedFromBOM: cfg.SkipExcludedFromBOM,
		skipDNP:             cfg.SkipDNP,
	}

	var err error
	if f.refs, err = compileAll("excluded_refs", cfg.ExcludedRefs); err != nil {
		return nil, err
	}
	if f.values, err = compileAll("excluded_values", cfg.ExcludedValues); err != nil {
		return nil, err
	}
	if f.footprints, err = compileAll("excluded_footprints", cfg.ExcludedFootprints); err != nil {
		return nil, err
	}
	if f.fields, err = compileAll("excluded_fields", cfg.ExcludedFields); err != nil {
		return nil, err
	}
	return f, nil
}

func compileAll(what string, patterns []string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile("^(?:" + p + ")")
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", what, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// Interesting reports whether c should appear in a BOM.
func (f *Filter) Interesting(c *Component) bool {
	if f.skipExcludedFromBOM && c.HasProperty("exclude_from_bom") {
		return false
	}
	if f.skipDNP && c.HasProperty("dnp") {
		return false
	}
	if matchAny(f.refs, c.Ref) || matchAny(f.values, c.Value) || matchAny(f.footprints, c.Footprint) {
		return false
	}
	for _, field := range c.Fields {
		if matchAny(f.fields, field.Name) {
			return false
		}
	}
	return true
}

func matchAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// InterestingComponents returns the components accepted by f, in netlist
// order. A nil filter accepts everything.
func (n *Netlist) InterestingComponents(f *Filter) []*Component {
	out := make([]*Component, 0, len(n.Components))
	for _, c := range n.Components {
		if f == nil || f.Interesting(c) {
			out = append(out, c)
		}
	}
	return out
}
