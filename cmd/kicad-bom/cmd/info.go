package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/kicad-bom/pkg/bom"
	"github.com/OpenTraceLab/kicad-bom/pkg/netlist"
)

var infoCmd = &cobra.Command{
	Use:   "info <netlist>",
	Short: "Show netlist information and BOM groups",
	Long: `Display the design header of a KiCad netlist, how many components
survive the filters, and the groups the BOM would contain.`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	nl, err := netlist.LoadFile(filename)
	if err != nil {
		return err
	}

	filter, err := netlist.NewFilter(cfg.Filter)
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	interesting := nl.InterestingComponents(filter)
	kept := bom.FilterExcluded(interesting)
	groups := bom.Group(kept, func(a, b *netlist.Component) bool { return bom.Equivalent(a, b) }, mode)
	if cfg.Sort {
		bom.SortGroups(groups)
	}

	showNetlistSummary(cmd.OutOrStdout(), filename, nl, len(interesting), len(kept), groups)
	return nil
}

func showNetlistSummary(w io.Writer, filename string, nl *netlist.Netlist, interesting, kept int, groups [][]*netlist.Component) {
	fmt.Fprintf(w, "Netlist: %s\n", filename)
	if nl.Version != "" {
		fmt.Fprintf(w, "Version: %s\n", nl.Version)
	}
	if nl.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", nl.Source)
	}
	if nl.Tool != "" {
		fmt.Fprintf(w, "Tool: %s\n", nl.Tool)
	}
	if nl.Date != "" {
		fmt.Fprintf(w, "Date: %s\n", nl.Date)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Statistics:")
	fmt.Fprintf(w, "  Components: %d\n", len(nl.Components))
	fmt.Fprintf(w, "  Library parts: %d\n", len(nl.LibParts))
	fmt.Fprintf(w, "  Interesting: %d\n", interesting)
	fmt.Fprintf(w, "  Excluded by field: %d\n", interesting-kept)
	fmt.Fprintf(w, "  Groups: %d\n", len(groups))
	fmt.Fprintln(w)

	if len(groups) == 0 {
		return
	}

	fmt.Fprintln(w, "Groups:")
	for _, g := range groups {
		refs := make([]string, len(g))
		for i, c := range g {
			refs[i] = c.Ref
		}
		rep := g[len(g)-1]
		label := rep.Value
		if mpn, ok := bom.Field(rep, bom.FieldMfg1PN); ok && mpn != "" {
			label = mpn
		}
		fmt.Fprintf(w, "  %3d  %-20s %s\n", len(g), label, strings.Join(refs, ", "))
	}
}
