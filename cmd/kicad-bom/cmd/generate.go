package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/kicad-bom/internal/config"
	"github.com/OpenTraceLab/kicad-bom/pkg/bom"
	"github.com/OpenTraceLab/kicad-bom/pkg/netlist"
)

var (
	sortRefs       bool
	strictGroups   bool
	representative string
	outputFormat   string
	noAux          bool
)

func init() {
	flags := rootCmd.Flags()
	flags.BoolVar(&sortRefs, "sort", false,
		"sort references inside groups and groups by first reference")
	flags.BoolVar(&strictGroups, "strict", false,
		"admit a component only if it matches every member of the group")
	flags.StringVar(&representative, "representative", "last",
		"group member supplying field columns (last, first, nonempty)")
	flags.StringVarP(&outputFormat, "format", "f", config.FormatAuto,
		"output format (auto, csv, xlsx)")
	flags.BoolVar(&noAux, "no-aux", false,
		"do not append rows from <output>-aux.csv")
}

// applyFlags lets explicit command-line flags override the config file.
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("sort") {
		c.Sort = sortRefs
	}
	if flags.Changed("strict") {
		if strictGroups {
			c.GroupMode = bom.GroupStrict.String()
		} else {
			c.GroupMode = bom.GroupBySeed.String()
		}
	}
	if flags.Changed("representative") {
		c.Representative = representative
	}
	if flags.Changed("format") {
		c.Format = outputFormat
	}
	if flags.Changed("no-aux") {
		c.DisableAux = noAux
	}
	return c.Validate()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, output := args[0], args[1]

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	rep, err := bom.ParseRepresentative(cfg.Representative)
	if err != nil {
		return err
	}

	nl, err := netlist.LoadFile(input)
	if err != nil {
		return err
	}

	filter, err := netlist.NewFilter(cfg.Filter)
	if err != nil {
		return err
	}
	components := nl.InterestingComponents(filter)
	logger.Debug("loaded netlist",
		zap.String("input", input),
		zap.String("tool", nl.Tool),
		zap.Int("components", len(nl.Components)),
		zap.Int("interesting", len(components)))

	format := cfg.OutputFormat(output)
	out, closeOut, err := openOutput(output, format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOut()

	w, closeWriter, err := newRowWriter(format, out)
	if err != nil {
		return err
	}
	defer closeWriter()

	opts := bom.Options{
		Mode:           mode,
		Representative: rep,
		Sort:           cfg.Sort,
		Logger:         logger,
	}
	if !cfg.DisableAux {
		opts.AuxPath = bom.AuxPath(output)
	}

	res, err := bom.Generate(w, components, opts)
	if err != nil {
		return err
	}

	logger.Debug("wrote bom",
		zap.String("output", output),
		zap.Int("groups", res.Groups),
		zap.Int("excluded", res.Excluded),
		zap.Int("aux_rows", res.AuxRows))
	return nil
}

// openOutput creates the output file. A CSV BOM falls back to stdout when
// the file cannot be created; a workbook does not. The returned func closes
// the file.
func openOutput(path, format string, stdout io.Writer) (io.Writer, func(), error) {
	f, err := os.Create(path)
	if err != nil {
		if format == config.FormatXLSX {
			return nil, nil, fmt.Errorf("failed to create workbook: %w", err)
		}
		logger.Warn("can't open output file for writing, using stdout",
			zap.String("path", path), zap.Error(err))
		return stdout, func() {}, nil
	}
	return f, func() {
		if err := f.Close(); err != nil {
			logger.Warn("failed to close output", zap.String("path", path), zap.Error(err))
		}
	}, nil
}

func newRowWriter(format string, out io.Writer) (bom.RowWriter, func(), error) {
	switch format {
	case config.FormatXLSX:
		xw, err := bom.NewXLSXWriter(out)
		if err != nil {
			return nil, nil, err
		}
		return xw, func() { xw.Close() }, nil
	case config.FormatCSV:
		return bom.NewCSVWriter(out), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown output format %q", format)
	}
}
