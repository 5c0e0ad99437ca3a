package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/kicad-bom/internal/config"
	"github.com/OpenTraceLab/kicad-bom/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger = zap.NewNop()
	cfg    = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "kicad-bom <generic_netlist.xml> <output.csv>",
	Short: "Grouped bill of materials from a KiCad netlist",
	Long: `Generate a CSV bill of materials from a KiCad netlist export.

Components are grouped by their description, mfg1, mfg1pn, mfg2 and mfg2pn
fields when present, otherwise by value, part name and footprint.
Columns: Qty, Reference(s), description, mfg1, mfg1pn, mfg2, mfg2pn

Rows from "<output>-aux.csv", when that file exists, are appended.

Eeschema BOM plugin command line:
  kicad-bom "%I" "%O.csv"

Examples:
  kicad-bom amp.xml amp.csv                   # Grouped CSV
  kicad-bom --sort amp.net amp.csv            # Sort references (R2 before R10)
  kicad-bom amp.xml amp.xlsx                  # Spreadsheet output
  kicad-bom info amp.xml                      # Show netlist summary`,
	Version: "0.9.0",
	Args:    cobra.ExactArgs(2),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid by now; later failures are not usage errors.
		cmd.SilenceUsage = true

		logger = logging.New(logging.Options{Verbose: verbose})

		loaded, path, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if path != "" {
			logger.Debug("loaded config", zap.String("path", path))
		}
		cfg = loaded
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE:          runGenerate,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kicad-bom:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default $"+config.EnvConfigPath+" or ./"+config.ConfigFileName+")")
}
