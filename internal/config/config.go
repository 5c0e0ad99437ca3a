// Package config loads kicad-bom settings from an optional YAML file.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $KICAD_BOM_CONFIG
//  3. ./kicad-bom.yaml
//
// Without a file the defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/kicad-bom/pkg/bom"
	"github.com/OpenTraceLab/kicad-bom/pkg/netlist"
)

const (
	// EnvConfigPath is the environment variable for an explicit config path
	EnvConfigPath = "KICAD_BOM_CONFIG"
	// ConfigFileName is the file looked up in the working directory
	ConfigFileName = "kicad-bom.yaml"
)

// Output formats.
const (
	FormatAuto = "auto"
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config holds BOM generation settings.
type Config struct {
	GroupMode      string `yaml:"group_mode"`     // seed or strict
	Representative string `yaml:"representative"` // last, first or nonempty
	Sort           bool   `yaml:"sort"`
	Format         string `yaml:"format"` // auto, csv or xlsx
	DisableAux     bool   `yaml:"disable_aux"`

	Filter netlist.FilterConfig `yaml:"filter"`
}

// DefaultConfig returns the settings used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		GroupMode:      bom.GroupBySeed.String(),
		Representative: bom.RepresentativeLast.String(),
		Format:         FormatAuto,
		Filter:         netlist.DefaultFilterConfig(),
	}
}

// FindConfigPath returns the first existing config file, or "" if none.
// An explicit path is returned even when it does not exist so that Load
// reports it.
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	if fileExists(ConfigFileName) {
		return ConfigFileName
	}
	return ""
}

// Load finds and loads the config file, or returns defaults if none found.
// The second return value is the path that was read.
func Load(explicit string) (*Config, string, error) {
	path := FindConfigPath(explicit)
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadFromPath(path)
	return cfg, path, err
}

// LoadFromPath loads config from a specific path. Keys missing from the file
// keep their defaults; a list given in the file replaces the default list.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults fills in values an explicit empty key cleared.
func (c *Config) applyDefaults() {
	if c.GroupMode == "" {
		c.GroupMode = bom.GroupBySeed.String()
	}
	if c.Representative == "" {
		c.Representative = bom.RepresentativeLast.String()
	}
	if c.Format == "" {
		c.Format = FormatAuto
	}
}

// Validate checks enumerated values and filter patterns.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Mode(); err != nil {
		errs = append(errs, err)
	}
	if _, err := bom.ParseRepresentative(c.Representative); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Format) {
	case FormatAuto, FormatCSV, FormatXLSX:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q (want auto, csv or xlsx)", c.Format))
	}
	if _, err := netlist.NewFilter(c.Filter); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Mode returns the parsed group mode.
func (c *Config) Mode() (bom.GroupMode, error) {
	switch strings.ToLower(c.GroupMode) {
	case "", "seed":
		return bom.GroupBySeed, nil
	case "strict":
		return bom.GroupStrict, nil
	default:
		return 0, fmt.Errorf("unknown group_mode %q (want seed or strict)", c.GroupMode)
	}
}

// OutputFormat resolves FormatAuto from the output file extension.
func (c *Config) OutputFormat(output string) string {
	format := strings.ToLower(c.Format)
	if format != FormatAuto && format != "" {
		return format
	}
	if strings.HasSuffix(strings.ToLower(output), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
