// Package config loads phyloframe CLI settings from defaults, a YAML file,
// PHYLOFRAME_* environment variables and command-line flags.
package config

import (
	"fmt"
	"slices"

	"phyloframe/pkg/phyloframe"
	"phyloframe/pkg/seqfmt"
)

const (
	// DefaultFile is looked up in the working directory when no --config
	// is given.
	DefaultFile = "phyloframe.yaml"
	// EnvPrefix maps PHYLOFRAME_SEQUENCE_COL to sequence_col.
	EnvPrefix = "PHYLOFRAME_"

	DefaultRender = "text"
	DefaultDriver = "sqlite"
)

// Renders and Drivers are the accepted values of render and driver.
var (
	Renders = []string{"text", "csv", "tsv", "json", "jsonl"}
	Drivers = []string{"sqlite", "duckdb"}
)

// Config holds the settings shared by the commands.
type Config struct {
	SequenceCol string `koanf:"sequence_col"`
	IDCol       string `koanf:"id_col"`
	QualityCol  string `koanf:"quality_col"`
	Alphabet    string `koanf:"alphabet"`
	Render      string `koanf:"render"`
	Driver      string `koanf:"driver"`
	Verbose     bool   `koanf:"verbose"`
}

func defaults() map[string]any {
	return map[string]any{
		"sequence_col": phyloframe.DefaultSequenceCol,
		"id_col":       phyloframe.DefaultIDCol,
		"quality_col":  phyloframe.DefaultQualityCol,
		"alphabet":     "",
		"render":       DefaultRender,
		"driver":       DefaultDriver,
		"verbose":      false,
	}
}

// Validate checks the closed-set settings.
func (c *Config) Validate() error {
	if _, ok := seqfmt.ParseAlphabet(c.Alphabet); !ok {
		return fmt.Errorf("alphabet %q is not one of dna, rna, nucleotide, protein", c.Alphabet)
	}
	if !slices.Contains(Renders, c.Render) {
		return fmt.Errorf("render %q is not one of %v", c.Render, Renders)
	}
	if !slices.Contains(Drivers, c.Driver) {
		return fmt.Errorf("driver %q is not one of %v", c.Driver, Drivers)
	}
	if c.SequenceCol == "" || c.IDCol == "" {
		return fmt.Errorf("sequence_col and id_col must not be empty")
	}
	return nil
}
