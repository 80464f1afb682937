// Package cli defines the phyloframe command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"phyloframe/internal/config"
	"phyloframe/internal/version"
	"phyloframe/pkg/phyloframe"
)

// runtime is the state shared by the subcommands of one invocation.
type runtime struct {
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
}

// options maps the loaded config onto library write options.
func (rt *runtime) options() phyloframe.Options {
	return phyloframe.Options{
		SequenceCol: rt.cfg.SequenceCol,
		IDCol:       rt.cfg.IDCol,
		QualityCol:  rt.cfg.QualityCol,
		Alphabet:    rt.cfg.Alphabet,
		Logger:      rt.log,
	}
}

// NewRootCmd builds the command tree. Logs go to stderr.
func NewRootCmd(stderr io.Writer) *cobra.Command {
	rt := &runtime{log: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:   "phyloframe",
		Short: "Move sequence data between tables and sequence files",
		Long: `phyloframe turns table rows into sequence files (fasta, phylip, clustal,
embl, nexus, swiss, fastq) and reads sequence files back into tables.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, used, err := config.Load(rt.cfgFile, cmd.Flags())
			if err != nil {
				return &UsageError{Err: err}
			}
			rt.cfg = cfg

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			rt.log = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			if used != "" {
				rt.log.Debug("using config file", "path", used)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rt.cfgFile, "config", "", fmt.Sprintf("config file (default: ./%s)", config.DefaultFile))
	pf.String("sequence-col", "", "column holding residues (default \"sequence\")")
	pf.String("id-col", "", "column holding record ids (default \"id\")")
	pf.String("quality-col", "", "column holding Phred+33 qualities (default \"quality\")")
	pf.String("alphabet", "", "residue alphabet: dna, rna, nucleotide or protein")
	pf.String("driver", "", "database driver for --db: sqlite or duckdb (default \"sqlite\")")
	pf.BoolP("verbose", "v", false, "debug logging on stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("alphabet", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"dna", "rna", "nucleotide", "protein"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("driver", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Drivers, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newWriteCmd(rt))
	rootCmd.AddCommand(newReadCmd(rt))
	rootCmd.AddCommand(newFormatsCmd(rt))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
