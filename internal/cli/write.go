package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"phyloframe/pkg/frame"
	"phyloframe/pkg/phyloframe"
	"phyloframe/pkg/seqfmt"
)

type writeFlags struct {
	format string
	out    string
	kind   string
	idOnly bool
	dsn    string
	query  string
}

func newWriteCmd(rt *runtime) *cobra.Command {
	var wf writeFlags
	cmd := &cobra.Command{
		Use:   "write [table]",
		Short: "Write table rows as a sequence file",
		Long: `Write maps each row of a table to a sequence record and serializes the
batch. The table is a .csv, .tsv, .json or .yaml file ("-" reads stdin as
--kind), or the result of --query against --db.`,
		Example: `  phyloframe write seqs.csv --format fasta -o seqs.fa
  phyloframe write aln.tsv --format nexus --alphabet dna
  phyloframe write --db reads.duckdb --driver duckdb --query 'select * from reads' --format fastq`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wf.check(args); err != nil {
				return err
			}
			t, err := loadTable(cmd.Context(), rt, cmd.InOrStdin(), args, wf)
			if err != nil {
				return err
			}
			return runWrite(cmd.OutOrStdout(), rt, t, wf)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&wf.format, "format", "f", "", "output format: "+joinNames(seqfmt.Names()))
	f.StringVarP(&wf.out, "output", "o", "", "output file (default: stdout)")
	f.StringVar(&wf.kind, "kind", "", "table kind when it cannot be told from the extension: csv, tsv, json or yaml")
	f.BoolVar(&wf.idOnly, "id-only", false, "skip the name and description columns (fasta only; other formats force it)")
	f.StringVar(&wf.dsn, "db", "", "database DSN to read rows from")
	f.StringVar(&wf.query, "query", "", "SQL query producing the rows (with --db)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return seqfmt.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (wf writeFlags) check(args []string) error {
	switch {
	case wf.format == "":
		return usagef("--format is required")
	case !slices.Contains(seqfmt.Names(), wf.format):
		return usagef("unknown format %q (want %s)", wf.format, joinNames(seqfmt.Names()))
	case wf.dsn != "" && len(args) == 1:
		return usagef("give either a table file or --db, not both")
	case wf.dsn == "" && len(args) == 0:
		return usagef("missing table file (or --db with --query)")
	case wf.dsn != "" && wf.query == "":
		return usagef("--db needs --query")
	case wf.kind != "" && !slices.Contains([]string{frame.CSV, frame.TSV, frame.JSON, frame.YAML}, wf.kind):
		return usagef("unknown table kind %q", wf.kind)
	}
	return nil
}

// loadTable reads the rows named by args or the --db/--query pair.
func loadTable(ctx context.Context, rt *runtime, stdin io.Reader, args []string, wf writeFlags) (*frame.Frame, error) {
	if wf.dsn != "" {
		db, err := openDB(ctx, rt.cfg.Driver, wf.dsn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		t, err := frame.FromSQL(ctx, db, wf.query)
		if err != nil {
			return nil, err
		}
		rt.log.Debug("loaded rows from database", "driver", rt.cfg.Driver, "rows", t.Len())
		return t, nil
	}

	path := args[0]
	if path == "-" {
		kind := wf.kind
		if kind == "" {
			kind = frame.CSV
		}
		return frame.Read(stdin, kind)
	}
	if wf.kind != "" {
		return readKind(path, wf.kind)
	}
	return frame.ReadFile(path)
}

func runWrite(stdout io.Writer, rt *runtime, t *frame.Frame, wf writeFlags) error {
	opts := rt.options()
	opts.Filename = wf.out
	opts.IDOnly = wf.idOnly

	out, err := phyloframe.To(t, wf.format, opts)
	if err != nil {
		return err
	}
	if wf.out == "" {
		_, err = io.WriteString(stdout, out)
		return err
	}
	rt.log.Info("wrote sequence file", "format", wf.format, "records", t.Len(), "path", wf.out)
	return nil
}

func joinNames(names []string) string { return strings.Join(names, ", ") }

func readKind(path, kind string) (*frame.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	t, err := frame.Read(bufio.NewReader(fh), kind)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}
