package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"phyloframe/internal/cliutil"
	"phyloframe/internal/writers"
	"phyloframe/pkg/frame"
	"phyloframe/pkg/phyloframe"
	"phyloframe/pkg/seqfmt"
)

type readFlags struct {
	format string
	out    string
	uids   bool
	dsn    string
	table  string
}

func newReadCmd(rt *runtime) *cobra.Command {
	var rf readFlags
	cmd := &cobra.Command{
		Use:   "read <seqfile>...",
		Short: "Read sequence files into a table",
		Long: `Read decodes one or more sequence files ("-" for stdin, .gz accepted) into
a table with id, name, description and sequence columns, plus quality for
fastq. Files are stacked in argument order; globs are expanded.`,
		Example: `  phyloframe read seqs.fa
  phyloframe read 'runs/*.fq.gz' --render tsv -o reads.tsv
  phyloframe read aln.nex --db aln.sqlite --table alignment`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := rf.check(args)
			if err != nil {
				return err
			}
			t, err := readAll(cmd.Context(), cmd.InOrStdin(), rt, paths, rf)
			if err != nil {
				return err
			}
			if rf.dsn != "" {
				return storeTable(cmd.Context(), rt, t, rf)
			}
			return render(cmd.OutOrStdout(), rf.out, func(w io.Writer) error {
				return writers.WriteFrame(rt.cfg.Render, w, t)
			})
		},
	}

	f := cmd.Flags()
	f.StringVarP(&rf.format, "format", "f", "", "input format (default: from the file extension)")
	f.String("render", "", "table rendering: text, csv, tsv, json or jsonl (default \"text\")")
	f.StringVarP(&rf.out, "output", "o", "", "output file (default: stdout)")
	f.BoolVar(&rf.uids, "uids", false, "add a uid column of random 10-character hex ids")
	f.StringVar(&rf.dsn, "db", "", "database DSN to store the table in instead of rendering it")
	f.StringVar(&rf.table, "table", "", "table name to create (with --db)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return seqfmt.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("render", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return writers.FrameNames(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func (rf readFlags) check(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, usagef("missing sequence file")
	}
	if rf.format != "" && !slices.Contains(seqfmt.Names(), rf.format) {
		return nil, usagef("unknown format %q (want %s)", rf.format, joinNames(seqfmt.Names()))
	}
	if (rf.dsn == "") != (rf.table == "") {
		return nil, usagef("--db and --table go together")
	}
	paths, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	if rf.format == "" {
		for _, p := range paths {
			if _, ok := cliutil.GuessFormat(p); !ok {
				return nil, usagef("cannot tell the format of %q; pass --format", p)
			}
		}
	}
	return paths, nil
}

// readAll decodes paths in order and stacks the results.
func readAll(ctx context.Context, stdin io.Reader, rt *runtime, paths []string, rf readFlags) (*frame.Frame, error) {
	opts := phyloframe.ReadOptions{SequenceCol: rt.cfg.SequenceCol, UIDs: rf.uids, Logger: rt.log}
	frames := make([]*frame.Frame, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		format := rf.format
		if format == "" {
			format, _ = cliutil.GuessFormat(p)
		}
		var (
			t   *frame.Frame
			err error
		)
		if p == "-" {
			t, err = phyloframe.ReadFrom(bufio.NewReader(stdin), format, opts)
		} else {
			t, err = phyloframe.Read(p, format, opts)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		rt.log.Debug("decoded", "path", p, "format", format, "rows", t.Len())
		frames = append(frames, t)
	}
	return frame.Concat(frames...), nil
}

func storeTable(ctx context.Context, rt *runtime, t *frame.Frame, rf readFlags) error {
	db, err := openDB(ctx, rt.cfg.Driver, rf.dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := frame.WriteSQL(ctx, db, rf.table, t); err != nil {
		return err
	}
	rt.log.Info("stored table", "driver", rt.cfg.Driver, "table", rf.table, "rows", t.Len())
	return nil
}

// render writes through fn to path, or to stdout when path is empty or "-".
func render(stdout io.Writer, path string, fn func(io.Writer) error) (err error) {
	if path == "" || path == "-" {
		return fn(stdout)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(fh)
	if err := fn(bw); err != nil {
		return err
	}
	return bw.Flush()
}
