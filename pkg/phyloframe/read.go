package phyloframe

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"phyloframe/pkg/frame"
	"phyloframe/pkg/seqfmt"
)

// ReadOptions control the table built from a sequence file.
type ReadOptions struct {
	SequenceCol string
	// UIDs adds a uid column holding a random 10-character hex id per row.
	UIDs   bool
	Logger *slog.Logger
}

// Read loads path ("-" for stdin, gzip detected) into a frame with the
// columns id, name, description and the sequence column, plus quality for
// formats that carry it and uid when asked.
func Read(path, format string, opts ReadOptions) (*frame.Frame, error) {
	recs, err := seqfmt.ReadFile(path, format)
	if err != nil {
		return nil, &SerializationError{Format: format, Err: err}
	}
	orDiscard(opts.Logger).Debug("read sequence file", "format", format, "path", path, "records", len(recs))
	return recordFrame(recs, format, opts)
}

// ReadFrom is Read over an open stream.
func ReadFrom(r io.Reader, format string, opts ReadOptions) (*frame.Frame, error) {
	recs, err := seqfmt.Read(r, format)
	if err != nil {
		return nil, &SerializationError{Format: format, Err: err}
	}
	return recordFrame(recs, format, opts)
}

func ReadFasta(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.FASTA, opts)
}

func ReadPhylip(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.PHYLIP, opts)
}

func ReadClustal(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.CLUSTAL, opts)
}

func ReadEMBL(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.EMBL, opts)
}

func ReadNexus(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.NEXUS, opts)
}

func ReadSwiss(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.SWISS, opts)
}

func ReadFastq(path string, opts ReadOptions) (*frame.Frame, error) {
	return Read(path, seqfmt.FASTQ, opts)
}

func recordFrame(recs []seqfmt.Record, format string, opts ReadOptions) (*frame.Frame, error) {
	seqCol := opts.SequenceCol
	if seqCol == "" {
		seqCol = DefaultSequenceCol
	}
	d, _ := defaultsFor(format)
	cols := []string{DefaultIDCol, nameCol, descriptionCol, seqCol}
	if d.Quality {
		cols = append(cols, DefaultQualityCol)
	}
	if opts.UIDs {
		cols = append(cols, uidCol)
	}
	f, err := frame.New(cols...)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		row := []string{r.ID, r.Name, r.Description, r.Seq}
		if d.Quality {
			row = append(row, seqfmt.FormatQuality(r.Quality))
		}
		if opts.UIDs {
			row = append(row, newUID())
		}
		if err := f.Append(row...); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func newUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
