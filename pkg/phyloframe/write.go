package phyloframe

import (
	"fmt"
	"strings"

	"phyloframe/pkg/frame"
	"phyloframe/pkg/seqfmt"
)

// Write converts every row of t into a record and serializes the batch as
// format. The alphabet is resolved before any row is read.
//
// Write applies opts.IDOnly as given; To applies the per-format default.
func Write(t frame.Table, format string, opts Options) (string, error) {
	opts = opts.withDefaults()
	alpha, ok := seqfmt.ParseAlphabet(opts.Alphabet)
	if !ok {
		return "", &InvalidAlphabetError{Alphabet: opts.Alphabet}
	}
	if _, err := seqfmt.Lookup(format); err != nil {
		return "", &SerializationError{Format: format, Err: err}
	}
	d, _ := defaultsFor(format)

	recs, err := records(t, format, alpha, opts, d.Quality)
	if err != nil {
		return "", err
	}
	log := opts.Logger.With("format", format, "records", len(recs))

	if opts.Filename != "" {
		if err := seqfmt.WriteFile(opts.Filename, format, recs); err != nil {
			return "", &SerializationError{Format: format, Err: err}
		}
		log.Debug("wrote sequence file", "path", opts.Filename)
		return "", nil
	}

	var b strings.Builder
	for _, r := range recs {
		s, err := seqfmt.FormatRecord(format, r)
		if err != nil {
			return "", &SerializationError{Format: format, Err: err}
		}
		b.WriteString(s)
	}
	log.Debug("serialized records", "bytes", b.Len())
	return b.String(), nil
}

// records builds one record per row, in row order.
func records(t frame.Table, format string, alpha seqfmt.Alphabet, opts Options, quality bool) ([]seqfmt.Record, error) {
	n := t.Len()
	out := make([]seqfmt.Record, 0, n)
	for i := 0; i < n; i++ {
		seq, ok := t.Value(i, opts.SequenceCol)
		if !ok {
			return nil, &MissingColumnError{Column: opts.SequenceCol, Row: i}
		}
		id, ok := t.Value(i, opts.IDCol)
		if !ok {
			return nil, &MissingColumnError{Column: opts.IDCol, Row: i}
		}
		rec := seqfmt.Record{ID: id, Seq: seq, Alphabet: alpha}
		if !opts.IDOnly {
			if rec.Name, ok = t.Value(i, nameCol); !ok {
				return nil, &MissingColumnError{Column: nameCol, Row: i}
			}
			if rec.Description, ok = t.Value(i, descriptionCol); !ok {
				return nil, &MissingColumnError{Column: descriptionCol, Row: i}
			}
		}
		if quality {
			if q, ok := t.Value(i, opts.QualityCol); ok {
				var err error
				if rec.Quality, err = seqfmt.ParseQuality(q); err != nil {
					return nil, &SerializationError{Format: format, Err: fmt.Errorf("row %d: %w", i, err)}
				}
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
