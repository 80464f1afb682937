package seqfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/evolbioinfo/goalign/align"
)

// alignAlphabet picks the goalign alphabet for a batch. Unspecified
// batches are nucleotides when every letter could be one.
func alignAlphabet(recs []Record) int {
	switch a := recs[0].Alphabet; {
	case a.IsNucleic():
		return align.NUCLEOTIDS
	case a == Protein:
		return align.AMINOACIDS
	}
	for _, r := range recs {
		if strings.IndexFunc(strings.ToUpper(r.Seq), func(c rune) bool {
			return !strings.ContainsRune("ACGTUN-?.", c)
		}) >= 0 {
			return align.AMINOACIDS
		}
	}
	return align.NUCLEOTIDS
}

// toAlign builds a goalign alignment naming record i ids[i].
func toAlign(format string, recs []Record, ids []string) (align.Alignment, error) {
	al := align.NewAlign(alignAlphabet(recs))
	for i, r := range recs {
		if err := al.AddSequence(ids[i], r.Seq, ""); err != nil {
			return nil, invalid(format, r.ID, "%v", err)
		}
	}
	return al, nil
}

// fromAlign converts a parsed alignment back to records in file order.
func fromAlign(al align.Alignment, alpha Alphabet) []Record {
	n := al.NbSequences()
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		name, _ := al.GetSequenceNameById(i)
		seq, _ := al.GetSequenceById(i)
		out = append(out, Record{ID: name, Name: name, Seq: seq, Alphabet: alpha})
	}
	return out
}

// uniqueIDs maps every record ID through short and rejects clashes.
func uniqueIDs(format string, recs []Record, short func(string) string) ([]string, error) {
	ids := make([]string, len(recs))
	seen := make(map[string]string, len(recs))
	for i, r := range recs {
		ids[i] = short(r.ID)
		if prev, dup := seen[ids[i]]; dup {
			if prev == r.ID {
				return nil, invalid(format, r.ID, "duplicate identifier")
			}
			return nil, invalid(format, r.ID, "identifier clashes with %q as %q", prev, ids[i])
		}
		seen[ids[i]] = r.ID
	}
	return ids, nil
}

// parseAlign runs a goalign parser over r. Blank input holds no records.
func parseAlign(format string, r io.Reader, parse func(io.Reader) (align.Alignment, error)) (align.Alignment, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s read: %w", format, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	al, err := parse(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", format, err)
	}
	return al, nil
}
