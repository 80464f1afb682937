package seqfmt

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
)

func init() { Register(fastqCodec{}) }

// fastqCodec reads and writes four-line Sanger (Phred+33) FASTQ.
type fastqCodec struct{}

func (fastqCodec) Name() string { return FASTQ }

func (fastqCodec) Validate(recs []Record) error {
	if err := checkLetters(FASTQ, recs); err != nil {
		return err
	}
	for _, r := range recs {
		if r.Quality == nil {
			return invalid(FASTQ, r.ID, "no quality scores")
		}
		if len(r.Quality) != r.Len() {
			return invalid(FASTQ, r.ID, "%d quality scores for %d residues", len(r.Quality), r.Len())
		}
		for i, q := range r.Quality {
			if q > maxQuality {
				return invalid(FASTQ, r.ID, "quality %d at %d exceeds %d", q, i+1, maxQuality)
			}
		}
	}
	return nil
}

func (fastqCodec) Encode(w io.Writer, recs []Record) error {
	fw := fastq.NewWriter(w)
	for _, r := range recs {
		ql := make([]alphabet.QLetter, r.Len())
		for i := range ql {
			ql[i] = alphabet.QLetter{L: alphabet.Letter(r.Seq[i]), Q: alphabet.Qphred(r.Quality[i])}
		}
		s := linear.NewQSeq(r.ID, ql, r.Alphabet.biogo(), alphabet.Sanger)
		s.Desc = r.Description
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("fastq: write %q: %w", r.ID, err)
		}
	}
	return nil
}

func (fastqCodec) Decode(r io.Reader) ([]Record, error) {
	template := linear.NewQSeq("", nil, alphabet.Protein, alphabet.Sanger)
	return decodeSeqio(fastq.NewReader(r, template), true)
}
