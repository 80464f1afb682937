package seqfmt

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// fastaWidth is the number of residues per sequence line.
const fastaWidth = 60

func init() { Register(fastaCodec{width: fastaWidth}) }

type fastaCodec struct{ width int }

func (fastaCodec) Name() string { return FASTA }

func (fastaCodec) Validate(recs []Record) error { return checkLetters(FASTA, recs) }

// Encode writes ">id description" headers followed by wrapped sequence lines.
func (c fastaCodec) Encode(w io.Writer, recs []Record) error {
	fw := fasta.NewWriter(w, c.width)
	for _, r := range recs {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), r.Alphabet.biogo())
		s.Desc = r.Description
		if _, err := fw.Write(s); err != nil {
			return fmt.Errorf("fasta: write %q: %w", r.ID, err)
		}
	}
	return nil
}

func (fastaCodec) Decode(r io.Reader) ([]Record, error) {
	template := &linear.Seq{Annotation: seq.Annotation{Alpha: alphabet.Protein}}
	return decodeSeqio(fasta.NewReader(r, template), false)
}

// seqReader is the Read half of biogo's seqio.Reader.
type seqReader interface {
	Read() (seq.Sequence, error)
}

// decodeSeqio drains a biogo reader into records. withQuality keeps the
// per-residue Phred scores.
func decodeSeqio(sr seqReader, withQuality bool) ([]Record, error) {
	var out []Record
	for {
		s, err := sr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		rec := Record{ID: s.Name(), Name: s.Name(), Description: s.Description()}
		letters := make([]byte, s.Len())
		var qual []byte
		if withQuality {
			qual = make([]byte, s.Len())
		}
		for i := range letters {
			ql := s.At(s.Start() + i)
			letters[i] = byte(ql.L)
			if withQuality {
				qual[i] = byte(ql.Q)
			}
		}
		rec.Seq = string(letters)
		rec.Quality = qual
		out = append(out, rec)
	}
}
