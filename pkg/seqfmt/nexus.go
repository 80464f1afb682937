package seqfmt

import (
	"io"
	"strings"

	"github.com/evolbioinfo/goalign/align"
	"github.com/evolbioinfo/goalign/io/nexus"
)

func init() { Register(nexusCodec{}) }

// nexusCodec writes a single DATA block. The datatype comes from the
// records' alphabet, so every record must declare the same one. RNA is
// written as dna and reads back as nucleotide.
type nexusCodec struct{}

func (nexusCodec) Name() string { return NEXUS }

// Names are written unquoted, so NEXUS punctuation is refused.
const nexusPunct = "()[]{}/\\,;:=*'\"`+-<> \t\r\n"

func (nexusCodec) Validate(recs []Record) error {
	if _, err := alignedLength(NEXUS, recs); err != nil {
		return err
	}
	if err := checkIDs(NEXUS, recs, false); err != nil {
		return err
	}
	want := recs[0].Alphabet
	for _, r := range recs {
		if r.Alphabet == Unspecified {
			return invalid(NEXUS, r.ID, "nexus needs a declared alphabet (dna, rna, nucleotide or protein)")
		}
		if r.Alphabet != want {
			return invalid(NEXUS, r.ID, "alphabet %s differs from %s used by the block", r.Alphabet, want)
		}
		if strings.ContainsAny(r.ID, nexusPunct) {
			return invalid(NEXUS, r.ID, "identifier contains whitespace or NEXUS punctuation")
		}
	}
	if _, err := uniqueIDs(NEXUS, recs, func(id string) string { return id }); err != nil {
		return err
	}
	return checkAlignmentLetters(NEXUS, recs)
}

func (nexusCodec) Encode(w io.Writer, recs []Record) error {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.ID
	}
	al, err := toAlign(NEXUS, recs, ids)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, nexus.WriteAlignment(al))
	return err
}

func (nexusCodec) Decode(r io.Reader) ([]Record, error) {
	al, err := parseAlign(NEXUS, r, func(r io.Reader) (align.Alignment, error) {
		return nexus.NewParser(r).Parse()
	})
	if err != nil || al == nil {
		return nil, err
	}
	alpha := Protein
	if al.Alphabet() == align.NUCLEOTIDS {
		alpha = Nucleotide
	}
	return fromAlign(al, alpha), nil
}
