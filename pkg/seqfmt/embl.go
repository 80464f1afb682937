package seqfmt

import (
	"io"
	"strings"
)

func init() { Register(emblCodec{}) }

type emblCodec struct{}

func (emblCodec) Name() string { return EMBL }

func (emblCodec) Validate(recs []Record) error {
	if err := checkIDs(EMBL, recs, true); err != nil {
		return err
	}
	return checkLetters(EMBL, recs)
}

// emblMolecule maps an alphabet to the ID line molecule type and length unit.
// Unspecified and nucleotide records are written as DNA.
func emblMolecule(a Alphabet) (mol, unit string) {
	switch a {
	case Protein:
		return "PROTEIN", "AA"
	case RNA:
		return "RNA", "BP"
	default:
		return "DNA", "BP"
	}
}

func (emblCodec) Encode(w io.Writer, recs []Record) error {
	fw := &flatWriter{w: w}
	for _, r := range recs {
		mol, unit := emblMolecule(r.Alphabet)
		desc := r.Description
		if desc == "" {
			desc = "."
		}
		fw.printf("ID   %s; SV 1; linear; %s; STD; UNC; %d %s.\n", r.locus(), mol, r.Len(), unit)
		fw.printf("XX\n")
		fw.printf("AC   %s;\n", r.ID)
		fw.printf("XX\n")
		fw.printf("DE   %s\n", desc)
		fw.printf("XX\n")
		fw.printf("FH   Key             Location/Qualifiers\n")
		fw.printf("FH\n")
		if r.Alphabet == Protein {
			fw.printf("SQ   Sequence %d AA;\n", r.Len())
		} else {
			a, c, g, t := baseCounts(r.Seq)
			other := r.Len() - a - c - g - t
			fw.printf("SQ   Sequence %d BP; %d A; %d C; %d G; %d T; %d other;\n", r.Len(), a, c, g, t, other)
		}
		writeResidueLines(fw, strings.ToLower(r.Seq), true)
		fw.printf("//\n")
	}
	return fw.err
}

func baseCounts(s string) (a, c, g, t int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'a':
			a++
		case 'C', 'c':
			c++
		case 'G', 'g':
			g++
		case 'T', 't':
			t++
		}
	}
	return
}

func (emblCodec) Decode(r io.Reader) ([]Record, error) {
	entries, err := decodeFlat(EMBL, r)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		fields := strings.Split(e.id, ";")
		locus := strings.TrimSpace(fields[0])
		rec := Record{
			ID:          e.accession(),
			Name:        locus,
			Description: e.description(),
			Seq:         strings.ToUpper(e.seq.String()),
		}
		if rec.ID == "" {
			rec.ID = locus
		}
		if len(fields) > 3 {
			switch mol := strings.TrimSpace(fields[3]); {
			case mol == "PROTEIN":
				rec.Alphabet = Protein
			case strings.Contains(mol, "RNA"):
				rec.Alphabet = RNA
			case strings.Contains(mol, "DNA"):
				rec.Alphabet = DNA
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
