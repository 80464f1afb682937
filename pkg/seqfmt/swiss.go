package seqfmt

import (
	"hash/crc64"
	"io"
	"math"
	"strings"
)

func init() { Register(swissCodec{}) }

// swissCodec writes UniProtKB/Swiss-Prot style protein entries.
type swissCodec struct{}

func (swissCodec) Name() string { return SWISS }

func (swissCodec) Validate(recs []Record) error {
	if err := checkIDs(SWISS, recs, true); err != nil {
		return err
	}
	for _, r := range recs {
		if r.Alphabet.IsNucleic() {
			return invalid(SWISS, r.ID, "swiss entries hold protein sequences, not %s", r.Alphabet)
		}
	}
	return checkLetters(SWISS, recs)
}

func (swissCodec) Encode(w io.Writer, recs []Record) error {
	fw := &flatWriter{w: w}
	for _, r := range recs {
		s := strings.ToUpper(r.Seq)
		fw.printf("ID   %-24s Unreviewed; %9d AA.\n", r.locus(), len(s))
		fw.printf("AC   %s;\n", r.ID)
		if r.Description != "" {
			fw.printf("DE   %s\n", r.Description)
		}
		fw.printf("SQ   SEQUENCE %5d AA; %6d MW;  %016X CRC64;\n", len(s), molecularWeight(s), swissCRC64(s))
		writeResidueLines(fw, s, false)
		fw.printf("//\n")
	}
	return fw.err
}

func (swissCodec) Decode(r io.Reader) ([]Record, error) {
	entries, err := decodeFlat(SWISS, r)
	if err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		var name string
		if f := strings.Fields(e.id); len(f) > 0 {
			name = f[0]
		}
		rec := Record{
			ID:          e.accession(),
			Name:        name,
			Description: e.description(),
			Seq:         e.seq.String(),
			Alphabet:    Protein,
		}
		if rec.ID == "" {
			rec.ID = name
		}
		out = append(out, rec)
	}
	return out, nil
}

var crcISO = crc64.MakeTable(crc64.ISO)

// swissCRC64 is the SWISS-PROT checksum: CRC-64/ISO with a zero initial
// value and no final inversion.
func swissCRC64(s string) uint64 {
	return ^crc64.Update(^uint64(0), crcISO, []byte(s))
}

// Average residue masses in daltons.
var residueMass = map[byte]float64{
	'A': 71.0788, 'R': 156.1875, 'N': 114.1038, 'D': 115.0886,
	'C': 103.1388, 'E': 129.1155, 'Q': 128.1307, 'G': 57.0519,
	'H': 137.1411, 'I': 113.1594, 'L': 113.1594, 'K': 128.1741,
	'M': 131.1926, 'F': 147.1766, 'P': 97.1167, 'S': 87.0782,
	'T': 101.1051, 'W': 186.2132, 'Y': 163.1760, 'V': 99.1326,
	'B': 114.5962, 'Z': 128.6231, 'J': 113.1594, 'X': 110.0,
}

const waterMass = 18.01524

// molecularWeight returns the rounded average mass of a protein chain.
// Gaps and stops add nothing.
func molecularWeight(s string) int {
	if s == "" {
		return 0
	}
	mw := waterMass
	for i := 0; i < len(s); i++ {
		mw += residueMass[s[i]]
	}
	return int(math.Round(mw))
}
