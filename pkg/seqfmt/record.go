package seqfmt

import (
	"fmt"
	"strings"
)

// Record is one sequence handed to or returned by a codec.
type Record struct {
	ID          string
	Name        string
	Description string
	Seq         string
	Alphabet    Alphabet

	// Quality holds Phred scores, one per residue. Nil when the source
	// carries none.
	Quality []byte
}

// Len returns the sequence length.
func (r Record) Len() int { return len(r.Seq) }

// locus is the entry name flat-file formats put on the ID line.
func (r Record) locus() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// Phred+33 offset and the highest score that still encodes to a printable byte.
const (
	qualityOffset = 33
	maxQuality    = '~' - qualityOffset
)

// ParseQuality decodes a Phred+33 (Sanger) quality string.
func ParseQuality(s string) ([]byte, error) {
	q := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < qualityOffset || c > '~' {
			return nil, fmt.Errorf("invalid quality character %q at %d", c, i+1)
		}
		q[i] = c - qualityOffset
	}
	return q, nil
}

// FormatQuality encodes Phred scores as a Phred+33 string.
func FormatQuality(q []byte) string {
	var b strings.Builder
	b.Grow(len(q))
	for _, v := range q {
		if v > maxQuality {
			v = maxQuality
		}
		b.WriteByte(v + qualityOffset)
	}
	return b.String()
}
