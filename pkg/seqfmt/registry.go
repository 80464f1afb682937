package seqfmt

import (
	"io"
	"sort"
)

// Format tags of the built-in codecs.
const (
	FASTA   = "fasta"
	FASTQ   = "fastq"
	PHYLIP  = "phylip"
	CLUSTAL = "clustal"
	EMBL    = "embl"
	NEXUS   = "nexus"
	SWISS   = "swiss"
)

// Codec serializes batches of records in one file format.
type Codec interface {
	Name() string
	// Validate checks the whole batch against the format's rules.
	Validate(recs []Record) error
	// Encode writes a batch that passed Validate.
	Encode(w io.Writer, recs []Record) error
	Decode(r io.Reader) ([]Record, error)
}

// Codec registry (format → codec). Built-in codecs register in init() blocks.
var codecs = map[string]Codec{}

// Register adds c under c.Name(). Idempotent, last wins.
func Register(c Codec) { codecs[c.Name()] = c }

// Lookup returns the codec registered for format.
func Lookup(format string) (Codec, error) {
	c, ok := codecs[format]
	if !ok {
		return nil, &UnknownFormatError{Format: format}
	}
	return c, nil
}

// Names lists the registered format tags in sorted order.
func Names() []string {
	out := make([]string, 0, len(codecs))
	for name := range codecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
