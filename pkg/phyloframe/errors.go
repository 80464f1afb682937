package phyloframe

import "fmt"

// InvalidAlphabetError reports an alphabet tag outside
// {"", dna, rna, nucleotide, protein}.
//
// The empty tag is valid in general, but ToEMBL and ToNexus need a declared
// alphabet and report its absence with this error too, with Format set to
// the format that asked. Both cases fail before any row is read.
type InvalidAlphabetError struct {
	Alphabet string
	Format   string // set only for a missing required alphabet
}

func (e *InvalidAlphabetError) Error() string {
	if e.Alphabet == "" && e.Format != "" {
		return fmt.Sprintf("format %s requires an alphabet (dna, rna, nucleotide or protein)", e.Format)
	}
	return fmt.Sprintf("alphabet %q is not recognized: must be dna, rna, nucleotide or protein", e.Alphabet)
}

// MissingColumnError reports a row without a required column.
type MissingColumnError struct {
	Column string
	Row    int
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("row %d: missing column %q", e.Row, e.Column)
}

// SerializationError wraps a failure of the sequence-format layer.
type SerializationError struct {
	Format string
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s serialization: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
