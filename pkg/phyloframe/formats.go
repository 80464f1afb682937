package phyloframe

import (
	"phyloframe/pkg/frame"
	"phyloframe/pkg/seqfmt"
)

// Defaults are the per-format parameters the To* entry points apply.
type Defaults struct {
	Format string `json:"format"`
	// IDOnly is forced unless CallerIDOnly is set.
	IDOnly       bool `json:"id_only"`
	CallerIDOnly bool `json:"caller_id_only"`
	// AlphabetRequired formats take the alphabet as a positional argument.
	AlphabetRequired bool `json:"alphabet_required"`
	// Quality formats read Phred+33 strings from the quality column.
	Quality bool `json:"quality"`
}

var defaults = []Defaults{
	{Format: seqfmt.FASTA, CallerIDOnly: true},
	{Format: seqfmt.PHYLIP, IDOnly: true},
	{Format: seqfmt.CLUSTAL, IDOnly: true},
	{Format: seqfmt.EMBL, IDOnly: true, AlphabetRequired: true},
	{Format: seqfmt.NEXUS, IDOnly: true, AlphabetRequired: true},
	{Format: seqfmt.SWISS, IDOnly: true},
	{Format: seqfmt.FASTQ, IDOnly: true, Quality: true},
}

// Formats lists the supported formats with their defaults.
func Formats() []Defaults { return append([]Defaults(nil), defaults...) }

func defaultsFor(format string) (Defaults, bool) {
	for _, d := range defaults {
		if d.Format == format {
			return d, true
		}
	}
	return Defaults{Format: format}, false
}

// To writes t as format with that format's defaults applied to opts.
func To(t frame.Table, format string, opts Options) (string, error) {
	d, ok := defaultsFor(format)
	if !ok {
		return "", &SerializationError{Format: format, Err: &seqfmt.UnknownFormatError{Format: format}}
	}
	if d.AlphabetRequired && opts.Alphabet == "" {
		return "", &InvalidAlphabetError{Format: format}
	}
	if !d.CallerIDOnly {
		opts.IDOnly = d.IDOnly
	}
	return Write(t, format, opts)
}

func ToFasta(t frame.Table, opts Options) (string, error)   { return To(t, seqfmt.FASTA, opts) }
func ToPhylip(t frame.Table, opts Options) (string, error)  { return To(t, seqfmt.PHYLIP, opts) }
func ToClustal(t frame.Table, opts Options) (string, error) { return To(t, seqfmt.CLUSTAL, opts) }
func ToSwiss(t frame.Table, opts Options) (string, error)   { return To(t, seqfmt.SWISS, opts) }
func ToFastq(t frame.Table, opts Options) (string, error)   { return To(t, seqfmt.FASTQ, opts) }

// ToEMBL writes EMBL records; the alphabet sets the molecule type.
func ToEMBL(t frame.Table, alphabet string, opts Options) (string, error) {
	opts.Alphabet = alphabet
	return To(t, seqfmt.EMBL, opts)
}

// ToNexus writes a NEXUS data block; the alphabet sets its datatype.
func ToNexus(t frame.Table, alphabet string, opts Options) (string, error) {
	opts.Alphabet = alphabet
	return To(t, seqfmt.NEXUS, opts)
}
