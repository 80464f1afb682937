package phyloframe

import "log/slog"

// Default column names.
const (
	DefaultSequenceCol = "sequence"
	DefaultIDCol       = "id"
	DefaultQualityCol  = "quality"

	nameCol        = "name"
	descriptionCol = "description"
	uidCol         = "uid"
)

// Options control how rows map to records and where they go.
type Options struct {
	// Filename, when set, receives the whole batch as one file and the
	// returned string is empty.
	Filename string

	SequenceCol string
	IDCol       string
	// QualityCol holds Phred+33 strings. Only formats that carry
	// qualities read it.
	QualityCol string

	// IDOnly skips the name and description columns.
	IDOnly bool

	// Alphabet is one of "", dna, rna, nucleotide, protein.
	Alphabet string

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.SequenceCol == "" {
		o.SequenceCol = DefaultSequenceCol
	}
	if o.IDCol == "" {
		o.IDCol = DefaultIDCol
	}
	if o.QualityCol == "" {
		o.QualityCol = DefaultQualityCol
	}
	o.Logger = orDiscard(o.Logger)
	return o
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
