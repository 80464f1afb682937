package phyloframe

import "phyloframe/pkg/frame"

// SeqFrame wraps a table with the sequence writers as methods. It is
// itself a frame.Table.
type SeqFrame[T frame.Table] struct {
	Table T
}

// Wrap returns t with the writer methods attached.
func Wrap[T frame.Table](t T) *SeqFrame[T] { return &SeqFrame[T]{Table: t} }

func (s *SeqFrame[T]) Len() int { return s.Table.Len() }

func (s *SeqFrame[T]) Value(row int, col string) (string, bool) { return s.Table.Value(row, col) }

func (s *SeqFrame[T]) Write(format string, opts Options) (string, error) {
	return Write(s.Table, format, opts)
}

func (s *SeqFrame[T]) To(format string, opts Options) (string, error) {
	return To(s.Table, format, opts)
}

func (s *SeqFrame[T]) ToFasta(opts Options) (string, error)   { return ToFasta(s.Table, opts) }
func (s *SeqFrame[T]) ToPhylip(opts Options) (string, error)  { return ToPhylip(s.Table, opts) }
func (s *SeqFrame[T]) ToClustal(opts Options) (string, error) { return ToClustal(s.Table, opts) }
func (s *SeqFrame[T]) ToSwiss(opts Options) (string, error)   { return ToSwiss(s.Table, opts) }
func (s *SeqFrame[T]) ToFastq(opts Options) (string, error)   { return ToFastq(s.Table, opts) }

func (s *SeqFrame[T]) ToEMBL(alphabet string, opts Options) (string, error) {
	return ToEMBL(s.Table, alphabet, opts)
}

func (s *SeqFrame[T]) ToNexus(alphabet string, opts Options) (string, error) {
	return ToNexus(s.Table, alphabet, opts)
}
