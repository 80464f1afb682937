package seqfmt

import "fmt"

// UnknownFormatError reports a format tag with no registered codec.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown sequence format %q (no codec registered)", e.Format)
}

// ValidationError reports a batch that breaks a rule of the target format.
// Record is empty when the rule concerns the batch as a whole.
type ValidationError struct {
	Format string
	Record string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("%s: record %q: %s", e.Format, e.Record, e.Reason)
}

func invalid(format, record, reason string, a ...any) *ValidationError {
	return &ValidationError{Format: format, Record: record, Reason: fmt.Sprintf(reason, a...)}
}
