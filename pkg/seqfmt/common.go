package seqfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// checkLetters rejects records holding letters outside their declared alphabet.
func checkLetters(format string, recs []Record) error {
	for _, r := range recs {
		if i := r.Alphabet.firstInvalid(r.Seq); i >= 0 {
			return invalid(format, r.ID, "letter %q at %d is not valid for alphabet %s", r.Seq[i], i+1, r.Alphabet)
		}
	}
	return nil
}

// Alignment formats may mark missing data with '?'.
const alignmentMissing = "?"

// checkAlignmentLetters is checkLetters for the alignment formats.
func checkAlignmentLetters(format string, recs []Record) error {
	for _, r := range recs {
		if i := r.Alphabet.firstInvalidExcept(r.Seq, alignmentMissing); i >= 0 {
			return invalid(format, r.ID, "letter %q at %d is not valid for alphabet %s", r.Seq[i], i+1, r.Alphabet)
		}
	}
	return nil
}

// alignedLength returns the common length of an alignment batch.
func alignedLength(format string, recs []Record) (int, error) {
	if len(recs) == 0 {
		return 0, invalid(format, "", "an alignment needs at least one record")
	}
	n := recs[0].Len()
	for _, r := range recs[1:] {
		if r.Len() != n {
			return 0, invalid(format, r.ID, "length %d differs from alignment length %d", r.Len(), n)
		}
	}
	if n == 0 {
		return 0, invalid(format, "", "alignment sequences are empty")
	}
	return n, nil
}

// checkIDs rejects empty identifiers and, when noSpace is set, identifiers
// or entry names that would split an ID/AC line.
func checkIDs(format string, recs []Record, noSpace bool) error {
	for _, r := range recs {
		if r.ID == "" {
			return invalid(format, "", "record has an empty identifier")
		}
		if noSpace && strings.ContainsAny(r.ID+r.locus(), " \t\r\n;") {
			return invalid(format, r.ID, "whitespace or ';' in entry name %q", r.locus())
		}
	}
	return nil
}

// blocks splits s into pieces of at most size bytes.
func blocks(s string, size int) []string {
	out := make([]string, 0, len(s)/size+1)
	for len(s) > size {
		out = append(out, s[:size])
		s = s[size:]
	}
	if len(s) > 0 {
		out = append(out, s)
	}
	return out
}

// newLineScanner returns a scanner that tolerates very long sequence lines.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return sc
}

// residues keeps the letters (and gap/stop symbols) of a sequence line,
// dropping whitespace and position numbers.
func residues(line string) string {
	var b strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '-', c == '*', c == '?', c == '.':
			b.WriteByte(c)
		}
	}
	return b.String()
}

// flatWriter keeps the first write error so line-oriented encoders can
// check once at the end.
type flatWriter struct {
	w   io.Writer
	err error
}

func (fw *flatWriter) printf(format string, a ...any) {
	if fw.err != nil {
		return
	}
	_, fw.err = fmt.Fprintf(fw.w, format, a...)
}
