package frame

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ReadCSV reads a delimited table whose first line is the header.
// An empty input yields an empty frame.
func ReadCSV(r io.Reader, comma rune) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = comma == '\t'
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return New()
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	f, err := New(header...)
	if err != nil {
		return nil, err
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		if err != nil {
			return nil, err
		}
		if err := f.Append(rec...); err != nil {
			return nil, err
		}
	}
}

// WriteCSV writes the header line followed by every row.
func WriteCSV(w io.Writer, f *Frame, comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(f.columns); err != nil {
		return err
	}
	if err := cw.WriteAll(f.rows); err != nil {
		return err
	}
	return cw.Error()
}
