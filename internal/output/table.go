package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"phyloframe/internal/jsonlutil"
	"phyloframe/pkg/frame"
)

// WriteTable renders f as a boxed text table followed by a row count.
func WriteTable(w io.Writer, f *frame.Frame) error {
	if f.Len() == 0 {
		_, err := fmt.Fprintln(w, "(0 rows)")
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	cols := f.Columns()
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	t.AppendHeader(header)

	for r := 0; r < f.Len(); r++ {
		vals := f.Row(r)
		row := make(table.Row, len(vals))
		for i, v := range vals {
			row[i] = truncate(v, MaxCell)
		}
		t.AppendRow(row)
	}

	t.Render()
	_, err := fmt.Fprintf(w, "(%d rows)\n", f.Len())
	return err
}

// WriteDelimited writes f as CSV (comma ',') or TSV (comma '\t') with a header.
func WriteDelimited(w io.Writer, f *frame.Frame, comma rune) error {
	return frame.WriteCSV(w, f, comma)
}

// WriteJSON writes f as an indented array of ordered objects.
func WriteJSON(w io.Writer, f *frame.Frame) error {
	return frame.WriteJSON(w, f)
}

// WriteJSONL writes one ordered object per row.
func WriteJSONL(w io.Writer, f *frame.Frame, isBroken func(error) bool) error {
	in, done := jsonlutil.Start(w, 64, func(enc *json.Encoder, raw json.RawMessage) error {
		return enc.Encode(raw)
	}, isBroken)
	for i := 0; i < f.Len(); i++ {
		in <- json.RawMessage(f.RowJSON(i))
	}
	close(in)
	return <-done
}
