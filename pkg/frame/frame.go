// Package frame is the tabular dataset the sequence writers read rows from
// and the readers build: ordered rows of string cells keyed by column name.
package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Table is any row-ordered dataset whose cells can be looked up by column
// name. ok is false when the row has no such column.
type Table interface {
	Len() int
	Value(row int, col string) (v string, ok bool)
}

// Frame is a rectangular table with a fixed column order.
type Frame struct {
	columns []string
	index   map[string]int
	rows    [][]string
	// absent holds the cells a row never set, as opposed to set empty.
	absent map[cell]struct{}
}

type cell struct{ row, col int }

func (f *Frame) markAbsent(row, col int) {
	if f.absent == nil {
		f.absent = map[cell]struct{}{}
	}
	f.absent[cell{row, col}] = struct{}{}
}

func (f *Frame) isAbsent(row, col int) bool {
	_, ok := f.absent[cell{row, col}]
	return ok
}

// New returns an empty frame with the given columns.
func New(columns ...string) (*Frame, error) {
	f := &Frame{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		if err := f.addName(c); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (f *Frame) addName(c string) error {
	if c == "" {
		return fmt.Errorf("frame: empty column name")
	}
	if _, dup := f.index[c]; dup {
		return fmt.Errorf("frame: duplicate column %q", c)
	}
	f.index[c] = len(f.columns)
	f.columns = append(f.columns, c)
	return nil
}

// Columns returns a copy of the column names in order.
func (f *Frame) Columns() []string { return append([]string(nil), f.columns...) }

func (f *Frame) Len() int { return len(f.rows) }

// Has reports whether the frame has column c.
func (f *Frame) Has(c string) bool {
	_, ok := f.index[c]
	return ok
}

func (f *Frame) Value(row int, col string) (string, bool) {
	i, ok := f.index[col]
	if !ok || row < 0 || row >= len(f.rows) || f.isAbsent(row, i) {
		return "", false
	}
	return f.rows[row][i], true
}

// Row returns a copy of row i in column order.
func (f *Frame) Row(i int) []string { return append([]string(nil), f.rows[i]...) }

// Column returns a copy of the cells of column c.
func (f *Frame) Column(c string) ([]string, bool) {
	i, ok := f.index[c]
	if !ok {
		return nil, false
	}
	out := make([]string, len(f.rows))
	for r, row := range f.rows {
		out[r] = row[i]
	}
	return out, true
}

// Append adds one row given in column order.
func (f *Frame) Append(values ...string) error {
	if len(values) != len(f.columns) {
		return fmt.Errorf("frame: row has %d values for %d columns", len(values), len(f.columns))
	}
	f.rows = append(f.rows, append([]string(nil), values...))
	return nil
}

// AppendMap adds one row from a column→value map. Columns missing from m
// read back as empty from Row and Column but Value reports them as not
// present. Keys that name no column are an error.
func (f *Frame) AppendMap(m map[string]string) error {
	row := make([]string, len(f.columns))
	set := make([]bool, len(f.columns))
	for k, v := range m {
		i, ok := f.index[k]
		if !ok {
			return fmt.Errorf("frame: unknown column %q", k)
		}
		row[i] = v
		set[i] = true
	}
	r := len(f.rows)
	f.rows = append(f.rows, row)
	for i, ok := range set {
		if !ok {
			f.markAbsent(r, i)
		}
	}
	return nil
}

// AddColumn appends a column. values must hold one cell per row.
func (f *Frame) AddColumn(name string, values []string) error {
	if len(values) != len(f.rows) {
		return fmt.Errorf("frame: column %q has %d values for %d rows", name, len(values), len(f.rows))
	}
	if err := f.addName(name); err != nil {
		return err
	}
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], values[i])
	}
	return nil
}

// Concat stacks frames. The result has the union of their columns in
// first-seen order; cells a frame lacks are empty and not present.
func Concat(frames ...*Frame) *Frame {
	out := &Frame{index: map[string]int{}}
	for _, f := range frames {
		for _, c := range f.columns {
			if !out.Has(c) {
				_ = out.addName(c)
			}
		}
	}
	for _, f := range frames {
		for r, row := range f.rows {
			merged := make([]string, len(out.columns))
			set := make([]bool, len(out.columns))
			for i, c := range f.columns {
				if f.isAbsent(r, i) {
					continue
				}
				merged[out.index[c]] = row[i]
				set[out.index[c]] = true
			}
			n := len(out.rows)
			out.rows = append(out.rows, merged)
			for i, ok := range set {
				if !ok {
					out.markAbsent(n, i)
				}
			}
		}
	}
	return out
}

// MarshalJSON encodes the frame as an array of objects whose keys keep
// the column order. Cells that are not present are left out.
func (f *Frame) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for r := range f.rows {
		if r > 0 {
			b.WriteByte(',')
		}
		f.writeRowJSON(&b, r)
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

// RowJSON encodes row i as one object in column order.
func (f *Frame) RowJSON(i int) []byte {
	var b bytes.Buffer
	f.writeRowJSON(&b, i)
	return b.Bytes()
}

func (f *Frame) writeRowJSON(b *bytes.Buffer, r int) {
	b.WriteByte('{')
	first := true
	for i, c := range f.columns {
		if f.isAbsent(r, i) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(c)
		v, _ := json.Marshal(f.rows[r][i])
		b.Write(k)
		b.WriteByte(':')
		b.Write(v)
	}
	b.WriteByte('}')
}

// Records is a table of loosely shaped rows; rows may differ in columns.
type Records []map[string]string

func (r Records) Len() int { return len(r) }

func (r Records) Value(row int, col string) (string, bool) {
	if row < 0 || row >= len(r) {
		return "", false
	}
	v, ok := r[row][col]
	return v, ok
}

var (
	_ Table = (*Frame)(nil)
	_ Table = Records(nil)
)
