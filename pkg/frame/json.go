package frame

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ReadJSON reads an array of flat objects. Columns appear in the order
// their keys are first seen and numbers keep their literal text. A null
// value leaves the cell unset, the same as an omitted key.
func ReadJSON(r io.Reader) (*Frame, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return New()
	}
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, fmt.Errorf("json table must be an array of objects")
	}
	f, _ := New()
	var rows []map[string]string
	for dec.More() {
		row, keys, err := readObject(dec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		for _, k := range keys {
			if !f.Has(k) {
				_ = f.addName(k)
			}
		}
		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := f.AppendMap(row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func readObject(dec *json.Decoder) (map[string]string, []string, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected an object, got %v", tok)
	}
	row := map[string]string{}
	seen := map[string]bool{}
	var keys []string
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key := kt.(string)
		vt, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		var v string
		null := false
		switch x := vt.(type) {
		case string:
			v = x
		case json.Number:
			v = x.String()
		case bool:
			v = fmt.Sprint(x)
		case nil:
			null = true
		default:
			return nil, nil, fmt.Errorf("column %q: nested values are not supported", key)
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
		if null {
			delete(row, key)
			continue
		}
		row[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return row, keys, nil
}

// WriteJSON writes the frame as an indented array of objects.
func WriteJSON(w io.Writer, f *Frame) error {
	raw, err := f.MarshalJSON()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}
