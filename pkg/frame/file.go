package frame

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File kinds understood by Read and Write.
const (
	CSV  = "csv"
	TSV  = "tsv"
	JSON = "json"
	YAML = "yaml"
)

// KindOf picks the file kind from the path extension.
func KindOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return CSV, nil
	case ".tsv", ".tab":
		return TSV, nil
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("frame: cannot tell table kind of %q (want .csv, .tsv, .tab, .json, .yaml or .yml)", path)
	}
}

// Read decodes a table of the given kind.
func Read(r io.Reader, kind string) (*Frame, error) {
	switch kind {
	case CSV:
		return ReadCSV(r, ',')
	case TSV:
		return ReadCSV(r, '\t')
	case JSON:
		return ReadJSON(r)
	case YAML:
		return ReadYAML(r)
	}
	return nil, fmt.Errorf("frame: unknown table kind %q", kind)
}

// Write encodes f as the given kind.
func Write(w io.Writer, f *Frame, kind string) error {
	switch kind {
	case CSV:
		return WriteCSV(w, f, ',')
	case TSV:
		return WriteCSV(w, f, '\t')
	case JSON:
		return WriteJSON(w, f)
	case YAML:
		return WriteYAML(w, f)
	}
	return fmt.Errorf("frame: unknown table kind %q", kind)
}

// ReadFile loads a table, choosing the decoder by extension.
func ReadFile(path string) (*Frame, error) {
	kind, err := KindOf(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	f, err := Read(bufio.NewReader(fh), kind)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return f, nil
}

// WriteFile saves f, choosing the encoder by extension.
func WriteFile(path string, f *Frame) (err error) {
	kind, err := KindOf(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	bw := bufio.NewWriter(fh)
	if err := Write(bw, f, kind); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return bw.Flush()
}
