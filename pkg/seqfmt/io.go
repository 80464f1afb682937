package seqfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write validates recs and encodes them to w in the given format.
func Write(w io.Writer, format string, recs []Record) error {
	c, err := Lookup(format)
	if err != nil {
		return err
	}
	if err := c.Validate(recs); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := c.Encode(bw, recs); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes recs to path. The file is only created once the batch
// has passed validation.
func WriteFile(path, format string, recs []Record) (err error) {
	c, err := Lookup(format)
	if err != nil {
		return err
	}
	if err := c.Validate(recs); err != nil {
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
	if err := c.Encode(bw, recs); err != nil {
		return fmt.Errorf("%s: write %s: %w", format, path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: write %s: %w", format, path, err)
	}
	return nil
}

// FormatRecord serializes a single record as a one-record file.
func FormatRecord(format string, rec Record) (string, error) {
	var b strings.Builder
	if err := Write(&b, format, []Record{rec}); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Read decodes every record in r.
func Read(r io.Reader, format string) ([]Record, error) {
	c, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return c.Decode(r)
}

// ReadFile decodes path. Gzip input is detected by magic number or ".gz"
// suffix; "-" reads stdin.
func ReadFile(path, format string) ([]Record, error) {
	c, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	recs, err := c.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", format, path, err)
	}
	return recs, nil
}
