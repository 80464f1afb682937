package seqfmt

import (
	"io"
	"strings"

	"github.com/evolbioinfo/goalign/align"
	"github.com/evolbioinfo/goalign/io/clustal"
)

const clustalIDMax = 30

func init() { Register(clustalCodec{}) }

type clustalCodec struct{}

func (clustalCodec) Name() string { return CLUSTAL }

func clustalID(id string) string {
	if len(id) > clustalIDMax {
		return id[:clustalIDMax]
	}
	return id
}

// ids rejects names a CLUSTAL line cannot hold and names that would merge
// into one row when read back.
func (clustalCodec) ids(recs []Record) ([]string, error) {
	if err := checkIDs(CLUSTAL, recs, false); err != nil {
		return nil, err
	}
	for _, r := range recs {
		if strings.ContainsAny(r.ID, " \t\r\n") {
			return nil, invalid(CLUSTAL, r.ID, "identifier contains whitespace")
		}
	}
	return uniqueIDs(CLUSTAL, recs, clustalID)
}

func (c clustalCodec) Validate(recs []Record) error {
	if _, err := alignedLength(CLUSTAL, recs); err != nil {
		return err
	}
	if _, err := c.ids(recs); err != nil {
		return err
	}
	return checkAlignmentLetters(CLUSTAL, recs)
}

func (c clustalCodec) Encode(w io.Writer, recs []Record) error {
	ids, err := c.ids(recs)
	if err != nil {
		return err
	}
	al, err := toAlign(CLUSTAL, recs, ids)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, clustal.WriteAlignment(al))
	return err
}

func (clustalCodec) Decode(r io.Reader) ([]Record, error) {
	al, err := parseAlign(CLUSTAL, r, func(r io.Reader) (align.Alignment, error) {
		return clustal.NewParser(r).Parse()
	})
	if err != nil || al == nil {
		return nil, err
	}
	return fromAlign(al, Unspecified), nil
}
