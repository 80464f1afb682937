package seqfmt

import (
	"io"
	"strings"

	"github.com/evolbioinfo/goalign/align"
	"github.com/evolbioinfo/goalign/io/phylip"
)

// Strict PHYLIP names are padded or cut to ten characters.
const phylipIDWidth = 10

func init() { Register(phylipCodec{}) }

type phylipCodec struct{}

func (phylipCodec) Name() string { return PHYLIP }

func phylipID(id string) string {
	if len(id) > phylipIDWidth {
		return id[:phylipIDWidth]
	}
	return id
}

func (phylipCodec) ids(recs []Record) ([]string, error) {
	if err := checkIDs(PHYLIP, recs, false); err != nil {
		return nil, err
	}
	for _, r := range recs {
		if strings.ContainsAny(r.ID, "()[]:;,") {
			return nil, invalid(PHYLIP, r.ID, "identifier contains one of ()[]:;,")
		}
	}
	return uniqueIDs(PHYLIP, recs, phylipID)
}

func (c phylipCodec) Validate(recs []Record) error {
	if _, err := alignedLength(PHYLIP, recs); err != nil {
		return err
	}
	if _, err := c.ids(recs); err != nil {
		return err
	}
	return checkAlignmentLetters(PHYLIP, recs)
}

// Encode writes strict sequential PHYLIP, one unblocked line per record.
func (c phylipCodec) Encode(w io.Writer, recs []Record) error {
	ids, err := c.ids(recs)
	if err != nil {
		return err
	}
	al, err := toAlign(PHYLIP, recs, ids)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, phylip.WriteAlignment(al, true, true, true))
	return err
}

func (phylipCodec) Decode(r io.Reader) ([]Record, error) {
	al, err := parseAlign(PHYLIP, r, func(r io.Reader) (align.Alignment, error) {
		return phylip.NewParser(r, true).Parse()
	})
	if err != nil || al == nil {
		return nil, err
	}
	return fromAlign(al, Unspecified), nil
}
