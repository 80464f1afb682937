package seqfmt

import (
	"fmt"
	"io"
	"strings"
)

// flatEntry is one "//"-terminated entry of an EMBL or Swiss-Prot style
// flat file. Only the lines the codecs round-trip are kept.
type flatEntry struct {
	id   string // ID line body
	acc  []string
	desc []string
	seq  strings.Builder
}

func (e *flatEntry) accession() string {
	if len(e.acc) > 0 {
		return e.acc[0]
	}
	return ""
}

func (e *flatEntry) description() string {
	d := strings.Join(e.desc, " ")
	if d == "." {
		return ""
	}
	return d
}

// decodeFlat splits r into entries keyed by two-letter line codes.
func decodeFlat(format string, r io.Reader) ([]*flatEntry, error) {
	sc := newLineScanner(r)
	var (
		out   []*flatEntry
		cur   *flatEntry
		inSeq bool
	)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			if cur != nil {
				out = append(out, cur)
			}
			cur, inSeq = nil, false
			continue
		}
		if inSeq {
			cur.seq.WriteString(residues(line))
			continue
		}
		code := line[:min(2, len(line))]
		body := ""
		if len(line) > 5 {
			body = strings.TrimSpace(line[5:])
		}
		if code == "ID" {
			if cur != nil {
				return nil, fmt.Errorf("%s: entry %q is not terminated by //", format, cur.id)
			}
			cur = &flatEntry{id: body}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("%s: %q before the first ID line", format, line)
		}
		switch code {
		case "AC":
			for _, a := range strings.Split(body, ";") {
				if a = strings.TrimSpace(a); a != "" {
					cur.acc = append(cur.acc, a)
				}
			}
		case "DE":
			cur.desc = append(cur.desc, body)
		case "SQ":
			inSeq = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s scan: %w", format, err)
	}
	if cur != nil {
		return nil, fmt.Errorf("%s: entry %q is not terminated by //", format, cur.id)
	}
	return out, nil
}

// writeResidueLines writes 60 residues per line in blocks of 10. When
// numbered is set the running position is right-aligned to column 80.
func writeResidueLines(fw *flatWriter, s string, numbered bool) {
	const perLine = 60
	for start := 0; start < len(s); start += perLine {
		end := min(start+perLine, len(s))
		line := strings.Join(blocks(s[start:end], 10), " ")
		if numbered {
			fw.printf("     %-66s%9d\n", line, end)
		} else {
			fw.printf("     %s\n", line)
		}
	}
}
