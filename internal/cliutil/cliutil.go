// Package cliutil holds argument helpers shared by the commands.
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"phyloframe/pkg/seqfmt"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
// "-" (stdin) passes through but may appear only once.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var (
		out   []string
		stdin bool
	)
	for _, a := range posArgs {
		if a == "-" {
			if stdin {
				return nil, fmt.Errorf("stdin (-) given more than once")
			}
			stdin = true
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

var extFormats = map[string]string{
	".fa": seqfmt.FASTA, ".fasta": seqfmt.FASTA, ".fna": seqfmt.FASTA, ".faa": seqfmt.FASTA,
	".fq": seqfmt.FASTQ, ".fastq": seqfmt.FASTQ,
	".phy": seqfmt.PHYLIP, ".phylip": seqfmt.PHYLIP,
	".aln": seqfmt.CLUSTAL, ".clustal": seqfmt.CLUSTAL,
	".embl": seqfmt.EMBL,
	".nex": seqfmt.NEXUS, ".nexus": seqfmt.NEXUS, ".nxs": seqfmt.NEXUS,
	".swiss": seqfmt.SWISS, ".sp": seqfmt.SWISS,
}

// GuessFormat names the sequence format implied by a file extension,
// looking through a trailing ".gz".
func GuessFormat(path string) (string, bool) {
	p := strings.ToLower(path)
	p = strings.TrimSuffix(p, ".gz")
	f, ok := extFormats[filepath.Ext(p)]
	return f, ok
}
