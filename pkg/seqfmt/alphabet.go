package seqfmt

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
)

// Alphabet is the category of letters a record's sequence is declared to hold.
type Alphabet int

const (
	Unspecified Alphabet = iota // any letters
	DNA
	RNA
	Nucleotide // DNA or RNA
	Protein
)

var alphabetTags = map[string]Alphabet{
	"":           Unspecified,
	"dna":        DNA,
	"rna":        RNA,
	"nucleotide": Nucleotide,
	"protein":    Protein,
}

// ParseAlphabet resolves an alphabet tag. The empty tag means Unspecified.
// Tags are matched exactly; ok is false for anything outside the closed set.
func ParseAlphabet(tag string) (a Alphabet, ok bool) {
	a, ok = alphabetTags[tag]
	return a, ok
}

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "dna"
	case RNA:
		return "rna"
	case Nucleotide:
		return "nucleotide"
	case Protein:
		return "protein"
	default:
		return ""
	}
}

// IsNucleic reports whether a is one of the nucleotide categories.
func (a Alphabet) IsNucleic() bool { return a == DNA || a == RNA || a == Nucleotide }

// letterSets returns the biogo alphabets a letter may belong to.
// Unspecified has none: every letter is accepted.
func (a Alphabet) letterSets() []alphabet.Alphabet {
	switch a {
	case DNA:
		return []alphabet.Alphabet{alphabet.DNAredundant}
	case RNA:
		return []alphabet.Alphabet{alphabet.RNAredundant}
	case Nucleotide:
		return []alphabet.Alphabet{alphabet.DNAredundant, alphabet.RNAredundant}
	case Protein:
		return []alphabet.Alphabet{alphabet.Protein}
	default:
		return nil
	}
}

// biogo picks the alphabet attached to biogo sequences built from records.
// Unspecified maps to the protein alphabet, the widest letter set.
func (a Alphabet) biogo() alphabet.Alphabet {
	switch a {
	case DNA, Nucleotide:
		return alphabet.DNAredundant
	case RNA:
		return alphabet.RNAredundant
	default:
		return alphabet.Protein
	}
}

// firstInvalid returns the index of the first letter of s outside the
// alphabet, or -1 when every letter is valid.
func (a Alphabet) firstInvalid(s string) int { return a.firstInvalidExcept(s, "") }

// firstInvalidExcept is firstInvalid with the bytes of extra also allowed.
func (a Alphabet) firstInvalidExcept(s, extra string) int {
	sets := a.letterSets()
	if len(sets) == 0 {
		return -1
	}
outer:
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(extra, s[i]) >= 0 {
			continue
		}
		l := alphabet.Letter(s[i])
		for _, set := range sets {
			if set.IsValid(l) {
				continue outer
			}
		}
		return i
	}
	return -1
}
