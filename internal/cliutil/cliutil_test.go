package cliutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"a.fa", "b.fa", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644))
	}

	got, err := ExpandPositionals([]string{filepath.Join(dir, "*.fa"), "-", "plain.fa"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.fa"), filepath.Join(dir, "b.fa"), "-", "plain.fa"}, got)

	_, err = ExpandPositionals([]string{filepath.Join(dir, "*.gb")})
	assert.ErrorContains(t, err, "no input matched")

	_, err = ExpandPositionals([]string{"-", "-"})
	assert.ErrorContains(t, err, "more than once")

	_, err = ExpandPositionals([]string{"[bad"})
	assert.ErrorContains(t, err, "bad glob")
}

func TestGuessFormat(t *testing.T) {
	tests := map[string]string{
		"x.fa":        "fasta",
		"dir/X.FASTA": "fasta",
		"reads.fq.gz": "fastq",
		"aln.phy":     "phylip",
		"aln.aln":     "clustal",
		"e.embl":      "embl",
		"m.nex":       "nexus",
		"p.swiss":     "swiss",
	}
	for path, want := range tests {
		got, ok := GuessFormat(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, got, path)
	}
	_, ok := GuessFormat("table.csv")
	assert.False(t, ok)
	_, ok = GuessFormat("-")
	assert.False(t, ok)
}
