package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phyloframe/internal/config"
)

func TestIsUsage(t *testing.T) {
	assert.True(t, IsUsage(usagef("bad %s", "thing")))
	assert.True(t, IsUsage(fmt.Errorf("wrapped: %w", &UsageError{Err: errors.New("x")})))
	assert.True(t, IsUsage(errors.New(`unknown command "x" for "phyloframe"`)))
	assert.True(t, IsUsage(errors.New("unknown shorthand flag: 'z' in -z")))
	assert.False(t, IsUsage(errors.New("open x.fa: no such file")))
}

func TestRootWiresConfigIntoOptions(t *testing.T) {
	t.Chdir(t.TempDir())
	root := NewRootCmd(io.Discard)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--id-col", "acc", "--alphabet", "protein", "formats", "--render", "json"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"format": "swiss"`)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"write", "read", "formats", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestWriteFlagChecks(t *testing.T) {
	ok := writeFlags{format: "fasta"}
	assert.NoError(t, ok.check([]string{"t.csv"}))

	db := writeFlags{format: "fasta", dsn: "x.db"}
	assert.True(t, IsUsage(db.check(nil)), "--db needs --query")
	db.query = "select 1"
	assert.NoError(t, db.check(nil))
	assert.True(t, IsUsage(db.check([]string{"t.csv"})))

	bad := writeFlags{format: "fasta", kind: "xlsx"}
	assert.True(t, IsUsage(bad.check([]string{"-"})))
}

func TestPositionalArgumentsAreUsageErrors(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, argv := range [][]string{
		{"formats", "extra"},
		{"version", "extra"},
		{"write", "a.csv", "b.csv", "--format", "fasta"},
	} {
		root := NewRootCmd(io.Discard)
		root.SetOut(io.Discard)
		root.SetArgs(argv)
		err := root.Execute()
		require.Error(t, err, argv)
		var ue *UsageError
		assert.True(t, errors.As(err, &ue), "%v: %v", argv, err)
	}
}

func TestRuntimeOptions(t *testing.T) {
	rt := &runtime{cfg: &config.Config{SequenceCol: "res", IDCol: "acc", QualityCol: "q", Alphabet: "dna"}}
	opts := rt.options()
	assert.Equal(t, "res", opts.SequenceCol)
	assert.Equal(t, "acc", opts.IDCol)
	assert.Equal(t, "q", opts.QualityCol)
	assert.Equal(t, "dna", opts.Alphabet)
	assert.Empty(t, opts.Filename)
}
