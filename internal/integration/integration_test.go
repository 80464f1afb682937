package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phyloframe/internal/app"
	"phyloframe/internal/testutil"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func run(t *testing.T, stdin string, argv ...string) result {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.RunIO(context.Background(), argv, strings.NewReader(stdin), &out, &errBuf)
	return result{code: code, stdout: out.String(), stderr: errBuf.String()}
}

func rows(t *testing.T, s string) []map[string]string {
	t.Helper()
	var out []map[string]string
	require.NoError(t, json.Unmarshal([]byte(s), &out), s)
	return out
}

// assertPhylip checks a sequential PHYLIP body field by field.
func assertPhylip(t *testing.T, out string, want [][]string) {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(want)+1, out)
	assert.Equal(t, []string{fmt.Sprint(len(want)), fmt.Sprint(len(want[0][1]))}, strings.Fields(lines[0]))
	for i, w := range want {
		assert.Equal(t, w, strings.Fields(lines[i+1]))
	}
}

const table = "id,name,description,sequence\ns1,n1,first seq,ACGT\ns2,n2,second,ACGA\n"

func TestWriteFastaToStdout(t *testing.T) {
	in := testutil.WriteFile(t, "seqs.csv", table)
	r := run(t, "", "write", in, "--format", "fasta")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, ">s1 first seq\nACGT\n")
	assert.Contains(t, r.stdout, ">s2 second\nACGA\n")
}

func TestWritePhylipFromStdinWithCustomColumns(t *testing.T) {
	r := run(t, "acc\tres\nX1\tACGT\nX2\tACGA\n", "write", "-", "--kind", "tsv", "--format", "phylip",
		"--id-col", "acc", "--sequence-col", "res")
	require.Equal(t, 0, r.code, r.stderr)
	assertPhylip(t, r.stdout, [][]string{{"X1", "ACGT"}, {"X2", "ACGA"}})
}

func TestWriteThenReadFastq(t *testing.T) {
	in := testutil.WriteFile(t, "reads.json", `[{"id":"r1","sequence":"ACGT","quality":"II#5"}]`)
	fq := filepath.Join(t.TempDir(), "reads.fq")

	r := run(t, "", "write", in, "--format", "fastq", "-o", fq)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	r = run(t, "", "read", fq, "--render", "json")
	require.Equal(t, 0, r.code, r.stderr)
	got := rows(t, r.stdout)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0]["id"])
	assert.Equal(t, "ACGT", got[0]["sequence"])
	assert.Equal(t, "II#5", got[0]["quality"])
}

func TestWriteJSONRowMissingSequence(t *testing.T) {
	in := `[{"id":"a","sequence":"AC"},{"id":"b"}]`
	r := run(t, in, "write", "-", "--kind", "json", "--format", "fasta", "--id-only")
	assert.Equal(t, 1, r.code, r.stdout)
	assert.Contains(t, r.stderr, `missing column "sequence"`)
	assert.NotContains(t, r.stdout, ">b")

	r = run(t, `[{"id":"a","sequence":"AC"},{"id":"b","sequence":null}]`,
		"write", "-", "--kind", "json", "--format", "fasta", "--id-only")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, "row 1")

	r = run(t, "- id: a\n  sequence: AC\n- id: b\n", "write", "-", "--kind", "yaml", "--format", "fasta", "--id-only")
	assert.Equal(t, 1, r.code)
	assert.Contains(t, r.stderr, `missing column "sequence"`)
}

func TestReadGlobStdinAndUIDs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.fa"), []byte(">a\nAC\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.fa"), []byte(">b\nGT\n"), 0o644))

	r := run(t, "", "read", filepath.Join(dir, "*.fa"), "--render", "tsv", "--sequence-col", "seq")
	require.Equal(t, 0, r.code, r.stderr)
	lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id\tname\tdescription\tseq", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "a\t"))
	assert.True(t, strings.HasPrefix(lines[2], "b\t"))

	r = run(t, ">c\nTT\n", "read", "-", "--format", "fasta", "--uids", "--render", "json")
	require.Equal(t, 0, r.code, r.stderr)
	got := rows(t, r.stdout)
	require.Len(t, got, 1)
	assert.Len(t, got[0]["uid"], 10)
}

func TestReadTextRenderToFile(t *testing.T) {
	in := testutil.WriteFile(t, "x.fa", ">a\nAC\n")
	out := filepath.Join(t.TempDir(), "table.txt")
	r := run(t, "", "read", in, "-o", out)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stdout)
	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "(1 rows)")
}

func TestSQLiteRoundTrip(t *testing.T) {
	in := testutil.WriteFile(t, "aln.fa", ">s1\nACGT\n>s2\nACGA\n")
	db := filepath.Join(t.TempDir(), "seqs.sqlite")

	r := run(t, "", "read", in, "--db", db, "--table", "seqs")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	r = run(t, "", "write", "--db", db, "--query", "SELECT id, sequence FROM seqs ORDER BY id", "--format", "phylip")
	require.Equal(t, 0, r.code, r.stderr)
	assertPhylip(t, r.stdout, [][]string{{"s1", "ACGT"}, {"s2", "ACGA"}})
}

func TestConfigFileAndEnv(t *testing.T) {
	cfg := testutil.WriteFile(t, "phyloframe.yaml", "alphabet: dna\nrender: csv\n")
	in := testutil.WriteFile(t, "seqs.csv", table)

	r := run(t, "", "--config", cfg, "write", in, "--format", "nexus")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, strings.ToLower(r.stdout), "datatype=dna")

	fa := testutil.WriteFile(t, "x.fa", ">a\nAC\n")
	t.Setenv("PHYLOFRAME_RENDER", "json")
	r = run(t, "", "--config", cfg, "read", fa)
	require.Equal(t, 0, r.code, r.stderr)
	assert.Len(t, rows(t, r.stdout), 1)
}

func TestFormatsAndVersion(t *testing.T) {
	r := run(t, "", "formats", "--render", "json")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Len(t, rows(t, r.stdout), 7)

	r = run(t, "", "formats")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "nexus")

	r = run(t, "", "version")
	require.Equal(t, 0, r.code, r.stderr)
	assert.True(t, strings.HasPrefix(r.stdout, "phyloframe v"))

	r = run(t, "")
	require.Equal(t, 0, r.code, r.stderr)
	assert.Contains(t, r.stdout, "Usage:")
}

func TestExitCodes(t *testing.T) {
	in := testutil.WriteFile(t, "seqs.csv", table)
	tests := []struct {
		name   string
		argv   []string
		code   int
		stderr string
	}{
		{"missing format", []string{"write", in}, 2, "--format is required"},
		{"unknown format", []string{"write", in, "--format", "genbank"}, 2, "unknown format"},
		{"unknown flag", []string{"write", in, "--format", "fasta", "--nope"}, 2, "unknown flag"},
		{"unknown command", []string{"convert"}, 2, "unknown command"},
		{"formats with argument", []string{"formats", "extra"}, 2, "extra"},
		{"version with argument", []string{"version", "extra"}, 2, "extra"},
		{"two tables", []string{"write", in, in, "--format", "fasta"}, 2, "at most 1 arg"},
		{"bad alphabet", []string{"write", in, "--format", "fasta", "--alphabet", "amino"}, 2, "alphabet"},
		{"formats as csv", []string{"formats", "--render", "csv"}, 2, "text or json"},
		{"unguessable input", []string{"read", in}, 2, "pass --format"},
		{"db without table", []string{"read", in, "--format", "fasta", "--db", "x.sqlite"}, 2, "--db and --table"},
		{"alphabet required", []string{"write", in, "--format", "embl"}, 1, "requires an alphabet"},
		{"missing column", []string{"write", in, "--format", "fasta", "--id-col", "acc"}, 1, "acc"},
		{"invalid residues", []string{"write", in, "--format", "swiss", "--alphabet", "rna"}, 1, "swiss"},
		{"missing table", []string{"write", "nope.csv", "--format", "fasta"}, 1, "nope.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := run(t, "", tt.argv...)
			assert.Equal(t, tt.code, r.code, r.stderr)
			assert.Contains(t, r.stderr, tt.stderr)
			if tt.code == 2 {
				assert.Contains(t, r.stderr, "--help")
			}
		})
	}
}

func TestCancelledContextStopsDatabaseWork(t *testing.T) {
	db := filepath.Join(t.TempDir(), "seqs.sqlite")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := app.RunIO(ctx, []string{"write", "--db", db, "--query", "SELECT 1", "--format", "fasta"},
		strings.NewReader(""), &out, &errBuf)
	assert.Equal(t, 1, code)
	assert.Contains(t, errBuf.String(), "context canceled")
}
