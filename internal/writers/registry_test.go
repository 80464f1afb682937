package writers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phyloframe/pkg/api"
	"phyloframe/pkg/frame"
)

func TestUnknownFrameRenderError(t *testing.T) {
	var b bytes.Buffer
	f, err := frame.New("id")
	require.NoError(t, err)
	err = WriteFrame("nope-format", &b, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown frame render")
	assert.Zero(t, b.Len())
}

func TestUnknownFormatsRenderError(t *testing.T) {
	var b bytes.Buffer
	err := WriteFormats("csv", &b, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown formats render")
}

func TestRegisteredNames(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "jsonl", "text", "tsv"}, FrameNames())
	assert.Equal(t, []string{"json", "text"}, FormatsNames())
}

func TestDispatch(t *testing.T) {
	f, err := frame.New("id", "sequence")
	require.NoError(t, err)
	require.NoError(t, f.Append("s1", "ACGT"))

	var b bytes.Buffer
	require.NoError(t, WriteFrame("csv", &b, f))
	assert.Equal(t, "id,sequence\ns1,ACGT\n", b.String())

	b.Reset()
	require.NoError(t, WriteFormats("json", &b, []api.FormatV1{{Format: "fasta"}}))
	assert.True(t, strings.HasPrefix(b.String(), "[\n"))
}
