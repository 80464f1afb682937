package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "phyloframe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, &Config{
		SequenceCol: "sequence",
		IDCol:       "id",
		QualityCol:  "quality",
		Render:      "text",
		Driver:      "sqlite",
	}, cfg)
}

func TestLoadFindsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("alphabet: protein\n"), 0600))
	t.Chdir(dir)

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, used)
	assert.Equal(t, "protein", cfg.Alphabet)
}

func TestLoadFlagPrecedence(t *testing.T) {
	path := writeConfig(t, "id_col: from_file\nrender: csv\n")
	t.Setenv("PHYLOFRAME_ID_COL", "from_env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("id-col", "", "identifier column")
	flags.String("render", "", "render format")
	require.NoError(t, flags.Set("id-col", "from_flag"))

	cfg, used, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "from_flag", cfg.IDCol, "flag value should override config file and env var")
	assert.Equal(t, "csv", cfg.Render, "unset flag should not shadow the file")
}

func TestLoadEnvPrecedenceOverFile(t *testing.T) {
	path := writeConfig(t, "sequence_col: from_file\nverbose: false\n")
	t.Setenv("PHYLOFRAME_SEQUENCE_COL", "from_env")
	t.Setenv("PHYLOFRAME_VERBOSE", "true")

	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.SequenceCol)
	assert.True(t, cfg.Verbose)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{"alphabet", "alphabet: amino\n", "alphabet"},
		{"render", "render: xml\n", "render"},
		{"driver", "driver: postgres\n", "driver"},
		{"empty id column", "id_col: \"\"\n", "id_col"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")
}
