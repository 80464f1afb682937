package appshell

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phyloframe/internal/app"
)

func TestInvokeBareArgsShowHelp(t *testing.T) {
	var got []string
	code := Invoke(context.Background(), func(_ context.Context, argv []string, _, _ io.Writer) int {
		got = argv
		return 0
	}, nil, io.Discard, io.Discard)
	assert.Equal(t, 0, code)
	assert.Equal(t, []string{"--help"}, got)
}

func TestInvokeCancelledRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := func(context.Context, []string, io.Writer, io.Writer) int { return 0 }
	failed := func(context.Context, []string, io.Writer, io.Writer) int { return 1 }
	assert.Equal(t, ExitInterrupted, Invoke(ctx, ok, []string{"version"}, io.Discard, io.Discard))
	assert.Equal(t, 1, Invoke(ctx, failed, []string{"version"}, io.Discard, io.Discard))
}

func TestInvokeApp(t *testing.T) {
	var out bytes.Buffer
	code := Invoke(context.Background(), app.RunContext, []string{"version"}, &out, io.Discard)
	require.Equal(t, 0, code)
	assert.Contains(t, out.String(), "phyloframe v")
}
