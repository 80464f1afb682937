// Package appshell is the process wrapper around app.RunContext.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc matches app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// ExitInterrupted is returned when a signal ended a run that reported success.
const ExitInterrupted = 130

// Main runs run on the process arguments with a context cancelled on
// SIGINT or SIGTERM, then exits with its code.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Invoke(ctx, run, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Invoke calls run once. A bare invocation asks for --help.
func Invoke(ctx context.Context, run RunFunc, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}
	code := run(ctx, argv, stdout, stderr)
	if code == 0 && ctx.Err() != nil {
		return ExitInterrupted
	}
	return code
}
