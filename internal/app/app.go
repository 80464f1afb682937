// Package app runs the phyloframe command line and maps outcomes to exit codes.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"phyloframe/internal/cli"
	"phyloframe/internal/writers"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
	ExitOutput  = 3
)

// RunContext runs argv against the process stdin.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return RunIO(parent, argv, os.Stdin, stdout, stderr)
}

// RunIO executes one command. Output is buffered and flushed once; a reader
// that hung up early still counts as success.
func RunIO(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	root := cli.NewRootCmd(stderr)
	root.SetArgs(argv)
	root.SetIn(stdin)
	root.SetOut(outw)
	root.SetErr(stderr)

	code := ExitOK
	if len(argv) == 0 {
		if err := root.Help(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			code = ExitFailure
		}
	} else if err := root.ExecuteContext(parent); err != nil {
		switch {
		case writers.IsBrokenPipe(err):
		case cli.IsUsage(err):
			_, _ = fmt.Fprintf(stderr, "phyloframe: %v\nRun 'phyloframe --help' for usage.\n", err)
			code = ExitUsage
		default:
			_, _ = fmt.Fprintf(stderr, "phyloframe: %v\n", err)
			code = ExitFailure
		}
	}

	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return code
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitOutput
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
