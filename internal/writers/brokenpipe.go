package writers

import (
	"errors"
	"io"
	"syscall"
)

// readerGone lists what a write returns once the reading end has closed,
// as when `phyloframe read x.fa | head` stops early.
var readerGone = []error{syscall.EPIPE, syscall.ECONNRESET, io.ErrClosedPipe}

// IsBrokenPipe reports whether err means output is no longer being read.
func IsBrokenPipe(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range readerGone {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
