package writers

import (
	"fmt"
	"io"
	"slices"

	"phyloframe/internal/output"
	"phyloframe/pkg/api"
	"phyloframe/pkg/frame"
)

// Writer registries (render name → handler).
var (
	FrameWriters   = map[string]func(w io.Writer, f *frame.Frame) error{}
	FormatsWriters = map[string]func(w io.Writer, list []api.FormatV1) error{}
)

// Register helpers (idempotent last-wins)
func RegisterFrame(name string, fn func(io.Writer, *frame.Frame) error) { FrameWriters[name] = fn }
func RegisterFormats(name string, fn func(io.Writer, []api.FormatV1) error) {
	FormatsWriters[name] = fn
}

func init() {
	RegisterFrame("text", output.WriteTable)
	RegisterFrame("csv", func(w io.Writer, f *frame.Frame) error { return output.WriteDelimited(w, f, ',') })
	RegisterFrame("tsv", func(w io.Writer, f *frame.Frame) error { return output.WriteDelimited(w, f, '\t') })
	RegisterFrame("json", output.WriteJSON)
	RegisterFrame("jsonl", func(w io.Writer, f *frame.Frame) error { return output.WriteJSONL(w, f, IsBrokenPipe) })

	RegisterFormats("text", output.WriteFormatsText)
	RegisterFormats("json", output.WriteFormatsJSON)
}

// WriteFrame renders f with the named writer.
func WriteFrame(name string, w io.Writer, f *frame.Frame) error {
	fn, ok := FrameWriters[name]
	if !ok {
		return fmt.Errorf("unknown frame render %q (no writer registered)", name)
	}
	return fn(w, f)
}

// WriteFormats renders a format listing with the named writer.
func WriteFormats(name string, w io.Writer, list []api.FormatV1) error {
	fn, ok := FormatsWriters[name]
	if !ok {
		return fmt.Errorf("unknown formats render %q (no writer registered)", name)
	}
	return fn(w, list)
}

// FrameNames lists the registered frame renders, sorted.
func FrameNames() []string { return sortedKeys(FrameWriters) }

// FormatsNames lists the registered format-listing renders, sorted.
func FormatsNames() []string { return sortedKeys(FormatsWriters) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
