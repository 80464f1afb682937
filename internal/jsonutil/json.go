// Package jsonutil holds the CLI's JSON encoding conventions. HTML
// characters are never escaped, so descriptions like "5'<->3'" print as
// written.
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder writing to w. An empty indent writes one
// value per line.
func NewEncoder(w io.Writer, indent string) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc
}

// EncodePretty writes v with two-space indentation.
func EncodePretty(w io.Writer, v any) error { return NewEncoder(w, "  ").Encode(v) }
