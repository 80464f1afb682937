package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"phyloframe/internal/jsonutil"
	"phyloframe/pkg/api"
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// WriteFormatsText renders the format table.
func WriteFormatsText(w io.Writer, list []api.FormatV1) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Format", "ID only", "Caller ID only", "Alphabet required", "Quality"})
	for _, f := range list {
		t.AppendRow(table.Row{f.Format, yesNo(f.IDOnly), yesNo(f.CallerIDOnly), yesNo(f.AlphabetRequired), yesNo(f.Quality)})
	}
	t.Render()
	_, err := fmt.Fprintf(w, "(%d formats)\n", len(list))
	return err
}

// WriteFormatsJSON writes the format table as a JSON array.
func WriteFormatsJSON(w io.Writer, list []api.FormatV1) error {
	if list == nil {
		list = []api.FormatV1{}
	}
	return jsonutil.EncodePretty(w, list)
}
