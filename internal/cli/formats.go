package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"phyloframe/internal/writers"
	"phyloframe/pkg/api"
	"phyloframe/pkg/phyloframe"
)

func newFormatsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported sequence formats and their defaults",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(writers.FormatsNames(), rt.cfg.Render) {
				return usagef("formats renders as text or json, not %q", rt.cfg.Render)
			}
			return writeFormats(cmd.OutOrStdout(), rt.cfg.Render)
		},
	}
	cmd.Flags().String("render", "", "listing rendering: text or json (default \"text\")")
	return cmd
}

func writeFormats(w io.Writer, name string) error {
	defs := phyloframe.Formats()
	list := make([]api.FormatV1, len(defs))
	for i, d := range defs {
		list[i] = api.FormatV1{
			Format:           d.Format,
			IDOnly:           d.IDOnly,
			CallerIDOnly:     d.CallerIDOnly,
			AlphabetRequired: d.AlphabetRequired,
			Quality:          d.Quality,
		}
	}
	return writers.WriteFormats(name, w, list)
}
