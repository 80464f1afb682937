package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"phyloframe/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "phyloframe v%s (commit %s, built %s)\n",
				version.Version, version.GitCommit, version.BuildDate)
		},
	}
}
