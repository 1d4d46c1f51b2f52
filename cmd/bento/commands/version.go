package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/bento/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bento version %s (commit %s, built %s)\n",
				build.Version, build.Commit, build.Date)
			return err
		},
	}
}
