package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bento/internal/app"
)

func (c *CLI) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the build output over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			watch, _ := cmd.Flags().GetBool("watch")
			return c.app.Serve(cmd.Context(), app.ServeOptions{
				BuildOptions: buildOptions(cmd),
				Addr:         addr,
				Watch:        watch,
			})
		},
	}
	addSelectionFlags(cmd.Flags())
	addBuildFlags(cmd.Flags())
	cmd.Flags().String("addr", "", "Listen address, overriding the settings")
	return cmd
}
