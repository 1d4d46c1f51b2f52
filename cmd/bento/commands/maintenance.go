package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bento/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove build output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context(), common(cmd))
		},
	}
}

func (c *CLI) newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the build output against the expected file list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			update, _ := cmd.Flags().GetBool("update")
			skip, _ := cmd.Flags().GetBool("skip-prepare")
			return c.app.Verify(cmd.Context(), app.VerifyOptions{
				Common:      common(cmd),
				Update:      update,
				SkipPrepare: skip,
			})
		},
	}
	cmd.Flags().BoolP("update", "u", false, "Rewrite the expected file list from the current output")
	cmd.Flags().Bool("skip-prepare", false, "Verify the existing output without rebuilding")
	return cmd
}

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Expand import path aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, _ := cmd.Flags().GetString("paths")
			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				Common:    common(cmd),
				PathsFile: paths,
			})
		},
	}
	cmd.Flags().String("paths", "", "File listing one import path per line")
	_ = cmd.MarkFlagRequired("paths")
	return cmd
}
