package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/bento/internal/app"
	"go.trai.ch/bento/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the selected components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), buildOptions(cmd))
		},
	}
	addSelectionFlags(cmd.Flags())
	addBuildFlags(cmd.Flags())
	return cmd
}

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the components a build would cover",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			preBuild, _ := cmd.Flags().GetBool("prebuild")
			return c.app.List(cmd.Context(), app.ListOptions{
				Common:    common(cmd),
				Selection: selectionFlags(cmd.Flags()),
				PreBuild:  preBuild,
			})
		},
	}
	addSelectionFlags(cmd.Flags())
	cmd.Flags().Bool("prebuild", false, "Only list components selected explicitly")
	return cmd
}

// bareExtensions is the value pflag assigns to --extensions given without one.
const bareExtensions = " "

func addSelectionFlags(fs *pflag.FlagSet) {
	fs.String("extensions", "", `Comma separated components to build, or "inabox"`)
	// A bare --extensions is accepted by the parser and rejected by the selection.
	fs.Lookup("extensions").NoOptDefVal = bareExtensions
	fs.String("extensions_from", "", "File listing the components to build")
	fs.Bool("nocomponents", false, "Build no components")
	fs.Bool("core_runtime_only", false, "Build only the core runtime")
}

func addBuildFlags(fs *pflag.FlagSet) {
	fs.Bool("minify", false, "Minify the standalone bundles")
	fs.Bool("watch", false, "Rebuild components when their sources change")
	fs.Bool("css", false, "Only compile component stylesheets")
	fs.Bool("continue_on_error", false, "Log component failures instead of failing the build")
}

func selectionFlags(fs *pflag.FlagSet) domain.SelectionFlags {
	extensions, _ := fs.GetString("extensions")
	// "--extensions=" is an empty list and selects every component.
	bare := fs.Changed("extensions") && extensions == bareExtensions
	if bare {
		extensions = ""
	}
	from, _ := fs.GetString("extensions_from")
	noComponents, _ := fs.GetBool("nocomponents")
	coreOnly, _ := fs.GetBool("core_runtime_only")
	return domain.SelectionFlags{
		Extensions:      extensions,
		ExtensionsBare:  bare,
		ExtensionsFrom:  from,
		NoComponents:    noComponents,
		CoreRuntimeOnly: coreOnly,
	}
}

func buildOptions(cmd *cobra.Command) app.BuildOptions {
	fs := cmd.Flags()
	minify, _ := fs.GetBool("minify")
	watch, _ := fs.GetBool("watch")
	css, _ := fs.GetBool("css")
	continueOnError, _ := fs.GetBool("continue_on_error")
	return app.BuildOptions{
		Common:    common(cmd),
		Selection: selectionFlags(fs),
		Build: domain.BuildOptions{
			Minify:          minify,
			Watch:           watch,
			CompileOnlyCSS:  css,
			ContinueOnError: continueOnError,
		},
	}
}
