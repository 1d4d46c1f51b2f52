package ports

import (
	"context"

	"go.trai.ch/bento/internal/core/domain"
)

// BundleOptions parameterizes a single JS bundle invocation.
type BundleOptions struct {
	// Filename is the output file name, relative to the dist directory.
	Filename string
	// Wrapper selects the module wrapper. "none" emits the bundle unwrapped.
	Wrapper    string
	ExtraGlobs []string
	Minify     bool
}

// Toolchain drives the external compilers used by a component build.
// Every method blocks until its outputs are written.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// CompileCSS compiles <dir>/<name>.css and writes the stylesheet and its JS module into the build directory.
	CompileCSS(ctx context.Context, dir, name, version string, opts domain.BuildOptions) error
	// CompileGrammar compiles every grammar file under dir matching pattern into a parser module.
	CompileGrammar(ctx context.Context, dir, pattern string) error
	// BundleJS bundles <dir>/<entryName>.js into the dist directory.
	BundleJS(ctx context.Context, dir, entryName string, opts BundleOptions) error
	// BuildNpmBinaries compiles the component's packaged-binary targets into <dir>/dist.
	BuildNpmBinaries(ctx context.Context, dir, name string, opts domain.BuildOptions) error
	// BuildNpmCSS copies the component's packaged stylesheets into <dir>/dist.
	BuildNpmCSS(ctx context.Context, dir string, opts domain.BuildOptions) error
	// BuildBinaries compiles the given binaries of the component into the dist directory.
	BuildBinaries(ctx context.Context, dir string, binaries []domain.Binary, opts domain.BuildOptions) error
}
