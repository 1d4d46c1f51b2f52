// Package compiler drives the external CSS, grammar and JS toolchains of a component build.
package compiler

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultNpmTargets are the packaged binaries built when a component declares none.
// Targets whose entry point does not exist are skipped.
var DefaultNpmTargets = []domain.Binary{
	{
		EntryPoint: "component.js",
		Outfile:    "component-preact.js",
		External:   []string{"preact", "preact/dom", "preact/compat", "preact/hooks"},
	},
	{
		EntryPoint: "component.js",
		Outfile:    "component-react.js",
		External:   []string{"react", "react-dom"},
	},
}

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain implements ports.Toolchain by running the configured commands through an executor.
type Toolchain struct {
	executor ports.Executor
	commands domain.ToolchainSettings
	layout   domain.Layout
}

// New creates a Toolchain running commands with executor and writing outputs below the settings' layout.
func New(executor ports.Executor, settings *domain.Settings) *Toolchain {
	return &Toolchain{
		executor: executor,
		commands: settings.Toolchain,
		layout:   settings.Layout(),
	}
}

// CompileCSS compiles <dir>/<name>.css into build/css and wraps the result in a JS module.
func (t *Toolchain) CompileCSS(ctx context.Context, dir, name, version string, opts domain.BuildOptions) error {
	input := filepath.Join(dir, name+".css")
	output := t.layout.CSSOutput(name, version)
	if err := ensureDir(filepath.Dir(output)); err != nil {
		return err
	}

	if len(t.commands.CSS) == 0 {
		if err := copyFile(input, output); err != nil {
			return err
		}
	} else {
		err := t.run(ctx, t.commands.CSS, templateData{
			Input: input, Output: output, Name: name, Version: version, Dir: dir, Minify: opts.Minify,
		})
		if err != nil {
			return err
		}
	}

	css, err := os.ReadFile(output) //nolint:gosec // output path is derived from the layout
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read compiled stylesheet"), "path", output)
	}
	return writeCSSModule(t.layout.CSSModule(name, version), css)
}

// CompileGrammar compiles every grammar file under dir matching pattern into build/parsers.
func (t *Toolchain) CompileGrammar(ctx context.Context, dir, pattern string) error {
	files, err := doublestar.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return zerr.With(zerr.Wrap(err, "invalid grammar pattern"), "pattern", pattern)
	}
	for _, file := range files {
		output := t.layout.ParserOutput(file)
		if err := ensureDir(filepath.Dir(output)); err != nil {
			return err
		}
		if err := t.run(ctx, t.commands.Grammar, templateData{Input: file, Output: output, Dir: dir}); err != nil {
			return err
		}
	}
	return nil
}

// BundleJS bundles <dir>/<entryName>.js into the dist directory as opts.Filename.
func (t *Toolchain) BundleJS(ctx context.Context, dir, entryName string, opts ports.BundleOptions) error {
	output := filepath.Join(t.layout.DistDir, opts.Filename)
	if err := ensureDir(filepath.Dir(output)); err != nil {
		return err
	}
	return t.bundle(ctx, templateData{
		Input:   filepath.Join(dir, entryName+".js"),
		Output:  output,
		Name:    entryName,
		Dir:     dir,
		Wrapper: opts.Wrapper,
		Minify:  opts.Minify,
	})
}

// BuildNpmBinaries bundles the component's packaged targets into <dir>/dist.
func (t *Toolchain) BuildNpmBinaries(ctx context.Context, dir, name string, opts domain.BuildOptions) error {
	targets := opts.Npm
	if len(targets) == 0 {
		targets = DefaultNpmTargets
	}
	outDir := t.layout.PackageDir(dir)
	for _, b := range targets {
		input := filepath.Join(dir, b.EntryPoint)
		if _, err := os.Stat(input); os.IsNotExist(err) && len(opts.Npm) == 0 {
			continue
		}
		if err := ensureDir(outDir); err != nil {
			return err
		}
		err := t.bundle(ctx, templateData{
			Input: input, Output: filepath.Join(outDir, b.Outfile), Name: name, Dir: dir,
			Minify: opts.Minify, External: b.External,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// BuildNpmCSS copies the component's packaged stylesheets into <dir>/dist.
func (t *Toolchain) BuildNpmCSS(_ context.Context, dir string, opts domain.BuildOptions) error {
	if len(opts.NpmCSS) == 0 {
		return nil
	}
	outDir := t.layout.PackageDir(dir)
	if err := ensureDir(outDir); err != nil {
		return err
	}
	for _, css := range opts.NpmCSS {
		if err := copyFile(filepath.Join(dir, css), filepath.Join(outDir, filepath.Base(css))); err != nil {
			return err
		}
	}
	return nil
}

// BuildBinaries bundles each binary's entry point into the dist directory.
func (t *Toolchain) BuildBinaries(ctx context.Context, dir string, binaries []domain.Binary, opts domain.BuildOptions) error {
	for _, b := range binaries {
		output := filepath.Join(t.layout.DistDir, b.Outfile)
		if err := ensureDir(filepath.Dir(output)); err != nil {
			return err
		}
		err := t.bundle(ctx, templateData{
			Input: filepath.Join(dir, b.EntryPoint), Output: output, Dir: dir,
			Minify: opts.Minify, External: b.External,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// bundle runs the bundle command followed by one external argument per external module.
func (t *Toolchain) bundle(ctx context.Context, data templateData) error {
	argv := t.commands.Bundle
	if t.commands.ExternalArg != "" && len(data.External) > 0 {
		argv = append(append([]string(nil), argv...), externalArgs(t.commands.ExternalArg, data.External)...)
	}
	return t.run(ctx, argv, data)
}

// run expands argv with data and executes it, streaming output to the span carried by ctx.
func (t *Toolchain) run(ctx context.Context, argv []string, data templateData) error {
	args, err := expand(argv, data)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	cmd := &domain.Command{Argv: args}
	if span := ports.SpanFromContext(ctx); span != nil {
		return t.executor.Execute(ctx, cmd, span, span)
	}
	return t.executor.Execute(ctx, cmd, nil, nil)
}

// externalArgs renders the external argument template once per module.
func externalArgs(tmpl string, modules []string) []string {
	args := make([]string, 0, len(modules))
	for _, m := range modules {
		args = append(args, strings.ReplaceAll(tmpl, "{{.}}", m))
	}
	return args
}

// writeCSSModule writes css as a JS module exporting it as the CSS constant.
func writeCSSModule(path string, css []byte) error {
	quoted, err := json.Marshal(string(css))
	if err != nil {
		return err
	}
	content := "export const CSS = " + string(quoted) + ";\n"
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil { //nolint:gosec // build output is world readable
		return zerr.With(zerr.Wrap(err, "failed to write stylesheet module"), "path", path)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // paths come from the manifest layout
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source file"), "path", src)
	}
	if err := os.WriteFile(dst, data, domain.FilePerm); err != nil { //nolint:gosec // build output is world readable
		return zerr.With(zerr.Wrap(err, "failed to write output file"), "path", dst)
	}
	return nil
}

func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", dir)
	}
	return nil
}
