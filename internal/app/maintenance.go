package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.trai.ch/bento/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

// Clean removes the build output described by the settings.
func (a *App) Clean(_ context.Context, opts Common) error {
	settings, err := a.loadSettings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	removed, err := a.Cleaner.Clean(settings.Layout())
	for _, path := range removed {
		a.Logger.Info(fmt.Sprintf("removed %s", path))
	}
	return err
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	Common
	// Update rewrites the expected list instead of checking against it.
	Update      bool
	SkipPrepare bool
}

// Verify rebuilds the output with the prepare commands and compares it to the expected file list.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	if !opts.SkipPrepare {
		prepare, err := prepareCommands(settings, opts.ConfigPath)
		if err != nil {
			return err
		}
		for _, argv := range prepare {
			a.Logger.Info(fmt.Sprintf("running %s", strings.Join(argv, " ")))
			if err := a.Executor.Execute(ctx, &domain.Command{Argv: argv}, nil, nil); err != nil {
				return err
			}
		}
	}

	cfg := settings.Verify
	if opts.Update {
		if err := a.Verifier.WriteExpected(cfg.Expected, cfg.Pattern); err != nil {
			return err
		}
		a.Logger.Info(fmt.Sprintf("updated %s", cfg.Expected))
		return nil
	}

	if err := a.Verifier.Verify(cfg.Expected, cfg.Pattern); err != nil {
		return err
	}
	a.Logger.Info("build output matches " + cfg.Expected)
	return nil
}

// prepareCommands returns the configured prepare commands, defaulting to a clean build by this binary.
func prepareCommands(settings *domain.Settings, configPath string) ([][]string, error) {
	if len(settings.Verify.Prepare) > 0 {
		return settings.Verify.Prepare, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to locate executable")
	}
	var extra []string
	if configPath != "" {
		extra = []string{"--config", configPath}
	}
	return [][]string{
		append([]string{exe, "clean"}, extra...),
		append([]string{exe, "build"}, extra...),
	}, nil
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	Common
	// PathsFile lists one import path per line.
	PathsFile string
}

// Resolve prints the resolution of every unique path listed in the paths file.
func (a *App) Resolve(_ context.Context, opts ResolveOptions) error {
	settings, err := a.loadSettings(opts.ConfigPath, opts.JSONLogs)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(opts.PathsFile)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathsReadFailed.Error()), "path", opts.PathsFile)
	}

	var lines []string
	for line := range strings.SplitSeq(string(data), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}

	var resolver ports.PathResolver = fs.NewResolver(settings.Resolve)
	for _, p := range domain.Dedupe(nil, lines...) {
		if _, err := fmt.Fprintln(a.stdout, resolver.ResolvePath(p)); err != nil {
			return err
		}
	}
	return nil
}
