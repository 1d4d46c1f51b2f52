// Package shell runs external toolchain commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/bento/internal/core/domain"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec and a pseudo terminal,
// so compilers keep their colored output.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor. Output without a destination is logged line by line.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Execute runs cmd and waits for it to complete.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if len(cmd.Argv) == 0 {
		return nil
	}

	var sink *logWriter
	if stdout == nil {
		sink = &logWriter{logger: e.logger}
		stdout = sink
		defer func() { _ = sink.Close() }()
	}
	if stderr == nil {
		stderr = stdout
	}

	c := exec.CommandContext(ctx, cmd.Argv[0], cmd.Argv[1:]...) //nolint:gosec // toolchain commands are configured by the user
	c.Dir = cmd.WorkingDir
	c.Env = mergeEnv(os.Environ(), cmd.Env)

	err := run(c, stdout, stderr)
	if err == nil {
		return nil
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	err = zerr.Wrap(err, domain.ErrToolchainCommandFailed.Error())
	err = zerr.With(err, "command", strings.Join(cmd.Argv, " "))
	return zerr.With(err, "exit_code", exitCode)
}

// run starts c on a pseudo terminal and falls back to plain pipes where ptys are unsupported.
func run(c *exec.Cmd, stdout, stderr io.Writer) error {
	ptmx, err := pty.Start(c)
	if errors.Is(err, pty.ErrUnsupported) {
		c.Stdout = stdout
		c.Stderr = stderr
		return c.Run()
	}
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The pty merges both streams.
		_, _ = io.Copy(stdout, ptmx)
	}()

	waitErr := c.Wait()
	// Closing the master ends the copy loop once the remaining output is drained.
	<-ioDone
	_ = ptmx.Close()
	return waitErr
}

// mergeEnv overlays overrides onto the KEY=VALUE pairs of base.
func mergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	env := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		k, _, _ := strings.Cut(entry, "=")
		if _, ok := overrides[k]; ok {
			continue
		}
		env = append(env, entry)
	}
	for k, v := range overrides {
		env = append(env, k+"="+v)
	}
	return env
}

// logWriter forwards complete lines to the logger.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg != "" && w.logger != nil {
		w.logger.Info(msg)
	}
}
