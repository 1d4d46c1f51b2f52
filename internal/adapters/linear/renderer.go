// Package linear provides a synchronous, line-buffered renderer for build progress.
package linear

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/bento/internal/core/ports"
	"go.trai.ch/bento/internal/ui/output"
	"go.trai.ch/bento/internal/ui/style"
)

var (
	_ ports.Renderer     = (*Renderer)(nil)
	_ ports.StepReporter = (*Renderer)(nil)
)

// Renderer prints chronological, name-prefixed build logs.
// Step output goes to stdout; lifecycle messages go to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer

	passed  lipgloss.Style
	failed  lipgloss.Style
	subject lipgloss.Style
	label   lipgloss.Style

	mu    sync.Mutex
	steps map[string]*stepState
}

type stepState struct {
	name      string
	startTime time.Time
	buf       bytes.Buffer
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	styles := lipgloss.NewRenderer(stderr)
	styles.SetColorProfile(output.ColorProfileANSI())
	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		passed:  styles.NewStyle().Foreground(style.Success),
		failed:  styles.NewStyle().Foreground(style.Failure),
		subject: styles.NewStyle().Foreground(style.Accent).Bold(true),
		label:   styles.NewStyle().Faint(true),
		steps:   make(map[string]*stepState),
	}
}

// OnPlanEmit prints the components about to be built.
func (r *Renderer) OnPlanEmit(components []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Building %d component(s): %s\n",
		len(components), strings.Join(components, ", "))
}

// OnStepStart prints a step start message.
func (r *Renderer) OnStepStart(spanID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.steps[spanID] = &stepState{name: name, startTime: startTime}
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", r.prefix(name))
}

// OnStepLog prints every complete line of data with the step's prefix.
// A trailing partial line is held until more output or completion arrives.
func (r *Renderer) OnStepLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	step.buf.Write(data)
	for {
		i := bytes.IndexByte(step.buf.Bytes(), '\n')
		if i < 0 {
			return
		}
		line := step.buf.Next(i + 1)
		r.printLineLocked(step.name, line)
	}
}

// OnStepComplete flushes the step's pending output and prints its outcome.
func (r *Renderer) OnStepComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	step, ok := r.steps[spanID]
	if !ok {
		return
	}
	delete(r.steps, spanID)

	if step.buf.Len() > 0 {
		r.printLineLocked(step.name, step.buf.Bytes())
	}

	duration := endTime.Sub(step.startTime).Round(time.Millisecond)
	if err != nil {
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n",
			r.prefix(step.name), r.failed.Render(style.Cross), duration, err)
		return
	}
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", r.prefix(step.name), r.passed.Render(style.Check), duration)
}

// EndBuildStep prints "<label> <subject> in <elapsed>".
func (r *Renderer) EndBuildStep(label, subject string, start time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	elapsed := time.Since(start).Round(time.Millisecond)
	_, _ = fmt.Fprintf(r.stderr, "%s %s in %v\n", label, r.subject.Render(subject), elapsed)
}

func (r *Renderer) prefix(name string) string {
	return r.label.Render("[" + name + "]")
}

// printLineLocked must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) == 0 {
		return
	}
	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, line)
}
