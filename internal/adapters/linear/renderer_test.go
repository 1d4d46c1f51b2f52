package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/bento/internal/adapters/linear"
)

func TestRenderer_StepLifecycle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.OnPlanEmit([]string{"amp-accordion", "amp-sidebar"})
	r.OnStepStart("s1", "amp-accordion:css", start)
	r.OnStepLog("s1", []byte("compiling accordion.css\nwrit"))
	r.OnStepLog("s1", []byte("ing build/css/amp-accordion-1.0.css\r\n"))
	r.OnStepLog("s1", []byte("partial"))
	r.OnStepComplete("s1", start.Add(1500*time.Millisecond), nil)

	r.OnStepStart("s2", "amp-sidebar:bundle", start)
	r.OnStepComplete("s2", start.Add(20*time.Millisecond), errors.New("exit status 1"))

	g := goldie.New(t)
	g.Assert(t, "lifecycle_stdout", stdout.Bytes())
	g.Assert(t, "lifecycle_stderr", stderr.Bytes())
}

func TestRenderer_UnknownSpan(t *testing.T) {
	var stdout, stderr bytes.Buffer
	r := linear.NewRenderer(&stdout, &stderr)

	r.OnStepLog("missing", []byte("ignored\n"))
	r.OnStepComplete("missing", time.Now(), nil)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRenderer_EndBuildStep(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var stderr bytes.Buffer
	r := linear.NewRenderer(nil, &stderr)
	r.EndBuildStep("Minified all", "components", time.Now().Add(-time.Second))

	assert.Contains(t, stderr.String(), "Minified all components in ")
}

func TestRenderer_ColorsOutcome(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var stderr bytes.Buffer
	r := linear.NewRenderer(nil, &stderr)
	start := time.Now()
	r.OnStepStart("s1", "amp-accordion:css", start)
	r.OnStepComplete("s1", start, nil)

	assert.Contains(t, stderr.String(), "\x1b[")
	assert.Contains(t, stderr.String(), "✓")
	assert.Contains(t, stderr.String(), "amp-accordion:css")
}
