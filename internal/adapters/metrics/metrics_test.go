package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bento/internal/adapters/metrics"
)

func TestObserveComponent(t *testing.T) {
	m := metrics.New()

	m.ObserveComponent("amp-accordion", false, nil)
	m.ObserveComponent("amp-accordion", true, nil)
	m.ObserveComponent("amp-accordion", true, errors.New("boom"))

	assert.InDelta(t, 1, testutil.ToFloat64(m.ComponentBuilds.WithLabelValues("amp-accordion", "build", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ComponentBuilds.WithLabelValues("amp-accordion", "rebuild", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ComponentBuilds.WithLabelValues("amp-accordion", "rebuild", "failure")), 0)
}

func TestObserveStep(t *testing.T) {
	m := metrics.New()

	m.ObserveStep("amp-bind", "grammar", 200*time.Millisecond, nil)
	m.ObserveStep("amp-bind", "bundle", time.Second, errors.New("exit 1"))

	assert.Equal(t, 2, testutil.CollectAndCount(m.StepDuration))
}

func TestObserveCacheLookup(t *testing.T) {
	m := metrics.New()

	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)
	m.ObserveCacheLookup(false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("miss")), 0)
}

func TestRegistry_Gathers(t *testing.T) {
	m := metrics.New()
	m.ObserveCacheLookup(true)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "bento_cache_lookups_total", families[0].GetName())
}

func TestNilMetrics(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObserveStep("a", "css", time.Second, nil)
		m.ObserveComponent("a", false, nil)
		m.ObserveCacheLookup(true)
	})
}
