package ports

import "time"

// BuildMetrics records build outcomes.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type BuildMetrics interface {
	// ObserveStep records the duration and outcome of one build step of a component.
	ObserveStep(component, step string, d time.Duration, err error)
	// ObserveComponent records the outcome of a whole component build.
	ObserveComponent(component string, rebuild bool, err error)
	// ObserveCacheLookup records a cache server lookup.
	ObserveCacheLookup(hit bool)
}
