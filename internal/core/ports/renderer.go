package ports

import "time"

// Renderer is the abstraction for build progress output.
// It decouples telemetry collection from presentation.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called with the components selected for a build, in build order.
	OnPlanEmit(components []string)

	// OnStepStart is called when a build step begins.
	OnStepStart(spanID, name string, startTime time.Time)

	// OnStepLog is called when a build step emits output.
	OnStepLog(spanID string, data []byte)

	// OnStepComplete is called when a build step finishes.
	// err is nil if the step succeeded.
	OnStepComplete(spanID string, endTime time.Time, err error)
}

// StepReporter reports the elapsed time of a completed build phase.
type StepReporter interface {
	// EndBuildStep prints label and subject with the time elapsed since start.
	EndBuildStep(label, subject string, start time.Time)
}
