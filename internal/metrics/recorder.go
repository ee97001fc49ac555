package metrics

import "time"

// Outcome enumerates build outcome categories for counters.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeWarning Outcome = "warning"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for site builds. Implementations
// must be safe for concurrent use.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome Outcome)
	AddViolations(kind string, n int)
	SetSidebarEntries(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(Outcome)            {}
func (NoopRecorder) AddViolations(string, int)          {}
func (NoopRecorder) SetSidebarEntries(int)              {}
