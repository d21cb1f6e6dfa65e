package interfaces

import "time"

// MetricsRecorder records operational metrics for update attempts and
// scheduler state.
type MetricsRecorder interface {
	// RecordUpdateAttempt records the outcome of one update attempt.
	// Result is one of "success", "skipped", "failed".
	RecordUpdateAttempt(oracleID string, result string, duration time.Duration)

	// RecordOracleValue records the last value written for an oracle,
	// scaled back to its decimal representation.
	RecordOracleValue(oracleID string, value float64)

	// SetSchedulerRunning flags whether the scheduler loop is active.
	SetSchedulerRunning(running bool)
}
