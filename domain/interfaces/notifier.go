package interfaces

import "context"

// Notifier sends operator-facing alerts about oracle update failures.
type Notifier interface {
	// NotifyUpdateFailure reports a failed update attempt for an oracle.
	NotifyUpdateFailure(ctx context.Context, oracleID string, errMessage string) error

	// IsConfigured reports whether the notifier has a destination set.
	IsConfigured() bool
}
