package services

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// UpdateGuard tracks oracle ids with an update currently in flight.
// Acquire is an atomic check-and-insert: a second caller for the same
// id is told to back off rather than queue. The guard is shared by the
// scheduler and every manual-trigger entry point so no two update
// attempts for the same oracle ever overlap.
type UpdateGuard struct {
	inFlight cmap.ConcurrentMap[string, time.Time]
}

// NewUpdateGuard creates an empty guard.
func NewUpdateGuard() *UpdateGuard {
	return &UpdateGuard{
		inFlight: cmap.New[time.Time](),
	}
}

// Acquire marks the oracle id as updating. It returns false if an
// update for the id is already in flight.
func (g *UpdateGuard) Acquire(oracleID string) bool {
	return g.inFlight.SetIfAbsent(oracleID, time.Now())
}

// Release removes the oracle id from the in-flight set. Safe to call on
// ids that were never acquired.
func (g *UpdateGuard) Release(oracleID string) {
	g.inFlight.Remove(oracleID)
}

// IsUpdating reports whether an update for the id is in flight.
func (g *UpdateGuard) IsUpdating(oracleID string) bool {
	return g.inFlight.Has(oracleID)
}

// Updating returns the ids currently in flight.
func (g *UpdateGuard) Updating() []string {
	return g.inFlight.Keys()
}
