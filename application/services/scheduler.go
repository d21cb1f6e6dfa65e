package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/domain/interfaces"
)

const (
	// tickInterval is the scheduler poll period.
	tickInterval = 60 * time.Second

	// interUpdateDelay paces sequential updates within a tick. Updates
	// share the signing and broadcast path, so back-to-back submissions
	// risk nonce races on shared infrastructure.
	interUpdateDelay = 60 * time.Second
)

// Scheduler polls all configured oracles, computes due-ness from
// lastUpdate + interval, and drives the update use case sequentially
// with de-duplication and pacing. One oracle's failure never halts the
// loop or affects others.
type Scheduler struct {
	store    interfaces.ConfigStore
	contract interfaces.OracleContract
	updater  interfaces.UpdateOracleUseCase
	guard    *UpdateGuard
	metrics  interfaces.MetricsRecorder
	logger   interfaces.Logger

	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	done     chan struct{}
	lastTick *time.Time

	now   func() time.Time
	after func(d time.Duration) <-chan time.Time
}

// NewScheduler creates a scheduler. Start must be called to begin the
// loop.
func NewScheduler(
	store interfaces.ConfigStore,
	contract interfaces.OracleContract,
	updater interfaces.UpdateOracleUseCase,
	guard *UpdateGuard,
	metrics interfaces.MetricsRecorder,
	logger interfaces.Logger,
) *Scheduler {
	return &Scheduler{
		store:    store,
		contract: contract,
		updater:  updater,
		guard:    guard,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		after:    time.After,
	}
}

// NewSchedulerWithClock creates a scheduler with an injected clock and
// timer, for tests.
func NewSchedulerWithClock(
	store interfaces.ConfigStore,
	contract interfaces.OracleContract,
	updater interfaces.UpdateOracleUseCase,
	guard *UpdateGuard,
	metrics interfaces.MetricsRecorder,
	logger interfaces.Logger,
	now func() time.Time,
	after func(d time.Duration) <-chan time.Time,
) *Scheduler {
	s := NewScheduler(store, contract, updater, guard, metrics, logger)
	if now != nil {
		s.now = now
	}
	if after != nil {
		s.after = after
	}
	return s
}

// Start launches the background loop. Calling Start on a running
// scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.logger.Debug("Scheduler already running")
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	s.metrics.SetSchedulerRunning(true)
	s.logger.Info("Scheduler started", "tickInterval", tickInterval.String())

	go s.run(s.stopCh, s.done)
}

// Stop halts the loop and waits for the current tick to finish.
// Calling Stop on a stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	done := s.done
	s.mu.Unlock()

	<-done
	s.metrics.SetSchedulerRunning(false)
	s.logger.Info("Scheduler stopped")
}

// Status returns the scheduler's current state.
func (s *Scheduler) Status() entities.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return entities.SchedulerStatus{
		Running:           s.running,
		CurrentlyUpdating: s.guard.Updating(),
		LastTickAt:        s.lastTick,
	}
}

// DueOracles returns all active oracles currently due for an update,
// in id order.
func (s *Scheduler) DueOracles(ctx context.Context) ([]entities.OracleConfig, error) {
	configs, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	due := make([]entities.OracleConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.IsActive && cfg.IsDue(now) {
			due = append(due, cfg)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due, nil
}

// run is the scheduler loop body.
func (s *Scheduler) run(stopCh, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	s.tick(stopCh)
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.tick(stopCh)
		}
	}
}

// tick processes one scheduler pass over all configured oracles.
func (s *Scheduler) tick(stopCh chan struct{}) {
	ctx := context.Background()
	now := s.now()

	s.mu.Lock()
	s.lastTick = &now
	s.mu.Unlock()

	configs, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load oracle configs", "error", err)
		return
	}

	ids := make([]string, 0, len(configs))
	for id := range configs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		select {
		case <-stopCh:
			return
		default:
		}

		cfg := configs[id]
		if !cfg.IsActive {
			s.logger.Debug("Skipping paused oracle", "oracle", id)
			continue
		}
		if !cfg.IsDue(s.now()) {
			continue
		}
		if s.guard.IsUpdating(id) {
			s.logger.Debug("Skipping oracle with update in flight", "oracle", id)
			continue
		}

		exists, err := s.contract.Exists(ctx, id)
		if err != nil {
			s.logger.Warn("Failed to check oracle deployment", "oracle", id, "error", err)
			continue
		}
		if !exists {
			s.logger.Info("Oracle not yet deployed on-chain, skipping", "oracle", id)
			continue
		}

		s.runOne(ctx, id)

		if !s.pause(stopCh, interUpdateDelay) {
			return
		}
	}
}

// runOne executes one update attempt, containing any failure.
func (s *Scheduler) runOne(ctx context.Context, oracleID string) {
	outcome, err := s.updater.Execute(ctx, oracleID)
	if err != nil {
		s.logger.Error("Oracle update failed", "oracle", oracleID, "error", err)
		return
	}

	if outcome.Skipped {
		s.logger.Info("Oracle update skipped", "oracle", oracleID, "reason", outcome.SkipReason)
		return
	}

	s.logger.Info("Oracle updated",
		"oracle", oracleID,
		"oldValue", outcome.OldValue.String(),
		"newValue", outcome.NewValue.String(),
		"txHash", outcome.TxHash.Hex())
}

// pause waits for the inter-update delay, returning false if the
// scheduler was stopped meanwhile.
func (s *Scheduler) pause(stopCh chan struct{}, d time.Duration) bool {
	select {
	case <-s.after(d):
		return true
	case <-stopCh:
		return false
	}
}
