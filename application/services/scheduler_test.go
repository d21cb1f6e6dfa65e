package services

import (
	"context"
	"testing"
	"time"

	"theta-oracle-keeper/domain/entities"
	"theta-oracle-keeper/test/helpers"
	"theta-oracle-keeper/test/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// immediateAfter returns timers that fire at once, so pacing delays do
// not slow the tests down.
func immediateAfter(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Time{}
	return ch
}

func newSchedulerForTest(t *testing.T, ctrl *gomock.Controller, now time.Time) (*Scheduler, *mocks.MockConfigStore, *mocks.MockOracleContract, *mocks.MockUpdateOracleUseCase, *mocks.MockMetricsRecorder) {
	t.Helper()

	mockStore := mocks.NewMockConfigStore(ctrl)
	mockContract := mocks.NewMockOracleContract(ctrl)
	mockUpdater := mocks.NewMockUpdateOracleUseCase(ctrl)
	mockMetrics := mocks.NewMockMetricsRecorder(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	scheduler := NewSchedulerWithClock(
		mockStore, mockContract, mockUpdater, NewUpdateGuard(), mockMetrics, mockLogger,
		func() time.Time { return now },
		immediateAfter,
	)
	return scheduler, mockStore, mockContract, mockUpdater, mockMetrics
}

func TestScheduler_DueOracles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	scheduler, mockStore, _, _, _ := newSchedulerForTest(t, ctrl, now)
	ctx := context.Background()

	t.Run("filters to active and due, sorted by id", func(t *testing.T) {
		fresh := now.Add(-5 * time.Minute)
		stale := now.Add(-2 * time.Hour)

		neverUpdated := helpers.TestOracleConfig("zzz-never")

		overdue := helpers.TestOracleConfig("aaa-overdue")
		overdue.LastUpdate = &stale

		recent := helpers.TestOracleConfig("bbb-recent")
		recent.LastUpdate = &fresh

		paused := helpers.TestOracleConfig("ccc-paused")
		paused.IsActive = false
		paused.LastUpdate = &stale

		mockStore.EXPECT().Load(ctx).Return(map[string]entities.OracleConfig{
			neverUpdated.ID: neverUpdated,
			overdue.ID:      overdue,
			recent.ID:       recent,
			paused.ID:       paused,
		}, nil)

		due, err := scheduler.DueOracles(ctx)
		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, "aaa-overdue", due[0].ID)
		assert.Equal(t, "zzz-never", due[1].ID)
	})

	t.Run("store error propagates", func(t *testing.T) {
		mockStore.EXPECT().Load(ctx).Return(nil, assert.AnError)

		due, err := scheduler.DueOracles(ctx)
		require.Error(t, err)
		assert.Nil(t, due)
	})
}

func TestScheduler_Tick(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-2 * time.Hour)

	t.Run("updates due oracles in id order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, mockContract, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		first := helpers.TestOracleConfig("aaa-first")
		first.LastUpdate = &stale
		second := helpers.TestOracleConfig("bbb-second")
		second.LastUpdate = &stale

		mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{
			first.ID:  first,
			second.ID: second,
		}, nil)

		gomock.InOrder(
			mockContract.EXPECT().Exists(gomock.Any(), "aaa-first").Return(true, nil),
			mockUpdater.EXPECT().Execute(gomock.Any(), "aaa-first").Return(&entities.UpdateOutcome{
				OracleID:   "aaa-first",
				Skipped:    true,
				SkipReason: "value unchanged",
			}, nil),
			mockContract.EXPECT().Exists(gomock.Any(), "bbb-second").Return(true, nil),
			mockUpdater.EXPECT().Execute(gomock.Any(), "bbb-second").Return(&entities.UpdateOutcome{
				OracleID:   "bbb-second",
				Skipped:    true,
				SkipReason: "value unchanged",
			}, nil),
		)

		scheduler.tick(make(chan struct{}))
	})

	t.Run("skips paused, not due, and undeployed oracles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, mockContract, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		fresh := now.Add(-5 * time.Minute)

		paused := helpers.TestOracleConfig("aaa-paused")
		paused.IsActive = false
		paused.LastUpdate = &stale

		recent := helpers.TestOracleConfig("bbb-recent")
		recent.LastUpdate = &fresh

		undeployed := helpers.TestOracleConfig("ccc-undeployed")
		undeployed.LastUpdate = &stale

		mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{
			paused.ID:     paused,
			recent.ID:     recent,
			undeployed.ID: undeployed,
		}, nil)

		mockContract.EXPECT().Exists(gomock.Any(), "ccc-undeployed").Return(false, nil)
		mockUpdater.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

		scheduler.tick(make(chan struct{}))
	})

	t.Run("skips oracle with update in flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, _, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		busy := helpers.TestOracleConfig("aaa-busy")
		busy.LastUpdate = &stale
		scheduler.guard.Acquire(busy.ID)
		defer scheduler.guard.Release(busy.ID)

		mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{
			busy.ID: busy,
		}, nil)
		mockUpdater.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

		scheduler.tick(make(chan struct{}))
	})

	t.Run("one failure does not halt the pass", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, mockContract, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		failing := helpers.TestOracleConfig("aaa-failing")
		failing.LastUpdate = &stale
		healthy := helpers.TestOracleConfig("bbb-healthy")
		healthy.LastUpdate = &stale

		mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{
			failing.ID: failing,
			healthy.ID: healthy,
		}, nil)

		mockContract.EXPECT().Exists(gomock.Any(), "aaa-failing").Return(true, nil)
		mockUpdater.EXPECT().Execute(gomock.Any(), "aaa-failing").Return(nil, assert.AnError)
		mockContract.EXPECT().Exists(gomock.Any(), "bbb-healthy").Return(true, nil)
		mockUpdater.EXPECT().Execute(gomock.Any(), "bbb-healthy").Return(&entities.UpdateOutcome{
			OracleID:   "bbb-healthy",
			Skipped:    true,
			SkipReason: "value unchanged",
		}, nil)

		scheduler.tick(make(chan struct{}))
	})

	t.Run("deployment check failure skips only that oracle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, mockContract, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		flaky := helpers.TestOracleConfig("aaa-flaky")
		flaky.LastUpdate = &stale
		healthy := helpers.TestOracleConfig("bbb-healthy")
		healthy.LastUpdate = &stale

		mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{
			flaky.ID:   flaky,
			healthy.ID: healthy,
		}, nil)

		mockContract.EXPECT().Exists(gomock.Any(), "aaa-flaky").Return(false, assert.AnError)
		mockContract.EXPECT().Exists(gomock.Any(), "bbb-healthy").Return(true, nil)
		mockUpdater.EXPECT().Execute(gomock.Any(), "bbb-healthy").Return(&entities.UpdateOutcome{
			OracleID:   "bbb-healthy",
			Skipped:    true,
			SkipReason: "value unchanged",
		}, nil)

		scheduler.tick(make(chan struct{}))
	})

	t.Run("stop during pass aborts remaining oracles", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, mockContract, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		stopCh := make(chan struct{})
		// The pacing pause observes stopCh before the timer: closing it
		// after the first update means the second oracle is never reached.
		scheduler.after = func(time.Duration) <-chan time.Time {
			return make(chan time.Time)
		}

		first := helpers.TestOracleConfig("aaa-first")
		first.LastUpdate = &stale
		second := helpers.TestOracleConfig("bbb-second")
		second.LastUpdate = &stale

		mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{
			first.ID:  first,
			second.ID: second,
		}, nil)

		mockContract.EXPECT().Exists(gomock.Any(), "aaa-first").Return(true, nil)
		mockUpdater.EXPECT().Execute(gomock.Any(), "aaa-first").DoAndReturn(
			func(context.Context, string) (*entities.UpdateOutcome, error) {
				close(stopCh)
				return &entities.UpdateOutcome{
					OracleID:   "aaa-first",
					Skipped:    true,
					SkipReason: "value unchanged",
				}, nil
			})

		scheduler.tick(stopCh)
	})

	t.Run("load failure ends the tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduler, mockStore, _, mockUpdater, _ := newSchedulerForTest(t, ctrl, now)

		mockStore.EXPECT().Load(gomock.Any()).Return(nil, assert.AnError)
		mockUpdater.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

		scheduler.tick(make(chan struct{}))
	})
}

func TestScheduler_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	scheduler, mockStore, _, _, mockMetrics := newSchedulerForTest(t, ctrl, now)

	mockStore.EXPECT().Load(gomock.Any()).Return(map[string]entities.OracleConfig{}, nil).AnyTimes()
	mockMetrics.EXPECT().SetSchedulerRunning(true).Times(1)
	mockMetrics.EXPECT().SetSchedulerRunning(false).Times(1)

	assert.False(t, scheduler.Status().Running)

	scheduler.Start()
	scheduler.Start() // second call is a no-op
	assert.True(t, scheduler.Status().Running)

	scheduler.Stop()
	scheduler.Stop() // second call is a no-op
	assert.False(t, scheduler.Status().Running)

	status := scheduler.Status()
	require.NotNil(t, status.LastTickAt)
	assert.Equal(t, now, *status.LastTickAt)
	assert.Empty(t, status.CurrentlyUpdating)
}
