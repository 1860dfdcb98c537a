package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"staysync/config"
	mirrorMocks "staysync/internal/domains/mirror/mocks"
	"staysync/internal/domains/mirror/model"
	"staysync/internal/domains/sync/service"
	"staysync/shared/constant"
	"staysync/shared/failure"
)

func trackerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Sync.RunBudgetMinutes = 10

	return cfg
}

func TestTracker_BeginFirstRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mirrorMocks.NewMockSyncStatus(ctrl)
	tracker := service.NewTracker(mockRepo, trackerConfig())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{}, nil)

	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, constant.SyncDomainBookings, record.ID)
			assert.Equal(t, model.SyncStateRunning, record.Status)
			assert.NotNil(t, record.StartedAt)
			assert.Nil(t, record.LastSyncAt, "claiming a run must not advance the watermark")

			return nil
		})

	err := tracker.Begin(context.Background(), constant.SyncDomainBookings)
	assert.NoError(t, err)
}

func TestTracker_BeginRejectsFreshRunningRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mirrorMocks.NewMockSyncStatus(ctrl)
	tracker := service.NewTracker(mockRepo, trackerConfig())

	started := time.Now().Add(-time.Minute)
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{
			ID:        constant.SyncDomainBookings,
			Status:    model.SyncStateRunning,
			StartedAt: &started,
		}, nil)

	err := tracker.Begin(context.Background(), constant.SyncDomainBookings)
	assert.Error(t, err)
	assert.Equal(t, 409, failure.GetCode(err))
}

func TestTracker_BeginTakesOverStaleRunningRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mirrorMocks.NewMockSyncStatus(ctrl)
	tracker := service.NewTracker(mockRepo, trackerConfig())

	// Older than twice the 10 minute budget: the previous run crashed.
	started := time.Now().Add(-25 * time.Minute)
	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{
			ID:        constant.SyncDomainBookings,
			Status:    model.SyncStateRunning,
			StartedAt: &started,
		}, nil)

	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateRunning, record.Status)
			assert.True(t, record.StartedAt.After(started), "takeover must restart the clock")

			return nil
		})

	err := tracker.Begin(context.Background(), constant.SyncDomainBookings)
	assert.NoError(t, err)
}

func TestTracker_CompleteRecordsTerminalState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mirrorMocks.NewMockSyncStatus(ctrl)
	tracker := service.NewTracker(mockRepo, trackerConfig())

	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateSuccess, record.Status)
			assert.Nil(t, record.StartedAt)
			assert.NotNil(t, record.LastSyncAt)
			assert.Nil(t, record.LastError)
			assert.Equal(t, 42, record.BookingsCount)
			assert.Equal(t, 3, record.FailedCount)

			return nil
		})

	tracker.Complete(context.Background(), constant.SyncDomainBookings, service.RunResult{
		Bookings: 42,
		Failed:   3,
		Duration: 90 * time.Second,
	})
}

func TestTracker_FailKeepsErrorForOperators(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mirrorMocks.NewMockSyncStatus(ctrl)
	tracker := service.NewTracker(mockRepo, trackerConfig())

	mockRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record model.SyncStatus) error {
			assert.Equal(t, model.SyncStateError, record.Status)
			assert.NotNil(t, record.LastError)
			assert.Contains(t, *record.LastError, "remote unavailable")

			return nil
		})

	tracker.Fail(context.Background(), constant.SyncDomainBookings, errors.New("remote unavailable"), service.RunResult{})
}

func TestTracker_StatusDefaultsToNever(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mirrorMocks.NewMockSyncStatus(ctrl)
	tracker := service.NewTracker(mockRepo, trackerConfig())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SyncStatus{}, nil)

	record, err := tracker.Status(context.Background(), constant.SyncDomainProperties)
	assert.NoError(t, err)
	assert.Equal(t, constant.SyncDomainProperties, record.ID)
	assert.Equal(t, model.SyncStateNever, record.Status)
}
