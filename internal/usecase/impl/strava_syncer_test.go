package impl

import (
	"context"
	"testing"
	"time"

	"fitsync/internal/domain/entity"
	domainerrors "fitsync/internal/domain/errors"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	mockRepo "fitsync/internal/mocks/repository"
	mockService "fitsync/internal/mocks/service"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stravaSyncerFixtures holds all test dependencies for strava syncer tests.
type stravaSyncerFixtures struct {
	syncer     usecase.ProviderSyncer
	client     *mockService.MockStravaClient
	txManager  *mockRepo.MockTransactionManager
	recordRepo *mockRepo.MockRecordRepository
}

func createTestStravaSyncer(t *testing.T) stravaSyncerFixtures {
	client := mockService.NewMockStravaClient(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	recordRepo := mockRepo.NewMockRecordRepository(t)

	return stravaSyncerFixtures{
		syncer:     NewStravaSyncer(client, txManager),
		client:     client,
		txManager:  txManager,
		recordRepo: recordRepo,
	}
}

// passThroughTx wires Execute to run the batch against the given factory.
func passThroughTx(txManager *mockRepo.MockTransactionManager, recordRepo *mockRepo.MockRecordRepository, t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().RecordRepo().Return(recordRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestStravaSyncer_Sync(t *testing.T) {
	fx := createTestStravaSyncer(t)
	ctx := context.Background()
	userID := uuid.New()
	window := usecase.SyncWindow{
		From: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	fx.client.EXPECT().
		Activities(ctx, "access-token", window.From, window.To).
		Return([]service.StravaSummaryActivity{
			{ID: 1, SportType: "Run", StartDate: window.From},
			{ID: 2, SportType: "Ride", StartDate: window.From},
		}, nil)

	passThroughTx(fx.txManager, fx.recordRepo, t)
	fx.recordRepo.EXPECT().
		UpsertActivity(ctx, mock.AnythingOfType("*entity.ActivityRecord")).
		Return(nil).
		Times(2)

	processed, err := fx.syncer.Sync(ctx, userID, "access-token", entity.CallActivities, window)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
}

func TestStravaSyncer_Sync_EmptyWindowSkipsTransaction(t *testing.T) {
	fx := createTestStravaSyncer(t)
	ctx := context.Background()
	window := usecase.SyncWindow{
		From: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	fx.client.EXPECT().
		Activities(ctx, "access-token", window.From, window.To).
		Return(nil, nil)

	processed, err := fx.syncer.Sync(ctx, uuid.New(), "access-token", entity.CallActivities, window)
	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestStravaSyncer_Sync_UnsupportedCallType(t *testing.T) {
	fx := createTestStravaSyncer(t)

	_, err := fx.syncer.Sync(context.Background(), uuid.New(), "access-token",
		entity.CallSleep, usecase.SyncWindow{})
	assert.Error(t, err)
}

func TestStravaSyncer_Sync_FetchFailure(t *testing.T) {
	fx := createTestStravaSyncer(t)
	ctx := context.Background()

	fx.client.EXPECT().
		Activities(ctx, "access-token", mock.Anything, mock.Anything).
		Return(nil, &service.ProviderAPIError{StatusCode: 429})

	_, err := fx.syncer.Sync(ctx, uuid.New(), "access-token", entity.CallActivities, usecase.SyncWindow{})
	require.Error(t, err)

	var apiErr *service.ProviderAPIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestStravaSyncer_Sync_StorageFailureIsSyncError(t *testing.T) {
	fx := createTestStravaSyncer(t)
	ctx := context.Background()
	window := usecase.SyncWindow{
		From: time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	fx.client.EXPECT().
		Activities(ctx, "access-token", window.From, window.To).
		Return([]service.StravaSummaryActivity{{ID: 1, StartDate: window.From}}, nil)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection refused"))

	_, err := fx.syncer.Sync(ctx, uuid.New(), "access-token", entity.CallActivities, window)
	require.Error(t, err)

	var syncErr *domainerrors.SyncError
	require.True(t, errors.As(err, &syncErr))
	assert.Equal(t, entity.KindStorageUnavailable, syncErr.Kind)
}

func TestStravaSyncer_ProviderAndCallTypes(t *testing.T) {
	fx := createTestStravaSyncer(t)

	assert.Equal(t, entity.ProviderStrava, fx.syncer.Provider())
	assert.Equal(t, []entity.CallType{entity.CallActivities}, fx.syncer.CallTypes())
}
