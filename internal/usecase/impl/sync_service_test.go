package impl

import (
	"context"
	"sync"
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

// stubSyncer is a function-backed ProviderSyncer so tests can script one
// provider's call outcomes without a real API client behind it.
type stubSyncer struct {
	provider  entity.Provider
	callTypes []entity.CallType

	mu     sync.Mutex
	calls  []entity.CallType
	syncFn func(callType entity.CallType) (int, error)
}

func (s *stubSyncer) Provider() entity.Provider {
	return s.provider
}

func (s *stubSyncer) CallTypes() []entity.CallType {
	return s.callTypes
}

func (s *stubSyncer) Sync(_ context.Context, _ uuid.UUID, _ string, callType entity.CallType, _ usecase.SyncWindow) (int, error) {
	s.mu.Lock()
	s.calls = append(s.calls, callType)
	s.mu.Unlock()

	return s.syncFn(callType)
}

func (s *stubSyncer) calledWith() []entity.CallType {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]entity.CallType(nil), s.calls...)
}

// stubTokens scripts ValidAccessToken per provider and records which
// providers got invalidated.
type stubTokens struct {
	tokenFn       func(provider entity.Provider) (string, error)
	invalidateErr error

	mu          sync.Mutex
	invalidated []entity.Provider
}

func (s *stubTokens) ValidAccessToken(_ context.Context, _ uuid.UUID, provider entity.Provider) (string, error) {
	return s.tokenFn(provider)
}

func (s *stubTokens) Invalidate(_ context.Context, _ uuid.UUID, provider entity.Provider) error {
	s.mu.Lock()
	s.invalidated = append(s.invalidated, provider)
	s.mu.Unlock()

	return s.invalidateErr
}

func (s *stubTokens) invalidatedProviders() []entity.Provider {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]entity.Provider(nil), s.invalidated...)
}

// stubReservation records how the orchestrator settles each slot.
type stubReservation struct {
	allowed  bool
	retryAt  time.Time
	commits  int
	releases int
}

func (r *stubReservation) Allowed() bool      { return r.allowed }
func (r *stubReservation) RetryAt() time.Time { return r.retryAt }

func (r *stubReservation) Commit(context.Context) error {
	r.commits++

	return nil
}

func (r *stubReservation) Release() {
	r.releases++
}

// stubLimiter hands out one stubReservation per check and keeps them all
// so tests can assert the settle decisions afterwards.
type stubLimiter struct {
	mu           sync.Mutex
	reservations []*stubReservation
	deny         bool
	retryAt      time.Time
	err          error
}

func (l *stubLimiter) CheckAndReserve(context.Context, uuid.UUID, entity.SubscriptionTier, entity.Provider, entity.CallType) (usecase.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return nil, l.err
	}

	r := &stubReservation{allowed: !l.deny, retryAt: l.retryAt}
	l.reservations = append(l.reservations, r)

	return r, nil
}

func (l *stubLimiter) all() []*stubReservation {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]*stubReservation(nil), l.reservations...)
}

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	svc          usecase.SyncUsecase
	profileRepo  *mockRepo.MockProfileRepository
	recordRepo   *mockRepo.MockRecordRepository
	deviceRepo   *mockRepo.MockDeviceRepository
	publisher    *mockService.MockEventPublisher
	notification *mockService.MockNotificationService
	tokens       *stubTokens
	limiter      *stubLimiter
	now          time.Time
}

func createTestSyncService(t *testing.T, syncers ...usecase.ProviderSyncer) syncServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	recordRepo := mockRepo.NewMockRecordRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	notification := mockService.NewMockNotificationService(t)
	tokens := &stubTokens{tokenFn: func(entity.Provider) (string, error) { return "access-token", nil }}
	limiter := &stubLimiter{}

	svc := NewSyncService(
		profileRepo, recordRepo, deviceRepo,
		tokens, limiter, syncers,
		publisher, notification,
		5*time.Second, 24*time.Hour,
		newDiscardLogger(),
	)

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	svc.(*syncService).now = fixedClock(now)

	return syncServiceFixtures{
		svc:          svc,
		profileRepo:  profileRepo,
		recordRepo:   recordRepo,
		deviceRepo:   deviceRepo,
		publisher:    publisher,
		notification: notification,
		tokens:       tokens,
		limiter:      limiter,
		now:          now,
	}
}

func testProfile(userID uuid.UUID, providers ...entity.Provider) *entity.UserSyncProfile {
	connected := make([]entity.ConnectedProvider, 0, len(providers))
	for _, p := range providers {
		connected = append(connected, entity.ConnectedProvider{Provider: p})
	}

	return &entity.UserSyncProfile{
		ID:                 userID,
		Tier:               entity.TierFree,
		ConnectedProviders: connected,
	}
}

func TestSyncService_SyncAll_PartialFailureIsolation(t *testing.T) {
	userID := uuid.New()

	fitbit := &stubSyncer{
		provider:  entity.ProviderFitbit,
		callTypes: []entity.CallType{entity.CallHeartRate},
		syncFn: func(entity.CallType) (int, error) {
			return 0, errors.New("fitbit is down")
		},
	}
	strava := &stubSyncer{
		provider:  entity.ProviderStrava,
		callTypes: []entity.CallType{entity.CallActivities},
		syncFn: func(entity.CallType) (int, error) {
			return 5, nil
		},
	}

	fx := createTestSyncService(t, fitbit, strava)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit, entity.ProviderStrava), nil)

	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Run(func(ctx context.Context, event *entity.SyncRunEvent) {
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, 5, event.RecordCount)
		}).
		Return(nil)

	// Records landed, so the completion push fires.
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{FCMToken: "fcm-1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"fcm-1"}, "Sync complete", "5 new records synced", mock.Anything).
		Return(1, 0, nil, nil)

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, 5, report.RecordCount())

	byProvider := make(map[entity.Provider]entity.ProviderSyncResult)
	for _, r := range report.Results {
		byProvider[r.Provider] = r
	}

	assert.False(t, byProvider[entity.ProviderFitbit].Success)
	assert.Equal(t, entity.KindProviderAPIError, byProvider[entity.ProviderFitbit].ErrorKind)
	assert.True(t, byProvider[entity.ProviderStrava].Success)
	assert.Equal(t, 5, byProvider[entity.ProviderStrava].RecordsProcessed)
}

func TestSyncService_SyncAll_NoProfile(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	_, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestSyncService_SyncAll_SkipsProviderWithoutSyncer(t *testing.T) {
	strava := &stubSyncer{
		provider:  entity.ProviderStrava,
		callTypes: []entity.CallType{entity.CallActivities},
		syncFn: func(entity.CallType) (int, error) {
			return 0, nil
		},
	}

	fx := createTestSyncService(t, strava)
	ctx := context.Background()
	userID := uuid.New()

	// Fitbit is connected but no syncer is registered for it, so only the
	// Strava results appear.
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit, entity.ProviderStrava), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, entity.ProviderStrava, report.Results[0].Provider)
}

func TestSyncService_RateLimitDenialIsNonFatal(t *testing.T) {
	fitbit := &stubSyncer{
		provider:  entity.ProviderFitbit,
		callTypes: []entity.CallType{entity.CallHeartRate},
		syncFn: func(entity.CallType) (int, error) {
			return 3, nil
		},
	}

	fx := createTestSyncService(t, fitbit)
	fx.limiter.deny = true
	fx.limiter.retryAt = fx.now.Add(9 * time.Hour)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)

	result := report.Results[0]
	assert.False(t, result.Success)
	assert.Equal(t, entity.KindRateLimitExceeded, result.ErrorKind)
	assert.Contains(t, result.Message, "daily limit reached")

	// The provider call never fired.
	assert.Empty(t, fitbit.calledWith())
}

func TestSyncService_AuthExpiredShortCircuitsRemainingCalls(t *testing.T) {
	userID := uuid.New()

	fitbit := &stubSyncer{
		provider:  entity.ProviderFitbit,
		callTypes: []entity.CallType{entity.CallDailySummary, entity.CallHeartRate, entity.CallSleep},
		syncFn: func(callType entity.CallType) (int, error) {
			if callType == entity.CallDailySummary {
				return 1, nil
			}

			return 0, errors.Wrap(domainerrors.ErrProviderAuthExpired, "401 from provider")
		},
	}

	fx := createTestSyncService(t, fitbit)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil)

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	assert.True(t, report.Results[0].Success)
	assert.Equal(t, entity.KindProviderAuthExpired, report.Results[1].ErrorKind)
	assert.Equal(t, entity.KindProviderAuthExpired, report.Results[2].ErrorKind)
	assert.Equal(t, "skipped, provider requires re-authentication", report.Results[2].Message)

	// The sleep call was skipped entirely, only two calls reached the provider.
	assert.Equal(t, []entity.CallType{entity.CallDailySummary, entity.CallHeartRate}, fitbit.calledWith())

	// First slot spent, second returned unspent, no third reservation.
	reservations := fx.limiter.all()
	require.Len(t, reservations, 2)
	assert.Equal(t, 1, reservations[0].commits)
	assert.Zero(t, reservations[0].releases)
	assert.Zero(t, reservations[1].commits)
	assert.Equal(t, 1, reservations[1].releases)

	// The dead credentials got dropped exactly once.
	assert.Equal(t, []entity.Provider{entity.ProviderFitbit}, fx.tokens.invalidatedProviders())
}

func TestSyncService_AdapterAuthRejectionClearsTokens(t *testing.T) {
	userID := uuid.New()

	fitbit := &stubSyncer{
		provider:  entity.ProviderFitbit,
		callTypes: []entity.CallType{entity.CallDailySummary, entity.CallHeartRate},
		syncFn: func(entity.CallType) (int, error) {
			return 0, &service.ProviderAPIError{StatusCode: 401, Body: "expired token"}
		},
	}

	fx := createTestSyncService(t, fitbit)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)

	// The reconnect push goes out to the user's devices.
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{{FCMToken: "fcm-1"}}, nil)
	fx.notification.EXPECT().
		SendBatchNotification(ctx, []string{"fcm-1"}, "Reconnect needed", mock.AnythingOfType("string"), mock.Anything).
		Return(1, 0, nil, nil)

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)
	assert.Equal(t, entity.KindProviderAuthExpired, report.Results[0].ErrorKind)
	assert.Equal(t, "skipped, provider requires re-authentication", report.Results[1].Message)

	// One rejection clears the stored set once; only the first call
	// reached the provider.
	assert.Equal(t, []entity.Provider{entity.ProviderFitbit}, fx.tokens.invalidatedProviders())
	assert.Equal(t, []entity.CallType{entity.CallDailySummary}, fitbit.calledWith())
}

func TestSyncService_NilNotificationServiceSkipsPush(t *testing.T) {
	userID := uuid.New()

	strava := &stubSyncer{
		provider:  entity.ProviderStrava,
		callTypes: []entity.CallType{entity.CallActivities},
		syncFn: func(entity.CallType) (int, error) {
			return 2, nil
		},
	}

	// Built without the fixture helper so the notification service can be
	// nil, matching a deployment with Firebase unconfigured.
	profileRepo := mockRepo.NewMockProfileRepository(t)
	recordRepo := mockRepo.NewMockRecordRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	tokens := &stubTokens{tokenFn: func(entity.Provider) (string, error) { return "access-token", nil }}

	svc := NewSyncService(
		profileRepo, recordRepo, deviceRepo,
		tokens, &stubLimiter{}, []usecase.ProviderSyncer{strava},
		publisher, nil,
		5*time.Second, 24*time.Hour,
		newDiscardLogger(),
	)

	ctx := context.Background()
	profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderStrava), nil)
	publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)

	// No device repo expectation: the push is skipped before the device
	// lookup when there is nothing to send with.
	require.NotPanics(t, func() {
		report, err := svc.SyncAll(ctx, userID, usecase.SyncWindow{})
		require.NoError(t, err)
		assert.Equal(t, 2, report.RecordCount())
	})
}

func TestSyncService_FailedCallStillSpendsBudget(t *testing.T) {
	fitbit := &stubSyncer{
		provider:  entity.ProviderFitbit,
		callTypes: []entity.CallType{entity.CallHeartRate},
		syncFn: func(entity.CallType) (int, error) {
			return 0, errors.New("upstream 500")
		},
	}

	fx := createTestSyncService(t, fitbit)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)

	_, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)

	reservations := fx.limiter.all()
	require.Len(t, reservations, 1)
	assert.Equal(t, 1, reservations[0].commits)
	assert.Zero(t, reservations[0].releases)
}

func TestSyncService_TokenFailureFailsAllCallsUpFront(t *testing.T) {
	userID := uuid.New()

	fitbit := &stubSyncer{
		provider:  entity.ProviderFitbit,
		callTypes: []entity.CallType{entity.CallDailySummary, entity.CallHeartRate},
		syncFn: func(entity.CallType) (int, error) {
			return 0, nil
		},
	}

	fx := createTestSyncService(t, fitbit)
	fx.tokens.tokenFn = func(entity.Provider) (string, error) {
		return "", errors.Wrap(domainerrors.ErrProviderAuthExpired, "refresh rejected")
	}

	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	for _, result := range report.Results {
		assert.False(t, result.Success)
		assert.Equal(t, entity.KindProviderAuthExpired, result.ErrorKind)
	}

	assert.Empty(t, fitbit.calledWith())
	assert.Empty(t, fx.limiter.all())
}

func TestSyncService_SyncProvider_NotConnected(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderFitbit), nil)

	_, err := fx.svc.SyncProvider(ctx, userID, entity.ProviderStrava, usecase.SyncWindow{})
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}

func TestSyncService_SyncProvider_Success(t *testing.T) {
	userID := uuid.New()

	strava := &stubSyncer{
		provider:  entity.ProviderStrava,
		callTypes: []entity.CallType{entity.CallActivities},
		syncFn: func(entity.CallType) (int, error) {
			return 2, nil
		},
	}

	fx := createTestSyncService(t, strava)
	ctx := context.Background()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID, entity.ProviderStrava), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(nil)
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return(nil, nil)

	report, err := fx.svc.SyncProvider(ctx, userID, entity.ProviderStrava, usecase.SyncWindow{})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Success)
	assert.Equal(t, 2, report.Results[0].RecordsProcessed)
	assert.Equal(t, "synced 2 records", report.Results[0].Message)
}

func TestSyncService_PublisherFailureDoesNotFailRun(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(testProfile(userID), nil)
	fx.publisher.EXPECT().
		PublishSyncRunEvent(ctx, mock.AnythingOfType("*entity.SyncRunEvent")).
		Return(errors.New("broker unavailable"))

	report, err := fx.svc.SyncAll(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	assert.Empty(t, report.Results)
}

func TestSyncService_Activities_ResolvesDefaultWindow(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()
	userID := uuid.New()

	want := []*entity.ActivityRecord{{OriginalID: "1"}}
	fx.recordRepo.EXPECT().
		ListActivities(ctx, userID, fx.now.Add(-24*time.Hour), fx.now).
		Return(want, nil)

	records, err := fx.svc.Activities(ctx, userID, usecase.SyncWindow{})
	require.NoError(t, err)
	assert.Equal(t, want, records)
}

func TestSyncService_Activities_ExplicitWindowPassedThrough(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()
	userID := uuid.New()

	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	fx.recordRepo.EXPECT().
		ListActivities(ctx, userID, from, to).
		Return(nil, nil)

	_, err := fx.svc.Activities(ctx, userID, usecase.SyncWindow{From: from, To: to})
	require.NoError(t, err)
}
