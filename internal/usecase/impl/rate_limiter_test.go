package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"fitsync/internal/domain/entity"
	mockRepo "fitsync/internal/mocks/repository"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rateLimiterFixtures holds all test dependencies for rate limiter tests.
type rateLimiterFixtures struct {
	limiter     usecase.RateLimitUsecase
	profileRepo *mockRepo.MockProfileRepository
	now         time.Time
}

func createTestRateLimiter(t *testing.T) rateLimiterFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	limiter := NewRateLimiter(profileRepo, time.UTC, newDiscardLogger())

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	limiter.(*rateLimiter).now = fixedClock(now)

	return rateLimiterFixtures{
		limiter:     limiter,
		profileRepo: profileRepo,
		now:         now,
	}
}

func TestRateLimiter_FirstCallAllowedAndCommitted(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderFitbit, entity.CallHeartRate).
		Return(&entity.RateLimitState{}, nil)

	fx.profileRepo.EXPECT().
		SaveRateLimitState(ctx, userID, mock.AnythingOfType("*entity.RateLimitState")).
		Run(func(ctx context.Context, userID uuid.UUID, state *entity.RateLimitState) {
			assert.Equal(t, 1, state.CallCountToday)
			assert.Equal(t, fx.now, state.LastCalledAt)
			assert.Equal(t, entity.ProviderFitbit, state.Provider)
			assert.Equal(t, entity.CallHeartRate, state.CallType)
		}).
		Return(nil)

	reservation, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderFitbit, entity.CallHeartRate)
	require.NoError(t, err)
	require.True(t, reservation.Allowed())

	require.NoError(t, reservation.Commit(ctx))
}

func TestRateLimiter_DeniedAtLimit(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderStrava, entity.CallActivities).
		Return(&entity.RateLimitState{
			Provider:       entity.ProviderStrava,
			CallType:       entity.CallActivities,
			LastCalledAt:   fx.now.Add(-time.Hour),
			CallCountToday: 1,
		}, nil)

	reservation, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderStrava, entity.CallActivities)
	require.NoError(t, err)
	assert.False(t, reservation.Allowed())

	wantRetry := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantRetry, reservation.RetryAt())
}

func TestRateLimiter_StaleCountResetsAtDayBoundary(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()

	// Counter exhausted yesterday must not block today.
	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderStrava, entity.CallActivities).
		Return(&entity.RateLimitState{
			Provider:       entity.ProviderStrava,
			CallType:       entity.CallActivities,
			LastCalledAt:   fx.now.Add(-24 * time.Hour),
			CallCountToday: 3,
		}, nil)

	fx.profileRepo.EXPECT().
		SaveRateLimitState(ctx, userID, mock.AnythingOfType("*entity.RateLimitState")).
		Run(func(ctx context.Context, userID uuid.UUID, state *entity.RateLimitState) {
			assert.Equal(t, 1, state.CallCountToday)
		}).
		Return(nil)

	reservation, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderStrava, entity.CallActivities)
	require.NoError(t, err)
	require.True(t, reservation.Allowed())

	require.NoError(t, reservation.Commit(ctx))
}

func TestRateLimiter_PendingReservationCountsAgainstBudget(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderStrava, entity.CallActivities).
		Return(&entity.RateLimitState{}, nil)

	first, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderStrava, entity.CallActivities)
	require.NoError(t, err)
	require.True(t, first.Allowed())

	// The uncommitted slot must already count against the budget.
	second, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderStrava, entity.CallActivities)
	require.NoError(t, err)
	assert.False(t, second.Allowed())

	first.Release()
}

func TestRateLimiter_ReleaseReturnsSlot(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderFitbit, entity.CallSleep).
		Return(&entity.RateLimitState{}, nil)

	first, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderFitbit, entity.CallSleep)
	require.NoError(t, err)
	require.True(t, first.Allowed())

	first.Release()

	second, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderFitbit, entity.CallSleep)
	require.NoError(t, err)
	assert.True(t, second.Allowed())

	second.Release()
}

func TestRateLimiter_ReleaseAfterCommitIsNoop(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderFitbit, entity.CallSleep).
		Return(&entity.RateLimitState{}, nil)
	fx.profileRepo.EXPECT().
		SaveRateLimitState(ctx, userID, mock.AnythingOfType("*entity.RateLimitState")).
		Return(nil).
		Once()

	reservation, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierFree, entity.ProviderFitbit, entity.CallSleep)
	require.NoError(t, err)
	require.NoError(t, reservation.Commit(ctx))

	// Settling twice must neither free an extra slot nor write again.
	reservation.Release()
	require.NoError(t, reservation.Commit(ctx))
}

func TestRateLimiter_SlowKeyDoesNotBlockOtherKeys(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	slowUser, fastUser := uuid.New(), uuid.New()

	entered := make(chan struct{})
	release := make(chan struct{})
	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, slowUser, entity.ProviderFitbit, entity.CallHeartRate).
		RunAndReturn(func(context.Context, uuid.UUID, entity.Provider, entity.CallType) (*entity.RateLimitState, error) {
			close(entered)
			<-release

			return &entity.RateLimitState{}, nil
		})
	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, fastUser, entity.ProviderFitbit, entity.CallHeartRate).
		Return(&entity.RateLimitState{}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)

		reservation, err := fx.limiter.CheckAndReserve(ctx, slowUser, entity.TierFree, entity.ProviderFitbit, entity.CallHeartRate)
		if assert.NoError(t, err) {
			reservation.Release()
		}
	}()
	<-entered

	// One key stuck in its state read must not stall another user's check.
	finished := make(chan struct{})
	go func() {
		defer close(finished)

		reservation, err := fx.limiter.CheckAndReserve(ctx, fastUser, entity.TierFree, entity.ProviderFitbit, entity.CallHeartRate)
		if assert.NoError(t, err) {
			reservation.Release()
		}
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("reservation blocked behind another user's state read")
	}

	close(release)
	<-done
}

func TestRateLimiter_ConcurrentReservationsNeverExceedLimit(t *testing.T) {
	fx := createTestRateLimiter(t)

	ctx := context.Background()
	userID := uuid.New()
	limit := entity.PolicyFor(entity.TierPlatinum, entity.CallDailySummary).Limit

	fx.profileRepo.EXPECT().
		GetRateLimitState(ctx, userID, entity.ProviderFitbit, entity.CallDailySummary).
		Return(&entity.RateLimitState{}, nil)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < limit*3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			reservation, err := fx.limiter.CheckAndReserve(ctx, userID, entity.TierPlatinum, entity.ProviderFitbit, entity.CallDailySummary)
			if !assert.NoError(t, err) {
				return
			}
			if reservation.Allowed() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, allowed)
}
