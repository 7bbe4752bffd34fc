package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "fitsync/internal/delivery/context"
	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/repository"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rateLimiter implements the RateLimitUsecase interface with a persisted
// calendar-day counter plus an in-process reservation ledger. The ledger
// counts slots handed out but not yet committed, so concurrent syncs for
// the same user cannot overrun the budget between check and persist.
type rateLimiter struct {
	profileRepo repository.ProfileRepository
	dayZone     *time.Location
	now         func() time.Time
	logger      *slog.Logger

	mu   sync.Mutex // guards keys, never held across repository I/O
	keys map[limitKey]*keyState
}

type limitKey struct {
	userID   uuid.UUID
	provider entity.Provider
	callType entity.CallType
}

// keyState serializes all reservation traffic for one (user, provider,
// call type) key. Locking per key keeps one key's slow state reads from
// stalling every other user's reservations.
type keyState struct {
	mu      sync.Mutex
	pending int
}

func (rl *rateLimiter) stateFor(key limitKey) *keyState {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	ks, ok := rl.keys[key]
	if !ok {
		ks = &keyState{}
		rl.keys[key] = ks
	}

	return ks
}

// NewRateLimiter is the constructor for rateLimiter. dayZone is the time
// zone whose midnight resets the daily budgets.
func NewRateLimiter(
	profileRepo repository.ProfileRepository,
	dayZone *time.Location,
	logger *slog.Logger,
) usecase.RateLimitUsecase {
	if dayZone == nil {
		dayZone = time.UTC
	}

	return &rateLimiter{
		profileRepo: profileRepo,
		dayZone:     dayZone,
		now:         time.Now,
		keys:        make(map[limitKey]*keyState),
		logger:      logger,
	}
}

func (rl *rateLimiter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, rl.logger)
}

// CheckAndReserve checks the remaining daily budget and, when available,
// reserves one slot that the caller must later Commit or Release.
func (rl *rateLimiter) CheckAndReserve(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier, provider entity.Provider, callType entity.CallType) (usecase.Reservation, error) {
	key := limitKey{userID: userID, provider: provider, callType: callType}
	policy := entity.PolicyFor(tier, callType)
	now := rl.now()

	ks := rl.stateFor(key)
	ks.mu.Lock()
	defer ks.mu.Unlock()

	// 1. Load the persisted counter; a missing row means an untouched budget
	state, err := rl.profileRepo.GetRateLimitState(ctx, userID, provider, callType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load rate limit state")
	}

	// 2. Effective usage is the persisted count for today plus slots
	// already reserved by in-flight calls
	used := state.EffectiveCount(now, rl.dayZone) + ks.pending
	if used >= policy.Limit {
		rl.log(ctx).Info("Rate limit exceeded",
			slog.Any("user_id", userID),
			slog.String("provider", provider.String()),
			slog.String("call_type", string(callType)),
			slog.Int("limit", policy.Limit))

		return &reservation{
			limiter: rl,
			key:     key,
			denied:  true,
			retryAt: entity.StartOfNextDay(now, rl.dayZone),
		}, nil
	}

	// 3. Reserve the slot
	ks.pending++

	return &reservation{limiter: rl, key: key}, nil
}

// reservation is one handed-out budget slot.
type reservation struct {
	limiter *rateLimiter
	key     limitKey
	denied  bool
	retryAt time.Time
	settled bool
}

func (r *reservation) Allowed() bool { return !r.denied }

func (r *reservation) RetryAt() time.Time { return r.retryAt }

// Commit persists the consumed slot. Called after the provider request
// has actually fired so an aborted call never burns budget.
func (r *reservation) Commit(ctx context.Context) error {
	if r.denied {
		return nil
	}

	rl := r.limiter
	ks := rl.stateFor(r.key)

	ks.mu.Lock()
	defer ks.mu.Unlock()

	if r.settled {
		return nil
	}
	r.settled = true
	if ks.pending > 0 {
		ks.pending--
	}

	now := rl.now()
	state, err := rl.profileRepo.GetRateLimitState(ctx, r.key.userID, r.key.provider, r.key.callType)
	if err != nil {
		return errors.Wrap(err, "failed to load rate limit state")
	}

	state.Provider = r.key.provider
	state.CallType = r.key.callType
	state.CallCountToday = state.EffectiveCount(now, rl.dayZone) + 1
	state.LastCalledAt = now

	if err := rl.profileRepo.SaveRateLimitState(ctx, r.key.userID, state); err != nil {
		return errors.Wrap(err, "failed to save rate limit state")
	}

	return nil
}

// Release frees the slot without consuming budget.
func (r *reservation) Release() {
	if r.denied {
		return
	}

	ks := r.limiter.stateFor(r.key)

	ks.mu.Lock()
	defer ks.mu.Unlock()

	if r.settled {
		return
	}
	r.settled = true
	if ks.pending > 0 {
		ks.pending--
	}
}
