package usecase

import (
	"context"
	"time"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
)

// Reservation is the outcome of a rate limit check. When Allowed, the
// caller holds one slot of the user's daily budget and must settle it:
// Commit after the provider call has actually fired, Release if the
// call never happened.
type Reservation interface {
	// Allowed reports whether the call may proceed
	Allowed() bool

	// RetryAt returns when the budget resets. Only meaningful when the
	// reservation was denied.
	RetryAt() time.Time

	// Commit records the consumed slot against the persisted daily count
	Commit(ctx context.Context) error

	// Release returns the slot without consuming the budget
	Release()
}

// RateLimitUsecase defines the interface for per-user daily call budgets
type RateLimitUsecase interface {
	// CheckAndReserve atomically checks the user's remaining budget for
	// the call type and reserves one slot when available. Concurrent
	// reservations for the same key never admit more calls than the
	// tier's limit.
	CheckAndReserve(ctx context.Context, userID uuid.UUID, tier entity.SubscriptionTier, provider entity.Provider, callType entity.CallType) (Reservation, error)
}
