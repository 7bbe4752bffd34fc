package repository

import (
	"context"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when no sync profile exists for the user.
var ErrProfileNotFound = errors.New("user sync profile not found")

// ProfileRepository manages the per-user sync profile document: tier,
// connected providers and the per-(provider, call type) rate-limit states.
type ProfileRepository interface {
	// FindByID retrieves a user's sync profile.
	FindByID(ctx context.Context, userID uuid.UUID) (*entity.UserSyncProfile, error)

	// CreateProfile persists a new sync profile for a user.
	CreateProfile(ctx context.Context, profile *entity.UserSyncProfile) error

	// ConnectProvider adds a provider to the user's connected set.
	ConnectProvider(ctx context.Context, userID uuid.UUID, connection entity.ConnectedProvider) error

	// DisconnectProvider removes a provider from the user's connected set.
	DisconnectProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider) error

	// GetRateLimitState loads the stored counter for one (user, provider,
	// call type) key. A missing state is returned as a zero-valued state,
	// not an error.
	GetRateLimitState(ctx context.Context, userID uuid.UUID, provider entity.Provider, callType entity.CallType) (*entity.RateLimitState, error)

	// SaveRateLimitState upserts the counter for its key. Only the rate
	// limiter calls this; no other component reads or writes the state.
	SaveRateLimitState(ctx context.Context, userID uuid.UUID, state *entity.RateLimitState) error
}
