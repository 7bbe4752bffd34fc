package usecase

import (
	"context"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenUsecase defines the interface for provider OAuth token management
type TokenUsecase interface {
	// ValidAccessToken returns an access token that is guaranteed not to
	// expire within the refresh margin, refreshing it first if needed.
	// Concurrent callers for the same user and provider share a single
	// refresh. A permanently rejected refresh token disconnects the
	// provider and surfaces a re-authentication error.
	ValidAccessToken(ctx context.Context, userID uuid.UUID, provider entity.Provider) (string, error)

	// Invalidate clears the stored token set and marks the provider
	// disconnected. Called when the provider rejects an access token
	// outside the refresh flow, so the user is forced to reconnect
	// instead of every sync retrying dead credentials.
	Invalidate(ctx context.Context, userID uuid.UUID, provider entity.Provider) error
}
