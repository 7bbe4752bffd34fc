// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenSetNotFound is returned when no token set is stored for the
// (user, provider) pair.
var ErrTokenSetNotFound = errors.New("oauth token set not found")

// TokenRepository is the token store: exactly one OAuth token set per
// (user, provider), owned exclusively by the token manager.
type TokenRepository interface {
	// GetTokenSet retrieves the stored token set for a (user, provider) pair.
	GetTokenSet(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*entity.OAuthTokenSet, error)

	// SaveTokenSet creates or replaces the token set for its (user, provider) pair.
	SaveTokenSet(ctx context.Context, tokens *entity.OAuthTokenSet) error

	// ClearTokenSet removes the stored token set. Called when the provider
	// reports the refresh token is no longer valid.
	ClearTokenSet(ctx context.Context, userID uuid.UUID, provider entity.Provider) error
}
