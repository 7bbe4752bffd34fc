// Package service defines domain service interfaces implemented by the
// infrastructure layer, plus the provider-shaped payload types validated at
// the adapter boundary.
package service

import (
	"context"

	"fitsync/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReauthRequired is returned by Refresh when the provider rejects the
// refresh token as invalid or revoked. The caller must clear the stored
// token set and surface a "reconnect provider" signal; it must not retry.
var ErrReauthRequired = errors.New("provider re-authorization required")

// OAuthProvider wraps one provider's OAuth2 surface: building the
// authorization URL for the connect flow and refreshing an expired access
// token. Authorization-code exchange happens outside this engine.
type OAuthProvider interface {
	// Provider returns which provider this service talks to.
	Provider() entity.Provider

	// AuthorizationURL builds the URL the user visits to (re)connect the
	// provider, carrying the given CSRF state parameter.
	AuthorizationURL(state string) string

	// Refresh exchanges the stored refresh token for a new token set. The
	// returned set has Provider, AccessToken, RefreshToken and ExpiresAt
	// populated; the caller attaches the user.
	Refresh(ctx context.Context, refreshToken string) (*entity.OAuthTokenSet, error)
}
