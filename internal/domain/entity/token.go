package entity

import (
	"time"

	"github.com/google/uuid"
)

// OAuthTokenSet holds the OAuth2 credentials for one (user, provider) pair.
// It is created when the user connects the provider, replaced whenever a
// refresh succeeds, and cleared when the provider reports the refresh token
// is no longer valid.
type OAuthTokenSet struct {
	UserID       uuid.UUID
	Provider     Provider
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time // Absolute expiry instant of the access token.
	UpdatedAt    time.Time
}

// ExpiresWithin reports whether the access token expires within the given
// margin from now. Callers refresh proactively rather than racing the
// provider's clock.
func (t *OAuthTokenSet) ExpiresWithin(now time.Time, margin time.Duration) bool {
	return !t.ExpiresAt.After(now.Add(margin))
}
