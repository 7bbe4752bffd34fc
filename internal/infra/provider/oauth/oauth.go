// Package oauth implements the per-provider OAuth2 services: building
// authorization URLs for the connect flow and refreshing access tokens.
package oauth

import (
	"context"
	"time"

	"fitsync/config"
	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// Provider endpoint constants.
const (
	fitbitAuthURL  = "https://www.fitbit.com/oauth2/authorize"
	fitbitTokenURL = "https://api.fitbit.com/oauth2/token"

	stravaAuthURL  = "https://www.strava.com/oauth/authorize"
	stravaTokenURL = "https://www.strava.com/oauth/token"

	googleAuthURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"
)

// oauthService wraps one provider's oauth2.Config.
type oauthService struct {
	provider entity.Provider
	conf     *oauth2.Config
	now      func() time.Time
}

// NewFitbit builds the Fitbit OAuth service.
func NewFitbit(cfg config.OAuthClient) service.OAuthProvider {
	return newService(entity.ProviderFitbit, cfg, fitbitAuthURL, fitbitTokenURL)
}

// NewStrava builds the Strava OAuth service.
func NewStrava(cfg config.OAuthClient) service.OAuthProvider {
	return newService(entity.ProviderStrava, cfg, stravaAuthURL, stravaTokenURL)
}

// NewGoogleFit builds the Google Fit OAuth service.
func NewGoogleFit(cfg config.OAuthClient) service.OAuthProvider {
	return newService(entity.ProviderGoogleFit, cfg, googleAuthURL, googleTokenURL)
}

func newService(provider entity.Provider, cfg config.OAuthClient, authURL, tokenURL string) service.OAuthProvider {
	endpoint := oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	if cfg.TokenURL != "" {
		// Test and staging hosts override the production endpoint
		endpoint.TokenURL = cfg.TokenURL
	}

	return &oauthService{
		provider: provider,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		now: time.Now,
	}
}

// Provider returns which provider this service talks to.
func (s *oauthService) Provider() entity.Provider {
	return s.provider
}

// AuthorizationURL builds the URL the user visits to (re)connect the
// provider.
func (s *oauthService) AuthorizationURL(state string) string {
	return s.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Refresh exchanges the refresh token for a new token set. A definitive
// rejection (invalid_grant and the like) surfaces as ErrReauthRequired so
// the caller clears the stored credentials instead of retrying.
func (s *oauthService) Refresh(ctx context.Context, refreshToken string) (*entity.OAuthTokenSet, error) {
	source := s.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})

	token, err := source.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			if retrieveErr.Response.StatusCode == 400 || retrieveErr.Response.StatusCode == 401 {
				return nil, errors.Wrap(service.ErrReauthRequired, retrieveErr.ErrorCode)
			}

			// Other statuses from the token endpoint are provider-side
			// failures, not a reason to drop the refresh token.
			return nil, errors.Wrap(&service.ProviderAPIError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       string(retrieveErr.Body),
			}, "token refresh request failed")
		}

		return nil, errors.Wrap(err, "token refresh request failed")
	}

	return &entity.OAuthTokenSet{
		Provider:     s.provider,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
		UpdatedAt:    s.now(),
	}, nil
}
