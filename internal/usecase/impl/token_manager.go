// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fitsync/internal/delivery/context"
	"fitsync/internal/domain/entity"
	domainerrors "fitsync/internal/domain/errors"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	"fitsync/internal/observability"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// refreshMargin is how close to expiry a token may get before a
// proactive refresh. Keeps a token from dying mid provider call.
const refreshMargin = 60 * time.Second

// tokenManager implements the TokenUsecase interface.
type tokenManager struct {
	tokenRepo   repository.TokenRepository
	profileRepo repository.ProfileRepository
	providers   map[entity.Provider]service.OAuthProvider
	flight      singleflight.Group
	now         func() time.Time
	logger      *slog.Logger
}

// NewTokenManager is the constructor for tokenManager.
func NewTokenManager(
	tokenRepo repository.TokenRepository,
	profileRepo repository.ProfileRepository,
	oauthProviders []service.OAuthProvider,
	logger *slog.Logger,
) usecase.TokenUsecase {
	providers := make(map[entity.Provider]service.OAuthProvider, len(oauthProviders))
	for _, p := range oauthProviders {
		providers[p.Provider()] = p
	}

	return &tokenManager{
		tokenRepo:   tokenRepo,
		profileRepo: profileRepo,
		providers:   providers,
		now:         time.Now,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (m *tokenManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, m.logger)
}

// ValidAccessToken returns an access token valid beyond the refresh margin,
// refreshing through the provider when the stored one is about to expire.
func (m *tokenManager) ValidAccessToken(ctx context.Context, userID uuid.UUID, provider entity.Provider) (string, error) {
	// 1. Load the stored token set
	tokens, err := m.tokenRepo.GetTokenSet(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrTokenSetNotFound) {
			return "", errors.Wrap(domainerrors.ErrProviderNotConnected, provider.String())
		}

		return "", errors.Wrap(err, "failed to load token set")
	}

	// 2. Fast path when the token still has headroom
	if !tokens.ExpiresWithin(m.now(), refreshMargin) {
		return tokens.AccessToken, nil
	}

	// 3. Refresh, deduplicated per user and provider so concurrent
	// callers never spend the same refresh token twice
	key := userID.String() + "|" + provider.String()
	v, err, shared := m.flight.Do(key, func() (any, error) {
		return m.refresh(ctx, userID, provider)
	})
	if err != nil {
		return "", err
	}
	if shared {
		m.log(ctx).Debug("Token refresh shared with concurrent caller",
			slog.Any("user_id", userID), slog.String("provider", provider.String()))
	}

	return v.(string), nil
}

// refresh runs inside the singleflight group. It re-reads the stored set
// first because a concurrent flight may have already renewed it.
func (m *tokenManager) refresh(ctx context.Context, userID uuid.UUID, provider entity.Provider) (string, error) {
	tokens, err := m.tokenRepo.GetTokenSet(ctx, userID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrTokenSetNotFound) {
			return "", errors.Wrap(domainerrors.ErrProviderNotConnected, provider.String())
		}

		return "", errors.Wrap(err, "failed to load token set")
	}
	if !tokens.ExpiresWithin(m.now(), refreshMargin) {
		return tokens.AccessToken, nil
	}

	oauth, ok := m.providers[provider]
	if !ok {
		return "", errors.Wrapf(domainerrors.ErrInternalError, "no oauth client for provider %s", provider)
	}

	renewed, err := oauth.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrReauthRequired) {
			return "", m.handleReauth(ctx, userID, provider, err)
		}

		m.log(ctx).Error("Token refresh failed",
			slog.Any("error", err), slog.Any("user_id", userID), slog.String("provider", provider.String()))
		observability.RecordTokenRefresh(provider.String(), "failed")

		return "", errors.Wrap(err, "failed to refresh token")
	}

	renewed.UserID = userID
	renewed.Provider = provider
	if renewed.RefreshToken == "" {
		// Some providers omit the refresh token when it is still valid
		renewed.RefreshToken = tokens.RefreshToken
	}

	if err := m.tokenRepo.SaveTokenSet(ctx, renewed); err != nil {
		return "", errors.Wrap(err, "failed to save refreshed token set")
	}

	m.log(ctx).Info("Refreshed provider access token",
		slog.Any("user_id", userID),
		slog.String("provider", provider.String()),
		slog.Time("expires_at", renewed.ExpiresAt))
	observability.RecordTokenRefresh(provider.String(), "success")

	return renewed.AccessToken, nil
}

// handleReauth clears the dead credentials so later syncs fail fast with
// a re-authentication error instead of burning refresh attempts.
func (m *tokenManager) handleReauth(ctx context.Context, userID uuid.UUID, provider entity.Provider, cause error) error {
	m.log(ctx).Warn("Refresh token rejected, user must re-authenticate",
		slog.Any("user_id", userID), slog.String("provider", provider.String()), slog.Any("error", cause))
	observability.RecordTokenRefresh(provider.String(), "reauth_required")

	if err := m.Invalidate(ctx, userID, provider); err != nil {
		m.log(ctx).Error("Failed to clear rejected token set", slog.Any("error", err), slog.Any("user_id", userID))
	}

	return errors.Wrap(domainerrors.ErrProviderAuthExpired, provider.String())
}

// Invalidate drops the stored token set and marks the provider
// disconnected. Used when the provider rejects an access token outright,
// which a refresh cannot repair.
func (m *tokenManager) Invalidate(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	if err := m.tokenRepo.ClearTokenSet(ctx, userID, provider); err != nil && !errors.Is(err, repository.ErrTokenSetNotFound) {
		return errors.Wrap(err, "failed to clear token set")
	}
	if err := m.profileRepo.DisconnectProvider(ctx, userID, provider); err != nil {
		return errors.Wrap(err, "failed to mark provider disconnected")
	}

	return nil
}
