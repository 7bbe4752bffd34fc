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
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// providerService implements the ProviderUsecase interface.
type providerService struct {
	profileRepo repository.ProfileRepository
	tokenRepo   repository.TokenRepository
	providers   map[entity.Provider]service.OAuthProvider
	qrService   service.QRCodeService
	now         func() time.Time
	logger      *slog.Logger
}

// NewProviderService is the constructor for providerService.
func NewProviderService(
	profileRepo repository.ProfileRepository,
	tokenRepo repository.TokenRepository,
	oauthProviders []service.OAuthProvider,
	qrService service.QRCodeService,
	logger *slog.Logger,
) usecase.ProviderUsecase {
	providers := make(map[entity.Provider]service.OAuthProvider, len(oauthProviders))
	for _, p := range oauthProviders {
		providers[p.Provider()] = p
	}

	return &providerService{
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		providers:   providers,
		qrService:   qrService,
		now:         time.Now,
		logger:      logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConnectedProviders lists the providers linked to the user's profile.
func (srv *providerService) ConnectedProviders(ctx context.Context, userID uuid.UUID) ([]entity.ConnectedProvider, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			// A user without a profile simply has nothing connected yet
			return []entity.ConnectedProvider{}, nil
		}

		return nil, errors.Wrap(err, "failed to load sync profile")
	}

	return profile.ConnectedProviders, nil
}

// BeginConnection builds the authorization URL and its QR rendering.
func (srv *providerService) BeginConnection(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*usecase.ConnectInfo, error) {
	oauth, ok := srv.providers[provider]
	if !ok {
		return nil, errors.Wrap(entity.ErrUnknownProvider, provider.String())
	}

	// 1. State ties the eventual callback to this user and attempt
	state := uuid.New().String()
	authURL := oauth.AuthorizationURL(state)

	// 2. QR rendering is best effort; the URL alone is enough to connect
	qr, err := srv.qrService.GenerateConnectQR(authURL)
	if err != nil {
		srv.log(ctx).Warn("Failed to render connect QR code",
			slog.Any("error", err), slog.String("provider", provider.String()))
		qr = nil
	}

	srv.log(ctx).Info("Provider connection started",
		slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return &usecase.ConnectInfo{
		AuthorizationURL: authURL,
		QRCode:           qr,
		State:            state,
	}, nil
}

// CompleteConnection stores the token set from the OAuth callback and
// marks the provider connected, creating the profile on first connect.
func (srv *providerService) CompleteConnection(ctx context.Context, userID uuid.UUID, provider entity.Provider, tokens *entity.OAuthTokenSet) error {
	if tokens == nil || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "token set incomplete")
	}

	// 1. Ensure the profile exists
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(err, "failed to load sync profile")
		}

		profile = &entity.UserSyncProfile{
			ID:        userID,
			Tier:      entity.TierFree,
			CreatedAt: srv.now(),
			UpdatedAt: srv.now(),
		}
		if err := srv.profileRepo.CreateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create sync profile")
		}
	}

	if profile.IsConnected(provider) {
		return errors.Wrap(domainerrors.ErrProviderAlreadyConnected, provider.String())
	}

	// 2. Store the credentials before flipping the connection flag, so a
	// connected provider always has a token set
	tokens.UserID = userID
	tokens.Provider = provider
	if err := srv.tokenRepo.SaveTokenSet(ctx, tokens); err != nil {
		return errors.Wrap(err, "failed to save token set")
	}

	// 3. Mark the provider connected
	connection := entity.ConnectedProvider{
		Provider:    provider,
		DisplayName: provider.DisplayName(),
		ConnectedAt: srv.now(),
	}
	if err := srv.profileRepo.ConnectProvider(ctx, userID, connection); err != nil {
		return errors.Wrap(err, "failed to connect provider")
	}

	srv.log(ctx).Info("Provider connected",
		slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return nil
}

// Disconnect removes the provider link and clears its stored tokens.
func (srv *providerService) Disconnect(ctx context.Context, userID uuid.UUID, provider entity.Provider) error {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProviderNotConnected, provider.String())
		}

		return errors.Wrap(err, "failed to load sync profile")
	}
	if !profile.IsConnected(provider) {
		return errors.Wrap(domainerrors.ErrProviderNotConnected, provider.String())
	}

	if err := srv.profileRepo.DisconnectProvider(ctx, userID, provider); err != nil {
		return errors.Wrap(err, "failed to disconnect provider")
	}

	if err := srv.tokenRepo.ClearTokenSet(ctx, userID, provider); err != nil &&
		!errors.Is(err, repository.ErrTokenSetNotFound) {
		return errors.Wrap(err, "failed to clear token set")
	}

	srv.log(ctx).Info("Provider disconnected",
		slog.Any("user_id", userID), slog.String("provider", provider.String()))

	return nil
}
