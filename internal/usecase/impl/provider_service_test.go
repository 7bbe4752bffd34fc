package impl

import (
	"context"
	"testing"
	"time"

	"fitsync/internal/domain/entity"
	domainerrors "fitsync/internal/domain/errors"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	mockRepo "fitsync/internal/mocks/repository"
	mockService "fitsync/internal/mocks/service"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// providerServiceFixtures holds all test dependencies for provider service tests.
type providerServiceFixtures struct {
	svc         usecase.ProviderUsecase
	profileRepo *mockRepo.MockProfileRepository
	tokenRepo   *mockRepo.MockTokenRepository
	oauth       *mockService.MockOAuthProvider
	qrService   *mockService.MockQRCodeService
	now         time.Time
}

func createTestProviderService(t *testing.T) providerServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	qrService := mockService.NewMockQRCodeService(t)

	oauth := mockService.NewMockOAuthProvider(t)
	oauth.EXPECT().Provider().Return(entity.ProviderFitbit).Maybe()

	svc := NewProviderService(profileRepo, tokenRepo,
		[]service.OAuthProvider{oauth}, qrService, newDiscardLogger())

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	svc.(*providerService).now = fixedClock(now)

	return providerServiceFixtures{
		svc:         svc,
		profileRepo: profileRepo,
		tokenRepo:   tokenRepo,
		oauth:       oauth,
		qrService:   qrService,
		now:         now,
	}
}

func TestProviderService_ConnectedProviders_NoProfileMeansEmpty(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)

	connected, err := fx.svc.ConnectedProviders(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, connected)
}

func TestProviderService_BeginConnection(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.oauth.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string")).
		Return("https://provider.example/authorize?state=abc")
	fx.qrService.EXPECT().
		GenerateConnectQR("https://provider.example/authorize?state=abc").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	info, err := fx.svc.BeginConnection(ctx, userID, entity.ProviderFitbit)
	require.NoError(t, err)

	assert.Equal(t, "https://provider.example/authorize?state=abc", info.AuthorizationURL)
	assert.NotEmpty(t, info.QRCode)
	assert.NotEmpty(t, info.State)
}

func TestProviderService_BeginConnection_QRFailureIsBestEffort(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	fx.oauth.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string")).
		Return("https://provider.example/authorize")
	fx.qrService.EXPECT().
		GenerateConnectQR(mock.AnythingOfType("string")).
		Return(nil, errors.New("png encoder broken"))

	info, err := fx.svc.BeginConnection(ctx, uuid.New(), entity.ProviderFitbit)
	require.NoError(t, err)

	assert.Equal(t, "https://provider.example/authorize", info.AuthorizationURL)
	assert.Nil(t, info.QRCode)
}

func TestProviderService_BeginConnection_UnknownProvider(t *testing.T) {
	fx := createTestProviderService(t)

	_, err := fx.svc.BeginConnection(context.Background(), uuid.New(), entity.ProviderStrava)
	assert.ErrorIs(t, err, entity.ErrUnknownProvider)
}

func TestProviderService_CompleteConnection_FirstConnectCreatesProfile(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrProfileNotFound)
	fx.profileRepo.EXPECT().
		CreateProfile(ctx, mock.AnythingOfType("*entity.UserSyncProfile")).
		Run(func(ctx context.Context, profile *entity.UserSyncProfile) {
			assert.Equal(t, userID, profile.ID)
			assert.Equal(t, entity.TierFree, profile.Tier)
		}).
		Return(nil)
	fx.tokenRepo.EXPECT().
		SaveTokenSet(ctx, mock.AnythingOfType("*entity.OAuthTokenSet")).
		Run(func(ctx context.Context, tokens *entity.OAuthTokenSet) {
			assert.Equal(t, userID, tokens.UserID)
			assert.Equal(t, entity.ProviderFitbit, tokens.Provider)
		}).
		Return(nil)
	fx.profileRepo.EXPECT().
		ConnectProvider(ctx, userID, mock.AnythingOfType("entity.ConnectedProvider")).
		Run(func(ctx context.Context, userID uuid.UUID, connection entity.ConnectedProvider) {
			assert.Equal(t, entity.ProviderFitbit, connection.Provider)
			assert.Equal(t, fx.now, connection.ConnectedAt)
		}).
		Return(nil)

	err := fx.svc.CompleteConnection(ctx, userID, entity.ProviderFitbit, &entity.OAuthTokenSet{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    fx.now.Add(time.Hour),
	})
	assert.NoError(t, err)
}

func TestProviderService_CompleteConnection_IncompleteTokens(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()

	err := fx.svc.CompleteConnection(ctx, uuid.New(), entity.ProviderFitbit, &entity.OAuthTokenSet{
		AccessToken: "access",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = fx.svc.CompleteConnection(ctx, uuid.New(), entity.ProviderFitbit, nil)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProviderService_CompleteConnection_AlreadyConnected(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	userID := uuid.New()

	profile := &entity.UserSyncProfile{
		ID:                 userID,
		ConnectedProviders: []entity.ConnectedProvider{{Provider: entity.ProviderFitbit}},
	}
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(profile, nil)

	err := fx.svc.CompleteConnection(ctx, userID, entity.ProviderFitbit, &entity.OAuthTokenSet{
		AccessToken:  "access",
		RefreshToken: "refresh",
	})
	assert.ErrorIs(t, err, domainerrors.ErrProviderAlreadyConnected)
}

func TestProviderService_Disconnect(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	userID := uuid.New()

	profile := &entity.UserSyncProfile{
		ID:                 userID,
		ConnectedProviders: []entity.ConnectedProvider{{Provider: entity.ProviderFitbit}},
	}
	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(profile, nil)
	fx.profileRepo.EXPECT().
		DisconnectProvider(ctx, userID, entity.ProviderFitbit).
		Return(nil)
	// Missing tokens are tolerated; the link is gone either way.
	fx.tokenRepo.EXPECT().
		ClearTokenSet(ctx, userID, entity.ProviderFitbit).
		Return(repository.ErrTokenSetNotFound)

	err := fx.svc.Disconnect(ctx, userID, entity.ProviderFitbit)
	assert.NoError(t, err)
}

func TestProviderService_Disconnect_NotConnected(t *testing.T) {
	fx := createTestProviderService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.UserSyncProfile{ID: userID}, nil)

	err := fx.svc.Disconnect(ctx, userID, entity.ProviderStrava)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConnected)
}
