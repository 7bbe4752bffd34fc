package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"fitsync/config"
	"fitsync/internal/delivery"
	"fitsync/internal/delivery/http"
	"fitsync/internal/delivery/http/middleware"
	"fitsync/internal/delivery/http/router/handler"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	"fitsync/internal/infra/auth"
	logs "fitsync/internal/infra/log"
	"fitsync/internal/infra/notification"
	"fitsync/internal/infra/persistence/postgres"
	"fitsync/internal/infra/provider/fitbit"
	"fitsync/internal/infra/provider/googlefit"
	"fitsync/internal/infra/provider/oauth"
	"fitsync/internal/infra/provider/strava"
	"fitsync/internal/infra/pubsub"
	"fitsync/internal/infra/qrcode"
	"fitsync/internal/usecase"
	"fitsync/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewRecordRepository,
			postgres.NewTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newFirebaseService,
			newQRCodeService,
			newOAuthProviders,
			newFitbitClient,
			newStravaClient,
			newGoogleFitClient,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newOAuthProviders builds the OAuth client for each supported provider
func newOAuthProviders(cfg *config.Config) []service.OAuthProvider {
	return []service.OAuthProvider{
		oauth.NewFitbit(cfg.Providers.Fitbit.OAuth),
		oauth.NewStrava(cfg.Providers.Strava.OAuth),
		oauth.NewGoogleFit(cfg.Providers.GoogleFit.OAuth),
	}
}

func newFitbitClient(cfg *config.Config) service.FitbitClient {
	return fitbit.NewClient(cfg.Providers.Fitbit.APIBaseURL, nil)
}

func newStravaClient(cfg *config.Config) service.StravaClient {
	return strava.NewClient(cfg.Providers.Strava.APIBaseURL, nil)
}

func newGoogleFitClient(cfg *config.Config) service.GoogleFitClient {
	return googlefit.NewClient(cfg.Providers.GoogleFit.APIBaseURL, nil)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTokenManager,
			newRateLimiter,
			newSyncers,
			newSyncService,
			impl.NewProviderService,
			impl.NewDeviceService,
		),
	)
}

// newRateLimiter resolves the configured day boundary zone before wiring
// the rate limiter
func newRateLimiter(cfg *config.Config, profileRepo repository.ProfileRepository, logger *slog.Logger) (usecase.RateLimitUsecase, error) {
	dayZone, err := cfg.DayLocation()
	if err != nil {
		return nil, err
	}

	return impl.NewRateLimiter(profileRepo, dayZone, logger), nil
}

// newSyncers assembles one syncer per supported provider
func newSyncers(
	fitbitClient service.FitbitClient,
	stravaClient service.StravaClient,
	googleFitClient service.GoogleFitClient,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) []usecase.ProviderSyncer {
	return []usecase.ProviderSyncer{
		impl.NewFitbitSyncer(fitbitClient, txManager, logger),
		impl.NewStravaSyncer(stravaClient, txManager),
		impl.NewGoogleFitSyncer(googleFitClient, txManager, logger),
	}
}

type syncServiceParams struct {
	fx.In

	Config       *config.Config
	ProfileRepo  repository.ProfileRepository
	RecordRepo   repository.RecordRepository
	DeviceRepo   repository.DeviceRepository
	Tokens       usecase.TokenUsecase
	RateLimiter  usecase.RateLimitUsecase
	Syncers      []usecase.ProviderSyncer
	Publisher    service.EventPublisher
	Notification service.NotificationService `optional:"true"`
	Logger       *slog.Logger
}

func newSyncService(params syncServiceParams) usecase.SyncUsecase {
	return impl.NewSyncService(
		params.ProfileRepo,
		params.RecordRepo,
		params.DeviceRepo,
		params.Tokens,
		params.RateLimiter,
		params.Syncers,
		params.Publisher,
		params.Notification,
		params.Config.Sync.CallTimeout,
		params.Config.Sync.Lookback,
		params.Logger,
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSyncHandler,
			handler.NewProviderHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
