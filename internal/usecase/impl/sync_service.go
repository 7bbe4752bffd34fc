package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	deliverycontext "fitsync/internal/delivery/context"
	"fitsync/internal/domain/entity"
	domainerrors "fitsync/internal/domain/errors"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	"fitsync/internal/observability"
	"fitsync/internal/usecase"
	"fitsync/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// syncService implements the SyncUsecase interface. It fans out one worker
// per connected provider; inside a worker the provider's call types run in
// order, each guarded by the daily budget. A provider failing never aborts
// its siblings, and every outcome lands in the report.
type syncService struct {
	profileRepo  repository.ProfileRepository
	recordRepo   repository.RecordRepository
	deviceRepo   repository.DeviceRepository
	tokens       usecase.TokenUsecase
	rateLimiter  usecase.RateLimitUsecase
	syncers      map[entity.Provider]usecase.ProviderSyncer
	publisher    service.EventPublisher
	notification service.NotificationService
	callTimeout  time.Duration
	lookback     time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// NewSyncService is the constructor for syncService. callTimeout bounds a
// single provider call; lookback is the default window when the caller
// gives none.
func NewSyncService(
	profileRepo repository.ProfileRepository,
	recordRepo repository.RecordRepository,
	deviceRepo repository.DeviceRepository,
	tokens usecase.TokenUsecase,
	rateLimiter usecase.RateLimitUsecase,
	syncers []usecase.ProviderSyncer,
	publisher service.EventPublisher,
	notification service.NotificationService,
	callTimeout time.Duration,
	lookback time.Duration,
	logger *slog.Logger,
) usecase.SyncUsecase {
	byProvider := make(map[entity.Provider]usecase.ProviderSyncer, len(syncers))
	for _, s := range syncers {
		byProvider[s.Provider()] = s
	}

	if callTimeout <= 0 {
		callTimeout = 30 * time.Second
	}
	if lookback <= 0 {
		lookback = 24 * time.Hour
	}

	return &syncService{
		profileRepo:  profileRepo,
		recordRepo:   recordRepo,
		deviceRepo:   deviceRepo,
		tokens:       tokens,
		rateLimiter:  rateLimiter,
		syncers:      byProvider,
		publisher:    publisher,
		notification: notification,
		callTimeout:  callTimeout,
		lookback:     lookback,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *syncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SyncAll synchronizes every connected provider concurrently.
func (s *syncService) SyncAll(ctx context.Context, userID uuid.UUID, window usecase.SyncWindow) (*usecase.SyncReport, error) {
	// 1. Load the profile; without one there is no authenticated sync context
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthRequired, "no sync profile")
		}

		return nil, errors.Wrap(err, "failed to load sync profile")
	}

	window = s.resolveWindow(window)
	startedAt := s.now()
	s.log(ctx).Info("Starting sync run",
		slog.Any("user_id", userID),
		slog.Int("providers", len(profile.ConnectedProviders)),
		slog.Time("from", window.From), slog.Time("to", window.To))

	// 2. Fan out one worker per connected provider
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results []entity.ProviderSyncResult
	)
	for _, conn := range profile.ConnectedProviders {
		syncer, ok := s.syncers[conn.Provider]
		if !ok {
			s.log(ctx).Warn("No syncer registered for connected provider",
				slog.String("provider", conn.Provider.String()))

			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()

			providerResults := s.runProvider(ctx, profile, syncer, window)

			mu.Lock()
			results = append(results, providerResults...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 3. Assemble the report and fire the post-run side effects
	report := &usecase.SyncReport{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		StartedAt:  startedAt,
		FinishedAt: s.now(),
		Results:    results,
	}
	s.finishRun(ctx, userID, report)

	return report, nil
}

// SyncProvider synchronizes a single provider.
func (s *syncService) SyncProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider, window usecase.SyncWindow) (*usecase.SyncReport, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAuthRequired, "no sync profile")
		}

		return nil, errors.Wrap(err, "failed to load sync profile")
	}

	if !profile.IsConnected(provider) {
		return nil, errors.Wrap(domainerrors.ErrProviderNotConnected, provider.String())
	}
	syncer, ok := s.syncers[provider]
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInternalError, "no syncer for provider %s", provider)
	}

	window = s.resolveWindow(window)
	startedAt := s.now()

	report := &usecase.SyncReport{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		StartedAt:  startedAt,
		Results:    s.runProvider(ctx, profile, syncer, window),
		FinishedAt: s.now(),
	}
	s.finishRun(ctx, userID, report)

	return report, nil
}

// Activities lists the user's synchronized activities in the window.
func (s *syncService) Activities(ctx context.Context, userID uuid.UUID, window usecase.SyncWindow) ([]*entity.ActivityRecord, error) {
	window = s.resolveWindow(window)

	records, err := s.recordRepo.ListActivities(ctx, userID, window.From, window.To)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return records, nil
}

// resolveWindow fills zero bounds with now minus the configured lookback.
func (s *syncService) resolveWindow(window usecase.SyncWindow) usecase.SyncWindow {
	if window.To.IsZero() {
		window.To = s.now()
	}
	if window.From.IsZero() {
		window.From = window.To.Add(-s.lookback)
	}

	return window
}

// runProvider executes one provider's call types in order. A token that
// cannot be made valid fails every call up front; once the provider
// rejects credentials mid-run, the remaining calls are skipped with the
// same outcome instead of hammering a dead session.
func (s *syncService) runProvider(ctx context.Context, profile *entity.UserSyncProfile, syncer usecase.ProviderSyncer, window usecase.SyncWindow) []entity.ProviderSyncResult {
	provider := syncer.Provider()
	callTypes := syncer.CallTypes()
	results := make([]entity.ProviderSyncResult, 0, len(callTypes))

	accessToken, tokenErr := s.tokens.ValidAccessToken(ctx, profile.ID, provider)
	if tokenErr != nil {
		kind := s.classify(tokenErr)
		s.log(ctx).Warn("Provider token unavailable",
			slog.String("provider", provider.String()), slog.Any("error", tokenErr))

		for _, callType := range callTypes {
			results = append(results, s.failedResult(provider, callType, kind, tokenErr))
		}

		return results
	}

	authDead := false
	for _, callType := range callTypes {
		if authDead {
			results = append(results, entity.ProviderSyncResult{
				Provider:  provider,
				CallType:  callType,
				Success:   false,
				Message:   "skipped, provider requires re-authentication",
				ErrorKind: entity.KindProviderAuthExpired,
			})

			continue
		}

		result := s.runCall(ctx, profile, syncer, accessToken, callType, window)
		if result.ErrorKind == entity.KindProviderAuthExpired {
			authDead = true
			s.expireProviderAuth(ctx, profile.ID, provider)
		}

		results = append(results, result)
	}

	return results
}

// runCall guards one provider call with the daily budget, executes it
// under the per-call timeout and settles the reservation.
func (s *syncService) runCall(ctx context.Context, profile *entity.UserSyncProfile, syncer usecase.ProviderSyncer, accessToken string, callType entity.CallType, window usecase.SyncWindow) entity.ProviderSyncResult {
	provider := syncer.Provider()

	reservation, err := s.rateLimiter.CheckAndReserve(ctx, profile.ID, profile.Tier, provider, callType)
	if err != nil {
		return s.failedResult(provider, callType, entity.KindStorageUnavailable, err)
	}
	if !reservation.Allowed() {
		observability.RecordRateLimitDenied(provider.String(), string(callType))
		observability.RecordSyncCall(provider.String(), string(callType), string(entity.KindRateLimitExceeded))

		return entity.ProviderSyncResult{
			Provider: provider,
			CallType: callType,
			Success:  false,
			Message: fmt.Sprintf("daily limit reached, next sync available in %s",
				util.FormatDuration(reservation.RetryAt().Sub(s.now()))),
			ErrorKind: entity.KindRateLimitExceeded,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()

	processed, err := syncer.Sync(callCtx, profile.ID, accessToken, callType, window)
	if err != nil {
		kind := s.classify(err)
		if kind == entity.KindProviderAuthExpired {
			// Credentials were dead before the call could be served, so
			// the budget slot is returned for use after reconnecting.
			reservation.Release()
		} else if commitErr := reservation.Commit(ctx); commitErr != nil {
			s.log(ctx).Error("Failed to commit rate limit slot",
				slog.Any("error", commitErr), slog.String("provider", provider.String()))
		}

		s.log(ctx).Error("Provider call failed",
			slog.String("provider", provider.String()),
			slog.String("call_type", string(callType)),
			slog.String("kind", string(kind)),
			slog.Any("error", err))

		return s.failedResult(provider, callType, kind, err)
	}

	if err := reservation.Commit(ctx); err != nil {
		s.log(ctx).Error("Failed to commit rate limit slot",
			slog.Any("error", err), slog.String("provider", provider.String()))
	}

	observability.RecordSyncCall(provider.String(), string(callType), "")
	observability.RecordPersisted(provider.String(), processed)

	return entity.ProviderSyncResult{
		Provider:         provider,
		CallType:         callType,
		Success:          true,
		Message:          fmt.Sprintf("synced %d records", processed),
		RecordsProcessed: processed,
	}
}

func (s *syncService) failedResult(provider entity.Provider, callType entity.CallType, kind entity.SyncErrorKind, err error) entity.ProviderSyncResult {
	observability.RecordSyncCall(provider.String(), string(callType), string(kind))

	return entity.ProviderSyncResult{
		Provider:  provider,
		CallType:  callType,
		Success:   false,
		Message:   err.Error(),
		ErrorKind: kind,
	}
}

// classify maps any pipeline error onto its result kind.
func (s *syncService) classify(err error) entity.SyncErrorKind {
	if err == nil {
		return entity.KindNone
	}

	var syncErr *domainerrors.SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}

	switch {
	case errors.Is(err, domainerrors.ErrProviderAuthExpired) || service.IsAuthExpired(err):
		return entity.KindProviderAuthExpired
	case errors.Is(err, domainerrors.ErrProviderNotConnected):
		return entity.KindProviderNotConnected
	case errors.Is(err, domainerrors.ErrAuthRequired):
		return entity.KindAuthRequired
	case errors.Is(err, domainerrors.ErrRateLimitExceeded):
		return entity.KindRateLimitExceeded
	}

	var apiErr *service.ProviderAPIError
	if errors.As(err, &apiErr) || errors.Is(err, context.DeadlineExceeded) {
		return entity.KindProviderAPIError
	}

	return entity.KindUnexpected
}

// finishRun publishes the run event and pushes a completion notification.
// Both are best effort; a dead broker never fails a finished sync.
func (s *syncService) finishRun(ctx context.Context, userID uuid.UUID, report *usecase.SyncReport) {
	observability.RecordSyncRunFinished(report.FinishedAt)

	event := &entity.SyncRunEvent{
		RequestID:   report.RequestID,
		UserID:      userID.String(),
		StartedAt:   report.StartedAt,
		FinishedAt:  report.FinishedAt,
		Results:     report.Results,
		RecordCount: report.RecordCount(),
	}
	if err := s.publisher.PublishSyncRunEvent(ctx, event); err != nil {
		s.log(ctx).Error("Failed to publish sync run event", slog.Any("error", err), slog.Any("user_id", userID))
	}

	s.notifyDevices(ctx, userID, report)
}

func (s *syncService) notifyDevices(ctx context.Context, userID uuid.UUID, report *usecase.SyncReport) {
	count := report.RecordCount()
	if count == 0 {
		return
	}

	body := fmt.Sprintf("%d new records synced", count)
	data := map[string]string{"type": "sync_completed", "record_count": fmt.Sprintf("%d", count)}
	s.push(ctx, userID, "Sync complete", body, data)
}

// expireProviderAuth handles a provider rejecting the access token
// mid-run: the dead credentials are dropped and the user is asked to
// reconnect. Called at most once per provider per run because the
// remaining call types are skipped after the first rejection.
func (s *syncService) expireProviderAuth(ctx context.Context, userID uuid.UUID, provider entity.Provider) {
	s.log(ctx).Warn("Provider rejected access token, disconnecting",
		slog.Any("user_id", userID), slog.String("provider", provider.String()))

	if err := s.tokens.Invalidate(ctx, userID, provider); err != nil {
		s.log(ctx).Error("Failed to invalidate rejected token set",
			slog.Any("error", err), slog.Any("user_id", userID), slog.String("provider", provider.String()))
	}

	body := fmt.Sprintf("Your %s connection expired, reconnect it to keep syncing", provider.String())
	data := map[string]string{"type": "reconnect_required", "provider": provider.String()}
	s.push(ctx, userID, "Reconnect needed", body, data)
}

// push sends one message to all of the user's active devices. The
// notification service is optional; without one the push is skipped.
func (s *syncService) push(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) {
	if s.notification == nil {
		return
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		s.log(ctx).Error("Failed to load devices for push notification", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, d := range devices {
		tokens = append(tokens, d.FCMToken)
	}

	if _, _, _, err := s.notification.SendBatchNotification(ctx, tokens, title, body, data); err != nil {
		s.log(ctx).Error("Failed to send push notification", slog.Any("error", err), slog.String("title", title))
	}
}
