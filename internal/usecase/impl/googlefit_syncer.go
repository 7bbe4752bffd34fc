package impl

import (
	"context"
	"log/slog"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// googleFitSyncer runs the Google Fit session list and enriches each
// session with per-metric aggregate queries. The session list plus its
// aggregates together count as one budgeted call.
type googleFitSyncer struct {
	client    service.GoogleFitClient
	persister *recordPersister
	now       func() time.Time
	logger    *slog.Logger
}

// NewGoogleFitSyncer is the constructor for googleFitSyncer.
func NewGoogleFitSyncer(
	client service.GoogleFitClient,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProviderSyncer {
	return &googleFitSyncer{
		client:    client,
		persister: newRecordPersister(entity.ProviderGoogleFit, txManager),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *googleFitSyncer) Provider() entity.Provider {
	return entity.ProviderGoogleFit
}

func (s *googleFitSyncer) CallTypes() []entity.CallType {
	return entity.CallTypesFor(entity.ProviderGoogleFit)
}

// Sync fetches sessions in the window, enriches them with aggregates and
// persists the batch.
func (s *googleFitSyncer) Sync(ctx context.Context, userID uuid.UUID, accessToken string, callType entity.CallType, window usecase.SyncWindow) (int, error) {
	if callType != entity.CallActivities {
		return 0, errors.Errorf("googlefit does not support call type %s", callType)
	}

	sessions, err := s.client.Sessions(ctx, accessToken, window.From, window.To)
	if err != nil {
		return 0, errors.Wrap(err, "sessions fetch failed")
	}

	fetchedAt := s.now()
	records := make([]*entity.ActivityRecord, 0, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		if sess.StartTime().IsZero() {
			s.logger.Warn("Skipping session with malformed timestamps", slog.String("session_id", sess.ID))

			continue
		}

		metrics, err := s.sessionMetrics(ctx, accessToken, sess)
		if err != nil {
			if service.IsAuthExpired(err) {
				return 0, errors.Wrap(err, "session metric aggregation failed")
			}

			// A failed enrichment still yields a usable record; persist
			// the session without the missing metrics.
			s.logger.Warn("Session metric aggregation failed",
				slog.Any("error", err), slog.String("session_id", sess.ID))
		}

		records = append(records, normalizeGoogleFitSession(userID, sess, metrics, fetchedAt))
	}

	if err := s.persister.persistActivities(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

// sessionMetrics aggregates distance, calories, steps and heart rate over
// the session span. It stops at the first error so one dead endpoint does
// not cost three more round trips.
func (s *googleFitSyncer) sessionMetrics(ctx context.Context, accessToken string, sess *service.GoogleFitSession) (googleFitMetrics, error) {
	var m googleFitMetrics
	start, end := sess.StartTime(), sess.EndTime()

	resp, err := s.client.AggregateMetric(ctx, accessToken, service.GoogleFitDistance, start, end)
	if err != nil {
		return m, errors.Wrap(err, "distance aggregate failed")
	}
	m.DistanceMeters = resp.Sum()

	resp, err = s.client.AggregateMetric(ctx, accessToken, service.GoogleFitCalories, start, end)
	if err != nil {
		return m, errors.Wrap(err, "calories aggregate failed")
	}
	m.Calories = resp.Sum()

	resp, err = s.client.AggregateMetric(ctx, accessToken, service.GoogleFitSteps, start, end)
	if err != nil {
		return m, errors.Wrap(err, "steps aggregate failed")
	}
	m.Steps = resp.Sum()

	resp, err = s.client.AggregateMetric(ctx, accessToken, service.GoogleFitHeartRate, start, end)
	if err != nil {
		return m, errors.Wrap(err, "heart rate aggregate failed")
	}
	m.AvgHeartRate = resp.Average()

	return m, nil
}
