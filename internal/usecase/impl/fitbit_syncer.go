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

// fitbitSyncer runs the Fitbit calls: day-keyed aggregates plus the two
// activity list paths. Swim is fetched through its dedicated path first,
// so the generic activities call skips swim records to avoid counting the
// same session twice.
type fitbitSyncer struct {
	client    service.FitbitClient
	persister *recordPersister
	now       func() time.Time
	logger    *slog.Logger
}

// NewFitbitSyncer is the constructor for fitbitSyncer.
func NewFitbitSyncer(
	client service.FitbitClient,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProviderSyncer {
	return &fitbitSyncer{
		client:    client,
		persister: newRecordPersister(entity.ProviderFitbit, txManager),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *fitbitSyncer) Provider() entity.Provider {
	return entity.ProviderFitbit
}

func (s *fitbitSyncer) CallTypes() []entity.CallType {
	return entity.CallTypesFor(entity.ProviderFitbit)
}

// Sync performs one Fitbit call type over the window and persists the
// normalized batch.
func (s *fitbitSyncer) Sync(ctx context.Context, userID uuid.UUID, accessToken string, callType entity.CallType, window usecase.SyncWindow) (int, error) {
	switch callType {
	case entity.CallDailySummary:
		return s.syncDailySummaries(ctx, userID, accessToken, window)
	case entity.CallHeartRate:
		return s.syncHeartRates(ctx, userID, accessToken, window)
	case entity.CallSleep:
		return s.syncSleep(ctx, userID, accessToken, window)
	case entity.CallSwim:
		return s.syncActivityList(ctx, userID, accessToken, window, true)
	case entity.CallActivities:
		return s.syncActivityList(ctx, userID, accessToken, window, false)
	default:
		return 0, errors.Errorf("fitbit does not support call type %s", callType)
	}
}

func (s *fitbitSyncer) syncDailySummaries(ctx context.Context, userID uuid.UUID, accessToken string, window usecase.SyncWindow) (int, error) {
	fetchedAt := s.now()
	var summaries []*entity.DailySummary

	for _, day := range daysIn(window) {
		resp, err := s.client.DailyActivitySummary(ctx, accessToken, day)
		if err != nil {
			return 0, errors.Wrapf(err, "daily summary fetch failed for %s", day.Format(entity.DateBucketFormat))
		}

		summaries = append(summaries, normalizeFitbitDailySummary(userID, day, resp, fetchedAt))
	}

	if err := s.persister.persistDailySummaries(ctx, summaries); err != nil {
		return 0, err
	}

	return len(summaries), nil
}

func (s *fitbitSyncer) syncHeartRates(ctx context.Context, userID uuid.UUID, accessToken string, window usecase.SyncWindow) (int, error) {
	fetchedAt := s.now()
	var records []*entity.HeartRateRecord

	for _, day := range daysIn(window) {
		resp, err := s.client.HeartRateByDate(ctx, accessToken, day)
		if err != nil {
			return 0, errors.Wrapf(err, "heart rate fetch failed for %s", day.Format(entity.DateBucketFormat))
		}

		for i := range resp.ActivitiesHeart {
			records = append(records, normalizeFitbitHeartRate(userID, &resp.ActivitiesHeart[i], fetchedAt))
		}
	}

	if err := s.persister.persistHeartRates(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

func (s *fitbitSyncer) syncSleep(ctx context.Context, userID uuid.UUID, accessToken string, window usecase.SyncWindow) (int, error) {
	fetchedAt := s.now()
	var records []*entity.SleepRecord

	for _, day := range daysIn(window) {
		resp, err := s.client.SleepLogsByDate(ctx, accessToken, day)
		if err != nil {
			return 0, errors.Wrapf(err, "sleep fetch failed for %s", day.Format(entity.DateBucketFormat))
		}

		for i := range resp.Sleep {
			record, err := normalizeFitbitSleep(userID, &resp.Sleep[i], fetchedAt)
			if err != nil {
				s.logger.Warn("Skipping malformed sleep log",
					slog.Any("error", err), slog.Int64("log_id", resp.Sleep[i].LogID))

				continue
			}

			records = append(records, record)
		}
	}

	if err := s.persister.persistSleep(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

// syncActivityList handles both the swim path and the generic list. The
// generic pass drops swim records because the swim call already persisted
// them under the same canonical ids.
func (s *fitbitSyncer) syncActivityList(ctx context.Context, userID uuid.UUID, accessToken string, window usecase.SyncWindow, swimOnly bool) (int, error) {
	fetchedAt := s.now()

	var resp *service.FitbitActivityLogListResponse
	var err error
	if swimOnly {
		resp, err = s.client.SwimActivities(ctx, accessToken, window.From)
	} else {
		resp, err = s.client.ActivityLogList(ctx, accessToken, window.From)
	}
	if err != nil {
		return 0, errors.Wrap(err, "activity list fetch failed")
	}

	var records []*entity.ActivityRecord
	for i := range resp.Activities {
		record, err := normalizeFitbitActivity(userID, &resp.Activities[i], fetchedAt)
		if err != nil {
			s.logger.Warn("Skipping malformed activity log",
				slog.Any("error", err), slog.Int64("log_id", resp.Activities[i].LogID))

			continue
		}

		if !swimOnly && record.Type == entity.ActivitySwimming {
			continue
		}
		if !window.To.IsZero() && !record.StartTimeUTC.Before(window.To) {
			continue
		}

		records = append(records, record)
	}

	if err := s.persister.persistActivities(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}

// daysIn enumerates the UTC calendar days the window touches, capped so a
// misconfigured window cannot turn into an unbounded request storm.
const maxWindowDays = 31

func daysIn(window usecase.SyncWindow) []time.Time {
	from := window.From.UTC().Truncate(24 * time.Hour)
	to := window.To.UTC()

	var days []time.Time
	for day := from; !day.After(to) && len(days) < maxWindowDays; day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}
