package impl

import (
	"context"

	"fitsync/internal/domain/entity"
	domainerrors "fitsync/internal/domain/errors"
	"fitsync/internal/domain/repository"

	"github.com/pkg/errors"
)

// recordPersister writes one provider call's batch of normalized records
// inside a single transaction, so a partially failed batch never leaves a
// half-synced period behind.
type recordPersister struct {
	provider  entity.Provider
	txManager repository.TransactionManager
}

func newRecordPersister(provider entity.Provider, txManager repository.TransactionManager) *recordPersister {
	return &recordPersister{provider: provider, txManager: txManager}
}

// persistActivities upserts a batch of activity records atomically.
func (p *recordPersister) persistActivities(ctx context.Context, records []*entity.ActivityRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := p.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		recordRepo := repos.RecordRepo()
		for _, record := range records {
			if err := recordRepo.UpsertActivity(ctx, record); err != nil {
				return errors.Wrapf(err, "failed to upsert activity %s", record.ID)
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewSyncError(entity.KindStorageUnavailable, p.provider, errors.Wrap(err, "activity batch write failed"))
	}

	return nil
}

// persistSleep upserts a batch of sleep records atomically.
func (p *recordPersister) persistSleep(ctx context.Context, records []*entity.SleepRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := p.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		recordRepo := repos.RecordRepo()
		for _, record := range records {
			if err := recordRepo.UpsertSleep(ctx, record); err != nil {
				return errors.Wrapf(err, "failed to upsert sleep log %s", record.LogID)
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewSyncError(entity.KindStorageUnavailable, p.provider, errors.Wrap(err, "sleep batch write failed"))
	}

	return nil
}

// persistHeartRates upserts per-day heart-rate records atomically.
func (p *recordPersister) persistHeartRates(ctx context.Context, records []*entity.HeartRateRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := p.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		recordRepo := repos.RecordRepo()
		for _, record := range records {
			if err := recordRepo.UpsertHeartRate(ctx, record); err != nil {
				return errors.Wrapf(err, "failed to upsert heart rate for %s", record.Date)
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewSyncError(entity.KindStorageUnavailable, p.provider, errors.Wrap(err, "heart rate batch write failed"))
	}

	return nil
}

// persistDailySummaries upserts per-day summaries atomically.
func (p *recordPersister) persistDailySummaries(ctx context.Context, records []*entity.DailySummary) error {
	if len(records) == 0 {
		return nil
	}

	err := p.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		recordRepo := repos.RecordRepo()
		for _, record := range records {
			if err := recordRepo.UpsertDailySummary(ctx, record); err != nil {
				return errors.Wrapf(err, "failed to upsert daily summary for %s", record.Date)
			}
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewSyncError(entity.KindStorageUnavailable, p.provider, errors.Wrap(err, "daily summary batch write failed"))
	}

	return nil
}
