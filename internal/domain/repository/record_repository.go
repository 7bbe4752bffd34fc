package repository

import (
	"context"
	"time"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordRepository persists the canonical records. Every upsert is a
// merge-write keyed by the record's canonical key: re-running a sync for an
// already-fetched period overwrites fields rather than appending
// duplicates, and fields absent from the new payload are preserved.
type RecordRepository interface {
	// UpsertActivity merge-writes one activity record keyed by its
	// canonical "{provider}-{originalID}" id.
	UpsertActivity(ctx context.Context, record *entity.ActivityRecord) error

	// UpsertSleep merge-writes one sleep record keyed by (user, provider,
	// log id). Distinct log ids on the same date stay distinct records.
	UpsertSleep(ctx context.Context, record *entity.SleepRecord) error

	// UpsertHeartRate merge-writes the per-day heart-rate record keyed by
	// (user, provider, date).
	UpsertHeartRate(ctx context.Context, record *entity.HeartRateRecord) error

	// UpsertDailySummary merge-writes the per-day summary keyed by
	// (user, provider, date).
	UpsertDailySummary(ctx context.Context, record *entity.DailySummary) error

	// ListActivities returns a user's activity records whose UTC start
	// falls within [from, to), across all providers.
	ListActivities(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ActivityRecord, error)
}

// TransactionManager runs a function within a single storage transaction so
// one provider sync's batch of upserts lands atomically.
type TransactionManager interface {
	// Execute runs fn inside a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to the current
// transaction.
type RepositoryFactory interface {
	// RecordRepo returns a RecordRepository bound to the transaction.
	RecordRepo() RecordRepository
}
