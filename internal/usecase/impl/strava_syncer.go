package impl

import (
	"context"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/repository"
	"fitsync/internal/domain/service"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// stravaSyncer runs the single Strava call: the paginated athlete
// activities list over the sync window.
type stravaSyncer struct {
	client    service.StravaClient
	persister *recordPersister
	now       func() time.Time
}

// NewStravaSyncer is the constructor for stravaSyncer.
func NewStravaSyncer(
	client service.StravaClient,
	txManager repository.TransactionManager,
) usecase.ProviderSyncer {
	return &stravaSyncer{
		client:    client,
		persister: newRecordPersister(entity.ProviderStrava, txManager),
		now:       time.Now,
	}
}

func (s *stravaSyncer) Provider() entity.Provider {
	return entity.ProviderStrava
}

func (s *stravaSyncer) CallTypes() []entity.CallType {
	return entity.CallTypesFor(entity.ProviderStrava)
}

// Sync fetches and persists the athlete's activities in the window.
func (s *stravaSyncer) Sync(ctx context.Context, userID uuid.UUID, accessToken string, callType entity.CallType, window usecase.SyncWindow) (int, error) {
	if callType != entity.CallActivities {
		return 0, errors.Errorf("strava does not support call type %s", callType)
	}

	activities, err := s.client.Activities(ctx, accessToken, window.From, window.To)
	if err != nil {
		return 0, errors.Wrap(err, "activities fetch failed")
	}

	fetchedAt := s.now()
	records := make([]*entity.ActivityRecord, 0, len(activities))
	for i := range activities {
		records = append(records, normalizeStravaActivity(userID, &activities[i], fetchedAt))
	}

	if err := s.persister.persistActivities(ctx, records); err != nil {
		return 0, err
	}

	return len(records), nil
}
