package impl

import (
	"strconv"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// normalizeStravaActivity maps one Strava summary activity onto the
// canonical record. Strava already reports distance and elevation in
// meters, so no unit conversion applies.
func normalizeStravaActivity(userID uuid.UUID, act *service.StravaSummaryActivity, fetchedAt time.Time) *entity.ActivityRecord {
	originalID := strconv.FormatInt(act.ID, 10)

	// SportType is the finer-grained label ("TrailRun" vs "Run"); fall
	// back to the legacy Type field when absent.
	label := act.SportType
	if label == "" {
		label = act.Type
	}

	local := act.StartDateLocal
	if local.IsZero() {
		local = act.StartDate
	}

	record := &entity.ActivityRecord{
		ID:                  entity.RecordID(entity.ProviderStrava, originalID),
		UserID:              userID,
		Provider:            entity.ProviderStrava,
		OriginalID:          originalID,
		Type:                classifyLabel(label),
		Name:                act.Name,
		StartTimeUTC:        act.StartDate.UTC(),
		StartTimeLocal:      local,
		DateBucket:          dateBucket(local),
		MovingDurationSec:   act.MovingTime,
		ElapsedDurationSec:  act.ElapsedTime,
		DistanceMeters:      floatPtr(act.Distance),
		Calories:            intPtr(int(act.Calories)),
		AvgHeartRate:        floatPtr(act.AverageHeartrate),
		MaxHeartRate:        floatPtr(act.MaxHeartrate),
		ElevationGainMeters: floatPtr(act.TotalElevationGain),
		LastFetchedAt:       fetchedAt,
	}

	if len(act.StartLatLng) == 2 {
		point := orb.Point{act.StartLatLng[1], act.StartLatLng[0]} // lng, lat
		record.StartPoint = &point
	}

	return record
}
