package impl

import (
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/service"

	"github.com/google/uuid"
)

// googleFitActivityCodes maps the numeric activity types of the sessions
// API onto the canonical types. Codes not listed classify as Other.
var googleFitActivityCodes = map[int]entity.ActivityType{
	1:  entity.ActivityCycling,
	7:  entity.ActivityWalking,
	8:  entity.ActivityRunning,
	35: entity.ActivityHiking,
	80: entity.ActivityWorkout,
	82: entity.ActivitySwimming,
}

func classifyGoogleFit(code int) entity.ActivityType {
	if t, ok := googleFitActivityCodes[code]; ok {
		return t
	}

	return entity.ActivityOther
}

// googleFitMetrics carries the per-session aggregate values fetched
// alongside the session itself.
type googleFitMetrics struct {
	DistanceMeters float64
	Calories       float64
	Steps          float64
	AvgHeartRate   float64
}

// normalizeGoogleFitSession maps one session plus its aggregates onto the
// canonical record. Google Fit has no moving/elapsed distinction, so the
// session span fills both durations.
func normalizeGoogleFitSession(userID uuid.UUID, sess *service.GoogleFitSession, metrics googleFitMetrics, fetchedAt time.Time) *entity.ActivityRecord {
	start := sess.StartTime()
	durationSec := int(sess.EndTime().Sub(start) / time.Second)

	name := sess.Name
	if name == "" {
		name = sess.Description
	}

	return &entity.ActivityRecord{
		ID:                 entity.RecordID(entity.ProviderGoogleFit, sess.ID),
		UserID:             userID,
		Provider:           entity.ProviderGoogleFit,
		OriginalID:         sess.ID,
		Type:               classifyGoogleFit(sess.ActivityType),
		Name:               name,
		StartTimeUTC:       start,
		StartTimeLocal:     start,
		DateBucket:         dateBucket(start),
		MovingDurationSec:  durationSec,
		ElapsedDurationSec: durationSec,
		DistanceMeters:     floatPtr(metrics.DistanceMeters),
		Calories:           intPtr(int(metrics.Calories)),
		Steps:              intPtr(int(metrics.Steps)),
		AvgHeartRate:       floatPtr(metrics.AvgHeartRate),
		LastFetchedAt:      fetchedAt,
	}
}
