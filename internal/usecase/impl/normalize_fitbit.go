package impl

import (
	"strconv"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fitbitSleepTimeLayout matches Fitbit's zone-less local datetimes.
const fitbitSleepTimeLayout = "2006-01-02T15:04:05.000"

// normalizeFitbitActivity maps one Fitbit activity log onto the canonical
// record. A distance in an unrecognized unit is dropped, not guessed.
func normalizeFitbitActivity(userID uuid.UUID, log *service.FitbitActivityLog, fetchedAt time.Time) (*entity.ActivityRecord, error) {
	start, err := time.Parse(time.RFC3339, log.StartTime)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid activity start time %q", log.StartTime)
	}

	originalID := strconv.FormatInt(log.LogID, 10)
	record := &entity.ActivityRecord{
		ID:                  entity.RecordID(entity.ProviderFitbit, originalID),
		UserID:              userID,
		Provider:            entity.ProviderFitbit,
		OriginalID:          originalID,
		Type:                classifyLabel(log.ActivityName),
		Name:                log.ActivityName,
		StartTimeUTC:        start.UTC(),
		StartTimeLocal:      start,
		DateBucket:          dateBucket(start),
		MovingDurationSec:   int(log.ActiveDuration / 1000),
		ElapsedDurationSec:  int(log.Duration / 1000),
		Calories:            intPtr(log.Calories),
		Steps:               intPtr(log.Steps),
		AvgHeartRate:        floatPtr(float64(log.AverageHeartRate)),
		ElevationGainMeters: floatPtr(log.ElevationGain),
		LastFetchedAt:       fetchedAt,
	}

	if log.Distance > 0 {
		if meters, ok := toMeters(log.Distance, log.DistanceUnit); ok {
			record.DistanceMeters = &meters
		}
	}

	return record, nil
}

// normalizeFitbitSleep maps one Fitbit sleep log. Fitbit reports sleep
// times as local wall clock without an offset, so they are interpreted in
// the reference zone rather than converted.
func normalizeFitbitSleep(userID uuid.UUID, log *service.FitbitSleepLog, fetchedAt time.Time) (*entity.SleepRecord, error) {
	start, err := time.Parse(fitbitSleepTimeLayout, log.StartTime)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sleep start time %q", log.StartTime)
	}
	end, err := time.Parse(fitbitSleepTimeLayout, log.EndTime)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sleep end time %q", log.EndTime)
	}

	return &entity.SleepRecord{
		LogID:             strconv.FormatInt(log.LogID, 10),
		UserID:            userID,
		Provider:          entity.ProviderFitbit,
		DateOfSleep:       log.DateOfSleep,
		StartTime:         start,
		EndTime:           end,
		DurationMS:        log.Duration,
		MinutesAsleep:     log.MinutesAsleep,
		MinutesAwake:      log.MinutesAwake,
		EfficiencyPercent: log.Efficiency,
		Stages: entity.SleepStageSummary{
			DeepMinutes:  log.Levels.Summary["deep"].Minutes,
			LightMinutes: log.Levels.Summary["light"].Minutes,
			REMMinutes:   log.Levels.Summary["rem"].Minutes,
			WakeMinutes:  log.Levels.Summary["wake"].Minutes,
		},
		LastFetchedAt: fetchedAt,
	}, nil
}

// normalizeFitbitHeartRate maps one day of the heart time series.
func normalizeFitbitHeartRate(userID uuid.UUID, day *service.FitbitHeartDay, fetchedAt time.Time) *entity.HeartRateRecord {
	zones := make([]entity.HeartRateZone, 0, len(day.Value.HeartRateZones))
	for _, z := range day.Value.HeartRateZones {
		zones = append(zones, entity.HeartRateZone{
			Name:        z.Name,
			MinBPM:      z.Min,
			MaxBPM:      z.Max,
			Minutes:     z.Minutes,
			CaloriesOut: z.CaloriesOut,
		})
	}

	return &entity.HeartRateRecord{
		UserID:           userID,
		Provider:         entity.ProviderFitbit,
		Date:             day.DateTime,
		RestingHeartRate: intPtr(day.Value.RestingHeartRate),
		Zones:            zones,
		LastFetchedAt:    fetchedAt,
	}
}

// normalizeFitbitDailySummary maps the day aggregate. The "total" entry of
// the distance breakdown is in kilometers for the unit system requested.
func normalizeFitbitDailySummary(userID uuid.UUID, day time.Time, resp *service.FitbitDailySummaryResponse, fetchedAt time.Time) *entity.DailySummary {
	s := resp.Summary
	summary := &entity.DailySummary{
		UserID:           userID,
		Provider:         entity.ProviderFitbit,
		Date:             day.Format(entity.DateBucketFormat),
		Steps:            s.Steps,
		CaloriesOut:      s.CaloriesOut,
		ActiveMinutes:    s.VeryActiveMinutes + s.FairlyActiveMinutes + s.LightlyActiveMinutes,
		Floors:           intPtr(s.Floors),
		RestingHeartRate: intPtr(s.RestingHeartRate),
		LastFetchedAt:    fetchedAt,
	}

	for _, d := range s.Distances {
		if d.Activity == "total" && d.Distance > 0 {
			if meters, ok := toMeters(d.Distance, "kilometer"); ok {
				summary.DistanceMeters = &meters
			}
			break
		}
	}

	return summary
}
