package impl

import (
	"testing"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFitbitActivity(t *testing.T) {
	userID := uuid.New()
	fetchedAt := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	log := &service.FitbitActivityLog{
		LogID:            51007056845,
		ActivityName:     "Run",
		StartTime:        "2024-03-09T09:00:00.000-08:00",
		Duration:         3_600_000,
		ActiveDuration:   3_300_000,
		Distance:         10.2,
		DistanceUnit:     "Kilometer",
		Calories:         640,
		Steps:            9800,
		AverageHeartRate: 152,
		ElevationGain:    84.5,
	}

	record, err := normalizeFitbitActivity(userID, log, fetchedAt)
	require.NoError(t, err)

	assert.Equal(t, entity.RecordID(entity.ProviderFitbit, "51007056845"), record.ID)
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, entity.ProviderFitbit, record.Provider)
	assert.Equal(t, "51007056845", record.OriginalID)
	assert.Equal(t, entity.ActivityRunning, record.Type)
	assert.Equal(t, "Run", record.Name)
	assert.Equal(t, time.Date(2024, 3, 9, 17, 0, 0, 0, time.UTC), record.StartTimeUTC)
	assert.Equal(t, "2024-03-09", record.DateBucket)
	assert.Equal(t, 3600, record.ElapsedDurationSec)
	assert.Equal(t, 3300, record.MovingDurationSec)

	require.NotNil(t, record.DistanceMeters)
	assert.InDelta(t, 10200, *record.DistanceMeters, 0.001)
	require.NotNil(t, record.Calories)
	assert.Equal(t, 640, *record.Calories)
	require.NotNil(t, record.Steps)
	assert.Equal(t, 9800, *record.Steps)
	require.NotNil(t, record.AvgHeartRate)
	assert.Equal(t, 152.0, *record.AvgHeartRate)
	require.NotNil(t, record.ElevationGainMeters)
	assert.Equal(t, 84.5, *record.ElevationGainMeters)
	assert.Equal(t, fetchedAt, record.LastFetchedAt)
}

func TestNormalizeFitbitActivity_UnknownDistanceUnitDropped(t *testing.T) {
	log := &service.FitbitActivityLog{
		LogID:        1,
		ActivityName: "Swim",
		StartTime:    "2024-03-09T07:30:00.000-08:00",
		Duration:     1_800_000,
		Distance:     40,
		DistanceUnit: "Pool Length",
	}

	record, err := normalizeFitbitActivity(uuid.New(), log, time.Now())
	require.NoError(t, err)

	assert.Equal(t, entity.ActivitySwimming, record.Type)
	assert.Nil(t, record.DistanceMeters)
}

func TestNormalizeFitbitActivity_ZeroOptionalFieldsStayAbsent(t *testing.T) {
	log := &service.FitbitActivityLog{
		LogID:        2,
		ActivityName: "Walk",
		StartTime:    "2024-03-09T07:30:00.000Z",
		Duration:     600_000,
	}

	record, err := normalizeFitbitActivity(uuid.New(), log, time.Now())
	require.NoError(t, err)

	assert.Nil(t, record.Calories)
	assert.Nil(t, record.Steps)
	assert.Nil(t, record.AvgHeartRate)
	assert.Nil(t, record.ElevationGainMeters)
}

func TestNormalizeFitbitActivity_MalformedStartTime(t *testing.T) {
	log := &service.FitbitActivityLog{
		LogID:        3,
		ActivityName: "Run",
		StartTime:    "yesterday morning",
	}

	_, err := normalizeFitbitActivity(uuid.New(), log, time.Now())
	assert.Error(t, err)
}

func TestNormalizeFitbitSleep(t *testing.T) {
	userID := uuid.New()
	fetchedAt := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	log := &service.FitbitSleepLog{
		LogID:         44001,
		DateOfSleep:   "2024-03-10",
		StartTime:     "2024-03-09T23:41:00.000",
		EndTime:       "2024-03-10T07:12:30.000",
		Duration:      27_090_000,
		MinutesAsleep: 412,
		MinutesAwake:  39,
		Efficiency:    91,
		IsMainSleep:   true,
		Levels: service.FitbitSleepLevels{
			Summary: map[string]service.FitbitSleepStage{
				"deep":  {Minutes: 72},
				"light": {Minutes: 230},
				"rem":   {Minutes: 110},
				"wake":  {Minutes: 39},
			},
		},
	}

	record, err := normalizeFitbitSleep(userID, log, fetchedAt)
	require.NoError(t, err)

	assert.Equal(t, "44001", record.LogID)
	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, entity.ProviderFitbit, record.Provider)
	assert.Equal(t, "2024-03-10", record.DateOfSleep)
	assert.Equal(t, time.Date(2024, 3, 9, 23, 41, 0, 0, time.UTC), record.StartTime)
	assert.Equal(t, time.Date(2024, 3, 10, 7, 12, 30, 0, time.UTC), record.EndTime)
	assert.Equal(t, int64(27_090_000), record.DurationMS)
	assert.Equal(t, 412, record.MinutesAsleep)
	assert.Equal(t, 39, record.MinutesAwake)
	assert.Equal(t, 91, record.EfficiencyPercent)
	assert.Equal(t, 72, record.Stages.DeepMinutes)
	assert.Equal(t, 230, record.Stages.LightMinutes)
	assert.Equal(t, 110, record.Stages.REMMinutes)
	assert.Equal(t, 39, record.Stages.WakeMinutes)
}

func TestNormalizeFitbitSleep_MissingStagesDefaultToZero(t *testing.T) {
	log := &service.FitbitSleepLog{
		LogID:       44002,
		DateOfSleep: "2024-03-10",
		StartTime:   "2024-03-10T01:00:00.000",
		EndTime:     "2024-03-10T02:10:00.000",
		Duration:    4_200_000,
	}

	record, err := normalizeFitbitSleep(uuid.New(), log, time.Now())
	require.NoError(t, err)

	assert.Zero(t, record.Stages.DeepMinutes)
	assert.Zero(t, record.Stages.REMMinutes)
}

func TestNormalizeFitbitSleep_MalformedEndTime(t *testing.T) {
	log := &service.FitbitSleepLog{
		LogID:     44003,
		StartTime: "2024-03-10T01:00:00.000",
		EndTime:   "2024-03-10 02:10",
	}

	_, err := normalizeFitbitSleep(uuid.New(), log, time.Now())
	assert.Error(t, err)
}

func TestNormalizeFitbitHeartRate(t *testing.T) {
	userID := uuid.New()
	fetchedAt := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	day := &service.FitbitHeartDay{
		DateTime: "2024-03-09",
		Value: service.FitbitHeartValue{
			RestingHeartRate: 54,
			HeartRateZones: []service.FitbitHeartZone{
				{Name: "Fat Burn", Min: 98, Max: 137, Minutes: 42, CaloriesOut: 310.5},
				{Name: "Cardio", Min: 137, Max: 167, Minutes: 18, CaloriesOut: 220.2},
			},
		},
	}

	record := normalizeFitbitHeartRate(userID, day, fetchedAt)

	assert.Equal(t, userID, record.UserID)
	assert.Equal(t, entity.ProviderFitbit, record.Provider)
	assert.Equal(t, "2024-03-09", record.Date)
	require.NotNil(t, record.RestingHeartRate)
	assert.Equal(t, 54, *record.RestingHeartRate)
	require.Len(t, record.Zones, 2)
	assert.Equal(t, entity.HeartRateZone{Name: "Fat Burn", MinBPM: 98, MaxBPM: 137, Minutes: 42, CaloriesOut: 310.5}, record.Zones[0])
}

func TestNormalizeFitbitHeartRate_NoRestingRate(t *testing.T) {
	day := &service.FitbitHeartDay{DateTime: "2024-03-09"}

	record := normalizeFitbitHeartRate(uuid.New(), day, time.Now())

	assert.Nil(t, record.RestingHeartRate)
	assert.Empty(t, record.Zones)
}

func TestNormalizeFitbitDailySummary(t *testing.T) {
	userID := uuid.New()
	day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	fetchedAt := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	resp := &service.FitbitDailySummaryResponse{
		Summary: service.FitbitActivitySummary{
			Steps:       11240,
			CaloriesOut: 2680,
			Distances: []service.FitbitDistance{
				{Activity: "tracker", Distance: 7.9},
				{Activity: "total", Distance: 8.12},
			},
			VeryActiveMinutes:    35,
			FairlyActiveMinutes:  22,
			LightlyActiveMinutes: 180,
			Floors:               14,
			RestingHeartRate:     55,
		},
	}

	summary := normalizeFitbitDailySummary(userID, day, resp, fetchedAt)

	assert.Equal(t, "2024-03-09", summary.Date)
	assert.Equal(t, 11240, summary.Steps)
	assert.Equal(t, 2680, summary.CaloriesOut)
	assert.Equal(t, 237, summary.ActiveMinutes)
	require.NotNil(t, summary.DistanceMeters)
	assert.InDelta(t, 8120, *summary.DistanceMeters, 0.001)
	require.NotNil(t, summary.Floors)
	assert.Equal(t, 14, *summary.Floors)
	require.NotNil(t, summary.RestingHeartRate)
	assert.Equal(t, 55, *summary.RestingHeartRate)
}

func TestNormalizeFitbitDailySummary_NoTotalDistance(t *testing.T) {
	resp := &service.FitbitDailySummaryResponse{
		Summary: service.FitbitActivitySummary{
			Steps: 400,
			Distances: []service.FitbitDistance{
				{Activity: "tracker", Distance: 0.3},
			},
		},
	}

	summary := normalizeFitbitDailySummary(uuid.New(), time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), resp, time.Now())

	assert.Nil(t, summary.DistanceMeters)
	assert.Nil(t, summary.Floors)
	assert.Nil(t, summary.RestingHeartRate)
}
