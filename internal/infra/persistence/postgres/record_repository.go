package postgres

import (
	"context"
	"encoding/json"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/repository"
	"fitsync/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recordRepository implements the repository.RecordRepository interface.
// All writes are merge-upserts on the record's canonical key, which is what
// makes re-running a sync idempotent.
type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository is the constructor for recordRepository.
func NewRecordRepository(db *gorm.DB) repository.RecordRepository {
	return &recordRepository{
		db: db,
	}
}

// UpsertActivity merge-writes one activity record.
func (repo *recordRepository) UpsertActivity(ctx context.Context, record *entity.ActivityRecord) error {
	recordM := fromActivityDomain(record)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"type", "name", "start_time_utc", "start_time_local", "date_bucket",
				"moving_duration_sec", "elapsed_duration_sec", "distance_meters",
				"calories", "steps", "avg_heart_rate", "max_heart_rate",
				"elevation_gain_meters", "start_lat", "start_lng", "last_fetched_at",
			}),
		}).
		Create(recordM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert activity record")
	}

	return nil
}

// UpsertSleep merge-writes one sleep record.
func (repo *recordRepository) UpsertSleep(ctx context.Context, record *entity.SleepRecord) error {
	recordM := fromSleepDomain(record)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "log_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"date_of_sleep", "start_time", "end_time", "duration_ms",
				"minutes_asleep", "minutes_awake", "efficiency_percent",
				"deep_minutes", "light_minutes", "rem_minutes", "wake_minutes",
				"last_fetched_at",
			}),
		}).
		Create(recordM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert sleep record")
	}

	return nil
}

// UpsertHeartRate merge-writes the per-day heart-rate record.
func (repo *recordRepository) UpsertHeartRate(ctx context.Context, record *entity.HeartRateRecord) error {
	recordM, err := fromHeartRateDomain(record)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"resting_heart_rate", "zones", "last_fetched_at",
			}),
		}).
		Create(recordM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert heart rate record")
	}

	return nil
}

// UpsertDailySummary merge-writes the per-day summary.
func (repo *recordRepository) UpsertDailySummary(ctx context.Context, record *entity.DailySummary) error {
	recordM := &model.DailySummaryModel{
		UserID:           record.UserID,
		Provider:         record.Provider.String(),
		Date:             record.Date,
		Steps:            record.Steps,
		CaloriesOut:      record.CaloriesOut,
		DistanceMeters:   record.DistanceMeters,
		ActiveMinutes:    record.ActiveMinutes,
		Floors:           record.Floors,
		RestingHeartRate: record.RestingHeartRate,
		LastFetchedAt:    record.LastFetchedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "provider"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"steps", "calories_out", "distance_meters", "active_minutes",
				"floors", "resting_heart_rate", "last_fetched_at",
			}),
		}).
		Create(recordM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert daily summary")
	}

	return nil
}

// ListActivities returns a user's activity records with UTC start in
// [from, to), across all providers, oldest first.
func (repo *recordRepository) ListActivities(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ActivityRecord, error) {
	var recordModels []*model.ActivityRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND start_time_utc >= ? AND start_time_utc < ?", userID, from, to).
		Order("start_time_utc ASC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list activity records")
	}

	records := make([]*entity.ActivityRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toActivityDomain(recordM))
	}

	return records, nil
}

func fromActivityDomain(r *entity.ActivityRecord) *model.ActivityRecordModel {
	recordM := &model.ActivityRecordModel{
		ID:                  r.ID,
		UserID:              r.UserID,
		Provider:            r.Provider.String(),
		OriginalID:          r.OriginalID,
		Type:                string(r.Type),
		Name:                r.Name,
		StartTimeUTC:        r.StartTimeUTC,
		StartTimeLocal:      r.StartTimeLocal,
		DateBucket:          r.DateBucket,
		MovingDurationSec:   r.MovingDurationSec,
		ElapsedDurationSec:  r.ElapsedDurationSec,
		DistanceMeters:      r.DistanceMeters,
		Calories:            r.Calories,
		Steps:               r.Steps,
		AvgHeartRate:        r.AvgHeartRate,
		MaxHeartRate:        r.MaxHeartRate,
		ElevationGainMeters: r.ElevationGainMeters,
		LastFetchedAt:       r.LastFetchedAt,
	}

	if r.StartPoint != nil {
		lat, lng := r.StartPoint.Lat(), r.StartPoint.Lon()
		recordM.StartLat = &lat
		recordM.StartLng = &lng
	}

	return recordM
}

func toActivityDomain(m *model.ActivityRecordModel) *entity.ActivityRecord {
	record := &entity.ActivityRecord{
		ID:                  m.ID,
		UserID:              m.UserID,
		Provider:            entity.Provider(m.Provider),
		OriginalID:          m.OriginalID,
		Type:                entity.ActivityType(m.Type),
		Name:                m.Name,
		StartTimeUTC:        m.StartTimeUTC,
		StartTimeLocal:      m.StartTimeLocal,
		DateBucket:          m.DateBucket,
		MovingDurationSec:   m.MovingDurationSec,
		ElapsedDurationSec:  m.ElapsedDurationSec,
		DistanceMeters:      m.DistanceMeters,
		Calories:            m.Calories,
		Steps:               m.Steps,
		AvgHeartRate:        m.AvgHeartRate,
		MaxHeartRate:        m.MaxHeartRate,
		ElevationGainMeters: m.ElevationGainMeters,
		LastFetchedAt:       m.LastFetchedAt,
	}

	if m.StartLat != nil && m.StartLng != nil {
		point := orb.Point{*m.StartLng, *m.StartLat}
		record.StartPoint = &point
	}

	return record
}

func fromSleepDomain(r *entity.SleepRecord) *model.SleepRecordModel {
	return &model.SleepRecordModel{
		LogID:             r.LogID,
		UserID:            r.UserID,
		Provider:          r.Provider.String(),
		DateOfSleep:       r.DateOfSleep,
		StartTime:         r.StartTime,
		EndTime:           r.EndTime,
		DurationMS:        r.DurationMS,
		MinutesAsleep:     r.MinutesAsleep,
		MinutesAwake:      r.MinutesAwake,
		EfficiencyPercent: r.EfficiencyPercent,
		DeepMinutes:       r.Stages.DeepMinutes,
		LightMinutes:      r.Stages.LightMinutes,
		REMMinutes:        r.Stages.REMMinutes,
		WakeMinutes:       r.Stages.WakeMinutes,
		LastFetchedAt:     r.LastFetchedAt,
	}
}

func fromHeartRateDomain(r *entity.HeartRateRecord) (*model.HeartRateRecordModel, error) {
	zones, err := json.Marshal(r.Zones)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode heart rate zones")
	}

	return &model.HeartRateRecordModel{
		UserID:           r.UserID,
		Provider:         r.Provider.String(),
		Date:             r.Date,
		RestingHeartRate: r.RestingHeartRate,
		Zones:            zones,
		LastFetchedAt:    r.LastFetchedAt,
	}, nil
}
