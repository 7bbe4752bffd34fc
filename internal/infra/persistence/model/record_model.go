package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityRecordModel mirrors the 'activity_records' table. The primary
// key is the canonical "{provider}-{originalID}" id scoped to the user, so
// re-synced activities overwrite in place.
type ActivityRecordModel struct {
	ID         string    `gorm:"type:varchar(120);primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider   string    `gorm:"type:varchar(20);not null;index:idx_activity_user_provider"`
	OriginalID string    `gorm:"type:varchar(80);not null"`
	Type       string    `gorm:"type:varchar(20);not null"`
	Name       string    `gorm:"type:varchar(255)"`

	StartTimeUTC   time.Time `gorm:"not null;index:idx_activity_user_start"`
	StartTimeLocal time.Time
	DateBucket     string `gorm:"type:varchar(10);not null;index"`

	MovingDurationSec  int
	ElapsedDurationSec int

	DistanceMeters      *float64
	Calories            *int
	Steps               *int
	AvgHeartRate        *float64
	MaxHeartRate        *float64
	ElevationGainMeters *float64
	StartLat            *float64
	StartLng            *float64

	LastFetchedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityRecordModel) TableName() string {
	return "activity_records"
}

// SleepRecordModel mirrors the 'sleep_records' table, keyed by provider
// log id so naps on the same date stay distinct.
type SleepRecordModel struct {
	LogID             string    `gorm:"type:varchar(80);primary_key"`
	UserID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider          string    `gorm:"type:varchar(20);not null"`
	DateOfSleep       string    `gorm:"type:varchar(10);not null;index"`
	StartTime         time.Time
	EndTime           time.Time
	DurationMS        int64
	MinutesAsleep     int
	MinutesAwake      int
	EfficiencyPercent int
	DeepMinutes       int
	LightMinutes      int
	REMMinutes        int
	WakeMinutes       int
	LastFetchedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SleepRecordModel) TableName() string {
	return "sleep_records"
}

// HeartRateRecordModel mirrors the 'heart_rate_records' table. One row per
// (user, provider, date); the zone breakdown is stored as JSONB.
type HeartRateRecordModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider         string    `gorm:"type:varchar(20);primary_key"`
	Date             string    `gorm:"type:varchar(10);primary_key"`
	RestingHeartRate *int
	Zones            []byte    `gorm:"type:jsonb"`
	LastFetchedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (HeartRateRecordModel) TableName() string {
	return "heart_rate_records"
}

// DailySummaryModel mirrors the 'daily_summaries' table. One row per
// (user, provider, date).
type DailySummaryModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider         string    `gorm:"type:varchar(20);primary_key"`
	Date             string    `gorm:"type:varchar(10);primary_key"`
	Steps            int
	CaloriesOut      int
	DistanceMeters   *float64
	ActiveMinutes    int
	Floors           *int
	RestingHeartRate *int
	LastFetchedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DailySummaryModel) TableName() string {
	return "daily_summaries"
}
