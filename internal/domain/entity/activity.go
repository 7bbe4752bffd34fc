package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ActivityType is the canonical classification every provider's activity
// codes and labels are mapped into.
type ActivityType string

const (
	ActivityWalking  ActivityType = "Walking"
	ActivityRunning  ActivityType = "Running"
	ActivityHiking   ActivityType = "Hiking"
	ActivitySwimming ActivityType = "Swimming"
	ActivityCycling  ActivityType = "Cycling"
	ActivityWorkout  ActivityType = "Workout"
	ActivityOther    ActivityType = "Other"
)

// RecordID builds the canonical activity record id. It doubles as the
// idempotency key: re-syncing the same provider activity always lands on
// the same id.
func RecordID(provider Provider, originalID string) string {
	return fmt.Sprintf("%s-%s", provider, originalID)
}

// DateBucketFormat is the YYYY-MM-DD layout shared by date-keyed records.
const DateBucketFormat = "2006-01-02"

// ActivityRecord is the provider-agnostic activity shape all adapters
// normalize into. Optional fields are pointers; a nil pointer means the
// provider did not supply the value (or supplied it in an unknown unit, in
// which case it is deliberately dropped rather than guessed).
type ActivityRecord struct {
	ID         string // "{provider}-{originalID}", unique per user.
	UserID     uuid.UUID
	Provider   Provider
	OriginalID string
	Type       ActivityType
	Name       string

	StartTimeUTC   time.Time
	StartTimeLocal time.Time // Best effort; equals StartTimeUTC when the provider gives no local time.
	DateBucket     string    // YYYY-MM-DD derived from the local start.

	MovingDurationSec  int
	ElapsedDurationSec int

	DistanceMeters      *float64 // Always meters, never provider-native units.
	Calories            *int
	Steps               *int
	AvgHeartRate        *float64
	MaxHeartRate        *float64
	ElevationGainMeters *float64
	StartPoint          *orb.Point // Longitude/latitude of the activity start, when supplied.

	LastFetchedAt time.Time
}

// SleepStageSummary holds per-stage minute totals for one sleep log.
type SleepStageSummary struct {
	DeepMinutes  int
	LightMinutes int
	REMMinutes   int
	WakeMinutes  int
}

// SleepRecord is one provider sleep log. It is keyed by LogID rather than
// by date because a user can log a main sleep and naps on the same date.
type SleepRecord struct {
	LogID             string
	UserID            uuid.UUID
	Provider          Provider
	DateOfSleep       string // YYYY-MM-DD the sleep is attributed to.
	StartTime         time.Time
	EndTime           time.Time
	DurationMS        int64
	MinutesAsleep     int
	MinutesAwake      int
	EfficiencyPercent int
	Stages            SleepStageSummary
	LastFetchedAt     time.Time
}

// HeartRateZone is one named heart-rate zone with its day totals.
type HeartRateZone struct {
	Name        string
	MinBPM      int
	MaxBPM      int
	Minutes     int
	CaloriesOut float64
}

// HeartRateRecord is the per-day heart-rate document for one provider.
// One record per user per provider per day; re-syncs merge into it.
type HeartRateRecord struct {
	UserID           uuid.UUID
	Provider         Provider
	Date             string // YYYY-MM-DD.
	RestingHeartRate *int
	Zones            []HeartRateZone
	LastFetchedAt    time.Time
}

// DailySummary is the per-day aggregate activity document for one
// provider. One record per user per provider per day.
type DailySummary struct {
	UserID           uuid.UUID
	Provider         Provider
	Date             string // YYYY-MM-DD.
	Steps            int
	CaloriesOut      int
	DistanceMeters   *float64
	ActiveMinutes    int
	Floors           *int
	RestingHeartRate *int
	LastFetchedAt    time.Time
}
