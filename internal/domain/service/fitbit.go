package service

import (
	"context"
	"time"
)

// FitbitClient issues the raw Fitbit Web API calls. Each method is a single
// outbound HTTP request returning the provider-shaped payload, validated
// against these types at the adapter boundary.
type FitbitClient interface {
	// DailyActivitySummary fetches the aggregate activity summary for one day.
	DailyActivitySummary(ctx context.Context, accessToken string, day time.Time) (*FitbitDailySummaryResponse, error)

	// HeartRateByDate fetches the heart-rate zones and resting rate for one day.
	HeartRateByDate(ctx context.Context, accessToken string, day time.Time) (*FitbitHeartRateResponse, error)

	// SleepLogsByDate fetches all sleep logs ending on the given date.
	SleepLogsByDate(ctx context.Context, accessToken string, day time.Time) (*FitbitSleepResponse, error)

	// ActivityLogList fetches logged activities starting on or after the
	// given day, oldest first.
	ActivityLogList(ctx context.Context, accessToken string, day time.Time) (*FitbitActivityLogListResponse, error)

	// SwimActivities fetches swim sessions through the dedicated swim path
	// for the given day.
	SwimActivities(ctx context.Context, accessToken string, day time.Time) (*FitbitActivityLogListResponse, error)
}

// FitbitDailySummaryResponse is the payload of GET /1/user/-/activities/date/{date}.json.
type FitbitDailySummaryResponse struct {
	Summary FitbitActivitySummary `json:"summary"`
}

// FitbitActivitySummary holds the day totals inside the daily summary payload.
type FitbitActivitySummary struct {
	Steps                int              `json:"steps"`
	CaloriesOut          int              `json:"caloriesOut"`
	Distances            []FitbitDistance `json:"distances"`
	VeryActiveMinutes    int              `json:"veryActiveMinutes"`
	FairlyActiveMinutes  int              `json:"fairlyActiveMinutes"`
	LightlyActiveMinutes int              `json:"lightlyActiveMinutes"`
	Floors               int              `json:"floors"`
	RestingHeartRate     int              `json:"restingHeartRate"`
}

// FitbitDistance is one entry of the per-category distance breakdown.
// Values are in the account's distance unit, reported as kilometers for
// the unit system this engine requests.
type FitbitDistance struct {
	Activity string  `json:"activity"`
	Distance float64 `json:"distance"`
}

// FitbitHeartRateResponse is the payload of the heart time-series endpoint.
type FitbitHeartRateResponse struct {
	ActivitiesHeart []FitbitHeartDay `json:"activities-heart"`
}

// FitbitHeartDay is one day of heart-rate data.
type FitbitHeartDay struct {
	DateTime string           `json:"dateTime"`
	Value    FitbitHeartValue `json:"value"`
}

// FitbitHeartValue carries the zones and resting rate for a day.
type FitbitHeartValue struct {
	RestingHeartRate int               `json:"restingHeartRate"`
	HeartRateZones   []FitbitHeartZone `json:"heartRateZones"`
}

// FitbitHeartZone is one named heart-rate zone.
type FitbitHeartZone struct {
	Name        string  `json:"name"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
	Minutes     int     `json:"minutes"`
	CaloriesOut float64 `json:"caloriesOut"`
}

// FitbitSleepResponse is the payload of GET /1.2/user/-/sleep/date/{date}.json.
type FitbitSleepResponse struct {
	Sleep []FitbitSleepLog `json:"sleep"`
}

// FitbitSleepLog is one sleep log. Start and end times are zone-less local
// datetimes ("2024-03-09T23:41:00.000").
type FitbitSleepLog struct {
	LogID         int64             `json:"logId"`
	DateOfSleep   string            `json:"dateOfSleep"`
	StartTime     string            `json:"startTime"`
	EndTime       string            `json:"endTime"`
	Duration      int64             `json:"duration"` // milliseconds
	MinutesAsleep int               `json:"minutesAsleep"`
	MinutesAwake  int               `json:"minutesAwake"`
	Efficiency    int               `json:"efficiency"`
	IsMainSleep   bool              `json:"isMainSleep"`
	Levels        FitbitSleepLevels `json:"levels"`
}

// FitbitSleepLevels wraps the per-stage summary of a sleep log.
type FitbitSleepLevels struct {
	Summary map[string]FitbitSleepStage `json:"summary"`
}

// FitbitSleepStage holds the minutes spent in one sleep stage.
type FitbitSleepStage struct {
	Minutes int `json:"minutes"`
}

// FitbitActivityLogListResponse is the payload of GET /1/user/-/activities/list.json.
type FitbitActivityLogListResponse struct {
	Activities []FitbitActivityLog `json:"activities"`
}

// FitbitActivityLog is one logged activity. StartTime is ISO8601 with the
// device's UTC offset ("2024-03-09T09:00:00.000-08:00").
type FitbitActivityLog struct {
	LogID            int64   `json:"logId"`
	ActivityName     string  `json:"activityName"`
	StartTime        string  `json:"startTime"`
	Duration         int64   `json:"duration"`       // elapsed, milliseconds
	ActiveDuration   int64   `json:"activeDuration"` // moving, milliseconds
	Distance         float64 `json:"distance"`
	DistanceUnit     string  `json:"distanceUnit"`
	Calories         int     `json:"calories"`
	Steps            int     `json:"steps"`
	AverageHeartRate int     `json:"averageHeartRate"`
	ElevationGain    float64 `json:"elevationGain"`
}
