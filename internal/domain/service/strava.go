package service

import (
	"context"
	"time"
)

// StravaClient issues the raw Strava API calls.
type StravaClient interface {
	// Activities fetches the athlete's activities whose start falls in
	// (after, before), walking the paginated list until exhausted.
	Activities(ctx context.Context, accessToken string, after, before time.Time) ([]StravaSummaryActivity, error)
}

// StravaSummaryActivity is one entry of GET /api/v3/athlete/activities.
// Distances and elevation are meters; Strava is the only provider that
// reports distance in SI units directly.
type StravaSummaryActivity struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	SportType          string    `json:"sport_type"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"moving_time"`
	ElapsedTime        int       `json:"elapsed_time"`
	StartDate          time.Time `json:"start_date"`       // UTC
	StartDateLocal     time.Time `json:"start_date_local"` // wall-clock at the activity location
	Timezone           string    `json:"timezone"`
	AverageHeartrate   float64   `json:"average_heartrate"`
	MaxHeartrate       float64   `json:"max_heartrate"`
	TotalElevationGain float64   `json:"total_elevation_gain"`
	Calories           float64   `json:"calories"`
	StartLatLng        []float64 `json:"start_latlng"` // [lat, lng], empty when not recorded
}
