package service

import (
	"context"
	"strconv"
	"time"
)

// Google Fit aggregate data type names.
const (
	GoogleFitDistance  = "com.google.distance.delta"
	GoogleFitCalories  = "com.google.calories.expended"
	GoogleFitSteps     = "com.google.step_count.delta"
	GoogleFitHeartRate = "com.google.heart_rate.bpm"
)

// GoogleFitClient issues the raw Google Fitness REST calls.
type GoogleFitClient interface {
	// Sessions lists workout sessions in the window.
	Sessions(ctx context.Context, accessToken string, start, end time.Time) ([]GoogleFitSession, error)
	// AggregateMetric sums one data type over the session window so the
	// session can be enriched with distance, calories, steps or heart rate.
	AggregateMetric(ctx context.Context, accessToken, dataTypeName string, start, end time.Time) (*GoogleFitAggregateResponse, error)
}

// GoogleFitSession is one entry of GET /fitness/v1/users/me/sessions.
// Timestamps come over the wire as millisecond strings.
type GoogleFitSession struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	StartTimeMillis string `json:"startTimeMillis"`
	EndTimeMillis   string `json:"endTimeMillis"`
	ActivityType    int    `json:"activityType"`
}

// StartTime converts the millisecond string to a UTC time.
// A malformed value yields the zero time.
func (s GoogleFitSession) StartTime() time.Time {
	return millisToTime(s.StartTimeMillis)
}

// EndTime converts the millisecond string to a UTC time.
func (s GoogleFitSession) EndTime() time.Time {
	return millisToTime(s.EndTimeMillis)
}

func millisToTime(s string) time.Time {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// GoogleFitAggregateResponse is the body of POST /fitness/v1/users/me/dataset:aggregate.
type GoogleFitAggregateResponse struct {
	Bucket []GoogleFitBucket `json:"bucket"`
}

type GoogleFitBucket struct {
	Dataset []GoogleFitDataset `json:"dataset"`
}

type GoogleFitDataset struct {
	Point []GoogleFitPoint `json:"point"`
}

type GoogleFitPoint struct {
	Value []GoogleFitValue `json:"value"`
}

type GoogleFitValue struct {
	IntVal float64 `json:"intVal"`
	FpVal  float64 `json:"fpVal"`
}

// Sum totals every point value across buckets. Integer and floating
// fields are mutually exclusive per data type, so adding both is safe.
func (r *GoogleFitAggregateResponse) Sum() float64 {
	var total float64
	for _, b := range r.Bucket {
		for _, ds := range b.Dataset {
			for _, p := range ds.Point {
				for _, v := range p.Value {
					total += v.IntVal + v.FpVal
				}
			}
		}
	}
	return total
}

// Average returns the mean of every point value, or zero when no points exist.
func (r *GoogleFitAggregateResponse) Average() float64 {
	var total float64
	var n int
	for _, b := range r.Bucket {
		for _, ds := range b.Dataset {
			for _, p := range ds.Point {
				for _, v := range p.Value {
					total += v.IntVal + v.FpVal
					n++
				}
			}
		}
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}
