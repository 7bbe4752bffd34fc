package fitbit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fitsync/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

func TestClient_DailyActivitySummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/user/-/activities/date/2024-03-09.json", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"summary": {
				"steps": 11240,
				"caloriesOut": 2680,
				"veryActiveMinutes": 35,
				"distances": [{"activity": "total", "distance": 8.12}]
			}
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	resp, err := c.DailyActivitySummary(context.Background(), "test-token", testDay)
	require.NoError(t, err)

	assert.Equal(t, 11240, resp.Summary.Steps)
	assert.Equal(t, 2680, resp.Summary.CaloriesOut)
	require.Len(t, resp.Summary.Distances, 1)
	assert.Equal(t, "total", resp.Summary.Distances[0].Activity)
}

func TestClient_HeartRateByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/user/-/activities/heart/date/2024-03-09/1d.json", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"activities-heart": [{
				"dateTime": "2024-03-09",
				"value": {
					"restingHeartRate": 54,
					"heartRateZones": [{"name": "Cardio", "min": 137, "max": 167, "minutes": 18}]
				}
			}]
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	resp, err := c.HeartRateByDate(context.Background(), "test-token", testDay)
	require.NoError(t, err)

	require.Len(t, resp.ActivitiesHeart, 1)
	assert.Equal(t, 54, resp.ActivitiesHeart[0].Value.RestingHeartRate)
	require.Len(t, resp.ActivitiesHeart[0].Value.HeartRateZones, 1)
	assert.Equal(t, "Cardio", resp.ActivitiesHeart[0].Value.HeartRateZones[0].Name)
}

func TestClient_SleepLogsByDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1.2/user/-/sleep/date/2024-03-09.json", r.URL.Path)

		_, _ = w.Write([]byte(`{
			"sleep": [{
				"logId": 44001,
				"dateOfSleep": "2024-03-09",
				"startTime": "2024-03-08T23:41:00.000",
				"endTime": "2024-03-09T07:12:30.000",
				"duration": 27090000,
				"minutesAsleep": 412,
				"levels": {"summary": {"deep": {"minutes": 72}}}
			}]
		}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	resp, err := c.SleepLogsByDate(context.Background(), "test-token", testDay)
	require.NoError(t, err)

	require.Len(t, resp.Sleep, 1)
	assert.Equal(t, int64(44001), resp.Sleep[0].LogID)
	assert.Equal(t, 72, resp.Sleep[0].Levels.Summary["deep"].Minutes)
}

func TestClient_ActivityLogList_QueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/user/-/activities/list.json", r.URL.Path)
		assert.Equal(t, "2024-03-09", r.URL.Query().Get("afterDate"))
		assert.Equal(t, "asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("activityTypeId"))

		_, _ = w.Write([]byte(`{"activities": [{"logId": 1, "activityName": "Run"}]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	resp, err := c.ActivityLogList(context.Background(), "test-token", testDay)
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "Run", resp.Activities[0].ActivityName)
}

func TestClient_SwimActivities_ScopedByActivityType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "90024", r.URL.Query().Get("activityTypeId"))

		_, _ = w.Write([]byte(`{"activities": []}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	_, err := c.SwimActivities(context.Background(), "test-token", testDay)
	assert.NoError(t, err)
}

func TestClient_UnauthorizedIsAuthExpired(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors": [{"errorType": "expired_token"}]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	_, err := c.DailyActivitySummary(context.Background(), "stale-token", testDay)
	require.Error(t, err)

	var apiErr *service.ProviderAPIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.True(t, service.IsAuthExpired(err))
}

func TestClient_ServerErrorRetriedOnce(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		_, _ = w.Write([]byte(`{"summary": {"steps": 100}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	resp, err := c.DailyActivitySummary(context.Background(), "test-token", testDay)
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
	assert.Equal(t, 100, resp.Summary.Steps)
}

func TestClient_ClientErrorIsNotRetried(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewClient(server.URL, nil)

	_, err := c.DailyActivitySummary(context.Background(), "test-token", testDay)
	require.Error(t, err)
	assert.Equal(t, 1, requests)
}
