// Package fitbit implements the Fitbit Web API client.
package fitbit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"fitsync/internal/domain/entity"
	"fitsync/internal/domain/service"
	"fitsync/internal/infra/provider"
)

// DefaultBaseURL is the production Fitbit API host.
const DefaultBaseURL = "https://api.fitbit.com"

// swimActivityTypeID is Fitbit's activity type id for swimming, used to
// scope the dedicated swim fetch.
const swimActivityTypeID = 90024

type client struct {
	api *provider.Client
}

// NewClient builds a FitbitClient against the given host. Pass an empty
// baseURL for production.
func NewClient(baseURL string, httpClient *http.Client) service.FitbitClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{api: provider.New(baseURL, httpClient)}
}

func (c *client) DailyActivitySummary(ctx context.Context, accessToken string, day time.Time) (*service.FitbitDailySummaryResponse, error) {
	var resp service.FitbitDailySummaryResponse
	path := fmt.Sprintf("/1/user/-/activities/date/%s.json", day.Format(entity.DateBucketFormat))
	if err := c.api.GetJSON(ctx, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *client) HeartRateByDate(ctx context.Context, accessToken string, day time.Time) (*service.FitbitHeartRateResponse, error) {
	var resp service.FitbitHeartRateResponse
	path := fmt.Sprintf("/1/user/-/activities/heart/date/%s/1d.json", day.Format(entity.DateBucketFormat))
	if err := c.api.GetJSON(ctx, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *client) SleepLogsByDate(ctx context.Context, accessToken string, day time.Time) (*service.FitbitSleepResponse, error) {
	var resp service.FitbitSleepResponse
	path := fmt.Sprintf("/1.2/user/-/sleep/date/%s.json", day.Format(entity.DateBucketFormat))
	if err := c.api.GetJSON(ctx, path, accessToken, nil, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *client) ActivityLogList(ctx context.Context, accessToken string, day time.Time) (*service.FitbitActivityLogListResponse, error) {
	return c.activityList(ctx, accessToken, day, nil)
}

func (c *client) SwimActivities(ctx context.Context, accessToken string, day time.Time) (*service.FitbitActivityLogListResponse, error) {
	query := url.Values{}
	query.Set("activityTypeId", fmt.Sprintf("%d", swimActivityTypeID))

	return c.activityList(ctx, accessToken, day, query)
}

func (c *client) activityList(ctx context.Context, accessToken string, day time.Time, extra url.Values) (*service.FitbitActivityLogListResponse, error) {
	query := url.Values{}
	query.Set("afterDate", day.Format(entity.DateBucketFormat))
	query.Set("sort", "asc")
	query.Set("offset", "0")
	query.Set("limit", "100")
	for k, vs := range extra {
		for _, v := range vs {
			query.Add(k, v)
		}
	}

	var resp service.FitbitActivityLogListResponse
	if err := c.api.GetJSON(ctx, "/1/user/-/activities/list.json", accessToken, query, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
