// Package googlefit implements the Google Fitness REST API client.
package googlefit

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fitsync/internal/domain/service"
	"fitsync/internal/infra/provider"
)

// DefaultBaseURL is the production Google Fitness API host.
const DefaultBaseURL = "https://www.googleapis.com"

type client struct {
	api *provider.Client
}

// NewClient builds a GoogleFitClient against the given host. Pass an
// empty baseURL for production.
func NewClient(baseURL string, httpClient *http.Client) service.GoogleFitClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{api: provider.New(baseURL, httpClient)}
}

type sessionsResponse struct {
	Session []service.GoogleFitSession `json:"session"`
}

func (c *client) Sessions(ctx context.Context, accessToken string, start, end time.Time) ([]service.GoogleFitSession, error) {
	query := url.Values{}
	query.Set("startTime", start.UTC().Format(time.RFC3339))
	query.Set("endTime", end.UTC().Format(time.RFC3339))

	var resp sessionsResponse
	if err := c.api.GetJSON(ctx, "/fitness/v1/users/me/sessions", accessToken, query, &resp); err != nil {
		return nil, err
	}

	return resp.Session, nil
}

// aggregateRequest is the body of the dataset:aggregate call. All points
// land in a single bucket spanning the requested window.
type aggregateRequest struct {
	AggregateBy     []aggregateBy `json:"aggregateBy"`
	BucketByTime    bucketByTime  `json:"bucketByTime"`
	StartTimeMillis int64         `json:"startTimeMillis"`
	EndTimeMillis   int64         `json:"endTimeMillis"`
}

type aggregateBy struct {
	DataTypeName string `json:"dataTypeName"`
}

type bucketByTime struct {
	DurationMillis string `json:"durationMillis"`
}

func (c *client) AggregateMetric(ctx context.Context, accessToken, dataTypeName string, start, end time.Time) (*service.GoogleFitAggregateResponse, error) {
	startMillis := start.UnixMilli()
	endMillis := end.UnixMilli()
	span := endMillis - startMillis
	if span <= 0 {
		span = 1
	}

	body := aggregateRequest{
		AggregateBy:     []aggregateBy{{DataTypeName: dataTypeName}},
		BucketByTime:    bucketByTime{DurationMillis: strconv.FormatInt(span, 10)},
		StartTimeMillis: startMillis,
		EndTimeMillis:   endMillis,
	}

	var resp service.GoogleFitAggregateResponse
	if err := c.api.PostJSON(ctx, "/fitness/v1/users/me/dataset:aggregate", accessToken, body, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
