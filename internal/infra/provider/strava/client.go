// Package strava implements the Strava API v3 client.
package strava

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fitsync/internal/domain/service"
	"fitsync/internal/infra/provider"
)

// DefaultBaseURL is the production Strava API host.
const DefaultBaseURL = "https://www.strava.com"

// pageSize is the per_page value used when walking the activities list.
const pageSize = 100

type client struct {
	api *provider.Client
}

// NewClient builds a StravaClient against the given host. Pass an empty
// baseURL for production.
func NewClient(baseURL string, httpClient *http.Client) service.StravaClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{api: provider.New(baseURL, httpClient)}
}

// Activities walks the paginated athlete activities list until a short
// page signals the end.
func (c *client) Activities(ctx context.Context, accessToken string, after, before time.Time) ([]service.StravaSummaryActivity, error) {
	var all []service.StravaSummaryActivity

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("after", strconv.FormatInt(after.Unix(), 10))
		query.Set("before", strconv.FormatInt(before.Unix(), 10))
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(pageSize))

		var batch []service.StravaSummaryActivity
		if err := c.api.GetJSON(ctx, "/api/v3/athlete/activities", accessToken, query, &batch); err != nil {
			return nil, err
		}

		all = append(all, batch...)
		if len(batch) < pageSize {
			return all, nil
		}
	}
}
