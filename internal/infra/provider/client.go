// Package provider contains the shared HTTP plumbing for the fitness
// provider API clients.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fitsync/internal/domain/service"

	"github.com/pkg/errors"
)

// maxErrorBodyBytes caps how much of an error response is kept for logs.
const maxErrorBodyBytes = 2048

// Client wraps one provider API host with bearer auth, JSON decoding and
// a single retry on transient (5xx) failures.
type Client struct {
	baseURL string
	http    *http.Client
}

// New builds a Client for the given API host. A nil httpClient gets a
// default with a sane timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// GetJSON performs a GET against path and decodes the 2xx body into out.
func (c *Client) GetJSON(ctx context.Context, path, accessToken string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, accessToken, query, nil, out)
}

// PostJSON performs a POST with a JSON body and decodes the 2xx body into out.
func (c *Client) PostJSON(ctx context.Context, path, accessToken string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to encode request body")
	}

	return c.do(ctx, http.MethodPost, path, accessToken, nil, payload, out)
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, query url.Values, body []byte, out any) error {
	err := c.doOnce(ctx, method, path, accessToken, query, body, out)
	if err == nil {
		return nil
	}

	// Retry exactly once, and only on transient server errors. Auth and
	// client errors are final.
	var apiErr *service.ProviderAPIError
	if errors.As(err, &apiErr) && apiErr.Transient() {
		return c.doOnce(ctx, method, path, accessToken, query, body, out)
	}

	return err
}

func (c *Client) doOnce(ctx context.Context, method, path, accessToken string, query url.Values, body []byte, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

		return &service.ProviderAPIError{
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response body")
	}

	return nil
}
