package service

import (
	"fmt"

	"fitsync/internal/errors"
)

// ProviderAPIError is returned by provider clients for any non-2xx response.
// It keeps the HTTP status so callers can classify auth expiry (401/403)
// separately from transient failures.
type ProviderAPIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *ProviderAPIError) Error() string {
	return fmt.Sprintf("provider api error: status %d: %s", e.StatusCode, e.Body)
}

// AuthExpired reports whether the provider rejected the access token.
func (e *ProviderAPIError) AuthExpired() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// Transient reports whether the failure is worth a single retry.
func (e *ProviderAPIError) Transient() bool {
	return e.StatusCode >= 500
}

// IsAuthExpired reports whether err is a provider response that indicates
// expired or revoked credentials.
func IsAuthExpired(err error) bool {
	var apiErr *ProviderAPIError
	return errors.As(err, &apiErr) && apiErr.AuthExpired()
}
