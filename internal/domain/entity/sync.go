package entity

import "time"

// SyncErrorKind is the closed classification of sync pipeline failures.
// Every outcome a caller may need to branch on has its own kind; string
// error codes are never threaded through results.
type SyncErrorKind string

const (
	// KindNone marks a successful outcome.
	KindNone SyncErrorKind = ""
	// KindAuthRequired means no authenticated user; fatal, never retried.
	KindAuthRequired SyncErrorKind = "auth_required"
	// KindProviderNotConnected means the user has not linked the provider.
	KindProviderNotConnected SyncErrorKind = "provider_not_connected"
	// KindRateLimitExceeded is an expected, informational outcome; the
	// call budget is spent until the window resets.
	KindRateLimitExceeded SyncErrorKind = "rate_limit_exceeded"
	// KindProviderAuthExpired means the provider rejected the credentials;
	// the stored token set has been cleared and the user must reconnect.
	KindProviderAuthExpired SyncErrorKind = "provider_auth_expired"
	// KindProviderAPIError covers transient network and 5xx failures.
	KindProviderAPIError SyncErrorKind = "provider_api_error"
	// KindStorageUnavailable means persistence failed; fatal for the call.
	KindStorageUnavailable SyncErrorKind = "storage_unavailable"
	// KindUnexpected is the logged catch-all.
	KindUnexpected SyncErrorKind = "unexpected_error"
)

// ProviderSyncResult is one (provider, call type) outcome of a sync run.
// A rate-limit denial is reported here as a non-success with
// KindRateLimitExceeded, never as an error that aborts the run.
type ProviderSyncResult struct {
	Provider         Provider      `json:"provider"`
	CallType         CallType      `json:"call_type"`
	Success          bool          `json:"success"`
	Message          string        `json:"message"`
	RecordsProcessed int           `json:"records_processed"`
	ErrorKind        SyncErrorKind `json:"error_kind,omitempty"`
}

// SyncRunEvent is published after a sync run completes, carrying the
// per-call outcomes for downstream consumers.
type SyncRunEvent struct {
	RequestID   string               `json:"request_id,omitempty"`
	UserID      string               `json:"user_id"`
	StartedAt   time.Time            `json:"started_at"`
	FinishedAt  time.Time            `json:"finished_at"`
	Results     []ProviderSyncResult `json:"results"`
	RecordCount int                  `json:"record_count"`
}
