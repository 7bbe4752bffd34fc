package errors

import (
	"fmt"

	"fitsync/internal/domain/entity"
	"fitsync/internal/errors"
)

// SyncError is the typed error every sync pipeline stage returns across
// stage boundaries. The orchestrator classifies outcomes by Kind instead of
// matching on error strings.
type SyncError struct {
	Kind     entity.SyncErrorKind
	Provider entity.Provider
	Err      error
}

// NewSyncError builds a SyncError wrapping an underlying cause.
func NewSyncError(kind entity.SyncErrorKind, provider entity.Provider, err error) *SyncError {
	return &SyncError{Kind: kind, Provider: provider, Err: err}
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
	}

	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// KindOf classifies any error into a SyncErrorKind. Errors that are not
// SyncError values fall back to the unexpected catch-all.
func KindOf(err error) entity.SyncErrorKind {
	if err == nil {
		return entity.KindNone
	}

	var syncErr *SyncError
	if errors.As(err, &syncErr) {
		return syncErr.Kind
	}

	return entity.KindUnexpected
}

// Response mirrors the unified HTTP response envelope for error handling
// middleware that renders AppError values directly.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "PROVIDER_NOT_CONNECTED"
	Details string `json:"details"` // Detailed error description
}
