package usecase

import (
	"context"
	"time"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncWindow bounds the fetch horizon for a sync run. Zero values fall
// back to the configured defaults (yesterday through now).
type SyncWindow struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SyncReport aggregates the per-call outcomes of one sync run
type SyncReport struct {
	RequestID  string                      `json:"request_id,omitempty"`
	StartedAt  time.Time                   `json:"started_at"`
	FinishedAt time.Time                   `json:"finished_at"`
	Results    []entity.ProviderSyncResult `json:"results"`
}

// RecordCount sums the records persisted across all successful calls
func (r *SyncReport) RecordCount() int {
	var n int
	for _, res := range r.Results {
		if res.Success {
			n += res.RecordsProcessed
		}
	}
	return n
}

// SyncUsecase defines the interface for fitness data synchronization use cases
type SyncUsecase interface {
	// SyncAll fans out over every provider the user has connected and
	// gathers the per-call results. Individual provider failures are
	// reported in the results, not returned as an error.
	SyncAll(ctx context.Context, userID uuid.UUID, window SyncWindow) (*SyncReport, error)

	// SyncProvider synchronizes a single connected provider
	SyncProvider(ctx context.Context, userID uuid.UUID, provider entity.Provider, window SyncWindow) (*SyncReport, error)

	// Activities returns the user's synchronized activity records in the
	// window, across all providers
	Activities(ctx context.Context, userID uuid.UUID, window SyncWindow) ([]*entity.ActivityRecord, error)
}

// ProviderSyncer runs the calls of one provider. Each provider composes
// its API client, payload normalization and persistence behind this
// interface so the orchestrator stays provider-agnostic.
type ProviderSyncer interface {
	// Provider identifies which provider this syncer serves
	Provider() entity.Provider

	// CallTypes lists the rate-limited call types the syncer performs,
	// in execution order
	CallTypes() []entity.CallType

	// Sync performs one call type against the provider API and persists
	// the normalized records
	Sync(ctx context.Context, userID uuid.UUID, accessToken string, callType entity.CallType, window SyncWindow) (recordsProcessed int, err error)
}
