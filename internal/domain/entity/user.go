package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionTier determines a user's per-day provider call budgets.
type SubscriptionTier string

const (
	TierFree     SubscriptionTier = "free"
	TierSilver   SubscriptionTier = "silver"
	TierGold     SubscriptionTier = "gold"
	TierPlatinum SubscriptionTier = "platinum"
)

// ConnectedProvider records one provider the user has linked.
type ConnectedProvider struct {
	Provider    Provider  // Which provider this connection is for.
	DisplayName string    // Human-readable provider name, denormalized for display.
	ConnectedAt time.Time // When the user completed the OAuth connect flow.
}

// UserSyncProfile is the per-user document the sync engine operates on.
// It is created when the user first connects a provider and is only ever
// updated afterwards, never destroyed.
type UserSyncProfile struct {
	ID                 uuid.UUID
	Email              string
	Tier               SubscriptionTier
	ConnectedProviders []ConnectedProvider
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsConnected reports whether the user has linked the given provider.
func (p *UserSyncProfile) IsConnected(provider Provider) bool {
	for _, cp := range p.ConnectedProviders {
		if cp.Provider == provider {
			return true
		}
	}

	return false
}

// UserDevice represents a device registered for push notifications,
// identified by its FCM registration token.
type UserDevice struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FCMToken  string
	Platform  string // "ios" or "android"
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
