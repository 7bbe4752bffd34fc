package model

import (
	"time"

	"github.com/google/uuid"
)

// SyncProfileModel mirrors the 'sync_profiles' table, one row per user.
type SyncProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Email     string    `gorm:"type:varchar(255)"`
	Tier      string    `gorm:"type:varchar(20);not null;default:'free'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SyncProfileModel) TableName() string {
	return "sync_profiles"
}

// ConnectedProviderModel mirrors the 'connected_providers' table. One row
// per (user, provider) link.
type ConnectedProviderModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider    string    `gorm:"type:varchar(20);primary_key"`
	DisplayName string    `gorm:"type:varchar(50);not null"`
	ConnectedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ConnectedProviderModel) TableName() string {
	return "connected_providers"
}

// RateLimitStateModel mirrors the 'rate_limit_states' table. One row per
// (user, provider, call type) daily counter.
type RateLimitStateModel struct {
	UserID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider       string    `gorm:"type:varchar(20);primary_key"`
	CallType       string    `gorm:"type:varchar(40);primary_key"`
	LastCalledAt   time.Time
	CallCountToday int `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (RateLimitStateModel) TableName() string {
	return "rate_limit_states"
}

// OAuthTokenSetModel mirrors the 'oauth_token_sets' table. Exactly one row
// per (user, provider).
type OAuthTokenSetModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Provider     string    `gorm:"type:varchar(20);primary_key"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text;not null"`
	ExpiresAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OAuthTokenSetModel) TableName() string {
	return "oauth_token_sets"
}

// UserDeviceModel mirrors the 'user_devices' table.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_user_fcm"`
	FCMToken  string    `gorm:"type:text;not null;uniqueIndex:idx_user_devices_user_fcm"`
	Platform  string    `gorm:"type:varchar(20)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
