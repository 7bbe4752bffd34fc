package usecase

import (
	"context"

	"fitsync/internal/domain/entity"

	"github.com/google/uuid"
)

// ConnectInfo carries what the client needs to complete a provider link
type ConnectInfo struct {
	AuthorizationURL string `json:"authorization_url"`
	QRCode           []byte `json:"qr_code,omitempty"` // PNG bytes of the authorization URL
	State            string `json:"state"`
}

// ProviderUsecase defines the interface for managing provider connections
type ProviderUsecase interface {
	// ConnectedProviders lists the providers linked to the user's profile
	ConnectedProviders(ctx context.Context, userID uuid.UUID) ([]entity.ConnectedProvider, error)

	// BeginConnection builds the provider authorization URL plus a QR
	// rendering of it for cross-device flows
	BeginConnection(ctx context.Context, userID uuid.UUID, provider entity.Provider) (*ConnectInfo, error)

	// CompleteConnection stores the token set obtained from the OAuth
	// callback and marks the provider connected
	CompleteConnection(ctx context.Context, userID uuid.UUID, provider entity.Provider, tokens *entity.OAuthTokenSet) error

	// Disconnect removes the provider link and clears its stored tokens
	Disconnect(ctx context.Context, userID uuid.UUID, provider entity.Provider) error
}
