package handler

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"time"

	"fitsync/internal/delivery/http/response"
	"fitsync/internal/domain/entity"
	"fitsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProviderHandlerParams holds dependencies for ProviderHandler, injected by Fx.
type ProviderHandlerParams struct {
	fx.In

	ProviderUC usecase.ProviderUsecase
	Logger     *slog.Logger
}

// ProviderHandler holds dependencies for provider connection handlers
type ProviderHandler struct {
	providerUC usecase.ProviderUsecase
	logger     *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler
func NewProviderHandler(params ProviderHandlerParams) *ProviderHandler {
	return &ProviderHandler{
		providerUC: params.ProviderUC,
		logger:     params.Logger,
	}
}

// CompleteConnectionRequest carries the token set obtained from the
// provider's OAuth callback
type CompleteConnectionRequest struct {
	AccessToken  string    `json:"access_token" validate:"required"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
	ExpiresAt    time.Time `json:"expires_at" validate:"required"`
}

// ConnectResponse is the JSON shape of a started connection flow
type ConnectResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	QRCode           string `json:"qr_code,omitempty"` // base64-encoded PNG
	State            string `json:"state"`
}

// ListProviders returns the providers connected to the caller's profile
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	providers, err := h.providerUC.ConnectedProviders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, providers, "Connected providers retrieved successfully")
}

// Connect starts the OAuth connection flow for a provider
func (h *ProviderHandler) Connect(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	provider, err := entity.ParseProvider(c.Param("provider"))
	if err != nil {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown provider name")
	}

	info, err := h.providerUC.BeginConnection(c.Request().Context(), userID, provider)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := ConnectResponse{
		AuthorizationURL: info.AuthorizationURL,
		State:            info.State,
	}
	if len(info.QRCode) > 0 {
		resp.QRCode = base64.StdEncoding.EncodeToString(info.QRCode)
	}

	return response.Success(c, http.StatusOK, resp, "Connection flow started")
}

// Complete finishes the OAuth connection flow with the callback tokens
func (h *ProviderHandler) Complete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	provider, err := entity.ParseProvider(c.Param("provider"))
	if err != nil {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown provider name")
	}

	var req CompleteConnectionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	tokens := &entity.OAuthTokenSet{
		UserID:       userID,
		Provider:     provider,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    req.ExpiresAt,
	}

	if err := h.providerUC.CompleteConnection(c.Request().Context(), userID, provider, tokens); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"provider": provider.String()}, "Provider connected successfully")
}

// Disconnect removes a provider connection
func (h *ProviderHandler) Disconnect(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	provider, err := entity.ParseProvider(c.Param("provider"))
	if err != nil {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown provider name")
	}

	if err := h.providerUC.Disconnect(c.Request().Context(), userID, provider); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"provider": provider.String()}, "Provider disconnected successfully")
}
