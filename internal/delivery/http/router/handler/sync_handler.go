package handler

import (
	"log/slog"
	"net/http"
	"time"

	"fitsync/internal/delivery/http/response"
	"fitsync/internal/domain/entity"
	"fitsync/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// SyncHandler holds dependencies for sync-related handlers
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// SyncRequest optionally narrows the fetch window of a sync run.
// Omitted bounds fall back to the configured defaults.
type SyncRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

func (r *SyncRequest) window() usecase.SyncWindow {
	var w usecase.SyncWindow
	if r.From != nil {
		w.From = *r.From
	}
	if r.To != nil {
		w.To = *r.To
	}

	return w
}

// SyncAll triggers a sync run across every connected provider
func (h *SyncHandler) SyncAll(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync window input")
	}

	report, err := h.syncUC.SyncAll(c.Request().Context(), userID, req.window())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Sync run finished")
}

// SyncProvider triggers a sync run for a single provider
func (h *SyncHandler) SyncProvider(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	provider, err := entity.ParseProvider(c.Param("provider"))
	if err != nil {
		return response.BadRequest(c, "UNKNOWN_PROVIDER", "Unknown provider name")
	}

	var req SyncRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sync window input")
	}

	report, err := h.syncUC.SyncProvider(c.Request().Context(), userID, provider, req.window())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Sync run finished")
}

// Activities returns the synchronized activity records within a window.
// Bounds come from the from/to query parameters in RFC3339.
func (h *SyncHandler) Activities(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	window, err := windowFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_WINDOW", "Window bounds must be RFC3339 timestamps")
	}

	records, err := h.syncUC.Activities(c.Request().Context(), userID, window)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Activities retrieved successfully")
}

func windowFromQuery(c echo.Context) (usecase.SyncWindow, error) {
	var window usecase.SyncWindow

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return window, err
		}
		window.From = from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return window, err
		}
		window.To = to
	}

	return window, nil
}

// getUserID extracts the user ID from the context
func getUserID(c echo.Context) (uuid.UUID, error) {
	userIDVal := c.Get("userID")
	userID, ok := userIDVal.(uuid.UUID)
	if !ok {
		return uuid.Nil, response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
