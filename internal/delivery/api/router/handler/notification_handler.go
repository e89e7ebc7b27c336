package handler

import (
	"log/slog"
	"net/http"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultNotificationPageSize = 20

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotifierUC usecase.InAppNotifier
	Logger     *slog.Logger
}

// NotificationHandler serves the caller's in-app notifications and push tokens
type NotificationHandler struct {
	notifierUC usecase.InAppNotifier
	logger     *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notifierUC: params.NotifierUC,
		logger:     params.Logger,
	}
}

// RegisterPushTokenRequest represents the request body for registering a phone
type RegisterPushTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android"`
}

// ListNotifications handles GET /notifications?unread=true&limit=&offset=
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, err := queryInt(c, "limit", defaultNotificationPageSize)
	if err != nil || limit <= 0 {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be a positive integer")
	}

	offset, err := queryInt(c, "offset", 0)
	if err != nil || offset < 0 {
		return response.BadRequest(c, "INVALID_QUERY", "offset must be a non-negative integer")
	}

	unreadOnly := c.QueryParam("unread") == "true"

	notifications, err := h.notifierUC.ListNotifications(c.Request().Context(), userID, unreadOnly, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, notifications)
}

// MarkRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.notifierUC.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}

// RegisterPushToken handles POST /push-tokens
func (h *NotificationHandler) RegisterPushToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RegisterPushTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid push token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.notifierUC.RegisterPushToken(c.Request().Context(), userID, req.FCMToken, req.Platform)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// DeactivatePushToken handles DELETE /push-tokens/:id
func (h *NotificationHandler) DeactivatePushToken(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid push token ID")
	}

	if err := h.notifierUC.DeactivatePushToken(c.Request().Context(), tokenID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Push token deactivated successfully"})
}
