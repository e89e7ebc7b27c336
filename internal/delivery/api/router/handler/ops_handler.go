package handler

import (
	"log/slog"
	"net/http"

	"upkeep/config"
	"upkeep/internal/delivery/api/response"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	"upkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OpsHandlerParams holds dependencies for OpsHandler, injected by Fx.
type OpsHandlerParams struct {
	fx.In

	SchedulerUC  usecase.SchedulerUsecase
	DispatcherUC usecase.NotificationDispatcher
	Config       *config.Config
	Logger       *slog.Logger
}

// OpsHandler exposes manual triggers for the scheduler jobs and the conversation sink
type OpsHandler struct {
	schedulerUC    usecase.SchedulerUsecase
	dispatcherUC   usecase.NotificationDispatcher
	organizationID string
	logger         *slog.Logger
}

// NewOpsHandler is the constructor for OpsHandler
func NewOpsHandler(params OpsHandlerParams) *OpsHandler {
	return &OpsHandler{
		schedulerUC:    params.SchedulerUC,
		dispatcherUC:   params.DispatcherUC,
		organizationID: params.Config.Scheduler.OrganizationID,
		logger:         params.Logger,
	}
}

// CustomMessageRequest is a free-form message for the maintenance channel
type CustomMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// TriggerJob handles POST /ops/scheduler/:job. The run is synchronous so the
// caller gets the same summary the cron firing would log.
func (h *OpsHandler) TriggerJob(c echo.Context) error {
	job := c.Param("job")

	organizationID := c.QueryParam("organization_id")
	if organizationID == "" {
		organizationID = h.organizationID
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("[Scheduler] Manual trigger",
		slog.String("job", job),
		slog.String("organization_id", organizationID),
	)

	summary, err := h.schedulerUC.RunJob(c.Request().Context(), job, organizationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// SendCustomMessage handles POST /ops/notifications/custom
func (h *OpsHandler) SendCustomMessage(c echo.Context) error {
	var req CustomMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	outcome := h.dispatcherUC.SendCustom(c.Request().Context(), req.Message)

	switch {
	case outcome.Delivered:
		return response.Success(c, http.StatusOK, outcome)
	case outcome.Reason == entity.DispatchInvalidRequest:
		return response.BadRequest(c, "VALIDATION_ERROR", "message must not be blank")
	default:
		return response.Error(c, http.StatusBadGateway, "NOTIFICATION_NOT_DELIVERED",
			"Conversation sink did not accept the message: "+string(outcome.Reason), nil)
	}
}
