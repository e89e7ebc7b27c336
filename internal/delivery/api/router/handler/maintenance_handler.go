package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"upkeep/internal/delivery/api/middleware"
	"upkeep/internal/delivery/api/response"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/entity"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHistoryLimit = 50

// MaintenanceHandlerParams holds dependencies for MaintenanceHandler, injected by Fx.
type MaintenanceHandlerParams struct {
	fx.In

	MaintenanceUC usecase.MaintenanceUsecase
	Logger        *slog.Logger
}

// MaintenanceHandler serves maintenance task endpoints
type MaintenanceHandler struct {
	maintenanceUC usecase.MaintenanceUsecase
	logger        *slog.Logger
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler
func NewMaintenanceHandler(params MaintenanceHandlerParams) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceUC: params.MaintenanceUC,
		logger:        params.Logger,
	}
}

// IngestGeneratedTasksRequest is a batch produced by the maintenance generation service
type IngestGeneratedTasksRequest struct {
	OrganizationID string                 `json:"organization_id"`
	Tasks          []entity.GeneratedTask `json:"tasks" validate:"required"`
}

// CreateTaskRequest is the body of a manually created task
type CreateTaskRequest struct {
	DeviceID          string `json:"device_id" validate:"required,uuid"`
	OrganizationID    string `json:"organization_id"`
	TaskName          string `json:"task_name" validate:"required"`
	Description       string `json:"description"`
	Frequency         string `json:"frequency" validate:"required"`
	Priority          string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL low medium high critical"`
	EstimatedDuration string `json:"estimated_duration"`
	RequiredTools     string `json:"required_tools"`
	SafetyNotes       string `json:"safety_notes"`
	ComponentName     string `json:"component_name"`
	Category          string `json:"category"`
	MaintenanceType   string `json:"maintenance_type"`
	NextMaintenance   string `json:"next_maintenance" validate:"omitempty,datetime=2006-01-02"`
	AssignedTo        string `json:"assigned_to" validate:"omitempty,uuid"`
}

// UpdateTaskRequest patches a task; absent fields are left unchanged
type UpdateTaskRequest struct {
	TaskName          *string `json:"task_name" validate:"omitempty,min=1"`
	Description       *string `json:"description"`
	Frequency         *string `json:"frequency" validate:"omitempty,min=1"`
	Priority          *string `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL low medium high critical"`
	EstimatedDuration *string `json:"estimated_duration"`
	RequiredTools     *string `json:"required_tools"`
	SafetyNotes       *string `json:"safety_notes"`
	ComponentName     *string `json:"component_name"`
	Category          *string `json:"category"`
	NextMaintenance   *string `json:"next_maintenance" validate:"omitempty,datetime=2006-01-02"`
	Status            *string `json:"status" validate:"omitempty,oneof=ACTIVE PENDING CANCELLED"`
}

// AssignRequest names the technician taking over
type AssignRequest struct {
	AssigneeID string `json:"assignee_id" validate:"required,uuid"`
}

// IngestGeneratedTasks handles POST /devices/:deviceId/maintenance/generated
func (h *MaintenanceHandler) IngestGeneratedTasks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	var req IngestGeneratedTasksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid generated tasks input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	organizationID, ok := callerOrganization(c, req.OrganizationID)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied: organization mismatch")
	}

	result, err := h.maintenanceUC.IngestGeneratedTasks(c.Request().Context(), deviceID, organizationID, userID, req.Tasks)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// ListDeviceTasks handles GET /devices/:deviceId/maintenance
func (h *MaintenanceHandler) ListDeviceTasks(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	tasks, err := h.maintenanceUC.ListByDevice(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, tasks)
}

// RemoveDeviceTasks handles DELETE /devices/:deviceId/maintenance
func (h *MaintenanceHandler) RemoveDeviceTasks(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	removed, err := h.maintenanceUC.RemoveDeviceTasks(c.Request().Context(), deviceID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed})
}

// DeduplicateDeviceTasks handles POST /devices/:deviceId/maintenance/deduplicate
func (h *MaintenanceHandler) DeduplicateDeviceTasks(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	organizationID, ok := callerOrganization(c, c.QueryParam("organization_id"))
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied: organization mismatch")
	}

	removed, err := h.maintenanceUC.Deduplicate(c.Request().Context(), deviceID, organizationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"removed": removed})
}

// AssignDeviceTasks handles POST /devices/:deviceId/maintenance/assign
func (h *MaintenanceHandler) AssignDeviceTasks(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	assigneeID, err := bindAssignee(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	assigned, err := h.maintenanceUC.AssignDeviceTasks(c.Request().Context(), deviceID, assigneeID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"assigned": assigned})
}

// ListDeviceHistory handles GET /devices/:deviceId/maintenance/history
func (h *MaintenanceHandler) ListDeviceHistory(c echo.Context) error {
	deviceID, err := uuid.Parse(c.Param("deviceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	limit, err := queryInt(c, "limit", defaultHistoryLimit)
	if err != nil || limit <= 0 {
		return response.BadRequest(c, "INVALID_QUERY", "limit must be a positive integer")
	}

	records, err := h.maintenanceUC.ListHistory(c.Request().Context(), deviceID, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, records)
}

// CreateTask handles POST /maintenance
func (h *MaintenanceHandler) CreateTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance task input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	// validated above
	deviceID := uuid.MustParse(req.DeviceID)

	organizationID, ok := callerOrganization(c, req.OrganizationID)
	if !ok {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied: organization mismatch")
	}

	input := &usecase.CreateTaskInput{
		DeviceID:          deviceID,
		OrganizationID:    organizationID,
		TaskName:          req.TaskName,
		Description:       req.Description,
		Frequency:         req.Frequency,
		Priority:          req.Priority,
		EstimatedDuration: req.EstimatedDuration,
		RequiredTools:     req.RequiredTools,
		SafetyNotes:       req.SafetyNotes,
		ComponentName:     req.ComponentName,
		Category:          req.Category,
		MaintenanceType:   req.MaintenanceType,
		ActorID:           userID,
	}
	if req.NextMaintenance != "" {
		next, _ := time.Parse(time.DateOnly, req.NextMaintenance)
		input.NextMaintenance = &next
	}
	if req.AssignedTo != "" {
		assignee := uuid.MustParse(req.AssignedTo)
		input.AssignedTo = &assignee
	}

	task, err := h.maintenanceUC.CreateTask(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, task)
}

// GetTask handles GET /maintenance/:id
func (h *MaintenanceHandler) GetTask(c echo.Context) error {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid maintenance task ID")
	}

	task, err := h.maintenanceUC.GetTask(c.Request().Context(), taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// UpdateTask handles PATCH /maintenance/:id
func (h *MaintenanceHandler) UpdateTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid maintenance task ID")
	}

	var req UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance task input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateTaskInput{
		TaskName:          req.TaskName,
		Description:       req.Description,
		Frequency:         req.Frequency,
		Priority:          req.Priority,
		EstimatedDuration: req.EstimatedDuration,
		RequiredTools:     req.RequiredTools,
		SafetyNotes:       req.SafetyNotes,
		ComponentName:     req.ComponentName,
		Category:          req.Category,
		ActorID:           userID,
	}
	if req.NextMaintenance != nil {
		next, _ := time.Parse(time.DateOnly, *req.NextMaintenance)
		input.NextMaintenance = &next
	}
	if req.Status != nil {
		status := entity.MaintenanceStatus(*req.Status)
		input.Status = &status
	}

	task, err := h.maintenanceUC.UpdateTask(c.Request().Context(), taskID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// CompleteTask handles POST /maintenance/:id/complete
func (h *MaintenanceHandler) CompleteTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid maintenance task ID")
	}

	task, err := h.maintenanceUC.CompleteTask(c.Request().Context(), taskID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// AssignTask handles POST /maintenance/:id/assign
func (h *MaintenanceHandler) AssignTask(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid maintenance task ID")
	}

	assigneeID, err := bindAssignee(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	task, err := h.maintenanceUC.AssignTask(c.Request().Context(), taskID, assigneeID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// ListOrganizationTasks handles GET /organizations/:orgId/maintenance
func (h *MaintenanceHandler) ListOrganizationTasks(c echo.Context) error {
	organizationID := c.Param("orgId")
	if !canAccessOrganization(c, organizationID) {
		return response.Forbidden(c, "FORBIDDEN", "Permission denied: organization mismatch")
	}

	days, err := queryInt(c, "days", 0)
	if err != nil || days < 0 {
		return response.BadRequest(c, "INVALID_QUERY", "days must be a non-negative integer")
	}

	view := usecase.OrganizationView(c.QueryParam("view"))

	tasks, err := h.maintenanceUC.ListByOrganization(c.Request().Context(), organizationID, view, days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, tasks)
}

func bindAssignee(c echo.Context) (uuid.UUID, error) {
	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return uuid.Nil, errors.New("invalid assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return uuid.Nil, err
	}

	return uuid.MustParse(req.AssigneeID), nil
}

// canAccessOrganization lets admins read any organization and everyone else only their own.
// A caller without an organization claim can only read as an admin.
func canAccessOrganization(c echo.Context, organizationID string) bool {
	if isAdmin(c) {
		return true
	}

	callerOrg := middleware.GetOrganizationID(c)

	return callerOrg != "" && callerOrg == organizationID
}

// callerOrganization resolves the organization a write acts on. Callers use
// their own claim; only admins may name another organization or act without one.
func callerOrganization(c echo.Context, requested string) (string, bool) {
	organizationID := middleware.GetOrganizationID(c)
	if organizationID != "" && (requested == "" || requested == organizationID) {
		return organizationID, true
	}

	return requested, isAdmin(c)
}

func isAdmin(c echo.Context) bool {
	roles, ok := middleware.GetRoles(c)

	return ok && slices.Contains(roles, constants.RoleAdmin)
}

func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
