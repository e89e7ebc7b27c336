package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"upkeep/config"
	"upkeep/internal/domain/constants"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	mockusecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type opsHandlerFixtures struct {
	echo         *echo.Echo
	schedulerUC  *mockusecase.MockSchedulerUsecase
	dispatcherUC *mockusecase.MockNotificationDispatcher
}

func createTestOpsHandler(t *testing.T, roles ...string) *opsHandlerFixtures {
	e, auth := newTestEcho(t, &service.Claims{UserID: uuid.New(), Roles: roles})
	schedulerUC := mockusecase.NewMockSchedulerUsecase(t)
	dispatcherUC := mockusecase.NewMockNotificationDispatcher(t)

	cfg := &config.Config{}
	cfg.Scheduler.OrganizationID = "org-default"

	h := NewOpsHandler(OpsHandlerParams{
		SchedulerUC:  schedulerUC,
		DispatcherUC: dispatcherUC,
		Config:       cfg,
		Logger:       discardLogger,
	})

	g := e.Group("/api/v1/ops", auth.Authenticate, auth.RequireRole(constants.RoleAdmin))
	g.POST("/scheduler/:job", h.TriggerJob)
	g.POST("/notifications/custom", h.SendCustomMessage)

	return &opsHandlerFixtures{
		echo:         e,
		schedulerUC:  schedulerUC,
		dispatcherUC: dispatcherUC,
	}
}

func TestOpsHandler_TriggerJob(t *testing.T) {
	t.Run("defaults to the configured organization", func(t *testing.T) {
		fx := createTestOpsHandler(t, constants.RoleAdmin)

		fx.schedulerUC.EXPECT().
			RunJob(mock.Anything, constants.JobDailyNotifications, "org-default").
			Return(&usecase.RunSummary{Job: constants.JobDailyNotifications, Total: 3, Sent: 2, Failed: 1}, nil).Once()

		rec, env := doRequest(t, fx.echo, http.MethodPost, "/api/v1/ops/scheduler/daily", "")

		requireStatus(t, rec, http.StatusOK)
		var got usecase.RunSummary
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 2, got.Sent)
		assert.Equal(t, 1, got.Failed)
	})

	t.Run("organization from query", func(t *testing.T) {
		fx := createTestOpsHandler(t, constants.RoleAdmin)

		fx.schedulerUC.EXPECT().
			RunJob(mock.Anything, constants.JobReminders, "org-9").
			Return(&usecase.RunSummary{Job: constants.JobReminders}, nil).Once()

		rec, _ := doRequest(t, fx.echo, http.MethodPost, "/api/v1/ops/scheduler/reminders?organization_id=org-9", "")

		requireStatus(t, rec, http.StatusOK)
	})

	t.Run("unknown job", func(t *testing.T) {
		fx := createTestOpsHandler(t, constants.RoleAdmin)

		fx.schedulerUC.EXPECT().
			RunJob(mock.Anything, "weekly", "org-default").
			Return(nil, domainerrors.ErrUnknownSchedulerJob.WithDetails("weekly")).Once()

		rec, env := doRequest(t, fx.echo, http.MethodPost, "/api/v1/ops/scheduler/weekly", "")

		requireStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, "UNKNOWN_SCHEDULER_JOB", env.Error.Code)
	})

	t.Run("technicians are rejected", func(t *testing.T) {
		fx := createTestOpsHandler(t, constants.RoleTechnician)

		rec, _ := doRequest(t, fx.echo, http.MethodPost, "/api/v1/ops/scheduler/daily", "")

		requireStatus(t, rec, http.StatusForbidden)
	})
}

func TestOpsHandler_SendCustomMessage(t *testing.T) {
	tests := []struct {
		name       string
		outcome    entity.DispatchOutcome
		wantStatus int
	}{
		{
			name:       "delivered",
			outcome:    entity.DispatchOutcome{Delivered: true, Attempts: 1, Reason: entity.DispatchSuccess},
			wantStatus: http.StatusOK,
		},
		{
			name:       "sink rejected",
			outcome:    entity.DispatchOutcome{Attempts: 1, Reason: entity.DispatchNonRetryable},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "retries exhausted",
			outcome:    entity.DispatchOutcome{Attempts: 3, Reason: entity.DispatchExhausted},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOpsHandler(t, constants.RoleAdmin)

			fx.dispatcherUC.EXPECT().
				SendCustom(mock.Anything, "Plant closed on Friday").
				Return(tt.outcome).Once()

			rec, _ := doRequest(t, fx.echo, http.MethodPost, "/api/v1/ops/notifications/custom", `{"message":"Plant closed on Friday"}`)

			requireStatus(t, rec, tt.wantStatus)
		})
	}

	t.Run("empty message", func(t *testing.T) {
		fx := createTestOpsHandler(t, constants.RoleAdmin)

		rec, env := doRequest(t, fx.echo, http.MethodPost, "/api/v1/ops/notifications/custom", `{"message":""}`)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}
