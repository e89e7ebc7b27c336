package handler

import (
	"net/http"
	"testing"

	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"
	mockusecase "upkeep/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationHandlerFixtures struct {
	echo       *echo.Echo
	userID     uuid.UUID
	notifierUC *mockusecase.MockInAppNotifier
}

func createTestNotificationHandler(t *testing.T) *notificationHandlerFixtures {
	userID := uuid.New()
	e, auth := newTestEcho(t, &service.Claims{UserID: userID})
	notifierUC := mockusecase.NewMockInAppNotifier(t)

	h := NewNotificationHandler(NotificationHandlerParams{
		NotifierUC: notifierUC,
		Logger:     discardLogger,
	})

	g := e.Group("/api/v1", auth.Authenticate)
	g.GET("/notifications", h.ListNotifications)
	g.PUT("/notifications/:id/read", h.MarkRead)
	g.POST("/push-tokens", h.RegisterPushToken)
	g.DELETE("/push-tokens/:id", h.DeactivatePushToken)

	return &notificationHandlerFixtures{
		echo:       e,
		userID:     userID,
		notifierUC: notifierUC,
	}
}

func TestNotificationHandler_ListNotifications(t *testing.T) {
	fx := createTestNotificationHandler(t)

	fx.notifierUC.EXPECT().
		ListNotifications(mock.Anything, fx.userID, true, 5, 10).
		Return(nil, nil).Once()

	rec, env := doRequest(t, fx.echo, http.MethodGet, "/api/v1/notifications?unread=true&limit=5&offset=10", "")
	requireStatus(t, rec, http.StatusOK)
	assert.JSONEq(t, `[]`, string(env.Data))
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 0, *env.Meta.Count)
	assert.NotEmpty(t, env.Meta.RequestID)

	rec, _ = doRequest(t, fx.echo, http.MethodGet, "/api/v1/notifications?limit=abc", "")
	requireStatus(t, rec, http.StatusBadRequest)
}

func TestNotificationHandler_MarkRead_NotOwned(t *testing.T) {
	fx := createTestNotificationHandler(t)
	notificationID := uuid.New()

	fx.notifierUC.EXPECT().
		MarkRead(mock.Anything, notificationID, fx.userID).
		Return(domainerrors.ErrNotificationNotFound).Once()

	rec, env := doRequest(t, fx.echo, http.MethodPut, "/api/v1/notifications/"+notificationID.String()+"/read", "")

	requireStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", env.Error.Code)
}

func TestNotificationHandler_RegisterPushToken(t *testing.T) {
	t.Run("registers", func(t *testing.T) {
		fx := createTestNotificationHandler(t)

		fx.notifierUC.EXPECT().
			RegisterPushToken(mock.Anything, fx.userID, "fcm-abc", "android").
			Return(&entity.PushToken{ID: uuid.New(), UserID: fx.userID, FCMToken: "fcm-abc", Platform: "android", IsActive: true}, nil).Once()

		rec, _ := doRequest(t, fx.echo, http.MethodPost, "/api/v1/push-tokens", `{"fcm_token":"fcm-abc","platform":"android"}`)

		requireStatus(t, rec, http.StatusCreated)
	})

	t.Run("unknown platform", func(t *testing.T) {
		fx := createTestNotificationHandler(t)

		rec, env := doRequest(t, fx.echo, http.MethodPost, "/api/v1/push-tokens", `{"fcm_token":"fcm-abc","platform":"web"}`)

		requireStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, env.Error.Message, "platform")
	})
}

func TestNotificationHandler_DeactivatePushToken(t *testing.T) {
	fx := createTestNotificationHandler(t)
	tokenID := uuid.New()

	fx.notifierUC.EXPECT().
		DeactivatePushToken(mock.Anything, tokenID, fx.userID).
		Return(nil).Once()

	rec, _ := doRequest(t, fx.echo, http.MethodDelete, "/api/v1/push-tokens/"+tokenID.String(), "")

	requireStatus(t, rec, http.StatusOK)
}
