package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"
	mockSvc "upkeep/internal/mocks/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type inAppNotifierFixtures struct {
	notificationRepo *mockRepo.MockNotificationRepository
	pushTokenRepo    *mockRepo.MockPushTokenRepository
	preferences      *mockSvc.MockPreferenceChecker
	push             *mockSvc.MockPushService
}

func createTestInAppNotifier(t *testing.T) (usecase.InAppNotifier, inAppNotifierFixtures) {
	t.Helper()

	fx := inAppNotifierFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		pushTokenRepo:    mockRepo.NewMockPushTokenRepository(t),
		preferences:      mockSvc.NewMockPreferenceChecker(t),
		push:             mockSvc.NewMockPushService(t),
	}

	notifier := NewInAppNotifier(InAppNotifierParams{
		NotificationRepo: fx.notificationRepo,
		PushTokenRepo:    fx.pushTokenRepo,
		Preferences:      fx.preferences,
		Push:             fx.push,
		Logger:           newDiscardLogger(),
	})
	notifier.(*inAppNotifier).now = func() time.Time { return fixedNow }

	return notifier, fx
}

func reminderNotice(userID uuid.UUID) *usecase.Notice {
	taskID := uuid.New()

	return &usecase.Notice{
		UserID:         userID,
		OrganizationID: "org-1",
		Title:          "Maintenance due",
		Message:        "Replace filter on Pump A",
		Category:       entity.CategoryMaintenanceReminder,
		Metadata:       entity.NotificationMetadata{TaskID: &taskID, DeviceName: "Pump A"},
	}
}

func TestInAppNotifier_Notify_Suppressed(t *testing.T) {
	notifier, fx := createTestInAppNotifier(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.preferences.EXPECT().Allowed(ctx, userID, entity.CategoryMaintenanceReminder).Return(false, nil)

	created, err := notifier.Notify(ctx, reminderNotice(userID))

	require.NoError(t, err)
	assert.False(t, created)
}

func TestInAppNotifier_Notify_PushesInBatchesAndDropsInvalidTokens(t *testing.T) {
	notifier, fx := createTestInAppNotifier(t)
	ctx := context.Background()
	userID := uuid.New()
	notice := reminderNotice(userID)

	tokens := make([]*entity.PushToken, 0, 501)
	for i := range 501 {
		tokens = append(tokens, &entity.PushToken{UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	fx.preferences.EXPECT().Allowed(ctx, userID, entity.CategoryMaintenanceReminder).Return(true, nil)
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == userID && n.Metadata.DeviceName == "Pump A" && n.CreatedAt.Equal(fixedNow)
		})).
		Return(nil)
	fx.pushTokenRepo.EXPECT().FindActiveTokensByUser(ctx, userID).Return(tokens, nil)
	fx.push.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(batch []string) bool { return len(batch) == 500 }), notice.Title, notice.Message, mock.Anything).
		Return(499, 1, []string{"token-7"}, nil).Once()
	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"token-500"}, notice.Title, notice.Message, mock.Anything).
		Return(0, 0, nil, errors.New("firebase unavailable")).Once()
	fx.pushTokenRepo.EXPECT().DeleteTokens(ctx, []string{"token-7"}).Return(nil)

	created, err := notifier.Notify(ctx, notice)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestInAppNotifier_Notify_PersistFailure(t *testing.T) {
	notifier, fx := createTestInAppNotifier(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.preferences.EXPECT().Allowed(ctx, userID, entity.CategoryMaintenanceReminder).Return(true, nil)
	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("db down"))

	created, err := notifier.Notify(ctx, reminderNotice(userID))

	assert.Error(t, err)
	assert.False(t, created)
}

func TestInAppNotifier_RegisterPushToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("normalizes platform", func(t *testing.T) {
		notifier, fx := createTestInAppNotifier(t)

		fx.pushTokenRepo.EXPECT().
			SaveToken(ctx, mock.MatchedBy(func(token *entity.PushToken) bool {
				return token.FCMToken == "abc" && token.Platform == "ios" && token.IsActive
			})).
			Return(nil)

		token, err := notifier.RegisterPushToken(ctx, userID, " abc ", "iOS")

		require.NoError(t, err)
		assert.Equal(t, userID, token.UserID)
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		notifier, _ := createTestInAppNotifier(t)

		_, err := notifier.RegisterPushToken(ctx, userID, "abc", "web")

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestInAppNotifier_MarkRead_NotFound(t *testing.T) {
	notifier, fx := createTestInAppNotifier(t)
	ctx := context.Background()
	id, userID := uuid.New(), uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, id, userID).Return(repository.ErrNotificationNotFound)

	err := notifier.MarkRead(ctx, id, userID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
