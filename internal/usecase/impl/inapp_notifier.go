package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxNotificationPage = 100

type inAppNotifier struct {
	notificationRepo repository.NotificationRepository
	pushTokenRepo    repository.PushTokenRepository
	preferences      service.PreferenceChecker
	push             service.PushService
	now              func() time.Time
	logger           *slog.Logger
}

// InAppNotifierParams holds dependencies for the in-app notifier, injected by Fx.
type InAppNotifierParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	PushTokenRepo    repository.PushTokenRepository
	Preferences      service.PreferenceChecker
	Push             service.PushService
	Logger           *slog.Logger
}

// NewInAppNotifier creates the in-app notifier.
func NewInAppNotifier(params InAppNotifierParams) usecase.InAppNotifier {
	return &inAppNotifier{
		notificationRepo: params.NotificationRepo,
		pushTokenRepo:    params.PushTokenRepo,
		preferences:      params.Preferences,
		push:             params.Push,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// Notify stores the notification when the user's preferences allow its category
// and mirrors it to the user's phones. Push failures never fail the call.
func (s *inAppNotifier) Notify(ctx context.Context, notice *usecase.Notice) (bool, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("user_id", notice.UserID.String()),
		slog.String("category", string(notice.Category)),
	)

	allowed, err := s.preferences.Allowed(ctx, notice.UserID, notice.Category)
	if err != nil {
		return false, errors.Wrap(err, "failed to check notification preferences")
	}
	if !allowed {
		logger.Info("Notification suppressed by user preferences")

		return false, nil
	}

	notification := &entity.Notification{
		ID:             uuid.New(),
		UserID:         notice.UserID,
		OrganizationID: notice.OrganizationID,
		Title:          notice.Title,
		Message:        notice.Message,
		Category:       notice.Category,
		Metadata:       notice.Metadata,
		CreatedAt:      s.now(),
	}
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return false, errors.Wrap(err, "failed to create notification")
	}

	s.pushToDevices(ctx, logger, notification)

	return true, nil
}

func (s *inAppNotifier) pushToDevices(ctx context.Context, logger *slog.Logger, notification *entity.Notification) {
	tokens, err := s.pushTokenRepo.FindActiveTokensByUser(ctx, notification.UserID)
	if err != nil {
		logger.Warn("Failed to load push tokens", slog.Any("error", err))

		return
	}
	if len(tokens) == 0 {
		return
	}

	fcmTokens := make([]string, 0, len(tokens))
	for _, token := range tokens {
		fcmTokens = append(fcmTokens, token.FCMToken)
	}

	data := map[string]string{
		"notification_id": notification.ID.String(),
		"category":        string(notification.Category),
	}
	if notification.Metadata.TaskID != nil {
		data["task_id"] = notification.Metadata.TaskID.String()
	}
	if notification.Metadata.DeviceID != nil {
		data["device_id"] = notification.Metadata.DeviceID.String()
	}

	var (
		sent, failed int
		invalid      []string
	)
	for start := 0; start < len(fcmTokens); start += service.PushBatchLimit {
		end := min(start+service.PushBatchLimit, len(fcmTokens))
		batch := fcmTokens[start:end]

		successCount, failureCount, batchInvalid, err := s.push.SendBatchNotification(ctx, batch, notification.Title, notification.Message, data)
		if err != nil {
			logger.Warn("Push batch failed", slog.Int("batch_size", len(batch)), slog.Any("error", err))
			failed += len(batch)

			continue
		}

		sent += successCount
		failed += failureCount
		invalid = append(invalid, batchInvalid...)
	}

	if len(invalid) > 0 {
		if err := s.pushTokenRepo.DeleteTokens(ctx, invalid); err != nil {
			logger.Warn("Failed to remove invalid push tokens", slog.Any("error", err))
		}
	}

	logger.Debug("Push notification mirrored",
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalid)),
	)
}

// ListNotifications lists the caller's notifications, newest first.
func (s *inAppNotifier) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	if limit > maxNotificationPage {
		limit = maxNotificationPage
	}
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead flags one of the caller's notifications as read.
func (s *inAppNotifier) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	err := s.notificationRepo.MarkRead(ctx, id, userID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "failed to mark notification read")
}

// RegisterPushToken registers or reactivates a phone for push delivery.
func (s *inAppNotifier) RegisterPushToken(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.PushToken, error) {
	fcmToken = strings.TrimSpace(fcmToken)
	platform = strings.ToLower(strings.TrimSpace(platform))

	if fcmToken == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm token is required")
	}
	if platform != "ios" && platform != "android" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be ios or android")
	}

	now := s.now()
	token := &entity.PushToken{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  fcmToken,
		Platform:  platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.pushTokenRepo.SaveToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to save push token")
	}

	return token, nil
}

// DeactivatePushToken disables one of the caller's push tokens.
func (s *inAppNotifier) DeactivatePushToken(ctx context.Context, id, userID uuid.UUID) error {
	err := s.pushTokenRepo.DeactivateToken(ctx, id, userID)
	if errors.Is(err, repository.ErrPushTokenNotFound) {
		return domainerrors.ErrPushTokenNotFound
	}

	return errors.Wrap(err, "failed to deactivate push token")
}
