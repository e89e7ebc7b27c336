package repository

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrPushTokenNotFound is returned when a push token is not found.
	ErrPushTokenNotFound = errors.New("push token not found")
)

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	// CreateNotification persists a new in-app notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser lists notifications of a user, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flags a notification of userID as read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// HasTaskNotification reports whether userID received a notification of category for taskID at or after since.
	HasTaskNotification(ctx context.Context, taskID, userID uuid.UUID, category entity.NotificationCategory, since time.Time) (bool, error)
}

// PushTokenRepository defines the interface for mobile push token persistence.
type PushTokenRepository interface {
	// SaveToken registers a token, reactivating it if the same FCM token is already known.
	SaveToken(ctx context.Context, token *entity.PushToken) error

	// FindActiveTokensByUser lists the active tokens of a user.
	FindActiveTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushToken, error)

	// DeactivateToken disables one token owned by userID.
	DeactivateToken(ctx context.Context, id, userID uuid.UUID) error

	// DeleteTokens soft-deletes tokens by FCM token value.
	DeleteTokens(ctx context.Context, fcmTokens []string) error
}
