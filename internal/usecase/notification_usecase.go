package usecase

import (
	"context"

	"upkeep/internal/domain/entity"
	"upkeep/internal/domain/service"

	"github.com/google/uuid"
)

// Notice is an in-app notification request.
type Notice struct {
	UserID         uuid.UUID
	OrganizationID string
	Title          string
	Message        string
	Category       entity.NotificationCategory
	Metadata       entity.NotificationMetadata
}

// InAppNotifier records in-app notifications and mirrors them to the user's phones.
type InAppNotifier interface {
	// Notify returns created=false without error when the user's preferences suppress the category.
	Notify(ctx context.Context, notice *Notice) (created bool, err error)

	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	RegisterPushToken(ctx context.Context, userID uuid.UUID, fcmToken, platform string) (*entity.PushToken, error)
	DeactivatePushToken(ctx context.Context, id, userID uuid.UUID) error
}

// AssignmentNoticeUsecase turns a published assignment event into notifications.
type AssignmentNoticeUsecase interface {
	// DeliverAssignment sends the ordinal-0 notice. A missing task or assignee
	// is reported as an error the caller must not retry.
	DeliverAssignment(ctx context.Context, event *service.TaskAssignedEvent) (entity.DispatchOutcome, error)
}

// DeviceLabelUsecase renders printable device labels.
type DeviceLabelUsecase interface {
	// GenerateMaintenanceLabel returns a PNG QR code pointing at the device's maintenance page.
	GenerateMaintenanceLabel(ctx context.Context, deviceID uuid.UUID) ([]byte, error)
}
