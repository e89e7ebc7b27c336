package postgres

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultNotificationPageSize = 20

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new in-app notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByUser lists notifications of a user, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationPageSize
	}

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead flags a notification of userID as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// HasTaskNotification reports whether userID received a notification of category for taskID at or after since.
func (repo *notificationRepository) HasTaskNotification(ctx context.Context, taskID, userID uuid.UUID, category entity.NotificationCategory, since time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND category = ? AND created_at >= ?", userID, string(category), since).
		Where(datatypes.JSONQuery("metadata").Equals(taskID.String(), "task_id")).
		Count(&count).Error; err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to look up task notification")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	meta := data.Metadata.Data()

	return &entity.Notification{
		ID:             data.ID,
		UserID:         data.UserID,
		OrganizationID: data.OrganizationID,
		Title:          data.Title,
		Message:        data.Message,
		Category:       entity.NotificationCategory(data.Category),
		IsRead:         data.IsRead,
		Metadata: entity.NotificationMetadata{
			TaskID:         parseOptionalUUID(meta.TaskID),
			DeviceID:       parseOptionalUUID(meta.DeviceID),
			DeviceName:     meta.DeviceName,
			ReminderNumber: meta.ReminderNumber,
		},
		CreatedAt: data.CreatedAt,
	}
}

func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	meta := model.NotificationMetadata{
		DeviceName:     data.Metadata.DeviceName,
		ReminderNumber: data.Metadata.ReminderNumber,
	}
	if data.Metadata.TaskID != nil {
		meta.TaskID = data.Metadata.TaskID.String()
	}
	if data.Metadata.DeviceID != nil {
		meta.DeviceID = data.Metadata.DeviceID.String()
	}

	return &model.NotificationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		OrganizationID: data.OrganizationID,
		Title:          data.Title,
		Message:        data.Message,
		Category:       string(data.Category),
		IsRead:         data.IsRead,
		Metadata:       datatypes.NewJSONType(meta),
		CreatedAt:      data.CreatedAt,
	}
}

func parseOptionalUUID(raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &id
}
