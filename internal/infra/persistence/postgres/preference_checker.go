package postgres

import (
	"context"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/service"
	"upkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// preferenceChecker reads the platform user_preferences table.
type preferenceChecker struct {
	db *gorm.DB
}

// NewPreferenceChecker is the constructor for preferenceChecker.
func NewPreferenceChecker(db *gorm.DB) service.PreferenceChecker {
	return &preferenceChecker{
		db: db,
	}
}

// Allowed reports whether the user accepts notifications of category.
// Users without a preference row get everything.
func (c *preferenceChecker) Allowed(ctx context.Context, userID uuid.UUID, category entity.NotificationCategory) (bool, error) {
	var prefM model.UserPreferenceModel

	if err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&prefM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to load user preferences")
	}

	switch category {
	case entity.CategoryMaintenanceReminder, entity.CategoryMaintenanceAssigned:
		return prefM.MaintenanceAlerts, nil
	default:
		return true, nil
	}
}
