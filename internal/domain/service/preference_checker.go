package service

import (
	"context"

	"upkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// PreferenceChecker answers whether a user accepts notifications of a category.
type PreferenceChecker interface {
	Allowed(ctx context.Context, userID uuid.UUID, category entity.NotificationCategory) (bool, error)
}
