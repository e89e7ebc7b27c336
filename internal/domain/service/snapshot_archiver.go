package service

import (
	"context"

	"upkeep/internal/domain/entity"
)

// SnapshotArchiver stores daily history snapshots outside the database.
type SnapshotArchiver interface {
	Archive(ctx context.Context, key string, records []*entity.MaintenanceHistory) error
	Close() error
}
