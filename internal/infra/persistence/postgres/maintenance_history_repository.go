package postgres

import (
	"context"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultHistoryLimit = 50

// maintenanceHistoryRepository implements the repository.MaintenanceHistoryRepository interface.
type maintenanceHistoryRepository struct {
	db *gorm.DB
}

// NewMaintenanceHistoryRepository is the constructor for maintenanceHistoryRepository.
func NewMaintenanceHistoryRepository(db *gorm.DB) repository.MaintenanceHistoryRepository {
	return &maintenanceHistoryRepository{
		db: db,
	}
}

// CreateHistory appends a history record. Records are never updated.
func (repo *maintenanceHistoryRepository) CreateHistory(ctx context.Context, history *entity.MaintenanceHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}
	historyM := fromMaintenanceHistoryDomain(history)

	if err := repo.db.WithContext(ctx).Create(historyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCycleNumber
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create maintenance history")
	}

	history.CreatedAt = historyM.CreatedAt

	return nil
}

// NextCycleNumber returns MAX(cycle_number)+1 for the device, starting at 1.
// It takes a transaction-scoped advisory lock on the device first, so writers
// numbering the same device queue up until the caller's transaction ends.
// Outside a transaction the lock is released immediately and the unique index
// on (device_id, cycle_number) is the only guard.
func (repo *maintenanceHistoryRepository) NextCycleNumber(ctx context.Context, deviceID uuid.UUID) (int, error) {
	db := repo.db.WithContext(ctx)

	if err := db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", deviceID.String()).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to lock device history")
	}

	var current int
	if err := db.
		Model(&model.MaintenanceHistoryModel{}).
		Where("device_id = ?", deviceID).
		Select("COALESCE(MAX(cycle_number), 0)").
		Scan(&current).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to compute next cycle number")
	}

	return current + 1, nil
}

// FindHistoryByDevice lists the latest records of a device, newest cycle first.
func (repo *maintenanceHistoryRepository) FindHistoryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.MaintenanceHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	var historyModels []*model.MaintenanceHistoryModel
	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("cycle_number DESC").
		Limit(limit).
		Find(&historyModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find maintenance history")
	}

	records := make([]*entity.MaintenanceHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		records = append(records, toMaintenanceHistoryDomain(historyM))
	}

	return records, nil
}

// --- Mapper Functions ---

func toMaintenanceHistoryDomain(data *model.MaintenanceHistoryModel) *entity.MaintenanceHistory {
	if data == nil {
		return nil
	}

	return &entity.MaintenanceHistory{
		ID:              data.ID,
		TaskID:          data.TaskID,
		DeviceID:        data.DeviceID,
		OrganizationID:  data.OrganizationID,
		TaskName:        data.TaskName,
		CycleNumber:     data.CycleNumber,
		ScheduledDate:   data.ScheduledDate,
		ActualDate:      data.ActualDate,
		CompletedBy:     data.CompletedBy,
		SnapshotType:    entity.SnapshotType(data.SnapshotType),
		Status:          entity.MaintenanceStatus(data.Status),
		Frequency:       data.Frequency,
		NextMaintenance: data.NextMaintenance,
		Snapshot:        []byte(data.Snapshot),
		CreatedAt:       data.CreatedAt,
	}
}

func fromMaintenanceHistoryDomain(data *entity.MaintenanceHistory) *model.MaintenanceHistoryModel {
	if data == nil {
		return nil
	}

	return &model.MaintenanceHistoryModel{
		ID:              data.ID,
		TaskID:          data.TaskID,
		DeviceID:        data.DeviceID,
		OrganizationID:  data.OrganizationID,
		TaskName:        data.TaskName,
		CycleNumber:     data.CycleNumber,
		ScheduledDate:   data.ScheduledDate,
		ActualDate:      data.ActualDate,
		CompletedBy:     data.CompletedBy,
		SnapshotType:    string(data.SnapshotType),
		Status:          string(data.Status),
		Frequency:       data.Frequency,
		NextMaintenance: data.NextMaintenance,
		Snapshot:        datatypes.JSON(data.Snapshot),
		CreatedAt:       data.CreatedAt,
	}
}
