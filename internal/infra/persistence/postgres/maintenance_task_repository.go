package postgres

import (
	"context"
	"time"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sqlDateLayout formats calendar dates for comparison against DATE columns.
const sqlDateLayout = "2006-01-02"

// maintenanceTaskRepository implements the repository.MaintenanceTaskRepository interface.
type maintenanceTaskRepository struct {
	db *gorm.DB
}

// NewMaintenanceTaskRepository is the constructor for maintenanceTaskRepository.
func NewMaintenanceTaskRepository(db *gorm.DB) repository.MaintenanceTaskRepository {
	return &maintenanceTaskRepository{
		db: db,
	}
}

// CreateTask persists a new task.
func (repo *maintenanceTaskRepository) CreateTask(ctx context.Context, task *entity.MaintenanceTask) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	taskM := fromMaintenanceTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required task information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create maintenance task")
	}

	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindTaskByID retrieves a task by its unique ID.
func (repo *maintenanceTaskRepository) FindTaskByID(ctx context.Context, id uuid.UUID) (*entity.MaintenanceTask, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindTaskByIDForUpdate retrieves a task with SELECT ... FOR UPDATE.
func (repo *maintenanceTaskRepository) FindTaskByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.MaintenanceTask, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *maintenanceTaskRepository) findOne(db *gorm.DB, id uuid.UUID) (*entity.MaintenanceTask, error) {
	var taskM model.MaintenanceTaskModel

	if err := db.Where("id = ?", id).First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaintenanceTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find maintenance task by ID")
	}

	return toMaintenanceTaskDomain(&taskM), nil
}

// FindTaskByTitle looks a task up by (device, title, organization).
func (repo *maintenanceTaskRepository) FindTaskByTitle(ctx context.Context, deviceID uuid.UUID, title, organizationID string) (*entity.MaintenanceTask, error) {
	var taskM model.MaintenanceTaskModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ? AND task_name = ? AND organization_id = ?", deviceID, title, organizationID).
		Order("created_at ASC").
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaintenanceTaskNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find maintenance task by title")
	}

	return toMaintenanceTaskDomain(&taskM), nil
}

// FindTasks lists tasks matching filter.
func (repo *maintenanceTaskRepository) FindTasks(ctx context.Context, filter repository.TaskFilter) ([]*entity.MaintenanceTask, error) {
	query := repo.db.WithContext(ctx).Model(&model.MaintenanceTaskModel{})

	if filter.OrganizationID != "" {
		query = query.Where("organization_id = ?", filter.OrganizationID)
	}
	if filter.DeviceID != nil {
		query = query.Where("device_id = ?", *filter.DeviceID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(filter.Statuses))
	}
	if filter.DueFrom != nil {
		query = query.Where("next_maintenance >= ?::date", sqlDate(*filter.DueFrom))
	}
	if filter.DueTo != nil {
		query = query.Where("next_maintenance <= ?::date", sqlDate(*filter.DueTo))
	}
	if filter.DueBefore != nil {
		query = query.Where("next_maintenance < ?::date", sqlDate(*filter.DueBefore))
	}
	if filter.CompletedFrom != nil {
		query = query.Where("last_maintenance >= ?::date", sqlDate(*filter.CompletedFrom))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var taskModels []*model.MaintenanceTaskModel
	if err := query.Order("next_maintenance ASC, created_at ASC").Find(&taskModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find maintenance tasks")
	}

	return toMaintenanceTaskDomains(taskModels), nil
}

// FindTasksByDevice lists every task of a device, oldest first.
func (repo *maintenanceTaskRepository) FindTasksByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.MaintenanceTask, error) {
	var taskModels []*model.MaintenanceTaskModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at ASC, id ASC").
		Find(&taskModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find maintenance tasks by device")
	}

	return toMaintenanceTaskDomains(taskModels), nil
}

// dueTaskRow is one row of the due-task join.
type dueTaskRow struct {
	model.MaintenanceTaskModel `gorm:"embedded"`

	DeviceName             string
	AssigneeUserID         *uuid.UUID
	AssigneeFirstName      *string
	AssigneeLastName       *string
	AssigneeEmail          *string
	AssigneeOrganizationID *string
}

// FindDueTasks joins due tasks with their device and effective assignee.
// The effective assignee is the task assignee, falling back to the device assignee.
func (repo *maintenanceTaskRepository) FindDueTasks(ctx context.Context, filter repository.DueTaskFilter) ([]*entity.DueTask, error) {
	query := repo.db.WithContext(ctx).
		Table("maintenance_tasks AS mt").
		Select(`mt.*,
			d.name AS device_name,
			u.id AS assignee_user_id,
			u.first_name AS assignee_first_name,
			u.last_name AS assignee_last_name,
			u.email AS assignee_email,
			u.organization_id AS assignee_organization_id`).
		Joins("JOIN devices AS d ON d.id = mt.device_id").
		Joins("LEFT JOIN users AS u ON u.id = COALESCE(mt.assigned_to, d.assigned_user_id)").
		Where("mt.next_maintenance <= ?::date", sqlDate(filter.DueOnOrBefore))

	if len(filter.Statuses) > 0 {
		query = query.Where("mt.status IN ?", statusStrings(filter.Statuses))
	}
	if filter.OrganizationID != "" {
		query = query.Where("mt.organization_id = ?", filter.OrganizationID)
	}

	var rows []*dueTaskRow
	if err := query.Order("mt.next_maintenance ASC, mt.created_at ASC").Scan(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find due maintenance tasks")
	}

	dueTasks := make([]*entity.DueTask, 0, len(rows))
	for _, row := range rows {
		dueTasks = append(dueTasks, toDueTaskDomain(row))
	}

	return dueTasks, nil
}

// UpdateTask overwrites every mutable column of a task.
func (repo *maintenanceTaskRepository) UpdateTask(ctx context.Context, task *entity.MaintenanceTask) error {
	taskM := fromMaintenanceTaskDomain(task)

	result := repo.db.WithContext(ctx).
		Model(&model.MaintenanceTaskModel{}).
		Where("id = ?", task.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(taskM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update maintenance task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMaintenanceTaskNotFound
	}

	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// MarkOverdue flips the given tasks to OVERDUE. The overdue predicate is
// re-checked in SQL so a task completed or rescheduled meanwhile is left alone.
func (repo *maintenanceTaskRepository) MarkOverdue(ctx context.Context, ids []uuid.UUID, today, now time.Time) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MaintenanceTaskModel{}).
		Scopes(overdueScope(today)).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"status":     string(entity.StatusOverdue),
			"updated_at": now,
		})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark overdue maintenance tasks")
	}

	return result.RowsAffected, nil
}

// overdueScope matches ACTIVE tasks due strictly before today.
func overdueScope(today time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ? AND next_maintenance < ?::date", string(entity.StatusActive), sqlDate(today))
	}
}

// claimReminderSQL bumps the day's counter unless it already reached the limit.
// No row comes back when the limit is hit.
const claimReminderSQL = `
INSERT INTO maintenance_reminders (task_id, reminder_date, sent, updated_at)
VALUES (?, ?::date, 1, NOW())
ON CONFLICT (task_id, reminder_date) DO UPDATE
SET sent = maintenance_reminders.sent + 1, updated_at = NOW()
WHERE maintenance_reminders.sent < ?
RETURNING sent`

// ClaimReminder reserves the next reminder ordinal of a task for day.
func (repo *maintenanceTaskRepository) ClaimReminder(ctx context.Context, taskID uuid.UUID, day time.Time, limit int) (int, error) {
	if limit <= 0 {
		return 0, nil
	}

	var sent []int
	if err := repo.db.WithContext(ctx).
		Raw(claimReminderSQL, taskID, sqlDate(day), limit).
		Scan(&sent).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to claim maintenance reminder")
	}

	if len(sent) == 0 {
		return 0, nil
	}

	return sent[0], nil
}

// DeleteTasks removes tasks by ID.
func (repo *maintenanceTaskRepository) DeleteTasks(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.MaintenanceTaskModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete maintenance tasks")
	}

	return result.RowsAffected, nil
}

// DeleteTasksByDevice removes every task of a device.
func (repo *maintenanceTaskRepository) DeleteTasksByDevice(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Delete(&model.MaintenanceTaskModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete maintenance tasks by device")
	}

	return result.RowsAffected, nil
}

func sqlDate(t time.Time) string {
	return t.Format(sqlDateLayout)
}

func statusStrings(statuses []entity.MaintenanceStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, string(status))
	}

	return out
}

// --- Mapper Functions ---

// toMaintenanceTaskDomain converts a GORM MaintenanceTaskModel to a domain MaintenanceTask entity.
func toMaintenanceTaskDomain(data *model.MaintenanceTaskModel) *entity.MaintenanceTask {
	if data == nil {
		return nil
	}

	return &entity.MaintenanceTask{
		ID:                data.ID,
		DeviceID:          data.DeviceID,
		OrganizationID:    data.OrganizationID,
		TaskName:          data.TaskName,
		Description:       data.Description,
		Frequency:         data.Frequency,
		Priority:          entity.MaintenancePriority(data.Priority),
		EstimatedDuration: data.EstimatedDuration,
		RequiredTools:     data.RequiredTools,
		SafetyNotes:       data.SafetyNotes,
		ComponentName:     data.ComponentName,
		Category:          data.Category,
		MaintenanceType:   entity.MaintenanceType(data.MaintenanceType),
		LastMaintenance:   data.LastMaintenance,
		NextMaintenance:   data.NextMaintenance,
		Status:            entity.MaintenanceStatus(data.Status),
		AssignedTo:        data.AssignedTo,
		AssignedBy:        data.AssignedBy,
		AssignedAt:        data.AssignedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toMaintenanceTaskDomains(models []*model.MaintenanceTaskModel) []*entity.MaintenanceTask {
	tasks := make([]*entity.MaintenanceTask, 0, len(models))
	for _, taskM := range models {
		tasks = append(tasks, toMaintenanceTaskDomain(taskM))
	}

	return tasks
}

// fromMaintenanceTaskDomain converts a domain MaintenanceTask entity to a GORM MaintenanceTaskModel.
func fromMaintenanceTaskDomain(data *entity.MaintenanceTask) *model.MaintenanceTaskModel {
	if data == nil {
		return nil
	}

	return &model.MaintenanceTaskModel{
		ID:                data.ID,
		DeviceID:          data.DeviceID,
		OrganizationID:    data.OrganizationID,
		TaskName:          data.TaskName,
		Description:       data.Description,
		Frequency:         data.Frequency,
		Priority:          string(data.Priority),
		EstimatedDuration: data.EstimatedDuration,
		RequiredTools:     data.RequiredTools,
		SafetyNotes:       data.SafetyNotes,
		ComponentName:     data.ComponentName,
		Category:          data.Category,
		MaintenanceType:   string(data.MaintenanceType),
		LastMaintenance:   data.LastMaintenance,
		NextMaintenance:   data.NextMaintenance,
		Status:            string(data.Status),
		AssignedTo:        data.AssignedTo,
		AssignedBy:        data.AssignedBy,
		AssignedAt:        data.AssignedAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

// toDueTaskDomain converts a join row, leaving Assignee nil when nobody is responsible.
func toDueTaskDomain(row *dueTaskRow) *entity.DueTask {
	due := &entity.DueTask{
		Task:       toMaintenanceTaskDomain(&row.MaintenanceTaskModel),
		DeviceName: row.DeviceName,
	}

	if row.AssigneeUserID != nil {
		due.Assignee = &entity.User{
			ID:             *row.AssigneeUserID,
			FirstName:      derefString(row.AssigneeFirstName),
			LastName:       derefString(row.AssigneeLastName),
			Email:          derefString(row.AssigneeEmail),
			OrganizationID: derefString(row.AssigneeOrganizationID),
		}
	}

	return due
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
