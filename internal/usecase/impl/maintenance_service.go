// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/frequency"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultUpcomingDays  = 7
	defaultCompletedDays = 30

	// cycleNumberAttempts bounds retries when a concurrent writer took the same cycle number.
	cycleNumberAttempts = 3
)

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	txManager   repository.TransactionManager
	taskRepo    repository.MaintenanceTaskRepository
	historyRepo repository.MaintenanceHistoryRepository
	deviceRepo  repository.DeviceRepository
	userRepo    repository.UserRepository
	publisher   service.EventPublisher
	location    *time.Location
	now         func() time.Time
	logger      *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TaskRepo    repository.MaintenanceTaskRepository
	HistoryRepo repository.MaintenanceHistoryRepository
	DeviceRepo  repository.DeviceRepository
	UserRepo    repository.UserRepository
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		txManager:   params.TxManager,
		taskRepo:    params.TaskRepo,
		historyRepo: params.HistoryRepo,
		deviceRepo:  params.DeviceRepo,
		userRepo:    params.UserRepo,
		publisher:   params.Publisher,
		location:    schedulerLocation(params.Config),
		now:         time.Now,
		logger:      params.Logger,
	}
}

// schedulerLocation is the timezone that decides what "today" is.
func schedulerLocation(cfg *config.Config) *time.Location {
	if cfg == nil {
		return time.UTC
	}

	loc, err := cfg.Scheduler.Location()
	if err != nil {
		return time.UTC
	}

	return loc
}

func (s *maintenanceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *maintenanceService) today() time.Time {
	return entity.CalendarDay(s.now().In(s.location))
}

// IngestGeneratedTasks validates, deduplicates and persists a generated batch.
func (s *maintenanceService) IngestGeneratedTasks(ctx context.Context, deviceID uuid.UUID, organizationID string, actorID uuid.UUID, tasks []entity.GeneratedTask) (*usecase.IngestResult, error) {
	device, err := s.findDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	organizationID, err = deviceOrganization(device, organizationID)
	if err != nil {
		return nil, err
	}

	logger := s.log(ctx).With(slog.String("device_id", deviceID.String()), slog.String("organization_id", organizationID))
	if !device.HasAssignee() {
		logger.Warn("Device has no assignee, generated tasks stay unassigned")
	}

	today := s.today()
	result := &usecase.IngestResult{}
	var assigned []*entity.MaintenanceTask

	for idx := range tasks {
		raw := &tasks[idx]

		if missing := raw.MissingFields(); len(missing) > 0 {
			logger.Warn("Skipping generated task with missing fields",
				slog.Int("index", idx),
				slog.String("task", raw.Title()),
				slog.Any("missing", missing),
			)
			result.Skipped++

			continue
		}

		title := raw.Title()
		existing, err := s.taskRepo.FindTaskByTitle(ctx, deviceID, title, organizationID)
		switch {
		case err == nil:
			result.Skipped++
			if existing.IsAssigned() || !device.HasAssignee() {
				logger.Info("Generated task already exists", slog.String("task", title))

				continue
			}

			existing.Assign(*device.AssignedUserID, actorID, s.now())
			if err := s.taskRepo.UpdateTask(ctx, existing); err != nil {
				logger.Error("Failed to assign existing task", slog.String("task", title), slog.Any("error", err))

				continue
			}
			result.Assigned++
			assigned = append(assigned, existing)

			continue
		case !errors.Is(err, repository.ErrMaintenanceTaskNotFound):
			logger.Error("Failed to look up generated task", slog.String("task", title), slog.Any("error", err))
			result.Skipped++

			continue
		}

		task := s.newGeneratedTask(ctx, raw, device, organizationID, today)
		if device.HasAssignee() {
			task.Assign(*device.AssignedUserID, actorID, task.CreatedAt)
		}

		if err := s.taskRepo.CreateTask(ctx, task); err != nil {
			logger.Error("Failed to persist generated task", slog.String("task", title), slog.Any("error", err))
			result.Skipped++

			continue
		}

		result.Processed++
		if task.IsAssigned() {
			result.Assigned++
			assigned = append(assigned, task)
		}
	}

	for _, task := range assigned {
		s.publishAssignment(ctx, task)
	}

	logger.Info("Generated tasks ingested",
		slog.Int("processed", result.Processed),
		slog.Int("skipped", result.Skipped),
		slog.Int("assigned", result.Assigned),
	)

	return result, nil
}

func (s *maintenanceService) newGeneratedTask(ctx context.Context, raw *entity.GeneratedTask, device *entity.Device, organizationID string, today time.Time) *entity.MaintenanceTask {
	title := raw.Title()

	priority, ok := entity.ParsePriority(raw.Priority)
	if !ok {
		s.log(ctx).Warn("Unknown priority, using MEDIUM", slog.String("task", title), slog.String("priority", raw.Priority))
	}

	componentName := strings.TrimSpace(raw.ComponentName)
	if componentName == "" {
		componentName = title
	}

	now := s.now()

	return &entity.MaintenanceTask{
		ID:                uuid.New(),
		DeviceID:          device.ID,
		OrganizationID:    organizationID,
		TaskName:          title,
		Description:       strings.TrimSpace(raw.Description),
		Frequency:         strings.TrimSpace(raw.Frequency),
		Priority:          priority,
		EstimatedDuration: strings.TrimSpace(raw.EstimatedDuration),
		RequiredTools:     strings.TrimSpace(raw.RequiredTools),
		SafetyNotes:       strings.TrimSpace(raw.SafetyNotes),
		ComponentName:     componentName,
		Category:          strings.TrimSpace(raw.Category),
		MaintenanceType:   entity.ParseMaintenanceType(raw.MaintenanceType),
		NextMaintenance:   frequency.NextDate(raw.Frequency, today),
		Status:            entity.StatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// CreateTask creates a task by hand and records an UPDATE history snapshot.
func (s *maintenanceService) CreateTask(ctx context.Context, input *usecase.CreateTaskInput) (*entity.MaintenanceTask, error) {
	if strings.TrimSpace(input.TaskName) == "" || strings.TrimSpace(input.Frequency) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("task name and frequency are required")
	}

	device, err := s.findDevice(ctx, input.DeviceID)
	if err != nil {
		return nil, err
	}

	organizationID, err := deviceOrganization(device, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	priority, _ := entity.ParsePriority(input.Priority)
	now := s.now()

	next := frequency.NextDate(input.Frequency, s.today())
	if input.NextMaintenance != nil {
		next = entity.CalendarDay(*input.NextMaintenance)
	}

	task := &entity.MaintenanceTask{
		ID:                uuid.New(),
		DeviceID:          device.ID,
		OrganizationID:    organizationID,
		TaskName:          strings.TrimSpace(input.TaskName),
		Description:       strings.TrimSpace(input.Description),
		Frequency:         strings.TrimSpace(input.Frequency),
		Priority:          priority,
		EstimatedDuration: strings.TrimSpace(input.EstimatedDuration),
		RequiredTools:     strings.TrimSpace(input.RequiredTools),
		SafetyNotes:       strings.TrimSpace(input.SafetyNotes),
		ComponentName:     strings.TrimSpace(input.ComponentName),
		Category:          strings.TrimSpace(input.Category),
		MaintenanceType:   entity.ParseMaintenanceType(input.MaintenanceType),
		NextMaintenance:   next,
		Status:            entity.StatusActive,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	assignee := input.AssignedTo
	if assignee == nil && device.HasAssignee() {
		assignee = device.AssignedUserID
	}
	if assignee != nil {
		if err := s.ensureUser(ctx, *assignee); err != nil {
			return nil, err
		}
		task.Assign(*assignee, input.ActorID, now)
	}

	err = s.executeNumbered(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewMaintenanceTaskRepository().CreateTask(ctx, task); err != nil {
			return errors.Wrap(err, "failed to create maintenance task")
		}

		return s.appendHistory(ctx, repoFactory.NewMaintenanceHistoryRepository(), task, entity.SnapshotUpdate, task.NextMaintenance, nil)
	})
	if err != nil {
		return nil, err
	}

	if task.IsAssigned() {
		s.publishAssignment(ctx, task)
	}

	return task, nil
}

// UpdateTask patches a task under a row lock and records an UPDATE history snapshot.
func (s *maintenanceService) UpdateTask(ctx context.Context, id uuid.UUID, input *usecase.UpdateTaskInput) (*entity.MaintenanceTask, error) {
	if input.Status != nil {
		switch *input.Status {
		case entity.StatusActive, entity.StatusPending, entity.StatusCancelled:
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("status can only be set to ACTIVE, PENDING or CANCELLED")
		}
	}

	var updated *entity.MaintenanceTask
	err := s.executeNumbered(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewMaintenanceTaskRepository()

		task, err := s.lockTask(ctx, taskRepo, id)
		if err != nil {
			return err
		}

		frequencyChanged := applyTaskPatch(task, input)

		switch {
		case input.NextMaintenance != nil:
			task.NextMaintenance = entity.CalendarDay(*input.NextMaintenance)
		case frequencyChanged:
			base := s.today()
			if task.LastMaintenance != nil {
				base = *task.LastMaintenance
			}
			task.NextMaintenance = frequency.NextDate(task.Frequency, base)
		}
		task.UpdatedAt = s.now()

		if err := taskRepo.UpdateTask(ctx, task); err != nil {
			return errors.Wrap(err, "failed to update maintenance task")
		}

		updated = task

		return s.appendHistory(ctx, repoFactory.NewMaintenanceHistoryRepository(), task, entity.SnapshotUpdate, task.NextMaintenance, nil)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyTaskPatch copies the non-nil fields and reports whether the frequency changed.
func applyTaskPatch(task *entity.MaintenanceTask, input *usecase.UpdateTaskInput) bool {
	setString := func(dst *string, src *string) {
		if src != nil && strings.TrimSpace(*src) != "" {
			*dst = strings.TrimSpace(*src)
		}
	}

	setString(&task.TaskName, input.TaskName)
	setString(&task.Description, input.Description)
	setString(&task.EstimatedDuration, input.EstimatedDuration)
	setString(&task.RequiredTools, input.RequiredTools)
	setString(&task.SafetyNotes, input.SafetyNotes)
	setString(&task.ComponentName, input.ComponentName)
	setString(&task.Category, input.Category)

	if input.Priority != nil {
		task.Priority, _ = entity.ParsePriority(*input.Priority)
	}
	if input.Status != nil {
		task.Status = *input.Status
	}

	previous := task.Frequency
	setString(&task.Frequency, input.Frequency)

	return task.Frequency != previous
}

// GetTask retrieves a task by ID.
func (s *maintenanceService) GetTask(ctx context.Context, id uuid.UUID) (*entity.MaintenanceTask, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, id)
	if err != nil {
		return nil, mapTaskError(err)
	}

	return task, nil
}

// CompleteTask marks a task done today under a row lock and appends a COMPLETION record.
func (s *maintenanceService) CompleteTask(ctx context.Context, id, actorID uuid.UUID) (*entity.MaintenanceTask, error) {
	today := s.today()

	var completed *entity.MaintenanceTask
	err := s.executeNumbered(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewMaintenanceTaskRepository()

		task, err := s.lockTask(ctx, taskRepo, id)
		if err != nil {
			return err
		}

		scheduled := task.NextMaintenance
		task.Complete(today, frequency.NextDate(task.Frequency, today))
		task.UpdatedAt = s.now()

		if err := taskRepo.UpdateTask(ctx, task); err != nil {
			return errors.Wrap(err, "failed to update completed task")
		}

		var actor *uuid.UUID
		if actorID != uuid.Nil {
			actor = &actorID
		}

		completed = task

		return s.appendHistory(ctx, repoFactory.NewMaintenanceHistoryRepository(), task, entity.SnapshotCompletion, scheduled, actor)
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Maintenance task completed",
		slog.String("task_id", completed.ID.String()),
		slog.Time("next_maintenance", completed.NextMaintenance),
	)

	return completed, nil
}

// AssignTask assigns a task to an existing user.
func (s *maintenanceService) AssignTask(ctx context.Context, id, assigneeID, assignedByID uuid.UUID) (*entity.MaintenanceTask, error) {
	task, err := s.taskRepo.FindTaskByID(ctx, id)
	if err != nil {
		return nil, mapTaskError(err)
	}

	if err := s.ensureUser(ctx, assigneeID); err != nil {
		return nil, err
	}

	task.Assign(assigneeID, assignedByID, s.now())
	if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
		return nil, errors.Wrap(mapTaskError(err), "failed to assign maintenance task")
	}

	s.publishAssignment(ctx, task)

	return task, nil
}

// AssignDeviceTasks hands every unassigned task of a device to assigneeID.
func (s *maintenanceService) AssignDeviceTasks(ctx context.Context, deviceID, assigneeID, assignedByID uuid.UUID) (int, error) {
	if _, err := s.findDevice(ctx, deviceID); err != nil {
		return 0, err
	}
	if err := s.ensureUser(ctx, assigneeID); err != nil {
		return 0, err
	}

	tasks, err := s.taskRepo.FindTasksByDevice(ctx, deviceID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list device tasks")
	}

	now := s.now()
	count := 0
	for _, task := range tasks {
		if task.IsAssigned() || task.Status == entity.StatusCancelled {
			continue
		}

		task.Assign(assigneeID, assignedByID, now)
		if err := s.taskRepo.UpdateTask(ctx, task); err != nil {
			return count, errors.Wrap(err, "failed to assign device task")
		}

		count++
		s.publishAssignment(ctx, task)
	}

	return count, nil
}

// SweepOverdue flips ACTIVE tasks due before today to OVERDUE. Re-running is a no-op.
func (s *maintenanceService) SweepOverdue(ctx context.Context) (int64, error) {
	today := s.today()

	candidates, err := s.taskRepo.FindTasks(ctx, repository.TaskFilter{
		Statuses:  []entity.MaintenanceStatus{entity.StatusActive},
		DueBefore: &today,
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list overdue candidates")
	}

	var ids []uuid.UUID
	for _, task := range candidates {
		if task.IsOverdueOn(today) {
			ids = append(ids, task.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	changed, err := s.taskRepo.MarkOverdue(ctx, ids, today, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep overdue tasks")
	}

	return changed, nil
}

// RescheduleOverdue rolls every OVERDUE task forward to its first occurrence on or after today.
func (s *maintenanceService) RescheduleOverdue(ctx context.Context, organizationID string) (int, error) {
	tasks, err := s.taskRepo.FindTasks(ctx, repository.TaskFilter{
		OrganizationID: organizationID,
		Statuses:       []entity.MaintenanceStatus{entity.StatusOverdue},
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to list overdue tasks")
	}

	today := s.today()
	count := 0
	for _, candidate := range tasks {
		rescheduled := false

		err := s.executeNumbered(ctx, func(repoFactory repository.RepositoryFactory) error {
			rescheduled = false
			taskRepo := repoFactory.NewMaintenanceTaskRepository()

			task, err := s.lockTask(ctx, taskRepo, candidate.ID)
			if err != nil {
				return err
			}
			if task.Status != entity.StatusOverdue {
				return nil
			}

			scheduled := task.NextMaintenance
			task.NextMaintenance = rollForward(task.Frequency, task.NextMaintenance, today)
			task.Status = entity.StatusActive
			task.UpdatedAt = s.now()

			if err := taskRepo.UpdateTask(ctx, task); err != nil {
				return errors.Wrap(err, "failed to reschedule task")
			}
			rescheduled = true

			return s.appendHistory(ctx, repoFactory.NewMaintenanceHistoryRepository(), task, entity.SnapshotUpdate, scheduled, nil)
		})
		if err != nil {
			s.log(ctx).Error("Failed to reschedule overdue task",
				slog.String("task_id", candidate.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if rescheduled {
			count++
		}
	}

	return count, nil
}

// rollForward applies the recurrence to due until the result is not before today.
func rollForward(descriptor string, due, today time.Time) time.Time {
	recurrence := frequency.Resolve(descriptor)

	next := due
	for next.Before(today) {
		next = recurrence.Next(next)
	}

	return next
}

// Deduplicate keeps the earliest-created task of every title and deletes the rest.
func (s *maintenanceService) Deduplicate(ctx context.Context, deviceID uuid.UUID, organizationID string) (int64, error) {
	var removed int64

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.NewMaintenanceTaskRepository()

		tasks, err := taskRepo.FindTasksByDevice(ctx, deviceID)
		if err != nil {
			return errors.Wrap(err, "failed to list device tasks")
		}

		duplicates := duplicateTaskIDs(tasks, organizationID)
		if len(duplicates) == 0 {
			return nil
		}

		removed, err = taskRepo.DeleteTasks(ctx, duplicates)
		if err != nil {
			return errors.Wrap(err, "failed to delete duplicate tasks")
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		s.log(ctx).Info("Duplicate maintenance tasks removed",
			slog.String("device_id", deviceID.String()),
			slog.Int64("removed", removed),
		)
	}

	return removed, nil
}

// duplicateTaskIDs returns every task except the earliest-created one per exact title.
func duplicateTaskIDs(tasks []*entity.MaintenanceTask, organizationID string) []uuid.UUID {
	earliest := make(map[string]*entity.MaintenanceTask)
	for _, task := range tasks {
		if organizationID != "" && task.OrganizationID != organizationID {
			continue
		}

		kept, ok := earliest[task.TaskName]
		if !ok || task.CreatedAt.Before(kept.CreatedAt) {
			earliest[task.TaskName] = task
		}
	}

	var duplicates []uuid.UUID
	for _, task := range tasks {
		if organizationID != "" && task.OrganizationID != organizationID {
			continue
		}
		if earliest[task.TaskName].ID != task.ID {
			duplicates = append(duplicates, task.ID)
		}
	}

	return duplicates
}

// RemoveDeviceTasks deletes every task of a device.
func (s *maintenanceService) RemoveDeviceTasks(ctx context.Context, deviceID uuid.UUID) (int64, error) {
	removed, err := s.taskRepo.DeleteTasksByDevice(ctx, deviceID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to remove device tasks")
	}

	return removed, nil
}

// SnapshotActiveTasks writes one DAILY_SNAPSHOT record per ACTIVE or OVERDUE task.
// A task whose snapshot fails is logged and left out of the result.
func (s *maintenanceService) SnapshotActiveTasks(ctx context.Context, organizationID string) ([]*entity.MaintenanceHistory, error) {
	tasks, err := s.taskRepo.FindTasks(ctx, repository.TaskFilter{
		OrganizationID: organizationID,
		Statuses:       []entity.MaintenanceStatus{entity.StatusActive, entity.StatusOverdue},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active tasks")
	}

	records := make([]*entity.MaintenanceHistory, 0, len(tasks))
	for _, task := range tasks {
		var record *entity.MaintenanceHistory

		err := s.executeNumbered(ctx, func(repoFactory repository.RepositoryFactory) error {
			historyRepo := repoFactory.NewMaintenanceHistoryRepository()

			cycle, err := historyRepo.NextCycleNumber(ctx, task.DeviceID)
			if err != nil {
				return err
			}

			record = entity.NewMaintenanceHistory(task, entity.SnapshotDaily, cycle, task.NextMaintenance, nil, s.now())

			return historyRepo.CreateHistory(ctx, record)
		})
		if err != nil {
			s.log(ctx).Error("Failed to snapshot task",
				slog.String("task_id", task.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		records = append(records, record)
	}

	return records, nil
}

// ListByDevice lists every task of a device.
func (s *maintenanceService) ListByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.MaintenanceTask, error) {
	tasks, err := s.taskRepo.FindTasksByDevice(ctx, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list device tasks")
	}

	return tasks, nil
}

// ListByOrganization runs one of the organization-wide views.
func (s *maintenanceService) ListByOrganization(ctx context.Context, organizationID string, view usecase.OrganizationView, days int) ([]*entity.MaintenanceTask, error) {
	if days < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("days must not be negative")
	}

	filter, err := s.organizationFilter(organizationID, view, days)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindTasks(ctx, filter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %q maintenance tasks", view)
	}

	return tasks, nil
}

func (s *maintenanceService) organizationFilter(organizationID string, view usecase.OrganizationView, days int) (repository.TaskFilter, error) {
	today := s.today()
	filter := repository.TaskFilter{OrganizationID: organizationID}

	switch view {
	case usecase.ViewAll:
	case usecase.ViewOverdue:
		filter.Statuses = []entity.MaintenanceStatus{entity.StatusActive, entity.StatusOverdue}
		filter.DueBefore = &today
	case usecase.ViewDueToday:
		filter.Statuses = []entity.MaintenanceStatus{entity.StatusActive}
		filter.DueFrom = &today
		filter.DueTo = &today
	case usecase.ViewUpcoming:
		if days == 0 {
			days = defaultUpcomingDays
		}
		until := today.AddDate(0, 0, days)
		filter.Statuses = []entity.MaintenanceStatus{entity.StatusActive}
		filter.DueFrom = &today
		filter.DueTo = &until
	case usecase.ViewCompleted:
		if days == 0 {
			days = defaultCompletedDays
		}
		since := today.AddDate(0, 0, -days)
		filter.Statuses = []entity.MaintenanceStatus{entity.StatusCompleted}
		filter.CompletedFrom = &since
	default:
		return filter, domainerrors.ErrValidationFailed.WithDetails("unknown view " + string(view))
	}

	return filter, nil
}

// ListHistory lists the latest history records of a device.
func (s *maintenanceService) ListHistory(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.MaintenanceHistory, error) {
	records, err := s.historyRepo.FindHistoryByDevice(ctx, deviceID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list maintenance history")
	}

	return records, nil
}

// --- helpers ---

func (s *maintenanceService) findDevice(ctx context.Context, deviceID uuid.UUID) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, domainerrors.ErrDeviceNotFound.WithDetails(deviceID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

func (s *maintenanceService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	_, err := s.userRepo.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrAssigneeNotFound.WithDetails(userID.String())
	}
	if err != nil {
		return errors.Wrap(err, "failed to find assignee")
	}

	return nil
}

// deviceOrganization defaults organizationID to the device's and rejects a foreign one.
func deviceOrganization(device *entity.Device, organizationID string) (string, error) {
	if organizationID == "" {
		return device.OrganizationID, nil
	}
	if device.OrganizationID != "" && device.OrganizationID != organizationID {
		return "", domainerrors.ErrForbidden.WithDetails("device belongs to another organization")
	}

	return organizationID, nil
}

// executeNumbered runs fn in a transaction and starts over when the history
// cycle number it drew was taken by a concurrent writer.
func (s *maintenanceService) executeNumbered(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var err error
	for attempt := 1; attempt <= cycleNumberAttempts; attempt++ {
		err = s.txManager.Execute(ctx, fn)
		if !errors.Is(err, repository.ErrDuplicateCycleNumber) {
			return err
		}

		s.log(ctx).Warn("History cycle number taken, retrying", slog.Int("attempt", attempt))
	}

	return err
}

func (s *maintenanceService) lockTask(ctx context.Context, taskRepo repository.MaintenanceTaskRepository, id uuid.UUID) (*entity.MaintenanceTask, error) {
	task, err := taskRepo.FindTaskByIDForUpdate(ctx, id)
	if err != nil {
		return nil, mapTaskError(err)
	}

	return task, nil
}

// appendHistory numbers and stores one history record inside the caller's transaction.
func (s *maintenanceService) appendHistory(
	ctx context.Context,
	historyRepo repository.MaintenanceHistoryRepository,
	task *entity.MaintenanceTask,
	kind entity.SnapshotType,
	scheduled time.Time,
	actor *uuid.UUID,
) error {
	cycle, err := historyRepo.NextCycleNumber(ctx, task.DeviceID)
	if err != nil {
		return errors.Wrap(err, "failed to number maintenance history")
	}

	history := entity.NewMaintenanceHistory(task, kind, cycle, scheduled, actor, s.now())
	if err := historyRepo.CreateHistory(ctx, history); err != nil {
		return errors.Wrap(err, "failed to append maintenance history")
	}

	return nil
}

// publishAssignment announces an assignment; failures never undo it.
func (s *maintenanceService) publishAssignment(ctx context.Context, task *entity.MaintenanceTask) {
	if s.publisher == nil || !task.IsAssigned() {
		return
	}

	event := &service.TaskAssignedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		EventType:      constants.EventTaskAssigned,
		TaskID:         task.ID.String(),
		DeviceID:       task.DeviceID.String(),
		OrganizationID: task.OrganizationID,
		AssigneeID:     task.AssignedTo.String(),
	}
	if task.AssignedBy != nil && *task.AssignedBy != uuid.Nil {
		event.AssignedBy = task.AssignedBy.String()
	}
	if task.AssignedAt != nil {
		event.AssignedAt = task.AssignedAt.UTC().Format(time.RFC3339)
	}

	if err := s.publisher.PublishTaskAssigned(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish task assignment",
			slog.String("task_id", event.TaskID),
			slog.Any("error", err),
		)
	}
}

func mapTaskError(err error) error {
	if errors.Is(err, repository.ErrMaintenanceTaskNotFound) {
		return domainerrors.ErrMaintenanceTaskNotFound
	}

	return err
}
