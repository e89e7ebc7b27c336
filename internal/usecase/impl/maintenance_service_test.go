package impl

import (
	"context"
	"testing"
	"time"

	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	mockRepo "upkeep/internal/mocks/repository"
	mockSvc "upkeep/internal/mocks/service"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type maintenanceServiceFixtures struct {
	txManager   *mockRepo.MockTransactionManager
	taskRepo    *mockRepo.MockMaintenanceTaskRepository
	historyRepo *mockRepo.MockMaintenanceHistoryRepository
	deviceRepo  *mockRepo.MockDeviceRepository
	userRepo    *mockRepo.MockUserRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestMaintenanceService(t *testing.T) (*maintenanceService, maintenanceServiceFixtures) {
	t.Helper()

	fx := maintenanceServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		taskRepo:    mockRepo.NewMockMaintenanceTaskRepository(t),
		historyRepo: mockRepo.NewMockMaintenanceHistoryRepository(t),
		deviceRepo:  mockRepo.NewMockDeviceRepository(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}

	svc := NewMaintenanceService(MaintenanceServiceParams{
		TxManager:   fx.txManager,
		TaskRepo:    fx.taskRepo,
		HistoryRepo: fx.historyRepo,
		DeviceRepo:  fx.deviceRepo,
		UserRepo:    fx.userRepo,
		Publisher:   fx.publisher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*maintenanceService)
	svc.now = func() time.Time { return fixedNow }

	return svc, fx
}

func validGeneratedTask(title string) entity.GeneratedTask {
	return entity.GeneratedTask{
		Task:              title,
		Description:       "Inspect and clean",
		Frequency:         "monthly",
		Priority:          "high",
		EstimatedDuration: "1 hour",
		RequiredTools:     "Brush",
		SafetyNotes:       "Power off first",
	}
}

func TestMaintenanceService_IngestGeneratedTasks(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()

	assignee := uuid.New()
	actor := uuid.New()
	device := &entity.Device{ID: uuid.New(), Name: "Pump A", OrganizationID: "org-1", AssignedUserID: &assignee}
	existing := &entity.MaintenanceTask{ID: uuid.New(), DeviceID: device.ID, OrganizationID: "org-1", TaskName: "Check seals", Status: entity.StatusActive}

	invalid := validGeneratedTask("Lubricate bearings")
	invalid.SafetyNotes = " "

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.taskRepo.EXPECT().FindTaskByTitle(ctx, device.ID, "Replace filter", "org-1").Return(nil, repository.ErrMaintenanceTaskNotFound)
	fx.taskRepo.EXPECT().FindTaskByTitle(ctx, device.ID, "Check seals", "org-1").Return(existing, nil)

	fx.taskRepo.EXPECT().
		CreateTask(ctx, mock.MatchedBy(func(task *entity.MaintenanceTask) bool {
			return task.TaskName == "Replace filter" &&
				task.Priority == entity.PriorityHigh &&
				task.MaintenanceType == entity.MaintenanceTypePreventive &&
				task.ComponentName == "Replace filter" &&
				task.NextMaintenance.Equal(day(2024, time.April, 15)) &&
				task.Status == entity.StatusActive &&
				*task.AssignedTo == assignee
		})).
		Return(nil)
	fx.taskRepo.EXPECT().
		UpdateTask(ctx, mock.MatchedBy(func(task *entity.MaintenanceTask) bool {
			return task.ID == existing.ID && *task.AssignedTo == assignee && *task.AssignedBy == actor
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishTaskAssigned(ctx, mock.AnythingOfType("*service.TaskAssignedEvent")).Return(nil).Times(2)

	result, err := svc.IngestGeneratedTasks(ctx, device.ID, "org-1", actor, []entity.GeneratedTask{
		validGeneratedTask("Replace filter"),
		invalid,
		validGeneratedTask("Check seals"),
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.IngestResult{Processed: 1, Skipped: 2, Assigned: 2}, result)
}

func TestMaintenanceService_IngestGeneratedTasks_FiveTaskBatch(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), Name: "Pump A", OrganizationID: "org-1"}
	titles := []string{"Replace filter", "Check seals", "Lubricate bearings", "Inspect wiring", "Calibrate sensor"}

	batch := make([]entity.GeneratedTask, 0, len(titles))
	for _, title := range titles {
		batch = append(batch, validGeneratedTask(title))
	}
	batch[2].Priority = ""

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.taskRepo.EXPECT().FindTaskByTitle(ctx, device.ID, mock.AnythingOfType("string"), "org-1").Return(nil, repository.ErrMaintenanceTaskNotFound).Times(4)
	fx.taskRepo.EXPECT().
		CreateTask(ctx, mock.MatchedBy(func(task *entity.MaintenanceTask) bool {
			return task.TaskName != "Lubricate bearings" && !task.IsAssigned()
		})).
		Return(nil).
		Times(4)

	result, err := svc.IngestGeneratedTasks(ctx, device.ID, "org-1", uuid.Nil, batch)

	require.NoError(t, err)
	assert.Equal(t, &usecase.IngestResult{Processed: 4, Skipped: 1, Assigned: 0}, result)
}

func TestMaintenanceService_IngestGeneratedTasks_Organization(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to the device organization", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)
		device := &entity.Device{ID: uuid.New(), OrganizationID: "org-1"}

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		fx.taskRepo.EXPECT().FindTaskByTitle(ctx, device.ID, "Replace filter", "org-1").Return(nil, repository.ErrMaintenanceTaskNotFound)
		fx.taskRepo.EXPECT().
			CreateTask(ctx, mock.MatchedBy(func(task *entity.MaintenanceTask) bool { return task.OrganizationID == "org-1" })).
			Return(nil)

		result, err := svc.IngestGeneratedTasks(ctx, device.ID, "", uuid.Nil, []entity.GeneratedTask{validGeneratedTask("Replace filter")})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Processed)
	})

	t.Run("rejects a foreign organization", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)
		device := &entity.Device{ID: uuid.New(), OrganizationID: "org-1"}

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

		result, err := svc.IngestGeneratedTasks(ctx, device.ID, "org-2", uuid.Nil, []entity.GeneratedTask{validGeneratedTask("Replace filter")})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestMaintenanceService_IngestGeneratedTasks_PersistFailureIsSkipped(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()

	device := &entity.Device{ID: uuid.New(), OrganizationID: "org-1"}

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	fx.taskRepo.EXPECT().FindTaskByTitle(ctx, device.ID, "Replace filter", "org-1").Return(nil, repository.ErrMaintenanceTaskNotFound)
	fx.taskRepo.EXPECT().CreateTask(ctx, mock.Anything).Return(errors.New("connection reset"))

	result, err := svc.IngestGeneratedTasks(ctx, device.ID, "org-1", uuid.Nil, []entity.GeneratedTask{validGeneratedTask("Replace filter")})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 0, result.Assigned)
}

func TestMaintenanceService_IngestGeneratedTasks_DeviceNotFound(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

	result, err := svc.IngestGeneratedTasks(ctx, deviceID, "org-1", uuid.Nil, []entity.GeneratedTask{validGeneratedTask("Replace filter")})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}

func TestMaintenanceService_CompleteTask(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()
	actor := uuid.New()

	task := &entity.MaintenanceTask{
		ID:              uuid.New(),
		DeviceID:        uuid.New(),
		OrganizationID:  "org-1",
		TaskName:        "Replace filter",
		Frequency:       "weekly",
		NextMaintenance: day(2024, time.March, 10),
		Status:          entity.StatusOverdue,
	}

	expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
	fx.taskRepo.EXPECT().FindTaskByIDForUpdate(ctx, task.ID).Return(task, nil)
	fx.taskRepo.EXPECT().UpdateTask(ctx, task).Return(nil)
	fx.historyRepo.EXPECT().NextCycleNumber(ctx, task.DeviceID).Return(4, nil)
	fx.historyRepo.EXPECT().
		CreateHistory(ctx, mock.MatchedBy(func(h *entity.MaintenanceHistory) bool {
			return h.SnapshotType == entity.SnapshotCompletion &&
				h.CycleNumber == 4 &&
				h.ScheduledDate.Equal(day(2024, time.March, 10)) &&
				h.ActualDate != nil && h.ActualDate.Equal(day(2024, time.March, 15)) &&
				h.CompletedBy != nil && *h.CompletedBy == actor
		})).
		Return(nil)

	completed, err := svc.CompleteTask(ctx, task.ID, actor)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, completed.Status)
	assert.Equal(t, day(2024, time.March, 22), completed.NextMaintenance)
	require.NotNil(t, completed.LastMaintenance)
	assert.Equal(t, day(2024, time.March, 15), *completed.LastMaintenance)
}

func TestMaintenanceService_CompleteTask_CycleNumberTaken(t *testing.T) {
	ctx := context.Background()

	newTask := func() *entity.MaintenanceTask {
		return &entity.MaintenanceTask{
			ID:              uuid.New(),
			DeviceID:        uuid.New(),
			Frequency:       "weekly",
			NextMaintenance: day(2024, time.March, 15),
			Status:          entity.StatusActive,
		}
	}

	t.Run("retries with a fresh number", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)
		task := newTask()

		expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
		// Every attempt re-reads the row, as a rolled back transaction would.
		fx.taskRepo.EXPECT().
			FindTaskByIDForUpdate(ctx, task.ID).
			RunAndReturn(func(context.Context, uuid.UUID) (*entity.MaintenanceTask, error) {
				fresh := *task

				return &fresh, nil
			}).
			Times(2)
		fx.taskRepo.EXPECT().UpdateTask(ctx, mock.Anything).Return(nil).Times(2)
		fx.historyRepo.EXPECT().NextCycleNumber(ctx, task.DeviceID).Return(7, nil).Once()
		fx.historyRepo.EXPECT().NextCycleNumber(ctx, task.DeviceID).Return(8, nil).Once()
		fx.historyRepo.EXPECT().
			CreateHistory(ctx, mock.MatchedBy(func(h *entity.MaintenanceHistory) bool { return h.CycleNumber == 7 })).
			Return(repository.ErrDuplicateCycleNumber)
		fx.historyRepo.EXPECT().
			CreateHistory(ctx, mock.MatchedBy(func(h *entity.MaintenanceHistory) bool { return h.CycleNumber == 8 })).
			Return(nil)

		completed, err := svc.CompleteTask(ctx, task.ID, uuid.Nil)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, completed.Status)
		assert.Equal(t, day(2024, time.March, 22), completed.NextMaintenance)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)
		task := newTask()

		expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
		fx.taskRepo.EXPECT().
			FindTaskByIDForUpdate(ctx, task.ID).
			RunAndReturn(func(context.Context, uuid.UUID) (*entity.MaintenanceTask, error) {
				fresh := *task

				return &fresh, nil
			}).
			Times(cycleNumberAttempts)
		fx.taskRepo.EXPECT().UpdateTask(ctx, mock.Anything).Return(nil).Times(cycleNumberAttempts)
		fx.historyRepo.EXPECT().NextCycleNumber(ctx, task.DeviceID).Return(7, nil).Times(cycleNumberAttempts)
		fx.historyRepo.EXPECT().CreateHistory(ctx, mock.Anything).Return(repository.ErrDuplicateCycleNumber).Times(cycleNumberAttempts)

		_, err := svc.CompleteTask(ctx, task.ID, uuid.Nil)

		assert.ErrorIs(t, err, repository.ErrDuplicateCycleNumber)
	})
}

func TestMaintenanceService_CompleteTask_NotFound(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
	fx.taskRepo.EXPECT().FindTaskByIDForUpdate(ctx, id).Return(nil, repository.ErrMaintenanceTaskNotFound)

	_, err := svc.CompleteTask(ctx, id, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrMaintenanceTaskNotFound)
}

func TestMaintenanceService_AssignTask(t *testing.T) {
	ctx := context.Background()

	t.Run("assignee must exist", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)
		task := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusActive}
		assignee := uuid.New()

		fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)
		fx.userRepo.EXPECT().FindUserByID(ctx, assignee).Return(nil, repository.ErrUserNotFound)

		_, err := svc.AssignTask(ctx, task.ID, assignee, uuid.New())

		assert.ErrorIs(t, err, domainerrors.ErrAssigneeNotFound)
		assert.Nil(t, task.AssignedTo)
	})

	t.Run("publish failure keeps the assignment", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)
		task := &entity.MaintenanceTask{
			ID:              uuid.New(),
			DeviceID:        uuid.New(),
			Status:          entity.StatusOverdue,
			NextMaintenance: day(2024, time.March, 1),
		}
		assignee := uuid.New()
		manager := uuid.New()

		fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)
		fx.userRepo.EXPECT().FindUserByID(ctx, assignee).Return(&entity.User{ID: assignee}, nil)
		fx.taskRepo.EXPECT().UpdateTask(ctx, task).Return(nil)
		fx.publisher.EXPECT().
			PublishTaskAssigned(ctx, mock.MatchedBy(func(e *service.TaskAssignedEvent) bool {
				return e.TaskID == task.ID.String() && e.AssigneeID == assignee.String() && e.AssignedBy == manager.String()
			})).
			Return(errors.New("topic unavailable"))

		assigned, err := svc.AssignTask(ctx, task.ID, assignee, manager)

		require.NoError(t, err)
		assert.Equal(t, assignee, *assigned.AssignedTo)
		assert.Equal(t, entity.StatusOverdue, assigned.Status)
		assert.Equal(t, day(2024, time.March, 1), assigned.NextMaintenance)
	})
}

func TestMaintenanceService_SweepOverdue(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()
	today := day(2024, time.March, 15)

	yesterday := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusActive, NextMaintenance: day(2024, time.March, 14)}
	lastMonth := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusActive, NextMaintenance: day(2024, time.February, 10)}
	dueToday := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusActive, NextMaintenance: today}
	tomorrow := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusActive, NextMaintenance: day(2024, time.March, 16)}
	pending := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusPending, NextMaintenance: day(2024, time.March, 1)}
	completed := &entity.MaintenanceTask{ID: uuid.New(), Status: entity.StatusCompleted, NextMaintenance: day(2024, time.March, 1)}

	fx.taskRepo.EXPECT().
		FindTasks(ctx, repository.TaskFilter{
			Statuses:  []entity.MaintenanceStatus{entity.StatusActive},
			DueBefore: &today,
		}).
		Return([]*entity.MaintenanceTask{yesterday, lastMonth, dueToday, tomorrow, pending, completed}, nil).
		Once()
	fx.taskRepo.EXPECT().MarkOverdue(ctx, []uuid.UUID{yesterday.ID, lastMonth.ID}, today, fixedNow).Return(int64(2), nil)

	changed, err := svc.SweepOverdue(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(2), changed)

	// Once flipped, nothing is left for a second run.
	fx.taskRepo.EXPECT().FindTasks(ctx, mock.Anything).Return(nil, nil).Once()

	changed, err = svc.SweepOverdue(ctx)

	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestMaintenanceService_RescheduleOverdue(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()

	task := &entity.MaintenanceTask{
		ID:              uuid.New(),
		DeviceID:        uuid.New(),
		Frequency:       "monthly",
		NextMaintenance: day(2024, time.February, 1),
		Status:          entity.StatusOverdue,
	}

	fx.taskRepo.EXPECT().
		FindTasks(ctx, repository.TaskFilter{OrganizationID: "org-1", Statuses: []entity.MaintenanceStatus{entity.StatusOverdue}}).
		Return([]*entity.MaintenanceTask{task}, nil)
	expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
	fx.taskRepo.EXPECT().FindTaskByIDForUpdate(ctx, task.ID).Return(task, nil)
	fx.taskRepo.EXPECT().UpdateTask(ctx, task).Return(nil)
	fx.historyRepo.EXPECT().NextCycleNumber(ctx, task.DeviceID).Return(1, nil)
	fx.historyRepo.EXPECT().
		CreateHistory(ctx, mock.MatchedBy(func(h *entity.MaintenanceHistory) bool {
			return h.SnapshotType == entity.SnapshotUpdate && h.ScheduledDate.Equal(day(2024, time.February, 1))
		})).
		Return(nil)

	count, err := svc.RescheduleOverdue(ctx, "org-1")

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, entity.StatusActive, task.Status)
	assert.Equal(t, day(2024, time.April, 1), task.NextMaintenance)
}

func TestMaintenanceService_Deduplicate(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	first := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "Replace filter", CreatedAt: fixedNow.Add(-2 * time.Hour)}
	copyOf := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "Replace filter", CreatedAt: fixedNow.Add(-time.Hour)}
	other := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "replace filter", CreatedAt: fixedNow}

	expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
	fx.taskRepo.EXPECT().FindTasksByDevice(ctx, deviceID).Return([]*entity.MaintenanceTask{copyOf, first, other}, nil)
	fx.taskRepo.EXPECT().DeleteTasks(ctx, []uuid.UUID{copyOf.ID}).Return(int64(1), nil)

	removed, err := svc.Deduplicate(ctx, deviceID, "org-1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestMaintenanceService_Deduplicate_Twice(t *testing.T) {
	svc, fx := createTestMaintenanceService(t)
	ctx := context.Background()
	deviceID := uuid.New()

	first := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "Replace filter", CreatedAt: fixedNow.Add(-3 * time.Hour)}
	second := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "Replace filter", CreatedAt: fixedNow.Add(-2 * time.Hour)}
	third := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "Replace filter", CreatedAt: fixedNow.Add(-time.Hour)}
	seals := &entity.MaintenanceTask{ID: uuid.New(), OrganizationID: "org-1", TaskName: "Check seals", CreatedAt: fixedNow}

	stored := []*entity.MaintenanceTask{third, seals, first, second}

	expectTransaction(t, fx.txManager, fx.taskRepo, fx.historyRepo)
	fx.taskRepo.EXPECT().
		FindTasksByDevice(ctx, deviceID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]*entity.MaintenanceTask, error) {
			return stored, nil
		})
	fx.taskRepo.EXPECT().
		DeleteTasks(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []uuid.UUID) (int64, error) {
			drop := make(map[uuid.UUID]bool, len(ids))
			for _, id := range ids {
				drop[id] = true
			}

			kept := stored[:0:0]
			for _, task := range stored {
				if !drop[task.ID] {
					kept = append(kept, task)
				}
			}
			stored = kept

			return int64(len(ids)), nil
		}).
		Once()

	removed, err := svc.Deduplicate(ctx, deviceID, "org-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	removed, err = svc.Deduplicate(ctx, deviceID, "org-1")
	require.NoError(t, err)
	assert.Zero(t, removed)

	assert.ElementsMatch(t, []*entity.MaintenanceTask{first, seals}, stored)
}

func TestMaintenanceService_ListByOrganization(t *testing.T) {
	ctx := context.Background()
	today := day(2024, time.March, 15)

	t.Run("upcoming defaults to seven days", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)

		fx.taskRepo.EXPECT().
			FindTasks(ctx, mock.MatchedBy(func(f repository.TaskFilter) bool {
				return f.OrganizationID == "org-1" &&
					f.DueFrom.Equal(today) &&
					f.DueTo.Equal(day(2024, time.March, 22)) &&
					assert.ObjectsAreEqual([]entity.MaintenanceStatus{entity.StatusActive}, f.Statuses)
			})).
			Return([]*entity.MaintenanceTask{}, nil)

		tasks, err := svc.ListByOrganization(ctx, "org-1", usecase.ViewUpcoming, 0)

		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("overdue includes active and flipped tasks due before today", func(t *testing.T) {
		svc, fx := createTestMaintenanceService(t)

		fx.taskRepo.EXPECT().
			FindTasks(ctx, mock.MatchedBy(func(f repository.TaskFilter) bool {
				return f.DueBefore.Equal(today) &&
					assert.ObjectsAreEqual([]entity.MaintenanceStatus{entity.StatusActive, entity.StatusOverdue}, f.Statuses)
			})).
			Return(nil, nil)

		_, err := svc.ListByOrganization(ctx, "org-1", usecase.ViewOverdue, 0)

		require.NoError(t, err)
	})

	t.Run("negative days", func(t *testing.T) {
		svc, _ := createTestMaintenanceService(t)

		_, err := svc.ListByOrganization(ctx, "org-1", usecase.ViewCompleted, -1)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestMaintenanceService_UpdateTask_RejectsSystemStatus(t *testing.T) {
	svc, _ := createTestMaintenanceService(t)
	status := entity.StatusCompleted

	_, err := svc.UpdateTask(context.Background(), uuid.New(), &usecase.UpdateTaskInput{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRollForward(t *testing.T) {
	today := day(2024, time.March, 15)

	assert.Equal(t, day(2024, time.March, 15), rollForward("weekly", day(2024, time.March, 1), today))
	assert.Equal(t, day(2024, time.March, 22), rollForward("weekly", day(2024, time.March, 8), day(2024, time.March, 16)))
	// month steps clamp, so Jan 31 drifts to the 29th after February
	assert.Equal(t, day(2024, time.April, 29), rollForward("monthly", day(2024, time.January, 31), day(2024, time.April, 1)))
}
