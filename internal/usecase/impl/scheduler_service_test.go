package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"upkeep/internal/domain/constants"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"
	mockSvc "upkeep/internal/mocks/service"
	mockUsecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type schedulerFixtures struct {
	maintenance *mockUsecase.MockMaintenanceUsecase
	taskRepo    *mockRepo.MockMaintenanceTaskRepository
	notifier    *mockUsecase.MockInAppNotifier
	dispatcher  *mockUsecase.MockNotificationDispatcher
	archiver    *mockSvc.MockSnapshotArchiver
}

func createTestSchedulerService(t *testing.T) (usecase.SchedulerUsecase, schedulerFixtures) {
	t.Helper()

	fx := schedulerFixtures{
		maintenance: mockUsecase.NewMockMaintenanceUsecase(t),
		taskRepo:    mockRepo.NewMockMaintenanceTaskRepository(t),
		notifier:    mockUsecase.NewMockInAppNotifier(t),
		dispatcher:  mockUsecase.NewMockNotificationDispatcher(t),
		archiver:    mockSvc.NewMockSnapshotArchiver(t),
	}

	svc := NewSchedulerService(SchedulerServiceParams{
		Maintenance: fx.maintenance,
		TaskRepo:    fx.taskRepo,
		Notifier:    fx.notifier,
		Dispatcher:  fx.dispatcher,
		Archiver:    fx.archiver,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	svc.(*schedulerService).now = func() time.Time { return fixedNow }

	return svc, fx
}

func dueTask(name string, assignee *entity.User) *entity.DueTask {
	return &entity.DueTask{
		Task: &entity.MaintenanceTask{
			ID:              uuid.New(),
			DeviceID:        uuid.New(),
			OrganizationID:  "org-1",
			TaskName:        name,
			NextMaintenance: day(2024, time.March, 15),
			Status:          entity.StatusActive,
		},
		DeviceName: "Pump A",
		Assignee:   assignee,
	}
}

func TestSchedulerService_RunDailyNotifications(t *testing.T) {
	svc, fx := createTestSchedulerService(t)
	ctx := context.Background()

	ada := &entity.User{ID: uuid.New(), FirstName: "Ada", LastName: "Lovelace"}
	grace := &entity.User{ID: uuid.New(), FirstName: "Grace"}
	delivered := dueTask("Replace filter", ada)
	undelivered := dueTask("Check seals", grace)
	unassigned := dueTask("Lubricate", nil)

	fx.taskRepo.EXPECT().
		FindDueTasks(ctx, repository.DueTaskFilter{
			OrganizationID: "org-1",
			DueOnOrBefore:  day(2024, time.March, 15),
			Statuses:       []entity.MaintenanceStatus{entity.StatusActive, entity.StatusOverdue},
		}).
		Return([]*entity.DueTask{delivered, undelivered, unassigned}, nil)

	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *usecase.Notice) bool { return n.UserID == ada.ID })).
		Return(true, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *usecase.Notice) bool { return n.UserID == grace.ID })).
		Return(false, errors.New("db down"))

	fx.dispatcher.EXPECT().
		Send(ctx, mock.MatchedBy(func(n *entity.TaskNotice) bool { return n.Task == delivered.Task && n.AssigneeName == "Ada Lovelace" }), 0).
		Return(entity.DispatchOutcome{Delivered: true, Attempts: 1, Reason: entity.DispatchSuccess})
	fx.dispatcher.EXPECT().
		Send(ctx, mock.MatchedBy(func(n *entity.TaskNotice) bool { return n.Task == undelivered.Task }), 0).
		Return(entity.DispatchOutcome{Attempts: 3, Reason: entity.DispatchExhausted})

	summary, err := svc.RunDailyNotifications(ctx, "org-1")

	require.NoError(t, err)
	assert.Equal(t, constants.JobDailyNotifications, summary.Job)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
}

func TestSchedulerService_RunDailyNotifications_PanicCountsAsFailed(t *testing.T) {
	svc, fx := createTestSchedulerService(t)
	ctx := context.Background()

	ada := &entity.User{ID: uuid.New(), FirstName: "Ada"}
	task := dueTask("Replace filter", ada)

	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.Anything).Return([]*entity.DueTask{task}, nil)
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return(true, nil)
	fx.dispatcher.EXPECT().Send(ctx, mock.Anything, 0).
		Run(func(context.Context, *entity.TaskNotice, int) { panic("boom") }).
		Return(entity.DispatchOutcome{})

	summary, err := svc.RunDailyNotifications(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 0, summary.Sent)
}

// reminderLedger mirrors the per-day reminder claim of the task repository.
type reminderLedger struct {
	mu   sync.Mutex
	sent map[string]int
}

func newReminderLedger() *reminderLedger {
	return &reminderLedger{sent: make(map[string]int)}
}

func (l *reminderLedger) claim(_ context.Context, taskID uuid.UUID, d time.Time, limit int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := taskID.String() + "/" + d.Format("2006-01-02")
	if l.sent[key] >= limit {
		return 0, nil
	}
	l.sent[key]++

	return l.sent[key], nil
}

func TestSchedulerService_RunReminderSweep(t *testing.T) {
	svc, fx := createTestSchedulerService(t)
	ctx := context.Background()
	today := day(2024, time.March, 15)

	ada := &entity.User{ID: uuid.New(), FirstName: "Ada"}
	second := dueTask("Replace filter", ada)
	capped := dueTask("Check seals", ada)
	capped.Task.Status = entity.StatusOverdue

	fx.taskRepo.EXPECT().
		FindDueTasks(ctx, repository.DueTaskFilter{
			OrganizationID: "org-1",
			DueOnOrBefore:  today,
			Statuses:       []entity.MaintenanceStatus{entity.StatusActive, entity.StatusPending, entity.StatusOverdue},
		}).
		Return([]*entity.DueTask{second, capped}, nil)
	fx.taskRepo.EXPECT().ClaimReminder(ctx, second.Task.ID, today, 3).Return(2, nil)
	fx.taskRepo.EXPECT().ClaimReminder(ctx, capped.Task.ID, today, 3).Return(0, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *usecase.Notice) bool { return n.Metadata.ReminderNumber == 2 })).
		Return(true, nil)
	fx.dispatcher.EXPECT().Send(ctx, mock.Anything, 2).Return(entity.DispatchOutcome{Delivered: true, Attempts: 1})

	summary, err := svc.RunReminderSweep(ctx, "org-1")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sent)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
}

func TestSchedulerService_RunReminderSweep_ClaimFailure(t *testing.T) {
	svc, fx := createTestSchedulerService(t)
	ctx := context.Background()

	task := dueTask("Replace filter", &entity.User{ID: uuid.New(), FirstName: "Ada"})

	fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.Anything).Return([]*entity.DueTask{task}, nil)
	fx.taskRepo.EXPECT().ClaimReminder(ctx, task.Task.ID, mock.Anything, 3).Return(0, errors.New("db down"))

	summary, err := svc.RunReminderSweep(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
}

func TestSchedulerService_ReminderOrdinals(t *testing.T) {
	tests := []struct {
		name      string
		shown     bool
		withDaily bool
		want      []int
	}{
		{name: "in-app shown", shown: true, want: []int{1, 2, 3}},
		{name: "in-app suppressed by preferences", shown: false, want: []int{1, 2, 3}},
		{name: "daily notice does not use up a reminder", shown: true, withDaily: true, want: []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fx := createTestSchedulerService(t)
			ctx := context.Background()
			ledger := newReminderLedger()

			task := dueTask("Replace filter", &entity.User{ID: uuid.New(), FirstName: "Ada"})
			task.Task.Status = entity.StatusOverdue

			var mu sync.Mutex
			var ordinals []int

			fx.taskRepo.EXPECT().FindDueTasks(ctx, mock.Anything).Return([]*entity.DueTask{task}, nil)
			fx.taskRepo.EXPECT().ClaimReminder(ctx, task.Task.ID, day(2024, time.March, 15), 3).RunAndReturn(ledger.claim)
			fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return(tt.shown, nil)
			fx.dispatcher.EXPECT().
				Send(ctx, mock.Anything, mock.AnythingOfType("int")).
				RunAndReturn(func(_ context.Context, _ *entity.TaskNotice, ordinal int) entity.DispatchOutcome {
					mu.Lock()
					defer mu.Unlock()
					ordinals = append(ordinals, ordinal)

					return entity.DispatchOutcome{Delivered: true, Attempts: 1, Reason: entity.DispatchSuccess}
				})

			if tt.withDaily {
				_, err := svc.RunDailyNotifications(ctx, "org-1")
				require.NoError(t, err)
			}

			// A two-hourly sweep fires six times over a working day.
			var last *usecase.RunSummary
			for range 6 {
				summary, err := svc.RunReminderSweep(ctx, "org-1")
				require.NoError(t, err)
				last = summary
			}

			assert.Equal(t, tt.want, ordinals)
			assert.Equal(t, 1, last.Skipped)
			assert.Equal(t, 0, last.Sent)
		})
	}
}

func TestSchedulerService_RunDailySnapshot(t *testing.T) {
	svc, fx := createTestSchedulerService(t)
	ctx := context.Background()

	records := []*entity.MaintenanceHistory{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.maintenance.EXPECT().SnapshotActiveTasks(ctx, "").Return(records, nil)
	fx.archiver.EXPECT().Archive(ctx, "all/2024-03-15", records).Return(nil)

	summary, err := svc.RunDailySnapshot(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 2, summary.Sent)
}

func TestSchedulerService_RunJob(t *testing.T) {
	ctx := context.Background()

	t.Run("overdue sweep", func(t *testing.T) {
		svc, fx := createTestSchedulerService(t)
		fx.maintenance.EXPECT().SweepOverdue(ctx).Return(int64(4), nil)

		summary, err := svc.RunJob(ctx, constants.JobOverdueSweep, "")

		require.NoError(t, err)
		assert.Equal(t, 4, summary.Total)
	})

	t.Run("reschedule", func(t *testing.T) {
		svc, fx := createTestSchedulerService(t)
		fx.maintenance.EXPECT().RescheduleOverdue(ctx, "org-1").Return(2, nil)

		summary, err := svc.RunJob(ctx, constants.JobAutoReschedule, "org-1")

		require.NoError(t, err)
		assert.Equal(t, 2, summary.Total)
	})

	t.Run("unknown job", func(t *testing.T) {
		svc, _ := createTestSchedulerService(t)

		_, err := svc.RunJob(ctx, "weekly", "")

		assert.ErrorIs(t, err, domainerrors.ErrUnknownSchedulerJob)
	})
}
