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
	mockUsecase "upkeep/internal/mocks/usecase"
	"upkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assignmentNoticeFixtures struct {
	taskRepo         *mockRepo.MockMaintenanceTaskRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	notifier         *mockUsecase.MockInAppNotifier
	dispatcher       *mockUsecase.MockNotificationDispatcher
}

func createTestAssignmentNoticeService(t *testing.T) (usecase.AssignmentNoticeUsecase, assignmentNoticeFixtures) {
	t.Helper()

	fx := assignmentNoticeFixtures{
		taskRepo:         mockRepo.NewMockMaintenanceTaskRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		notifier:         mockUsecase.NewMockInAppNotifier(t),
		dispatcher:       mockUsecase.NewMockNotificationDispatcher(t),
	}

	svc := NewAssignmentNoticeService(AssignmentNoticeServiceParams{
		TaskRepo:         fx.taskRepo,
		DeviceRepo:       fx.deviceRepo,
		UserRepo:         fx.userRepo,
		NotificationRepo: fx.notificationRepo,
		Notifier:         fx.notifier,
		Dispatcher:       fx.dispatcher,
		Logger:           newDiscardLogger(),
	})

	return svc, fx
}

func assignedTask(assignee uuid.UUID) *entity.MaintenanceTask {
	assignedAt := fixedNow

	return &entity.MaintenanceTask{
		ID:             uuid.New(),
		DeviceID:       uuid.New(),
		OrganizationID: "org-1",
		TaskName:       "Replace filter",
		AssignedTo:     &assignee,
		AssignedAt:     &assignedAt,
	}
}

func TestAssignmentNoticeService_DeliverAssignment(t *testing.T) {
	svc, fx := createTestAssignmentNoticeService(t)
	ctx := context.Background()

	assignee := uuid.New()
	task := assignedTask(assignee)
	event := &service.TaskAssignedEvent{TaskID: task.ID.String(), AssigneeID: assignee.String()}
	want := entity.DispatchOutcome{Delivered: true, Attempts: 1, Reason: entity.DispatchSuccess}

	fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, assignee).Return(&entity.User{ID: assignee, FirstName: "Ada"}, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, task.DeviceID).Return(&entity.Device{ID: task.DeviceID, Name: "Pump A"}, nil)
	fx.notificationRepo.EXPECT().HasTaskNotification(ctx, task.ID, assignee, entity.CategoryMaintenanceAssigned, fixedNow).Return(false, nil)
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(n *usecase.Notice) bool {
			return n.Category == entity.CategoryMaintenanceAssigned && *n.Metadata.TaskID == task.ID
		})).
		Return(true, nil)
	fx.dispatcher.EXPECT().
		Send(ctx, mock.MatchedBy(func(n *entity.TaskNotice) bool {
			return n.DeviceName == "Pump A" && n.AssigneeName == "Ada"
		}), 0).
		Return(want)

	outcome, err := svc.DeliverAssignment(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, want, outcome)
}

func TestAssignmentNoticeService_DeliverAssignment_Redelivery(t *testing.T) {
	svc, fx := createTestAssignmentNoticeService(t)
	ctx := context.Background()

	assignee := uuid.New()
	task := assignedTask(assignee)
	event := &service.TaskAssignedEvent{TaskID: task.ID.String(), AssigneeID: assignee.String()}
	exhausted := entity.DispatchOutcome{Attempts: 3, Reason: entity.DispatchExhausted}

	notified := false
	fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, assignee).Return(&entity.User{ID: assignee, FirstName: "Ada"}, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, task.DeviceID).Return(&entity.Device{ID: task.DeviceID, Name: "Pump A"}, nil)
	fx.notificationRepo.EXPECT().
		HasTaskNotification(ctx, task.ID, assignee, entity.CategoryMaintenanceAssigned, fixedNow).
		RunAndReturn(func(context.Context, uuid.UUID, uuid.UUID, entity.NotificationCategory, time.Time) (bool, error) {
			return notified, nil
		})
	fx.notifier.EXPECT().
		Notify(ctx, mock.Anything).
		RunAndReturn(func(context.Context, *usecase.Notice) (bool, error) {
			notified = true

			return true, nil
		}).
		Once()
	fx.dispatcher.EXPECT().Send(ctx, mock.Anything, 0).Return(exhausted).Times(3)

	// The consumer nacks an exhausted delivery, so the broker redelivers it.
	for range 3 {
		outcome, err := svc.DeliverAssignment(ctx, event)

		require.NoError(t, err)
		assert.True(t, outcome.Retryable())
	}
}

func TestAssignmentNoticeService_DeliverAssignment_LookupFailureStillNotifies(t *testing.T) {
	svc, fx := createTestAssignmentNoticeService(t)
	ctx := context.Background()

	assignee := uuid.New()
	task := assignedTask(assignee)
	event := &service.TaskAssignedEvent{TaskID: task.ID.String(), AssigneeID: assignee.String()}

	fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, assignee).Return(&entity.User{ID: assignee, FirstName: "Ada"}, nil)
	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, task.DeviceID).Return(&entity.Device{ID: task.DeviceID}, nil)
	fx.notificationRepo.EXPECT().HasTaskNotification(ctx, task.ID, assignee, entity.CategoryMaintenanceAssigned, fixedNow).Return(false, errors.New("db down"))
	fx.notifier.EXPECT().Notify(ctx, mock.Anything).Return(true, nil)
	fx.dispatcher.EXPECT().Send(ctx, mock.Anything, 0).Return(entity.DispatchOutcome{Delivered: true, Attempts: 1})

	outcome, err := svc.DeliverAssignment(ctx, event)

	require.NoError(t, err)
	assert.True(t, outcome.Delivered)
}

func TestAssignmentNoticeService_DeliverAssignment_StaleEvent(t *testing.T) {
	svc, fx := createTestAssignmentNoticeService(t)
	ctx := context.Background()

	task := assignedTask(uuid.New())
	event := &service.TaskAssignedEvent{TaskID: task.ID.String(), AssigneeID: uuid.NewString()}

	fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)

	outcome, err := svc.DeliverAssignment(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, entity.DispatchInvalidRequest, outcome.Reason)
}

func TestAssignmentNoticeService_DeliverAssignment_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed task id", func(t *testing.T) {
		svc, _ := createTestAssignmentNoticeService(t)

		_, err := svc.DeliverAssignment(ctx, &service.TaskAssignedEvent{TaskID: "nope", AssigneeID: uuid.NewString()})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("task gone", func(t *testing.T) {
		svc, fx := createTestAssignmentNoticeService(t)
		taskID := uuid.New()

		fx.taskRepo.EXPECT().FindTaskByID(ctx, taskID).Return(nil, repository.ErrMaintenanceTaskNotFound)

		_, err := svc.DeliverAssignment(ctx, &service.TaskAssignedEvent{TaskID: taskID.String(), AssigneeID: uuid.NewString()})

		assert.ErrorIs(t, err, domainerrors.ErrMaintenanceTaskNotFound)
	})

	t.Run("assignee gone", func(t *testing.T) {
		svc, fx := createTestAssignmentNoticeService(t)
		assignee := uuid.New()
		task := assignedTask(assignee)

		fx.taskRepo.EXPECT().FindTaskByID(ctx, task.ID).Return(task, nil)
		fx.userRepo.EXPECT().FindUserByID(ctx, assignee).Return(nil, repository.ErrUserNotFound)

		_, err := svc.DeliverAssignment(ctx, &service.TaskAssignedEvent{TaskID: task.ID.String(), AssigneeID: assignee.String()})

		assert.ErrorIs(t, err, domainerrors.ErrAssigneeNotFound)
	})
}
